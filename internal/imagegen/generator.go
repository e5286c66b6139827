// Package imagegen wraps the image-synthesis collaborator.
package imagegen

import "context"

// Image is the result of one image synthesis call.
type Image struct {
	URL         string
	ContentType string
}

// Generator produces an image for a prompt at the given pixel size.
type Generator interface {
	Generate(ctx context.Context, prompt string, width, height int) (*Image, error)
	// Model returns a human-readable model identifier for responses.
	Model() string
}
