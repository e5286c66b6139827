package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	falModelID     = "fal-ai/flux/schnell"
	falDefaultBase = "https://fal.run"
)

// FalClient implements Generator using the Fal.ai FLUX.1 [schnell] model.
type FalClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewFalClient creates a Fal.ai image client. An empty baseURL uses the
// public endpoint.
func NewFalClient(apiKey, baseURL string) *FalClient {
	if baseURL == "" {
		baseURL = falDefaultBase
	}
	return &FalClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (c *FalClient) Model() string {
	return "FLUX.1 [schnell] via Fal.ai"
}

type falRequest struct {
	Prompt              string       `json:"prompt"`
	ImageSize           falImageSize `json:"image_size"`
	NumInferenceSteps   int          `json:"num_inference_steps"`
	EnableSafetyChecker bool         `json:"enable_safety_checker"`
}

type falImageSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type falResponse struct {
	Images []struct {
		URL         string `json:"url"`
		ContentType string `json:"content_type"`
	} `json:"images"`
}

func (c *FalClient) Generate(ctx context.Context, prompt string, width, height int) (*Image, error) {
	body, err := json.Marshal(falRequest{
		Prompt:              prompt,
		ImageSize:           falImageSize{Width: width, Height: height},
		NumInferenceSteps:   4,
		EnableSafetyChecker: true,
	})
	if err != nil {
		return nil, fmt.Errorf("marshalling image request: %w", err)
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, falModelID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating image request: %w", err)
	}
	req.Header.Set("Authorization", "Key "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image request failed: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading image response: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image API returned status %d: %s", httpResp.StatusCode, string(respBody))
	}

	var resp falResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("unmarshalling image response: %w", err)
	}
	if len(resp.Images) == 0 {
		return nil, fmt.Errorf("image API returned no images")
	}

	return &Image{URL: resp.Images[0].URL, ContentType: resp.Images[0].ContentType}, nil
}
