package banner

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"campaignforge/internal/campaign"
	"campaignforge/internal/imagegen"
)

// Banner is a single generated banner, image inlined as base64.
type Banner struct {
	ID          string `json:"id"`
	Prompt      string `json:"prompt"`
	AspectRatio string `json:"aspect_ratio"`
	Platform    string `json:"platform"`
	Dimensions  string `json:"dimensions"`
	ImageURL    string `json:"image_url,omitempty"`
	ImageData   string `json:"image_data,omitempty"`
	Model       string `json:"model"`
}

// PlatformResult is one entry of a batch generation run. Failures are
// recorded per platform instead of aborting the batch.
type PlatformResult struct {
	Banner *Banner `json:"banner,omitempty"`
	Error  string  `json:"error,omitempty"`
}

// Service generates campaign banners. Unlike the campaign composer, image
// failures propagate to the caller.
type Service struct {
	gen          imagegen.Generator
	client       *http.Client
	defaultRatio string
	log          *logrus.Logger
}

// NewService creates a banner service. An empty defaultRatio uses the
// package default.
func NewService(gen imagegen.Generator, defaultRatio string, log *logrus.Logger) *Service {
	if defaultRatio == "" {
		defaultRatio = DefaultAspectRatio
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{
		gen:          gen,
		client:       &http.Client{},
		defaultRatio: defaultRatio,
		log:          log,
	}
}

// Generate produces one banner for the context. An empty aspect ratio
// uses the platform's preferred ratio; an empty platform means a generic
// banner at the default ratio.
func (s *Service) Generate(ctx context.Context, c *campaign.Context, aspectRatio, platform string) (*Banner, error) {
	if aspectRatio == "" {
		if platform != "" {
			aspectRatio = PlatformRatio(platform)
		} else {
			aspectRatio = s.defaultRatio
		}
	}

	prompt := BuildPrompt(c, platform)
	width, height := Dimensions(aspectRatio)

	s.log.WithFields(logrus.Fields{
		"platform": platform,
		"size":     fmt.Sprintf("%dx%d", width, height),
	}).Info("generating banner")

	img, err := s.gen.Generate(ctx, prompt, width, height)
	if err != nil {
		return nil, fmt.Errorf("generating banner image: %w", err)
	}

	b := &Banner{
		ID:          uuid.New().String(),
		Prompt:      prompt,
		AspectRatio: aspectRatio,
		Platform:    platform,
		Dimensions:  fmt.Sprintf("%dx%d", width, height),
		ImageURL:    img.URL,
		Model:       s.gen.Model(),
	}

	if img.URL != "" {
		data, err := s.download(ctx, img.URL)
		if err != nil {
			return nil, fmt.Errorf("downloading banner image: %w", err)
		}
		b.ImageData = base64.StdEncoding.EncodeToString(data)
	}

	return b, nil
}

// GenerateAll produces banners for the fixed batch platform set,
// collecting per-platform failures instead of stopping.
func (s *Service) GenerateAll(ctx context.Context, c *campaign.Context) map[string]PlatformResult {
	results := make(map[string]PlatformResult, len(batchPlatforms))
	for _, bp := range batchPlatforms {
		b, err := s.Generate(ctx, c, bp.ratio, bp.platform)
		if err != nil {
			s.log.WithError(err).WithField("platform", bp.platform).Warn("banner generation failed")
			results[bp.platform] = PlatformResult{Error: err.Error()}
			continue
		}
		results[bp.platform] = PlatformResult{Banner: b}
	}
	return results
}

func (s *Service) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
