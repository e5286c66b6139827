package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// SerperClient implements Searcher using the Serper Google-search API.
type SerperClient struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewSerperClient creates a Serper search client. An empty endpoint uses
// the public API URL.
func NewSerperClient(apiKey, endpoint string) *SerperClient {
	if endpoint == "" {
		endpoint = "https://google.serper.dev/search"
	}
	return &SerperClient{
		apiKey:   apiKey,
		endpoint: endpoint,
		client:   &http.Client{},
	}
}

type serperRequest struct {
	Query string `json:"q"`
	Num   int    `json:"num,omitempty"`
}

type serperResponse struct {
	Organic []struct {
		Title   string `json:"title"`
		Snippet string `json:"snippet"`
	} `json:"organic"`
	RelatedSearches []struct {
		Query string `json:"query"`
	} `json:"relatedSearches"`
}

func (c *SerperClient) SearchCompetitors(ctx context.Context, product string) ([]string, error) {
	resp, err := c.search(ctx, fmt.Sprintf("top competitors of %s", product))
	if err != nil {
		return nil, err
	}

	var results []string
	for _, organic := range resp.Organic {
		if organic.Title != "" {
			results = append(results, organic.Title)
		}
	}
	return results, nil
}

func (c *SerperClient) SearchTrends(ctx context.Context, industry string) ([]string, error) {
	resp, err := c.search(ctx, fmt.Sprintf("trending keywords %s marketing", industry))
	if err != nil {
		return nil, err
	}

	var results []string
	for _, related := range resp.RelatedSearches {
		if related.Query != "" {
			results = append(results, related.Query)
		}
	}
	for _, organic := range resp.Organic {
		if organic.Title != "" {
			results = append(results, organic.Title)
		}
	}
	return results, nil
}

func (c *SerperClient) search(ctx context.Context, query string) (*serperResponse, error) {
	body, err := json.Marshal(serperRequest{Query: query, Num: 10})
	if err != nil {
		return nil, fmt.Errorf("marshalling search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating search request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading search response: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned status %d: %s", httpResp.StatusCode, string(respBody))
	}

	var resp serperResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("unmarshalling search response: %w", err)
	}
	return &resp, nil
}
