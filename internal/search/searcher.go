// Package search wraps the web-search collaborator used for competitor
// and trend research.
package search

import "context"

// Searcher answers competitor and trend queries with short result
// snippets. Implementations must be safe for concurrent use.
type Searcher interface {
	// SearchCompetitors returns competitor names or snippets for a product.
	SearchCompetitors(ctx context.Context, product string) ([]string, error)
	// SearchTrends returns trending keywords for an industry.
	SearchTrends(ctx context.Context, industry string) ([]string, error)
}
