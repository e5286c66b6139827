// Package insights fills competitor and trending-keyword fields by
// classifying the product into an industry bucket and querying the search
// collaborator, with fixed per-bucket fallbacks when search is
// unavailable.
package insights

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"campaignforge/internal/campaign"
	"campaignforge/internal/search"
)

// bucket groups classification keywords with canned research results.
type bucket struct {
	name        string
	keywords    []string
	competitors []string
	trends      []string
}

// buckets are scanned in order; the first keyword hit wins.
var buckets = []bucket{
	{
		name:        "health",
		keywords:    []string{"health", "fitness", "wellness", "meditation", "medical"},
		competitors: []string{"Fitbit", "MyFitnessPal", "Headspace", "Calm"},
		trends:      []string{"mindfulness", "wellness", "fitness tracking", "mental health"},
	},
	{
		name:        "tech",
		keywords:    []string{"tech", "software", "app", "saas", "gadget"},
		competitors: []string{"Apple", "Samsung", "Google", "Microsoft"},
		trends:      []string{"AI assistants", "smart home", "cybersecurity", "cloud computing"},
	},
	{
		name:        "fashion",
		keywords:    []string{"fashion", "clothing", "apparel", "shoes", "accessories"},
		competitors: []string{"Zara", "H&M", "Nike", "Adidas"},
		trends:      []string{"sustainable fashion", "athleisure", "vintage", "custom fit"},
	},
	{
		name:        "food",
		keywords:    []string{"food", "restaurant", "meal", "snack", "beverage"},
		competitors: []string{"McDonald's", "Starbucks", "Domino's", "Chipotle"},
		trends:      []string{"plant-based", "meal prep", "local sourcing", "food delivery"},
	},
	{
		name:        "finance",
		keywords:    []string{"finance", "banking", "payment", "invest", "insurance"},
		competitors: []string{"PayPal", "Square", "Robinhood", "Coinbase"},
		trends:      []string{"crypto", "fintech", "digital banking", "investment apps"},
	},
	{
		name:        "education",
		keywords:    []string{"education", "learning", "course", "training", "tutoring"},
		competitors: []string{"Coursera", "Udemy", "Khan Academy", "Duolingo"},
		trends:      []string{"online learning", "skill development", "micro-courses", "career transition"},
	},
}

var generalBucket = bucket{
	name:        "general",
	competitors: []string{"Industry Leader A", "Emerging Competitor B", "Direct Competitor C"},
	trends:      []string{"digital transformation", "customer experience", "sustainability", "innovation"},
}

// classify returns the industry bucket for the product description.
func classify(productDetails string) bucket {
	lower := strings.ToLower(productDetails)
	for _, b := range buckets {
		for _, kw := range b.keywords {
			if strings.Contains(lower, kw) {
				return b
			}
		}
	}
	return generalBucket
}

// Enricher runs web research for a campaign context. A nil Searcher means
// the static per-bucket lists are used directly.
type Enricher struct {
	searcher search.Searcher
	log      *logrus.Logger
}

// NewEnricher creates an insight enricher.
func NewEnricher(searcher search.Searcher, log *logrus.Logger) *Enricher {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Enricher{searcher: searcher, log: log}
}

// Enhance fills the competitors and trending_keywords fields. It is a
// no-op when the context was already enhanced or has no product details.
// The two list fields are overwritten, not merged, and WebEnhanced is set
// afterwards regardless of what the searches returned, so enrichment runs
// at most once per context. Search failures never propagate; the bucket
// fallback lists are substituted instead.
func (e *Enricher) Enhance(ctx context.Context, c *campaign.Context) {
	if c.WebEnhanced || c.ProductDetails == "" {
		return
	}

	b := classify(c.ProductDetails)
	e.log.WithFields(logrus.Fields{"industry": b.name}).Debug("enriching campaign context")

	c.Competitors = e.searchCompetitors(ctx, c.ProductDetails, b)
	c.TrendingKeywords = e.searchTrends(ctx, b)
	c.WebEnhanced = true
}

func (e *Enricher) searchCompetitors(ctx context.Context, product string, b bucket) []string {
	if e.searcher == nil {
		return b.competitors
	}
	results, err := e.searcher.SearchCompetitors(ctx, product)
	if err != nil {
		e.log.WithError(err).Warn("competitor search failed, using fallback list")
		return b.competitors
	}
	if len(results) == 0 {
		return b.competitors
	}
	return results
}

func (e *Enricher) searchTrends(ctx context.Context, b bucket) []string {
	if e.searcher == nil {
		return b.trends
	}
	results, err := e.searcher.SearchTrends(ctx, b.name)
	if err != nil {
		e.log.WithError(err).Warn("trend search failed, using fallback list")
		return b.trends
	}
	if len(results) == 0 {
		return b.trends
	}
	return results
}

// StaticSearcher implements search.Searcher with the bucket tables. It is
// used when no search API key is configured and never fails.
type StaticSearcher struct{}

func (StaticSearcher) SearchCompetitors(ctx context.Context, product string) ([]string, error) {
	return classify(product).competitors, nil
}

func (StaticSearcher) SearchTrends(ctx context.Context, industry string) ([]string, error) {
	return classify(industry).trends, nil
}
