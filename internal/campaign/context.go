package campaign

import (
	"fmt"
	"strings"
)

// Context is the per-user record of campaign attributes collected during
// the interview. The zero value is an empty context.
type Context struct {
	TargetAudience     string     `json:"target_audience,omitempty"`
	BrandTone          BrandTone  `json:"brand_tone,omitempty"`
	CampaignGoals      []Goal     `json:"campaign_goals,omitempty"`
	PreferredPlatforms []Platform `json:"preferred_platforms,omitempty"`
	ProductDetails     string     `json:"product_details,omitempty"`

	Competitors         []string `json:"competitors,omitempty"`
	TrendingKeywords    []string `json:"trending_keywords,omitempty"`
	ProductReferences   []string `json:"product_references,omitempty"`
	KeyMessages         []string `json:"key_messages,omitempty"`
	Budget              string   `json:"budget,omitempty"`
	Timeline            string   `json:"timeline,omitempty"`
	UniqueSellingPoints []string `json:"unique_selling_points,omitempty"`
	WebEnhanced         bool     `json:"web_enhanced"`
}

// Update is a partial set of context fields extracted from one message.
// Zero-valued fields are treated as absent.
type Update struct {
	TargetAudience      string
	BrandTone           BrandTone
	CampaignGoals       []Goal
	PreferredPlatforms  []Platform
	ProductDetails      string
	Competitors         []string
	TrendingKeywords    []string
	ProductReferences   []string
	KeyMessages         []string
	Budget              string
	Timeline            string
	UniqueSellingPoints []string
}

// RequiredFields lists the fields that must be filled before the
// interview can move past context collection, in question priority order.
var RequiredFields = []string{
	"target_audience",
	"brand_tone",
	"campaign_goals",
	"preferred_platforms",
	"product_details",
}

// Merge applies an update to the context. The merge is additive and never
// destructive: list fields get a union that preserves first-seen order,
// text fields are replaced only when empty or when the new value is
// strictly longer, and the tone is set only when unset. Merging the same
// update twice is a no-op the second time.
func (c *Context) Merge(u Update) {
	mergeText(&c.TargetAudience, u.TargetAudience)
	mergeText(&c.ProductDetails, u.ProductDetails)
	mergeText(&c.Budget, u.Budget)
	mergeText(&c.Timeline, u.Timeline)

	if c.BrandTone == "" {
		c.BrandTone = u.BrandTone
	}

	c.CampaignGoals = mergeList(c.CampaignGoals, u.CampaignGoals)
	c.PreferredPlatforms = mergeList(c.PreferredPlatforms, u.PreferredPlatforms)
	c.Competitors = mergeList(c.Competitors, u.Competitors)
	c.TrendingKeywords = mergeList(c.TrendingKeywords, u.TrendingKeywords)
	c.ProductReferences = mergeList(c.ProductReferences, u.ProductReferences)
	c.KeyMessages = mergeList(c.KeyMessages, u.KeyMessages)
	c.UniqueSellingPoints = mergeList(c.UniqueSellingPoints, u.UniqueSellingPoints)
}

// mergeText replaces the current value only when it is empty or the new
// value is strictly longer. A longer value is treated as more specific;
// shorter follow-up mentions are ignored.
func mergeText(current *string, update string) {
	if update == "" {
		return
	}
	if *current == "" || len(update) > len(*current) {
		*current = update
	}
}

// mergeList appends items not already present, keeping existing order.
func mergeList[T comparable](current, update []T) []T {
	for _, item := range update {
		seen := false
		for _, existing := range current {
			if existing == item {
				seen = true
				break
			}
		}
		if !seen {
			current = append(current, item)
		}
	}
	return current
}

// MissingFields returns the required fields that are still unset, in
// question priority order.
func (c *Context) MissingFields() []string {
	var missing []string
	for _, field := range RequiredFields {
		if c.fieldMissing(field) {
			missing = append(missing, field)
		}
	}
	return missing
}

// IsComplete reports whether every required field is filled. It is true
// exactly when MissingFields returns an empty list.
func (c *Context) IsComplete() bool {
	return len(c.MissingFields()) == 0
}

func (c *Context) fieldMissing(field string) bool {
	switch field {
	case "target_audience":
		return c.TargetAudience == ""
	case "brand_tone":
		return c.BrandTone == ""
	case "campaign_goals":
		return len(c.CampaignGoals) == 0
	case "preferred_platforms":
		return len(c.PreferredPlatforms) == 0
	case "product_details":
		return c.ProductDetails == ""
	}
	return false
}

// ToPromptText serializes all non-missing fields into a deterministic
// human-readable block, one line per field in fixed order. Missing fields
// are omitted rather than printed as empty placeholders. The output is
// embedded verbatim in LLM prompts.
func (c *Context) ToPromptText() string {
	var b strings.Builder

	writeLine := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "%s: %s\n", label, value)
		}
	}

	writeLine("Target audience", c.TargetAudience)
	writeLine("Brand tone", string(c.BrandTone))
	writeLine("Campaign goals", joinEnums(c.CampaignGoals))
	writeLine("Preferred platforms", joinEnums(c.PreferredPlatforms))
	writeLine("Product details", c.ProductDetails)
	writeLine("Competitors", strings.Join(c.Competitors, ", "))
	writeLine("Trending keywords", strings.Join(c.TrendingKeywords, ", "))
	writeLine("Product references", strings.Join(c.ProductReferences, ", "))
	writeLine("Key messages", strings.Join(c.KeyMessages, ", "))
	writeLine("Unique selling points", strings.Join(c.UniqueSellingPoints, ", "))
	writeLine("Budget", c.Budget)
	writeLine("Timeline", c.Timeline)

	return strings.TrimRight(b.String(), "\n")
}

func joinEnums[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
