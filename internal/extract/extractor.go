// Package extract pulls campaign context updates out of free-text chat
// messages. A fixed pattern strategy always runs; an optional AI strategy
// is layered on top, with the AI result winning per field.
package extract

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"campaignforge/internal/campaign"
)

// textPatterns maps scalar text fields to an ordered list of patterns.
// The first matching pattern wins. All matching runs against the
// lower-cased message.
var textPatterns = []struct {
	field    string
	patterns []*regexp.Regexp
}{
	{"target_audience", []*regexp.Regexp{
		regexp.MustCompile(`(?:audience|target|customers?|users?).{0,20}?(?:is|are|:)\s*([^.!?]+)`),
		regexp.MustCompile(`(?:reach|targeting|focusing on)\s+([^.!?]+?)(?:audience|market|demographic)`),
	}},
	{"product_details", []*regexp.Regexp{
		regexp.MustCompile(`(?:product|service|business|offering).{0,30}?(?:is|are|:)\s*([^.!?]+)`),
		regexp.MustCompile(`(?:sell|offer|provide).{0,30}?([^.!?]+)`),
	}},
	{"budget", []*regexp.Regexp{
		regexp.MustCompile(`(?:budget|spend|spending).{0,20}?(?:is|are|:|of)\s*([^.!?]+)`),
	}},
	{"timeline", []*regexp.Regexp{
		regexp.MustCompile(`(?:timeline|schedule|deadline|launching|launch).{0,20}?(?:is|are|:|by|in)\s*([^.!?]+)`),
	}},
}

// listPatterns maps list fields to their patterns. A match is split into
// items on commas, semicolons, or the word "and".
var listPatterns = []struct {
	field    string
	patterns []*regexp.Regexp
}{
	{"competitors", []*regexp.Regexp{
		regexp.MustCompile(`(?:competitors?|competition).{0,30}?(?:is|are|:)\s*([^.!?]+)`),
		regexp.MustCompile(`(?:competing against|similar to|like).{0,30}?([^.!?]+)`),
	}},
	{"key_messages", []*regexp.Regexp{
		regexp.MustCompile(`(?:message|value|benefit|proposition).{0,30}?(?:is|are|:)\s*([^.!?]+)`),
		regexp.MustCompile(`(?:highlight|emphasize|focus on).{0,30}?([^.!?]+)`),
	}},
}

var listSeparator = regexp.MustCompile(`[,;]|\band\b`)

// toneKeywords is scanned in order; the first tone mentioned wins.
var toneKeywords = []struct {
	keyword string
	tone    campaign.BrandTone
}{
	{"professional", campaign.ToneProfessional},
	{"casual", campaign.ToneCasual},
	{"funny", campaign.ToneFunny},
	{"inspirational", campaign.ToneInspirational},
	{"authoritative", campaign.ToneAuthoritative},
}

// goalKeywords collects every matching goal, not just the first.
var goalKeywords = []struct {
	keyword string
	goal    campaign.Goal
}{
	{"brand awareness", campaign.GoalAwareness},
	{"awareness", campaign.GoalAwareness},
	{"conversions", campaign.GoalConversion},
	{"conversion", campaign.GoalConversion},
	{"engagement", campaign.GoalEngagement},
	{"lead generation", campaign.GoalLeadGeneration},
	{"leads", campaign.GoalLeadGeneration},
}

// platformKeywords collects every matching platform.
var platformKeywords = []struct {
	keyword  string
	platform campaign.Platform
}{
	{"facebook", campaign.PlatformFacebook},
	{"instagram", campaign.PlatformInstagram},
	{"twitter", campaign.PlatformTwitter},
	{"linkedin", campaign.PlatformLinkedIn},
	{"email", campaign.PlatformEmail},
	{"google ads", campaign.PlatformGoogleAds},
	{"tiktok", campaign.PlatformTikTok},
	{"youtube", campaign.PlatformYouTube},
}

// Extractor composes the pattern strategy with an optional AI strategy.
// The zero value runs patterns only.
type Extractor struct {
	AI *AIExtractor
}

// Extract returns the partial context update found in the message. It
// never fails: a message with no recognizable fields yields an empty
// update, and an AI strategy error silently degrades to the pattern-only
// result.
func (e *Extractor) Extract(ctx context.Context, message string, current *campaign.Context) campaign.Update {
	update := ExtractPatterns(message)
	if e.AI != nil {
		layerUpdate(&update, e.AI.Extract(ctx, message, current))
	}
	return update
}

// ExtractPatterns runs the fixed pattern strategy against the message.
func ExtractPatterns(message string) campaign.Update {
	var update campaign.Update
	lower := strings.ToLower(message)

	for _, tp := range textPatterns {
		for _, re := range tp.patterns {
			m := re.FindStringSubmatch(lower)
			if m == nil {
				continue
			}
			value := strings.TrimSpace(m[1])
			if len(value) <= 2 {
				continue
			}
			setTextField(&update, tp.field, capitalize(value))
			break
		}
	}

	for _, lp := range listPatterns {
		for _, re := range lp.patterns {
			m := re.FindStringSubmatch(lower)
			if m == nil {
				continue
			}
			value := strings.TrimSpace(m[1])
			if len(value) <= 2 {
				continue
			}
			items := splitItems(value)
			if len(items) > 0 {
				setListField(&update, lp.field, items)
			}
			break
		}
	}

	for _, tk := range toneKeywords {
		if strings.Contains(lower, tk.keyword) {
			update.BrandTone = tk.tone
			break
		}
	}

	for _, gk := range goalKeywords {
		if strings.Contains(lower, gk.keyword) {
			update.CampaignGoals = appendUnique(update.CampaignGoals, gk.goal)
		}
	}

	for _, pk := range platformKeywords {
		if strings.Contains(lower, pk.keyword) {
			update.PreferredPlatforms = appendUnique(update.PreferredPlatforms, pk.platform)
		}
	}

	return update
}

func setTextField(u *campaign.Update, field, value string) {
	switch field {
	case "target_audience":
		u.TargetAudience = value
	case "product_details":
		u.ProductDetails = value
	case "budget":
		u.Budget = value
	case "timeline":
		u.Timeline = value
	}
}

func setListField(u *campaign.Update, field string, items []string) {
	switch field {
	case "competitors":
		u.Competitors = items
	case "key_messages":
		u.KeyMessages = items
	}
}

// splitItems splits a captured phrase into trimmed non-empty items.
func splitItems(value string) []string {
	var items []string
	for _, part := range listSeparator.Split(value, -1) {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}

// capitalize upper-cases the first rune. Matching runs on the lower-cased
// message, so captured text arrives all lower-case.
func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func appendUnique[T comparable](list []T, item T) []T {
	for _, existing := range list {
		if existing == item {
			return list
		}
	}
	return append(list, item)
}

// layerUpdate overlays non-empty fields of the AI update on top of the
// pattern update. The later strategy wins on collision.
func layerUpdate(base *campaign.Update, overlay campaign.Update) {
	if overlay.TargetAudience != "" {
		base.TargetAudience = overlay.TargetAudience
	}
	if overlay.BrandTone != "" {
		base.BrandTone = overlay.BrandTone
	}
	if len(overlay.CampaignGoals) > 0 {
		base.CampaignGoals = overlay.CampaignGoals
	}
	if len(overlay.PreferredPlatforms) > 0 {
		base.PreferredPlatforms = overlay.PreferredPlatforms
	}
	if overlay.ProductDetails != "" {
		base.ProductDetails = overlay.ProductDetails
	}
	if len(overlay.Competitors) > 0 {
		base.Competitors = overlay.Competitors
	}
	if len(overlay.TrendingKeywords) > 0 {
		base.TrendingKeywords = overlay.TrendingKeywords
	}
	if len(overlay.ProductReferences) > 0 {
		base.ProductReferences = overlay.ProductReferences
	}
	if len(overlay.KeyMessages) > 0 {
		base.KeyMessages = overlay.KeyMessages
	}
	if overlay.Budget != "" {
		base.Budget = overlay.Budget
	}
	if overlay.Timeline != "" {
		base.Timeline = overlay.Timeline
	}
	if len(overlay.UniqueSellingPoints) > 0 {
		base.UniqueSellingPoints = overlay.UniqueSellingPoints
	}
}
