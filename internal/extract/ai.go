package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"campaignforge/internal/campaign"
	"campaignforge/internal/llm"
)

const aiSystemPrompt = `You are a marketing context extraction engine. Analyze the user's message and extract campaign attributes.

You MUST respond with valid JSON matching this schema (omit fields that are not present in the message):
{
  "target_audience": "who the campaign targets",
  "brand_tone": "professional|casual|funny|inspirational|authoritative",
  "campaign_goals": ["brand_awareness","conversions","engagement","lead_generation"],
  "preferred_platforms": ["facebook","instagram","twitter","linkedin","email","google_ads","tiktok","youtube"],
  "product_details": "what is being marketed",
  "competitors": ["names"],
  "key_messages": ["value propositions"],
  "unique_selling_points": ["differentiators"],
  "budget": "budget as stated",
  "timeline": "schedule as stated"
}

Rules:
- Only extract what the message actually says. Never invent values.
- Use the exact enum spellings above for tone, goals and platforms.`

// AIExtractor asks an LLM to extract context fields from a message. It is
// a best-effort layer: any provider or parse failure yields an empty
// update so the conversation never stalls on it.
type AIExtractor struct {
	provider llm.Provider
	model    string
}

// NewAIExtractor creates an AI-assisted extractor.
func NewAIExtractor(provider llm.Provider, model string) *AIExtractor {
	return &AIExtractor{provider: provider, model: model}
}

// aiUpdate is the wire shape the model is asked to produce.
type aiUpdate struct {
	TargetAudience      string   `json:"target_audience"`
	BrandTone           string   `json:"brand_tone"`
	CampaignGoals       []string `json:"campaign_goals"`
	PreferredPlatforms  []string `json:"preferred_platforms"`
	ProductDetails      string   `json:"product_details"`
	Competitors         []string `json:"competitors"`
	KeyMessages         []string `json:"key_messages"`
	UniqueSellingPoints []string `json:"unique_selling_points"`
	Budget              string   `json:"budget"`
	Timeline            string   `json:"timeline"`
}

// Extract runs the AI strategy. The current context is included in the
// prompt so the model does not re-extract values that are already known.
func (a *AIExtractor) Extract(ctx context.Context, message string, current *campaign.Context) campaign.Update {
	var b strings.Builder
	b.WriteString("## Known Context\n")
	if known := current.ToPromptText(); known != "" {
		b.WriteString(known + "\n")
	} else {
		b.WriteString("(nothing yet)\n")
	}
	fmt.Fprintf(&b, "\n## User Message\n%s\n", message)
	b.WriteString("\nExtract only new or more specific values.")

	resp, err := a.provider.Complete(ctx, llm.CompletionRequest{
		Model: a.model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: aiSystemPrompt},
			{Role: llm.RoleUser, Content: b.String()},
		},
		MaxTokens:   1024,
		Temperature: 0.1,
		JSONMode:    true,
	})
	if err != nil {
		return campaign.Update{}
	}

	return parseAIUpdate(resp.Content)
}

func parseAIUpdate(content string) campaign.Update {
	jsonStr := content
	if idx := strings.Index(content, "{"); idx >= 0 {
		jsonStr = content[idx:]
	}
	if idx := strings.LastIndex(jsonStr, "}"); idx >= 0 {
		jsonStr = jsonStr[:idx+1]
	}

	var raw aiUpdate
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return campaign.Update{}
	}

	update := campaign.Update{
		TargetAudience:      strings.TrimSpace(raw.TargetAudience),
		ProductDetails:      strings.TrimSpace(raw.ProductDetails),
		Competitors:         trimAll(raw.Competitors),
		KeyMessages:         trimAll(raw.KeyMessages),
		UniqueSellingPoints: trimAll(raw.UniqueSellingPoints),
		Budget:              strings.TrimSpace(raw.Budget),
		Timeline:            strings.TrimSpace(raw.Timeline),
	}

	switch campaign.BrandTone(raw.BrandTone) {
	case campaign.ToneProfessional, campaign.ToneCasual, campaign.ToneFunny,
		campaign.ToneInspirational, campaign.ToneAuthoritative:
		update.BrandTone = campaign.BrandTone(raw.BrandTone)
	}

	for _, g := range raw.CampaignGoals {
		switch goal := campaign.Goal(g); goal {
		case campaign.GoalAwareness, campaign.GoalConversion,
			campaign.GoalEngagement, campaign.GoalLeadGeneration:
			update.CampaignGoals = appendUnique(update.CampaignGoals, goal)
		}
	}

	for _, p := range raw.PreferredPlatforms {
		switch platform := campaign.Platform(p); platform {
		case campaign.PlatformFacebook, campaign.PlatformInstagram,
			campaign.PlatformTwitter, campaign.PlatformLinkedIn,
			campaign.PlatformEmail, campaign.PlatformGoogleAds,
			campaign.PlatformTikTok, campaign.PlatformYouTube:
			update.PreferredPlatforms = appendUnique(update.PreferredPlatforms, platform)
		}
	}

	return update
}

func trimAll(items []string) []string {
	var out []string
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
