// Package composer turns a completed campaign context into a structured
// deliverable document via the LLM collaborator. Failure at any point
// degrades to a fixed default document, never an error.
package composer

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"campaignforge/internal/campaign"
	"campaignforge/internal/llm"
)

// SystemPrompt frames every LLM interaction for this product.
const SystemPrompt = `You are a marketing strategist and creative co-pilot. Your role is to help users create comprehensive, data-driven marketing campaigns.

Key Responsibilities:
1. Understand user requirements through guided questioning
2. Extract and organize marketing context (audience, tone, goals, platforms)
3. Provide strategic marketing insights
4. Generate complete campaign deliverables (ad copy, emails, social posts)
5. Tailor all content to the specific brand context

Always maintain a professional yet approachable tone. Ask one question at a time to avoid overwhelming the user. Provide clear, actionable marketing advice.`

const deliverablesTemplate = `Generate a COMPLETE marketing campaign based on this context:

%s

DELIVERABLES REQUIRED:

1. CAMPAIGN STRATEGY OVERVIEW
- Overall approach and positioning
- Key differentiators
- Success metrics

2. AD COPY (for each specified platform)
- Attention-grabbing headlines
- Compelling body copy
- Strong calls-to-action
- Hashtags where relevant

3. EMAIL DRAFTS
- Welcome/announcement email
- Educational/follow-up email
- Promotional email
- Complete with subject lines

4. SOCIAL MEDIA CONTENT
- 5-7 post ideas with full copy
- Platform-specific formatting
- Visual content suggestions

5. CAMPAIGN TIMELINE
- Phase 1: Preparation (Days 1-3)
- Phase 2: Launch (Days 4-10)
- Phase 3: Optimization (Days 11-30)

Return as structured JSON with this exact format:
{
    "campaign_strategy": {
        "overview": "2-3 paragraph strategy",
        "targeting": "Audience targeting approach",
        "positioning": "Brand positioning statement",
        "success_metrics": ["Metric 1", "Metric 2"]
    },
    "ad_copy": {
        "facebook": ["Headline 1", "Headline 2"],
        "instagram": ["Post 1", "Post 2"],
        "email": ["Subject: ...\n\nBody..."],
        "google_ads": ["Headline 1 | Headline 2"]
    },
    "email_drafts": [
        "Subject: ...\n\nBody content...",
        "Subject: ...\n\nBody content..."
    ],
    "social_media_posts": [
        "Platform: Post content with hashtags",
        "Platform: Post content with hashtags"
    ],
    "content_calendar": {
        "week_1": ["Task 1", "Task 2"],
        "week_2": ["Task 1", "Task 2"],
        "week_3": ["Task 1", "Task 2"],
        "week_4": ["Task 1", "Task 2"]
    },
    "key_messaging": ["Message 1", "Message 2", "Message 3"]
}

Make all content specific, actionable, and tailored to the context.`

// Composer generates campaign deliverables.
type Composer struct {
	provider    llm.Provider
	model       string
	temperature float64
	maxTokens   int
	log         *logrus.Logger
}

// New creates a campaign composer.
func New(provider llm.Provider, model string, temperature float64, maxTokens int, log *logrus.Logger) *Composer {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if maxTokens == 0 {
		maxTokens = 4000
	}
	return &Composer{
		provider:    provider,
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
		log:         log,
	}
}

// Compose asks the LLM for a full campaign document for the given
// context. It never returns an error: an unreachable provider or an
// unparseable response yields the default document.
func (c *Composer) Compose(ctx context.Context, cc *campaign.Context) *Document {
	prompt := fmt.Sprintf(deliverablesTemplate, cc.ToPromptText())

	resp, err := c.provider.Complete(ctx, llm.CompletionRequest{
		Model: c.model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: SystemPrompt},
			{Role: llm.RoleUser, Content: prompt},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	})
	if err != nil {
		c.log.WithError(err).Warn("campaign generation failed, returning default document")
		return DefaultDocument()
	}

	doc, ok := ParseResponse(resp.Content)
	if !ok {
		c.log.Warn("campaign response was not parseable, returning default document")
		return DefaultDocument()
	}
	return doc
}

var fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// ParseResponse parses an LLM response into a Document. Strategies are
// tried in order: the whole body as JSON, the contents of a fenced code
// block, then the largest brace-delimited substring. The second return
// value is false when none succeed.
func ParseResponse(content string) (*Document, bool) {
	var doc Document
	if err := json.Unmarshal([]byte(content), &doc); err == nil {
		return &doc, true
	}

	if m := fencedBlock.FindStringSubmatch(content); m != nil {
		doc = Document{}
		if err := json.Unmarshal([]byte(m[1]), &doc); err == nil {
			return &doc, true
		}
	}

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		doc = Document{}
		if err := json.Unmarshal([]byte(content[start:end+1]), &doc); err == nil {
			return &doc, true
		}
	}

	return nil, false
}
