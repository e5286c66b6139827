package composer

// Strategy is the campaign_strategy section of a deliverable document.
type Strategy struct {
	Overview       string   `json:"overview"`
	Targeting      string   `json:"targeting"`
	Positioning    string   `json:"positioning"`
	SuccessMetrics []string `json:"success_metrics"`
}

// Document is the structured campaign deliverable returned to callers.
// Its top-level key set is fixed; callers depend on every key being
// present even when the LLM output was unusable.
type Document struct {
	CampaignStrategy Strategy            `json:"campaign_strategy"`
	AdCopy           map[string][]string `json:"ad_copy"`
	EmailDrafts      []string            `json:"email_drafts"`
	SocialMediaPosts []string            `json:"social_media_posts"`
	ContentCalendar  map[string][]string `json:"content_calendar"`
	KeyMessaging     []string            `json:"key_messaging"`
}

// DefaultDocument returns the fixed fallback deliverable used whenever
// the LLM call fails or its output cannot be parsed.
func DefaultDocument() *Document {
	return &Document{
		CampaignStrategy: Strategy{
			Overview:       "Data-driven marketing campaign focused on your target audience and business goals.",
			Targeting:      "Precision targeting based on audience demographics and behaviors.",
			Positioning:    "Clear market positioning highlighting unique value propositions.",
			SuccessMetrics: []string{"Engagement rate", "Conversion rate", "ROI", "Brand awareness"},
		},
		AdCopy: map[string][]string{
			"facebook":   {"Engaging Facebook ad copy tailored to your audience"},
			"instagram":  {"Visual Instagram content with compelling captions"},
			"email":      {"Professional email campaigns with clear CTAs"},
			"google_ads": {"High-converting Google Ads copy with relevant keywords"},
		},
		EmailDrafts: []string{
			"Subject: Welcome to Our Campaign\n\nEngaging email content...",
			"Subject: Special Offer Inside\n\nCompelling follow-up content...",
		},
		SocialMediaPosts: []string{
			"Engaging social media post with relevant hashtags",
			"Educational content about your industry",
			"Promotional post with clear call-to-action",
		},
		ContentCalendar: map[string][]string{
			"week_1": {"Platform setup", "Content creation", "Audience research"},
			"week_2": {"Campaign launch", "Initial promotions", "Engagement tracking"},
			"week_3": {"Performance analysis", "Content optimization", "A/B testing"},
			"week_4": {"Scale successful tactics", "Audience expansion", "ROI calculation"},
		},
		KeyMessaging: []string{
			"Clear value proposition",
			"Compelling unique selling points",
			"Strong call-to-action messaging",
		},
	}
}
