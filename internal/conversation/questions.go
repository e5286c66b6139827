package conversation

import "campaignforge/internal/campaign"

// WelcomeMessage opens every new conversation.
const WelcomeMessage = "Welcome! I'm your AI Marketing Strategist. I'll help you create a comprehensive marketing campaign step by step.\n\nLet's start by understanding your basics. Tell me about your product or service, and I'll guide you through the rest."

const insightsIntro = "Great! I have the basics. Now let's gather some strategic insights.\n\nDo you have any specific competitors I should know about, or would you like me to research some based on your industry?"

const campaignDoneMessage = "🎉 **Campaign Generation Complete!**\n\nI've created a comprehensive marketing campaign tailored to your needs. Here are your deliverables:"

const campaignAlreadyDoneMessage = "Your campaign has already been generated. Here it is again; reset the conversation to start a new one."

// fieldQuestions are asked in campaign.RequiredFields priority order.
var fieldQuestions = map[string]string{
	"target_audience":     "🎯 **Target Audience**: Who are you trying to reach? (e.g., 'Young professionals aged 25-35 interested in fitness')",
	"brand_tone":          "🎭 **Brand Tone**: How would you describe your brand's personality? (professional, casual, funny, inspirational, authoritative)",
	"campaign_goals":      "🎯 **Campaign Goals**: What do you want to achieve? (brand awareness, conversions, engagement, lead generation)",
	"preferred_platforms": "📱 **Platforms**: Where will you market? (Facebook, Instagram, Twitter, LinkedIn, Email, Google Ads, TikTok, YouTube)",
	"product_details":     "📦 **Product/Service**: Tell me about what you're offering and its key benefits",
}

const (
	competitorsQuestion = "🔍 **Competitor Research**: Who are your main competitors? (I can also suggest some based on your industry)"
	trendsQuestion      = "📈 **Market Trends**: Any specific keywords or trends you want to target? (I can research current trends in your space)"
	keyMessagesQuestion = "💡 **Key Messages**: What are your main value propositions or unique selling points?"
	readyMessage        = "Ready to create your campaign!"
	anythingElse        = "Is there anything else you'd like to add before we create your campaign?"
)

// nextQuestion picks the next prompt for the user. The second return
// marks a transitional message that should be sent verbatim rather than
// rephrased conversationally.
func nextQuestion(c *campaign.Context, state campaign.State) (string, bool) {
	missing := c.MissingFields()

	switch {
	case state == campaign.StateCollectingContext && len(missing) > 0:
		return fieldQuestions[missing[0]], false
	case state == campaign.StateCollectingContext:
		return insightsIntro, true
	case state == campaign.StateGatheringInsights:
		switch {
		case len(c.Competitors) == 0:
			return competitorsQuestion, false
		case len(c.TrendingKeywords) == 0:
			return trendsQuestion, false
		case len(c.KeyMessages) == 0:
			return keyMessagesQuestion, false
		default:
			return readyMessage, true
		}
	}
	return anythingElse, true
}
