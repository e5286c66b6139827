package campaign

// BrandTone is the voice and personality of the brand.
type BrandTone string

const (
	ToneProfessional  BrandTone = "professional"
	ToneCasual        BrandTone = "casual"
	ToneFunny         BrandTone = "funny"
	ToneInspirational BrandTone = "inspirational"
	ToneAuthoritative BrandTone = "authoritative"
)

// Goal is a primary campaign objective.
type Goal string

const (
	GoalAwareness      Goal = "brand_awareness"
	GoalConversion     Goal = "conversions"
	GoalEngagement     Goal = "engagement"
	GoalLeadGeneration Goal = "lead_generation"
)

// Platform is a marketing channel.
type Platform string

const (
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformTwitter   Platform = "twitter"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformEmail     Platform = "email"
	PlatformGoogleAds Platform = "google_ads"
	PlatformTikTok    Platform = "tiktok"
	PlatformYouTube   Platform = "youtube"
)

// State tracks which phase of the campaign interview a session is in.
// Transitions are strictly forward; GeneratingCampaign is terminal.
type State string

const (
	StateCollectingContext  State = "collecting_context"
	StateGatheringInsights  State = "gathering_insights"
	StateReadyForCampaign   State = "ready_for_campaign"
	StateGeneratingCampaign State = "generating_campaign"
)
