// Package banner builds image-generation prompts from campaign context
// and delegates synthesis to the image collaborator.
package banner

import (
	"fmt"
	"strings"

	"campaignforge/internal/campaign"
)

// DefaultAspectRatio is used when a request does not specify one.
const DefaultAspectRatio = "16:9"

type dimensions struct {
	width  int
	height int
}

// aspectRatios maps ratio tokens to pixel sizes. Unknown tokens fall back
// to the default ratio's pair.
var aspectRatios = map[string]dimensions{
	"1:1":  {1024, 1024},
	"16:9": {1024, 576},
	"9:16": {576, 1024},
	"4:3":  {1024, 768},
	"3:4":  {768, 1024},
	"2:3":  {682, 1024},
}

// platformRatios is the preferred aspect ratio per platform.
var platformRatios = map[string]string{
	"facebook":         "1:1",
	"instagram":        "1:1",
	"instagram_stories": "9:16",
	"twitter":          "16:9",
	"linkedin":         "1:1",
	"youtube":          "16:9",
	"tiktok":           "9:16",
	"pinterest":        "2:3",
	"website":          "16:9",
}

// platformPrompts adds platform-specific art direction.
var platformPrompts = map[string]string{
	"facebook":         "Facebook ad banner, optimized for news feed",
	"instagram":        "Instagram post, visually appealing and shareable",
	"instagram_stories": "Instagram story, vertical format, engaging",
	"twitter":          "Twitter header or promoted post banner",
	"linkedin":         "LinkedIn professional banner, corporate style",
	"youtube":          "YouTube channel art or video thumbnail",
	"tiktok":           "TikTok video thumbnail, trendy and eye-catching",
	"pinterest":        "Pinterest pin, inspirational and detailed",
	"website":          "Website header banner, professional and clean",
}

// toneStyles maps brand tone to visual style guidance. Unrecognized tones
// use the professional style.
var toneStyles = map[campaign.BrandTone]string{
	campaign.ToneProfessional:  "clean corporate design, modern layout, professional typography, sophisticated",
	campaign.ToneCasual:        "friendly design, warm colors, relatable imagery, approachable",
	campaign.ToneFunny:         "playful design, bright colors, engaging composition, humorous elements",
	campaign.ToneInspirational: "uplifting design, motivational imagery, elegant composition, inspiring",
	campaign.ToneAuthoritative: "bold design, strong typography, premium aesthetic, trustworthy",
}

var qualitySuffixes = []string{
	"high quality marketing design",
	"professional photography style",
	"excellent composition",
	"vibrant colors",
	"clear typography",
	"no text overlay needed",
	"marketing and advertising style",
}

// batchPlatforms is the fixed set generated by GenerateAll, in order.
var batchPlatforms = []struct {
	platform string
	ratio    string
}{
	{"facebook", "1:1"},
	{"instagram", "1:1"},
	{"instagram_stories", "9:16"},
	{"twitter", "16:9"},
	{"linkedin", "1:1"},
	{"website", "16:9"},
}

// Dimensions maps an aspect-ratio token to a pixel pair.
func Dimensions(ratio string) (width, height int) {
	d, ok := aspectRatios[ratio]
	if !ok {
		d = aspectRatios[DefaultAspectRatio]
	}
	return d.width, d.height
}

// PlatformRatio returns the preferred aspect ratio for a platform,
// defaulting to 16:9.
func PlatformRatio(platform string) string {
	if ratio, ok := platformRatios[platform]; ok {
		return ratio
	}
	return DefaultAspectRatio
}

// BatchPlatforms lists the fixed batch set in generation order.
func BatchPlatforms() []PlatformInfo {
	out := make([]PlatformInfo, len(batchPlatforms))
	for i, bp := range batchPlatforms {
		out[i] = PlatformInfo{Platform: bp.platform, AspectRatio: bp.ratio}
	}
	return out
}

// SupportedPlatforms lists the platforms with a preferred ratio, in the
// batch generation order first, then the remainder.
func SupportedPlatforms() []PlatformInfo {
	var out []PlatformInfo
	seen := map[string]bool{}
	for _, bp := range batchPlatforms {
		out = append(out, PlatformInfo{Platform: bp.platform, AspectRatio: bp.ratio})
		seen[bp.platform] = true
	}
	for _, p := range []string{"youtube", "tiktok", "pinterest"} {
		if !seen[p] {
			out = append(out, PlatformInfo{Platform: p, AspectRatio: platformRatios[p]})
		}
	}
	return out
}

// PlatformInfo pairs a platform name with its preferred aspect ratio.
type PlatformInfo struct {
	Platform    string `json:"platform"`
	AspectRatio string `json:"aspect_ratio"`
}

// BuildPrompt assembles the image prompt for a campaign context and
// platform. The context may be incomplete; missing fields get generic
// placeholder phrases so a banner can always be attempted.
func BuildPrompt(c *campaign.Context, platform string) string {
	product := c.ProductDetails
	if product == "" {
		product = "our product/service"
	}
	audience := c.TargetAudience
	if audience == "" {
		audience = "target customers"
	}

	parts := []string{
		fmt.Sprintf("Professional marketing banner for %s", product),
		fmt.Sprintf("targeting %s", audience),
	}

	if pp, ok := platformPrompts[platform]; ok {
		parts = append(parts, pp)
	} else {
		parts = append(parts, "digital marketing banner")
	}

	style, ok := toneStyles[c.BrandTone]
	if !ok {
		style = toneStyles[campaign.ToneProfessional]
	}
	parts = append(parts, style)

	if len(c.CampaignGoals) > 0 {
		goals := make([]string, len(c.CampaignGoals))
		for i, g := range c.CampaignGoals {
			goals[i] = string(g)
		}
		parts = append(parts, fmt.Sprintf("campaign goals: %s", strings.Join(goals, ", ")))
	}

	if len(c.KeyMessages) > 0 {
		parts = append(parts, fmt.Sprintf("key message: %s", c.KeyMessages[0]))
	}

	parts = append(parts, qualitySuffixes...)
	return strings.Join(parts, ", ")
}
