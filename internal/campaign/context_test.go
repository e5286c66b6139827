package campaign

import (
	"reflect"
	"strings"
	"testing"
)

func TestMergeIdempotent(t *testing.T) {
	c := &Context{}
	update := Update{
		TargetAudience: "Busy parents",
		Competitors:    []string{"Acme", "Globex"},
	}

	c.Merge(update)
	first := *c
	firstCompetitors := append([]string(nil), c.Competitors...)

	c.Merge(update)

	if c.TargetAudience != first.TargetAudience {
		t.Errorf("target audience changed on second merge: %q", c.TargetAudience)
	}
	if !reflect.DeepEqual(c.Competitors, firstCompetitors) {
		t.Errorf("competitors changed on second merge: %v", c.Competitors)
	}
}

func TestMergeTextOnlyOverwritesLonger(t *testing.T) {
	c := &Context{ProductDetails: "Shoes"}

	c.Merge(Update{ProductDetails: "Shoe"})
	if c.ProductDetails != "Shoes" {
		t.Errorf("shorter update should be ignored, got %q", c.ProductDetails)
	}

	c.Merge(Update{ProductDetails: "Sneakers"})
	if c.ProductDetails != "Sneakers" {
		t.Errorf("longer update should replace, got %q", c.ProductDetails)
	}
}

func TestMergeListUnionPreservesOrder(t *testing.T) {
	c := &Context{Competitors: []string{"Acme", "Globex"}}

	c.Merge(Update{Competitors: []string{"Acme"}})
	if !reflect.DeepEqual(c.Competitors, []string{"Acme", "Globex"}) {
		t.Errorf("expected unchanged list, got %v", c.Competitors)
	}

	c.Merge(Update{Competitors: []string{"Initech", "Acme"}})
	if !reflect.DeepEqual(c.Competitors, []string{"Acme", "Globex", "Initech"}) {
		t.Errorf("expected appended new item only, got %v", c.Competitors)
	}
}

func TestMergeToneOnlyWhenUnset(t *testing.T) {
	c := &Context{}
	c.Merge(Update{BrandTone: ToneCasual})
	if c.BrandTone != ToneCasual {
		t.Fatalf("expected casual, got %q", c.BrandTone)
	}
	c.Merge(Update{BrandTone: ToneFunny})
	if c.BrandTone != ToneCasual {
		t.Errorf("tone should not be overwritten, got %q", c.BrandTone)
	}
}

func TestCompletenessMatchesMissingFields(t *testing.T) {
	c := &Context{}
	if c.IsComplete() {
		t.Fatal("empty context should not be complete")
	}
	if got := c.MissingFields(); len(got) != len(RequiredFields) {
		t.Fatalf("expected all %d fields missing, got %v", len(RequiredFields), got)
	}

	c.TargetAudience = "Young professionals"
	c.BrandTone = ToneProfessional
	c.CampaignGoals = []Goal{GoalAwareness}
	c.PreferredPlatforms = []Platform{PlatformInstagram}
	c.ProductDetails = "A meditation app"

	if !c.IsComplete() {
		t.Errorf("context should be complete, missing: %v", c.MissingFields())
	}
	if got := c.MissingFields(); len(got) != 0 {
		t.Errorf("expected no missing fields, got %v", got)
	}
}

func TestMissingFieldsOrder(t *testing.T) {
	c := &Context{BrandTone: ToneCasual, ProductDetails: "Socks"}
	want := []string{"target_audience", "campaign_goals", "preferred_platforms"}
	if got := c.MissingFields(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestToPromptTextOmitsMissing(t *testing.T) {
	c := &Context{
		TargetAudience: "Runners",
		BrandTone:      ToneInspirational,
		CampaignGoals:  []Goal{GoalAwareness, GoalEngagement},
	}

	text := c.ToPromptText()

	if !strings.Contains(text, "Target audience: Runners") {
		t.Errorf("missing target audience line:\n%s", text)
	}
	if !strings.Contains(text, "Campaign goals: brand_awareness, engagement") {
		t.Errorf("missing goals line:\n%s", text)
	}
	if strings.Contains(text, "Competitors") || strings.Contains(text, "Budget") {
		t.Errorf("empty fields should be omitted:\n%s", text)
	}
}

func TestToPromptTextDeterministic(t *testing.T) {
	c := &Context{
		TargetAudience:     "Gamers",
		BrandTone:          ToneFunny,
		CampaignGoals:      []Goal{GoalConversion},
		PreferredPlatforms: []Platform{PlatformTikTok, PlatformYouTube},
		ProductDetails:     "A mechanical keyboard",
		Competitors:        []string{"KeyCo"},
	}
	if c.ToPromptText() != c.ToPromptText() {
		t.Error("serialization should be deterministic")
	}

	lines := strings.Split(c.ToPromptText(), "\n")
	if !strings.HasPrefix(lines[0], "Target audience") {
		t.Errorf("field order changed, first line: %q", lines[0])
	}
}
