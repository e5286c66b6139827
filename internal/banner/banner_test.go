package banner

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"campaignforge/internal/campaign"
	"campaignforge/internal/imagegen"
)

type fakeGenerator struct {
	url   string
	err   error
	calls int
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string, width, height int) (*imagegen.Image, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &imagegen.Image{URL: f.url, ContentType: "image/png"}, nil
}

func (f *fakeGenerator) Model() string { return "fake-model" }

func TestDimensionsKnownRatios(t *testing.T) {
	cases := []struct {
		ratio  string
		width  int
		height int
	}{
		{"1:1", 1024, 1024},
		{"16:9", 1024, 576},
		{"9:16", 576, 1024},
		{"4:3", 1024, 768},
		{"3:4", 768, 1024},
		{"2:3", 682, 1024},
	}
	for _, tc := range cases {
		w, h := Dimensions(tc.ratio)
		if w != tc.width || h != tc.height {
			t.Errorf("Dimensions(%q) = %dx%d, want %dx%d", tc.ratio, w, h, tc.width, tc.height)
		}
	}
}

func TestDimensionsUnknownRatioUsesDefault(t *testing.T) {
	dw, dh := Dimensions(DefaultAspectRatio)
	w, h := Dimensions("5:7")
	if w != dw || h != dh {
		t.Errorf("unknown ratio gave %dx%d, want default pair %dx%d", w, h, dw, dh)
	}
}

func TestPlatformRatio(t *testing.T) {
	if got := PlatformRatio("instagram_stories"); got != "9:16" {
		t.Errorf("instagram_stories ratio = %q", got)
	}
	if got := PlatformRatio("myspace"); got != DefaultAspectRatio {
		t.Errorf("unknown platform ratio = %q", got)
	}
}

func TestBuildPromptUsesContextAndPlatform(t *testing.T) {
	cc := &campaign.Context{
		ProductDetails: "Organic cold brew coffee",
		TargetAudience: "Remote workers",
		BrandTone:      campaign.ToneCasual,
		CampaignGoals:  []campaign.Goal{campaign.GoalAwareness},
		KeyMessages:    []string{"Fuel your focus", "Brewed slow"},
	}
	prompt := BuildPrompt(cc, "instagram")

	for _, want := range []string{
		"Organic cold brew coffee",
		"Remote workers",
		"Instagram post",
		"friendly design",
		"brand_awareness",
		"Fuel your focus",
		"high quality marketing design",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if strings.Contains(prompt, "Brewed slow") {
		t.Error("only the first key message should appear in the prompt")
	}
}

func TestBuildPromptEmptyContextFallsBack(t *testing.T) {
	prompt := BuildPrompt(&campaign.Context{}, "")
	if !strings.Contains(prompt, "our product/service") {
		t.Error("missing product placeholder")
	}
	if !strings.Contains(prompt, "target customers") {
		t.Error("missing audience placeholder")
	}
	if !strings.Contains(prompt, "digital marketing banner") {
		t.Error("missing generic platform descriptor")
	}
	if !strings.Contains(prompt, "clean corporate design") {
		t.Error("unset tone should use the professional style")
	}
}

func TestServiceGenerateDownloadsImage(t *testing.T) {
	imgServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("png-bytes"))
	}))
	defer imgServer.Close()

	gen := &fakeGenerator{url: imgServer.URL + "/banner.png"}
	svc := NewService(gen, "", nil)

	b, err := svc.Generate(context.Background(), &campaign.Context{ProductDetails: "Socks"}, "", "twitter")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if b.AspectRatio != "16:9" {
		t.Errorf("aspect ratio = %q, want twitter's 16:9", b.AspectRatio)
	}
	if b.Dimensions != "1024x576" {
		t.Errorf("dimensions = %q", b.Dimensions)
	}
	if b.Model != "fake-model" {
		t.Errorf("model = %q", b.Model)
	}
	want := base64.StdEncoding.EncodeToString([]byte("png-bytes"))
	if b.ImageData != want {
		t.Error("image data not base64 of downloaded bytes")
	}
}

func TestServiceGeneratePropagatesError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("quota exceeded")}
	svc := NewService(gen, "", nil)

	if _, err := svc.Generate(context.Background(), &campaign.Context{}, "1:1", ""); err == nil {
		t.Fatal("expected error from generator failure")
	}
}

func TestGenerateAllCollectsFailures(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("down")}
	svc := NewService(gen, "", nil)

	results := svc.GenerateAll(context.Background(), &campaign.Context{})
	if len(results) != 6 {
		t.Fatalf("expected 6 platform results, got %d", len(results))
	}
	for platform, res := range results {
		if res.Error == "" {
			t.Errorf("platform %s should carry an error", platform)
		}
		if res.Banner != nil {
			t.Errorf("platform %s should not carry a banner", platform)
		}
	}
	if gen.calls != 6 {
		t.Errorf("generator called %d times, want 6", gen.calls)
	}
}

func TestHandleGenerateResolvesStoredContext(t *testing.T) {
	imgServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("img"))
	}))
	defer imgServer.Close()

	stored := &campaign.Context{ProductDetails: "Trail shoes"}
	resolve := func(userID string) (*campaign.Context, bool) {
		if userID == "u1" {
			return stored, true
		}
		return nil, false
	}

	r := chi.NewRouter()
	RegisterRoutes(r, NewService(&fakeGenerator{url: imgServer.URL}, "", nil), resolve)

	req := httptest.NewRequest(http.MethodPost, "/api/banners", strings.NewReader(`{"user_id":"u1","platform":"facebook"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var b Banner
	if err := json.Unmarshal(rec.Body.Bytes(), &b); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(b.Prompt, "Trail shoes") {
		t.Error("prompt should be built from the stored context")
	}
	if b.AspectRatio != "1:1" {
		t.Errorf("facebook banner ratio = %q", b.AspectRatio)
	}
}

func TestHandleGenerateUnknownUser(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r, NewService(&fakeGenerator{}, "", nil), func(string) (*campaign.Context, bool) {
		return nil, false
	})

	req := httptest.NewRequest(http.MethodPost, "/api/banners", strings.NewReader(`{"user_id":"ghost"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandleGenerateImageFailure(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r, NewService(&fakeGenerator{err: errors.New("boom")}, "", nil), nil)

	body := `{"campaign_context":{"product_details":"Socks"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/banners", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
}

func TestHandlePlatforms(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r, NewService(&fakeGenerator{}, "", nil), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/banners/platforms", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var payload struct {
		Platforms    []PlatformInfo `json:"platforms"`
		AspectRatios []string       `json:"aspect_ratios"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(payload.Platforms) != 9 {
		t.Errorf("expected 9 platforms, got %d", len(payload.Platforms))
	}
	if len(payload.AspectRatios) != 6 {
		t.Errorf("expected 6 aspect ratios, got %d", len(payload.AspectRatios))
	}
}
