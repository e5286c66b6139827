package banner

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"campaignforge/internal/campaign"
)

// ContextResolver looks up the stored campaign context for a user. It
// reports false when the user has no conversation yet.
type ContextResolver func(userID string) (*campaign.Context, bool)

type generateRequest struct {
	UserID      string            `json:"user_id"`
	Context     *campaign.Context `json:"campaign_context,omitempty"`
	AspectRatio string            `json:"aspect_ratio,omitempty"`
	Platform    string            `json:"platform,omitempty"`
}

type batchRequest struct {
	UserID  string            `json:"user_id"`
	Context *campaign.Context `json:"campaign_context,omitempty"`
}

// RegisterRoutes mounts the banner endpoints. The resolver supplies
// stored contexts so requests can omit an inline one.
func RegisterRoutes(r chi.Router, svc *Service, resolve ContextResolver) {
	r.Post("/api/banners", handleGenerate(svc, resolve))
	r.Post("/api/banners/batch", handleBatch(svc, resolve))
	r.Get("/api/banners/platforms", handlePlatforms())
}

func resolveContext(inline *campaign.Context, userID string, resolve ContextResolver) (*campaign.Context, bool) {
	if inline != nil {
		return inline, true
	}
	if userID != "" && resolve != nil {
		return resolve(userID)
	}
	return nil, false
}

func handleGenerate(svc *Service, resolve ContextResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		cc, ok := resolveContext(req.Context, req.UserID, resolve)
		if !ok {
			http.Error(w, "no campaign context available", http.StatusNotFound)
			return
		}

		b, err := svc.Generate(r.Context(), cc, req.AspectRatio, req.Platform)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(b)
	}
}

func handleBatch(svc *Service, resolve ContextResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req batchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		cc, ok := resolveContext(req.Context, req.UserID, resolve)
		if !ok {
			http.Error(w, "no campaign context available", http.StatusNotFound)
			return
		}

		results := svc.GenerateAll(r.Context(), cc)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"banners": results,
			"total":   len(results),
		})
	}
}

func handlePlatforms() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"platforms":     SupportedPlatforms(),
			"aspect_ratios": supportedRatios(),
		})
	}
}

func supportedRatios() []string {
	return []string{"1:1", "16:9", "9:16", "4:3", "3:4", "2:3"}
}
