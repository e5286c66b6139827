package conversation

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"campaignforge/internal/search"
)

type chatRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

type searchRequest struct {
	Query      string `json:"query"`
	SearchType string `json:"search_type"`
}

// RegisterRoutes mounts the conversation and search endpoints.
func RegisterRoutes(r chi.Router, e *Engine, searcher search.Searcher) {
	r.Post("/api/chat", handleChat(e))
	r.Post("/api/conversations/{user_id}/reset", handleReset(e))
	r.Get("/api/conversations/{user_id}/context", handleGetContext(e))
	r.Post("/api/search", handleSearch(searcher))
	r.Get("/ws/chat", handleWebSocket(e))
}

func handleChat(e *Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if req.UserID == "" {
			http.Error(w, "user_id is required", http.StatusBadRequest)
			return
		}

		reply, err := e.ProcessMessage(r.Context(), req.UserID, req.Message)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(reply)
	}
}

// handleReset drops the session and immediately starts a fresh one, so
// the caller always gets the welcome message back.
func handleReset(e *Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "user_id")
		if err := e.Reset(r.Context(), userID); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		reply, err := e.ProcessMessage(r.Context(), userID, "")
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(reply)
	}
}

func handleGetContext(e *Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "user_id")
		cc, state, ok, err := e.SessionInfo(r.Context(), userID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if !ok {
			http.Error(w, "no conversation for user", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"user_id": userID,
			"context": cc,
			"state":   state,
		})
	}
}

func handleSearch(searcher search.Searcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req searchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if req.Query == "" {
			http.Error(w, "query is required", http.StatusBadRequest)
			return
		}
		if req.SearchType == "" {
			req.SearchType = "competitors"
		}

		var (
			results []string
			err     error
		)
		switch req.SearchType {
		case "competitors":
			results, err = searcher.SearchCompetitors(r.Context(), req.Query)
		case "trends":
			results, err = searcher.SearchTrends(r.Context(), req.Query)
		default:
			http.Error(w, "search_type must be competitors or trends", http.StatusBadRequest)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"query":   req.Query,
			"type":    req.SearchType,
			"results": results,
		})
	}
}
