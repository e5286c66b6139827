package conversation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

type stubSearcher struct {
	competitors []string
	trends      []string
}

func (s stubSearcher) SearchCompetitors(ctx context.Context, product string) ([]string, error) {
	return s.competitors, nil
}

func (s stubSearcher) SearchTrends(ctx context.Context, industry string) ([]string, error) {
	return s.trends, nil
}

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	e, _ := newTestEngine(nil)
	r := chi.NewRouter()
	RegisterRoutes(r, e, stubSearcher{
		competitors: []string{"Acme"},
		trends:      []string{"eco packaging"},
	})
	return r
}

func TestChatEndpoint(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"user_id":"u1","message":"hello"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var reply Reply
	if err := json.Unmarshal(rec.Body.Bytes(), &reply); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if reply.Response != WelcomeMessage {
		t.Errorf("got %q", reply.Response)
	}
}

func TestChatEndpointRequiresUserID(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"hello"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestContextEndpointUnknownUser(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/conversations/ghost/context", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestResetRestartsConversation(t *testing.T) {
	r := newTestRouter(t)

	chat := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"user_id":"u1","message":"hello"}`))
	r.ServeHTTP(httptest.NewRecorder(), chat)

	req := httptest.NewRequest(http.MethodPost, "/api/conversations/u1/reset", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var reply Reply
	if err := json.Unmarshal(rec.Body.Bytes(), &reply); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if reply.Response != WelcomeMessage {
		t.Error("reset should return the welcome message")
	}
}

func TestSearchEndpoint(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(`{"query":"meal kits","search_type":"trends"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var payload struct {
		Query   string   `json:"query"`
		Type    string   `json:"type"`
		Results []string `json:"results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Type != "trends" || len(payload.Results) != 1 || payload.Results[0] != "eco packaging" {
		t.Errorf("unexpected payload: %+v", payload)
	}
}

func TestSearchEndpointRejectsUnknownType(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(`{"query":"q","search_type":"news"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
