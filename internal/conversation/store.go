// Package conversation implements the campaign interview: session
// storage, the state machine that decides what to ask next, and the
// HTTP/WebSocket chat surface.
package conversation

import (
	"context"
	"sync"
	"time"

	"campaignforge/internal/campaign"
	"campaignforge/internal/composer"
)

// DefaultHistoryLimit caps the per-session turn history. The oldest
// turn is evicted when the cap is exceeded.
const DefaultHistoryLimit = 20

// Turn is one entry of a session's conversation history.
type Turn struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Session is the per-user interview record. Context, state, and history
// live and die together: a reset or expiry sweep drops all of them.
type Session struct {
	UserID       string             `json:"user_id"`
	Context      *campaign.Context  `json:"context"`
	State        campaign.State     `json:"state"`
	History      []Turn             `json:"history"`
	LastDocument *composer.Document `json:"last_document,omitempty"`
	LastActivity time.Time          `json:"last_activity"`
}

// NewSession creates a fresh session in the initial interview state.
func NewSession(userID string) *Session {
	return &Session{
		UserID:       userID,
		Context:      &campaign.Context{},
		State:        campaign.StateCollectingContext,
		LastActivity: time.Now(),
	}
}

// Store persists sessions. Implementations must be safe for concurrent
// use; callers serialize per-user access themselves.
type Store interface {
	// Get returns the session for a user, reporting false when absent.
	Get(ctx context.Context, userID string) (*Session, bool, error)
	// Put inserts or replaces a session.
	Put(ctx context.Context, s *Session) error
	// Delete removes a session. Deleting an absent session is not an error.
	Delete(ctx context.Context, userID string) error
	// SweepExpired removes sessions inactive longer than maxAge and
	// returns how many were dropped.
	SweepExpired(ctx context.Context, maxAge time.Duration) (int, error)
}

// MemoryStore is the default in-process session store.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*Session)}
}

func (m *MemoryStore) Get(ctx context.Context, userID string) (*Session, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[userID]
	return s, ok, nil
}

func (m *MemoryStore) Put(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.UserID] = s
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
	return nil
}

func (m *MemoryStore) SweepExpired(ctx context.Context, maxAge time.Duration) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for id, s := range m.sessions {
		if s.LastActivity.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed, nil
}
