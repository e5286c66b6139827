package conversation

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"campaignforge/internal/campaign"
	"campaignforge/internal/composer"
	"campaignforge/internal/db"
)

// SQLiteStore persists sessions in the campaignforge SQLite database so
// interviews survive process restarts.
type SQLiteStore struct {
	db *db.DB
}

// NewSQLiteStore creates a store backed by an open database.
func NewSQLiteStore(database *db.DB) *SQLiteStore {
	return &SQLiteStore{db: database}
}

func (s *SQLiteStore) Get(ctx context.Context, userID string) (*Session, bool, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT context, state, history, last_document, last_activity
		FROM sessions WHERE user_id = ?`, userID)

	var (
		contextJSON  string
		state        string
		historyJSON  string
		documentJSON sql.NullString
		lastActivity string
	)
	if err := row.Scan(&contextJSON, &state, &historyJSON, &documentJSON, &lastActivity); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("loading session: %w", err)
	}

	sess := &Session{
		UserID:  userID,
		Context: &campaign.Context{},
		State:   campaign.State(state),
	}
	if err := json.Unmarshal([]byte(contextJSON), sess.Context); err != nil {
		return nil, false, fmt.Errorf("decoding session context: %w", err)
	}
	if err := json.Unmarshal([]byte(historyJSON), &sess.History); err != nil {
		return nil, false, fmt.Errorf("decoding session history: %w", err)
	}
	if documentJSON.Valid && documentJSON.String != "" {
		sess.LastDocument = &composer.Document{}
		if err := json.Unmarshal([]byte(documentJSON.String), sess.LastDocument); err != nil {
			return nil, false, fmt.Errorf("decoding session document: %w", err)
		}
	}
	ts, err := time.Parse(time.RFC3339Nano, lastActivity)
	if err != nil {
		return nil, false, fmt.Errorf("parsing session timestamp: %w", err)
	}
	sess.LastActivity = ts

	return sess, true, nil
}

func (s *SQLiteStore) Put(ctx context.Context, sess *Session) error {
	contextJSON, err := json.Marshal(sess.Context)
	if err != nil {
		return fmt.Errorf("encoding session context: %w", err)
	}
	history := sess.History
	if history == nil {
		history = []Turn{}
	}
	historyJSON, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("encoding session history: %w", err)
	}
	var documentJSON any
	if sess.LastDocument != nil {
		raw, err := json.Marshal(sess.LastDocument)
		if err != nil {
			return fmt.Errorf("encoding session document: %w", err)
		}
		documentJSON = string(raw)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sessions (user_id, context, state, history, last_document, last_activity)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			context = excluded.context,
			state = excluded.state,
			history = excluded.history,
			last_document = excluded.last_document,
			last_activity = excluded.last_activity`,
		sess.UserID, string(contextJSON), string(sess.State), string(historyJSON),
		documentJSON, sess.LastActivity.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, userID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) SweepExpired(ctx context.Context, maxAge time.Duration) (int, error) {
	cutoff := time.Now().Add(-maxAge).UTC().Format(time.RFC3339Nano)
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE last_activity < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("sweeping sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, nil
	}
	return int(n), nil
}
