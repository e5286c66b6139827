package conversation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"campaignforge/internal/campaign"
	"campaignforge/internal/composer"
	"campaignforge/internal/extract"
	"campaignforge/internal/insights"
	"campaignforge/internal/llm"
)

// Reply is the engine's answer to one chat message. CampaignContent is
// set only once generation has run.
type Reply struct {
	Response        string             `json:"response"`
	Context         *campaign.Context  `json:"context"`
	State           campaign.State     `json:"state"`
	IsComplete      bool               `json:"is_complete"`
	CampaignContent *composer.Document `json:"campaign_content,omitempty"`
}

// EngineConfig wires the engine's collaborators.
type EngineConfig struct {
	Store     Store
	Extractor *extract.Extractor
	Enricher  *insights.Enricher
	Composer  *composer.Composer
	Provider  llm.Provider
	Model     string

	Temperature float64
	// HistoryLimit caps stored turns per session; zero means the default.
	HistoryLimit int
	// MaxSessionAge drives the expiry sweep; zero disables sweeping.
	MaxSessionAge time.Duration
	Log           *logrus.Logger
}

// Engine runs the campaign interview. One goroutine at a time may
// process a given user's message; requests for distinct users proceed
// in parallel.
type Engine struct {
	store       Store
	extractor   *extract.Extractor
	enricher    *insights.Enricher
	composer    *composer.Composer
	provider    llm.Provider
	model       string
	temperature float64
	historyCap  int
	maxAge      time.Duration
	log         *logrus.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewEngine creates an interview engine.
func NewEngine(cfg EngineConfig) *Engine {
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = DefaultHistoryLimit
	}
	if cfg.Log == nil {
		cfg.Log = logrus.StandardLogger()
	}
	return &Engine{
		store:       cfg.Store,
		extractor:   cfg.Extractor,
		enricher:    cfg.Enricher,
		composer:    cfg.Composer,
		provider:    cfg.Provider,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		historyCap:  cfg.HistoryLimit,
		maxAge:      cfg.MaxSessionAge,
		log:         cfg.Log,
		locks:       make(map[string]*sync.Mutex),
	}
}

// userLock returns the per-user mutex, creating it on first use. Locks
// are never removed; the map grows with the distinct-user count, which
// is bounded by the same population the session store holds.
func (e *Engine) userLock(userID string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, ok := e.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		e.locks[userID] = l
	}
	return l
}

// ProcessMessage handles one inbound chat message for a user and
// advances the interview.
func (e *Engine) ProcessMessage(ctx context.Context, userID, message string) (*Reply, error) {
	lock := e.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	sess, ok, err := e.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return e.initSession(ctx, userID)
	}

	sess.LastActivity = time.Now()
	e.appendTurn(sess, "user", message)

	// Early exit bypasses every other rule, from any state.
	if isEarlyExit(message) {
		return e.generate(ctx, sess)
	}

	// generating_campaign is terminal: further messages return the last
	// document unchanged.
	if sess.State == campaign.StateGeneratingCampaign {
		e.appendTurn(sess, "assistant", campaignAlreadyDoneMessage)
		if err := e.store.Put(ctx, sess); err != nil {
			return nil, err
		}
		return &Reply{
			Response:        campaignAlreadyDoneMessage,
			Context:         sess.Context,
			State:           sess.State,
			IsComplete:      true,
			CampaignContent: sess.LastDocument,
		}, nil
	}

	update := e.extractor.Extract(ctx, message, sess.Context)
	sess.Context.Merge(update)

	if sess.State == campaign.StateGatheringInsights && wantsResearch(message) {
		e.enricher.Enhance(ctx, sess.Context)
	}

	if sess.State == campaign.StateCollectingContext && sess.Context.IsComplete() {
		sess.State = campaign.StateGatheringInsights
	}
	if sess.State == campaign.StateGatheringInsights &&
		len(sess.Context.Competitors) > 0 && len(sess.Context.TrendingKeywords) > 0 {
		sess.State = campaign.StateReadyForCampaign
	}

	if sess.State == campaign.StateReadyForCampaign && isAffirmative(message) {
		return e.generate(ctx, sess)
	}

	question, transitional := nextQuestion(sess.Context, sess.State)
	response := question
	if !transitional || sess.State == campaign.StateReadyForCampaign {
		response = e.conversationalReply(ctx, sess, message, question)
	}

	e.appendTurn(sess, "assistant", response)
	if err := e.store.Put(ctx, sess); err != nil {
		return nil, err
	}
	return &Reply{
		Response:   response,
		Context:    sess.Context,
		State:      sess.State,
		IsComplete: false,
	}, nil
}

// initSession sweeps expired sessions, creates a fresh one, and sends
// the welcome message.
func (e *Engine) initSession(ctx context.Context, userID string) (*Reply, error) {
	if e.maxAge > 0 {
		if n, err := e.store.SweepExpired(ctx, e.maxAge); err != nil {
			e.log.WithError(err).Warn("session sweep failed")
		} else if n > 0 {
			e.log.WithField("removed", n).Debug("swept expired sessions")
		}
	}

	sess := NewSession(userID)
	e.appendTurn(sess, "assistant", WelcomeMessage)
	if err := e.store.Put(ctx, sess); err != nil {
		return nil, err
	}
	return &Reply{
		Response:   WelcomeMessage,
		Context:    sess.Context,
		State:      sess.State,
		IsComplete: false,
	}, nil
}

// generate runs the campaign composer and moves the session into its
// terminal state.
func (e *Engine) generate(ctx context.Context, sess *Session) (*Reply, error) {
	sess.State = campaign.StateGeneratingCampaign
	doc := e.composer.Compose(ctx, sess.Context)
	sess.LastDocument = doc

	e.appendTurn(sess, "assistant", campaignDoneMessage)
	if err := e.store.Put(ctx, sess); err != nil {
		return nil, err
	}
	return &Reply{
		Response:        campaignDoneMessage,
		Context:         sess.Context,
		State:           sess.State,
		IsComplete:      true,
		CampaignContent: doc,
	}, nil
}

// conversationalReply asks the LLM to acknowledge the user and steer
// toward the next question. LLM failure falls back to the static
// question so the interview never stalls.
func (e *Engine) conversationalReply(ctx context.Context, sess *Session, message, question string) string {
	prompt := fmt.Sprintf(`%s

Current context:
%s

Conversation state: %s
User message: %q

Next question to guide toward: %s

Your response should:
1. Acknowledge the user's input naturally
2. Guide them toward the next question organically
3. Provide marketing insights when relevant
4. Keep the conversation focused and productive
5. Be concise but helpful

Respond as a marketing expert:`,
		composer.SystemPrompt, sess.Context.ToPromptText(), sess.State, message, question)

	resp, err := e.provider.Complete(ctx, llm.CompletionRequest{
		Model:       e.model,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Temperature: e.temperature,
	})
	if err != nil {
		e.log.WithError(err).Warn("conversational reply failed, using static question")
		return question
	}
	if resp.Content == "" {
		return question
	}
	return resp.Content
}

// appendTurn records a turn, evicting the oldest past the cap.
func (e *Engine) appendTurn(sess *Session, role, text string) {
	sess.History = append(sess.History, Turn{Role: role, Text: text, Timestamp: time.Now()})
	if len(sess.History) > e.historyCap {
		sess.History = sess.History[len(sess.History)-e.historyCap:]
	}
}

// Reset drops a user's session entirely.
func (e *Engine) Reset(ctx context.Context, userID string) error {
	lock := e.userLock(userID)
	lock.Lock()
	defer lock.Unlock()
	return e.store.Delete(ctx, userID)
}

// SessionInfo returns a user's context and state, reporting false when
// no session exists.
func (e *Engine) SessionInfo(ctx context.Context, userID string) (*campaign.Context, campaign.State, bool, error) {
	sess, ok, err := e.store.Get(ctx, userID)
	if err != nil || !ok {
		return nil, "", false, err
	}
	return sess.Context, sess.State, true, nil
}

// ResolveContext adapts the engine for collaborators that only need a
// stored context by user id.
func (e *Engine) ResolveContext(userID string) (*campaign.Context, bool) {
	cc, _, ok, err := e.SessionInfo(context.Background(), userID)
	if err != nil {
		return nil, false
	}
	return cc, ok
}
