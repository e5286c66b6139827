package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"campaignforge/internal/banner"
	"campaignforge/internal/composer"
	"campaignforge/internal/config"
	"campaignforge/internal/conversation"
	"campaignforge/internal/db"
	"campaignforge/internal/extract"
	"campaignforge/internal/imagegen"
	"campaignforge/internal/insights"
	"campaignforge/internal/llm"
	"campaignforge/internal/logutil"
	"campaignforge/internal/search"
)

// app bundles the wired collaborators every command works with.
type app struct {
	cfg      *config.Config
	log      *logrus.Logger
	engine   *conversation.Engine
	searcher search.Searcher
	banners  *banner.Service
	database *db.DB
}

// close releases resources held by the app.
func (a *app) close() {
	if a.database != nil {
		a.database.Close()
	}
}

// buildApp loads the configuration and wires the conversation engine and
// its collaborators.
func buildApp() (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	log := logutil.New(cfg.LogLevel, cfg.LogFormat)

	provider, err := llm.NewProvider(string(cfg.Provider), cfg.Model, cfg.LLMTimeout())
	if err != nil {
		return nil, fmt.Errorf("creating LLM provider: %w", err)
	}

	searcher := buildSearcher(cfg, log)

	var store conversation.Store = conversation.NewMemoryStore()
	var database *db.DB
	if cfg.DatabasePath != "" {
		database, err = db.Open(cfg.DatabasePath)
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		store = conversation.NewSQLiteStore(database)
	}

	engine := conversation.NewEngine(conversation.EngineConfig{
		Store:         store,
		Extractor:     &extract.Extractor{AI: extract.NewAIExtractor(provider, cfg.Model)},
		Enricher:      insights.NewEnricher(searcher, log),
		Composer:      composer.New(provider, cfg.Model, cfg.Temperature, cfg.MaxTokens, log),
		Provider:      provider,
		Model:         cfg.Model,
		Temperature:   cfg.Temperature,
		HistoryLimit:  cfg.HistoryLimit,
		MaxSessionAge: cfg.SessionMaxAge(),
		Log:           log,
	})

	a := &app{
		cfg:      cfg,
		log:      log,
		engine:   engine,
		searcher: searcher,
		database: database,
	}
	if cfg.BannersEnabled {
		gen := imagegen.NewFalClient(os.Getenv("FAL_API_KEY"), cfg.BannerEndpoint)
		a.banners = banner.NewService(gen, a.cfg.DefaultAspectRatio, log)
	}
	return a, nil
}

// buildSearcher picks the Serper client when search is enabled and a key
// is present, and the built-in industry lists otherwise.
func buildSearcher(cfg *config.Config, log *logrus.Logger) search.Searcher {
	key := os.Getenv("SERPER_API_KEY")
	if cfg.SearchEnabled && key != "" {
		return search.NewSerperClient(key, cfg.SearchEndpoint)
	}
	if cfg.SearchEnabled {
		log.Warn("SERPER_API_KEY not set, using built-in industry lists")
	}
	return insights.StaticSearcher{}
}
