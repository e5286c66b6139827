package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != ProviderOllama {
		t.Errorf("expected default provider %q, got %q", ProviderOllama, cfg.Provider)
	}
	if cfg.Port != 8000 {
		t.Errorf("expected default port 8000, got %d", cfg.Port)
	}
	if cfg.HistoryLimit != 20 {
		t.Errorf("expected default history_limit 20, got %d", cfg.HistoryLimit)
	}
	if cfg.DefaultAspectRatio != "16:9" {
		t.Errorf("expected default aspect ratio 16:9, got %q", cfg.DefaultAspectRatio)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "campaignforge.yml")

	original := DefaultConfig()
	original.Provider = ProviderOpenAI
	original.Model = "gpt-4o"
	original.Temperature = 0.4
	original.Port = 9090
	original.SearchEnabled = false
	original.DatabasePath = "sessions.db"

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Provider != original.Provider {
		t.Errorf("provider: got %q, want %q", loaded.Provider, original.Provider)
	}
	if loaded.Model != original.Model {
		t.Errorf("model: got %q, want %q", loaded.Model, original.Model)
	}
	if loaded.Temperature != original.Temperature {
		t.Errorf("temperature: got %v, want %v", loaded.Temperature, original.Temperature)
	}
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.SearchEnabled {
		t.Error("search_enabled: expected false after round-trip")
	}
	if loaded.DatabasePath != original.DatabasePath {
		t.Errorf("database_path: got %q, want %q", loaded.DatabasePath, original.DatabasePath)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load of missing file should succeed: %v", err)
	}
	if cfg.Provider != ProviderOllama {
		t.Errorf("expected defaults, got provider %q", cfg.Provider)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("CAMPAIGNFORGE_MODEL", "llama3:70b")
	t.Setenv("CAMPAIGNFORGE_PROVIDER", "ollama")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Model != "llama3:70b" {
		t.Errorf("env override ignored: model = %q", cfg.Model)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown provider", func(c *Config) { c.Provider = "bard" }},
		{"missing model", func(c *Config) { c.Model = "" }},
		{"temperature too high", func(c *Config) { c.Temperature = 3.5 }},
		{"port zero", func(c *Config) { c.Port = 0 }},
		{"history limit zero", func(c *Config) { c.HistoryLimit = 0 }},
		{"bad aspect ratio", func(c *Config) { c.DefaultAspectRatio = "7:5" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestDurationHelpers(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.LLMTimeout() != 120*time.Second {
		t.Errorf("LLMTimeout = %v", cfg.LLMTimeout())
	}
	if cfg.SessionMaxAge() != time.Hour {
		t.Errorf("SessionMaxAge = %v", cfg.SessionMaxAge())
	}
}

func TestDefaultModelFallback(t *testing.T) {
	if DefaultModel("unknown") != "llama3" {
		t.Error("unknown provider should fall back to the ollama model")
	}
}
