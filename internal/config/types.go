package config

// ProviderType identifies an LLM provider.
type ProviderType string

const (
	ProviderOpenAI     ProviderType = "openai"
	ProviderOpenRouter ProviderType = "openrouter"
	ProviderOllama     ProviderType = "ollama"
)

// Config is the top-level campaignforge configuration, corresponding to
// campaignforge.yml. API keys never live here; they come from the
// environment (OPENAI_API_KEY, OPENROUTER_API_KEY, SERPER_API_KEY,
// FAL_API_KEY).
type Config struct {
	Provider          ProviderType `yaml:"provider" koanf:"provider"`
	Model             string       `yaml:"model" koanf:"model"`
	Temperature       float64      `yaml:"temperature" koanf:"temperature"`
	MaxTokens         int          `yaml:"max_tokens" koanf:"max_tokens"`
	LLMTimeoutSeconds int          `yaml:"llm_timeout_seconds" koanf:"llm_timeout_seconds"`

	Host        string   `yaml:"host" koanf:"host"`
	Port        int      `yaml:"port" koanf:"port"`
	CORSOrigins []string `yaml:"cors_origins" koanf:"cors_origins"`

	SessionMaxAgeMinutes int `yaml:"session_max_age_minutes" koanf:"session_max_age_minutes"`
	HistoryLimit         int `yaml:"history_limit" koanf:"history_limit"`

	SearchEnabled  bool   `yaml:"search_enabled" koanf:"search_enabled"`
	SearchEndpoint string `yaml:"search_endpoint" koanf:"search_endpoint"`

	BannersEnabled     bool   `yaml:"banners_enabled" koanf:"banners_enabled"`
	BannerEndpoint     string `yaml:"banner_endpoint" koanf:"banner_endpoint"`
	DefaultAspectRatio string `yaml:"default_aspect_ratio" koanf:"default_aspect_ratio"`

	// DatabasePath enables SQLite session persistence when set; empty
	// keeps sessions in process memory.
	DatabasePath string `yaml:"database_path" koanf:"database_path"`

	LogLevel  string `yaml:"log_level" koanf:"log_level"`
	LogFormat string `yaml:"log_format" koanf:"log_format"`
}
