package config

// DefaultPath is where the configuration file lives by default.
const DefaultPath = "campaignforge.yml"

// defaultModels maps each provider to its recommended chat model.
var defaultModels = map[ProviderType]string{
	ProviderOpenAI:     "gpt-4o-mini",
	ProviderOpenRouter: "minimax/minimax-m2.5",
	ProviderOllama:     "llama3",
}

// DefaultModel returns the recommended model for a provider, falling
// back to the Ollama default for unknown providers.
func DefaultModel(provider ProviderType) string {
	if m, ok := defaultModels[provider]; ok {
		return m
	}
	return defaultModels[ProviderOllama]
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider:          ProviderOllama,
		Model:             defaultModels[ProviderOllama],
		Temperature:       0.7,
		MaxTokens:         4000,
		LLMTimeoutSeconds: 120,

		Host:        "0.0.0.0",
		Port:        8000,
		CORSOrigins: []string{"*"},

		SessionMaxAgeMinutes: 60,
		HistoryLimit:         20,

		SearchEnabled:  true,
		BannersEnabled: true,

		DefaultAspectRatio: "16:9",

		LogLevel:  "info",
		LogFormat: "text",
	}
}
