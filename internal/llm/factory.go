package llm

import (
	"fmt"
	"os"
	"time"
)

// NewProvider creates a provider based on the given provider type.
// Supported types: "openai", "openrouter", "ollama". API keys come from
// the conventional environment variables.
func NewProvider(providerType, model string, timeout time.Duration) (Provider, error) {
	switch providerType {
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
		}
		return NewOpenAIProvider(apiKey, model, timeout), nil

	case "openrouter":
		apiKey := os.Getenv("OPENROUTER_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENROUTER_API_KEY environment variable is not set")
		}
		return NewOpenRouterProvider(apiKey, model, timeout), nil

	case "ollama":
		host := os.Getenv("OLLAMA_HOST")
		if host == "" {
			host = "http://localhost:11434"
		}
		return NewOllamaProvider(host, model, timeout), nil

	default:
		return nil, fmt.Errorf("unsupported provider type: %s", providerType)
	}
}
