package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to campaignforge.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to campaignforge! Let's configure your marketing assistant.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Provider selection.
	providerPrompt := promptui.Select{
		Label: "Select LLM provider",
		Items: []string{"ollama", "openai", "openrouter"},
	}
	_, providerStr, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	cfg.Provider = ProviderType(providerStr)

	// 2. Model.
	modelPrompt := promptui.Prompt{
		Label:   "Chat model",
		Default: DefaultModel(cfg.Provider),
	}
	cfg.Model, err = modelPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}

	// 3. HTTP port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			p, err := strconv.Atoi(s)
			if err != nil || p < 1 || p > 65535 {
				return fmt.Errorf("port must be a number between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 4. Web search enrichment.
	searchPrompt := promptui.Select{
		Label: "Enable web search for competitor and trend research (needs SERPER_API_KEY)",
		Items: []string{"yes", "no"},
	}
	searchIdx, _, err := searchPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("search selection: %w", err)
	}
	cfg.SearchEnabled = searchIdx == 0

	// 5. Banner generation.
	bannerPrompt := promptui.Select{
		Label: "Enable banner image generation (needs FAL_API_KEY)",
		Items: []string{"yes", "no"},
	}
	bannerIdx, _, err := bannerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("banner selection: %w", err)
	}
	cfg.BannersEnabled = bannerIdx == 0

	// 6. Session persistence.
	dbPrompt := promptui.Prompt{
		Label:   "SQLite database path (leave blank for in-memory sessions)",
		Default: "",
	}
	cfg.DatabasePath, err = dbPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("database path: %w", err)
	}

	// Check for API keys the selection depends on.
	if envVar := APIKeyEnvVar(cfg.Provider); envVar != "" && os.Getenv(envVar) == "" {
		fmt.Printf("\nNote: Set %s in your environment before running campaignforge serve.\n", envVar)
	}
	if cfg.SearchEnabled && os.Getenv("SERPER_API_KEY") == "" {
		fmt.Println("Note: SERPER_API_KEY is unset; research falls back to built-in industry lists.")
	}
	if cfg.BannersEnabled && os.Getenv("FAL_API_KEY") == "" {
		fmt.Println("Note: Set FAL_API_KEY to generate banner images.")
	}

	if err := cfg.Save(DefaultPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", DefaultPath)
	return cfg, nil
}
