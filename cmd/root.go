package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "campaignforge",
	Short: "AI-powered marketing campaign generator",
	Long: `Campaignforge interviews you about your product, audience, and goals,
enriches the collected context with competitor and trend research, and
generates complete campaign deliverables and banner images through LLM
and image-generation providers.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// A .env file is optional; environment wins when both are present.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "campaignforge.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
