package cmd

import (
	"github.com/spf13/cobra"

	"campaignforge/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize campaignforge configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure campaignforge and generates a campaignforge.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
