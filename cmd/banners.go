package cmd

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"campaignforge/internal/banner"
	"campaignforge/internal/campaign"
	"campaignforge/internal/progress"
)

var (
	bannersContextFile string
	bannersOutputDir   string
)

var bannersCmd = &cobra.Command{
	Use:   "banners",
	Short: "Generate the full banner set for a campaign context",
	Long:  `Reads a campaign context from a JSON file and generates a banner per batch platform, writing the images to the output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer a.close()

		if a.banners == nil {
			return fmt.Errorf("banner generation is disabled in the configuration")
		}

		data, err := os.ReadFile(bannersContextFile)
		if err != nil {
			return fmt.Errorf("reading context file: %w", err)
		}
		cc := &campaign.Context{}
		if err := json.Unmarshal(data, cc); err != nil {
			return fmt.Errorf("parsing context file: %w", err)
		}

		if err := os.MkdirAll(bannersOutputDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		platforms := banner.BatchPlatforms()
		reporter := progress.NewReporter()
		reporter.Start(len(platforms))

		failures := 0
		for i, p := range platforms {
			reporter.Update(i, p.Platform)
			b, err := a.banners.Generate(cmd.Context(), cc, p.AspectRatio, p.Platform)
			if err != nil {
				a.log.WithError(err).WithField("platform", p.Platform).Error("banner generation failed")
				failures++
				continue
			}
			if err := writeBanner(bannersOutputDir, p.Platform, b); err != nil {
				return err
			}
		}
		reporter.Update(len(platforms), "done")
		reporter.Finish()

		fmt.Fprintf(os.Stderr, "Generated %d/%d banners in %s\n", len(platforms)-failures, len(platforms), bannersOutputDir)
		if failures > 0 {
			return fmt.Errorf("%d banner(s) failed", failures)
		}
		return nil
	},
}

// writeBanner decodes the banner image and stores it with a sidecar
// JSON file describing the prompt and dimensions.
func writeBanner(dir, platform string, b *banner.Banner) error {
	if b.ImageData != "" {
		img, err := base64.StdEncoding.DecodeString(b.ImageData)
		if err != nil {
			return fmt.Errorf("decoding %s image: %w", platform, err)
		}
		if err := os.WriteFile(filepath.Join(dir, platform+".png"), img, 0o644); err != nil {
			return fmt.Errorf("writing %s image: %w", platform, err)
		}
	}

	meta, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s metadata: %w", platform, err)
	}
	if err := os.WriteFile(filepath.Join(dir, platform+".json"), meta, 0o644); err != nil {
		return fmt.Errorf("writing %s metadata: %w", platform, err)
	}
	return nil
}

func init() {
	bannersCmd.Flags().StringVar(&bannersContextFile, "context", "campaign.json", "campaign context JSON file")
	bannersCmd.Flags().StringVar(&bannersOutputDir, "out", "banners", "output directory for generated images")
	rootCmd.AddCommand(bannersCmd)
}
