package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/deficit/internal/cli"
	"github.com/theirongolddev/deficit/internal/config"
	"github.com/theirongolddev/deficit/internal/tui/theme"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Print(configSections(cfg))

	fmt.Println("  Run `deficit setup` to reconfigure.")
	return nil
}

// configSections renders each config section as one aligned key/value block.
func configSections(cfg config.Config) string {
	var b strings.Builder
	b.WriteString("  [General]\n")
	b.WriteString(cli.RenderKV([][2]string{
		{"Data file", cfg.General.DataFile},
		{"Config dir", config.Dir()},
	}))
	b.WriteString("\n  [Appearance]\n")
	b.WriteString(cli.RenderKV([][2]string{
		{"Theme", cfg.Appearance.Theme},
		{"Band opacity", fmt.Sprintf("%.0f%%", theme.BandAlpha*100)},
	}))
	b.WriteString("\n")
	return b.String()
}
