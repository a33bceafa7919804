// Package cmd implements the deficit CLI commands.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/theirongolddev/deficit/internal/config"
	"github.com/theirongolddev/deficit/internal/pipeline"
	"github.com/theirongolddev/deficit/internal/tui/theme"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagFile  string
	flagQuiet bool
	flagTheme string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "deficit"})

var rootCmd = &cobra.Command{
	Use:   "deficit",
	Short: "U.S. budget deficit chart",
	Long: "Load yearly U.S. federal deficits from a CSV file and chart them in the terminal,\n" +
		"shaded by presidential administration.",
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: applyGlobalFlags,
	RunE:              runChart,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "Deficit CSV file (default from config, then "+config.DefaultDataFile+")")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only log warnings and errors")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Color theme (flexoki-dark, catppuccin-mocha, tokyo-night, terminal)")
}

func applyGlobalFlags(_ *cobra.Command, _ []string) error {
	if flagQuiet {
		logger.SetLevel(log.WarnLevel)
	}
	return nil
}

// settings resolves the data file and theme: flags win over the config file,
// which wins over the defaults.
func settings() (string, error) {
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}

	path := cfg.General.DataFile
	if flagFile != "" {
		path = flagFile
	}
	if path == "" {
		path = config.DefaultDataFile
	}

	themeName := cfg.Appearance.Theme
	if flagTheme != "" {
		themeName = flagTheme
	}
	if !knownTheme(themeName) {
		logger.Warn("unknown theme, using default", "theme", themeName, "default", theme.FlexokiDark.Name)
	}
	theme.SetActive(themeName)
	return path, nil
}

func knownTheme(name string) bool {
	for _, t := range theme.All {
		if t.Name == name {
			return true
		}
	}
	return false
}

// loadData is the shared data loading path used by the table commands.
func loadData(path string) (*pipeline.LoadResult, error) {
	start := time.Now()
	result, err := pipeline.Load(path)
	if err != nil {
		return nil, err
	}
	logLoad(path, result, time.Since(start))
	return result, nil
}

func logLoad(path string, result *pipeline.LoadResult, took time.Duration) {
	logger.Info("loaded",
		"file", path,
		"rows", result.TotalRows,
		"kept", len(result.Records),
		"dropped", result.DroppedRows,
		"took", took.Round(time.Millisecond),
	)
}

func yearSpan(result *pipeline.LoadResult) string {
	if len(result.Records) == 0 {
		return "no years"
	}
	first := result.Records[0].FiscalYear
	last := result.Records[len(result.Records)-1].FiscalYear
	return fmt.Sprintf("FY %d-%d", first, last)
}
