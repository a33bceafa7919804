package cmd

import (
	"github.com/theirongolddev/deficit/internal/tui"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Show the interactive deficit chart (default)",
	RunE:  runChart,
}

func init() {
	rootCmd.AddCommand(chartCmd)
}

func runChart(_ *cobra.Command, _ []string) error {
	path, err := settings()
	if err != nil {
		return err
	}

	// Force TrueColor profile so band backgrounds produce ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	result, took, err := tui.Run(tui.NewApp(path))
	if err != nil {
		return err
	}
	if result == nil {
		logger.Debug("quit before data loaded", "file", path)
		return nil
	}
	logLoad(path, result, took)
	return nil
}
