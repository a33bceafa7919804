package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/theirongolddev/deficit/internal/config"
	"github.com/theirongolddev/deficit/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// SetupValues holds the choices made in the setup form.
type SetupValues struct {
	DataFile string
	Theme    string
}

// NewSetupValues seeds the form from an existing config.
func NewSetupValues(cfg config.Config) SetupValues {
	return SetupValues{DataFile: cfg.General.DataFile, Theme: cfg.Appearance.Theme}
}

// Apply copies the form choices onto cfg.
func (v SetupValues) Apply(cfg *config.Config) {
	if f := strings.TrimSpace(v.DataFile); f != "" {
		cfg.General.DataFile = f
	}
	if v.Theme != "" {
		cfg.Appearance.Theme = v.Theme
	}
}

// NewSetupForm builds the setup form bound to vals.
func NewSetupForm(vals *SetupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to deficit").
				Description("Chart U.S. budget deficits by fiscal year.\nPick the CSV to load and a color theme."),
			huh.NewInput().
				Title("Data file").
				Description("CSV with Fiscal Year, Deficit (in billions), Debt Increase, Deficit/GDP and Events columns").
				Placeholder(config.DefaultDataFile).
				Validate(validateDataFile).
				Value(&vals.DataFile),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.Theme),
		),
	).WithTheme(huh.ThemeDracula())
}

// validateDataFile accepts an empty value (default file) or a path to an
// existing regular file.
func validateDataFile(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	info, err := os.Stat(s)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%s does not exist", s)
	}
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", s)
	}
	return nil
}
