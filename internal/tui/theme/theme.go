// Package theme defines color themes for the deficit chart.
package theme

import (
	"github.com/theirongolddev/deficit/internal/model"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// BandAlpha is the opacity of an administration band over the background.
const BandAlpha = 0.5

// Theme defines the color roles used by the chart and CLI output.
type Theme struct {
	Name         string
	Background   lipgloss.Color // Plot background
	Surface      lipgloss.Color // Status bar and overlays
	Border       lipgloss.Color // Subtle borders
	BorderAccent lipgloss.Color // Accent-colored borders for focus states
	TextDim      lipgloss.Color // Axis lines, hints
	TextMuted    lipgloss.Color // Tick labels, metadata
	TextPrimary  lipgloss.Color // Title, band labels
	Accent       lipgloss.Color // Data series
	AccentBright lipgloss.Color // Cursor
	Blue         lipgloss.Color // Democratic
	Red          lipgloss.Color // Republican
	Yellow       lipgloss.Color
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme - warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:         "flexoki-dark",
	Background:   lipgloss.Color("#100F0F"),
	Surface:      lipgloss.Color("#1C1B1A"),
	Border:       lipgloss.Color("#403E3C"),
	BorderAccent: lipgloss.Color("#3AA99F"),
	TextDim:      lipgloss.Color("#575653"),
	TextMuted:    lipgloss.Color("#878580"),
	TextPrimary:  lipgloss.Color("#FFFCF0"),
	Accent:       lipgloss.Color("#3AA99F"),
	AccentBright: lipgloss.Color("#5BC8BE"),
	Blue:         lipgloss.Color("#4385BE"),
	Red:          lipgloss.Color("#D14D41"),
	Yellow:       lipgloss.Color("#D0A215"),
}

// CatppuccinMocha is a warm pastel theme with soft, soothing colors.
var CatppuccinMocha = Theme{
	Name:         "catppuccin-mocha",
	Background:   lipgloss.Color("#1E1E2E"),
	Surface:      lipgloss.Color("#313244"),
	Border:       lipgloss.Color("#585B70"),
	BorderAccent: lipgloss.Color("#89B4FA"),
	TextDim:      lipgloss.Color("#6C7086"),
	TextMuted:    lipgloss.Color("#A6ADC8"),
	TextPrimary:  lipgloss.Color("#CDD6F4"),
	Accent:       lipgloss.Color("#A6E3A1"),
	AccentBright: lipgloss.Color("#C6F6C1"),
	Blue:         lipgloss.Color("#89B4FA"),
	Red:          lipgloss.Color("#F38BA8"),
	Yellow:       lipgloss.Color("#F9E2AF"),
}

// TokyoNight is a cool blue/purple theme inspired by Tokyo city lights.
var TokyoNight = Theme{
	Name:         "tokyo-night",
	Background:   lipgloss.Color("#1A1B26"),
	Surface:      lipgloss.Color("#24283B"),
	Border:       lipgloss.Color("#565F89"),
	BorderAccent: lipgloss.Color("#7AA2F7"),
	TextDim:      lipgloss.Color("#565F89"),
	TextMuted:    lipgloss.Color("#A9B1D6"),
	TextPrimary:  lipgloss.Color("#C0CAF5"),
	Accent:       lipgloss.Color("#9ECE6A"),
	AccentBright: lipgloss.Color("#B9E87A"),
	Blue:         lipgloss.Color("#7AA2F7"),
	Red:          lipgloss.Color("#F7768E"),
	Yellow:       lipgloss.Color("#E0AF68"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:         "terminal",
	Background:   lipgloss.Color("0"),
	Surface:      lipgloss.Color("0"),
	Border:       lipgloss.Color("8"),
	BorderAccent: lipgloss.Color("6"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Accent:       lipgloss.Color("2"),
	AccentBright: lipgloss.Color("10"),
	Blue:         lipgloss.Color("4"),
	Red:          lipgloss.Color("1"),
	Yellow:       lipgloss.Color("3"),
}

// All available themes.
var All = []Theme{FlexokiDark, CatppuccinMocha, TokyoNight, Terminal}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

// PartyColor returns the solid color for a party.
func (t Theme) PartyColor(p model.Party) lipgloss.Color {
	if p == model.Republican {
		return t.Red
	}
	return t.Blue
}

// BandColor returns the party color composited at BandAlpha over the
// background. ANSI palettes cannot be blended and use the solid color.
func (t Theme) BandColor(p model.Party) lipgloss.Color {
	fg := t.PartyColor(p)
	blended, ok := Blend(t.Background, fg, BandAlpha)
	if !ok {
		return fg
	}
	return blended
}

// Blend mixes fg over bg with the given opacity. It reports false when
// either color is not a hex RGB value.
func Blend(bg, fg lipgloss.Color, alpha float64) (lipgloss.Color, bool) {
	b, err := colorful.Hex(string(bg))
	if err != nil {
		return "", false
	}
	f, err := colorful.Hex(string(fg))
	if err != nil {
		return "", false
	}
	return lipgloss.Color(b.BlendRgb(f, alpha).Clamped().Hex()), true
}
