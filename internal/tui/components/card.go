package components

import (
	"strconv"
	"strings"

	"github.com/theirongolddev/deficit/internal/cli"
	"github.com/theirongolddev/deficit/internal/model"
	"github.com/theirongolddev/deficit/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// ContentCard renders a bordered content card with an optional title.
// outerWidth controls the total rendered width including border.
func ContentCard(title, body string, outerWidth int) string {
	t := theme.Active

	contentWidth := outerWidth - 2 // subtract border chars
	if contentWidth < 10 {
		contentWidth = 10
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		BorderBackground(t.Surface).
		Background(t.Surface).
		Foreground(t.TextPrimary).
		Width(contentWidth).
		Padding(0, 1)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	content := ""
	if title != "" {
		content = titleStyle.Render(title) + "\n"
	}
	content += body

	return cardStyle.Render(content)
}

// CardInnerWidth returns the usable text width inside a ContentCard
// given its outer width (subtracts border + padding).
func CardInnerWidth(outerWidth int) int {
	w := outerWidth - 4 // 2 border + 2 padding
	if w < 10 {
		w = 10
	}
	return w
}

// TermCard summarizes one administration's years in the dataset.
func TermCard(s model.TermStats, outerWidth int) string {
	t := theme.Active
	party := lipgloss.NewStyle().Foreground(t.PartyColor(s.Term.Party)).Background(t.Surface)

	lines := []string{
		party.Render(s.Term.Party.String()) + "  " + cli.FormatSpan(s.Term.Start, s.Term.End),
	}
	if s.Years == 0 {
		lines = append(lines, "no fiscal years in data")
	} else {
		lines = append(lines,
			"Years   "+cli.FormatYears(s.Years),
			"Total   "+cli.FormatBillions(s.TotalDeficit),
			"Mean    "+cli.FormatBillions(s.MeanDeficit),
			"Worst   "+cli.FormatBillions(s.WorstDeficit)+" in "+strconv.Itoa(s.WorstYear),
		)
	}
	return ContentCard(s.Term.Label(), strings.Join(lines, "\n"), outerWidth)
}

// HelpCard lists the chart key bindings.
func HelpCard(outerWidth int) string {
	keys := [][2]string{
		{"←/h →/l", "move cursor"},
		{"home/end", "first/last year"},
		{"i", "administration summary"},
		{"b", "toggle bands"},
		{"t", "toggle labels"},
		{"?", "toggle help"},
		{"q/esc", "quit"},
	}
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(pad(k[0], 10) + k[1])
	}
	return ContentCard("Keys", b.String(), outerWidth)
}

func pad(s string, w int) string {
	if n := w - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
