package cli

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/deficit/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil
	// LeftAlign marks columns rendered left-aligned. Column 0 always is.
	LeftAlign map[int]bool
}

type styles struct {
	title, header, value, dim, neg lipgloss.Style
}

func currentStyles() styles {
	t := theme.Active
	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary).Align(lipgloss.Center),
		header: lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		value:  lipgloss.NewStyle().Foreground(t.TextPrimary),
		dim:    lipgloss.NewStyle().Foreground(t.TextDim),
		neg:    lipgloss.NewStyle().Foreground(t.Yellow),
	}
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	s := currentStyles()
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Active.Border).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(s.title.Render(title))
}

// RenderTable renders a bordered table with headers and rows.
// A row consisting of the single cell "---" renders as a separator.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}
	s := currentStyles()

	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		for i, h := range t.Headers {
			widths[i] = max(widths[i], lipgloss.Width(h))
		}
		for _, row := range t.Rows {
			for i, cell := range row {
				if i < numCols {
					widths[i] = max(widths[i], lipgloss.Width(cell))
				}
			}
		}
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(s.header.Render(t.Title))
		b.WriteString("\n")
	}

	rule := func(left, mid, right string) {
		b.WriteString(s.dim.Render(left))
		for i, w := range widths {
			b.WriteString(s.dim.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(s.dim.Render(mid))
			}
		}
		b.WriteString(s.dim.Render(right))
		b.WriteString("\n")
	}

	rule("╭", "┬", "╮")

	if len(t.Headers) > 0 {
		b.WriteString(s.dim.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(s.header.Render(" " + pad(h, widths[i], true) + " "))
			if i < numCols-1 {
				b.WriteString(s.dim.Render("│"))
			}
		}
		b.WriteString(s.dim.Render("│"))
		b.WriteString("\n")
		rule("├", "┼", "┤")
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			rule("├", "┼", "┤")
			continue
		}

		b.WriteString(s.dim.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			left := i == 0 || t.LeftAlign[i]
			style := s.value
			if strings.HasPrefix(cell, "-") && !left {
				style = s.neg
			}
			b.WriteString(style.Render(" " + pad(cell, widths[i], left) + " "))
			if i < numCols-1 {
				b.WriteString(s.dim.Render("│"))
			}
		}
		b.WriteString(s.dim.Render("│"))
		b.WriteString("\n")
	}

	rule("╰", "┴", "╯")

	return b.String()
}

func pad(s string, w int, left bool) string {
	gap := w - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	if left {
		return s + strings.Repeat(" ", gap)
	}
	return strings.Repeat(" ", gap) + s
}

// RenderSparkline generates a unicode block sparkline scaled between the
// smallest and largest value, so negative values render too.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int((v - lo) / span * float64(len(blocks)-1))
		idx = max(0, min(idx, len(blocks)-1))
		b.WriteRune(blocks[idx])
	}

	return b.String()
}

// RenderKV renders aligned "key  value" lines.
func RenderKV(pairs [][2]string) string {
	s := currentStyles()
	keyW := 0
	for _, p := range pairs {
		keyW = max(keyW, lipgloss.Width(p[0]))
	}
	var b strings.Builder
	for _, p := range pairs {
		fmt.Fprintf(&b, "  %s  %s\n", s.dim.Render(pad(p[0], keyW, true)), s.value.Render(p[1]))
	}
	return b.String()
}
