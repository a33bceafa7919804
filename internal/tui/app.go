// Package tui provides the interactive Bubble Tea chart for deficit.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/deficit/internal/cli"
	"github.com/theirongolddev/deficit/internal/model"
	"github.com/theirongolddev/deficit/internal/pipeline"
	"github.com/theirongolddev/deficit/internal/tui/components"
	"github.com/theirongolddev/deficit/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DataLoadedMsg is sent when the data pipeline finishes.
type DataLoadedMsg struct {
	Result   *pipeline.LoadResult
	Err      error
	LoadTime time.Duration
}

// App is the root Bubble Tea model.
type App struct {
	// Data
	path     string
	result   *pipeline.LoadResult
	records  []model.DeficitRecord
	terms    []model.Term
	stats    []model.TermStats
	loaded   bool
	loadErr  error
	loadTime time.Duration

	// UI state
	width      int
	height     int
	cursor     int
	showBands  bool
	showLabels bool
	showHelp   bool
	showTerm   bool

	spinner spinner.Model
}

const (
	statusBarHeight = 1
	termCardWidth   = 34
	helpCardWidth   = 40

	// Narrowest chart that still fits beside the term card.
	minSplitWidth = components.MinChartWidth + termCardWidth
)

// NewApp creates a chart app that loads the CSV at path.
func NewApp(path string) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	return App{
		path:       path,
		terms:      model.PresidentialTerms(),
		showBands:  true,
		showLabels: true,
		cursor:     -1,
		spinner:    sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadDataCmd(a.path),
		a.spinner.Tick,
	)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case DataLoadedMsg:
		a.loadTime = msg.LoadTime
		if msg.Err != nil {
			a.loadErr = msg.Err
			return a, tea.Quit
		}
		a.result = msg.Result
		a.records = msg.Result.Records
		a.stats = pipeline.AggregateTerms(a.records)
		a.cursor = len(a.records) - 1
		a.loaded = true
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			a.moveCursor(-1)
		case tea.MouseButtonWheelDown:
			a.moveCursor(1)
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg.String())
	}

	return a, nil
}

func (a App) handleKey(key string) (tea.Model, tea.Cmd) {
	// Global: quit
	if key == "ctrl+c" || key == "q" {
		return a, tea.Quit
	}

	if !a.loaded {
		return a, nil
	}

	// Help overlay swallows keys until closed.
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch key {
	case "esc":
		if a.showTerm {
			a.showTerm = false
			return a, nil
		}
		return a, tea.Quit
	case "?":
		a.showHelp = true
	case "left", "h":
		a.moveCursor(-1)
	case "right", "l":
		a.moveCursor(1)
	case "home", "g":
		a.moveCursor(-len(a.records))
	case "end", "G":
		a.moveCursor(len(a.records))
	case "b":
		a.showBands = !a.showBands
	case "t":
		a.showLabels = !a.showLabels
	case "i":
		a.showTerm = !a.showTerm
	}
	return a, nil
}

// moveCursor shifts the cursor by delta, clamped to the records.
func (a *App) moveCursor(delta int) {
	if len(a.records) == 0 {
		a.cursor = -1
		return
	}
	a.cursor = max(0, min(a.cursor+delta, len(a.records)-1))
}

// cursorTerm returns the aggregated stats of the administration in office
// during the cursor year.
func (a App) cursorTerm() (model.TermStats, bool) {
	if a.cursor < 0 || a.cursor >= len(a.records) {
		return model.TermStats{}, false
	}
	term, ok := model.TermForYear(a.records[a.cursor].FiscalYear)
	if !ok {
		return model.TermStats{}, false
	}
	for _, s := range a.stats {
		if s.Term == term {
			return s, true
		}
	}
	return model.TermStats{Term: term}, true
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < components.MinChartWidth || a.height < components.MinChartHeight+statusBarHeight {
		return a.viewTooSmall()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooSmall() string {
	h := max(a.height, 1)

	msg := fmt.Sprintf(
		"\n  Terminal too small (%dx%d)\n\n  deficit needs at least %dx%d.\n",
		a.width, a.height,
		components.MinChartWidth, components.MinChartHeight+statusBarHeight,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ deficit"))
	b.WriteString("\n\n")
	b.WriteString(a.spinner.View())
	b.WriteString(subtitleStyle.Render(" Loading " + a.path))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		components.HelpCard(helpCardWidth),
		lipgloss.WithWhitespaceBackground(theme.Active.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	chartH := a.height - statusBarHeight

	chartW := a.width
	var side string
	if a.showTerm && a.width >= minSplitWidth {
		if s, ok := a.cursorTerm(); ok {
			chartW = a.width - termCardWidth
			side = lipgloss.Place(termCardWidth, chartH, lipgloss.Center, lipgloss.Top,
				components.TermCard(s, termCardWidth),
				lipgloss.WithWhitespaceBackground(t.Background))
		}
	}

	chart := components.DeficitChart(a.records, a.terms, components.ChartOptions{
		Width:  chartW,
		Height: chartH,
		Bands:  a.showBands,
		Labels: a.showLabels,
		Cursor: a.cursor,
	})
	if side != "" {
		chart = lipgloss.JoinHorizontal(lipgloss.Top, chart, side)
	}

	status := components.RenderStatusBar(a.width, a.statusInfo(), "[i]term [?]help [q]uit")
	return chart + "\n" + status
}

// statusInfo describes the cursor year: fiscal year, deficit, administration
// and the recorded events.
func (a App) statusInfo() string {
	if a.cursor < 0 || a.cursor >= len(a.records) {
		return fmt.Sprintf("%d years", len(a.records))
	}
	r := a.records[a.cursor]
	parts := []string{
		fmt.Sprintf("FY %d", r.FiscalYear),
		cli.FormatBillions(r.Deficit),
	}
	if term, ok := model.TermForYear(r.FiscalYear); ok {
		parts = append(parts, term.President)
	}
	if ev := strings.TrimSpace(r.Events); ev != "" {
		parts = append(parts, ev)
	}
	return strings.Join(parts, "  ·  ")
}

func loadDataCmd(path string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		res, err := pipeline.Load(path)
		return DataLoadedMsg{Result: res, Err: err, LoadTime: time.Since(start)}
	}
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > limit {
		lines = lines[:limit]
	}
	return strings.Join(lines, "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Count(s, "\n") + 1
	if lines >= h {
		return s
	}
	return s + strings.Repeat("\n", h-lines)
}

// Run starts the chart on the alternate screen and blocks until the user
// quits. A load failure ends the program and is returned. The result is nil
// when the user quit before loading finished.
func Run(app App) (*pipeline.LoadResult, time.Duration, error) {
	p := tea.NewProgram(app, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return nil, 0, fmt.Errorf("running chart: %w", err)
	}

	a, ok := final.(App)
	if !ok {
		return nil, 0, fmt.Errorf("running chart: unexpected model %T", final)
	}
	if a.loadErr != nil {
		return nil, a.loadTime, a.loadErr
	}
	return a.result, a.loadTime, nil
}
