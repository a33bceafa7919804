// Package components provides the widgets drawn by the deficit TUI.
package components

import (
	"math"
	"strconv"
	"strings"

	"github.com/theirongolddev/deficit/internal/model"
	"github.com/theirongolddev/deficit/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Fixed chart text.
const (
	ChartTitle  = "U.S. Deficit by Year"
	ChartYLabel = "USD in Billions"
)

// TickEvery is the x-axis label stride: only every fifth year is labeled.
const TickEvery = 5

// Minimum size for a readable chart.
const (
	MinChartWidth  = 40
	MinChartHeight = 12
)

// Margins holds blank cells around the chart.
type Margins struct {
	Top, Right, Bottom, Left int
}

// ChartMargins are the fixed margins of the plot area.
var ChartMargins = Margins{Top: 1, Right: 2, Bottom: 0, Left: 1}

// ChartOptions controls one render of DeficitChart.
type ChartOptions struct {
	Width  int
	Height int
	Bands  bool
	Labels bool
	Cursor int // record index to highlight, -1 for none
}

// BandSpan is an administration band resolved to record indexes (inclusive).
type BandSpan struct {
	Term model.Term
	From int
	To   int
}

// TickLabels returns the x-axis label for each year; hidden labels are empty.
func TickLabels(years []int) []string {
	labels := make([]string, len(years))
	for i, y := range years {
		if i%TickEvery == 0 {
			labels[i] = strconv.Itoa(y)
		}
	}
	return labels
}

// BandSpans maps each term onto the years of the series. A span covers the
// first through last record index whose year falls in the term, so rows need
// not be sorted. Years missing from the data clip the span; a term with no
// matching year is skipped.
func BandSpans(years []int, terms []model.Term) []BandSpan {
	if len(years) == 0 {
		return nil
	}

	var spans []BandSpan
	for _, t := range terms {
		start, end := t.StartYear(), t.EndYear()
		from, to := -1, -1
		for i, y := range years {
			if y < start || y > end {
				continue
			}
			if from < 0 {
				from = i
			}
			to = i
		}
		if from < 0 {
			continue
		}
		spans = append(spans, BandSpan{Term: t, From: from, To: to})
	}
	return spans
}

// LabelAnchor returns the y value at which administration labels start,
// computed once from the whole series.
func LabelAnchor(lo, hi float64) float64 {
	return (hi-lo)/2 - (0 - lo)
}

// YRange returns a tick step and the floor/ceiling of the y axis covering [lo, hi].
func YRange(lo, hi float64) (floor, ceil, step float64) {
	span := hi - lo
	if span <= 0 {
		span = math.Max(math.Abs(hi), 1)
	}
	step = chartTickStep(span)
	floor = math.Floor(lo/step) * step
	ceil = math.Ceil(hi/step) * step
	if ceil <= floor {
		ceil = floor + step
	}
	return floor, ceil, step
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(span float64) float64 {
	if span <= 0 {
		return 1
	}
	rough := span / 5
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

// formatChartLabel formats a y tick with just enough decimals to tell
// ticks step apart. Values from 1000 up use a k suffix when step allows.
func formatChartLabel(v, step float64) string {
	if v < 0 {
		return "-" + formatChartLabel(-v, step)
	}
	if v >= 1e3 && step >= 100 {
		return trimFixed(v/1e3, tickDecimals(step/1e3)) + "k"
	}
	return trimFixed(v, tickDecimals(step))
}

// tickDecimals is the number of decimals needed to print multiples of step.
func tickDecimals(step float64) int {
	if step <= 0 || step >= 1 {
		return 0
	}
	return int(math.Ceil(-math.Log10(step) - 1e-9))
}

func trimFixed(v float64, decimals int) string {
	out := strconv.FormatFloat(v, 'f', decimals, 64)
	if decimals > 0 {
		out = strings.TrimRight(strings.TrimRight(out, "0"), ".")
	}
	return out
}

// plotGeom maps records and values onto the braille plot area.
// Each cell holds 2x4 pixels.
type plotGeom struct {
	n           int
	cols, rows  int
	floor, ceil float64
}

func (g plotGeom) slotPixel(i int) int {
	if g.n <= 1 {
		return 0
	}
	return int(math.Round(float64(i) * float64(g.cols*2-1) / float64(g.n-1)))
}

func (g plotGeom) slotColumn(i int) int {
	return g.slotPixel(i) / 2
}

func (g plotGeom) valuePixel(v float64) int {
	h := g.rows*4 - 1
	p := int(math.Round((g.ceil - v) / (g.ceil - g.floor) * float64(h)))
	if p < 0 {
		p = 0
	}
	if p > h {
		p = h
	}
	return p
}

func (g plotGeom) valueRow(v float64) int {
	return g.valuePixel(v) / 4
}

// brailleBits indexes dot bits by [dx][dy] within one cell.
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

type canvas struct {
	cols, rows int
	bits       []uint8
}

func newCanvas(cols, rows int) *canvas {
	return &canvas{cols: cols, rows: rows, bits: make([]uint8, cols*rows)}
}

func (c *canvas) set(px, py int) {
	cx, cy := px/2, py/4
	if px < 0 || py < 0 || cx >= c.cols || cy >= c.rows {
		return
	}
	c.bits[cy*c.cols+cx] |= brailleBits[px%2][py%4]
}

// line draws a Bresenham segment in pixel space.
func (c *canvas) line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (c *canvas) at(col, row int) rune {
	b := c.bits[row*c.cols+col]
	if b == 0 {
		return 0
	}
	return rune(0x2800 + int(b))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

type cell struct {
	r  rune
	fg lipgloss.Color
	bg lipgloss.Color
}

type grid struct {
	w, h  int
	cells []cell
}

func newGrid(w, h int, bg, fg lipgloss.Color) *grid {
	g := &grid{w: w, h: h, cells: make([]cell, w*h)}
	for i := range g.cells {
		g.cells[i] = cell{r: ' ', fg: fg, bg: bg}
	}
	return g
}

func (g *grid) get(col, row int) *cell {
	if col < 0 || row < 0 || col >= g.w || row >= g.h {
		return nil
	}
	return &g.cells[row*g.w+col]
}

func (g *grid) text(col, row int, s string, fg lipgloss.Color) {
	for _, r := range s {
		if c := g.get(col, row); c != nil {
			c.r = r
			c.fg = fg
		}
		col++
	}
}

// render joins runs of equally styled cells into lipgloss-rendered strings.
func (g *grid) render() string {
	var b strings.Builder
	for row := 0; row < g.h; row++ {
		start := 0
		for col := 1; col <= g.w; col++ {
			prev := g.cells[row*g.w+col-1]
			if col < g.w {
				cur := g.cells[row*g.w+col]
				if cur.fg == prev.fg && cur.bg == prev.bg {
					continue
				}
			}
			var run strings.Builder
			for i := start; i < col; i++ {
				run.WriteRune(g.cells[row*g.w+i].r)
			}
			b.WriteString(lipgloss.NewStyle().Foreground(prev.fg).Background(prev.bg).Render(run.String()))
			start = col
		}
		if row < g.h-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// DeficitChart renders the deficit line chart with administration bands,
// vertical band labels and sparse year ticks into exactly Width x Height cells.
func DeficitChart(records []model.DeficitRecord, terms []model.Term, opts ChartOptions) string {
	g, _ := drawChart(records, terms, opts)
	return g.render()
}

// chartLayout locates the plot area inside a drawn grid.
type chartLayout struct {
	plotLeft, plotTop int
	geom              plotGeom
}

func drawChart(records []model.DeficitRecord, terms []model.Term, opts ChartOptions) (*grid, chartLayout) {
	t := theme.Active
	w, h := opts.Width, opts.Height
	if w < MinChartWidth {
		w = MinChartWidth
	}
	if h < MinChartHeight {
		h = MinChartHeight
	}
	m := ChartMargins
	g := newGrid(w, h, t.Background, t.TextMuted)

	titleRow := m.Top
	inner := w - m.Left - m.Right
	titleCol := m.Left + (inner-len(ChartTitle))/2
	g.text(titleCol, titleRow, ChartTitle, t.TextPrimary)
	g.text(m.Left, titleRow+1, ChartYLabel, t.TextMuted)

	if len(records) == 0 {
		msg := "No data"
		g.text(m.Left+(inner-len(msg))/2, h/2, msg, t.TextDim)
		return g, chartLayout{}
	}

	years := make([]int, len(records))
	lo, hi := records[0].Deficit, records[0].Deficit
	for i, r := range records {
		years[i] = r.FiscalYear
		lo = math.Min(lo, r.Deficit)
		hi = math.Max(hi, r.Deficit)
	}
	floor, ceil, step := YRange(lo, hi)

	// Y tick labels decide the axis position.
	var ticks []float64
	for k := 0; floor+float64(k)*step <= ceil+step/2; k++ {
		v := floor + float64(k)*step
		if math.Abs(v) < step*1e-9 {
			v = 0
		}
		ticks = append(ticks, v)
	}
	yLabelW := 0
	for _, v := range ticks {
		yLabelW = max(yLabelW, len(formatChartLabel(v, step)))
	}
	yLabelW++

	plotTop := titleRow + 2
	axisCol := m.Left + yLabelW
	geom := plotGeom{
		n:     len(records),
		cols:  w - axisCol - 1 - m.Right,
		rows:  h - plotTop - 2 - m.Bottom,
		floor: floor,
		ceil:  ceil,
	}
	plotLeft := axisCol + 1

	// Bands, later terms overwrite shared boundary columns.
	spans := BandSpans(years, terms)
	if opts.Bands {
		for _, s := range spans {
			bg := t.BandColor(s.Term.Party)
			for col := geom.slotColumn(s.From); col <= geom.slotColumn(s.To); col++ {
				for row := 0; row < geom.rows; row++ {
					g.get(plotLeft+col, plotTop+row).bg = bg
				}
			}
		}
	}

	if opts.Cursor >= 0 && opts.Cursor < len(records) {
		col := geom.slotColumn(opts.Cursor)
		for row := 0; row < geom.rows; row++ {
			g.get(plotLeft+col, plotTop+row).bg = t.Border
		}
		if c := g.get(plotLeft+col, plotTop+geom.rows); c != nil {
			c.r = '▲'
			c.fg = t.AccentBright
		}
	}

	// Zero line.
	if floor < 0 && ceil > 0 {
		row := geom.valueRow(0)
		for col := 0; col < geom.cols; col++ {
			if c := g.get(plotLeft+col, plotTop+row); c != nil {
				c.r = '┈'
				c.fg = t.TextDim
			}
		}
	}

	// Series.
	cv := newCanvas(geom.cols, geom.rows)
	prevX, prevY := geom.slotPixel(0), geom.valuePixel(records[0].Deficit)
	cv.set(prevX, prevY)
	for i := 1; i < len(records); i++ {
		x, y := geom.slotPixel(i), geom.valuePixel(records[i].Deficit)
		cv.line(prevX, prevY, x, y)
		prevX, prevY = x, y
	}
	for row := 0; row < geom.rows; row++ {
		for col := 0; col < geom.cols; col++ {
			if r := cv.at(col, row); r != 0 {
				c := g.get(plotLeft+col, plotTop+row)
				c.r = r
				c.fg = t.Accent
			}
		}
	}

	if opts.Labels {
		anchor := geom.valueRow(LabelAnchor(lo, hi))
		for _, s := range spans {
			col := plotLeft + geom.slotColumn(s.From)
			runes := LabelRunes(s.Term.Label(), anchor+1)
			top := plotTop + anchor - len(runes) + 1
			for i, r := range runes {
				if c := g.get(col, top+i); c != nil {
					c.r = r
					c.fg = t.TextPrimary
				}
			}
		}
	}

	// Axes.
	for row := 0; row < geom.rows; row++ {
		g.get(axisCol, plotTop+row).r = '│'
		g.get(axisCol, plotTop+row).fg = t.TextDim
	}
	for _, v := range ticks {
		row := plotTop + geom.valueRow(v)
		label := formatChartLabel(v, step)
		g.text(axisCol-len(label), row, label, t.TextMuted)
		g.get(axisCol, row).r = '┤'
	}
	xAxisRow := plotTop + geom.rows
	g.text(axisCol, xAxisRow, "└", t.TextDim)
	for col := 0; col < geom.cols; col++ {
		if c := g.get(plotLeft+col, xAxisRow); c != nil && c.r == ' ' {
			c.r = '─'
			c.fg = t.TextDim
		}
	}

	lastEnd := -1
	for i, label := range TickLabels(years) {
		if label == "" {
			continue
		}
		col := geom.slotColumn(i)
		if col <= lastEnd || col+len(label) > geom.cols {
			continue
		}
		g.text(plotLeft+col, xAxisRow+1, label, t.TextMuted)
		lastEnd = col + len(label)
	}

	return g, chartLayout{plotLeft: plotLeft, plotTop: plotTop, geom: geom}
}

// LabelRunes returns the runes of a vertical label, truncated with an
// ellipsis to fit in limit rows. Labels end on the anchor row and extend upward.
func LabelRunes(label string, limit int) []rune {
	runes := []rune(label)
	if limit <= 0 {
		return nil
	}
	if len(runes) > limit {
		runes = append(runes[:limit-1], '…')
	}
	return runes
}
