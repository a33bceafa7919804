package components

import (
	"strings"
	"testing"

	"github.com/theirongolddev/deficit/internal/model"
	"github.com/theirongolddev/deficit/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func yearRange(from, to int) []int {
	var ys []int
	for y := from; y <= to; y++ {
		ys = append(ys, y)
	}
	return ys
}

func TestTickLabelsEveryFifth(t *testing.T) {
	labels := TickLabels(yearRange(1960, 1971))
	for i, l := range labels {
		if i%5 == 0 {
			if l == "" {
				t.Errorf("label %d hidden, want shown", i)
			}
			continue
		}
		if l != "" {
			t.Errorf("label %d = %q, want hidden", i, l)
		}
	}
	if labels[5] != "1965" || labels[10] != "1970" {
		t.Errorf("labels[5], labels[10] = %q, %q", labels[5], labels[10])
	}
}

func TestBandSpans(t *testing.T) {
	years := yearRange(1960, 2020)
	spans := BandSpans(years, model.PresidentialTerms())
	if len(spans) != 11 {
		t.Fatalf("len(spans) = %d, want 11", len(spans))
	}

	jfk := spans[0]
	if jfk.From != 1 || jfk.To != 3 {
		t.Errorf("Kennedy span = [%d, %d], want [1, 3]", jfk.From, jfk.To)
	}

	trump := spans[len(spans)-1]
	if trump.From != 57 || trump.To != 60 {
		t.Errorf("Trump span = [%d, %d], want [57, 60] (clipped to 2020)", trump.From, trump.To)
	}

	// Adjacent terms share their boundary year.
	for i := 1; i < len(spans); i++ {
		if spans[i].From != spans[i-1].To {
			t.Errorf("span %d starts at %d, previous ends at %d", i, spans[i].From, spans[i-1].To)
		}
	}
}

func TestBandSpans_SkipsTermsOutsideData(t *testing.T) {
	spans := BandSpans(yearRange(1990, 1995), model.PresidentialTerms())
	if len(spans) != 2 {
		t.Fatalf("len(spans) = %d, want 2 (Bush, Clinton)", len(spans))
	}
	if spans[0].Term.President != "George H. W. Bush" || spans[0].From != 0 || spans[0].To != 3 {
		t.Errorf("spans[0] = %+v", spans[0])
	}
	if spans[1].Term.President != "Bill Clinton" || spans[1].From != 3 || spans[1].To != 5 {
		t.Errorf("spans[1] = %+v", spans[1])
	}

	if got := BandSpans(nil, model.PresidentialTerms()); got != nil {
		t.Errorf("BandSpans(nil) = %v, want nil", got)
	}
}

func TestBandSpans_DescendingYears(t *testing.T) {
	spans := BandSpans([]int{1990, 1989, 1988, 1987}, model.PresidentialTerms())
	if len(spans) != 2 {
		t.Fatalf("len(spans) = %d, want 2 (Reagan, Bush)", len(spans))
	}
	if spans[0].Term.President != "Ronald Reagan" || spans[0].From != 1 || spans[0].To != 3 {
		t.Errorf("spans[0] = %+v, want Reagan [1, 3]", spans[0])
	}
	if spans[1].Term.President != "George H. W. Bush" || spans[1].From != 0 || spans[1].To != 1 {
		t.Errorf("spans[1] = %+v, want Bush [0, 1]", spans[1])
	}
}

func TestLabelAnchorIsMidpoint(t *testing.T) {
	cases := []struct{ lo, hi, want float64 }{
		{-200, 3000, 1400},
		{0, 100, 50},
		{-100, -20, -60},
	}
	for _, c := range cases {
		if got := LabelAnchor(c.lo, c.hi); got != c.want {
			t.Errorf("LabelAnchor(%v, %v) = %v, want %v", c.lo, c.hi, got, c.want)
		}
	}
}

func TestLabelRunes(t *testing.T) {
	if got := string(LabelRunes("Bill Clinton (1993)", 40)); got != "Bill Clinton (1993)" {
		t.Errorf("LabelRunes fits = %q", got)
	}
	if got := string(LabelRunes("Bill Clinton (1993)", 5)); got != "Bill…" {
		t.Errorf("LabelRunes truncated = %q, want %q", got, "Bill…")
	}
	if got := LabelRunes("x", 0); got != nil {
		t.Errorf("LabelRunes limit 0 = %q, want nil", string(got))
	}
}

func TestYRange(t *testing.T) {
	floor, ceil, step := YRange(-236, 3132)
	if step != 500 {
		t.Errorf("step = %v, want 500", step)
	}
	if floor != -500 || ceil != 3500 {
		t.Errorf("range = [%v, %v], want [-500, 3500]", floor, ceil)
	}

	floor, ceil, _ = YRange(5, 5)
	if floor > 5 || ceil < 5 || floor == ceil {
		t.Errorf("flat range = [%v, %v], want non-empty range around 5", floor, ceil)
	}
}

func TestFormatChartLabel(t *testing.T) {
	cases := []struct {
		v, step float64
		want    string
	}{
		{0, 500, "0"},
		{500, 500, "500"},
		{-500, 500, "-500"},
		{1000, 500, "1k"},
		{1500, 500, "1.5k"},
		{2500, 500, "2.5k"},
		{-3000, 1000, "-3k"},
		{1020, 20, "1020"},
		{1.5, 0.5, "1.5"},
		{2, 0.5, "2"},
		{2.5, 0.5, "2.5"},
		{0.25, 0.05, "0.25"},
		{-0.1, 0.1, "-0.1"},
	}
	for _, c := range cases {
		if got := formatChartLabel(c.v, c.step); got != c.want {
			t.Errorf("formatChartLabel(%v, %v) = %q, want %q", c.v, c.step, got, c.want)
		}
	}
}

// rowText returns the runes of one grid row as plain text.
func rowText(g *grid, row int) string {
	var b strings.Builder
	for col := 0; col < g.w; col++ {
		b.WriteRune(g.get(col, row).r)
	}
	return b.String()
}

// columnText returns the runes of one grid column, top to bottom.
func columnText(g *grid, col int) string {
	var b strings.Builder
	for row := 0; row < g.h; row++ {
		b.WriteRune(g.get(col, row).r)
	}
	return b.String()
}

func TestDeficitChartFractionalTicks(t *testing.T) {
	recs := []model.DeficitRecord{
		{FiscalYear: 1981, Deficit: 1},
		{FiscalYear: 1982, Deficit: 2},
		{FiscalYear: 1983, Deficit: 3},
	}
	g, _ := drawChart(recs, model.PresidentialTerms(), ChartOptions{Width: 60, Height: 20, Cursor: -1})

	var text strings.Builder
	for row := 0; row < g.h; row++ {
		text.WriteString(rowText(g, row))
		text.WriteString("\n")
	}
	for _, want := range []string{"1┤", "1.5┤", "2┤", "2.5┤", "3┤"} {
		if !strings.Contains(text.String(), want) {
			t.Errorf("y axis missing tick %q:\n%s", want, text.String())
		}
	}
}

func TestDeficitChartDrawsBandsAndLabels(t *testing.T) {
	theme.SetActive("flexoki-dark")
	recs := sampleRecords() // 1961..2020
	clinton := 1997 - 1961

	g, lay := drawChart(recs, model.PresidentialTerms(), ChartOptions{
		Width: 160, Height: 60, Bands: true, Labels: true, Cursor: -1,
	})
	col := lay.plotLeft + lay.geom.slotColumn(clinton)
	if got, want := g.get(col, lay.plotTop).bg, theme.Active.BandColor(model.Democratic); got != want {
		t.Errorf("band background = %v, want %v", got, want)
	}
	reagan := lay.plotLeft + lay.geom.slotColumn(1985-1961)
	if got, want := g.get(reagan, lay.plotTop).bg, theme.Active.BandColor(model.Republican); got != want {
		t.Errorf("band background = %v, want %v", got, want)
	}

	labelCol := lay.plotLeft + lay.geom.slotColumn(1993-1961)
	if got := columnText(g, labelCol); !strings.Contains(got, "Bill Clinton (1993)") {
		t.Errorf("column %d = %q, want vertical Clinton label", labelCol, got)
	}

	g, lay = drawChart(recs, model.PresidentialTerms(), ChartOptions{Width: 160, Height: 60, Cursor: -1})
	if got := g.get(col, lay.plotTop).bg; got != theme.Active.Background {
		t.Errorf("background with bands off = %v, want %v", got, theme.Active.Background)
	}
	if got := columnText(g, labelCol); strings.Contains(got, "Clinton") {
		t.Error("label drawn with labels off")
	}
}

func TestDeficitChartDescendingYearsKeepsBands(t *testing.T) {
	theme.SetActive("flexoki-dark")
	recs := sampleRecords()
	for i, j := 0, len(recs)-1; i < j; i, j = i+1, j-1 {
		recs[i], recs[j] = recs[j], recs[i]
	}

	g, lay := drawChart(recs, model.PresidentialTerms(), ChartOptions{
		Width: 160, Height: 60, Bands: true, Labels: true, Cursor: -1,
	})
	// Index 2020-1997 holds 1997 once reversed.
	col := lay.plotLeft + lay.geom.slotColumn(2020-1997)
	if got, want := g.get(col, lay.plotTop).bg, theme.Active.BandColor(model.Democratic); got != want {
		t.Errorf("band background = %v, want %v", got, want)
	}
}

func TestCanvasLineEndpoints(t *testing.T) {
	c := newCanvas(4, 2)
	c.line(0, 0, 7, 7)
	if c.at(0, 0) == 0 || c.at(3, 1) == 0 {
		t.Error("line endpoints not set")
	}
	if c.at(3, 0) != 0 {
		t.Errorf("unexpected dot at (3,0): %q", c.at(3, 0))
	}
}

func sampleRecords() []model.DeficitRecord {
	var recs []model.DeficitRecord
	for i, y := range yearRange(1961, 2020) {
		recs = append(recs, model.DeficitRecord{FiscalYear: y, Deficit: float64(i*i) - 300})
	}
	return recs
}

func TestDeficitChartDimensions(t *testing.T) {
	theme.SetActive("flexoki-dark")

	for _, size := range [][2]int{{120, 40}, {80, 24}, {10, 5}} {
		out := DeficitChart(sampleRecords(), model.PresidentialTerms(), ChartOptions{
			Width: size[0], Height: size[1], Bands: true, Labels: true, Cursor: 3,
		})
		wantW := max(size[0], MinChartWidth)
		wantH := max(size[1], MinChartHeight)

		lines := strings.Split(out, "\n")
		if len(lines) != wantH {
			t.Fatalf("%dx%d: %d lines, want %d", size[0], size[1], len(lines), wantH)
		}
		for i, line := range lines {
			if w := lipgloss.Width(line); w != wantW {
				t.Errorf("%dx%d: line %d width %d, want %d", size[0], size[1], i, w, wantW)
			}
		}
		if !strings.Contains(out, ChartTitle) {
			t.Errorf("%dx%d: title missing", size[0], size[1])
		}
		if !strings.Contains(out, ChartYLabel) {
			t.Errorf("%dx%d: y label missing", size[0], size[1])
		}
	}
}

func TestDeficitChartEmpty(t *testing.T) {
	out := DeficitChart(nil, model.PresidentialTerms(), ChartOptions{Width: 60, Height: 20, Cursor: -1})
	if !strings.Contains(out, "No data") {
		t.Error("empty chart does not say No data")
	}
}
