package components

import (
	"strings"
	"testing"

	"github.com/theirongolddev/deficit/internal/model"
	"github.com/theirongolddev/deficit/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func TestTermCardContents(t *testing.T) {
	theme.SetActive("flexoki-dark")

	terms := model.PresidentialTerms()
	stats := model.TermStats{
		Term:         terms[5],
		Years:        8,
		TotalDeficit: 1412.7,
		MeanDeficit:  176.6,
		WorstYear:    1986,
		WorstDeficit: 221.2,
	}
	card := TermCard(stats, 40)

	for _, want := range []string{"Ronald Reagan (1981)", "Republican", "8 yrs", "$221.2B", "1986"} {
		if !strings.Contains(card, want) {
			t.Errorf("card missing %q:\n%s", want, card)
		}
	}
	for i, line := range strings.Split(card, "\n") {
		if w := lipgloss.Width(line); w != 40 {
			t.Errorf("line %d width = %d, want 40", i, w)
		}
	}
}

func TestTermCardWithoutYears(t *testing.T) {
	card := TermCard(model.TermStats{Term: model.PresidentialTerms()[0]}, 40)
	if !strings.Contains(card, "no fiscal years") {
		t.Errorf("card = %q, want empty-term note", card)
	}
}

func TestCardInnerWidth(t *testing.T) {
	if got := CardInnerWidth(40); got != 36 {
		t.Errorf("CardInnerWidth(40) = %d, want 36", got)
	}
	if got := CardInnerWidth(5); got != 10 {
		t.Errorf("CardInnerWidth(5) = %d, want 10", got)
	}
}

func TestStatusBarWidth(t *testing.T) {
	for _, w := range []int{20, 60, 120} {
		bar := RenderStatusBar(w, "1983  -$207.8B  Ronald Reagan (1981)  Recession and tax cuts", "?:help q:quit")
		if got := lipgloss.Width(bar); got != w {
			t.Errorf("width %d: rendered %d", w, got)
		}
	}
}

func TestFitWidth(t *testing.T) {
	if got := fitWidth("Ronald Reagan", 6); got != "Ronal…" {
		t.Errorf("fitWidth = %q, want %q", got, "Ronal…")
	}
	if got := fitWidth("abc", 10); got != "abc" {
		t.Errorf("fitWidth = %q, want %q", got, "abc")
	}
}
