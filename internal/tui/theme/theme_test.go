package theme

import (
	"strings"
	"testing"

	"github.com/theirongolddev/deficit/internal/model"
)

func TestByNameFallsBack(t *testing.T) {
	if got := ByName("no-such-theme"); got.Name != "flexoki-dark" {
		t.Errorf("ByName(unknown) = %s, want flexoki-dark", got.Name)
	}
	if got := ByName("tokyo-night"); got.Name != "tokyo-night" {
		t.Errorf("ByName(tokyo-night) = %s", got.Name)
	}
}

func TestBlendHalfway(t *testing.T) {
	got, ok := Blend("#000000", "#FFFFFF", 0.5)
	if !ok {
		t.Fatal("Blend reported !ok for hex colors")
	}
	// 0.5 of 255 rounds to 0x80
	if !strings.EqualFold(string(got), "#808080") {
		t.Errorf("Blend = %s, want #808080", got)
	}
}

func TestBandColor(t *testing.T) {
	th := FlexokiDark
	dem := th.BandColor(model.Democratic)
	rep := th.BandColor(model.Republican)
	if dem == rep {
		t.Fatalf("party bands share color %s", dem)
	}
	if dem == th.Blue || rep == th.Red {
		t.Errorf("band colors not blended: %s %s", dem, rep)
	}

	// ANSI palette cannot blend and keeps the solid color.
	if got := Terminal.BandColor(model.Republican); got != Terminal.Red {
		t.Errorf("Terminal band = %s, want %s", got, Terminal.Red)
	}
}
