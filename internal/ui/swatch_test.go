package ui

import (
	"testing"

	"github.com/iiroan/piestyle/internal/piestyle"
)

func TestComposite(t *testing.T) {
	tests := []struct {
		color      piestyle.ARGB
		background string
		want       string
	}{
		{0xff336699, "#000000", "#336699"},
		{0x00ffffff, "#000000", "#000000"},
		{0x80ffffff, "#000000", "#808080"},
		{0xff00ff00, "not a color", "#00ff00"},
	}
	for _, tt := range tests {
		if got := Composite(tt.color, tt.background); got != tt.want {
			t.Errorf("Composite(%s, %s) = %s, want %s", tt.color, tt.background, got, tt.want)
		}
	}
}

func TestSwatchWithoutColor(t *testing.T) {
	ApplyTheme("aurora", true)
	t.Cleanup(func() { ApplyTheme("aurora", false) })

	if got := Swatch(0xff112233, 4); got != "[#ff112233]" {
		t.Errorf("Swatch = %q, want [#ff112233]", got)
	}
}
