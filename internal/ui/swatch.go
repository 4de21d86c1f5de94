package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iiroan/piestyle/internal/piestyle"
)

// Composite blends c over the palette background using its alpha channel
// and returns the visible color as #rrggbb.
func Composite(c piestyle.ARGB, background string) string {
	fg := colorful.Color{
		R: float64(c.Red()) / 255,
		G: float64(c.Green()) / 255,
		B: float64(c.Blue()) / 255,
	}
	base, err := colorful.Hex(background)
	if err != nil {
		return fg.Hex()
	}
	return base.BlendRgb(fg, float64(c.Alpha())/255).Clamped().Hex()
}

// Swatch renders a block of width cells filled with c as it would appear
// on the active background. Without colors it renders the hex value.
func Swatch(c piestyle.ARGB, width int) string {
	if ActivePalette.Disabled || Background == "" {
		return "[" + c.Hex() + "]"
	}
	if width < 1 {
		width = 1
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(Composite(c, string(Background)))).
		Render(strings.Repeat(" ", width))
}

// PaletteSwatch previews the primary color of the named screen theme.
func PaletteSwatch(name string, width int) string {
	c, err := piestyle.ParseHex(string(PaletteByName(name).Primary))
	if err != nil {
		return ""
	}
	return Swatch(c, width)
}
