package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette defines the TUI color palette.
type Palette struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Info       lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Foreground lipgloss.Color
	Border     lipgloss.Color
	Highlight  lipgloss.Color
	Disabled   bool
}

const defaultThemeName = "aurora"

// ThemeNames returns supported palette names.
func ThemeNames() []string {
	return []string{"aurora", "ember", "mono", "slim"}
}

// PaletteByName returns a palette by theme name.
func PaletteByName(name string) Palette {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ember":
		return Palette{
			Name:       "ember",
			Primary:    lipgloss.Color("#F97316"),
			Secondary:  lipgloss.Color("#F43F5E"),
			Accent:     lipgloss.Color("#FACC15"),
			Info:       lipgloss.Color("#38BDF8"),
			Success:    lipgloss.Color("#22C55E"),
			Warning:    lipgloss.Color("#F59E0B"),
			Error:      lipgloss.Color("#EF4444"),
			Muted:      lipgloss.Color("#94A3B8"),
			Background: lipgloss.Color("#0F172A"),
			Foreground: lipgloss.Color("#E2E8F0"),
			Border:     lipgloss.Color("#475569"),
			Highlight:  lipgloss.Color("#FDBA74"),
		}
	case "mono":
		return Palette{
			Name:       "mono",
			Primary:    lipgloss.Color("#E2E8F0"),
			Secondary:  lipgloss.Color("#CBD5F5"),
			Accent:     lipgloss.Color("#94A3B8"),
			Info:       lipgloss.Color("#E2E8F0"),
			Success:    lipgloss.Color("#E2E8F0"),
			Warning:    lipgloss.Color("#94A3B8"),
			Error:      lipgloss.Color("#CBD5F5"),
			Muted:      lipgloss.Color("#94A3B8"),
			Background: lipgloss.Color("#0B1220"),
			Foreground: lipgloss.Color("#E2E8F0"),
			Border:     lipgloss.Color("#64748B"),
			Highlight:  lipgloss.Color("#F8FAFC"),
		}
	case "slim":
		return Palette{
			Name:       "slim",
			Primary:    lipgloss.Color("#33B5E5"),
			Secondary:  lipgloss.Color("#99CC00"),
			Accent:     lipgloss.Color("#0099CC"),
			Info:       lipgloss.Color("#7FB8FF"),
			Success:    lipgloss.Color("#99CC00"),
			Warning:    lipgloss.Color("#FFBB33"),
			Error:      lipgloss.Color("#FF4444"),
			Muted:      lipgloss.Color("#8A8A8A"),
			Background: lipgloss.Color("#101010"),
			Foreground: lipgloss.Color("#F2F2F2"),
			Border:     lipgloss.Color("#3A3A3A"),
			Highlight:  lipgloss.Color("#AEE3F5"),
		}
	default:
		return Palette{
			Name:       "aurora",
			Primary:    lipgloss.Color("#22D3EE"),
			Secondary:  lipgloss.Color("#A78BFA"),
			Accent:     lipgloss.Color("#38BDF8"),
			Info:       lipgloss.Color("#60A5FA"),
			Success:    lipgloss.Color("#34D399"),
			Warning:    lipgloss.Color("#FBBF24"),
			Error:      lipgloss.Color("#F87171"),
			Muted:      lipgloss.Color("#94A3B8"),
			Background: lipgloss.Color("#0B1120"),
			Foreground: lipgloss.Color("#E2E8F0"),
			Border:     lipgloss.Color("#334155"),
			Highlight:  lipgloss.Color("#7DD3FC"),
		}
	}
}

// DefaultPalette returns the default theme palette.
func DefaultPalette() Palette {
	return PaletteByName(defaultThemeName)
}

// ActivePalette is the palette last passed to ApplyPalette.
var ActivePalette = DefaultPalette()

// ApplyPalette makes p the active palette and rebuilds all styles.
// A disabled palette renders without colors.
func ApplyPalette(p Palette) {
	ActivePalette = p
	if p.Disabled {
		p = Palette{Name: p.Name, Disabled: true}
	}
	Primary = p.Primary
	Secondary = p.Secondary
	Accent = p.Accent
	Info = p.Info
	Success = p.Success
	Warning = p.Warning
	Error = p.Error
	Muted = p.Muted
	Background = p.Background
	Foreground = p.Foreground
	Border = p.Border
	Highlight = p.Highlight
	rebuildStyles()
}
