package ui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// tint sets the foreground of every style to c.
func tint(c lipgloss.Color, styles ...*lipgloss.Style) {
	for _, s := range styles {
		*s = s.Foreground(c)
	}
}

// HuhTheme returns the form theme for the active palette. Without colors
// the plain base theme is used.
func HuhTheme() *huh.Theme {
	t := huh.ThemeBase()
	if ActivePalette.Disabled {
		return t
	}

	f := &t.Focused
	f.Base = f.Base.BorderForeground(Border)
	tint(Highlight, &f.Title, &f.NoteTitle)
	tint(Accent, &f.SelectSelector, &f.MultiSelectSelector, &f.NextIndicator, &f.PrevIndicator,
		&f.SelectedOption, &f.SelectedPrefix, &f.TextInput.Prompt)
	tint(Foreground, &f.Option, &f.UnselectedOption, &f.TextInput.Text)
	tint(Muted, &f.Description, &f.UnselectedPrefix, &f.TextInput.Placeholder)
	tint(Error, &f.ErrorIndicator, &f.ErrorMessage)
	tint(Info, &f.TextInput.Cursor)
	f.Title = f.Title.Bold(true)
	f.FocusedButton = f.FocusedButton.Foreground(Background).Background(Primary).Bold(true)
	f.BlurredButton = f.BlurredButton.Foreground(Muted).Background(lipgloss.Color(""))

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	tint(Muted, &t.Blurred.Title)
	t.Blurred.NextIndicator = lipgloss.NewStyle()
	t.Blurred.PrevIndicator = lipgloss.NewStyle()

	return t
}
