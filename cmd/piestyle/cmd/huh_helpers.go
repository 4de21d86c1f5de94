package cmd

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"

	"github.com/iiroan/piestyle/internal/ui"
)

// newHuhBackOnQKeyMap keeps default Huh bindings and adds q as a quit/back key.
func newHuhBackOnQKeyMap() *huh.KeyMap {
	keyMap := huh.NewDefaultKeyMap()
	keyMap.Quit = key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "back"),
	)
	return keyMap
}

// runField shows a single-field form with the active theme. Pressing q or
// ctrl+c returns huh.ErrUserAborted.
func runField(field huh.Field) error {
	return huh.NewForm(huh.NewGroup(field)).
		WithTheme(ui.HuhTheme()).
		WithKeyMap(newHuhBackOnQKeyMap()).
		Run()
}
