package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/iiroan/piestyle/internal/config"
	"github.com/iiroan/piestyle/internal/i18n"
	"github.com/iiroan/piestyle/internal/piestyle"
	"github.com/iiroan/piestyle/internal/settings"
	"github.com/iiroan/piestyle/internal/theme"
	"github.com/iiroan/piestyle/internal/ui"
)

var _ piestyle.Store = (*settings.Store)(nil)

// session wires the settings database, theme overlay and widgets to one
// controller.
type session struct {
	store      *settings.Store
	prefs      *ui.PieStylePreferences
	controller *piestyle.Controller
	dbPath     string
	overlay    string
	tr         func(string) string
}

// openSession opens the store named by c and loads the current values into
// the widgets.
func openSession(c *config.Config, l *log.Logger) (*session, error) {
	if c == nil {
		c = config.DefaultConfig()
	}
	if l == nil {
		l = log.Default()
	}

	store, err := settings.Open(c.Store.Path)
	if err != nil {
		return nil, err
	}

	s, err := newSession(store, c, l)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	s.dbPath = c.Store.Path
	return s, nil
}

func newSession(store *settings.Store, c *config.Config, l *log.Logger) (*session, error) {
	loc := c.Locale
	if loc == "" {
		loc = i18n.DetectLocale()
	}
	printer := i18n.NewPrinter(loc)
	tr := func(s string) string { return i18n.Text(printer, s) }

	prefs := ui.NewPieStylePreferences(tr)
	opts := []piestyle.Option{
		piestyle.WithLogger(l),
		piestyle.WithDefaultLabel(tr(i18n.ColorDefault)),
	}
	if c.Theme.Overlay != "" {
		overlay, err := theme.Load(c.Theme.Overlay)
		if err != nil {
			l.Warn("theme overlay unavailable, using built-in colors", "path", c.Theme.Overlay, "error", err)
		} else {
			opts = append(opts, piestyle.WithTheme(overlay))
		}
	}

	controller, err := piestyle.NewController(store, prefs.Controls(), opts...)
	if err != nil {
		return nil, err
	}
	prefs.Bind(controller)

	if err := controller.LoadAndDisplay(); err != nil {
		return nil, fmt.Errorf("loading pie style: %w", err)
	}

	l.Debug("session ready", "locale", i18n.Match(loc), "overlay", c.Theme.Overlay)
	return &session{
		store:      store,
		prefs:      prefs,
		controller: controller,
		overlay:    c.Theme.Overlay,
		tr:         tr,
	}, nil
}

func (s *session) Close() error {
	return s.store.Close()
}
