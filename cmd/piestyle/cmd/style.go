package cmd

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/iiroan/piestyle/internal/config"
	"github.com/iiroan/piestyle/internal/piestyle"
	"github.com/iiroan/piestyle/internal/ui"
)

const (
	choiceReset   = "reset"
	choiceDisplay = "display"
	choiceExit    = "exit"
)

func runStyleScreen() error {
	s, err := openSession(cfg, logger)
	if err != nil {
		return err
	}
	defer s.Close()

	selected := ""
	for {
		options := []ui.MenuOption{ui.WithInfo("Database", s.dbPath)}
		if s.overlay != "" {
			options = append(options, ui.WithInfo("Theme", s.overlay))
		}
		if selected != "" {
			options = append(options, ui.WithInitialSelectionID(selected))
		}

		choice, err := ui.RunMenu("PIE STYLE", "Choose a setting to edit", styleMenuItems(s), options...)
		if err != nil {
			logger.Debug("menu unavailable, using prompt", "error", err)
			return runStyleFallback(s)
		}

		switch choice {
		case ui.MenuActionQuit, ui.MenuActionBack, choiceExit, "":
			return nil
		}
		selected = choice

		if err := runStyleChoice(s, choice); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				continue
			}
			if errors.Is(err, errQuit) {
				return nil
			}
			return err
		}
	}
}

func styleMenuItems(s *session) []ui.MenuItem {
	items := s.prefs.MenuItems()
	return append(items,
		ui.MenuItem{ID: choiceReset, TitleText: s.tr("Reset to defaults"), Details: "Theme colors and default transparency"},
		ui.MenuItem{ID: choiceDisplay, TitleText: "Display", Details: "Screen theme, density and colors"},
		ui.MenuItem{ID: choiceExit, TitleText: "Exit", Details: "Close the pie style screen"},
	)
}

func runStyleFallback(s *session) error {
	ui.StartScreen("PIE STYLE", "Choose a setting to edit")
	for {
		var choice string
		options := make([]huh.Option[string], 0, 8)
		for _, item := range styleMenuItems(s) {
			label := item.TitleText
			if _, ok := piestyle.ParseKey(item.ID); ok {
				label = fmt.Sprintf("%s (%s)", item.TitleText, item.Details)
			}
			options = append(options, huh.NewOption(label, item.ID))
		}

		err := huh.NewSelect[string]().
			Title("Pie style").
			Options(options...).
			Value(&choice).
			WithTheme(ui.HuhTheme()).
			Run()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
		if choice == choiceExit || choice == "" {
			return nil
		}

		if err := runStyleChoice(s, choice); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				continue
			}
			return err
		}
	}
}

func runStyleChoice(s *session, choice string) error {
	if choice == choiceDisplay {
		return editDisplay()
	}
	if choice == choiceReset {
		confirmed := true
		err := runField(huh.NewConfirm().
			Title(s.tr("Reset to defaults")).
			Description("Colors and transparency return to their defaults. Size and mirroring stay.").
			Value(&confirmed))
		if err != nil || !confirmed {
			return err
		}
		return s.controller.ResetToDefaults()
	}

	key, ok := piestyle.ParseKey(choice)
	if !ok {
		return nil
	}
	return editSetting(s.prefs, key)
}

func editSetting(prefs *ui.PieStylePreferences, key piestyle.SettingKey) error {
	if w := prefs.Color(key); w != nil {
		value := w.Preview().Hex()
		err := runField(huh.NewInput().
			Title(w.Title()).
			Description("#aarrggbb or #rrggbb").
			Value(&value).
			Validate(func(v string) error {
				_, err := piestyle.ParseHex(v)
				return err
			}))
		if err != nil {
			return err
		}
		c, err := piestyle.ParseHex(value)
		if err != nil {
			return err
		}
		return w.Change(c)
	}

	if w := prefs.SeekBar(key); w != nil {
		value := strconv.Itoa(w.Value())
		description := "0-100"
		if key == piestyle.ControlSize {
			description = "0 is the smallest pie, 100 the largest"
		}
		err := runField(huh.NewInput().
			Title(w.Title()).
			Description(description).
			Value(&value).
			Validate(func(v string) error {
				_, err := parsePercent(v)
				return err
			}))
		if err != nil {
			return err
		}
		n, err := parsePercent(value)
		if err != nil {
			return err
		}
		return w.Change(n)
	}

	if key == piestyle.MirrorRight {
		checked := prefs.MirrorRight.Checked()
		err := runField(huh.NewConfirm().
			Title(prefs.MirrorRight.Title()).
			Description("Open the pie from the right screen edge").
			Affirmative("On").
			Negative("Off").
			Value(&checked))
		if err != nil {
			return err
		}
		return prefs.MirrorRight.Change(checked)
	}

	return nil
}

// errQuit leaves the whole screen from a nested menu.
var errQuit = errors.New("quit")

const (
	displayThemePrefix = "theme:"
	displayDense       = "dense"
	displayColors      = "colors"
)

// editDisplay opens the screen preferences below the main menu and saves
// every change to the config file.
func editDisplay() error {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	selected := ""
	for {
		options := []ui.MenuOption{ui.WithBackNavigation("Pie style")}
		if selected != "" {
			options = append(options, ui.WithInitialSelectionID(selected))
		}

		choice, err := ui.RunMenu("DISPLAY", "Theme and colors of this screen", displayMenuItems(cfg.UI), options...)
		if err != nil {
			logger.Debug("menu unavailable, using form", "error", err)
			return runDisplayForm()
		}

		switch choice {
		case ui.MenuActionBack, "":
			return nil
		case ui.MenuActionQuit:
			return errQuit
		}
		selected = choice

		if next, ok := applyDisplayChoice(cfg.UI, choice); ok {
			if err := saveDisplay(next); err != nil {
				return err
			}
		}
	}
}

func displayMenuItems(u config.UIConfig) []ui.MenuItem {
	active := ui.PaletteByName(u.Theme).Name
	items := make([]ui.MenuItem, 0, len(ui.ThemeNames())+2)
	for _, name := range ui.ThemeNames() {
		item := ui.MenuItem{
			ID:        displayThemePrefix + name,
			TitleText: name,
			Swatch:    ui.PaletteSwatch(name, 4),
		}
		if name == active {
			item.Details = "active"
		}
		items = append(items, item)
	}
	return append(items,
		ui.MenuItem{ID: displayDense, TitleText: "Dense layout", Details: onOff(u.Dense)},
		ui.MenuItem{ID: displayColors, TitleText: "Colors", Details: onOff(!u.NoColor)},
	)
}

// applyDisplayChoice returns u with the picked row applied. Toggles flip,
// themes are selected.
func applyDisplayChoice(u config.UIConfig, choice string) (config.UIConfig, bool) {
	switch choice {
	case displayDense:
		u.Dense = !u.Dense
		return u, true
	case displayColors:
		u.NoColor = !u.NoColor
		return u, true
	}
	name, ok := strings.CutPrefix(choice, displayThemePrefix)
	if !ok || !slices.Contains(ui.ThemeNames(), name) {
		return u, false
	}
	u.Theme = name
	return u, true
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// runDisplayForm edits the screen preferences in one form when the menu
// cannot run.
func runDisplayForm() error {
	u := cfg.UI
	themeOptions := make([]huh.Option[string], 0)
	for _, name := range ui.ThemeNames() {
		themeOptions = append(themeOptions, huh.NewOption(name, name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Description("Colors of this screen").
				Options(themeOptions...).
				Value(&u.Theme),
			huh.NewConfirm().
				Title("Dense Layout").
				Description("Reduce vertical spacing").
				Value(&u.Dense),
			huh.NewConfirm().
				Title("Disable Colors").
				Description("Use monochrome output").
				Value(&u.NoColor),
		),
	).WithTheme(ui.HuhTheme()).WithKeyMap(newHuhBackOnQKeyMap())
	if err := form.Run(); err != nil {
		return err
	}
	return saveDisplay(u)
}

// saveDisplay writes u to the config file and applies it.
func saveDisplay(u config.UIConfig) error {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	cfg.UI = u

	path := cfgFile
	if path == "" {
		var err error
		path, err = config.GetConfigPath()
		if err != nil {
			return err
		}
	}
	// Flag and environment overrides stay out of the file.
	fileCfg, err := config.Load(path)
	if err != nil {
		return err
	}
	fileCfg.UI = u
	if err := fileCfg.Save(path); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	logger.Info("display settings saved", "path", path)

	applyUISettings()
	return nil
}
