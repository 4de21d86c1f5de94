package cmd

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/iiroan/piestyle/internal/config"
)

func TestDisplayMenuItems(t *testing.T) {
	items := displayMenuItems(config.UIConfig{Theme: "slim", NoColor: true})

	active := ""
	for _, item := range items {
		if item.Details == "active" {
			active = item.ID
		}
	}
	if active != "theme:slim" {
		t.Errorf("active theme row = %q, want theme:slim", active)
	}

	last := items[len(items)-2:]
	if last[0].ID != displayDense || last[0].Details != "off" {
		t.Errorf("dense row = %+v", last[0])
	}
	if last[1].ID != displayColors || last[1].Details != "off" {
		t.Errorf("colors row = %+v", last[1])
	}
}

func TestDisplayMenuItemsUnknownThemeMarksDefault(t *testing.T) {
	for _, item := range displayMenuItems(config.UIConfig{Theme: "neon"}) {
		if item.Details == "active" && item.ID != "theme:aurora" {
			t.Errorf("active row = %q, want theme:aurora", item.ID)
		}
	}
}

func TestApplyDisplayChoice(t *testing.T) {
	base := config.UIConfig{Theme: "aurora"}
	tests := []struct {
		choice string
		want   config.UIConfig
		ok     bool
	}{
		{"theme:ember", config.UIConfig{Theme: "ember"}, true},
		{"dense", config.UIConfig{Theme: "aurora", Dense: true}, true},
		{"colors", config.UIConfig{Theme: "aurora", NoColor: true}, true},
		{"theme:neon", base, false},
		{"background-color", base, false},
	}
	for _, tt := range tests {
		got, ok := applyDisplayChoice(base, tt.choice)
		if ok != tt.ok || got != tt.want {
			t.Errorf("applyDisplayChoice(%q) = %+v, %v; want %+v, %v", tt.choice, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSaveDisplayKeepsOtherFileSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "piestyle.yaml")
	onFile := config.DefaultConfig()
	onFile.Locale = "de"
	if err := onFile.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	oldFile, oldCfg, oldLogger := cfgFile, cfg, logger
	t.Cleanup(func() {
		cfgFile, cfg, logger = oldFile, oldCfg, oldLogger
		applyUISettings()
	})
	cfgFile = path
	cfg = config.DefaultConfig()
	cfg.Locale = "fr"
	logger = log.New(io.Discard)

	if err := saveDisplay(config.UIConfig{Theme: "mono", Dense: true}); err != nil {
		t.Fatalf("saveDisplay: %v", err)
	}

	got, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.UI.Theme != "mono" || !got.UI.Dense {
		t.Errorf("saved UI = %+v", got.UI)
	}
	if got.Locale != "de" {
		t.Errorf("locale = %q, want de from the file", got.Locale)
	}
	if cfg.UI.Theme != "mono" {
		t.Errorf("running config theme = %q, want mono", cfg.UI.Theme)
	}
}
