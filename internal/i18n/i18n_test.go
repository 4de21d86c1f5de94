package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestDefaultLabel(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{"", "Default"},
		{"en", "Default"},
		{"de", "Standard"},
		{"de_DE.UTF-8", "Standard"},
		{"fr-CA", "Par défaut"},
		{"es", "Predeterminado"},
		{"not a locale", "Default"},
	}
	for _, tt := range tests {
		if got := Text(NewPrinter(tt.locale), ColorDefault); got != tt.want {
			t.Errorf("locale %q: label = %q, want %q", tt.locale, got, tt.want)
		}
	}
}

func TestUntranslatedFallsBackToKey(t *testing.T) {
	if got := Text(NewPrinter("de"), "Exit"); got != "Exit" {
		t.Errorf("Text(Exit) = %q, want Exit", got)
	}
}

func TestMatch(t *testing.T) {
	if got := Match("de-AT"); got != language.German {
		t.Errorf("Match(de-AT) = %v, want de", got)
	}
	if got := Match("C"); got != language.English {
		t.Errorf("Match(C) = %v, want en", got)
	}
}

func TestDetectLocale(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "fr_FR.UTF-8")
	if got := DetectLocale(); got != "fr_FR.UTF-8" {
		t.Errorf("DetectLocale = %q, want fr_FR.UTF-8", got)
	}
}
