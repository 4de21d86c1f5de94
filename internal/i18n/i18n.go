// Package i18n holds the translated labels of the pie style screen.
package i18n

import (
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ColorDefault is the summary of a color left at the theme default.
const ColorDefault = "Default"

var supported = []language.Tag{
	language.English,
	language.German,
	language.French,
	language.Spanish,
}

var matcher = language.NewMatcher(supported)

var translations = map[language.Tag]map[string]string{
	language.German: {
		ColorDefault:              "Standard",
		"Background color":        "Hintergrundfarbe",
		"Snap color":              "Einrastfarbe",
		"Text color":              "Textfarbe",
		"Background transparency": "Hintergrundtransparenz",
		"Control size":            "Steuerungsgröße",
		"Mirror right":            "Rechts spiegeln",
		"Reset to defaults":       "Auf Standard zurücksetzen",
	},
	language.French: {
		ColorDefault:              "Par défaut",
		"Background color":        "Couleur d'arrière-plan",
		"Snap color":              "Couleur d'accroche",
		"Text color":              "Couleur du texte",
		"Background transparency": "Transparence de l'arrière-plan",
		"Control size":            "Taille du contrôle",
		"Mirror right":            "Miroir à droite",
		"Reset to defaults":       "Réinitialiser",
	},
	language.Spanish: {
		ColorDefault:              "Predeterminado",
		"Background color":        "Color de fondo",
		"Snap color":              "Color de ajuste",
		"Text color":              "Color del texto",
		"Background transparency": "Transparencia del fondo",
		"Control size":            "Tamaño del control",
		"Mirror right":            "Reflejar a la derecha",
		"Reset to defaults":       "Restablecer valores",
	},
}

func init() {
	for tag, entries := range translations {
		for key, msg := range entries {
			if err := message.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
}

// NewPrinter returns a printer for locale ("de", "fr-CA", "es_ES.UTF-8").
// Unknown or empty locales use English.
func NewPrinter(locale string) *message.Printer {
	return message.NewPrinter(Match(locale))
}

// Match returns the supported language closest to locale.
func Match(locale string) language.Tag {
	locale = normalize(locale)
	if locale == "" {
		return language.English
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return language.English
	}
	return supported[idx]
}

// Text translates an English label.
func Text(p *message.Printer, s string) string {
	return p.Sprintf(message.Key(s, s))
}

// DetectLocale reads the locale from the usual environment variables.
func DetectLocale() string {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(env); v != "" && v != "C" && v != "POSIX" {
			return v
		}
	}
	return ""
}

func normalize(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	return strings.ReplaceAll(locale, "_", "-")
}
