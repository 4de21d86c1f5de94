// Package config handles configuration loading and validation for piestyle
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the main configuration for piestyle
type Config struct {
	// Settings database
	Store StoreConfig `yaml:"store"`

	// Theme overlay providing default pie colors
	Theme ThemeConfig `yaml:"theme"`

	// Terminal UI preferences
	UI UIConfig `yaml:"ui"`

	// Locale for labels, e.g. "de" (empty: from environment)
	Locale string `yaml:"locale"`
}

// StoreConfig holds the settings database location
type StoreConfig struct {
	Path string `yaml:"path"`
}

// ThemeConfig points at the overlay file with default colors
type ThemeConfig struct {
	Overlay string `yaml:"overlay"`
}

// UIConfig holds terminal UI settings
type UIConfig struct {
	Theme   string `yaml:"theme"`
	Dense   bool   `yaml:"dense"`
	NoColor bool   `yaml:"no_color"`
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Path: filepath.Join(DefaultDataDir(), "settings.db"),
		},
		Theme: ThemeConfig{
			Overlay: "",
		},
		UI: UIConfig{
			Theme: "aurora",
		},
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Store.Path) == "" {
		return fmt.Errorf("store.path is required")
	}
	return nil
}

// envOverrides maps PIESTYLE_* variables onto config fields.
var envOverrides = []struct {
	env   string
	apply func(c *Config, v string) error
}{
	{"PIESTYLE_DB", func(c *Config, v string) error { c.Store.Path = v; return nil }},
	{"PIESTYLE_THEME_OVERLAY", func(c *Config, v string) error { c.Theme.Overlay = v; return nil }},
	{"PIESTYLE_LOCALE", func(c *Config, v string) error { c.Locale = v; return nil }},
	{"PIESTYLE_UI_THEME", func(c *Config, v string) error { c.UI.Theme = v; return nil }},
	{"PIESTYLE_UI_DENSE", func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		c.UI.Dense = b
		return nil
	}},
}

// ApplyEnv overrides config values from PIESTYLE_* environment variables.
// Invalid values are reported and leave the field unchanged.
func (c *Config) ApplyEnv() []error {
	var errs []error
	for _, o := range envOverrides {
		raw := os.Getenv(o.env)
		if raw == "" {
			continue
		}
		if err := o.apply(c, raw); err != nil {
			errs = append(errs, fmt.Errorf("%s=%q: %w", o.env, raw, err))
		}
	}
	return errs
}

// LoadEnvFile loads KEY=VALUE pairs from a .env file into the process
// environment without overriding variables that are already set. A missing
// file is not an error.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// DefaultDataDir returns the XDG data directory for piestyle
func DefaultDataDir() string {
	dir := os.Getenv("XDG_DATA_HOME")
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, ".local", "share")
		} else {
			return "piestyle-data"
		}
	}
	return filepath.Join(dir, "piestyle")
}

// GetConfigPath returns the path to piestyle.yaml in the XDG config directory
func GetConfigPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "piestyle", "piestyle.yaml"), nil
}

// LoadDefault loads configuration from the default path
func LoadDefault() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}
