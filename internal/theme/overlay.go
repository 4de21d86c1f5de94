// Package theme reads the host theme overlay that provides the default pie
// colors.
package theme

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/iiroan/piestyle/internal/piestyle"
)

var (
	// ErrUnavailable is returned by a nil overlay.
	ErrUnavailable = errors.New("theme overlay unavailable")
	// ErrColorNotFound is returned for names the overlay does not define.
	ErrColorNotFound = errors.New("color not found")
)

// Overlay maps color resource names to ARGB values.
type Overlay struct {
	Name   string            `yaml:"name"`
	Colors map[string]string `yaml:"colors"`

	parsed map[string]piestyle.ARGB
}

// Load reads an overlay file. Every color must parse as #aarrggbb or #rrggbb.
func Load(path string) (*Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme overlay: %w", err)
	}
	return Parse(data)
}

// Parse decodes overlay YAML.
func Parse(data []byte) (*Overlay, error) {
	o := &Overlay{}
	if err := yaml.Unmarshal(data, o); err != nil {
		return nil, fmt.Errorf("parsing theme overlay: %w", err)
	}

	o.parsed = make(map[string]piestyle.ARGB, len(o.Colors))
	for name, value := range o.Colors {
		c, err := piestyle.ParseHex(value)
		if err != nil {
			return nil, fmt.Errorf("theme color %s: %w", name, err)
		}
		o.parsed[name] = c
	}
	return o, nil
}

// Color returns the color registered under resource.
func (o *Overlay) Color(resource string) (piestyle.ARGB, error) {
	if o == nil {
		return 0, ErrUnavailable
	}
	c, ok := o.parsed[resource]
	if !ok {
		return 0, fmt.Errorf("%s: %w", resource, ErrColorNotFound)
	}
	return c, nil
}

// Names lists the defined resources, sorted.
func (o *Overlay) Names() []string {
	if o == nil {
		return nil
	}
	names := make([]string, 0, len(o.parsed))
	for name := range o.parsed {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
