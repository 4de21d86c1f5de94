package validate

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/iiroan/piestyle/internal/piestyle"
	"github.com/iiroan/piestyle/internal/theme"
)

// Overlay checks that the theme overlay parses and defines the pie colors.
// Missing colors are warnings: the built-in fallback is used for them.
func Overlay(path string) Result {
	result := Result{}
	if path == "" {
		result.AddItem(StatusPending, "theme overlay", "not configured, using built-in colors")
		return result
	}

	name := filepath.Base(path)
	overlay, err := theme.Load(path)
	if err != nil {
		result.AddError(fmt.Sprintf("Theme overlay: %v", err))
		result.AddItem(StatusError, name, err.Error())
		return result
	}

	for _, key := range piestyle.Keys() {
		resource := key.Resource()
		if resource == "" {
			continue
		}
		c, err := overlay.Color(resource)
		switch {
		case errors.Is(err, theme.ErrColorNotFound):
			result.AddWarning(fmt.Sprintf("%s: %s missing", name, resource))
			result.AddItem(StatusWarning, resource, "missing, falls back to "+key.Fallback().Hex())
		case err != nil:
			result.AddError(fmt.Sprintf("%s: %v", resource, err))
			result.AddItem(StatusError, resource, err.Error())
		default:
			result.AddItem(StatusSuccess, resource, c.Hex())
		}
	}
	return result
}
