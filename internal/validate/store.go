package validate

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/iiroan/piestyle/internal/piestyle"
	"github.com/iiroan/piestyle/internal/settings"
)

// Store reports the state of each pie style value in the settings database.
// A database that does not exist yet is not created.
func Store(path string) Result {
	result := Result{}
	name := filepath.Base(path)

	if path != ":memory:" {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			result.AddPending(name + " not created yet")
			result.AddItem(StatusPending, name, "not created yet, defaults apply")
			return result
		}
	}

	store, err := settings.Open(path)
	if err != nil {
		result.AddError(fmt.Sprintf("Store: %v", err))
		result.AddItem(StatusError, name, err.Error())
		return result
	}
	defer store.Close()

	result.AddItem(StatusSuccess, name, "")
	checkValues(&result, store)
	return result
}

func checkValues(r *Result, store *settings.Store) {
	entries, err := store.All()
	if err != nil {
		r.AddError(fmt.Sprintf("Store: %v", err))
		r.AddItem(StatusError, "settings", err.Error())
		return
	}
	raw := make(map[string]string, len(entries))
	for _, e := range entries {
		raw[e.Name] = e.Value
	}

	for _, key := range piestyle.Keys() {
		storeName := key.StoreName()
		value, ok := raw[storeName]
		switch {
		case !ok:
			r.AddItem(StatusPending, storeName, "unset, default applies")
		case key.IsColor():
			r.checkColor(storeName, value)
		case key == piestyle.MirrorRight:
			r.checkMirror(storeName, value)
		default:
			r.checkFloat(storeName, value)
		}
	}
}

func (r *Result) checkColor(name, value string) {
	v, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		r.AddWarning(fmt.Sprintf("%s: %q is not a number", name, value))
		r.AddItem(StatusWarning, name, "unreadable, theme default applies")
		return
	}
	if v == piestyle.ColorUnset {
		r.AddItem(StatusSuccess, name, "theme default")
		return
	}
	r.AddItem(StatusSuccess, name, piestyle.FromInt(int(v)).Hex())
}

func (r *Result) checkMirror(name, value string) {
	v, err := strconv.ParseInt(value, 10, 32)
	switch {
	case err != nil:
		r.AddWarning(fmt.Sprintf("%s: %q is not a number", name, value))
		r.AddItem(StatusWarning, name, "unreadable, shown as on")
	case v == 1:
		r.AddItem(StatusSuccess, name, "on")
	case v == 0:
		r.AddItem(StatusSuccess, name, "off")
	default:
		r.AddWarning(fmt.Sprintf("%s: unexpected value %d", name, v))
		r.AddItem(StatusWarning, name, fmt.Sprintf("%d is shown as off", v))
	}
}

func (r *Result) checkFloat(name, value string) {
	if v, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		r.AddWarning(fmt.Sprintf("%s: %q is not a number", name, value))
		r.AddItem(StatusWarning, name, "unreadable, rewritten with the default on next load")
		return
	}
	r.AddItem(StatusSuccess, name, value)
}
