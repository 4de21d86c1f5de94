package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iiroan/piestyle/internal/piestyle"
	"github.com/iiroan/piestyle/internal/ui"
)

var setCmd = &cobra.Command{
	Use:   "set KEY=VALUE...",
	Short: "Change one or more pie style settings",
	Long: `Change pie style settings as if they were picked on the screen.

Keys:
  background-color, snap-color, text-color   #aarrggbb or #rrggbb
  background-alpha                           0-100
  control-size                               0-100 (0 = smallest)
  mirror-right                               on/off, true/false`,
	Example: "  piestyle set snap-color=#ff33b5e5 background-alpha=40",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runSet,
}

type assignment struct {
	key   piestyle.SettingKey
	value string
}

func runSet(cmd *cobra.Command, args []string) error {
	pairs, err := parseKeyValuePairs(args)
	if err != nil {
		return err
	}

	s, err := openSession(cfg, logger)
	if err != nil {
		return err
	}
	defer s.Close()

	logger.Debug("applying settings", "values", formatKeyValuePairs(pairs))
	if err := applyAssignments(s.prefs, pairs); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessStyle.Render(fmt.Sprintf("Updated %d setting(s)", len(pairs))))
	return nil
}

// parseAssignments resolves setting names and orders them by key so the
// result does not depend on map iteration. Two names for the same setting
// are rejected.
func parseAssignments(pairs map[string]string) ([]assignment, error) {
	out := make([]assignment, 0, len(pairs))
	seen := make(map[piestyle.SettingKey]string, len(pairs))
	for name, value := range pairs {
		key, ok := piestyle.ParseKey(name)
		if !ok {
			return nil, fmt.Errorf("unknown setting %q (valid: %s)", name, validKeyNames())
		}
		if prev, dup := seen[key]; dup {
			first, second := prev, name
			if second < first {
				first, second = second, first
			}
			return nil, fmt.Errorf("%s is set twice (%q and %q)", key, first, second)
		}
		seen[key] = name
		out = append(out, assignment{key: key, value: value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].key < out[j].key })
	return out, nil
}

// applyAssignments parses every value before handing any of them to the
// widgets, so a typo leaves the store untouched.
func applyAssignments(prefs *ui.PieStylePreferences, pairs map[string]string) error {
	list, err := parseAssignments(pairs)
	if err != nil {
		return err
	}

	changes := make([]func() error, 0, len(list))
	for _, a := range list {
		change, err := widgetChange(prefs, a)
		if err != nil {
			return err
		}
		changes = append(changes, change)
	}
	for _, change := range changes {
		if err := change(); err != nil {
			return err
		}
	}
	return nil
}

func widgetChange(prefs *ui.PieStylePreferences, a assignment) (func() error, error) {
	if w := prefs.Color(a.key); w != nil {
		c, err := piestyle.ParseHex(a.value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", a.key, err)
		}
		return func() error { return w.Change(c) }, nil
	}

	if w := prefs.SeekBar(a.key); w != nil {
		n, err := parsePercent(a.value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", a.key, err)
		}
		return func() error { return w.Change(n) }, nil
	}

	if a.key == piestyle.MirrorRight {
		b, err := parseToggle(a.value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", a.key, err)
		}
		return func() error { return prefs.MirrorRight.Change(b) }, nil
	}

	return nil, fmt.Errorf("unknown setting %q", a.key)
}

func parsePercent(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(value), "%"))
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", value)
	}
	if n < 0 || n > 100 {
		return 0, fmt.Errorf("%d is out of range 0-100", n)
	}
	return n, nil
}

func parseToggle(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "yes", "y":
		return true, nil
	case "off", "no", "n":
		return false, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid toggle %q (use on or off)", value)
	}
	return b, nil
}

func validKeyNames() string {
	names := make([]string, 0, 6)
	for _, k := range piestyle.Keys() {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}
