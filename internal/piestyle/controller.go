package piestyle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// Store is the system settings store the controller reads and writes.
type Store interface {
	// GetInt returns def when the key is unset or not an integer.
	GetInt(name string, def int) (int, error)
	// GetFloat fails when the key is unset or not a number.
	GetFloat(name string) (float64, error)
	PutInt(name string, v int) error
	PutFloat(name string, v float64) error
}

// ThemeResolver looks up theme default colors by resource name.
type ThemeResolver interface {
	Color(resource string) (ARGB, error)
}

// ColorControl is a color picker preference.
type ColorControl interface {
	SetSummary(summary string)
	SetPreviewColor(c ARGB)
}

// SliderControl is a 0..100 slider preference.
type SliderControl interface {
	SetInitValue(v int)
	DisablePercentageValue(disable bool)
}

// CheckControl is a checkbox preference.
type CheckControl interface {
	SetChecked(checked bool)
}

// Controls binds every setting to the widget that displays it.
type Controls struct {
	BackgroundColor ColorControl
	SnapColor       ColorControl
	TextColor       ColorControl
	BackgroundAlpha SliderControl
	ControlSize     SliderControl
	MirrorRight     CheckControl
}

func (c Controls) validate() error {
	missing := []string{}
	if c.BackgroundColor == nil {
		missing = append(missing, BackgroundColor.String())
	}
	if c.SnapColor == nil {
		missing = append(missing, SnapColor.String())
	}
	if c.TextColor == nil {
		missing = append(missing, TextColor.String())
	}
	if c.BackgroundAlpha == nil {
		missing = append(missing, BackgroundAlpha.String())
	}
	if c.ControlSize == nil {
		missing = append(missing, ControlSize.String())
	}
	if c.MirrorRight == nil {
		missing = append(missing, MirrorRight.String())
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing controls: %s", strings.Join(missing, ", "))
	}
	return nil
}

func (c Controls) color(k SettingKey) ColorControl {
	switch k {
	case BackgroundColor:
		return c.BackgroundColor
	case SnapColor:
		return c.SnapColor
	case TextColor:
		return c.TextColor
	}
	return nil
}

// Phase tells whether change events are persisted.
type Phase int

const (
	// PhaseLoading ignores change events fired while controls are populated.
	PhaseLoading Phase = iota
	PhaseLive
)

func (p Phase) String() string {
	if p == PhaseLive {
		return "live"
	}
	return "loading"
}

// Option configures a Controller.
type Option func(*Controller)

// WithTheme sets the resolver for unset colors.
func WithTheme(r ThemeResolver) Option {
	return func(c *Controller) {
		c.theme = r
	}
}

// WithLogger sets the logger; nil keeps log.Default().
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithDefaultLabel sets the summary shown for colors left at the theme default.
func WithDefaultLabel(label string) Option {
	return func(c *Controller) {
		if label != "" {
			c.defaultLabel = label
		}
	}
}

// Controller keeps the pie style controls and the settings store in sync.
type Controller struct {
	store        Store
	controls     Controls
	theme        ThemeResolver
	logger       *log.Logger
	defaultLabel string
	phase        Phase
}

// NewController binds store and controls. The controller starts in
// PhaseLoading; call LoadAndDisplay to go live.
func NewController(store Store, controls Controls, opts ...Option) (*Controller, error) {
	if store == nil {
		return nil, fmt.Errorf("settings store is required")
	}
	if err := controls.validate(); err != nil {
		return nil, err
	}
	c := &Controller{
		store:        store,
		controls:     controls,
		logger:       log.Default(),
		defaultLabel: "Default",
		phase:        PhaseLoading,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// LoadAndDisplay reads every setting and populates its control. Change events
// raised while the controls are filled are dropped. On error the controller
// stays in PhaseLoading.
func (c *Controller) LoadAndDisplay() error {
	c.phase = PhaseLoading

	for _, spec := range keyTable {
		if spec.kind != kColor {
			continue
		}
		if err := c.loadColor(spec); err != nil {
			return err
		}
	}

	mirror, err := c.store.GetInt(StoreMirrorRight, MirrorRightDefault)
	if err != nil {
		return fmt.Errorf("reading %s: %w", StoreMirrorRight, err)
	}
	c.controls.MirrorRight.SetChecked(mirror == 1)

	alpha, err := c.readFloat(StoreBackgroundAlpha, DefaultBackgroundAlpha)
	if err != nil {
		return err
	}
	c.controls.BackgroundAlpha.SetInitValue(DisplayFromAlpha(alpha))

	size, err := c.readFloat(StoreControlSize, ControlSizeDefault)
	if err != nil {
		return err
	}
	c.controls.ControlSize.SetInitValue(DisplayFromFactor(size))
	c.controls.ControlSize.DisablePercentageValue(true)

	c.phase = PhaseLive
	return nil
}

func (c *Controller) loadColor(spec keySpec) error {
	v, err := c.store.GetInt(spec.name, ColorUnset)
	if err != nil {
		return fmt.Errorf("reading %s: %w", spec.name, err)
	}

	ctl := c.controls.color(spec.key)
	color := FromInt(v)
	if v == ColorUnset {
		color = c.themeDefault(spec)
		ctl.SetSummary(c.defaultLabel)
	} else {
		ctl.SetSummary(color.Hex())
	}
	ctl.SetPreviewColor(color)
	return nil
}

func (c *Controller) themeDefault(spec keySpec) ARGB {
	if c.theme == nil {
		return spec.fallback
	}
	color, err := c.theme.Color(spec.resource)
	if err != nil {
		c.logger.Debug("theme color unavailable, using fallback",
			"resource", spec.resource, "fallback", spec.fallback.Hex(), "error", err)
		return spec.fallback
	}
	return color
}

// readFloat returns the stored float, or writes def when the value is
// missing or malformed.
func (c *Controller) readFloat(name string, def float64) (float64, error) {
	v, err := c.store.GetFloat(name)
	if err == nil {
		return v, nil
	}
	c.logger.Debug("initializing setting", "key", name, "value", def, "reason", err)
	if err := c.store.PutFloat(name, def); err != nil {
		return 0, fmt.Errorf("writing %s: %w", name, err)
	}
	return def, nil
}

// OnUserChange persists a value chosen by the user. It reports whether the
// change was accepted; unknown keys and events received while loading are
// not. Alpha and size take a 0..100 position, colors an ARGB value and
// mirror a bool.
func (c *Controller) OnUserChange(key SettingKey, raw any) (bool, error) {
	if c.phase != PhaseLive {
		return false, nil
	}
	spec, ok := lookup(key)
	if !ok {
		return false, nil
	}

	switch spec.kind {
	case kAlpha:
		percent, err := toFloat(raw)
		if err != nil {
			return false, fmt.Errorf("%s: %w", spec.flag, err)
		}
		if err := c.store.PutFloat(spec.name, AlphaFromDisplay(percent)); err != nil {
			return false, fmt.Errorf("writing %s: %w", spec.name, err)
		}
	case kSize:
		percent, err := toFloat(raw)
		if err != nil {
			return false, fmt.Errorf("%s: %w", spec.flag, err)
		}
		if err := c.store.PutFloat(spec.name, FactorFromDisplay(percent)); err != nil {
			return false, fmt.Errorf("writing %s: %w", spec.name, err)
		}
	case kColor:
		color, err := toARGB(raw)
		if err != nil {
			return false, fmt.Errorf("%s: %w", spec.flag, err)
		}
		if err := c.store.PutInt(spec.name, color.Int()); err != nil {
			return false, fmt.Errorf("writing %s: %w", spec.name, err)
		}
		c.controls.color(key).SetSummary(color.Hex())
	case kBool:
		checked, err := toBool(raw)
		if err != nil {
			return false, fmt.Errorf("%s: %w", spec.flag, err)
		}
		v := 0
		if checked {
			v = 1
		}
		if err := c.store.PutInt(spec.name, v); err != nil {
			return false, fmt.Errorf("writing %s: %w", spec.name, err)
		}
	}

	c.logger.Debug("setting changed", "key", spec.name, "value", raw)
	return true, nil
}

// ResetToDefaults returns the three colors to the theme default and the
// background alpha to 0.3, then reloads the controls. Control size and
// mirroring keep their values.
func (c *Controller) ResetToDefaults() error {
	for _, spec := range keyTable {
		if spec.kind != kColor {
			continue
		}
		if err := c.store.PutInt(spec.name, ColorUnset); err != nil {
			return fmt.Errorf("writing %s: %w", spec.name, err)
		}
	}
	if err := c.store.PutFloat(StoreBackgroundAlpha, DefaultBackgroundAlpha); err != nil {
		return fmt.Errorf("writing %s: %w", StoreBackgroundAlpha, err)
	}
	c.logger.Info("pie style reset to defaults")
	return c.LoadAndDisplay()
}

func toFloat(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid number %q", v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("unsupported value type %T", raw)
	}
}

func toARGB(raw any) (ARGB, error) {
	switch v := raw.(type) {
	case ARGB:
		return v, nil
	case uint32:
		return ARGB(v), nil
	case int:
		return FromInt(v), nil
	case int32:
		return ARGB(uint32(v)), nil
	case int64:
		return ARGB(uint32(v)), nil
	case string:
		s := strings.TrimSpace(v)
		if strings.HasPrefix(s, "#") {
			return ParseHex(s)
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q", v)
		}
		return ARGB(uint32(n)), nil
	default:
		return 0, fmt.Errorf("unsupported value type %T", raw)
	}
}

func toBool(raw any) (bool, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case int:
		return v != 0, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, fmt.Errorf("invalid boolean %q", v)
		}
		return b, nil
	default:
		return false, fmt.Errorf("unsupported value type %T", raw)
	}
}
