package ui

import (
	"strconv"

	"github.com/iiroan/piestyle/internal/piestyle"
)

// ChangeListener receives a value picked by the user and reports whether it
// was accepted.
type ChangeListener func(raw any) (bool, error)

type preference struct {
	key      piestyle.SettingKey
	title    string
	onChange ChangeListener
}

func (p *preference) Key() piestyle.SettingKey { return p.key }

func (p *preference) Title() string { return p.title }

// SetOnChange installs the listener called before a new value is committed.
func (p *preference) SetOnChange(l ChangeListener) {
	p.onChange = l
}

func (p *preference) callChangeListener(raw any) (bool, error) {
	if p.onChange == nil {
		return true, nil
	}
	return p.onChange(raw)
}

// ColorPreference is a color picker with a hex summary and a preview.
type ColorPreference struct {
	preference
	summary string
	preview piestyle.ARGB
}

func NewColorPreference(key piestyle.SettingKey, title string) *ColorPreference {
	return &ColorPreference{preference: preference{key: key, title: title}}
}

func (p *ColorPreference) SetSummary(s string)             { p.summary = s }
func (p *ColorPreference) Summary() string                 { return p.summary }
func (p *ColorPreference) SetPreviewColor(c piestyle.ARGB) { p.preview = c }
func (p *ColorPreference) Preview() piestyle.ARGB          { return p.preview }

// Change offers a user-picked color to the listener and previews it if
// accepted.
func (p *ColorPreference) Change(c piestyle.ARGB) error {
	ok, err := p.callChangeListener(c)
	if err != nil {
		return err
	}
	if ok {
		p.preview = c
	}
	return nil
}

// SeekBarPreference is a 0..100 slider.
type SeekBarPreference struct {
	preference
	value     int
	noPercent bool
}

const seekBarMax = 100

func NewSeekBarPreference(key piestyle.SettingKey, title string) *SeekBarPreference {
	return &SeekBarPreference{preference: preference{key: key, title: title}}
}

// SetInitValue moves the slider. Like a real slider it notifies the change
// listener; the result is ignored.
func (p *SeekBarPreference) SetInitValue(v int) {
	p.value = clampSeekBar(v)
	_, _ = p.callChangeListener(strconv.Itoa(p.value))
}

func (p *SeekBarPreference) DisablePercentageValue(disable bool) { p.noPercent = disable }

func (p *SeekBarPreference) Value() int { return p.value }

// Change offers a user-picked position, clamped to 0..100.
func (p *SeekBarPreference) Change(v int) error {
	v = clampSeekBar(v)
	ok, err := p.callChangeListener(strconv.Itoa(v))
	if err != nil {
		return err
	}
	if ok {
		p.value = v
	}
	return nil
}

// Summary renders the position, with a % suffix unless disabled.
func (p *SeekBarPreference) Summary() string {
	if p.noPercent {
		return strconv.Itoa(p.value)
	}
	return strconv.Itoa(p.value) + "%"
}

func clampSeekBar(v int) int {
	if v < 0 {
		return 0
	}
	if v > seekBarMax {
		return seekBarMax
	}
	return v
}

// CheckBoxPreference is an on/off toggle.
type CheckBoxPreference struct {
	preference
	checked bool
}

func NewCheckBoxPreference(key piestyle.SettingKey, title string) *CheckBoxPreference {
	return &CheckBoxPreference{preference: preference{key: key, title: title}}
}

func (p *CheckBoxPreference) SetChecked(c bool) { p.checked = c }
func (p *CheckBoxPreference) Checked() bool     { return p.checked }

func (p *CheckBoxPreference) Change(c bool) error {
	ok, err := p.callChangeListener(c)
	if err != nil {
		return err
	}
	if ok {
		p.checked = c
	}
	return nil
}

func (p *CheckBoxPreference) Summary() string {
	if p.checked {
		return "on"
	}
	return "off"
}
