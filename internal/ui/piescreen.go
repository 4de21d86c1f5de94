package ui

import (
	"github.com/iiroan/piestyle/internal/piestyle"
)

// ChangeHandler persists user changes; *piestyle.Controller implements it.
type ChangeHandler interface {
	OnUserChange(key piestyle.SettingKey, raw any) (bool, error)
}

// PieStylePreferences holds the six widgets of the pie style screen.
type PieStylePreferences struct {
	BackgroundColor *ColorPreference
	SnapColor       *ColorPreference
	TextColor       *ColorPreference
	BackgroundAlpha *SeekBarPreference
	ControlSize     *SeekBarPreference
	MirrorRight     *CheckBoxPreference
}

// NewPieStylePreferences builds the widgets, translating titles with tr.
func NewPieStylePreferences(tr func(string) string) *PieStylePreferences {
	if tr == nil {
		tr = func(s string) string { return s }
	}
	title := func(k piestyle.SettingKey) string { return tr(k.Title()) }
	return &PieStylePreferences{
		BackgroundColor: NewColorPreference(piestyle.BackgroundColor, title(piestyle.BackgroundColor)),
		SnapColor:       NewColorPreference(piestyle.SnapColor, title(piestyle.SnapColor)),
		TextColor:       NewColorPreference(piestyle.TextColor, title(piestyle.TextColor)),
		BackgroundAlpha: NewSeekBarPreference(piestyle.BackgroundAlpha, title(piestyle.BackgroundAlpha)),
		ControlSize:     NewSeekBarPreference(piestyle.ControlSize, title(piestyle.ControlSize)),
		MirrorRight:     NewCheckBoxPreference(piestyle.MirrorRight, title(piestyle.MirrorRight)),
	}
}

// Controls exposes the widgets to the controller.
func (p *PieStylePreferences) Controls() piestyle.Controls {
	return piestyle.Controls{
		BackgroundColor: p.BackgroundColor,
		SnapColor:       p.SnapColor,
		TextColor:       p.TextColor,
		BackgroundAlpha: p.BackgroundAlpha,
		ControlSize:     p.ControlSize,
		MirrorRight:     p.MirrorRight,
	}
}

// Bind routes every widget's change events to h.
func (p *PieStylePreferences) Bind(h ChangeHandler) {
	for _, pref := range p.all() {
		key := pref.key
		pref.SetOnChange(func(raw any) (bool, error) {
			return h.OnUserChange(key, raw)
		})
	}
}

func (p *PieStylePreferences) all() []*preference {
	return []*preference{
		&p.BackgroundColor.preference,
		&p.SnapColor.preference,
		&p.TextColor.preference,
		&p.BackgroundAlpha.preference,
		&p.ControlSize.preference,
		&p.MirrorRight.preference,
	}
}

// Color returns the color widget bound to key, or nil.
func (p *PieStylePreferences) Color(key piestyle.SettingKey) *ColorPreference {
	switch key {
	case piestyle.BackgroundColor:
		return p.BackgroundColor
	case piestyle.SnapColor:
		return p.SnapColor
	case piestyle.TextColor:
		return p.TextColor
	}
	return nil
}

// SeekBar returns the slider bound to key, or nil.
func (p *PieStylePreferences) SeekBar(key piestyle.SettingKey) *SeekBarPreference {
	switch key {
	case piestyle.BackgroundAlpha:
		return p.BackgroundAlpha
	case piestyle.ControlSize:
		return p.ControlSize
	}
	return nil
}

// Row is one rendered setting.
type Row struct {
	Key     piestyle.SettingKey
	Title   string
	Summary string
	Swatch  string
}

// Rows renders the current widget state in display order.
func (p *PieStylePreferences) Rows() []Row {
	rows := make([]Row, 0, 6)
	for _, c := range []*ColorPreference{p.BackgroundColor, p.SnapColor, p.TextColor} {
		rows = append(rows, Row{Key: c.key, Title: c.title, Summary: c.Summary(), Swatch: Swatch(c.Preview(), 6)})
	}
	for _, s := range []*SeekBarPreference{p.BackgroundAlpha, p.ControlSize} {
		rows = append(rows, Row{Key: s.key, Title: s.title, Summary: s.Summary()})
	}
	rows = append(rows, Row{Key: p.MirrorRight.key, Title: p.MirrorRight.title, Summary: p.MirrorRight.Summary()})
	return rows
}

// MenuItems turns the rows into menu entries keyed by the setting name.
func (p *PieStylePreferences) MenuItems() []MenuItem {
	rows := p.Rows()
	items := make([]MenuItem, len(rows))
	for i, r := range rows {
		items[i] = MenuItem{
			ID:        r.Key.String(),
			TitleText: r.Title,
			Details:   r.Summary,
			Swatch:    r.Swatch,
		}
	}
	return items
}
