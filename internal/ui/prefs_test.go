package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/iiroan/piestyle/internal/piestyle"
)

type recordingHandler struct {
	accept bool
	err    error
	calls  []string
}

func (h *recordingHandler) OnUserChange(key piestyle.SettingKey, raw any) (bool, error) {
	h.calls = append(h.calls, key.String())
	return h.accept, h.err
}

func TestSeekBarFiresOnInit(t *testing.T) {
	p := NewSeekBarPreference(piestyle.BackgroundAlpha, "Alpha")
	var got []any
	p.SetOnChange(func(raw any) (bool, error) {
		got = append(got, raw)
		return false, nil
	})

	p.SetInitValue(42)

	if p.Value() != 42 {
		t.Errorf("Value = %d, want 42", p.Value())
	}
	if len(got) != 1 || got[0] != "42" {
		t.Errorf("listener calls = %v, want [42]", got)
	}
}

func TestSeekBarChangeCommitsOnlyWhenAccepted(t *testing.T) {
	p := NewSeekBarPreference(piestyle.ControlSize, "Size")
	p.SetInitValue(10)

	accept := false
	p.SetOnChange(func(raw any) (bool, error) { return accept, nil })

	if err := p.Change(60); err != nil {
		t.Fatalf("Change: %v", err)
	}
	if p.Value() != 10 {
		t.Errorf("rejected change moved slider to %d", p.Value())
	}

	accept = true
	if err := p.Change(160); err != nil {
		t.Fatalf("Change: %v", err)
	}
	if p.Value() != 100 {
		t.Errorf("Value = %d, want clamped 100", p.Value())
	}
}

func TestSeekBarSummary(t *testing.T) {
	p := NewSeekBarPreference(piestyle.ControlSize, "Size")
	p.SetInitValue(44)
	if got := p.Summary(); got != "44%" {
		t.Errorf("Summary = %q, want 44%%", got)
	}
	p.DisablePercentageValue(true)
	if got := p.Summary(); got != "44" {
		t.Errorf("Summary = %q, want 44", got)
	}
}

func TestColorChangeError(t *testing.T) {
	p := NewColorPreference(piestyle.SnapColor, "Snap")
	p.SetPreviewColor(0xff000000)
	p.SetOnChange(func(raw any) (bool, error) { return false, errors.New("boom") })

	if err := p.Change(0xffffffff); err == nil {
		t.Fatal("expected listener error")
	}
	if p.Preview() != 0xff000000 {
		t.Errorf("Preview = %s, want unchanged #ff000000", p.Preview())
	}
}

func TestCheckBoxChange(t *testing.T) {
	p := NewCheckBoxPreference(piestyle.MirrorRight, "Mirror")
	if err := p.Change(true); err != nil {
		t.Fatalf("Change: %v", err)
	}
	if !p.Checked() || p.Summary() != "on" {
		t.Errorf("Checked = %v, Summary = %q", p.Checked(), p.Summary())
	}
}

func TestPieStyleBind(t *testing.T) {
	prefs := NewPieStylePreferences(strings.ToUpper)
	h := &recordingHandler{accept: true}
	prefs.Bind(h)

	if err := prefs.TextColor.Change(0xff00ff00); err != nil {
		t.Fatalf("Change: %v", err)
	}
	if err := prefs.MirrorRight.Change(false); err != nil {
		t.Fatalf("Change: %v", err)
	}

	want := []string{"text-color", "mirror-right"}
	if strings.Join(h.calls, ",") != strings.Join(want, ",") {
		t.Errorf("handler calls = %v, want %v", h.calls, want)
	}
	if prefs.SnapColor.Title() != "SNAP COLOR" {
		t.Errorf("title = %q, want translated SNAP COLOR", prefs.SnapColor.Title())
	}
}

func TestPieStyleMenuItems(t *testing.T) {
	prefs := NewPieStylePreferences(nil)
	prefs.BackgroundColor.SetSummary("Default")
	prefs.BackgroundAlpha.SetInitValue(30)

	items := prefs.MenuItems()
	if len(items) != 6 {
		t.Fatalf("MenuItems returned %d items, want 6", len(items))
	}
	if items[0].ID != "background-color" || items[0].Details != "Default" || items[0].Swatch == "" {
		t.Errorf("items[0] = %+v", items[0])
	}
	if items[3].ID != "background-alpha" || items[3].Details != "30%" {
		t.Errorf("items[3] = %+v", items[3])
	}
	for _, item := range items {
		if _, ok := piestyle.ParseKey(item.ID); !ok {
			t.Errorf("menu id %q is not a setting key", item.ID)
		}
	}
}

func TestControlsAreBound(t *testing.T) {
	prefs := NewPieStylePreferences(nil)
	c := prefs.Controls()
	c.ControlSize.SetInitValue(77)
	if prefs.ControlSize.Value() != 77 {
		t.Errorf("ControlSize = %d, want 77", prefs.ControlSize.Value())
	}
}
