// Package piestyle maps the pie control style settings between the
// preference screen and the system settings store.
package piestyle

import "strings"

// SettingKey identifies one of the persisted pie style values.
type SettingKey int

const (
	KeyUnknown SettingKey = iota
	BackgroundColor
	SnapColor
	TextColor
	BackgroundAlpha
	ControlSize
	MirrorRight
)

type valueKind int

const (
	kColor valueKind = iota
	kAlpha
	kSize
	kBool
)

type keySpec struct {
	key   SettingKey
	name  string // store key
	flag  string // CLI name
	title string
	kind  valueKind
	// theme resource used when a color is unset
	resource string
	fallback ARGB
}

// Store key names.
const (
	StoreBackgroundColor = "background-color"
	StoreSnapColor       = "snap-color"
	StoreTextColor       = "text-color"
	StoreBackgroundAlpha = "background-alpha"
	StoreControlSize     = "control-size-factor"
	StoreMirrorRight     = "mirror-right"
)

var keyTable = []keySpec{
	{
		key: BackgroundColor, name: StoreBackgroundColor, flag: "background-color",
		title: "Background color", kind: kColor,
		resource: "pie_overlay_color", fallback: DefaultBackgroundColor,
	},
	{
		key: SnapColor, name: StoreSnapColor, flag: "snap-color",
		title: "Snap color", kind: kColor,
		resource: "pie_snap_color", fallback: DefaultSnapColor,
	},
	{
		key: TextColor, name: StoreTextColor, flag: "text-color",
		title: "Text color", kind: kColor,
		resource: "pie_text_color", fallback: DefaultTextColor,
	},
	{key: BackgroundAlpha, name: StoreBackgroundAlpha, flag: "background-alpha", title: "Background transparency", kind: kAlpha},
	{key: ControlSize, name: StoreControlSize, flag: "control-size", title: "Control size", kind: kSize},
	{key: MirrorRight, name: StoreMirrorRight, flag: "mirror-right", title: "Mirror right", kind: kBool},
}

func lookup(k SettingKey) (keySpec, bool) {
	for _, s := range keyTable {
		if s.key == k {
			return s, true
		}
	}
	return keySpec{}, false
}

// Keys returns all known setting keys in display order.
func Keys() []SettingKey {
	keys := make([]SettingKey, len(keyTable))
	for i, s := range keyTable {
		keys[i] = s.key
	}
	return keys
}

// StoreName returns the settings store key for k.
func (k SettingKey) StoreName() string {
	s, _ := lookup(k)
	return s.name
}

// Title returns the English title of the control bound to k.
func (k SettingKey) Title() string {
	s, _ := lookup(k)
	return s.title
}

// IsColor reports whether k holds an ARGB color.
func (k SettingKey) IsColor() bool {
	s, ok := lookup(k)
	return ok && s.kind == kColor
}

// Resource returns the theme color name consulted while k is unset, or ""
// for keys that are not colors.
func (k SettingKey) Resource() string {
	s, _ := lookup(k)
	return s.resource
}

// Fallback returns the built-in color used when the theme has none.
func (k SettingKey) Fallback() ARGB {
	s, _ := lookup(k)
	return s.fallback
}

// String returns the CLI name of the key.
func (k SettingKey) String() string {
	if s, ok := lookup(k); ok {
		return s.flag
	}
	return "unknown"
}

// ParseKey resolves a CLI or store name to a SettingKey.
func ParseKey(name string) (SettingKey, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "_", "-")
	for _, s := range keyTable {
		if s.flag == name || s.name == name {
			return s.key, true
		}
	}
	return KeyUnknown, false
}
