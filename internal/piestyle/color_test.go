package piestyle

import "testing"

func TestARGBHex(t *testing.T) {
	tests := []struct {
		in   ARGB
		want string
	}{
		{0xff000000, "#ff000000"},
		{0x00000000, "#00000000"},
		{0x0a0b0c0d, "#0a0b0c0d"},
		{FromInt(-1), "#ffffffff"},
	}
	for _, tt := range tests {
		if got := tt.in.Hex(); got != tt.want {
			t.Errorf("ARGB(%d).Hex() = %q, want %q", uint32(tt.in), got, tt.want)
		}
	}
}

func TestARGBIntRoundTrip(t *testing.T) {
	for _, c := range []ARGB{0, 0xff000000, 0x7fffffff, 0x80000000, 0xfffffffe} {
		if got := FromInt(c.Int()); got != c {
			t.Errorf("FromInt(%s.Int()) = %s", c, got)
		}
	}
	if got := ARGB(0xff000000).Int(); got != -16777216 {
		t.Errorf("Int() = %d, want -16777216", got)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    ARGB
		wantErr bool
	}{
		{in: "#ff336699", want: 0xff336699},
		{in: "80FFFFFF", want: 0x80ffffff},
		{in: "#336699", want: 0xff336699},
		{in: " #000000 ", want: 0xff000000},
		{in: "#12345", wantErr: true},
		{in: "#gg336699", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseHex(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHex(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in   string
		want SettingKey
	}{
		{"background-color", BackgroundColor},
		{"snap_color", SnapColor},
		{"TEXT-COLOR", TextColor},
		{"background-alpha", BackgroundAlpha},
		{"control-size", ControlSize},
		{"control-size-factor", ControlSize},
		{"mirror-right", MirrorRight},
	}
	for _, tt := range tests {
		got, ok := ParseKey(tt.in)
		if !ok || got != tt.want {
			t.Errorf("ParseKey(%q) = %v, %v; want %v", tt.in, got, ok, tt.want)
		}
	}
	if _, ok := ParseKey("size"); ok {
		t.Error("ParseKey(size) should fail")
	}
}
