package cmd

import "testing"

func TestSplitKeyValue(t *testing.T) {
	tests := []struct {
		in      string
		key     string
		value   string
		wantErr bool
	}{
		{in: "snap-color=#ff33b5e5", key: "snap-color", value: "#ff33b5e5"},
		{in: " mirror-right = off ", key: "mirror-right", value: "off"},
		{in: "a=b=c", key: "a", value: "b=c"},
		{in: "no-equals", wantErr: true},
		{in: "=1", wantErr: true},
		{in: "background-alpha=", wantErr: true},
	}
	for _, tt := range tests {
		key, value, err := splitKeyValue(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("splitKeyValue(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("splitKeyValue(%q): %v", tt.in, err)
			continue
		}
		if key != tt.key || value != tt.value {
			t.Errorf("splitKeyValue(%q) = %q, %q, want %q, %q", tt.in, key, value, tt.key, tt.value)
		}
	}
}

func TestParseKeyValuePairs(t *testing.T) {
	got, err := parseKeyValuePairs([]string{"b=2", "", "  ", "a=1", "b=3"})
	if err != nil {
		t.Fatalf("parseKeyValuePairs: %v", err)
	}
	if len(got) != 2 || got["a"] != "1" || got["b"] != "3" {
		t.Errorf("parseKeyValuePairs = %v", got)
	}
	if s := formatKeyValuePairs(got); s != "a=1, b=3" {
		t.Errorf("formatKeyValuePairs = %q, want %q", s, "a=1, b=3")
	}
	if s := formatKeyValuePairs(nil); s != "" {
		t.Errorf("formatKeyValuePairs(nil) = %q", s)
	}
}
