package piestyle

import (
	"fmt"
	"strconv"
	"strings"
)

// ARGB is a packed 32-bit color: alpha, red, green, blue.
type ARGB uint32

// FromInt converts the signed store representation to ARGB.
func FromInt(v int) ARGB {
	return ARGB(uint32(int32(v)))
}

// Int returns the signed 32-bit store representation.
func (c ARGB) Int() int {
	return int(int32(uint32(c)))
}

// Hex formats c as #aarrggbb.
func (c ARGB) Hex() string {
	return fmt.Sprintf("#%08x", uint32(c)&0xffffffff)
}

// RGBHex formats c as #rrggbb, dropping alpha.
func (c ARGB) RGBHex() string {
	return fmt.Sprintf("#%06x", uint32(c)&0x00ffffff)
}

func (c ARGB) Alpha() uint8 { return uint8(c >> 24) }
func (c ARGB) Red() uint8   { return uint8(c >> 16) }
func (c ARGB) Green() uint8 { return uint8(c >> 8) }
func (c ARGB) Blue() uint8  { return uint8(c) }

func (c ARGB) String() string { return c.Hex() }

// ParseHex parses #aarrggbb or #rrggbb (alpha ff). The leading # is optional.
func ParseHex(s string) (ARGB, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(raw) {
	case 6:
		raw = "ff" + raw
	case 8:
	default:
		return 0, fmt.Errorf("invalid color %q (expected #aarrggbb or #rrggbb)", s)
	}
	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return ARGB(v), nil
}
