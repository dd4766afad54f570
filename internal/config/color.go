package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGBA color written as "#rrggbb" or "#rrggbbaa"
type Color [4]uint8

// RGBA returns the channels
func (c Color) RGBA() (r, g, b, a uint8) {
	return c[0], c[1], c[2], c[3]
}

// MarshalText implements encoding.TextMarshaler
func (c Color) MarshalText() ([]byte, error) {
	if c[3] == 255 {
		return []byte(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])), nil
	}
	return []byte(fmt.Sprintf("#%02x%02x%02x%02x", c[0], c[1], c[2], c[3])), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Color) UnmarshalText(text []byte) error {
	hex := strings.TrimPrefix(string(text), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return fmt.Errorf("invalid color %q: expected #rrggbb or #rrggbbaa", text)
	}
	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return fmt.Errorf("invalid color %q: %w", text, err)
	}
	if len(hex) == 6 {
		value = value<<8 | 0xff
	}
	*c = Color{uint8(value >> 24), uint8(value >> 16), uint8(value >> 8), uint8(value)}
	return nil
}
