package theme

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Palette of the timer window.
var (
	Background = color.NRGBA{R: 0xf7, G: 0xf5, B: 0xdd, A: 0xff}
	ClockText  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Green      = color.NRGBA{R: 0x9b, G: 0xde, B: 0xac, A: 0xff}
)

// ParseHexColor parses #rgb or #rrggbb into an opaque color.
func ParseHexColor(value string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("parse color %q: expected 3 or 6 hex digits", value)
	}

	parsed, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse color %q: %w", value, err)
	}
	return color.NRGBA{
		R: uint8(parsed >> 16),
		G: uint8(parsed >> 8),
		B: uint8(parsed),
		A: 0xff,
	}, nil
}

// ColorOr parses value and falls back when it is not a valid hex color.
func ColorOr(value string, fallback color.NRGBA) color.NRGBA {
	parsed, err := ParseHexColor(value)
	if err != nil {
		return fallback
	}
	return parsed
}
