package color

import (
	"fmt"
	"strings"
)

// Color represents an 8-bit sRGB color.
type Color struct {
	R, G, B uint8
}

// Lab is a color in CIE L*a*b*. L is lightness, nominally [0, 100];
// A and B are the green–red and blue–yellow axes. No field is clamped.
type Lab struct {
	L, A, B float64
}

// ParseHex parses a hex color string like "#eb6f92" into a Color.
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q: must be 6 hex digits", s)
	}
	var r, g, b uint8
	_, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Color{R: r, G: g, B: b}, nil
}

// Hex returns the color as a hex string with leading #, e.g. "#eb6f92".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

func (x Lab) String() string {
	return fmt.Sprintf("Lab(%.4f, %.4f, %.4f)", x.L, x.A, x.B)
}
