// Package style defines the concrete style value types shared by the design
// model, the theme resolver, and the primitive stream: colors, strokes,
// fills, and fonts.
package style

import (
	"fmt"
	"strings"

	"github.com/matzehuels/figment/pkg/errors"
)

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 255} }

// FromHex parses hex notation, panicking on malformed input. Use it for
// literal palette constants; parse user input with ParseColor.
func FromHex(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAlpha returns a copy of the color with the given alpha.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Hex returns the color as "#rrggbb" or "#rrggbbaa" when not opaque.
func (c Color) Hex() string {
	if c.A != 255 {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// MarshalText implements encoding.TextMarshaler for JSON/TOML output.
func (c Color) MarshalText() ([]byte, error) { return []byte(c.Hex()), nil }

// UnmarshalText implements encoding.TextUnmarshaler for JSON/TOML input.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColor parses "#rgb", "#rrggbb", or "#rrggbbaa" hex notation.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return Color{}, errors.New(errors.ErrCodeInvalidFormat, "color %q must start with '#'", s)
	}
	hex := s[1:]
	parse := func(h string) (uint8, error) {
		var v uint8
		if _, err := fmt.Sscanf(h, "%02x", &v); err != nil {
			return 0, errors.New(errors.ErrCodeInvalidFormat, "invalid hex color %q", s)
		}
		return v, nil
	}
	switch len(hex) {
	case 3:
		expand := func(b byte) string { return string([]byte{b, b}) }
		hex = expand(hex[0]) + expand(hex[1]) + expand(hex[2])
		fallthrough
	case 6:
		hex += "ff"
		fallthrough
	case 8:
		r, err := parse(hex[0:2])
		if err != nil {
			return Color{}, err
		}
		g, err := parse(hex[2:4])
		if err != nil {
			return Color{}, err
		}
		b, err := parse(hex[4:6])
		if err != nil {
			return Color{}, err
		}
		a, err := parse(hex[6:8])
		if err != nil {
			return Color{}, err
		}
		return Color{R: r, G: g, B: b, A: a}, nil
	default:
		return Color{}, errors.New(errors.ErrCodeInvalidFormat, "invalid hex color length %q", s)
	}
}

// Stroke describes how outlines are drawn.
type Stroke struct {
	Color Color     `json:"color" toml:"color"`
	Width float64   `json:"width" toml:"width"`
	Dash  []float64 `json:"dash,omitempty" toml:"dash,omitempty"`
}

// Fill describes how shapes are filled.
type Fill struct {
	Color Color `json:"color" toml:"color"`
}

// FontWeight selects a typeface weight.
type FontWeight string

// Font weights.
const (
	WeightNormal FontWeight = "normal"
	WeightBold   FontWeight = "bold"
)

// Font describes typography for a text run.
type Font struct {
	Family string     `json:"family" toml:"family"`
	Size   float64    `json:"size" toml:"size"`
	Weight FontWeight `json:"weight,omitempty" toml:"weight,omitempty"`
	Italic bool       `json:"italic,omitempty" toml:"italic,omitempty"`
}

// WithSize returns a copy of the font with the given size.
func (f Font) WithSize(size float64) Font {
	f.Size = size
	return f
}
