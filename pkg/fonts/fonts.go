// Package fonts provides the embedded fonts used for text measurement.
//
// The fonts are embedded directly into the binary using go:embed, so
// glyph-accurate measurement works without any font installation on the
// host.
package fonts

import (
	_ "embed"
)

// DejaVu Sans from https://dejavu-fonts.github.io (Bitstream Vera license).

//go:embed DejaVuSans.ttf
var sansTTF []byte

//go:embed DejaVuSans-Bold.ttf
var sansBoldTTF []byte

// SansTTF returns the regular sans font data.
func SansTTF() []byte {
	return sansTTF
}

// SansBoldTTF returns the bold sans font data.
func SansBoldTTF() []byte {
	return sansBoldTTF
}

// FontFamily is the family name of the embedded font.
const FontFamily = "DejaVu Sans"

// FallbackFontFamily lists CSS fallbacks for surfaces that render text by
// family name instead of embedded glyphs.
const FallbackFontFamily = `'DejaVu Sans', 'Helvetica Neue', Arial, sans-serif`
