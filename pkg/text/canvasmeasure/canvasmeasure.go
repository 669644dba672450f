// Package canvasmeasure measures text with real glyph metrics.
//
// It loads the embedded sans fonts into a tdewolff/canvas font family and
// answers [text.Measurer] queries through shaped face widths. Use it when
// layout fidelity matters more than the extra dependency; the fixed-ratio
// estimator in the parent package stays the default.
package canvasmeasure

import (
	"image/color"
	"sync"

	"github.com/tdewolff/canvas"

	"github.com/matzehuels/figment/pkg/errors"
	"github.com/matzehuels/figment/pkg/fonts"
	"github.com/matzehuels/figment/pkg/style"
	"github.com/matzehuels/figment/pkg/text"
)

const lineHeightRatio = 1.2

// Measurer measures text through loaded font faces. Safe for concurrent use.
type Measurer struct {
	family *canvas.FontFamily

	mu    sync.Mutex
	faces map[faceKey]*canvas.FontFace
}

type faceKey struct {
	size   float64
	weight style.FontWeight
	italic bool
}

// New loads the embedded fonts and returns a ready measurer.
func New() (*Measurer, error) {
	family := canvas.NewFontFamily(fonts.FontFamily)
	if err := family.LoadFont(fonts.SansTTF(), 0, canvas.FontRegular); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "load embedded font")
	}
	if err := family.LoadFont(fonts.SansBoldTTF(), 0, canvas.FontBold); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "load embedded bold font")
	}
	return &Measurer{
		family: family,
		faces:  make(map[faceKey]*canvas.FontFace),
	}, nil
}

// Measure implements [text.Measurer].
func (m *Measurer) Measure(s string, font style.Font) text.Size {
	face := m.face(font)
	return text.Size{
		W: face.TextWidth(s),
		H: font.Size * lineHeightRatio,
	}
}

func (m *Measurer) face(font style.Font) *canvas.FontFace {
	key := faceKey{size: font.Size, weight: font.Weight, italic: font.Italic}

	m.mu.Lock()
	defer m.mu.Unlock()
	if face, ok := m.faces[key]; ok {
		return face
	}

	fs := canvas.FontRegular
	if font.Weight == style.WeightBold {
		fs = canvas.FontBold
	}
	if font.Italic {
		fs |= canvas.FontItalic
	}
	face := m.family.Face(font.Size, color.Black, fs, canvas.FontNormal)
	m.faces[key] = face
	return face
}
