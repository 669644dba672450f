// Package text defines the text-measurement boundary of the layout engine.
//
// Layout needs the extent of every title, tick label, and legend entry
// before it can allocate bands, but font shaping is a heavy dependency the
// core should not force on every caller. The [Measurer] capability keeps the
// two apart: the layout engine asks for sizes, implementations decide how
// accurately to answer.
//
// [Ratio] is the built-in estimator: width from a per-character ratio of the
// font size, no font data needed. It is deterministic and dependency-free,
// which keeps layout reproducible in tests. The canvasmeasure subpackage
// provides glyph-accurate measurement from an embedded font.
package text

import "github.com/matzehuels/figment/pkg/style"

// Size is a measured text extent in pixels.
type Size struct {
	W, H float64
}

// Measurer measures the rendered extent of a single-line string. Results for
// the same input must be stable within one layout pass.
type Measurer interface {
	Measure(s string, font style.Font) Size
}

// Estimation ratios relative to the font size.
const (
	charWidthRatio  = 0.55
	boldWidthRatio  = 0.60
	lineHeightRatio = 1.2
)

// Ratio estimates text extents from character counts. The zero value is
// ready to use.
type Ratio struct{}

// Measure implements [Measurer].
func (Ratio) Measure(s string, font style.Font) Size {
	ratio := charWidthRatio
	if font.Weight == style.WeightBold {
		ratio = boldWidthRatio
	}
	n := 0
	for range s {
		n++
	}
	return Size{
		W: float64(n) * font.Size * ratio,
		H: font.Size * lineHeightRatio,
	}
}
