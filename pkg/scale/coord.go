package scale

import (
	"math"

	"github.com/matzehuels/figment/pkg/errors"
)

// CoordMap maps data-space values onto surface-space offsets in [0, size].
// Offset zero is the low end of the displayed domain; callers flip the axis
// direction when converting to canvas coordinates.
type CoordMap interface {
	// Map converts a data value to a surface offset.
	Map(v float64) float64

	// Bounds returns the displayed domain after inset extension.
	Bounds() Domain

	// Size returns the surface extent in pixels.
	Size() float64
}

// Insets reserve surface pixels between the plot edge and the fitted domain,
// at the low and high end of an axis.
type Insets struct {
	Lo, Hi float64
}

// =============================================================================
// Linear
// =============================================================================

// Linear is a linear coordinate map.
type Linear struct {
	size float64
	d    Domain
}

// NewLinear builds a linear map over the given surface size. The domain is
// extended so that the fitted interval keeps insets.Lo and insets.Hi pixels
// of clearance.
func NewLinear(size float64, insets Insets, d Domain) *Linear {
	return &Linear{size: size, d: extendLinear(size, insets, d)}
}

func extendLinear(size float64, insets Insets, d Domain) Domain {
	inner := size - insets.Lo - insets.Hi
	if inner <= 0 {
		return d
	}
	plotToData := d.Span() / inner
	return Domain{
		Min: d.Min - insets.Lo*plotToData,
		Max: d.Max + insets.Hi*plotToData,
	}
}

// Map implements [CoordMap].
func (m *Linear) Map(v float64) float64 {
	return m.d.ToNormalized(v) * m.size
}

// Bounds implements [CoordMap].
func (m *Linear) Bounds() Domain { return m.d }

// Size implements [CoordMap].
func (m *Linear) Size() float64 { return m.size }

// =============================================================================
// Log
// =============================================================================

// Log is a logarithmic coordinate map.
type Log struct {
	base float64
	size float64
	d    Domain
}

// NewLog builds a logarithmic map. The domain must be strictly positive;
// otherwise an INVALID_DOMAIN error is returned. Insets extend the domain
// multiplicatively.
func NewLog(base, size float64, insets Insets, d Domain) (*Log, error) {
	if d.Min <= 0 || d.Max <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidDomain,
			"log scale requires a positive domain, got [%g, %g]", d.Min, d.Max)
	}
	if base <= 1 {
		return nil, errors.New(errors.ErrCodeInvalidDomain, "log base must be > 1, got %g", base)
	}
	return &Log{base: base, size: size, d: extendLog(base, size, insets, d)}, nil
}

func extendLog(base, size float64, insets Insets, d Domain) Domain {
	inner := size - insets.Lo - insets.Hi
	if inner <= 0 {
		return d
	}
	plotToData := d.LogSpan(base) / inner
	return Domain{
		Min: d.Min / math.Pow(base, insets.Lo*plotToData),
		Max: d.Max * math.Pow(base, insets.Hi*plotToData),
	}
}

// Map implements [CoordMap].
func (m *Log) Map(v float64) float64 {
	logb := func(x float64) float64 { return math.Log(x) / math.Log(m.base) }
	start, end := logb(m.d.Min), logb(m.d.Max)
	ratio := (logb(v) - start) / (end - start)
	return ratio * m.size
}

// Bounds implements [CoordMap].
func (m *Log) Bounds() Domain { return m.d }

// Size implements [CoordMap].
func (m *Log) Size() float64 { return m.size }

// Base returns the log base.
func (m *Log) Base() float64 { return m.base }

// =============================================================================
// Categorical
// =============================================================================

// Cat maps category labels onto equal-width bins.
type Cat struct {
	size       float64
	lo         float64
	binSize    float64
	categories []string
	index      map[string]int
}

// NewCat builds a categorical map: the surface inside the insets is divided
// into one equal bin per category.
func NewCat(size float64, insets Insets, categories []string) *Cat {
	inner := size - insets.Lo - insets.Hi
	if inner < 0 {
		inner = 0
	}
	bin := 0.0
	if len(categories) > 0 {
		bin = inner / float64(len(categories))
	}
	idx := make(map[string]int, len(categories))
	for i, c := range categories {
		if _, dup := idx[c]; !dup {
			idx[c] = i
		}
	}
	return &Cat{size: size, lo: insets.Lo, binSize: bin, categories: categories, index: idx}
}

// Center returns the surface offset of the category's bin center.
func (m *Cat) Center(label string) (float64, bool) {
	i, ok := m.index[label]
	if !ok {
		return 0, false
	}
	return m.CenterAt(i), true
}

// CenterAt returns the bin center for the i-th category.
func (m *Cat) CenterAt(i int) float64 {
	return m.lo + m.binSize*(float64(i)+0.5)
}

// BinSize returns the width of one category bin.
func (m *Cat) BinSize() float64 { return m.binSize }

// Categories returns the ordered category labels.
func (m *Cat) Categories() []string { return m.categories }

// Size returns the surface extent in pixels.
func (m *Cat) Size() float64 { return m.size }
