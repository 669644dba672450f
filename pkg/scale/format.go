package scale

import (
	"fmt"
	"math"
)

// Formatter maps a tick position to its label string.
type Formatter interface {
	Format(v float64) string

	// AxisAnnotation returns a short suffix the axis title carries for this
	// formatter (e.g. "× π"), or "".
	AxisAnnotation() string
}

// Prec formats with a fixed number of decimals.
type Prec int

// Format implements [Formatter].
func (p Prec) Format(v float64) string { return fmt.Sprintf("%.*f", int(p), v) }

// AxisAnnotation implements [Formatter].
func (Prec) AxisAnnotation() string { return "" }

// Sci formats in scientific notation with two decimals.
type Sci struct{}

// Format implements [Formatter].
func (Sci) Format(v float64) string { return fmt.Sprintf("%.2e", v) }

// AxisAnnotation implements [Formatter].
func (Sci) AxisAnnotation() string { return "" }

// PiMultiple formats values as multiples of pi.
type PiMultiple struct {
	// Prec is the decimal count. The auto formatter uses 2.
	Prec int
}

// Format implements [Formatter].
func (p PiMultiple) Format(v float64) string {
	return fmt.Sprintf("%.*f", p.Prec, v/math.Pi)
}

// AxisAnnotation implements [Formatter].
func (PiMultiple) AxisAnnotation() string { return "× π" }

// Percent formats fractional values as percentages.
type Percent struct {
	Prec int
}

// Format implements [Formatter].
func (p Percent) Format(v float64) string {
	return fmt.Sprintf("%.*f%%", p.Prec, v*100)
}

// AxisAnnotation implements [Formatter].
func (Percent) AxisAnnotation() string { return "" }

// AutoFormatter picks a formatter from the domain magnitude: scientific
// notation outside [0.01, 10000), otherwise fixed precision coarsening as
// the magnitude grows.
func AutoFormatter(d Domain) Formatter {
	max := math.Max(math.Abs(d.Min), math.Abs(d.Max))
	switch {
	case max == 0:
		return Prec(2)
	case max >= 10000 || max < 0.01:
		return Sci{}
	case max >= 100:
		return Prec(0)
	case max >= 10:
		return Prec(1)
	default:
		return Prec(2)
	}
}

// AutoPercent returns a percent formatter with precision chosen from the
// domain span.
func AutoPercent(d Domain) Percent {
	span := d.Span()
	switch {
	case span >= 1:
		return Percent{Prec: 0}
	case span >= 0.1:
		return Percent{Prec: 1}
	case span >= 0.01:
		return Percent{Prec: 2}
	default:
		return Percent{Prec: 3}
	}
}
