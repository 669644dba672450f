package figure

import (
	"github.com/matzehuels/figment/pkg/errors"
	"github.com/matzehuels/figment/pkg/style"
)

// Side places an axis on its main side (bottom for X, left for Y) or the
// opposite side (top for X, right for Y).
type Side string

// Axis sides.
const (
	SideMain     Side = "main"
	SideOpposite Side = "opposite"
)

// Axis describes one plot axis: its scale, tick generation, grid, and title.
// An axis belongs exclusively to the plot that declares it; its domain is
// derived from the union of the data bounds of all series bound to it.
type Axis struct {
	// Title is drawn in a band outside the tick labels. Empty means no band.
	Title string `json:"title,omitempty" toml:"title,omitempty"`

	// Scale selects the data-to-surface mapping. The zero value is auto
	// (linear, fitted domain).
	Scale ScaleSpec `json:"scale,omitempty" toml:"scale,omitempty"`

	// Ticks configures tick generation. Nil resolves to the auto locator
	// with the auto formatter.
	Ticks *Ticks `json:"ticks,omitempty" toml:"ticks,omitempty"`

	// Grid draws grid lines at major tick positions.
	Grid *GridSpec `json:"grid,omitempty" toml:"grid,omitempty"`

	// MinorTicks draws minor tick marks between major ticks.
	MinorTicks bool `json:"minor_ticks,omitempty" toml:"minor_ticks,omitempty"`

	// MinorGrid draws grid lines at minor tick positions. Implies minor
	// tick computation even when MinorTicks is false.
	MinorGrid *GridSpec `json:"minor_grid,omitempty" toml:"minor_grid,omitempty"`

	// Side picks the axis side. Empty resolves to main.
	Side Side `json:"side,omitempty" toml:"side,omitempty"`
}

// ResolvedSide returns the side with the default applied.
func (a *Axis) ResolvedSide() Side {
	if a.Side == "" {
		return SideMain
	}
	return a.Side
}

func (a *Axis) validate() error {
	if err := a.Scale.validate(); err != nil {
		return err
	}
	switch a.Side {
	case "", SideMain, SideOpposite:
	default:
		return errors.New(errors.ErrCodeInconsistentDesign, "axis side %q must be %q or %q", a.Side, SideMain, SideOpposite)
	}
	if a.Ticks != nil {
		if err := a.Ticks.validate(); err != nil {
			return err
		}
	}
	return nil
}

// GridSpec turns grid lines on, with an optional stroke override.
type GridSpec struct {
	Stroke *style.Stroke `json:"stroke,omitempty" toml:"stroke,omitempty"`
}

// =============================================================================
// Scale
// =============================================================================

// ScaleKind enumerates the supported axis scales.
type ScaleKind string

// Scale kinds. The zero value ("") behaves like ScaleLinear with an auto
// range.
const (
	ScaleLinear ScaleKind = "linear"
	ScaleLog    ScaleKind = "log"
)

// ScaleSpec selects an axis scale and an optional explicit range.
type ScaleSpec struct {
	Kind ScaleKind `json:"kind,omitempty" toml:"kind,omitempty"`

	// Base is the log base. Zero resolves to 10. Ignored for linear scales.
	Base float64 `json:"base,omitempty" toml:"base,omitempty"`

	// Range optionally fixes one or both domain ends. A fixed end zeroes the
	// plot inset on that side so the limit is exact.
	Range Range `json:"range,omitempty" toml:"range,omitempty"`
}

// ResolvedBase returns the log base with the default applied.
func (s ScaleSpec) ResolvedBase() float64 {
	if s.Base == 0 {
		return 10
	}
	return s.Base
}

func (s ScaleSpec) validate() error {
	switch s.Kind {
	case "", ScaleLinear, ScaleLog:
	default:
		return errors.New(errors.ErrCodeInconsistentDesign, "unknown scale kind %q", s.Kind)
	}
	if s.Kind == ScaleLog && s.Base < 0 {
		return errors.New(errors.ErrCodeInconsistentDesign, "log base must be positive, got %g", s.Base)
	}
	if s.Range.Min != nil && s.Range.Max != nil && *s.Range.Min >= *s.Range.Max {
		return errors.New(errors.ErrCodeInconsistentDesign, "scale range [%g, %g] must be increasing", *s.Range.Min, *s.Range.Max)
	}
	return nil
}

// Range optionally overrides the fitted domain. Nil ends stay auto.
type Range struct {
	Min *float64 `json:"min,omitempty" toml:"min,omitempty"`
	Max *float64 `json:"max,omitempty" toml:"max,omitempty"`
}

// FixedRange returns a range with both ends fixed.
func FixedRange(min, max float64) Range {
	return Range{Min: &min, Max: &max}
}

// =============================================================================
// Ticks
// =============================================================================

// LocatorKind enumerates tick locators.
type LocatorKind string

// Tick locators.
const (
	// LocAuto picks round-numbered positions sized to the domain.
	LocAuto LocatorKind = "auto"

	// LocMaxN subdivides the domain into at most Bins nice steps
	// (1, 2, 2.5, 5 times a power of ten).
	LocMaxN LocatorKind = "max-n"

	// LocFixedStep places ticks every Step data units.
	LocFixedStep LocatorKind = "fixed-step"

	// LocPiMultiple places ticks at multiples and clean fractions of pi.
	LocPiMultiple LocatorKind = "pi-multiple"

	// LocLog places ticks at integer powers of the scale base.
	LocLog LocatorKind = "log"
)

// FormatterKind enumerates tick label formatters.
type FormatterKind string

// Tick formatters.
const (
	// FmtAuto picks precision (or scientific notation) from the domain
	// magnitude.
	FmtAuto FormatterKind = "auto"

	// FmtPrec formats with a fixed number of decimals.
	FmtPrec FormatterKind = "prec"

	// FmtPercent formats values as percentages.
	FmtPercent FormatterKind = "percent"

	// FmtScientific always uses scientific notation.
	FmtScientific FormatterKind = "scientific"

	// FmtPiMultiple formats values as multiples of pi; the axis gains a
	// "× π" annotation.
	FmtPiMultiple FormatterKind = "pi-multiple"
)

// Ticks configures tick generation for an axis: a locator producing ordered
// positions inside the domain, and a formatter mapping each position to a
// label.
type Ticks struct {
	Locator   LocatorKind   `json:"locator,omitempty" toml:"locator,omitempty"`
	Formatter FormatterKind `json:"formatter,omitempty" toml:"formatter,omitempty"`

	// Step is the fixed-step locator's spacing in data units.
	Step float64 `json:"step,omitempty" toml:"step,omitempty"`

	// Bins caps the max-n locator's major tick count. Zero resolves to 10.
	Bins int `json:"bins,omitempty" toml:"bins,omitempty"`

	// Prec is the fixed-precision formatter's decimal count.
	Prec int `json:"prec,omitempty" toml:"prec,omitempty"`
}

func (t *Ticks) validate() error {
	switch t.Locator {
	case "", LocAuto, LocMaxN, LocFixedStep, LocPiMultiple, LocLog:
	default:
		return errors.New(errors.ErrCodeInconsistentDesign, "unknown tick locator %q", t.Locator)
	}
	switch t.Formatter {
	case "", FmtAuto, FmtPrec, FmtPercent, FmtScientific, FmtPiMultiple:
	default:
		return errors.New(errors.ErrCodeInconsistentDesign, "unknown tick formatter %q", t.Formatter)
	}
	if t.Locator == LocFixedStep && t.Step <= 0 {
		return errors.New(errors.ErrCodeInconsistentDesign, "fixed-step locator requires a positive step, got %g", t.Step)
	}
	if t.Bins < 0 {
		return errors.New(errors.ErrCodeInconsistentDesign, "tick bins must be non-negative, got %d", t.Bins)
	}
	if t.Prec < 0 {
		return errors.New(errors.ErrCodeInconsistentDesign, "tick precision must be non-negative, got %d", t.Prec)
	}
	return nil
}
