package figure

import (
	"github.com/matzehuels/figment/pkg/errors"
	"github.com/matzehuels/figment/pkg/style"
)

// Series is the closed union of plottable series kinds: [Line], [Scatter],
// [Bars], and [Histogram]. The drawing translator switches exhaustively over
// these variants.
type Series interface {
	isSeries()

	// Label returns the legend label. Empty labels are skipped by legends.
	Label() string
}

// Interp selects how line vertices are connected.
type Interp string

// Interpolation modes.
const (
	// InterpLinear draws straight segments between consecutive points.
	InterpLinear Interp = "linear"

	// InterpStep holds the previous y until the next x (staircase).
	InterpStep Interp = "step"
)

// Marker describes a scatter point shape.
type Marker struct {
	// Shape picks the marker outline. Empty resolves to circle.
	Shape MarkerShape `json:"shape,omitempty" toml:"shape,omitempty"`

	// Size is the marker extent in pixels. Zero resolves to the theme size.
	Size float64 `json:"size,omitempty" toml:"size,omitempty"`

	Fill   *style.Fill   `json:"fill,omitempty" toml:"fill,omitempty"`
	Stroke *style.Stroke `json:"stroke,omitempty" toml:"stroke,omitempty"`
}

// MarkerShape enumerates marker outlines.
type MarkerShape string

// Marker shapes.
const (
	MarkerCircle   MarkerShape = "circle"
	MarkerSquare   MarkerShape = "square"
	MarkerDiamond  MarkerShape = "diamond"
	MarkerTriangle MarkerShape = "triangle"
	MarkerCross    MarkerShape = "cross"
	MarkerPlus     MarkerShape = "plus"
)

// =============================================================================
// Line
// =============================================================================

// Line is a polyline through (X, Y) pairs. Null (NaN) values split the line
// into separate runs rather than interpolating across the gap.
type Line struct {
	// Name is the legend label.
	Name string `json:"name,omitempty" toml:"name,omitempty"`

	// X and Y are symbolic column references, resolved at bind time.
	X string `json:"x" toml:"x"`
	Y string `json:"y" toml:"y"`

	// XAxis and YAxis index into the plot's axis lists. Zero is the first
	// (innermost) axis.
	XAxis int `json:"x_axis,omitempty" toml:"x_axis,omitempty"`
	YAxis int `json:"y_axis,omitempty" toml:"y_axis,omitempty"`

	// Interp selects vertex interpolation. Empty resolves to linear.
	Interp Interp `json:"interp,omitempty" toml:"interp,omitempty"`

	// Stroke overrides the themed series stroke.
	Stroke *style.Stroke `json:"stroke,omitempty" toml:"stroke,omitempty"`
}

func (*Line) isSeries() {}

// Label implements [Series].
func (l *Line) Label() string { return l.Name }

// =============================================================================
// Scatter
// =============================================================================

// Scatter draws one marker per (X, Y) pair. Null pairs are skipped.
type Scatter struct {
	Name string `json:"name,omitempty" toml:"name,omitempty"`

	X string `json:"x" toml:"x"`
	Y string `json:"y" toml:"y"`

	XAxis int `json:"x_axis,omitempty" toml:"x_axis,omitempty"`
	YAxis int `json:"y_axis,omitempty" toml:"y_axis,omitempty"`

	// Marker overrides the themed marker.
	Marker *Marker `json:"marker,omitempty" toml:"marker,omitempty"`
}

func (*Scatter) isSeries() {}

// Label implements [Series].
func (s *Scatter) Label() string { return s.Name }

// =============================================================================
// Bars
// =============================================================================

// DefaultBarGap is the default fraction of each category bin left empty
// around its bars.
const DefaultBarGap = 0.2

// Bars draws one rectangle per category per value column. Multiple value
// columns produce grouped bars sharing each category bin.
type Bars struct {
	Name string `json:"name,omitempty" toml:"name,omitempty"`

	// Cats references the categorical column providing bin labels.
	Cats string `json:"cats" toml:"cats"`

	// Vals references one numeric column per bar group. All referenced
	// columns must match the category column length.
	Vals []string `json:"vals" toml:"vals"`

	// GroupNames optionally labels each value column for the legend.
	// When set, its length must match Vals.
	GroupNames []string `json:"group_names,omitempty" toml:"group_names,omitempty"`

	// Gap is the fraction of each category bin left empty, split evenly on
	// both sides of the bar group. Zero resolves to DefaultBarGap; negative
	// is invalid.
	Gap float64 `json:"gap,omitempty" toml:"gap,omitempty"`

	// YAxis indexes the value axis. Bars always occupy the first X axis,
	// which becomes categorical.
	YAxis int `json:"y_axis,omitempty" toml:"y_axis,omitempty"`

	Fill   *style.Fill   `json:"fill,omitempty" toml:"fill,omitempty"`
	Stroke *style.Stroke `json:"stroke,omitempty" toml:"stroke,omitempty"`
}

func (*Bars) isSeries() {}

// Label implements [Series].
func (b *Bars) Label() string { return b.Name }

// ResolvedGap returns the gap fraction with the default applied.
func (b *Bars) ResolvedGap() float64 {
	if b.Gap == 0 {
		return DefaultBarGap
	}
	return b.Gap
}

// =============================================================================
// Histogram
// =============================================================================

// DefaultHistBins is the default histogram bin count.
const DefaultHistBins = 10

// Histogram bins a numeric column and draws the counts (or the density) as a
// step outline.
type Histogram struct {
	Name string `json:"name,omitempty" toml:"name,omitempty"`

	// Data references the numeric column to bin.
	Data string `json:"data" toml:"data"`

	// Bins is the bin count. Zero resolves to DefaultHistBins.
	Bins int `json:"bins,omitempty" toml:"bins,omitempty"`

	// Density normalizes bin values so the total area is one.
	Density bool `json:"density,omitempty" toml:"density,omitempty"`

	XAxis int `json:"x_axis,omitempty" toml:"x_axis,omitempty"`
	YAxis int `json:"y_axis,omitempty" toml:"y_axis,omitempty"`

	Fill   *style.Fill   `json:"fill,omitempty" toml:"fill,omitempty"`
	Stroke *style.Stroke `json:"stroke,omitempty" toml:"stroke,omitempty"`
}

func (*Histogram) isSeries() {}

// Label implements [Series].
func (h *Histogram) Label() string { return h.Name }

// ResolvedBins returns the bin count with the default applied.
func (h *Histogram) ResolvedBins() int {
	if h.Bins == 0 {
		return DefaultHistBins
	}
	return h.Bins
}

// =============================================================================
// Validation
// =============================================================================

func validateSeries(s Series, row, col, idx int, p *Plot) error {
	where := func(what string) *errors.Error {
		return errors.New(errors.ErrCodeInconsistentDesign, "plot (%d,%d) series %d: %s", row, col, idx, what)
	}

	checkAxis := func(xAxis, yAxis int) error {
		if xAxis < 0 || xAxis >= p.XAxisCount() {
			return where("x-axis index out of range")
		}
		if yAxis < 0 || yAxis >= p.YAxisCount() {
			return where("y-axis index out of range")
		}
		return nil
	}

	switch v := s.(type) {
	case *Line:
		if v.X == "" || v.Y == "" {
			return where("line requires x and y column references")
		}
		switch v.Interp {
		case "", InterpLinear, InterpStep:
		default:
			return where("unknown interpolation mode")
		}
		return checkAxis(v.XAxis, v.YAxis)
	case *Scatter:
		if v.X == "" || v.Y == "" {
			return where("scatter requires x and y column references")
		}
		return checkAxis(v.XAxis, v.YAxis)
	case *Bars:
		if v.Cats == "" {
			return where("bars require a category column reference")
		}
		if len(v.Vals) == 0 {
			return where("bars require at least one value column reference")
		}
		if len(v.GroupNames) > 0 && len(v.GroupNames) != len(v.Vals) {
			return where("group names must match value columns")
		}
		if v.Gap < 0 || v.Gap >= 1 {
			return where("bar gap fraction must be in [0, 1)")
		}
		return checkAxis(0, v.YAxis)
	case *Histogram:
		if v.Data == "" {
			return where("histogram requires a data column reference")
		}
		if v.Bins < 0 {
			return where("histogram bins must be non-negative")
		}
		return checkAxis(v.XAxis, v.YAxis)
	case nil:
		return where("series is nil")
	default:
		return where("unknown series kind")
	}
}
