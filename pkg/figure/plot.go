package figure

import (
	"github.com/matzehuels/figment/pkg/errors"
)

// Plot is one cell of the figure grid: a set of series drawn into a shared
// plot area, with its own axes, optional legend, and annotations.
type Plot struct {
	// Title is drawn in a band above the plot area. Empty means no band.
	Title string `json:"title,omitempty" toml:"title,omitempty"`

	// Series are drawn in declaration order; later series draw on top.
	Series []Series `json:"series" toml:"series"`

	// XAxes and YAxes list the plot's axes. Empty means one auto-scaled axis.
	// Series reference axes by index; the first axis on each side sits
	// closest to the plot area.
	XAxes []*Axis `json:"x_axes,omitempty" toml:"x_axes,omitempty"`
	YAxes []*Axis `json:"y_axes,omitempty" toml:"y_axes,omitempty"`

	// Legend enables the plot legend. Nil means none.
	Legend *Legend `json:"legend,omitempty" toml:"legend,omitempty"`

	// Annotations are positioned in data space and re-projected through the
	// owning axes at layout time.
	Annotations []Annotation `json:"annotations,omitempty" toml:"annotations,omitempty"`

	// Insets override the plot-area insets in pixels. Nil resolves to
	// DefaultInset on every side. Explicit range overrides zero the insets
	// on the fixed side.
	Insets *Insets `json:"insets,omitempty" toml:"insets,omitempty"`
}

// Insets is reserved space between the plot-area edge and the fitted data
// range, expressed in pixels and converted to data-space extension.
type Insets struct {
	Left   float64 `json:"left" toml:"left"`
	Right  float64 `json:"right" toml:"right"`
	Top    float64 `json:"top" toml:"top"`
	Bottom float64 `json:"bottom" toml:"bottom"`
}

// UniformInsets returns insets with the same value on every side.
func UniformInsets(v float64) *Insets {
	return &Insets{Left: v, Right: v, Top: v, Bottom: v}
}

// XAxis returns the i-th X axis, or a default auto axis when none declared.
func (p *Plot) XAxis(i int) *Axis {
	if i < len(p.XAxes) {
		return p.XAxes[i]
	}
	return &Axis{}
}

// YAxis returns the i-th Y axis, or a default auto axis when none declared.
func (p *Plot) YAxis(i int) *Axis {
	if i < len(p.YAxes) {
		return p.YAxes[i]
	}
	return &Axis{}
}

// XAxisCount returns the number of X axes, at least one.
func (p *Plot) XAxisCount() int { return max(1, len(p.XAxes)) }

// YAxisCount returns the number of Y axes, at least one.
func (p *Plot) YAxisCount() int { return max(1, len(p.YAxes)) }

func (p *Plot) validate(row, col int) error {
	for si, s := range p.Series {
		if err := validateSeries(s, row, col, si, p); err != nil {
			return err
		}
	}
	for ai, ax := range p.XAxes {
		if ax == nil {
			return errors.New(errors.ErrCodeInconsistentDesign, "plot (%d,%d) x-axis %d is nil", row, col, ai)
		}
		if err := ax.validate(); err != nil {
			return err
		}
	}
	for ai, ax := range p.YAxes {
		if ax == nil {
			return errors.New(errors.ErrCodeInconsistentDesign, "plot (%d,%d) y-axis %d is nil", row, col, ai)
		}
		if err := ax.validate(); err != nil {
			return err
		}
	}
	for ani, an := range p.Annotations {
		if an == nil {
			return errors.New(errors.ErrCodeInconsistentDesign, "plot (%d,%d) annotation %d is nil", row, col, ani)
		}
	}
	return nil
}

// =============================================================================
// Legend
// =============================================================================

// LegendPos places a legend relative to its plot (or figure).
type LegendPos string

// Legend positions. Out* positions reserve a band outside the plot area;
// In* positions float over it.
const (
	LegendOutTop        LegendPos = "out-top"
	LegendOutRight      LegendPos = "out-right"
	LegendOutBottom     LegendPos = "out-bottom"
	LegendOutLeft       LegendPos = "out-left"
	LegendInTop         LegendPos = "in-top"
	LegendInTopRight    LegendPos = "in-top-right"
	LegendInRight       LegendPos = "in-right"
	LegendInBottomRight LegendPos = "in-bottom-right"
	LegendInBottom      LegendPos = "in-bottom"
	LegendInBottomLeft  LegendPos = "in-bottom-left"
	LegendInLeft        LegendPos = "in-left"
	LegendInTopLeft     LegendPos = "in-top-left"
)

// Legend configures a legend. Entries are collected from visible series
// labels at draw time.
type Legend struct {
	// Pos places the legend. Empty resolves to out-bottom for plot legends
	// and out-top for the figure legend.
	Pos LegendPos `json:"pos,omitempty" toml:"pos,omitempty"`
}

// ResolvedPos returns the position with the plot default applied.
func (l *Legend) ResolvedPos() LegendPos {
	if l == nil {
		return ""
	}
	if l.Pos == "" {
		return LegendOutBottom
	}
	return l.Pos
}

// Outside reports whether the position reserves a band outside the plot area.
func (pos LegendPos) Outside() bool {
	switch pos {
	case LegendOutTop, LegendOutRight, LegendOutBottom, LegendOutLeft:
		return true
	}
	return false
}
