package figure

import (
	"github.com/matzehuels/figment/pkg/errors"
)

// Default figure geometry. These constants are the single source of truth
// for figure-level sizing; zero-valued fields resolve to them.
const (
	// DefaultWidth is the default figure width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default figure height in pixels.
	DefaultHeight = 600.0

	// DefaultPadding is the default padding around figure content in pixels.
	DefaultPadding = 20.0

	// DefaultInset is the default plot-area inset in pixels. Insets keep data
	// points off the axis edges by extending the fitted domain.
	DefaultInset = 20.0
)

// Figure is the root of a figure design. It owns a title, a theme reference,
// and a grid of plots. A Figure is immutable during a render pass.
type Figure struct {
	// Title is drawn in a band at the top of the figure. Empty means no band.
	Title string `json:"title,omitempty" toml:"title,omitempty"`

	// Theme names the theme to resolve styles against. Empty selects the
	// default ("light").
	Theme string `json:"theme,omitempty" toml:"theme,omitempty"`

	// Width and Height are the canvas size in pixels. Zero resolves to
	// DefaultWidth / DefaultHeight.
	Width  float64 `json:"width,omitempty" toml:"width,omitempty"`
	Height float64 `json:"height,omitempty" toml:"height,omitempty"`

	// Padding is the space between the canvas edge and figure content.
	// Negative is invalid; zero resolves to DefaultPadding.
	Padding float64 `json:"padding,omitempty" toml:"padding,omitempty"`

	// Plots is the subplot grid, row-major. Most figures have a single row
	// with a single plot. Cells must be non-nil.
	Plots [][]*Plot `json:"plots" toml:"plots"`

	// Legend optionally draws one shared legend for all plots, at the top or
	// right of the figure. Nil means per-plot legends only.
	Legend *Legend `json:"legend,omitempty" toml:"legend,omitempty"`
}

// SetDefaults fills zero-valued geometry with the package defaults.
func (f *Figure) SetDefaults() {
	if f.Width == 0 {
		f.Width = DefaultWidth
	}
	if f.Height == 0 {
		f.Height = DefaultHeight
	}
	if f.Padding == 0 {
		f.Padding = DefaultPadding
	}
}

// Rows returns the number of subplot rows.
func (f *Figure) Rows() int { return len(f.Plots) }

// Cols returns the widest row of the subplot grid.
func (f *Figure) Cols() int {
	cols := 0
	for _, row := range f.Plots {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return cols
}

// EachPlot calls fn for every non-nil plot in row-major order.
func (f *Figure) EachPlot(fn func(p *Plot)) {
	for _, row := range f.Plots {
		for _, p := range row {
			if p != nil {
				fn(p)
			}
		}
	}
}

// Validate checks the design for structural consistency. It returns an
// INCONSISTENT_DESIGN error naming the offending element, or nil.
func (f *Figure) Validate() error {
	if f.Width < 0 || f.Height < 0 {
		return errors.New(errors.ErrCodeInconsistentDesign, "figure size must be non-negative, got %gx%g", f.Width, f.Height)
	}
	if f.Padding < 0 {
		return errors.New(errors.ErrCodeInconsistentDesign, "figure padding must be non-negative, got %g", f.Padding)
	}
	if len(f.Plots) == 0 {
		return errors.New(errors.ErrCodeInconsistentDesign, "figure must have at least one plot")
	}
	for ri, row := range f.Plots {
		if len(row) == 0 {
			return errors.New(errors.ErrCodeInconsistentDesign, "plot row %d is empty", ri)
		}
		for ci, p := range row {
			if p == nil {
				return errors.New(errors.ErrCodeInconsistentDesign, "plot cell (%d,%d) is nil", ri, ci)
			}
			if err := p.validate(ri, ci); err != nil {
				return err
			}
		}
	}
	if f.Legend != nil {
		switch f.Legend.Pos {
		case LegendOutTop, LegendOutRight, "":
		default:
			return errors.New(errors.ErrCodeInconsistentDesign, "figure legend position %q must be %q or %q", f.Legend.Pos, LegendOutTop, LegendOutRight)
		}
	}
	return nil
}
