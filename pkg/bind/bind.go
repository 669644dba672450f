// Package bind resolves the symbolic column references of a figure design
// against a tabular data source.
//
// A design never owns raw values: series name their columns, and binding
// turns those names into typed column views right before layout. The bound
// result holds views, not copies, so the same design can be rebound cheaply
// against fresh data on every redraw.
//
// Binding is the only stage allowed to reject a data mismatch. Anything that
// passes here renders without data errors downstream.
//
// # Usage
//
//	bound, err := bind.Bind(fig, frame)
//	if err != nil {
//	    // MISSING_COLUMN, LENGTH_MISMATCH, TYPE_MISMATCH, ...
//	}
package bind

import (
	"github.com/matzehuels/figment/pkg/data"
	"github.com/matzehuels/figment/pkg/errors"
	"github.com/matzehuels/figment/pkg/figure"
)

// Bound pairs a validated figure with the resolved column views of every
// series, mirroring the figure's plot grid.
type Bound struct {
	Figure *figure.Figure

	// Plots is indexed [row][col], same shape as Figure.Plots.
	Plots [][]*BoundPlot
}

// BoundPlot holds the bound series of one subplot, in declaration order.
type BoundPlot struct {
	Plot   *figure.Plot
	Series []BoundSeries
}

// BoundSeries is the closed union of bound series variants: [Line],
// [Scatter], [Bars], and [Histogram].
type BoundSeries interface {
	isBound()

	// Design returns the series description this binding resolved.
	Design() figure.Series
}

// Line is a bound line series: equal-length x and y views.
type Line struct {
	Series *figure.Line
	X, Y   data.NumColumn
}

func (*Line) isBound() {}

// Design implements [BoundSeries].
func (l *Line) Design() figure.Series { return l.Series }

// Scatter is a bound scatter series: equal-length x and y views.
type Scatter struct {
	Series *figure.Scatter
	X, Y   data.NumColumn
}

func (*Scatter) isBound() {}

// Design implements [BoundSeries].
func (s *Scatter) Design() figure.Series { return s.Series }

// Bars is a bound bar series: one category view plus one value view per
// group, all the same length.
type Bars struct {
	Series *figure.Bars
	Cats   data.CatColumn
	Vals   []data.NumColumn
}

func (*Bars) isBound() {}

// Design implements [BoundSeries].
func (b *Bars) Design() figure.Series { return b.Series }

// Histogram is a bound histogram series: the raw sample view. Binning
// happens at draw time.
type Histogram struct {
	Series *figure.Histogram
	Data   data.NumColumn
}

func (*Histogram) isBound() {}

// Design implements [BoundSeries].
func (h *Histogram) Design() figure.Series { return h.Series }

// =============================================================================
// Binding
// =============================================================================

// Bind validates fig and resolves every series column reference against src.
// It is pure: no copies, no mutation of fig or src. The returned views stay
// valid as long as src does.
func Bind(fig *figure.Figure, src data.Source) (*Bound, error) {
	if err := fig.Validate(); err != nil {
		return nil, err
	}

	bound := &Bound{Figure: fig, Plots: make([][]*BoundPlot, len(fig.Plots))}
	for r, row := range fig.Plots {
		bound.Plots[r] = make([]*BoundPlot, len(row))
		for c, p := range row {
			bp := &BoundPlot{Plot: p, Series: make([]BoundSeries, 0, len(p.Series))}
			for i, s := range p.Series {
				if src == nil {
					return nil, errors.New(errors.ErrCodeMissingDataSource,
						"plot (%d,%d) series %d references data but no data source was provided", r, c, i)
				}
				bs, err := bindSeries(s, src, r, c, i)
				if err != nil {
					return nil, err
				}
				bp.Series = append(bp.Series, bs)
			}
			bound.Plots[r][c] = bp
		}
	}
	return bound, nil
}

func bindSeries(s figure.Series, src data.Source, row, col, idx int) (BoundSeries, error) {
	switch v := s.(type) {
	case *figure.Line:
		x, y, err := bindXY(src, v.X, v.Y, row, col, idx)
		if err != nil {
			return nil, err
		}
		return &Line{Series: v, X: x, Y: y}, nil

	case *figure.Scatter:
		x, y, err := bindXY(src, v.X, v.Y, row, col, idx)
		if err != nil {
			return nil, err
		}
		return &Scatter{Series: v, X: x, Y: y}, nil

	case *figure.Bars:
		cats, err := catColumn(src, v.Cats, row, col, idx)
		if err != nil {
			return nil, err
		}
		vals := make([]data.NumColumn, len(v.Vals))
		for g, name := range v.Vals {
			vc, err := numColumn(src, name, row, col, idx)
			if err != nil {
				return nil, err
			}
			if vc.Len() != cats.Len() {
				return nil, errors.New(errors.ErrCodeLengthMismatch,
					"plot (%d,%d) series %d: value column %q has %d entries, category column %q has %d",
					row, col, idx, name, vc.Len(), v.Cats, cats.Len())
			}
			vals[g] = vc
		}
		return &Bars{Series: v, Cats: cats, Vals: vals}, nil

	case *figure.Histogram:
		d, err := numColumn(src, v.Data, row, col, idx)
		if err != nil {
			return nil, err
		}
		return &Histogram{Series: v, Data: d}, nil

	default:
		return nil, errors.New(errors.ErrCodeInconsistentDesign,
			"plot (%d,%d) series %d: unknown series kind", row, col, idx)
	}
}

func bindXY(src data.Source, xRef, yRef string, row, col, idx int) (x, y data.NumColumn, err error) {
	if x, err = numColumn(src, xRef, row, col, idx); err != nil {
		return nil, nil, err
	}
	if y, err = numColumn(src, yRef, row, col, idx); err != nil {
		return nil, nil, err
	}
	if x.Len() != y.Len() {
		return nil, nil, errors.New(errors.ErrCodeLengthMismatch,
			"plot (%d,%d) series %d: column %q has %d entries, column %q has %d",
			row, col, idx, xRef, x.Len(), yRef, y.Len())
	}
	return x, y, nil
}

func numColumn(src data.Source, name string, row, col, idx int) (data.NumColumn, error) {
	c, err := lookup(src, name, row, col, idx)
	if err != nil {
		return nil, err
	}
	nc, ok := c.(data.NumColumn)
	if !ok {
		return nil, errors.New(errors.ErrCodeTypeMismatch,
			"plot (%d,%d) series %d: column %q is not numeric", row, col, idx, name)
	}
	return nc, nil
}

func catColumn(src data.Source, name string, row, col, idx int) (data.CatColumn, error) {
	c, err := lookup(src, name, row, col, idx)
	if err != nil {
		return nil, err
	}
	cc, ok := c.(data.CatColumn)
	if !ok {
		return nil, errors.New(errors.ErrCodeTypeMismatch,
			"plot (%d,%d) series %d: column %q is not categorical", row, col, idx, name)
	}
	return cc, nil
}

func lookup(src data.Source, name string, row, col, idx int) (data.Column, error) {
	if err := errors.ValidateColumnRef(name); err != nil {
		return nil, err
	}
	c, ok := src.Column(name)
	if !ok {
		return nil, errors.New(errors.ErrCodeMissingColumn,
			"plot (%d,%d) series %d: column %q not found in data source", row, col, idx, name)
	}
	return c, nil
}
