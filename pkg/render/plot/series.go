package plot

import (
	"math"

	"github.com/matzehuels/figment/pkg/bind"
	"github.com/matzehuels/figment/pkg/figure"
	"github.com/matzehuels/figment/pkg/render"
	"github.com/matzehuels/figment/pkg/scale"
	"github.com/matzehuels/figment/pkg/style"
	"github.com/matzehuels/figment/pkg/theme"
)

// paletteSlots assigns each series its palette base index. Bars consume one
// slot per value group so grouped bars get distinct colors.
func paletteSlots(series []bind.BoundSeries) []int {
	slots := make([]int, len(series))
	n := 0
	for i, s := range series {
		slots[i] = n
		if b, ok := s.(*bind.Bars); ok {
			n += len(b.Vals)
		} else {
			n++
		}
	}
	return slots
}

// =============================================================================
// Histogram binning
// =============================================================================

// hist is a binned histogram: equal-width bins over the finite data extent.
type hist struct {
	start float64
	width float64
	vals  []float64
	ok    bool
}

func histogramOf(h *bind.Histogram) hist {
	bins := h.Series.ResolvedBins()
	lo, hi, ok := h.Data.Bounds()
	if !ok || bins <= 0 {
		return hist{}
	}
	if hi == lo {
		// All-equal data bins over the widened degenerate span.
		d := scale.Domain{Min: lo, Max: hi}.EnsureSpan()
		lo, hi = d.Min, d.Max
	}
	width := (hi - lo) / float64(bins)
	add := 1.0
	if h.Series.Density {
		add = 1 / (float64(h.Data.LenValid()) * width)
	}
	vals := make([]float64, bins)
	for _, v := range h.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		idx := int((v - lo) / width)
		if idx >= bins {
			// The max value falls on the last bin's closed upper edge.
			idx = bins - 1
		}
		if idx < 0 {
			idx = 0
		}
		vals[idx] += add
	}
	return hist{start: lo, width: width, vals: vals, ok: true}
}

// =============================================================================
// Translation
// =============================================================================

// drawSeries emits every series of the plot in declaration order. The caller
// has already pushed the plot-area clip.
func (p *plotLayout) drawSeries(sfc render.Surface, res *theme.Resolver) {
	for i, s := range p.bp.Series {
		slot := p.slots[i]
		switch v := s.(type) {
		case *bind.Line:
			p.drawLine(sfc, res, v, slot)
		case *bind.Scatter:
			p.drawScatter(sfc, res, v, slot)
		case *bind.Bars:
			p.drawBars(sfc, res, v, slot)
		case *bind.Histogram:
			p.drawHistogram(sfc, res, v, slot)
		}
	}
}

func (p *plotLayout) drawLine(sfc render.Surface, res *theme.Resolver, v *bind.Line, slot int) {
	xa := p.xAxes[v.Series.XAxis]
	ya := p.yAxes[v.Series.YAxis]
	if xa.cm == nil || ya.cm == nil {
		return
	}
	step := v.Series.Interp == figure.InterpStep

	var subs [][]render.Point
	var run []render.Point
	flush := func() {
		if len(run) > 1 {
			subs = append(subs, run)
		}
		run = nil
	}
	for i := range v.X {
		x, y := v.X[i], v.Y[i]
		if math.IsNaN(x) || math.IsNaN(y) {
			flush()
			continue
		}
		pt := render.Point{X: xa.along(p.area, x), Y: ya.along(p.area, y)}
		if step && len(run) > 0 {
			// Hold the previous y until the new x.
			run = append(run, render.Point{X: pt.X, Y: run[len(run)-1].Y})
		}
		run = append(run, pt)
	}
	flush()
	if len(subs) == 0 {
		return
	}

	stroke := res.SeriesStroke(slot, v.Series.Stroke)
	sfc.Path(render.Path{SubPaths: subs, Stroke: &stroke})
}

func (p *plotLayout) drawScatter(sfc render.Surface, res *theme.Resolver, v *bind.Scatter, slot int) {
	xa := p.xAxes[v.Series.XAxis]
	ya := p.yAxes[v.Series.YAxis]
	if xa.cm == nil || ya.cm == nil {
		return
	}

	shape := figure.MarkerCircle
	size := float64(theme.DefaultMarkerSize)
	var fill style.Fill
	var stroke *style.Stroke
	if m := v.Series.Marker; m != nil {
		if m.Shape != "" {
			shape = m.Shape
		}
		if m.Size > 0 {
			size = m.Size
		}
		fill = res.SeriesFill(slot, m.Fill)
		if m.Stroke != nil {
			s := *m.Stroke
			stroke = &s
		}
	} else {
		fill = res.SeriesFill(slot)
	}

	for i := range v.X {
		x, y := v.X[i], v.Y[i]
		if math.IsNaN(x) || math.IsNaN(y) {
			continue
		}
		sfc.Marker(render.Marker{
			Pos:    render.Point{X: xa.along(p.area, x), Y: ya.along(p.area, y)},
			Shape:  string(shape),
			Size:   size,
			Fill:   &fill,
			Stroke: stroke,
		})
	}
}

func (p *plotLayout) drawBars(sfc render.Surface, res *theme.Resolver, v *bind.Bars, slot int) {
	cat := p.xAxes[0].cat
	ya := p.yAxes[v.Series.YAxis]
	if cat == nil || cat.BinSize() <= 0 || ya.cm == nil {
		return
	}

	gap := v.Series.ResolvedGap()
	groups := float64(len(v.Vals))
	usable := cat.BinSize() * (1 - gap)
	barW := usable / groups
	baseY := ya.along(p.area, clampToDomain(0, ya.cm.Bounds()))

	for gi, col := range v.Vals {
		var subs [][]render.Point
		for ci, label := range v.Cats {
			val := col[ci]
			if math.IsNaN(val) {
				continue
			}
			center, ok := cat.Center(label)
			if !ok {
				continue
			}
			x0 := p.area.X + center - usable/2 + float64(gi)*barW
			y1 := ya.along(p.area, val)
			subs = append(subs, []render.Point{
				{X: x0, Y: baseY},
				{X: x0 + barW, Y: baseY},
				{X: x0 + barW, Y: y1},
				{X: x0, Y: y1},
			})
		}
		if len(subs) == 0 {
			continue
		}
		fill := res.SeriesFill(slot+gi, v.Series.Fill)
		path := render.Path{SubPaths: subs, Closed: true, Fill: &fill}
		if v.Series.Stroke != nil {
			s := *v.Series.Stroke
			path.Stroke = &s
		}
		sfc.Path(path)
	}
}

func (p *plotLayout) drawHistogram(sfc render.Surface, res *theme.Resolver, v *bind.Histogram, slot int) {
	xa := p.xAxes[v.Series.XAxis]
	ya := p.yAxes[v.Series.YAxis]
	if xa.cm == nil || ya.cm == nil {
		return
	}
	h := histogramOf(v)
	if !h.ok {
		return
	}

	baseY := ya.along(p.area, clampToDomain(0, ya.cm.Bounds()))
	run := make([]render.Point, 0, 2*len(h.vals)+2)
	run = append(run, render.Point{X: xa.along(p.area, h.start), Y: baseY})
	for i, bv := range h.vals {
		xl := h.start + h.width*float64(i)
		xr := xl + h.width
		y := ya.along(p.area, bv)
		run = append(run,
			render.Point{X: xa.along(p.area, xl), Y: y},
			render.Point{X: xa.along(p.area, xr), Y: y},
		)
	}
	end := h.start + h.width*float64(len(h.vals))
	run = append(run, render.Point{X: xa.along(p.area, end), Y: baseY})

	stroke := res.SeriesStroke(slot, v.Series.Stroke)
	path := render.Path{SubPaths: [][]render.Point{run}, Stroke: &stroke}
	if v.Series.Fill != nil {
		f := *v.Series.Fill
		path.Fill = &f
	}
	sfc.Path(path)
}

func clampToDomain(v float64, d scale.Domain) float64 {
	return math.Min(math.Max(v, d.Min), d.Max)
}
