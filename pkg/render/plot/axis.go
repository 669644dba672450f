package plot

import (
	"math"

	"github.com/matzehuels/figment/pkg/bind"
	"github.com/matzehuels/figment/pkg/data"
	"github.com/matzehuels/figment/pkg/errors"
	"github.com/matzehuels/figment/pkg/figure"
	"github.com/matzehuels/figment/pkg/render"
	"github.com/matzehuels/figment/pkg/scale"
	"github.com/matzehuels/figment/pkg/style"
	"github.com/matzehuels/figment/pkg/text"
	"github.com/matzehuels/figment/pkg/theme"
)

// =============================================================================
// Domain fitting
// =============================================================================

// axisDom is the fitted data extent of one axis before scale construction.
type axisDom struct {
	d         scale.Domain
	seen      bool
	hasSeries bool
	cats      []string // non-nil turns the axis categorical
}

func (a *axisDom) add(col data.NumColumn) {
	a.hasSeries = true
	if lo, hi, ok := col.Bounds(); ok {
		a.d.Add(lo)
		a.d.Add(hi)
		a.seen = true
	}
}

func (a *axisDom) addValue(v float64) {
	a.hasSeries = true
	if !math.IsNaN(v) && !math.IsInf(v, 0) {
		a.d.Add(v)
		a.seen = true
	}
}

type plotDomains struct {
	x, y []axisDom

	// vertBars zeroes the bottom inset so value bars start exactly at the
	// axis.
	vertBars bool
}

// fitDomains derives the data extent of every axis from the union of the
// series bound to it.
func fitDomains(bp *bind.BoundPlot) (*plotDomains, error) {
	p := bp.Plot
	doms := &plotDomains{
		x: make([]axisDom, p.XAxisCount()),
		y: make([]axisDom, p.YAxisCount()),
	}
	for i := range doms.x {
		doms.x[i].d = scale.Domain{Min: math.Inf(1), Max: math.Inf(-1)}
	}
	for i := range doms.y {
		doms.y[i].d = scale.Domain{Min: math.Inf(1), Max: math.Inf(-1)}
	}

	for _, s := range bp.Series {
		switch v := s.(type) {
		case *bind.Line:
			doms.x[v.Series.XAxis].add(v.X)
			doms.y[v.Series.YAxis].add(v.Y)
		case *bind.Scatter:
			doms.x[v.Series.XAxis].add(v.X)
			doms.y[v.Series.YAxis].add(v.Y)
		case *bind.Bars:
			doms.vertBars = true
			cats := &doms.x[0]
			cats.hasSeries = true
			for _, c := range v.Cats {
				if !containsStr(cats.cats, c) {
					cats.cats = append(cats.cats, c)
				}
			}
			vals := &doms.y[v.Series.YAxis]
			vals.addValue(0)
			for _, col := range v.Vals {
				vals.add(col)
			}
		case *bind.Histogram:
			h := histogramOf(v)
			if !h.ok {
				doms.x[v.Series.XAxis].hasSeries = true
				doms.y[v.Series.YAxis].hasSeries = true
				continue
			}
			doms.x[v.Series.XAxis].addValue(h.start)
			doms.x[v.Series.XAxis].addValue(h.start + h.width*float64(len(h.vals)))
			ya := &doms.y[v.Series.YAxis]
			ya.addValue(0)
			for _, bv := range h.vals {
				ya.addValue(bv)
			}
		}
	}

	for i := range doms.x {
		if doms.x[i].cats != nil && doms.x[i].seen {
			return nil, errors.New(errors.ErrCodeInconsistentData,
				"x-axis %d mixes categorical bars with numeric series", i)
		}
	}
	return doms, nil
}

func containsStr(s []string, v string) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}

// resolve turns the fitted extent into the displayed domain: explicit range
// ends override, degenerate spans widen, an axis with data that never yields
// a finite value is unbounded.
func (a *axisDom) resolve(ax *figure.Axis) (scale.Domain, error) {
	r := ax.Scale.Range
	d := a.d
	if !a.seen {
		d = scale.Domain{Min: 0, Max: 1}
		if a.hasSeries && (r.Min == nil || r.Max == nil) {
			return scale.Domain{}, errors.New(errors.ErrCodeUnboundedAxis,
				"axis domain cannot be derived: no finite data values")
		}
	}
	if r.Min != nil {
		d.Min = *r.Min
	}
	if r.Max != nil {
		d.Max = *r.Max
	}
	if d.Min > d.Max {
		d.Min, d.Max = d.Max, d.Min
	}
	return d.EnsureSpan(), nil
}

// =============================================================================
// Insets
// =============================================================================

type plotInsets struct {
	left, right, top, bottom float64
}

// resolveInsets picks the plot-area insets: explicit overrides win, vertical
// bars drop the bottom inset so bars start at the axis.
func resolveInsets(p *figure.Plot, vertBars bool) plotInsets {
	if p.Insets != nil {
		return plotInsets{
			left: p.Insets.Left, right: p.Insets.Right,
			top: p.Insets.Top, bottom: p.Insets.Bottom,
		}
	}
	ins := plotInsets{
		left: figure.DefaultInset, right: figure.DefaultInset,
		top: figure.DefaultInset, bottom: figure.DefaultInset,
	}
	if vertBars {
		ins.bottom = 0
	}
	return ins
}

// x returns the surface insets of an x axis. A fixed range end zeroes the
// inset on that side so the limit is exact.
func (i plotInsets) x(r figure.Range) scale.Insets {
	ins := scale.Insets{Lo: i.left, Hi: i.right}
	if r.Min != nil {
		ins.Lo = 0
	}
	if r.Max != nil {
		ins.Hi = 0
	}
	return ins
}

// y returns the surface insets of a y axis, low end at the bottom.
func (i plotInsets) y(r figure.Range) scale.Insets {
	ins := scale.Insets{Lo: i.bottom, Hi: i.top}
	if r.Min != nil {
		ins.Lo = 0
	}
	if r.Max != nil {
		ins.Hi = 0
	}
	return ins
}

// =============================================================================
// Axis layout
// =============================================================================

// tick is one measured major tick.
type tick struct {
	loc   float64
	label string
	w, h  float64
}

// axisLayout carries one axis through both layout passes and into drawing.
type axisLayout struct {
	ax       *figure.Axis
	vertical bool
	opposite bool
	m        text.Measurer
	res      *theme.Resolver

	dom  scale.Domain
	cats []string

	cm  scale.CoordMap
	cat *scale.Cat

	ticks     []tick
	minors    []float64
	title     *textBox
	maxLabelW float64
	maxLabelH float64

	// size is the band across the axis: marks, labels, and title.
	size float64
}

func newAxisLayout(ax *figure.Axis, dom axisDom, vertical bool, m text.Measurer, res *theme.Resolver) (*axisLayout, error) {
	a := &axisLayout{
		ax:       ax,
		vertical: vertical,
		opposite: ax.ResolvedSide() == figure.SideOpposite,
		m:        m,
		res:      res,
		cats:     dom.cats,
	}
	if a.cats == nil {
		var err error
		if a.dom, err = dom.resolve(ax); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// estimate runs the measurement pass: provisional ticks over the unextended
// domain.
func (a *axisLayout) estimate() {
	if a.cats != nil {
		a.measureCats()
	} else {
		a.genTicks(a.dom)
	}
	a.measureTitle()
	a.computeSize()
}

// build runs the allocation pass: the final coordinate map over the plot
// area, and the ticks that are actually drawn.
func (a *axisLayout) build(size float64, ins scale.Insets) error {
	if a.cats != nil {
		a.cat = scale.NewCat(size, ins, a.cats)
		a.measureCats()
		a.computeSize()
		return nil
	}
	switch a.ax.Scale.Kind {
	case figure.ScaleLog:
		lm, err := scale.NewLog(a.ax.Scale.ResolvedBase(), size, ins, a.dom)
		if err != nil {
			return err
		}
		a.cm = lm
	default:
		a.cm = scale.NewLinear(size, ins, a.dom)
	}
	a.genTicks(a.cm.Bounds())
	a.measureTitle()
	a.computeSize()
	return nil
}

func (a *axisLayout) measureCats() {
	a.ticks = a.ticks[:0]
	a.maxLabelW, a.maxLabelH = 0, 0
	font := a.res.TickLabelFont()
	for i, c := range a.cats {
		sz := a.m.Measure(c, font)
		a.ticks = append(a.ticks, tick{loc: float64(i), label: c, w: sz.W, h: sz.H})
		a.maxLabelW = max(a.maxLabelW, sz.W)
		a.maxLabelH = max(a.maxLabelH, sz.H)
	}
}

func (a *axisLayout) genTicks(d scale.Domain) {
	loc := a.locator()
	fm := a.formatter(d)

	locs := loc.Ticks(d)
	a.ticks = a.ticks[:0]
	a.maxLabelW, a.maxLabelH = 0, 0
	font := a.res.TickLabelFont()
	eps := d.Span() * 1e-9
	for _, l := range locs {
		if l < d.Min-eps || l > d.Max+eps {
			continue
		}
		lbl := fm.Format(l)
		sz := a.m.Measure(lbl, font)
		a.ticks = append(a.ticks, tick{loc: l, label: lbl, w: sz.W, h: sz.H})
		a.maxLabelW = max(a.maxLabelW, sz.W)
		a.maxLabelH = max(a.maxLabelH, sz.H)
	}

	a.minors = nil
	if a.ax.MinorTicks || a.ax.MinorGrid != nil {
		for _, l := range loc.MinorTicks(d) {
			if l >= d.Min-eps && l <= d.Max+eps {
				a.minors = append(a.minors, l)
			}
		}
	}
}

func (a *axisLayout) measureTitle() {
	title := a.ax.Title
	if annot := a.formatter(a.dom).AxisAnnotation(); annot != "" {
		if title == "" {
			title = annot
		} else {
			title += " " + annot
		}
	}
	if title == "" {
		a.title = nil
		return
	}
	a.title = measure(a.m, title, a.res.AxisTitleFont())
}

func (a *axisLayout) computeSize() {
	if a.cats != nil {
		a.size = tickLabelMargin + a.maxLabelH
	} else {
		ext := a.maxLabelH
		if a.vertical {
			ext = a.maxLabelW
		}
		a.size = tickSize + tickLabelMargin + ext
	}
	if a.title != nil {
		a.size += axisTitleMargin + a.title.h
	}
}

func (a *axisLayout) locator() scale.Locator {
	t := a.ax.Ticks
	if t == nil {
		if a.ax.Scale.Kind == figure.ScaleLog {
			return scale.LogTicks{Base: a.ax.Scale.ResolvedBase()}
		}
		return scale.Auto{}
	}
	switch t.Locator {
	case figure.LocMaxN:
		return &scale.MaxN{Bins: t.Bins}
	case figure.LocFixedStep:
		return scale.FixedStep{Step: t.Step}
	case figure.LocPiMultiple:
		return scale.NewPiMultiple(t.Bins)
	case figure.LocLog:
		return scale.LogTicks{Base: a.ax.Scale.ResolvedBase()}
	default:
		if a.ax.Scale.Kind == figure.ScaleLog {
			return scale.LogTicks{Base: a.ax.Scale.ResolvedBase()}
		}
		return scale.Auto{Bins: binsOf(t)}
	}
}

func binsOf(t *figure.Ticks) int {
	if t == nil {
		return 0
	}
	return t.Bins
}

func (a *axisLayout) formatter(d scale.Domain) scale.Formatter {
	t := a.ax.Ticks
	kind := figure.FmtAuto
	if t != nil && t.Formatter != "" {
		kind = t.Formatter
	}
	switch kind {
	case figure.FmtPrec:
		return scale.Prec(t.Prec)
	case figure.FmtScientific:
		return scale.Sci{}
	case figure.FmtPercent:
		if t.Prec > 0 {
			return scale.Percent{Prec: t.Prec}
		}
		return scale.AutoPercent(d)
	case figure.FmtPiMultiple:
		prec := 2
		if t.Prec > 0 {
			prec = t.Prec
		}
		return scale.PiMultiple{Prec: prec}
	default:
		if t != nil && t.Locator == figure.LocPiMultiple {
			return scale.PiMultiple{Prec: 2}
		}
		return scale.AutoFormatter(d)
	}
}

// =============================================================================
// Drawing
// =============================================================================

// along maps a data value to its canvas coordinate along the axis.
func (a *axisLayout) along(area render.Rect, v float64) float64 {
	if a.vertical {
		return area.Bottom() - a.cm.Map(v)
	}
	return area.X + a.cm.Map(v)
}

// drawGrids emits the axis grid lines across the plot area. Minor lines go
// under major ones.
func (a *axisLayout) drawGrids(sfc render.Surface, area render.Rect) {
	if a.ax.MinorGrid != nil {
		a.gridLines(sfc, area, a.minors, a.gridStroke(a.ax.MinorGrid, true))
	}
	if a.ax.Grid == nil {
		return
	}
	stroke := a.gridStroke(a.ax.Grid, false)
	if a.cat != nil {
		a.gridPath(sfc, area, a.separators(), stroke)
		return
	}
	locs := make([]float64, len(a.ticks))
	for i, t := range a.ticks {
		locs[i] = t.loc
	}
	a.gridLines(sfc, area, locs, stroke)
}

func (a *axisLayout) gridStroke(spec *figure.GridSpec, minor bool) style.Stroke {
	if spec.Stroke != nil {
		return *spec.Stroke
	}
	s := a.res.GridStroke(minor)
	if minor {
		s.Width = minorTickLineWidth
	}
	return s
}

func (a *axisLayout) gridLines(sfc render.Surface, area render.Rect, locs []float64, stroke style.Stroke) {
	pts := make([]float64, len(locs))
	for i, l := range locs {
		pts[i] = a.along(area, l)
	}
	a.gridPath(sfc, area, pts, stroke)
}

// gridPath draws one line per canvas position, spanning the plot area across
// the axis direction.
func (a *axisLayout) gridPath(sfc render.Surface, area render.Rect, pts []float64, stroke style.Stroke) {
	if len(pts) == 0 {
		return
	}
	subs := make([][]render.Point, 0, len(pts))
	for _, p := range pts {
		if a.vertical {
			subs = append(subs, []render.Point{{X: area.X, Y: p}, {X: area.Right(), Y: p}})
		} else {
			subs = append(subs, []render.Point{{X: p, Y: area.Y}, {X: p, Y: area.Bottom()}})
		}
	}
	sfc.Path(render.Path{SubPaths: subs, Stroke: &stroke})
}

// separators returns the canvas positions of the category bin boundaries.
func (a *axisLayout) separators() []float64 {
	n := len(a.cat.Categories())
	if n == 0 {
		return nil
	}
	half := a.cat.BinSize() / 2
	seps := make([]float64, 0, n+1)
	for i := 0; i < n; i++ {
		seps = append(seps, a.cat.CenterAt(i)-half)
	}
	return append(seps, a.cat.CenterAt(n-1)+half)
}

// draw emits the spine, tick marks, tick labels, and title of the axis,
// shifted outward by offset for stacked same-side axes.
func (a *axisLayout) draw(sfc render.Surface, area render.Rect, offset float64) {
	stroke := a.res.AxisStroke()
	spine := a.spinePos(area, offset)

	// Spine.
	var sp []render.Point
	if a.vertical {
		sp = []render.Point{{X: spine, Y: area.Y}, {X: spine, Y: area.Bottom()}}
	} else {
		sp = []render.Point{{X: area.X, Y: spine}, {X: area.Right(), Y: spine}}
	}
	sfc.Path(render.Path{SubPaths: [][]render.Point{sp}, Stroke: &stroke})

	if a.cat != nil {
		a.drawCat(sfc, area, spine, stroke)
	} else {
		a.drawNum(sfc, area, spine, stroke)
	}
	a.drawTitle(sfc, area, spine)
}

func (a *axisLayout) spinePos(area render.Rect, offset float64) float64 {
	switch {
	case a.vertical && a.opposite:
		return area.Right() + offset
	case a.vertical:
		return area.X - offset
	case a.opposite:
		return area.Y - offset
	default:
		return area.Bottom() + offset
	}
}

// out returns +1 when the axis band grows toward larger canvas coordinates.
func (a *axisLayout) out() float64 {
	if a.opposite == a.vertical {
		return 1
	}
	return -1
}

func (a *axisLayout) drawNum(sfc render.Surface, area render.Rect, spine float64, stroke style.Stroke) {
	if len(a.minors) > 0 {
		pts := make([]float64, len(a.minors))
		for i, l := range a.minors {
			pts[i] = a.along(area, l)
		}
		ms := stroke
		ms.Width = minorTickLineWidth
		a.markPath(sfc, pts, spine, minorTickSize, ms)
	}
	pts := make([]float64, len(a.ticks))
	for i, t := range a.ticks {
		pts[i] = a.along(area, t.loc)
	}
	a.markPath(sfc, pts, spine, tickSize, stroke)
	a.drawLabels(sfc, spine, tickSize+tickLabelMargin, pts)
}

func (a *axisLayout) drawCat(sfc render.Surface, area render.Rect, spine float64, stroke style.Stroke) {
	seps := a.separators()
	pts := make([]float64, len(seps))
	for i, s := range seps {
		if a.vertical {
			pts[i] = area.Bottom() - s
		} else {
			pts[i] = area.X + s
		}
	}
	a.markPath(sfc, pts, spine, tickSize, stroke)

	centers := make([]float64, len(a.ticks))
	for i := range a.ticks {
		if a.vertical {
			centers[i] = area.Bottom() - a.cat.CenterAt(i)
		} else {
			centers[i] = area.X + a.cat.CenterAt(i)
		}
	}
	a.drawLabels(sfc, spine, tickLabelMargin, centers)
}

// markPath emits one tick mark per canvas position, from the spine outward.
func (a *axisLayout) markPath(sfc render.Surface, pts []float64, spine, size float64, stroke style.Stroke) {
	if len(pts) == 0 {
		return
	}
	end := spine + a.out()*size
	subs := make([][]render.Point, 0, len(pts))
	for _, p := range pts {
		if a.vertical {
			subs = append(subs, []render.Point{{X: spine, Y: p}, {X: end, Y: p}})
		} else {
			subs = append(subs, []render.Point{{X: p, Y: spine}, {X: p, Y: end}})
		}
	}
	sfc.Path(render.Path{SubPaths: subs, Stroke: &stroke})
}

func (a *axisLayout) drawLabels(sfc render.Surface, spine, shift float64, pts []float64) {
	font := a.res.TickLabelFont()
	color := a.res.TextColor()
	base := spine + a.out()*shift

	anchor, baseline := a.labelAlign()
	for i, t := range a.ticks {
		pos := render.Point{X: pts[i], Y: base}
		if a.vertical {
			pos = render.Point{X: base, Y: pts[i]}
		}
		sfc.Text(render.TextRun{
			Pos: pos, Text: t.label, Font: font, Color: color,
			Anchor: anchor, Baseline: baseline,
		})
	}
}

func (a *axisLayout) labelAlign() (render.Anchor, render.Baseline) {
	switch {
	case a.vertical && a.opposite:
		return render.AnchorStart, render.BaselineMiddle
	case a.vertical:
		return render.AnchorEnd, render.BaselineMiddle
	case a.opposite:
		return render.AnchorMiddle, render.BaselineBottom
	default:
		return render.AnchorMiddle, render.BaselineTop
	}
}

func (a *axisLayout) drawTitle(sfc render.Surface, area render.Rect, spine float64) {
	if a.title == nil {
		return
	}
	color := a.res.TextColor()
	if a.vertical {
		x := spine + a.out()*(a.size-a.title.h/2)
		sfc.Text(render.TextRun{
			Pos: render.Point{X: x, Y: area.CenterY()},
			Text: a.title.text, Font: a.title.font, Color: color,
			Anchor: render.AnchorMiddle, Baseline: render.BaselineMiddle,
			Angle: -90,
		})
		return
	}
	y := spine + a.out()*(a.size-a.title.h)
	baseline := render.BaselineTop
	if a.opposite {
		baseline = render.BaselineBottom
	}
	sfc.Text(render.TextRun{
		Pos: render.Point{X: area.CenterX(), Y: y},
		Text: a.title.text, Font: a.title.font, Color: color,
		Anchor: render.AnchorMiddle, Baseline: baseline,
	})
}
