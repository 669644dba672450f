package plot

import (
	"math"

	"github.com/matzehuels/figment/pkg/bind"
	"github.com/matzehuels/figment/pkg/figure"
	"github.com/matzehuels/figment/pkg/render"
	"github.com/matzehuels/figment/pkg/style"
	"github.com/matzehuels/figment/pkg/theme"
)

// Draw lays out the bound figure and emits its primitive stream onto the
// surface. It returns UNBOUNDED_AXIS when an axis domain cannot be derived,
// INVALID_DOMAIN for a log scale over a non-positive domain, and
// INCONSISTENT_DATA when bars and numeric series share an x axis. Canvas
// size never causes an error.
func Draw(bound *bind.Bound, sfc render.Surface, opts Options) error {
	lay, err := ComputeLayout(bound, opts)
	if err != nil {
		return err
	}
	lay.Draw(sfc)
	return nil
}

// Layout is a computed figure layout, ready to draw. It is valid for the
// lifetime of the bound figure it was computed from.
type Layout struct {
	lay *figLayout
}

// ComputeLayout runs the layout passes without drawing. Callers that need
// to time or instrument the two stages separately use this with
// [Layout.Draw]; everyone else calls [Draw].
func ComputeLayout(bound *bind.Bound, opts Options) (*Layout, error) {
	lay, err := layoutFigure(bound, opts)
	if err != nil {
		return nil, err
	}
	return &Layout{lay: lay}, nil
}

// Draw emits the laid-out figure's primitive stream onto the surface.
func (l *Layout) Draw(sfc render.Surface) {
	l.lay.draw(sfc)
}

func (l *figLayout) draw(sfc render.Surface) {
	sfc.Begin(l.width, l.height, l.res.Background())

	if l.title != nil {
		sfc.Text(render.TextRun{
			Pos:      render.Point{X: l.content.CenterX(), Y: l.content.Y},
			Text:     l.title.text,
			Font:     l.title.font,
			Color:    l.res.TextColor(),
			Anchor:   render.AnchorMiddle,
			Baseline: render.BaselineTop,
		})
	}
	if l.legend != nil {
		l.legend.draw(sfc, l.res)
	}
	for _, row := range l.cells {
		for _, pl := range row {
			pl.draw(sfc, l.res)
		}
	}
}

func (p *plotLayout) draw(sfc render.Surface, res *theme.Resolver) {
	if p.title != nil {
		sfc.Text(render.TextRun{
			Pos:      render.Point{X: p.cell.CenterX(), Y: p.cell.Y},
			Text:     p.title.text,
			Font:     p.title.font,
			Color:    res.TextColor(),
			Anchor:   render.AnchorMiddle,
			Baseline: render.BaselineTop,
		})
	}

	for _, ax := range p.xAxes {
		ax.drawGrids(sfc, p.area)
	}
	for _, ax := range p.yAxes {
		ax.drawGrids(sfc, p.area)
	}
	p.drawAxes(sfc, p.xAxes)
	p.drawAxes(sfc, p.yAxes)

	sfc.PushClip(p.area)
	p.drawAnnotations(sfc, res, figure.ZBelow)
	p.drawSeries(sfc, res)
	p.drawAnnotations(sfc, res, figure.ZAbove)
	sfc.PopClip()

	if p.legend != nil {
		p.legend.draw(sfc, res)
	}
}

// drawAxes emits one side's axes innermost-first, each shifted outward past
// the previous one.
func (p *plotLayout) drawAxes(sfc render.Surface, axes []*axisLayout) {
	for _, opposite := range []bool{false, true} {
		off := 0.0
		for _, ax := range axes {
			if ax.opposite != opposite {
				continue
			}
			ax.draw(sfc, p.area, off)
			off += ax.size + axisMargin + axisSpineWidth
		}
	}
}

// =============================================================================
// Annotations
// =============================================================================

func (p *plotLayout) drawAnnotations(sfc render.Surface, res *theme.Resolver, z figure.ZPos) {
	for _, an := range p.bp.Plot.Annotations {
		if an.Z() != z {
			continue
		}
		switch v := an.(type) {
		case *figure.Label:
			p.drawLabel(sfc, res, v)
		case *figure.InfiniteLine:
			p.drawInfiniteLine(sfc, res, v)
		case *figure.Arrow:
			p.drawArrow(sfc, res, v)
		case *figure.MarkerAnnot:
			p.drawMarkerAnnot(sfc, res, v)
		}
	}
}

// annotX projects an annotation x coordinate. On a categorical axis the
// value is a category index.
func (p *plotLayout) annotX(idx int, v float64) (float64, bool) {
	if idx < 0 || idx >= len(p.xAxes) {
		idx = 0
	}
	ax := p.xAxes[idx]
	if ax.cm != nil {
		return ax.along(p.area, v), true
	}
	if ax.cat != nil && len(ax.cat.Categories()) > 0 {
		i := int(math.Round(v))
		i = min(max(i, 0), len(ax.cat.Categories())-1)
		return p.area.X + ax.cat.CenterAt(i), true
	}
	return 0, false
}

func (p *plotLayout) annotY(idx int, v float64) (float64, bool) {
	if idx < 0 || idx >= len(p.yAxes) {
		idx = 0
	}
	ax := p.yAxes[idx]
	if ax.cm == nil {
		return 0, false
	}
	return ax.along(p.area, v), true
}

func (p *plotLayout) drawLabel(sfc render.Surface, res *theme.Resolver, v *figure.Label) {
	x, okX := p.annotX(v.XAxis, v.X)
	y, okY := p.annotY(v.YAxis, v.Y)
	if !okX || !okY {
		return
	}
	anchor, baseline := labelAlign(v.Anchor)
	sfc.Text(render.TextRun{
		Pos:      render.Point{X: x, Y: y},
		Text:     v.Text,
		Font:     res.AnnotationFont(v.Font),
		Color:    res.TextColor(),
		Anchor:   anchor,
		Baseline: baseline,
	})
}

func labelAlign(a figure.Anchor) (render.Anchor, render.Baseline) {
	switch a {
	case figure.AnchorTopLeft:
		return render.AnchorStart, render.BaselineTop
	case figure.AnchorTopRight:
		return render.AnchorEnd, render.BaselineTop
	case figure.AnchorBottomLeft:
		return render.AnchorStart, render.BaselineBottom
	case figure.AnchorBottomRight:
		return render.AnchorEnd, render.BaselineBottom
	default:
		return render.AnchorMiddle, render.BaselineMiddle
	}
}

func (p *plotLayout) drawInfiniteLine(sfc render.Surface, res *theme.Resolver, v *figure.InfiniteLine) {
	var p1, p2 render.Point
	switch v.Orient {
	case figure.LineHorizontal:
		y, ok := p.annotY(v.YAxis, v.At)
		if !ok {
			return
		}
		p1 = render.Point{X: p.area.X, Y: y}
		p2 = render.Point{X: p.area.Right(), Y: y}
	case figure.LineVertical:
		x, ok := p.annotX(v.XAxis, v.At)
		if !ok {
			return
		}
		p1 = render.Point{X: x, Y: p.area.Y}
		p2 = render.Point{X: x, Y: p.area.Bottom()}
	case figure.LineSloped:
		idx := v.XAxis
		if idx < 0 || idx >= len(p.xAxes) {
			idx = 0
		}
		xa := p.xAxes[idx]
		if xa.cm == nil {
			return
		}
		b := xa.cm.Bounds()
		y1, ok1 := p.annotY(v.YAxis, v.Y0+v.Slope*(b.Min-v.X0))
		y2, ok2 := p.annotY(v.YAxis, v.Y0+v.Slope*(b.Max-v.X0))
		if !ok1 || !ok2 {
			return
		}
		p1 = render.Point{X: xa.along(p.area, b.Min), Y: y1}
		p2 = render.Point{X: xa.along(p.area, b.Max), Y: y2}
	default:
		return
	}

	stroke := res.AxisStroke()
	if v.Stroke != nil {
		stroke = *v.Stroke
	}
	sfc.Path(render.Path{SubPaths: [][]render.Point{{p1, p2}}, Stroke: &stroke})

	if v.Text != "" {
		sfc.Text(render.TextRun{
			Pos:      render.Point{X: p1.X + tickLabelMargin, Y: p1.Y - tickLabelMargin},
			Text:     v.Text,
			Font:     res.AnnotationFont(nil),
			Color:    res.TextColor(),
			Anchor:   render.AnchorStart,
			Baseline: render.BaselineBottom,
		})
	}
}

func (p *plotLayout) drawArrow(sfc render.Surface, res *theme.Resolver, v *figure.Arrow) {
	x, okX := p.annotX(v.XAxis, v.X)
	y, okY := p.annotY(v.YAxis, v.Y)
	if !okX || !okY {
		return
	}
	length := math.Hypot(v.DX, v.DY)
	if length == 0 {
		return
	}
	ux, uy := v.DX/length, v.DY/length
	head := v.HeadSize
	if head <= 0 {
		head = figure.DefaultArrowHead
	}

	tip := render.Point{X: x, Y: y}
	tail := render.Point{X: x + v.DX, Y: y + v.DY}
	// Chevron wings sit head units back from the tip, half a head to each
	// side of the shaft.
	back := render.Point{X: x + head*ux, Y: y + head*uy}
	w1 := render.Point{X: back.X - head/2*uy, Y: back.Y + head/2*ux}
	w2 := render.Point{X: back.X + head/2*uy, Y: back.Y - head/2*ux}

	stroke := res.AxisStroke()
	if v.Stroke != nil {
		stroke = *v.Stroke
	}
	sfc.Path(render.Path{SubPaths: [][]render.Point{{tail, tip}, {w1, tip, w2}}, Stroke: &stroke})

	if v.Text != "" {
		anchor := render.AnchorStart
		if v.DX < 0 {
			anchor = render.AnchorEnd
		}
		sfc.Text(render.TextRun{
			Pos:      render.Point{X: tail.X, Y: tail.Y},
			Text:     v.Text,
			Font:     res.AnnotationFont(nil),
			Color:    res.TextColor(),
			Anchor:   anchor,
			Baseline: render.BaselineMiddle,
		})
	}
}

func (p *plotLayout) drawMarkerAnnot(sfc render.Surface, res *theme.Resolver, v *figure.MarkerAnnot) {
	x, okX := p.annotX(v.XAxis, v.X)
	y, okY := p.annotY(v.YAxis, v.Y)
	if !okX || !okY {
		return
	}

	shape := figure.MarkerCircle
	size := float64(theme.DefaultMarkerSize)
	fill := style.Fill{Color: res.TextColor()}
	var stroke *style.Stroke
	if m := v.Marker; m != nil {
		if m.Shape != "" {
			shape = m.Shape
		}
		if m.Size > 0 {
			size = m.Size
		}
		if m.Fill != nil {
			fill = *m.Fill
		}
		if m.Stroke != nil {
			s := *m.Stroke
			stroke = &s
		}
	}
	sfc.Marker(render.Marker{
		Pos:    render.Point{X: x, Y: y},
		Shape:  string(shape),
		Size:   size,
		Fill:   &fill,
		Stroke: stroke,
	})
}
