package plot

import (
	"math"

	"github.com/matzehuels/figment/pkg/bind"
	"github.com/matzehuels/figment/pkg/figure"
	"github.com/matzehuels/figment/pkg/render"
	"github.com/matzehuels/figment/pkg/style"
	"github.com/matzehuels/figment/pkg/text"
	"github.com/matzehuels/figment/pkg/theme"
)

type swatchKind int

const (
	swatchLine swatchKind = iota
	swatchRect
	swatchMarker
)

// legendEntry is one swatch-plus-label pair.
type legendEntry struct {
	label string
	kind  swatchKind

	stroke style.Stroke
	fill   style.Fill
	shape  figure.MarkerShape
	size   float64

	w, h float64 // measured label extent
}

// legendBox is a laid-out legend: a uniform grid of entries inside a padded,
// bordered box.
type legendBox struct {
	pos     figure.LegendPos
	entries []legendEntry

	cols, rows int
	colW, rowH float64
	w, h       float64

	rect render.Rect
}

// collectEntries turns the labeled series of a plot into legend entries.
// Unlabeled series are skipped; grouped bars contribute one entry per named
// group.
func collectEntries(bp *bind.BoundPlot, slots []int, res *theme.Resolver) []legendEntry {
	var entries []legendEntry
	for i, s := range bp.Series {
		slot := slots[i]
		switch v := s.(type) {
		case *bind.Line:
			if v.Series.Name == "" {
				continue
			}
			entries = append(entries, legendEntry{
				label:  v.Series.Name,
				kind:   swatchLine,
				stroke: res.SeriesStroke(slot, v.Series.Stroke),
			})
		case *bind.Scatter:
			if v.Series.Name == "" {
				continue
			}
			e := legendEntry{
				label: v.Series.Name,
				kind:  swatchMarker,
				shape: figure.MarkerCircle,
				size:  theme.DefaultMarkerSize,
			}
			if m := v.Series.Marker; m != nil {
				if m.Shape != "" {
					e.shape = m.Shape
				}
				if m.Size > 0 {
					e.size = m.Size
				}
				e.fill = res.SeriesFill(slot, m.Fill)
			} else {
				e.fill = res.SeriesFill(slot)
			}
			entries = append(entries, e)
		case *bind.Bars:
			if len(v.Series.GroupNames) > 0 {
				for g, name := range v.Series.GroupNames {
					if name == "" {
						continue
					}
					entries = append(entries, legendEntry{
						label: name,
						kind:  swatchRect,
						fill:  res.SeriesFill(slot+g, v.Series.Fill),
					})
				}
			} else if v.Series.Name != "" {
				entries = append(entries, legendEntry{
					label: v.Series.Name,
					kind:  swatchRect,
					fill:  res.SeriesFill(slot, v.Series.Fill),
				})
			}
		case *bind.Histogram:
			if v.Series.Name == "" {
				continue
			}
			e := legendEntry{
				label:  v.Series.Name,
				kind:   swatchLine,
				stroke: res.SeriesStroke(slot, v.Series.Stroke),
			}
			if v.Series.Fill != nil {
				e.kind = swatchRect
				e.fill = *v.Series.Fill
			}
			entries = append(entries, e)
		}
	}
	return entries
}

// buildPlotLegend lays out the plot legend, or returns nil when the plot has
// no legend or no labeled series.
func buildPlotLegend(bp *bind.BoundPlot, slots []int, res *theme.Resolver, m text.Measurer, availW float64) *legendBox {
	if bp.Plot.Legend == nil {
		return nil
	}
	entries := collectEntries(bp, slots, res)
	if len(entries) == 0 {
		return nil
	}
	return layoutLegend(entries, bp.Plot.Legend.ResolvedPos(), availW, m, res)
}

// buildFigureLegend lays out the shared figure legend from the labeled
// series of every plot.
func buildFigureLegend(bound *bind.Bound, res *theme.Resolver, m text.Measurer, grid render.Rect) *legendBox {
	var entries []legendEntry
	for _, row := range bound.Plots {
		for _, bp := range row {
			entries = append(entries, collectEntries(bp, paletteSlots(bp.Series), res)...)
		}
	}
	if len(entries) == 0 {
		return nil
	}
	pos := bound.Figure.Legend.Pos
	if pos == "" {
		pos = figure.LegendOutTop
	}
	return layoutLegend(entries, pos, grid.W, m, res)
}

// layoutLegend measures the entries and fits them into a uniform grid.
// Horizontal positions fit as many columns as the available width allows;
// vertical positions stack a single column.
func layoutLegend(entries []legendEntry, pos figure.LegendPos, availW float64, m text.Measurer, res *theme.Resolver) *legendBox {
	font := res.LegendFont()
	maxTextW, maxTextH := 0.0, 0.0
	for i := range entries {
		sz := m.Measure(entries[i].label, font)
		entries[i].w, entries[i].h = sz.W, sz.H
		maxTextW = max(maxTextW, sz.W)
		maxTextH = max(maxTextH, sz.H)
	}

	b := &legendBox{
		pos:     pos,
		entries: entries,
		colW:    theme.LegendShapeWidth + theme.LegendShapeSpacing + maxTextW,
		rowH:    max(maxTextH, theme.LegendShapeHeight),
	}

	n := len(entries)
	b.cols = 1
	if horizontalLegend(pos) {
		fit := int((availW - 2*theme.LegendPadding + theme.LegendHSpace) / (b.colW + theme.LegendHSpace))
		b.cols = min(max(fit, 1), n)
	}
	b.rows = int(math.Ceil(float64(n) / float64(b.cols)))

	b.w = 2*theme.LegendPadding + float64(b.cols)*b.colW + float64(b.cols-1)*theme.LegendHSpace
	b.h = 2*theme.LegendPadding + float64(b.rows)*b.rowH + float64(b.rows-1)*theme.LegendVSpace
	return b
}

func horizontalLegend(pos figure.LegendPos) bool {
	switch pos {
	case figure.LegendOutTop, figure.LegendOutBottom, figure.LegendInTop, figure.LegendInBottom:
		return true
	}
	return false
}

// placeLegend positions the plot legend: out positions sit in the band
// reserved for them, in positions float over the plot area with a margin.
func (p *plotLayout) placeLegend() render.Rect {
	b := p.legend
	area, cell := p.area, p.cell
	m := float64(theme.LegendMargin)

	switch b.pos {
	case figure.LegendOutBottom:
		return render.Rect{X: area.CenterX() - b.w/2, Y: cell.Bottom() - b.h, W: b.w, H: b.h}
	case figure.LegendOutTop:
		y := cell.Y
		if p.title != nil {
			y += p.title.h + figTitleMargin
		}
		return render.Rect{X: area.CenterX() - b.w/2, Y: y, W: b.w, H: b.h}
	case figure.LegendOutLeft:
		return render.Rect{X: cell.X, Y: area.CenterY() - b.h/2, W: b.w, H: b.h}
	case figure.LegendOutRight:
		return render.Rect{X: cell.Right() - b.w, Y: area.CenterY() - b.h/2, W: b.w, H: b.h}
	case figure.LegendInTop:
		return render.Rect{X: area.CenterX() - b.w/2, Y: area.Y + m, W: b.w, H: b.h}
	case figure.LegendInTopRight:
		return render.Rect{X: area.Right() - m - b.w, Y: area.Y + m, W: b.w, H: b.h}
	case figure.LegendInRight:
		return render.Rect{X: area.Right() - m - b.w, Y: area.CenterY() - b.h/2, W: b.w, H: b.h}
	case figure.LegendInBottomRight:
		return render.Rect{X: area.Right() - m - b.w, Y: area.Bottom() - m - b.h, W: b.w, H: b.h}
	case figure.LegendInBottom:
		return render.Rect{X: area.CenterX() - b.w/2, Y: area.Bottom() - m - b.h, W: b.w, H: b.h}
	case figure.LegendInBottomLeft:
		return render.Rect{X: area.X + m, Y: area.Bottom() - m - b.h, W: b.w, H: b.h}
	case figure.LegendInLeft:
		return render.Rect{X: area.X + m, Y: area.CenterY() - b.h/2, W: b.w, H: b.h}
	default: // in-top-left
		return render.Rect{X: area.X + m, Y: area.Y + m, W: b.w, H: b.h}
	}
}

// draw emits the legend box and its entries.
func (b *legendBox) draw(sfc render.Surface, res *theme.Resolver) {
	r := b.rect
	fill := res.LegendFill()
	border := res.LegendBorder()
	sfc.Path(render.Path{
		SubPaths: [][]render.Point{{
			{X: r.X, Y: r.Y}, {X: r.Right(), Y: r.Y},
			{X: r.Right(), Y: r.Bottom()}, {X: r.X, Y: r.Bottom()},
		}},
		Closed: true,
		Fill:   &fill,
		Stroke: &border,
	})

	font := res.LegendFont()
	color := res.TextColor()
	for i := range b.entries {
		e := &b.entries[i]
		col := i % b.cols
		row := i / b.cols
		ex := r.X + theme.LegendPadding + float64(col)*(b.colW+theme.LegendHSpace)
		ey := r.Y + theme.LegendPadding + float64(row)*(b.rowH+theme.LegendVSpace)
		midY := ey + b.rowH/2

		switch e.kind {
		case swatchLine:
			stroke := e.stroke
			sfc.Path(render.Path{
				SubPaths: [][]render.Point{{
					{X: ex, Y: midY}, {X: ex + theme.LegendShapeWidth, Y: midY},
				}},
				Stroke: &stroke,
			})
		case swatchRect:
			fill := e.fill
			y0 := midY - theme.LegendShapeHeight/2
			y1 := midY + theme.LegendShapeHeight/2
			sfc.Path(render.Path{
				SubPaths: [][]render.Point{{
					{X: ex, Y: y0}, {X: ex + theme.LegendShapeWidth, Y: y0},
					{X: ex + theme.LegendShapeWidth, Y: y1}, {X: ex, Y: y1},
				}},
				Closed: true,
				Fill:   &fill,
			})
		case swatchMarker:
			fill := e.fill
			sfc.Marker(render.Marker{
				Pos:   render.Point{X: ex + theme.LegendShapeWidth/2, Y: midY},
				Shape: string(e.shape),
				Size:  e.size,
				Fill:  &fill,
			})
		}

		sfc.Text(render.TextRun{
			Pos:      render.Point{X: ex + theme.LegendShapeWidth + theme.LegendShapeSpacing, Y: midY},
			Text:     e.label,
			Font:     font,
			Color:    color,
			Anchor:   render.AnchorStart,
			Baseline: render.BaselineMiddle,
		})
	}
}
