package plot

import (
	"github.com/matzehuels/figment/pkg/bind"
	"github.com/matzehuels/figment/pkg/figure"
	"github.com/matzehuels/figment/pkg/render"
	"github.com/matzehuels/figment/pkg/style"
	"github.com/matzehuels/figment/pkg/text"
	"github.com/matzehuels/figment/pkg/theme"
)

// Fixed layout spacing, in pixels.
const (
	figTitleMargin     = 12.0
	axisMargin         = 10.0
	axisTitleMargin    = 8.0
	axisSpineWidth     = 1.0
	tickSize           = 4.0
	tickLabelMargin    = 4.0
	minorTickSize      = 2.0
	minorTickLineWidth = 0.5

	// minPlotExtent is the smallest plot-area side. When bands would leave
	// less, they shrink proportionally instead.
	minPlotExtent = 4.0
)

// Options configures a draw pass. The zero value is valid.
type Options struct {
	// Measurer measures text for band allocation. Nil uses [text.Ratio].
	Measurer text.Measurer

	// Theme overrides the theme named by the figure.
	Theme *theme.Theme
}

// textBox is a measured piece of text.
type textBox struct {
	text string
	font style.Font
	w, h float64
}

// figLayout is the fully allocated figure: every band subtracted, every
// coordinate map built.
type figLayout struct {
	fig    *figure.Figure
	res    *theme.Resolver
	m      text.Measurer
	width  float64
	height float64

	title   *textBox
	content render.Rect // inside the padding
	grid    render.Rect // content minus figure title and figure legend bands
	legend  *legendBox
	cells   [][]*plotLayout
}

// plotLayout is one allocated subplot cell.
type plotLayout struct {
	bp    *bind.BoundPlot
	slots []int // palette slot per series

	cell  render.Rect
	area  render.Rect
	title *textBox

	// xAxes and yAxes are indexed like the design's axis lists.
	xAxes []*axisLayout
	yAxes []*axisLayout

	legend *legendBox
}

// layoutFigure runs the two layout passes and returns the allocated figure.
func layoutFigure(bound *bind.Bound, opts Options) (*figLayout, error) {
	fig := bound.Figure

	m := opts.Measurer
	if m == nil {
		m = text.Ratio{}
	}
	th := opts.Theme
	if th == nil {
		var err error
		if th, err = theme.Lookup(fig.Theme); err != nil {
			return nil, err
		}
	}
	res := theme.NewResolver(th)

	width := fig.Width
	if width == 0 {
		width = figure.DefaultWidth
	}
	height := fig.Height
	if height == 0 {
		height = figure.DefaultHeight
	}
	padding := fig.Padding
	if padding == 0 {
		padding = figure.DefaultPadding
	}

	lay := &figLayout{
		fig:    fig,
		res:    res,
		m:      m,
		width:  width,
		height: height,
		content: render.Rect{
			X: padding, Y: padding,
			W: max(1, width-2*padding),
			H: max(1, height-2*padding),
		},
	}

	lay.grid = lay.content
	if fig.Title != "" {
		lay.title = measure(m, fig.Title, res.TitleFont())
		band := min(lay.title.h+figTitleMargin, lay.grid.H/2)
		lay.grid.Y += band
		lay.grid.H -= band
	}

	if fig.Legend != nil {
		lay.legend = buildFigureLegend(bound, res, m, lay.grid)
		if lay.legend != nil {
			switch lay.legend.pos {
			case figure.LegendOutRight:
				band := min(lay.legend.w+theme.LegendMargin, lay.grid.W/2)
				lay.legend.rect = render.Rect{
					X: lay.grid.Right() - lay.legend.w,
					Y: lay.grid.CenterY() - lay.legend.h/2,
					W: lay.legend.w, H: lay.legend.h,
				}
				lay.grid.W -= band
			default: // out-top
				band := min(lay.legend.h+theme.LegendMargin, lay.grid.H/2)
				lay.legend.rect = render.Rect{
					X: lay.grid.CenterX() - lay.legend.w/2,
					Y: lay.grid.Y,
					W: lay.legend.w, H: lay.legend.h,
				}
				lay.grid.Y += band
				lay.grid.H -= band
			}
		}
	}

	rows := len(fig.Plots)
	cellH := lay.grid.H / float64(rows)
	lay.cells = make([][]*plotLayout, rows)
	for r, row := range fig.Plots {
		cellW := lay.grid.W / float64(len(row))
		lay.cells[r] = make([]*plotLayout, len(row))
		for c := range row {
			cell := render.Rect{
				X: lay.grid.X + float64(c)*cellW,
				Y: lay.grid.Y + float64(r)*cellH,
				W: cellW, H: cellH,
			}
			pl, err := layoutPlot(bound.Plots[r][c], cell, res, m)
			if err != nil {
				return nil, err
			}
			lay.cells[r][c] = pl
		}
	}
	return lay, nil
}

// layoutPlot allocates one subplot cell: estimate bands from provisional
// ticks, fit them into the cell, then build the exact axes over the final
// plot area.
func layoutPlot(bp *bind.BoundPlot, cell render.Rect, res *theme.Resolver, m text.Measurer) (*plotLayout, error) {
	pl := &plotLayout{bp: bp, cell: cell, slots: paletteSlots(bp.Series)}
	p := bp.Plot

	doms, err := fitDomains(bp)
	if err != nil {
		return nil, err
	}

	pl.xAxes = make([]*axisLayout, p.XAxisCount())
	for i := range pl.xAxes {
		if pl.xAxes[i], err = newAxisLayout(p.XAxis(i), doms.x[i], false, m, res); err != nil {
			return nil, err
		}
	}
	pl.yAxes = make([]*axisLayout, p.YAxisCount())
	for i := range pl.yAxes {
		if pl.yAxes[i], err = newAxisLayout(p.YAxis(i), doms.y[i], true, m, res); err != nil {
			return nil, err
		}
	}

	// Measurement pass: provisional ticks over the unextended domains.
	for _, ax := range pl.xAxes {
		ax.estimate()
	}
	for _, ax := range pl.yAxes {
		ax.estimate()
	}

	var top, bottom, left, right float64
	if p.Title != "" {
		pl.title = measure(m, p.Title, res.TitleFont())
		top += pl.title.h + figTitleMargin
	}
	bottom += stackSize(pl.xAxes, false)
	top += stackSize(pl.xAxes, true)
	left += stackSize(pl.yAxes, false)
	right += stackSize(pl.yAxes, true)

	pl.legend = buildPlotLegend(bp, pl.slots, res, m, cell.W)
	if pl.legend != nil {
		switch pl.legend.pos {
		case figure.LegendOutBottom:
			bottom += pl.legend.h + theme.LegendMargin
		case figure.LegendOutTop:
			top += pl.legend.h + theme.LegendMargin
		case figure.LegendOutLeft:
			left += pl.legend.w + theme.LegendMargin
		case figure.LegendOutRight:
			right += pl.legend.w + theme.LegendMargin
		}
	}

	// Allocation: clamp bands so the plot area keeps a positive extent.
	areaW, left, right := fitBands(cell.W, left, right)
	areaH, top, bottom := fitBands(cell.H, top, bottom)
	pl.area = render.Rect{X: cell.X + left, Y: cell.Y + top, W: areaW, H: areaH}

	// Exact pass: coordinate maps over the final area, drawn ticks from the
	// inset-extended bounds.
	ins := resolveInsets(p, doms.vertBars)
	for _, ax := range pl.xAxes {
		if err := ax.build(areaW, ins.x(ax.ax.Scale.Range)); err != nil {
			return nil, err
		}
	}
	for _, ax := range pl.yAxes {
		if err := ax.build(areaH, ins.y(ax.ax.Scale.Range)); err != nil {
			return nil, err
		}
	}

	if pl.legend != nil {
		pl.legend.rect = pl.placeLegend()
	}
	return pl, nil
}

// stackSize sums the band of the axes on one side, with stacking margins
// between consecutive axes.
func stackSize(axes []*axisLayout, opposite bool) float64 {
	sum := 0.0
	n := 0
	for _, ax := range axes {
		if ax.opposite != opposite {
			continue
		}
		if n > 0 {
			sum += axisMargin + axisSpineWidth
		}
		sum += ax.size
		n++
	}
	return sum
}

// fitBands fits a low and high band into the total extent, preserving a
// positive area between them. Oversized bands shrink proportionally.
func fitBands(total, lo, hi float64) (area, fitLo, fitHi float64) {
	floor := min(minPlotExtent, total/2)
	area = total - lo - hi
	if area >= floor {
		return area, lo, hi
	}
	area = floor
	sum := lo + hi
	if sum <= 0 {
		return total, 0, 0
	}
	s := (total - area) / sum
	return area, lo * s, hi * s
}

func measure(m text.Measurer, s string, font style.Font) *textBox {
	sz := m.Measure(s, font)
	return &textBox{text: s, font: font, w: sz.W, h: sz.H}
}
