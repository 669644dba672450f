package plot

import (
	"testing"

	"github.com/matzehuels/figment/pkg/bind"
	"github.com/matzehuels/figment/pkg/data"
	"github.com/matzehuels/figment/pkg/figure"
)

func layoutOf(t *testing.T, fig *figure.Figure, src data.Source) *figLayout {
	t.Helper()
	bound, err := bind.Bind(fig, src)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	lay, err := layoutFigure(bound, Options{})
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	return lay
}

func lineFig(xs, ys []float64) (*figure.Figure, data.Source) {
	src := data.NewFrame().AddNums("x", xs...).AddNums("y", ys...)
	return singlePlot(&figure.Plot{
		Series: []figure.Series{&figure.Line{X: "x", Y: "y"}},
	}), src
}

func TestLayoutTinyCanvasClamps(t *testing.T) {
	fig, src := lineFig([]float64{0, 1, 2}, []float64{0, 1, 4})
	fig.Width, fig.Height = 50, 50
	fig.Plots[0][0].Title = "crowded"
	fig.Plots[0][0].XAxes = []*figure.Axis{{Title: "time"}}
	fig.Plots[0][0].YAxes = []*figure.Axis{{Title: "value"}}

	lay := layoutOf(t, fig, src)
	area := lay.cells[0][0].area
	if area.W <= 0 || area.H <= 0 {
		t.Fatalf("plot area = %gx%g, want positive", area.W, area.H)
	}
	cell := lay.cells[0][0].cell
	if area.X < cell.X || area.Right() > cell.Right()+1e-9 ||
		area.Y < cell.Y || area.Bottom() > cell.Bottom()+1e-9 {
		t.Errorf("plot area %+v escapes its cell %+v", area, cell)
	}
}

func TestLayoutDeterministicForEqualLabelShapes(t *testing.T) {
	// Same tick positions and label character counts, different data.
	ticks := &figure.Ticks{Locator: figure.LocFixedStep, Step: 2, Formatter: figure.FmtPrec}
	build := func(ys []float64) (*figure.Figure, data.Source) {
		fig, src := lineFig([]float64{0, 2, 4, 6, 8}, ys)
		fig.Plots[0][0].XAxes = []*figure.Axis{{Ticks: ticks}}
		fig.Plots[0][0].YAxes = []*figure.Axis{{Ticks: ticks}}
		return fig, src
	}

	figA, srcA := build([]float64{1, 3, 5, 7, 9})
	figB, srcB := build([]float64{0, 2, 4, 6, 8})

	areaA := layoutOf(t, figA, srcA).cells[0][0].area
	areaB := layoutOf(t, figB, srcB).cells[0][0].area
	if areaA != areaB {
		t.Errorf("band structure differs: %+v vs %+v", areaA, areaB)
	}
}

func TestLayoutBands(t *testing.T) {
	fig, src := lineFig([]float64{0, 1}, []float64{0, 1})
	base := layoutOf(t, fig, src).cells[0][0].area

	// An axis title reserves an extra band.
	figT, srcT := lineFig([]float64{0, 1}, []float64{0, 1})
	figT.Plots[0][0].XAxes = []*figure.Axis{{Title: "time"}}
	withTitle := layoutOf(t, figT, srcT).cells[0][0].area
	if withTitle.H >= base.H {
		t.Errorf("axis title did not shrink the plot area: %g >= %g", withTitle.H, base.H)
	}

	// A figure title reserves a band at the top.
	figF, srcF := lineFig([]float64{0, 1}, []float64{0, 1})
	figF.Title = "headline"
	withFig := layoutOf(t, figF, srcF).cells[0][0].area
	if withFig.Y <= base.Y {
		t.Errorf("figure title did not push the plot area down: %g <= %g", withFig.Y, base.Y)
	}
}

func TestLayoutStackedAxes(t *testing.T) {
	fig, src := lineFig([]float64{0, 1}, []float64{0, 1})
	single := layoutOf(t, fig, src).cells[0][0].area

	fig2, src2 := lineFig([]float64{0, 1}, []float64{0, 1})
	fig2.Plots[0][0].YAxes = []*figure.Axis{{}, {Title: "second"}}
	stacked := layoutOf(t, fig2, src2).cells[0][0]
	if stacked.area.W >= single.W {
		t.Errorf("stacked y axes did not shrink the plot width: %g >= %g", stacked.area.W, single.W)
	}
	if len(stacked.yAxes) != 2 {
		t.Fatalf("y axes = %d, want 2", len(stacked.yAxes))
	}
}

func TestLayoutGridCells(t *testing.T) {
	src := data.NewFrame().AddNums("x", 0, 1).AddNums("y", 0, 1)
	p := func() *figure.Plot {
		return &figure.Plot{Series: []figure.Series{&figure.Line{X: "x", Y: "y"}}}
	}
	fig := &figure.Figure{Plots: [][]*figure.Plot{{p(), p()}, {p(), p()}}}

	lay := layoutOf(t, fig, src)
	c00 := lay.cells[0][0].cell
	c01 := lay.cells[0][1].cell
	c10 := lay.cells[1][0].cell
	if c00.W != c01.W || c00.H != c10.H {
		t.Errorf("cells unequal: %+v %+v %+v", c00, c01, c10)
	}
	if c01.X <= c00.X || c10.Y <= c00.Y {
		t.Errorf("cells out of order: %+v %+v %+v", c00, c01, c10)
	}
}

func TestLayoutOutLegendReservesBand(t *testing.T) {
	fig, src := lineFig([]float64{0, 1}, []float64{0, 1})
	fig.Plots[0][0].Series = []figure.Series{&figure.Line{Name: "s", X: "x", Y: "y"}}
	base := layoutOf(t, fig, src).cells[0][0].area

	fig2, src2 := lineFig([]float64{0, 1}, []float64{0, 1})
	fig2.Plots[0][0].Series = []figure.Series{&figure.Line{Name: "s", X: "x", Y: "y"}}
	fig2.Plots[0][0].Legend = &figure.Legend{Pos: figure.LegendOutRight}
	pl := layoutOf(t, fig2, src2).cells[0][0]
	if pl.area.W >= base.W {
		t.Errorf("out legend did not shrink the plot area: %g >= %g", pl.area.W, base.W)
	}
	if pl.legend == nil {
		t.Fatal("legend missing")
	}
	if pl.legend.rect.X < pl.area.Right() {
		t.Errorf("out-right legend at %g overlaps the plot area ending at %g", pl.legend.rect.X, pl.area.Right())
	}
}

func TestLayoutInLegendFloats(t *testing.T) {
	fig, src := lineFig([]float64{0, 1}, []float64{0, 1})
	fig.Plots[0][0].Series = []figure.Series{&figure.Line{Name: "s", X: "x", Y: "y"}}
	base := layoutOf(t, fig, src).cells[0][0].area

	fig2, src2 := lineFig([]float64{0, 1}, []float64{0, 1})
	fig2.Plots[0][0].Series = []figure.Series{&figure.Line{Name: "s", X: "x", Y: "y"}}
	fig2.Plots[0][0].Legend = &figure.Legend{Pos: figure.LegendInTopRight}
	pl := layoutOf(t, fig2, src2).cells[0][0]
	if pl.area != base {
		t.Errorf("in legend changed the plot area: %+v vs %+v", pl.area, base)
	}
	r := pl.legend.rect
	if r.X < pl.area.X || r.Right() > pl.area.Right() {
		t.Errorf("in legend %+v outside plot area %+v", r, pl.area)
	}
}

func TestLayoutFigureLegend(t *testing.T) {
	fig, src := lineFig([]float64{0, 1}, []float64{0, 1})
	fig.Plots[0][0].Series = []figure.Series{&figure.Line{Name: "s", X: "x", Y: "y"}}
	fig.Legend = &figure.Legend{Pos: figure.LegendOutTop}

	lay := layoutOf(t, fig, src)
	if lay.legend == nil {
		t.Fatal("figure legend missing")
	}
	if lay.grid.Y <= lay.content.Y {
		t.Error("figure legend band not reserved at the top")
	}
}

func TestFitBands(t *testing.T) {
	area, lo, hi := fitBands(100, 20, 10)
	if area != 70 || lo != 20 || hi != 10 {
		t.Errorf("roomy fit = %g, %g, %g", area, lo, hi)
	}

	// Oversized bands shrink proportionally, area stays positive.
	area, lo, hi = fitBands(30, 40, 20)
	if area <= 0 {
		t.Fatalf("area = %g, want positive", area)
	}
	if got := area + lo + hi; got > 30+1e-9 {
		t.Errorf("fitted total = %g, want <= 30", got)
	}
	if lo/hi < 1.9 || lo/hi > 2.1 {
		t.Errorf("band ratio not preserved: %g / %g", lo, hi)
	}
}

func TestPaletteSlots(t *testing.T) {
	series := []bind.BoundSeries{
		&bind.Line{Series: &figure.Line{}},
		&bind.Bars{Series: &figure.Bars{Vals: []string{"a", "b"}}, Vals: make([]data.NumColumn, 2)},
		&bind.Scatter{Series: &figure.Scatter{}},
	}
	slots := paletteSlots(series)
	want := []int{0, 1, 3}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("slots = %v, want %v", slots, want)
			break
		}
	}
}
