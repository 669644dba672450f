package plot

import (
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/figment/pkg/bind"
	"github.com/matzehuels/figment/pkg/data"
	"github.com/matzehuels/figment/pkg/errors"
	"github.com/matzehuels/figment/pkg/figure"
	"github.com/matzehuels/figment/pkg/render"
)

func singlePlot(p *figure.Plot) *figure.Figure {
	return &figure.Figure{Plots: [][]*figure.Plot{{p}}}
}

func drawFrame(t *testing.T, fig *figure.Figure, src data.Source) *render.Frame {
	t.Helper()
	bound, err := bind.Bind(fig, src)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	rec := render.NewRecorder()
	if err := Draw(bound, rec, Options{}); err != nil {
		t.Fatalf("draw: %v", err)
	}
	if rec.ClipDepth() != 0 {
		t.Fatalf("unbalanced clips: depth %d", rec.ClipDepth())
	}
	return rec.Frame()
}

// seriesPaths returns the paths emitted inside the first clip region, which
// is where series geometry lives.
func seriesPaths(frame *render.Frame) []*render.Path {
	var paths []*render.Path
	depth := 0
	for _, p := range frame.Primitives {
		switch v := p.(type) {
		case *render.ClipPush:
			depth++
		case *render.ClipPop:
			depth--
		case *render.Path:
			if depth > 0 {
				paths = append(paths, v)
			}
		}
	}
	return paths
}

func seriesMarkers(frame *render.Frame) []*render.Marker {
	var ms []*render.Marker
	depth := 0
	for _, p := range frame.Primitives {
		switch v := p.(type) {
		case *render.ClipPush:
			depth++
		case *render.ClipPop:
			depth--
		case *render.Marker:
			if depth > 0 {
				ms = append(ms, v)
			}
		}
	}
	return ms
}

// =============================================================================
// Scenario: sine line with pi ticks
// =============================================================================

func TestDrawSineLine(t *testing.T) {
	n := 361
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i) * math.Pi / 180
		ys[i] = math.Sin(xs[i])
	}
	src := data.NewFrame().AddNums("x", xs...).AddNums("y", ys...)
	fig := singlePlot(&figure.Plot{
		Series: []figure.Series{&figure.Line{Name: "sin", X: "x", Y: "y"}},
		XAxes: []*figure.Axis{{
			Ticks: &figure.Ticks{Locator: figure.LocPiMultiple},
		}},
	})

	frame := drawFrame(t, fig, src)

	paths := seriesPaths(frame)
	if len(paths) != 1 {
		t.Fatalf("series paths = %d, want 1", len(paths))
	}
	if len(paths[0].SubPaths) != 1 {
		t.Fatalf("subpaths = %d, want 1 (no nulls, no splits)", len(paths[0].SubPaths))
	}
	if got := len(paths[0].SubPaths[0]); got != n {
		t.Errorf("vertices = %d, want %d", got, n)
	}

	// The pi formatter annotates the x axis.
	found := false
	for _, p := range frame.Primitives {
		if tr, ok := p.(*render.TextRun); ok && strings.Contains(tr.Text, "π") {
			found = true
			break
		}
	}
	if !found {
		t.Error("no π axis annotation drawn")
	}
}

func TestDrawLineNullSplits(t *testing.T) {
	src := data.NewFrame().
		AddNums("x", 0, 1, 2, 3, 4, 5).
		AddNums("y", 1, 2, math.NaN(), 4, 5, 6)
	fig := singlePlot(&figure.Plot{
		Series: []figure.Series{&figure.Line{X: "x", Y: "y"}},
	})

	paths := seriesPaths(drawFrame(t, fig, src))
	if len(paths) != 1 {
		t.Fatalf("series paths = %d, want 1", len(paths))
	}
	subs := paths[0].SubPaths
	if len(subs) != 2 {
		t.Fatalf("subpaths = %d, want 2 (split at null)", len(subs))
	}
	if len(subs[0]) != 2 || len(subs[1]) != 3 {
		t.Errorf("run lengths = %d, %d; want 2, 3", len(subs[0]), len(subs[1]))
	}
}

func TestDrawLineStepInterp(t *testing.T) {
	src := data.NewFrame().
		AddNums("x", 0, 1, 2).
		AddNums("y", 0, 1, 0)
	fig := singlePlot(&figure.Plot{
		Series: []figure.Series{&figure.Line{X: "x", Y: "y", Interp: figure.InterpStep}},
	})

	paths := seriesPaths(drawFrame(t, fig, src))
	if len(paths) != 1 {
		t.Fatalf("series paths = %d, want 1", len(paths))
	}
	run := paths[0].SubPaths[0]
	// n points plus n-1 inserted corner vertices.
	if len(run) != 5 {
		t.Fatalf("step vertices = %d, want 5", len(run))
	}
	// Each inserted vertex holds the previous y at the new x.
	if run[1].X != run[2].X || run[1].Y != run[0].Y {
		t.Errorf("corner vertex misplaced: %+v between %+v and %+v", run[1], run[0], run[2])
	}
}

// =============================================================================
// Scenario: three bars
// =============================================================================

func TestDrawBars(t *testing.T) {
	src := data.NewFrame().
		AddCats("city", "berlin", "paris", "tokyo").
		AddNums("pop", 3.6, 2.1, 13.9)
	fig := singlePlot(&figure.Plot{
		Series: []figure.Series{&figure.Bars{Cats: "city", Vals: []string{"pop"}}},
	})

	paths := seriesPaths(drawFrame(t, fig, src))
	if len(paths) != 1 {
		t.Fatalf("series paths = %d, want 1", len(paths))
	}
	bars := paths[0]
	if !bars.Closed || bars.Fill == nil {
		t.Error("bars should be closed filled rects")
	}
	if len(bars.SubPaths) != 3 {
		t.Fatalf("bars = %d, want 3", len(bars.SubPaths))
	}

	width := func(r []render.Point) float64 { return r[1].X - r[0].X }
	w0 := width(bars.SubPaths[0])
	if w0 <= 0 {
		t.Fatalf("bar width = %g, want positive", w0)
	}
	for i, r := range bars.SubPaths {
		if len(r) != 4 {
			t.Fatalf("bar %d has %d vertices, want 4", i, len(r))
		}
		if math.Abs(width(r)-w0) > 1e-9 {
			t.Errorf("bar %d width = %g, want %g", i, width(r), w0)
		}
		if r[0].Y != bars.SubPaths[0][0].Y {
			t.Errorf("bar %d baseline = %g, want %g", i, r[0].Y, bars.SubPaths[0][0].Y)
		}
	}
	gap01 := bars.SubPaths[1][0].X - bars.SubPaths[0][0].X
	gap12 := bars.SubPaths[2][0].X - bars.SubPaths[1][0].X
	if math.Abs(gap01-gap12) > 1e-9 {
		t.Errorf("bar spacing uneven: %g vs %g", gap01, gap12)
	}
}

func TestDrawGroupedBars(t *testing.T) {
	src := data.NewFrame().
		AddCats("q", "q1", "q2").
		AddNums("a", 1, 2).
		AddNums("b", 3, 4)
	fig := singlePlot(&figure.Plot{
		Series: []figure.Series{&figure.Bars{
			Cats: "q", Vals: []string{"a", "b"},
			GroupNames: []string{"A", "B"},
		}},
	})

	paths := seriesPaths(drawFrame(t, fig, src))
	if len(paths) != 2 {
		t.Fatalf("grouped bar paths = %d, want one per group", len(paths))
	}
	if paths[0].Fill.Color == paths[1].Fill.Color {
		t.Error("groups share a color, want distinct palette slots")
	}
	// Groups interleave within each category bin without overlap.
	aRight := paths[0].SubPaths[0][1].X
	bLeft := paths[1].SubPaths[0][0].X
	if bLeft < aRight-1e-9 {
		t.Errorf("group bars overlap: a right %g, b left %g", aRight, bLeft)
	}
}

// =============================================================================
// Scatter, histogram
// =============================================================================

func TestDrawScatter(t *testing.T) {
	src := data.NewFrame().
		AddNums("x", 1, 2, math.NaN(), 4).
		AddNums("y", 1, 4, 9, 16)
	fig := singlePlot(&figure.Plot{
		Series: []figure.Series{&figure.Scatter{X: "x", Y: "y"}},
	})

	ms := seriesMarkers(drawFrame(t, fig, src))
	if len(ms) != 3 {
		t.Fatalf("markers = %d, want 3 (null skipped)", len(ms))
	}
	if ms[0].Shape != "circle" {
		t.Errorf("default shape = %q, want circle", ms[0].Shape)
	}
}

func TestDrawHistogram(t *testing.T) {
	vals := make([]float64, 100)
	for i := range vals {
		vals[i] = float64(i % 10)
	}
	src := data.NewFrame().AddNums("v", vals...)
	fig := singlePlot(&figure.Plot{
		Series: []figure.Series{&figure.Histogram{Data: "v", Bins: 5}},
	})

	paths := seriesPaths(drawFrame(t, fig, src))
	if len(paths) != 1 {
		t.Fatalf("series paths = %d, want 1", len(paths))
	}
	run := paths[0].SubPaths[0]
	// Step outline: start and end on the baseline plus two vertices per bin.
	if len(run) != 2*5+2 {
		t.Fatalf("outline vertices = %d, want %d", len(run), 2*5+2)
	}
	if run[0].Y != run[len(run)-1].Y {
		t.Error("outline should start and end on the baseline")
	}
}

func TestDrawHistogramAllEqualValues(t *testing.T) {
	src := data.NewFrame().AddNums("v", 5, 5, 5, 5)
	fig := singlePlot(&figure.Plot{
		Series: []figure.Series{&figure.Histogram{Data: "v", Bins: 4}},
	})

	paths := seriesPaths(drawFrame(t, fig, src))
	if len(paths) != 1 {
		t.Fatalf("series paths = %d, want 1", len(paths))
	}
	run := paths[0].SubPaths[0]
	if len(run) != 2*4+2 {
		t.Fatalf("outline vertices = %d, want %d", len(run), 2*4+2)
	}
	// Every count lands in one bin, so exactly one bin rises off the baseline.
	base := run[0].Y
	raised := map[float64]bool{}
	for _, pt := range run[1 : len(run)-1] {
		if pt.Y != base {
			raised[pt.Y] = true
		}
	}
	if len(raised) != 1 {
		t.Errorf("raised bin levels = %d, want 1", len(raised))
	}
}

// =============================================================================
// Errors
// =============================================================================

func TestDrawUnboundedAxis(t *testing.T) {
	src := data.NewFrame().
		AddNums("x", 1, 2, 3).
		AddNums("y", math.NaN(), math.NaN(), math.NaN())
	fig := singlePlot(&figure.Plot{
		Series: []figure.Series{&figure.Line{X: "x", Y: "y"}},
	})
	bound, err := bind.Bind(fig, src)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}

	err = Draw(bound, render.NewRecorder(), Options{})
	if !errors.Is(err, errors.ErrCodeUnboundedAxis) {
		t.Fatalf("err = %v, want UNBOUNDED_AXIS", err)
	}
}

func TestDrawLogInvalidDomain(t *testing.T) {
	src := data.NewFrame().
		AddNums("x", -1, 0, 1).
		AddNums("y", 1, 2, 3)
	fig := singlePlot(&figure.Plot{
		Series: []figure.Series{&figure.Line{X: "x", Y: "y"}},
		XAxes:  []*figure.Axis{{Scale: figure.ScaleSpec{Kind: figure.ScaleLog}}},
	})
	bound, err := bind.Bind(fig, src)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}

	err = Draw(bound, render.NewRecorder(), Options{})
	if !errors.Is(err, errors.ErrCodeInvalidDomain) {
		t.Fatalf("err = %v, want INVALID_DOMAIN", err)
	}
}

func TestDrawBarsNumericConflict(t *testing.T) {
	src := data.NewFrame().
		AddCats("c", "a", "b").
		AddNums("v", 1, 2).
		AddNums("x", 1, 2).
		AddNums("y", 3, 4)
	fig := singlePlot(&figure.Plot{
		Series: []figure.Series{
			&figure.Bars{Cats: "c", Vals: []string{"v"}},
			&figure.Line{X: "x", Y: "y"},
		},
	})
	bound, err := bind.Bind(fig, src)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}

	err = Draw(bound, render.NewRecorder(), Options{})
	if !errors.Is(err, errors.ErrCodeInconsistentData) {
		t.Fatalf("err = %v, want INCONSISTENT_DATA", err)
	}
}

// =============================================================================
// Annotations, legends
// =============================================================================

func TestDrawAnnotations(t *testing.T) {
	src := data.NewFrame().
		AddNums("x", 0, 10).
		AddNums("y", 0, 10)
	fig := singlePlot(&figure.Plot{
		Series: []figure.Series{&figure.Line{X: "x", Y: "y"}},
		Annotations: []figure.Annotation{
			&figure.Label{X: 5, Y: 5, Text: "midpoint"},
			&figure.InfiniteLine{Orient: figure.LineHorizontal, At: 3, ZPos: figure.ZBelow},
			&figure.MarkerAnnot{X: 2, Y: 2},
		},
	})

	frame := drawFrame(t, fig, src)

	var labels, markers, paths int
	depth := 0
	for _, p := range frame.Primitives {
		switch v := p.(type) {
		case *render.ClipPush:
			depth++
		case *render.ClipPop:
			depth--
		case *render.TextRun:
			if depth > 0 && v.Text == "midpoint" {
				labels++
			}
		case *render.Marker:
			if depth > 0 {
				markers++
			}
		case *render.Path:
			if depth > 0 {
				paths++
			}
		}
	}
	if labels != 1 {
		t.Errorf("label annotations = %d, want 1", labels)
	}
	if markers != 1 {
		t.Errorf("marker annotations = %d, want 1", markers)
	}
	if paths != 2 {
		t.Errorf("clipped paths = %d, want 2 (below line + series)", paths)
	}
}

func TestDrawArrowAnnotation(t *testing.T) {
	src := data.NewFrame().
		AddNums("x", 0, 10).
		AddNums("y", 0, 10)
	fig := singlePlot(&figure.Plot{
		Series: []figure.Series{&figure.Line{X: "x", Y: "y"}},
		Annotations: []figure.Annotation{
			&figure.Arrow{X: 5, Y: 5, DX: 30, DY: -40, Text: "peak"},
		},
	})

	frame := drawFrame(t, fig, src)

	var arrow *render.Path
	var label *render.TextRun
	depth := 0
	for _, p := range frame.Primitives {
		switch v := p.(type) {
		case *render.ClipPush:
			depth++
		case *render.ClipPop:
			depth--
		case *render.Path:
			if depth > 0 && len(v.SubPaths) == 2 {
				arrow = v
			}
		case *render.TextRun:
			if v.Text == "peak" {
				label = v
			}
		}
	}
	if arrow == nil {
		t.Fatal("no arrow path drawn inside the plot clip")
	}
	shaft, head := arrow.SubPaths[0], arrow.SubPaths[1]
	if len(shaft) != 2 || len(head) != 3 {
		t.Fatalf("shaft/head vertices = %d/%d, want 2/3", len(shaft), len(head))
	}
	tip := shaft[1]
	if head[1] != tip {
		t.Errorf("head apex %v, want the shaft tip %v", head[1], tip)
	}
	tail := shaft[0]
	if got := tail.X - tip.X; math.Abs(got-30) > 1e-9 {
		t.Errorf("tail x offset = %g, want 30", got)
	}
	if got := tail.Y - tip.Y; math.Abs(got+40) > 1e-9 {
		t.Errorf("tail y offset = %g, want -40", got)
	}
	if label == nil {
		t.Fatal("no arrow text drawn")
	}
	if label.Pos != tail {
		t.Errorf("text at %v, want the tail %v", label.Pos, tail)
	}
}

func TestDrawLegend(t *testing.T) {
	src := data.NewFrame().
		AddNums("x", 0, 1).
		AddNums("a", 1, 2).
		AddNums("b", 2, 1)
	fig := singlePlot(&figure.Plot{
		Series: []figure.Series{
			&figure.Line{Name: "first", X: "x", Y: "a"},
			&figure.Line{Name: "second", X: "x", Y: "b"},
		},
		Legend: &figure.Legend{},
	})

	frame := drawFrame(t, fig, src)
	var found int
	for _, p := range frame.Primitives {
		if tr, ok := p.(*render.TextRun); ok && (tr.Text == "first" || tr.Text == "second") {
			found++
		}
	}
	if found != 2 {
		t.Errorf("legend labels = %d, want 2", found)
	}
}

func TestDrawUnlabeledSeriesSkipsLegend(t *testing.T) {
	src := data.NewFrame().AddNums("x", 0, 1).AddNums("y", 1, 2)
	fig := singlePlot(&figure.Plot{
		Series: []figure.Series{&figure.Line{X: "x", Y: "y"}},
		Legend: &figure.Legend{},
	})

	bound, err := bind.Bind(fig, src)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	lay, err := layoutFigure(bound, Options{})
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	if lay.cells[0][0].legend != nil {
		t.Error("legend laid out despite no labeled series")
	}
}
