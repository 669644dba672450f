package bind

import (
	"testing"

	"github.com/matzehuels/figment/pkg/data"
	"github.com/matzehuels/figment/pkg/errors"
	"github.com/matzehuels/figment/pkg/figure"
)

func singlePlot(series ...figure.Series) *figure.Figure {
	return &figure.Figure{
		Plots: [][]*figure.Plot{{{Series: series}}},
	}
}

func testFrame() *data.Frame {
	return data.NewFrame().
		AddNums("x", 0, 1, 2, 3).
		AddNums("y", 10, 12, 9, 14).
		AddNums("short", 1, 2).
		AddCats("region", "north", "south", "east", "west").
		AddNums("sales", 100, 80, 120, 95)
}

func TestBindLine(t *testing.T) {
	fig := singlePlot(&figure.Line{Name: "trend", X: "x", Y: "y"})
	bound, err := Bind(fig, testFrame())
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}

	if len(bound.Plots) != 1 || len(bound.Plots[0]) != 1 {
		t.Fatalf("bound grid shape %dx%d", len(bound.Plots), len(bound.Plots[0]))
	}
	bp := bound.Plots[0][0]
	if len(bp.Series) != 1 {
		t.Fatalf("bound series count = %d", len(bp.Series))
	}
	line, ok := bp.Series[0].(*Line)
	if !ok {
		t.Fatalf("bound series type = %T", bp.Series[0])
	}
	if line.X.Len() != 4 || line.Y.Len() != 4 {
		t.Errorf("bound lengths = %d, %d", line.X.Len(), line.Y.Len())
	}
	if line.Design() != figure.Series(line.Series) {
		t.Error("Design() should return the source series")
	}
}

func TestBindBars(t *testing.T) {
	fig := singlePlot(&figure.Bars{Cats: "region", Vals: []string{"sales"}})
	bound, err := Bind(fig, testFrame())
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}

	bars := bound.Plots[0][0].Series[0].(*Bars)
	if bars.Cats.Len() != 4 {
		t.Errorf("category count = %d", bars.Cats.Len())
	}
	if len(bars.Vals) != 1 || bars.Vals[0].Len() != 4 {
		t.Errorf("value groups = %v", bars.Vals)
	}
}

func TestBindHistogram(t *testing.T) {
	fig := singlePlot(&figure.Histogram{Data: "y"})
	bound, err := Bind(fig, testFrame())
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	hist := bound.Plots[0][0].Series[0].(*Histogram)
	if hist.Data.Len() != 4 {
		t.Errorf("sample count = %d", hist.Data.Len())
	}
}

func TestBindErrors(t *testing.T) {
	tests := []struct {
		name   string
		series figure.Series
		code   errors.Code
	}{
		{
			name:   "missing x column",
			series: &figure.Line{X: "nope", Y: "y"},
			code:   errors.ErrCodeMissingColumn,
		},
		{
			name:   "missing y column",
			series: &figure.Scatter{X: "x", Y: "nope"},
			code:   errors.ErrCodeMissingColumn,
		},
		{
			name:   "length mismatch",
			series: &figure.Line{X: "x", Y: "short"},
			code:   errors.ErrCodeLengthMismatch,
		},
		{
			name:   "bars value shorter than cats",
			series: &figure.Bars{Cats: "region", Vals: []string{"short"}},
			code:   errors.ErrCodeLengthMismatch,
		},
		{
			name:   "categorical where numeric required",
			series: &figure.Line{X: "region", Y: "y"},
			code:   errors.ErrCodeTypeMismatch,
		},
		{
			name:   "numeric where categorical required",
			series: &figure.Bars{Cats: "sales", Vals: []string{"y"}},
			code:   errors.ErrCodeTypeMismatch,
		},
		{
			name:   "histogram on categorical",
			series: &figure.Histogram{Data: "region"},
			code:   errors.ErrCodeTypeMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Bind(singlePlot(tt.series), testFrame())
			if err == nil {
				t.Fatal("Bind should fail")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %v, want %v (err: %v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestBindNilSource(t *testing.T) {
	fig := singlePlot(&figure.Line{X: "x", Y: "y"})
	_, err := Bind(fig, nil)
	if err == nil {
		t.Fatal("Bind should fail without a data source")
	}
	if !errors.Is(err, errors.ErrCodeMissingDataSource) {
		t.Errorf("error code = %v, want MISSING_DATA_SOURCE", errors.GetCode(err))
	}

	// A figure with no series needs no data source.
	empty := singlePlot()
	if _, err := Bind(empty, nil); err != nil {
		t.Errorf("Bind without series: %v", err)
	}
}

func TestBindInvalidDesign(t *testing.T) {
	fig := &figure.Figure{}
	if _, err := Bind(fig, testFrame()); err == nil {
		t.Fatal("Bind should reject a figure without plots")
	}

	fig = singlePlot(&figure.Line{X: "x", Y: "y"})
	fig.Padding = -1
	_, err := Bind(fig, testFrame())
	if !errors.Is(err, errors.ErrCodeInconsistentDesign) {
		t.Errorf("error code = %v, want INCONSISTENT_DESIGN", errors.GetCode(err))
	}
}

func TestBindHoldsViewsNotCopies(t *testing.T) {
	frame := testFrame()
	fig := singlePlot(&figure.Line{X: "x", Y: "y"})
	bound, err := Bind(fig, frame)
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}

	col, _ := frame.Column("y")
	src := col.(data.NumColumn)
	line := bound.Plots[0][0].Series[0].(*Line)
	if &line.Y[0] != &src[0] {
		t.Error("bound column should alias the source column")
	}
}
