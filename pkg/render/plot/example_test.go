package plot_test

import (
	"fmt"

	"github.com/matzehuels/figment/pkg/bind"
	"github.com/matzehuels/figment/pkg/data"
	"github.com/matzehuels/figment/pkg/figure"
	"github.com/matzehuels/figment/pkg/render"
	"github.com/matzehuels/figment/pkg/render/plot"
)

func ExampleDraw() {
	src := data.NewFrame().
		AddNums("x", 0, 1, 2, 3).
		AddNums("y", 0, 1, 4, 9)
	fig := &figure.Figure{
		Plots: [][]*figure.Plot{{{
			Series: []figure.Series{&figure.Line{Name: "squares", X: "x", Y: "y"}},
		}}},
	}

	bound, err := bind.Bind(fig, src)
	if err != nil {
		fmt.Println("bind:", err)
		return
	}
	rec := render.NewRecorder()
	if err := plot.Draw(bound, rec, plot.Options{}); err != nil {
		fmt.Println("draw:", err)
		return
	}

	frame := rec.Frame()
	fmt.Printf("canvas: %gx%g\n", frame.Width, frame.Height)
	fmt.Println("has primitives:", frame.PrimitiveCount() > 0)
	// Output:
	// canvas: 800x600
	// has primitives: true
}
