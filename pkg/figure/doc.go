// Package figure defines the declarative design model for 2-D data plots.
//
// A [Figure] describes what to draw — plots, axes, series, legends,
// annotations — without holding any data values. Series reference data
// columns symbolically by name; the bind package resolves those references
// against a data.Source at render time. This separation lets the same design
// be re-rendered against changing data on every redraw.
//
// # Architecture
//
// The model is a plain value tree:
//
//	Figure
//	├── Plot (grid of one or more)
//	│   ├── Series (Line | Scatter | Bars | Histogram)
//	│   ├── XAxes / YAxes (scale, ticks, grid)
//	│   ├── Legend (optional)
//	│   └── Annotations (Label | InfiniteLine | MarkerAnnot)
//	└── figure-level legend and title
//
// Series and annotation variants are closed unions: the render translator
// switches exhaustively over them, so adding a variant is a deliberate,
// compiler-assisted change.
//
// Style fields on design elements are optional overrides. Unset fields
// resolve through the theme fallback chain (series override, plot override,
// figure override, theme default); see the theme package.
//
// # Usage
//
//	fig := &figure.Figure{
//	    Title: "Wave",
//	    Plots: [][]*figure.Plot{{{
//	        Series: []figure.Series{
//	            &figure.Line{Name: "sin", X: "angle", Y: "value"},
//	        },
//	    }}},
//	}
//	if err := fig.Validate(); err != nil {
//	    // INCONSISTENT_DESIGN with context
//	}
package figure
