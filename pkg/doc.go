// Package pkg provides the core libraries for Figment figure rendering.
//
// # Overview
//
// Figment turns declarative figure descriptions into a portable stream of
// drawing primitives. The pkg directory is organized into four main areas:
//
//  1. Description - the figure model and its inputs ([figure], [data], [style])
//  2. Resolution - binding, scales, themes, text metrics ([bind], [scale], [theme], [text])
//  3. Rendering - layout and primitive emission ([render], [render/plot])
//  4. Orchestration - pipeline, caching, file I/O ([pipeline], [cache], [io])
//
// # Architecture
//
// The typical data flow through Figment:
//
//	Design (TOML/JSON) + Data (columnar JSON)
//	         ↓
//	    [bind] package (resolve column references)
//	         ↓
//	    [render/plot] package (two-pass layout + drawing translation)
//	         ↓
//	    [render] package (primitive stream, JSON frame encoding)
//
// # Quick Start
//
// Bind a design to data and record the primitive stream:
//
//	import (
//	    "github.com/matzehuels/figment/pkg/bind"
//	    "github.com/matzehuels/figment/pkg/data"
//	    "github.com/matzehuels/figment/pkg/figure"
//	    "github.com/matzehuels/figment/pkg/render"
//	    "github.com/matzehuels/figment/pkg/render/plot"
//	)
//
//	src := data.NewFrame().
//	    AddNums("x", 0, 1, 2, 3).
//	    AddNums("y", 0, 1, 4, 9)
//	fig := &figure.Figure{
//	    Plots: [][]*figure.Plot{{{
//	        Series: []figure.Series{&figure.Line{X: "x", Y: "y"}},
//	    }}},
//	}
//
//	bound, _ := bind.Bind(fig, src)
//	rec := render.NewRecorder()
//	_ = plot.Draw(bound, rec, plot.Options{})
//	frame := rec.Frame()
//
// # Main Packages
//
// ## Description
//
// [figure] - The declarative design model: figure, subplot grid, axes,
// series (line, scatter, bars, histogram), legends, and annotations.
//
// [data] - The tabular data boundary: a Source capability yielding numeric
// and categorical column views, with NaN as the null marker.
//
// [style] - Color, stroke, fill, and font value types shared by designs,
// themes, and primitives.
//
// ## Resolution
//
// [bind] - Resolves a design's symbolic column references against a data
// source into typed views, reporting missing columns and length mismatches.
//
// [scale] - Domains, linear/log/categorical coordinate maps, tick locators,
// and label formatters.
//
// [theme] - Built-in and TOML-loadable themes with a never-failing style
// resolver.
//
// [text] - Text measurement capability with a ratio estimator; [text/canvasmeasure]
// provides glyph-accurate measurement, [fonts] the embedded faces.
//
// ## Rendering
//
// [render] - The primitive vocabulary (paths, text runs, markers, clips),
// the Surface boundary, the Recorder, and JSON frame encoding.
//
// [render/plot] - The layout engine and drawing translator: two layout
// passes, band allocation that never fails on canvas size, and series
// geometry generation.
//
// ## Orchestration
//
// [pipeline] - The bind → layout → draw → encode pipeline with content-hash
// caching, used by the CLI and library consumers.
//
// [cache] - Cache backends (file, null) and stage key generation.
//
// [io] - Design and data file loading, frame export.
//
// [errors] - Structured errors with machine-readable codes shared across
// all packages.
//
// [observability] - Optional hooks for metrics and tracing around pipeline
// stages.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...         # All tests
//	go test ./pkg/render/...  # Specific package
//	go test -run Example      # Examples only
//
// [figure]: https://pkg.go.dev/github.com/matzehuels/figment/pkg/figure
// [data]: https://pkg.go.dev/github.com/matzehuels/figment/pkg/data
// [style]: https://pkg.go.dev/github.com/matzehuels/figment/pkg/style
// [bind]: https://pkg.go.dev/github.com/matzehuels/figment/pkg/bind
// [scale]: https://pkg.go.dev/github.com/matzehuels/figment/pkg/scale
// [theme]: https://pkg.go.dev/github.com/matzehuels/figment/pkg/theme
// [text]: https://pkg.go.dev/github.com/matzehuels/figment/pkg/text
// [text/canvasmeasure]: https://pkg.go.dev/github.com/matzehuels/figment/pkg/text/canvasmeasure
// [fonts]: https://pkg.go.dev/github.com/matzehuels/figment/pkg/fonts
// [render]: https://pkg.go.dev/github.com/matzehuels/figment/pkg/render
// [render/plot]: https://pkg.go.dev/github.com/matzehuels/figment/pkg/render/plot
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/figment/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/figment/pkg/cache
// [io]: https://pkg.go.dev/github.com/matzehuels/figment/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/figment/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/figment/pkg/observability
package pkg
