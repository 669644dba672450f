// Package render defines the drawing primitive stream and the surface
// boundary of the rendering pipeline.
//
// # Overview
//
// The layout and drawing core never serializes or rasterizes anything. It
// emits an ordered stream of four primitive kinds onto a [Surface]:
//
//   - [Path]: outlines and filled shapes (polylines, rectangles, step plots)
//   - [TextRun]: positioned single-line text with resolved font and color
//   - [Marker]: one scatter point (shape, size, style)
//   - clip push/pop: rectangular clip regions around plot areas
//
// Primitives carry final canvas coordinates and fully resolved styles, so a
// surface needs no knowledge of figures, themes, or data sources.
//
// # Recording
//
// [Recorder] is the built-in surface. It captures the stream into a [Frame]
// that can be inspected in tests, cached, or exported as JSON for external
// backends:
//
//	rec := render.NewRecorder()
//	plot.Draw(bound, rec, opts...)
//	out, err := json.Marshal(rec.Frame())
//
// Concrete vector and raster surfaces live outside this module; they only
// need to implement [Surface].
//
// The [plot] subpackage holds the layout engine and drawing translator that
// produce the stream.
//
// [plot]: github.com/matzehuels/figment/pkg/render/plot
package render
