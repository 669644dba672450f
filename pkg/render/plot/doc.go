// Package plot turns a bound figure into a drawing primitive stream: it is
// the layout engine and drawing translator of the rendering pipeline.
//
// # Overview
//
// [Draw] runs two passes over a [bind.Bound] figure. The measurement pass
// generates provisional ticks from the fitted axis domains, measures every
// tick label, title, and legend entry through a [text.Measurer], and sizes
// the bands each element needs. The allocation pass subtracts bands from the
// canvas outside-in (figure title, figure legend, out-legends, axis titles,
// tick labels), builds the final coordinate maps over the remaining plot
// area, and regenerates the ticks that are actually drawn.
//
// Layout never fails on size: when the canvas is too small the bands shrink
// proportionally and the plot area clamps to a positive minimum. The only
// layout errors are data-shape errors, an axis whose domain cannot be
// derived (UNBOUNDED_AXIS) or a log scale over a non-positive domain
// (INVALID_DOMAIN).
//
// # Usage
//
//	bound, err := bind.Bind(fig, frame)
//	if err != nil { ... }
//	rec := render.NewRecorder()
//	if err := plot.Draw(bound, rec, plot.Options{}); err != nil { ... }
//	frame := rec.Frame()
//
// The zero [Options] value measures text with [text.Ratio] and resolves the
// theme named by the figure.
package plot
