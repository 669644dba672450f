// Package scale maps data-space intervals onto surface-space intervals and
// generates axis ticks.
//
// # Architecture
//
// Three concerns, layered:
//
//   - [Domain]: a fitted data interval. [Fit] derives it from column values
//     (ignoring NaN and Inf), [Domain.EnsureSpan] widens degenerate
//     intervals, and ToNormalized/ToData give the [0,1] round trip.
//   - Coordinate maps: [Linear], [Log], and [Cat] map data values to
//     [0, size] surface offsets. Pixel insets extend the fitted domain so
//     data never sits exactly on a plot edge.
//   - Ticks: [Locator] implementations produce ordered major and minor tick
//     positions inside a domain; [Formatter] implementations turn positions
//     into label strings.
//
// Everything in this package is pure computation. The only error surface is
// log-scale construction, which rejects non-positive domains with
// INVALID_DOMAIN.
package scale
