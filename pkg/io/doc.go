// Package io loads figure designs and data frames from files and exports
// rendered frames.
//
// # Overview
//
// The library surface proper never touches the filesystem; this package is
// the boundary where designs, data, and rendered output cross it. Three
// operations:
//
//   - [ImportDesign] reads a figure design from TOML or JSON (picked by
//     file extension) into a validated [figure.Figure].
//   - [ImportFrameData] reads a columnar JSON data file into a
//     [data.Frame].
//   - [ExportFrame] writes a rendered [render.Frame] as primitives JSON.
//
// # Design Format
//
// Designs use the figure model's field names directly. Series and
// annotations carry a "type" discriminator since their Go counterparts are
// closed interface unions:
//
//	title = "Monthly totals"
//	theme = "dark"
//
//	[[rows]]
//	  [[rows.plots]]
//	  title = "totals"
//	    [[rows.plots.series]]
//	    type = "bars"
//	    cats = "month"
//	    vals = ["total"]
//
// The same shape decodes from JSON with identical keys.
//
// # Data Format
//
// Data files are one JSON object with a "columns" array. Numeric columns
// carry "values" (JSON null marks a missing value); categorical columns
// carry "labels":
//
//	{
//	  "columns": [
//	    {"name": "month", "labels": ["jan", "feb", "mar"]},
//	    {"name": "total", "values": [120, null, 98]}
//	  ]
//	}
//
// # Errors
//
// Unreadable files return FILE_NOT_FOUND. Malformed content returns
// INVALID_FORMAT wrapping the decoder error. Structurally invalid designs
// return the figure model's INCONSISTENT_DESIGN.
package io
