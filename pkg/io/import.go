package io

import (
	"encoding/json"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/figment/pkg/data"
	"github.com/matzehuels/figment/pkg/errors"
	"github.com/matzehuels/figment/pkg/figure"
	"github.com/matzehuels/figment/pkg/style"
)

// =============================================================================
// Design import
// =============================================================================

// designFile is the wire shape of a design document. It mirrors
// figure.Figure except that the closed unions (series, annotations) decode
// through type-discriminated specs.
type designFile struct {
	Title   string         `json:"title" toml:"title"`
	Theme   string         `json:"theme" toml:"theme"`
	Width   float64        `json:"width" toml:"width"`
	Height  float64        `json:"height" toml:"height"`
	Padding float64        `json:"padding" toml:"padding"`
	Rows    []designRow    `json:"rows" toml:"rows"`
	Legend  *figure.Legend `json:"legend" toml:"legend"`
}

type designRow struct {
	Plots []designPlot `json:"plots" toml:"plots"`
}

type designPlot struct {
	Title       string          `json:"title" toml:"title"`
	Series      []seriesSpec    `json:"series" toml:"series"`
	XAxes       []*figure.Axis  `json:"x_axes" toml:"x_axes"`
	YAxes       []*figure.Axis  `json:"y_axes" toml:"y_axes"`
	Legend      *figure.Legend  `json:"legend" toml:"legend"`
	Annotations []annotSpec     `json:"annotations" toml:"annotations"`
	Insets      *figure.Insets  `json:"insets" toml:"insets"`
}

// seriesSpec is the superset of all series fields plus the discriminator.
type seriesSpec struct {
	Type string `json:"type" toml:"type"`

	Name  string `json:"name" toml:"name"`
	XAxis int    `json:"x_axis" toml:"x_axis"`
	YAxis int    `json:"y_axis" toml:"y_axis"`

	// line, scatter
	X      string         `json:"x" toml:"x"`
	Y      string         `json:"y" toml:"y"`
	Interp figure.Interp  `json:"interp" toml:"interp"`
	Marker *figure.Marker `json:"marker" toml:"marker"`

	// bars
	Cats       string   `json:"cats" toml:"cats"`
	Vals       []string `json:"vals" toml:"vals"`
	GroupNames []string `json:"group_names" toml:"group_names"`
	Gap        float64  `json:"gap" toml:"gap"`

	// histogram
	Data    string `json:"data" toml:"data"`
	Bins    int    `json:"bins" toml:"bins"`
	Density bool   `json:"density" toml:"density"`

	Fill   *style.Fill   `json:"fill" toml:"fill"`
	Stroke *style.Stroke `json:"stroke" toml:"stroke"`
}

func (s *seriesSpec) build() (figure.Series, error) {
	switch s.Type {
	case "line":
		return &figure.Line{
			Name: s.Name, X: s.X, Y: s.Y,
			XAxis: s.XAxis, YAxis: s.YAxis,
			Interp: s.Interp, Stroke: s.Stroke,
		}, nil
	case "scatter":
		return &figure.Scatter{
			Name: s.Name, X: s.X, Y: s.Y,
			XAxis: s.XAxis, YAxis: s.YAxis,
			Marker: s.Marker,
		}, nil
	case "bars":
		return &figure.Bars{
			Name: s.Name, Cats: s.Cats, Vals: s.Vals,
			GroupNames: s.GroupNames, Gap: s.Gap, YAxis: s.YAxis,
			Fill: s.Fill, Stroke: s.Stroke,
		}, nil
	case "histogram":
		return &figure.Histogram{
			Name: s.Name, Data: s.Data, Bins: s.Bins, Density: s.Density,
			XAxis: s.XAxis, YAxis: s.YAxis,
			Fill: s.Fill, Stroke: s.Stroke,
		}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown series type %q", s.Type)
}

// annotSpec is the superset of all annotation fields plus the discriminator.
type annotSpec struct {
	Type string `json:"type" toml:"type"`

	X     float64     `json:"x" toml:"x"`
	Y     float64     `json:"y" toml:"y"`
	XAxis int         `json:"x_axis" toml:"x_axis"`
	YAxis int         `json:"y_axis" toml:"y_axis"`
	ZPos  figure.ZPos `json:"z" toml:"z"`

	// label
	Text   string        `json:"text" toml:"text"`
	Anchor figure.Anchor `json:"anchor" toml:"anchor"`
	Font   *style.Font   `json:"font" toml:"font"`

	// infinite line
	Orient figure.LineOrient `json:"orient" toml:"orient"`
	At     float64           `json:"at" toml:"at"`
	X0     float64           `json:"x0" toml:"x0"`
	Y0     float64           `json:"y0" toml:"y0"`
	Slope  float64           `json:"slope" toml:"slope"`
	Stroke *style.Stroke     `json:"stroke" toml:"stroke"`

	// arrow
	DX       float64 `json:"dx" toml:"dx"`
	DY       float64 `json:"dy" toml:"dy"`
	HeadSize float64 `json:"head_size" toml:"head_size"`

	// marker
	Marker *figure.Marker `json:"marker" toml:"marker"`
}

func (a *annotSpec) build() (figure.Annotation, error) {
	switch a.Type {
	case "label":
		return &figure.Label{
			X: a.X, Y: a.Y, Text: a.Text, Anchor: a.Anchor,
			ZPos: a.ZPos, Font: a.Font, XAxis: a.XAxis, YAxis: a.YAxis,
		}, nil
	case "line":
		return &figure.InfiniteLine{
			Orient: a.Orient, At: a.At,
			X0: a.X0, Y0: a.Y0, Slope: a.Slope,
			Text: a.Text, ZPos: a.ZPos, Stroke: a.Stroke,
			XAxis: a.XAxis, YAxis: a.YAxis,
		}, nil
	case "arrow":
		return &figure.Arrow{
			X: a.X, Y: a.Y, DX: a.DX, DY: a.DY, HeadSize: a.HeadSize,
			Text: a.Text, ZPos: a.ZPos, Stroke: a.Stroke,
			XAxis: a.XAxis, YAxis: a.YAxis,
		}, nil
	case "marker":
		return &figure.MarkerAnnot{
			X: a.X, Y: a.Y, Marker: a.Marker,
			ZPos: a.ZPos, XAxis: a.XAxis, YAxis: a.YAxis,
		}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown annotation type %q", a.Type)
}

func (d *designFile) build() (*figure.Figure, error) {
	fig := &figure.Figure{
		Title:   d.Title,
		Theme:   d.Theme,
		Width:   d.Width,
		Height:  d.Height,
		Padding: d.Padding,
		Legend:  d.Legend,
	}
	for _, row := range d.Rows {
		plots := make([]*figure.Plot, 0, len(row.Plots))
		for _, dp := range row.Plots {
			p := &figure.Plot{
				Title:  dp.Title,
				XAxes:  dp.XAxes,
				YAxes:  dp.YAxes,
				Legend: dp.Legend,
				Insets: dp.Insets,
			}
			for _, ss := range dp.Series {
				s, err := ss.build()
				if err != nil {
					return nil, err
				}
				p.Series = append(p.Series, s)
			}
			for _, as := range dp.Annotations {
				an, err := as.build()
				if err != nil {
					return nil, err
				}
				p.Annotations = append(p.Annotations, an)
			}
			plots = append(plots, p)
		}
		fig.Plots = append(fig.Plots, plots)
	}
	if err := fig.Validate(); err != nil {
		return nil, err
	}
	return fig, nil
}

// DesignFormat names a design encoding accepted by [ReadDesign].
type DesignFormat string

// Design encodings.
const (
	FormatTOML DesignFormat = "toml"
	FormatJSON DesignFormat = "json"
)

// ReadDesign decodes a figure design from r in the given format. The
// decoded design is validated before it is returned.
func ReadDesign(r io.Reader, format DesignFormat) (*figure.Figure, error) {
	var df designFile
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&df); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode design")
		}
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&df); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode design")
		}
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unknown design format %q", format)
	}
	return df.build()
}

// ImportDesign reads a design file at path, picking the format from the
// file extension (.toml or .json).
func ImportDesign(path string) (*figure.Figure, error) {
	var format DesignFormat
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		format = FormatTOML
	case ".json":
		format = FormatJSON
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "design file %s: unknown extension, want .toml or .json", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open design %s", path)
	}
	defer f.Close()

	fig, err := ReadDesign(f, format)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "design %s", path)
	}
	return fig, nil
}

// =============================================================================
// Data import
// =============================================================================

type dataFile struct {
	Columns []dataColumn `json:"columns"`
}

// dataColumn is one named column. Exactly one of Values and Labels must be
// set; null entries in Values mark missing numeric values.
type dataColumn struct {
	Name   string     `json:"name"`
	Values []*float64 `json:"values"`
	Labels []string   `json:"labels"`
}

// ReadFrameData decodes a columnar JSON data document from r.
func ReadFrameData(r io.Reader) (*data.Frame, error) {
	var df dataFile
	if err := json.NewDecoder(r).Decode(&df); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode data")
	}

	frame := data.NewFrame()
	for i, col := range df.Columns {
		if col.Name == "" {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "column %d has no name", i)
		}
		switch {
		case col.Values != nil && col.Labels != nil:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "column %q has both values and labels", col.Name)
		case col.Values != nil:
			vals := make([]float64, len(col.Values))
			for j, v := range col.Values {
				if v == nil {
					vals[j] = math.NaN()
				} else {
					vals[j] = *v
				}
			}
			frame.AddNums(col.Name, vals...)
		case col.Labels != nil:
			frame.AddCats(col.Name, col.Labels...)
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "column %q has neither values nor labels", col.Name)
		}
	}
	return frame, nil
}

// ImportFrameData reads a columnar JSON data file at path.
func ImportFrameData(path string) (*data.Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open data %s", path)
	}
	defer f.Close()

	frame, err := ReadFrameData(f)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "data %s", path)
	}
	return frame, nil
}
