package figure

import "github.com/matzehuels/figment/pkg/style"

// Annotation is the closed union of plot annotations: [Label],
// [InfiniteLine], [Arrow], and [MarkerAnnot]. Annotations are positioned in
// data space and re-projected through the owning axes at layout time.
type Annotation interface {
	isAnnotation()

	// Z returns the draw layer relative to series.
	Z() ZPos
}

// ZPos layers an annotation relative to the plot's series.
type ZPos string

// Annotation layers. The zero value draws above series.
const (
	ZAbove ZPos = "above"
	ZBelow ZPos = "below"
)

func resolveZ(z ZPos) ZPos {
	if z == "" {
		return ZAbove
	}
	return z
}

// Anchor positions a label's text box relative to its data point.
type Anchor string

// Label anchors.
const (
	AnchorCenter      Anchor = "center"
	AnchorTopLeft     Anchor = "top-left"
	AnchorTopRight    Anchor = "top-right"
	AnchorBottomLeft  Anchor = "bottom-left"
	AnchorBottomRight Anchor = "bottom-right"
)

// Label places text at a data-space point.
type Label struct {
	X    float64 `json:"x" toml:"x"`
	Y    float64 `json:"y" toml:"y"`
	Text string  `json:"text" toml:"text"`

	// Anchor positions the text box relative to (X, Y). Empty is center.
	Anchor Anchor `json:"anchor,omitempty" toml:"anchor,omitempty"`

	ZPos ZPos `json:"z,omitempty" toml:"z,omitempty"`

	// Font overrides the themed annotation font.
	Font *style.Font `json:"font,omitempty" toml:"font,omitempty"`

	XAxis int `json:"x_axis,omitempty" toml:"x_axis,omitempty"`
	YAxis int `json:"y_axis,omitempty" toml:"y_axis,omitempty"`
}

func (*Label) isAnnotation() {}

// Z implements [Annotation].
func (l *Label) Z() ZPos { return resolveZ(l.ZPos) }

// LineOrient selects an infinite line's orientation.
type LineOrient string

// Infinite line orientations.
const (
	// LineHorizontal is y = At.
	LineHorizontal LineOrient = "horizontal"

	// LineVertical is x = At.
	LineVertical LineOrient = "vertical"

	// LineSloped passes through (X0, Y0) with slope Slope.
	LineSloped LineOrient = "sloped"
)

// InfiniteLine spans the whole plot area along one data-space line.
type InfiniteLine struct {
	Orient LineOrient `json:"orient" toml:"orient"`

	// At is the crossing coordinate for horizontal and vertical lines.
	At float64 `json:"at,omitempty" toml:"at,omitempty"`

	// X0, Y0, and Slope define a sloped line.
	X0    float64 `json:"x0,omitempty" toml:"x0,omitempty"`
	Y0    float64 `json:"y0,omitempty" toml:"y0,omitempty"`
	Slope float64 `json:"slope,omitempty" toml:"slope,omitempty"`

	// Text optionally labels the line near its start.
	Text string `json:"text,omitempty" toml:"text,omitempty"`

	ZPos ZPos `json:"z,omitempty" toml:"z,omitempty"`

	// Stroke overrides the themed annotation stroke.
	Stroke *style.Stroke `json:"stroke,omitempty" toml:"stroke,omitempty"`

	XAxis int `json:"x_axis,omitempty" toml:"x_axis,omitempty"`
	YAxis int `json:"y_axis,omitempty" toml:"y_axis,omitempty"`
}

func (*InfiniteLine) isAnnotation() {}

// Z implements [Annotation].
func (l *InfiniteLine) Z() ZPos { return resolveZ(l.ZPos) }

// DefaultArrowHead is the default arrow head extent in pixels.
const DefaultArrowHead = 10.0

// Arrow points at a data-space position. The tail runs from the tip along
// (DX, DY) in surface pixels, positive DY downward.
type Arrow struct {
	X float64 `json:"x" toml:"x"`
	Y float64 `json:"y" toml:"y"`

	// DX and DY extend from the tip toward the tail.
	DX float64 `json:"dx" toml:"dx"`
	DY float64 `json:"dy" toml:"dy"`

	// HeadSize is the chevron extent in pixels. Zero uses DefaultArrowHead.
	HeadSize float64 `json:"head_size,omitempty" toml:"head_size,omitempty"`

	// Text optionally labels the arrow at its tail.
	Text string `json:"text,omitempty" toml:"text,omitempty"`

	ZPos ZPos `json:"z,omitempty" toml:"z,omitempty"`

	// Stroke overrides the themed annotation stroke.
	Stroke *style.Stroke `json:"stroke,omitempty" toml:"stroke,omitempty"`

	XAxis int `json:"x_axis,omitempty" toml:"x_axis,omitempty"`
	YAxis int `json:"y_axis,omitempty" toml:"y_axis,omitempty"`
}

func (*Arrow) isAnnotation() {}

// Z implements [Annotation].
func (a *Arrow) Z() ZPos { return resolveZ(a.ZPos) }

// MarkerAnnot places a single marker at a data-space point.
type MarkerAnnot struct {
	X float64 `json:"x" toml:"x"`
	Y float64 `json:"y" toml:"y"`

	// Marker overrides the themed annotation marker.
	Marker *Marker `json:"marker,omitempty" toml:"marker,omitempty"`

	ZPos ZPos `json:"z,omitempty" toml:"z,omitempty"`

	XAxis int `json:"x_axis,omitempty" toml:"x_axis,omitempty"`
	YAxis int `json:"y_axis,omitempty" toml:"y_axis,omitempty"`
}

func (*MarkerAnnot) isAnnotation() {}

// Z implements [Annotation].
func (m *MarkerAnnot) Z() ZPos { return resolveZ(m.ZPos) }
