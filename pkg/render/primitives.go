package render

import "github.com/matzehuels/figment/pkg/style"

// Point is a position in canvas pixel coordinates. The origin is the top
// left; y grows downward.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle in canvas pixel coordinates.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal midpoint.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical midpoint.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Inset shrinks the rectangle by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Primitive is the closed union of drawing primitives: [Path], [TextRun],
// [Marker], [ClipPush], and [ClipPop].
type Primitive interface {
	isPrimitive()
}

// Path is one or more subpaths sharing a stroke and fill. A nil stroke or
// fill means the path is not stroked or not filled.
type Path struct {
	// SubPaths holds vertex runs. Line series produce one run per contiguous
	// non-null span; rectangles are single closed runs.
	SubPaths [][]Point `json:"subpaths"`

	// Closed joins each subpath's last vertex back to its first.
	Closed bool `json:"closed,omitempty"`

	Stroke *style.Stroke `json:"stroke,omitempty"`
	Fill   *style.Fill   `json:"fill,omitempty"`
}

func (*Path) isPrimitive() {}

// Anchor positions a text run horizontally relative to its point.
type Anchor string

// Text anchors.
const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// Baseline positions a text run vertically relative to its point.
type Baseline string

// Text baselines.
const (
	BaselineTop    Baseline = "top"
	BaselineMiddle Baseline = "middle"
	BaselineBottom Baseline = "bottom"
)

// TextRun is a positioned single-line text primitive.
type TextRun struct {
	Pos      Point       `json:"pos"`
	Text     string      `json:"text"`
	Font     style.Font  `json:"font"`
	Color    style.Color `json:"color"`
	Anchor   Anchor      `json:"anchor,omitempty"`
	Baseline Baseline    `json:"baseline,omitempty"`

	// Angle rotates the run around Pos, in degrees counterclockwise.
	// Vertical axis titles use -90.
	Angle float64 `json:"angle,omitempty"`
}

func (*TextRun) isPrimitive() {}

// Marker is one scatter point or marker annotation.
type Marker struct {
	Pos   Point   `json:"pos"`
	Shape string  `json:"shape"`
	Size  float64 `json:"size"`

	Fill   *style.Fill   `json:"fill,omitempty"`
	Stroke *style.Stroke `json:"stroke,omitempty"`
}

func (*Marker) isPrimitive() {}

// ClipPush restricts subsequent primitives to a rectangle until the matching
// [ClipPop].
type ClipPush struct {
	Rect Rect `json:"rect"`
}

func (*ClipPush) isPrimitive() {}

// ClipPop removes the most recent clip rectangle.
type ClipPop struct{}

func (*ClipPop) isPrimitive() {}
