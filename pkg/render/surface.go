package render

import "github.com/matzehuels/figment/pkg/style"

// Surface consumes an ordered primitive stream. Implementations receive
// primitives in final draw order with resolved geometry and styles; clip
// pushes and pops are balanced within one frame.
type Surface interface {
	// Begin starts a frame. The background fill covers the whole canvas.
	Begin(width, height float64, background style.Fill)

	Path(p Path)
	Text(t TextRun)
	Marker(m Marker)

	PushClip(r Rect)
	PopClip()
}

// Frame is a recorded primitive stream with its canvas geometry.
type Frame struct {
	Width      float64
	Height     float64
	Background style.Fill
	Primitives []Primitive
}

// PrimitiveCount returns the number of drawable primitives, excluding clip
// markers.
func (f *Frame) PrimitiveCount() int {
	n := 0
	for _, p := range f.Primitives {
		switch p.(type) {
		case *ClipPush, *ClipPop:
		default:
			n++
		}
	}
	return n
}

// Recorder is a [Surface] that captures the stream into a [Frame].
type Recorder struct {
	frame Frame
	depth int
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Frame returns the recorded frame.
func (r *Recorder) Frame() *Frame { return &r.frame }

// ClipDepth returns the current clip nesting depth. Zero after a balanced
// frame.
func (r *Recorder) ClipDepth() int { return r.depth }

// Begin implements [Surface]. It resets any previously recorded frame.
func (r *Recorder) Begin(width, height float64, background style.Fill) {
	r.frame = Frame{Width: width, Height: height, Background: background}
	r.depth = 0
}

// Path implements [Surface].
func (r *Recorder) Path(p Path) {
	r.frame.Primitives = append(r.frame.Primitives, &p)
}

// Text implements [Surface].
func (r *Recorder) Text(t TextRun) {
	r.frame.Primitives = append(r.frame.Primitives, &t)
}

// Marker implements [Surface].
func (r *Recorder) Marker(m Marker) {
	r.frame.Primitives = append(r.frame.Primitives, &m)
}

// PushClip implements [Surface].
func (r *Recorder) PushClip(rect Rect) {
	r.depth++
	r.frame.Primitives = append(r.frame.Primitives, &ClipPush{Rect: rect})
}

// PopClip implements [Surface].
func (r *Recorder) PopClip() {
	r.depth--
	r.frame.Primitives = append(r.frame.Primitives, &ClipPop{})
}
