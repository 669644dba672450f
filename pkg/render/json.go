package render

import (
	"encoding/json"

	"github.com/matzehuels/figment/pkg/style"
)

// MarshalJSON encodes the frame with a type-tagged primitive list. This is
// the primary data interchange format: external backends replay the stream
// in order to reproduce the figure exactly.
func (f *Frame) MarshalJSON() ([]byte, error) {
	type typed struct {
		Type string `json:"type"`
	}

	prims := make([]any, 0, len(f.Primitives))
	for _, p := range f.Primitives {
		switch v := p.(type) {
		case *Path:
			prims = append(prims, struct {
				typed
				*Path
			}{typed{"path"}, v})
		case *TextRun:
			prims = append(prims, struct {
				typed
				*TextRun
			}{typed{"text"}, v})
		case *Marker:
			prims = append(prims, struct {
				typed
				*Marker
			}{typed{"marker"}, v})
		case *ClipPush:
			prims = append(prims, struct {
				typed
				Rect Rect `json:"rect"`
			}{typed{"clip_push"}, v.Rect})
		case *ClipPop:
			prims = append(prims, typed{"clip_pop"})
		}
	}

	return json.Marshal(struct {
		Width      float64     `json:"width"`
		Height     float64     `json:"height"`
		Background style.Color `json:"background"`
		Primitives []any       `json:"primitives"`
	}{
		Width:      f.Width,
		Height:     f.Height,
		Background: f.Background.Color,
		Primitives: prims,
	})
}
