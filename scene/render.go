package scene

import (
	"fmt"

	"github.com/gogpu/wireframe"
	"github.com/gogpu/wireframe/recording"
)

// Layer is the generated, perspective-projected outline of one Item.
type Layer struct {
	Segments []wireframe.Segment
	Stroke   recording.Stroke
	Label    string
}

// Build generates every item and applies the scene perspective for its
// depth. Layers are returned in sheet order.
func (s *Scene) Build() ([]Layer, error) {
	layers := make([]Layer, 0, len(s.Items))
	for i, item := range s.Items {
		segs, err := wireframe.Generate(item.Kind, item.Params, wireframe.WithSegmentPolicy(s.Policy))
		if err != nil {
			return nil, fmt.Errorf("scene: shapes[%d]: %w", i, err)
		}
		if item.Depth != 0 {
			if segs, err = s.Perspective.Project(segs, item.Depth); err != nil {
				return nil, fmt.Errorf("scene: shapes[%d]: %w", i, err)
			}
		}
		layers = append(layers, Layer{Segments: segs, Stroke: item.Stroke, Label: item.Label})
	}
	return layers, nil
}

// Bounds returns the bounding rectangle of all layers.
func Bounds(layers []Layer) (wireframe.Rect, bool) {
	var (
		out   wireframe.Rect
		found bool
	)
	for _, l := range layers {
		r, ok := wireframe.Bounds(l.Segments)
		if !ok {
			continue
		}
		if !found {
			out, found = r, true
			continue
		}
		out = out.Union(r)
	}
	return out, found
}

// Record builds the scene and records it on a canvas fitted to its bounds.
// Labels are anchored at the center of their layer.
func (s *Scene) Record() (*recording.Recording, error) {
	layers, err := s.Build()
	if err != nil {
		return nil, err
	}

	rec := recording.NewRecorder(s.Width, s.Height)
	if bounds, ok := Bounds(layers); ok {
		rec.SetViewport(recording.FitViewport(bounds, s.Width, s.Height, s.Margin))
	}
	rec.Clear(s.Background)
	for _, l := range layers {
		rec.SetStroke(l.Stroke)
		rec.DrawSegments(l.Segments)
		if r, ok := wireframe.Bounds(l.Segments); ok {
			rec.DrawLabel(r.Center(), l.Label)
		}
	}

	r := rec.FinishRecording()
	wireframe.Logger().Debug("scene: recorded", "layers", len(layers), "commands", len(r.Commands()))
	return r, nil
}

// Render records the scene and plays it back to backend.
func (s *Scene) Render(backend recording.Backend) error {
	r, err := s.Record()
	if err != nil {
		return err
	}
	return r.Playback(backend)
}
