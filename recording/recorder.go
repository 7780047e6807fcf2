package recording

import (
	"fmt"
	"image/color"

	"github.com/gogpu/wireframe"
)

// Recorder captures line-drawing operations as commands.
// World coordinates passed to DrawSegments and DrawLabel are mapped through
// the current Viewport when recorded.
//
// A Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	viewport      Viewport
	stroke        Stroke
}

// NewRecorder creates a Recorder for a width×height canvas.
// It starts with the identity viewport and DefaultStroke.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 256),
		viewport: IdentityViewport(),
		stroke:   DefaultStroke(),
	}
}

// Width returns the canvas width.
func (r *Recorder) Width() int { return r.width }

// Height returns the canvas height.
func (r *Recorder) Height() int { return r.height }

// SetViewport sets the world-to-canvas mapping for subsequent draws.
func (r *Recorder) SetViewport(v Viewport) {
	r.viewport = v
}

// Viewport returns the current world-to-canvas mapping.
func (r *Recorder) Viewport() Viewport {
	return r.viewport
}

// SetStroke sets the stroke used by subsequent DrawSegments calls.
func (r *Recorder) SetStroke(s Stroke) {
	r.stroke = s
}

// Clear records a full-canvas fill.
func (r *Recorder) Clear(c color.NRGBA) {
	r.commands = append(r.commands, ClearCommand{Color: c})
}

// DrawSegments records one StrokeLineCommand per segment.
// Nothing is recorded when the current stroke is invisible.
func (r *Recorder) DrawSegments(segs []wireframe.Segment) {
	if !r.stroke.Visible() {
		return
	}
	for _, s := range segs {
		r.commands = append(r.commands, StrokeLineCommand{
			A:      r.viewport.Apply(s.A),
			B:      r.viewport.Apply(s.B),
			Stroke: r.stroke,
		})
	}
}

// DrawLabel records text anchored at a world point, drawn in the current
// stroke color. Empty text is ignored.
func (r *Recorder) DrawLabel(at wireframe.Point, text string) {
	if text == "" {
		return
	}
	p := r.viewport.Apply(at)
	r.commands = append(r.commands, DrawTextCommand{Text: text, X: p.X, Y: p.Y, Color: r.stroke.Color})
}

// FinishRecording returns an immutable Recording containing all recorded
// commands. The Recorder should not be used afterwards.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:    r.width,
		height:   r.height,
		commands: r.commands,
	}
}

// Recording is an immutable container for recorded drawing commands.
// It can be replayed to any Backend implementation, any number of times.
type Recording struct {
	width, height int
	commands      []Command
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int { return r.width }

// Height returns the height of the recording canvas.
func (r *Recording) Height() int { return r.height }

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command { return r.commands }

// Playback replays the recording to the given backend.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(r.width, r.height); err != nil {
		return fmt.Errorf("recording: begin: %w", err)
	}

	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case ClearCommand:
			backend.Clear(c.Color)
		case StrokeLineCommand:
			backend.StrokeLine(c.A, c.B, c.Stroke)
		case DrawTextCommand:
			backend.DrawText(c.Text, c.X, c.Y, c.Color)
		}
	}

	if err := backend.End(); err != nil {
		return fmt.Errorf("recording: end: %w", err)
	}

	wireframe.Logger().Debug("recording: playback finished",
		"backend", fmt.Sprintf("%T", backend), "commands", len(r.commands),
		"width", r.width, "height", r.height)
	return nil
}
