// Package recording captures wireframe outlines as line-drawing commands
// that can be played back to different export backends.
//
// # Architecture
//
//   - Recorder: maps world coordinates through a Viewport and records commands
//   - Recording: an immutable command list
//   - Backend: renders commands to an output format (PNG, SVG, ...)
//
// Backends register themselves by name in init(), following the
// database/sql driver pattern, and are created with NewBackend.
//
// # Basic Usage
//
//	import _ "github.com/gogpu/wireframe/recording/backends/raster"
//
//	segs, _ := wireframe.Generate(wireframe.Capsule, wireframe.DefaultParams())
//	bounds, _ := wireframe.Bounds(segs)
//
//	rec := recording.NewRecorder(512, 512)
//	rec.SetViewport(recording.FitViewport(bounds, 512, 512, 16))
//	rec.Clear(color.NRGBA{255, 255, 255, 255})
//	rec.SetStroke(recording.Stroke{Color: color.NRGBA{0, 0, 0, 255}, Width: 2})
//	rec.DrawSegments(segs)
//	r := rec.FinishRecording()
//
//	backend, err := recording.NewBackend("raster")
//	if err != nil {
//	    // not registered
//	}
//	if err := r.Playback(backend); err != nil {
//	    // render failed
//	}
//	backend.(recording.FileBackend).SaveToFile("capsule.png")
//
// # Coordinates
//
// Outlines are y-up; canvases are y-down with the origin at the top-left.
// The Viewport performs the flip, so backends only ever see pixel
// coordinates.
package recording
