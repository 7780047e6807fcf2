package recording

import (
	"image"
	"image/color"
	"io"

	"github.com/gogpu/wireframe"
)

// Backend is the interface that all export backends implement.
// Backends receive canvas-space drawing commands and translate them to
// their output format.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using recording.Register()
//  2. Accept Begin before any drawing call and End after the last one
//  3. Treat coordinates as pixels, y down, origin at the top-left
type Backend interface {
	// Begin initializes the backend for a canvas of the given size.
	Begin(width, height int) error

	// End finalizes the output. Output methods are valid only after End.
	End() error

	// Clear fills the whole canvas with c.
	Clear(c color.NRGBA)

	// StrokeLine draws a straight line from a to b.
	StrokeLine(a, b wireframe.Point, stroke Stroke)

	// DrawText draws s with its baseline origin at (x, y).
	DrawText(s string, x, y float64, c color.NRGBA)
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to w. Call only after End.
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output directly to a file.
type FileBackend interface {
	Backend

	// SaveToFile writes the rendered content to path. Call only after End.
	SaveToFile(path string) error
}

// ImageBackend extends Backend with access to a rasterized image.
type ImageBackend interface {
	Backend

	// Image returns the rendered image, or nil before Begin.
	Image() *image.NRGBA
}
