// Package raster provides a PNG backend for the recording system.
//
// Lines are rasterized with golang.org/x/image/vector as filled quads of
// the stroke width with square caps, so consecutive outline segments meet
// without gaps. Labels use the fixed 7x13 bitmap face from
// golang.org/x/image/font/basicfont, centered on their anchor.
//
// # Example
//
//	import _ "github.com/gogpu/wireframe/recording/backends/raster"
//
//	backend, _ := recording.NewBackend("raster")
//	rec.Playback(backend)
//	backend.(recording.FileBackend).SaveToFile("outline.png")
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/wireframe"
	"github.com/gogpu/wireframe/recording"
)

func init() {
	recording.Register("raster", func() recording.Backend {
		return NewBackend()
	})
}

// errNotStarted is returned by output methods before Begin.
var errNotStarted = errors.New("raster: backend not started")

// Backend renders recordings to an *image.NRGBA.
type Backend struct {
	img    *image.NRGBA
	z      *vector.Rasterizer
	width  int
	height int
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
	_ recording.ImageBackend  = (*Backend)(nil)
)

// NewBackend creates a new raster backend.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin allocates a transparent canvas of the given size.
// Sizes outside 1..recording.MaxCanvasSize per side are rejected.
func (b *Backend) Begin(width, height int) error {
	if err := recording.CheckCanvasSize(width, height); err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	b.width = width
	b.height = height
	b.img = image.NewNRGBA(image.Rect(0, 0, width, height))
	b.z = vector.NewRasterizer(width, height)
	return nil
}

// End finalizes the rendering.
func (b *Backend) End() error {
	return nil
}

// Clear fills the canvas with c, replacing existing pixels.
func (b *Backend) Clear(c color.NRGBA) {
	draw.Draw(b.img, b.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// StrokeLine draws the line from p to q as a quad extended by half the
// stroke width at both ends. A zero-length line becomes a square dot.
func (b *Backend) StrokeLine(p, q wireframe.Point, s recording.Stroke) {
	if !s.Visible() {
		return
	}

	hw := s.Width / 2
	d := q.Sub(p)
	ux, uy := 1.0, 0.0
	if l := math.Hypot(d.X, d.Y); l > 0 {
		ux, uy = d.X/l, d.Y/l
	}
	e := wireframe.Pt(ux*hw, uy*hw)  // along the line
	n := wireframe.Pt(-uy*hw, ux*hw) // across the line

	corners := [4]wireframe.Point{
		p.Sub(e).Add(n),
		q.Add(e).Add(n),
		q.Add(e).Sub(n),
		p.Sub(e).Sub(n),
	}

	b.z.Reset(b.width, b.height)
	b.z.DrawOp = draw.Over
	b.z.MoveTo(float32(corners[0].X), float32(corners[0].Y))
	for _, c := range corners[1:] {
		b.z.LineTo(float32(c.X), float32(c.Y))
	}
	b.z.ClosePath()
	b.z.Draw(b.img, b.img.Bounds(), image.NewUniform(s.Color), image.Point{})
}

// DrawText draws s horizontally centered on x with its baseline at y.
func (b *Backend) DrawText(s string, x, y float64, c color.NRGBA) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  b.img,
		Src:  image.NewUniform(c),
		Face: face,
	}
	advance := d.MeasureString(s)
	d.Dot = fixed.Point26_6{
		X: fixed.Int26_6(math.Round(x*64)) - advance/2,
		Y: fixed.Int26_6(math.Round(y * 64)),
	}
	d.DrawString(s)
}

// WriteTo writes the rendered image as PNG.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.img == nil {
		return 0, errNotStarted
	}
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.img)
	return cw.n, err
}

// SaveToFile saves the rendered image as PNG to path.
func (b *Backend) SaveToFile(path string) error {
	if b.img == nil {
		return errNotStarted
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	if err := png.Encode(f, b.img); err != nil {
		_ = f.Close()
		return fmt.Errorf("raster: encode %s: %w", path, err)
	}
	return f.Close()
}

// Image returns the rendered image, or nil before Begin.
func (b *Backend) Image() *image.NRGBA {
	return b.img
}

// Width returns the canvas width.
func (b *Backend) Width() int { return b.width }

// Height returns the canvas height.
func (b *Backend) Height() int { return b.height }

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
