// Package svg provides an SVG 1.1 backend for the recording system.
//
// Each recorded line becomes one <line> element with square caps, labels
// become <text> elements anchored at their middle, and Clear becomes a
// full-canvas <rect>.
package svg

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"

	"github.com/gogpu/wireframe"
	"github.com/gogpu/wireframe/recording"
)

func init() {
	recording.Register("svg", func() recording.Backend {
		return NewBackend()
	})
}

var errNotFinished = errors.New("svg: document not finished")

// Backend builds an SVG document in memory.
type Backend struct {
	buf    bytes.Buffer
	width  int
	height int
	done   bool
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a new SVG backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin starts a new document, discarding any previous output.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("svg: invalid canvas size %dx%d", width, height)
	}
	b.buf.Reset()
	b.width, b.height = width, height
	b.done = false

	b.buf.WriteString(xml.Header)
	fmt.Fprintf(&b.buf,
		`<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		width, height, width, height)
	return nil
}

// End closes the document.
func (b *Backend) End() error {
	b.buf.WriteString("</svg>\n")
	b.done = true
	return nil
}

// Clear emits a rectangle covering the canvas.
func (b *Backend) Clear(c color.NRGBA) {
	fmt.Fprintf(&b.buf, `<rect x="0" y="0" width="%d" height="%d" fill="%s"%s/>`+"\n",
		b.width, b.height, hexColor(c), opacityAttr("fill-opacity", c))
}

// StrokeLine emits a <line> element.
func (b *Backend) StrokeLine(p, q wireframe.Point, s recording.Stroke) {
	if !s.Visible() {
		return
	}
	fmt.Fprintf(&b.buf,
		`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s" stroke-linecap="square"%s/>`+"\n",
		num(p.X), num(p.Y), num(q.X), num(q.Y), hexColor(s.Color), num(s.Width), opacityAttr("stroke-opacity", s.Color))
}

// DrawText emits a <text> element centered on x with its baseline at y.
func (b *Backend) DrawText(s string, x, y float64, c color.NRGBA) {
	fmt.Fprintf(&b.buf, `<text x="%s" y="%s" fill="%s"%s font-family="monospace" font-size="13" text-anchor="middle">`,
		num(x), num(y), hexColor(c), opacityAttr("fill-opacity", c))
	_ = xml.EscapeText(&b.buf, []byte(s))
	b.buf.WriteString("</text>\n")
}

// WriteTo writes the finished document to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.done {
		return 0, errNotFinished
	}
	n, err := w.Write(b.buf.Bytes())
	return int64(n), err
}

// SaveToFile writes the finished document to path.
func (b *Backend) SaveToFile(path string) error {
	if !b.done {
		return errNotFinished
	}
	if err := os.WriteFile(path, b.buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("svg: %w", err)
	}
	return nil
}

// Bytes returns the document built so far.
func (b *Backend) Bytes() []byte {
	return b.buf.Bytes()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func hexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func opacityAttr(name string, c color.NRGBA) string {
	if c.A == 255 {
		return ""
	}
	return fmt.Sprintf(` %s="%s"`, name, strconv.FormatFloat(float64(c.A)/255, 'f', 3, 64))
}
