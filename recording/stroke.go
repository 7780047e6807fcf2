package recording

import "image/color"

// Stroke describes how a line is drawn.
type Stroke struct {
	Color color.NRGBA
	Width float64 // in canvas pixels
}

// DefaultStroke returns an opaque black 1px stroke.
func DefaultStroke() Stroke {
	return Stroke{Color: color.NRGBA{A: 255}, Width: 1}
}

// Visible reports whether the stroke would leave a mark.
func (s Stroke) Visible() bool {
	return s.Color.A > 0 && s.Width > 0
}
