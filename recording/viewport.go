package recording

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/wireframe"
)

// Viewport maps y-up world coordinates to y-down canvas pixels.
type Viewport struct {
	m mgl64.Mat3
}

// IdentityViewport passes coordinates through unchanged.
func IdentityViewport() Viewport {
	return Viewport{m: mgl64.Ident3()}
}

// NewViewport builds a viewport that scales world units by scale, flips the
// y axis, and places the world point center at canvas pixel origin.
func NewViewport(center wireframe.Point, scale float64, origin wireframe.Point) Viewport {
	m := mgl64.Translate2D(origin.X, origin.Y).
		Mul3(mgl64.Scale2D(scale, -scale)).
		Mul3(mgl64.Translate2D(-center.X, -center.Y))
	return Viewport{m: m}
}

// FitViewport returns a viewport that shows bounds centered on a
// width×height canvas with margin pixels on every side. The aspect ratio is
// preserved. A zero-area bounds (a point or a straight line) is centered
// without being stretched to infinity.
func FitViewport(bounds wireframe.Rect, width, height int, margin float64) Viewport {
	availW := math.Max(float64(width)-2*margin, 1)
	availH := math.Max(float64(height)-2*margin, 1)

	scale := math.Inf(1)
	if w := bounds.Width(); w > 0 {
		scale = availW / w
	}
	if h := bounds.Height(); h > 0 {
		scale = math.Min(scale, availH/h)
	}
	if math.IsInf(scale, 1) {
		scale = 1
	}

	canvasCenter := wireframe.Pt(float64(width)/2, float64(height)/2)
	return NewViewport(bounds.Center(), scale, canvasCenter)
}

// Apply maps a world point to canvas coordinates.
func (v Viewport) Apply(p wireframe.Point) wireframe.Point {
	return wireframe.TransformPoint(v.m, p)
}

// Scale returns the world-to-pixel length factor.
func (v Viewport) Scale() float64 {
	return math.Abs(v.m.At(0, 0))
}

// Matrix returns the underlying homogeneous transform.
func (v Viewport) Matrix() mgl64.Mat3 {
	return v.m
}
