package wireframe

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultFocalLength is the focal length used by DefaultPerspective.
const DefaultFocalLength = 5.0

// Perspective maps a notional depth to a uniform 2D scale factor.
// Larger depths shrink an outline toward the origin; negative depths
// (between the viewer and the focal plane) enlarge it.
type Perspective struct {
	FocalLength float64
}

// DefaultPerspective returns a Perspective with DefaultFocalLength.
func DefaultPerspective() Perspective {
	return Perspective{FocalLength: DefaultFocalLength}
}

// Scale returns FocalLength / (FocalLength + depth).
//
// No guard is applied: when FocalLength+depth is zero the result is ±Inf
// or NaN. Use Matrix or Project for a checked variant.
func (p Perspective) Scale(depth float64) float64 {
	return p.FocalLength / (p.FocalLength + depth)
}

// Matrix returns the homogeneous 2D transform that applies Scale(depth)
// about the origin.
func (p Perspective) Matrix(depth float64) (mgl64.Mat3, error) {
	s := p.Scale(depth)
	if !isFinite(s) {
		return mgl64.Ident3(), fmt.Errorf("%w: focal %v, depth %v", ErrDegeneratePerspective, p.FocalLength, depth)
	}
	return mgl64.Scale2D(s, s), nil
}

// Project returns a copy of segs with every point scaled for depth.
func (p Perspective) Project(segs []Segment, depth float64) ([]Segment, error) {
	m, err := p.Matrix(depth)
	if err != nil {
		return nil, err
	}
	return TransformSegments(segs, m), nil
}

// TransformSegments applies a homogeneous 2D transform to every endpoint.
func TransformSegments(segs []Segment, m mgl64.Mat3) []Segment {
	out := make([]Segment, len(segs))
	for i, s := range segs {
		out[i] = Segment{A: TransformPoint(m, s.A), B: TransformPoint(m, s.B)}
	}
	return out
}

// TransformPoint applies a homogeneous 2D transform to p.
func TransformPoint(m mgl64.Mat3, p Point) Point {
	v := m.Mul3x1(mgl64.Vec3{p.X, p.Y, 1})
	return Point{X: v.X(), Y: v.Y()}
}
