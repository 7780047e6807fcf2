package wireframe

import "math"

// Proportions of each outline relative to Params.Size.
const (
	squareHalf = 0.5

	columnHalfWidth  = 0.4
	columnHalfHeight = 0.75

	pyramidApex = 0.6
	pyramidBase = 0.5

	cylinderRadius     = 0.4
	cylinderHalfHeight = 0.5
	cylinderSquash     = 0.4 // vertical squash of the rings

	sphereRadius = 0.5

	capsuleRadius = 0.4
	capsuleHeight = 0.8 // half-height is capsuleHeight*size - radius
)

// Generate returns the outline of kind described by params.
//
// Parameters are validated before any geometry runs; see SegmentPolicy for
// how the segment count is treated. The result is deterministic for a given
// (kind, params) and is never empty for a valid kind.
func Generate(kind ShapeKind, params Params, opts ...GenerateOption) ([]Segment, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p, err := params.normalize(kind, o.policy)
	if err != nil {
		return nil, err
	}

	dst := o.dst
	if dst == nil {
		dst = make([]Segment, 0, segmentCount(kind, p.Segments))
	}

	switch kind {
	case Square:
		h := p.Size * squareHalf
		dst = appendQuad(dst, p.Position, h, h)
	case RectangularColumn:
		dst = appendQuad(dst, p.Position, p.Size*columnHalfWidth, p.Size*columnHalfHeight)
	case Pyramid:
		dst = appendPyramid(dst, p)
	case Cylinder:
		dst = appendCylinder(dst, p)
	case Sphere:
		dst = appendSphere(dst, p)
	case Capsule:
		dst = appendCapsule(dst, p)
	}

	Logger().Debug("wireframe: generated outline",
		"shape", kind.String(), "size", p.Size, "segments", p.Segments, "lines", len(dst))
	return dst, nil
}

// SegmentCount returns how many segments Generate emits for kind with the
// given sample count, after the policy has been applied.
func SegmentCount(kind ShapeKind, params Params, policy SegmentPolicy) (int, error) {
	p, err := params.normalize(kind, policy)
	if err != nil {
		return 0, err
	}
	return segmentCount(kind, p.Segments), nil
}

func segmentCount(kind ShapeKind, n int) int {
	switch kind {
	case Square, RectangularColumn:
		return 4
	case Pyramid:
		return 3
	case Cylinder:
		return 2*n + 2
	case Sphere:
		return n
	case Capsule:
		return 2 + 2*(n/2)
	default:
		return 0
	}
}

// appendQuad emits the boundary of an axis-aligned rectangle, corner i to
// corner (i+1)%4, starting bottom-left and going counter-clockwise.
func appendQuad(dst []Segment, c Point, hw, hh float64) []Segment {
	v := [4]Point{
		c.Add(Pt(-hw, -hh)),
		c.Add(Pt(hw, -hh)),
		c.Add(Pt(hw, hh)),
		c.Add(Pt(-hw, hh)),
	}
	for i := range v {
		dst = append(dst, Segment{A: v[i], B: v[(i+1)%4]})
	}
	return dst
}

func appendPyramid(dst []Segment, p Params) []Segment {
	top := p.Position.Add(Pt(0, p.Size*pyramidApex))
	left := p.Position.Add(Pt(-p.Size*pyramidBase, -p.Size*pyramidBase))
	right := p.Position.Add(Pt(p.Size*pyramidBase, -p.Size*pyramidBase))

	return append(dst,
		Segment{A: left, B: top},
		Segment{A: top, B: right},
		Segment{A: right, B: left},
	)
}

// appendCylinder emits two flattened rings and two vertical silhouette
// edges joining samples 0 and n/2. The sides are not a full wireframe.
func appendCylinder(dst []Segment, p Params) []Segment {
	n := p.Segments
	r := p.Size * cylinderRadius
	hh := p.Size * cylinderHalfHeight

	top := make([]Point, n)
	bottom := make([]Point, n)
	for i := range n {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		x := cos * r
		y := sin * r * cylinderSquash
		top[i] = p.Position.Add(Pt(x, hh+y))
		bottom[i] = p.Position.Add(Pt(x, -hh+y))
	}

	for i := range n {
		next := (i + 1) % n
		dst = append(dst,
			Segment{A: top[i], B: top[next]},
			Segment{A: bottom[i], B: bottom[next]},
		)
	}

	return append(dst,
		Segment{A: top[0], B: bottom[0]},
		Segment{A: top[n/2], B: bottom[n/2]},
	)
}

func appendSphere(dst []Segment, p Params) []Segment {
	n := p.Segments
	r := p.Size * sphereRadius
	for i := range n {
		dst = append(dst, Segment{
			A: p.Position.Add(circlePoint(2*math.Pi*float64(i)/float64(n), r)),
			B: p.Position.Add(circlePoint(2*math.Pi*float64(i+1)/float64(n), r)),
		})
	}
	return dst
}

// appendCapsule emits the left and right sides followed by the top and
// bottom half circles, n/2 segments each.
func appendCapsule(dst []Segment, p Params) []Segment {
	r := p.Size * capsuleRadius
	hh := p.Size*capsuleHeight - r
	c := p.Position

	dst = append(dst,
		Segment{A: c.Add(Pt(-r, -hh)), B: c.Add(Pt(-r, hh))},
		Segment{A: c.Add(Pt(r, -hh)), B: c.Add(Pt(r, hh))},
	)

	half := p.Segments / 2
	arc := func(yDir, yOff float64) {
		for i := range half {
			a0 := circlePoint(math.Pi*float64(i)/float64(half), r)
			a1 := circlePoint(math.Pi*float64(i+1)/float64(half), r)
			dst = append(dst, Segment{
				A: c.Add(Pt(a0.X, yDir*a0.Y+yOff)),
				B: c.Add(Pt(a1.X, yDir*a1.Y+yOff)),
			})
		}
	}
	arc(1, hh)
	arc(-1, -hh)
	return dst
}

func circlePoint(angle, r float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{X: cos * r, Y: sin * r}
}
