package wireframe

import "math"

// Segment is a single straight line between two points, the atomic unit of
// an outline.
type Segment struct {
	A, B Point
}

// Seg is a convenience function to create a Segment.
func Seg(a, b Point) Segment {
	return Segment{A: a, B: b}
}

// Length returns the distance between the segment endpoints.
func (s Segment) Length() float64 {
	return s.A.Distance(s.B)
}

// Reverse returns the segment with its endpoints swapped.
func (s Segment) Reverse() Segment {
	return Segment{A: s.B, B: s.A}
}

// Translate returns the segment moved by d.
func (s Segment) Translate(d Point) Segment {
	return Segment{A: s.A.Add(d), B: s.B.Add(d)}
}

// Approx reports whether both endpoints match within eps, in order.
func (s Segment) Approx(o Segment, eps float64) bool {
	return s.A.Approx(o.A, eps) && s.B.Approx(o.B, eps)
}

// TranslateSegments returns a new slice with every segment moved by d.
// The input is not modified.
func TranslateSegments(segs []Segment, d Point) []Segment {
	out := make([]Segment, len(segs))
	for i, s := range segs {
		out[i] = s.Translate(d)
	}
	return out
}

// Rect is an axis-aligned rectangle given by its minimum and maximum corners.
type Rect struct {
	Min, Max Point
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point { return r.Min.Lerp(r.Max, 0.5) }

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, o.Min.X), Y: math.Min(r.Min.Y, o.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, o.Max.X), Y: math.Max(r.Max.Y, o.Max.Y)},
	}
}

// Bounds returns the bounding rectangle of all segment endpoints.
// The boolean is false when segs is empty.
func Bounds(segs []Segment) (Rect, bool) {
	if len(segs) == 0 {
		return Rect{}, false
	}
	r := Rect{Min: segs[0].A, Max: segs[0].A}
	for _, s := range segs {
		for _, p := range [2]Point{s.A, s.B} {
			r.Min.X = math.Min(r.Min.X, p.X)
			r.Min.Y = math.Min(r.Min.Y, p.Y)
			r.Max.X = math.Max(r.Max.X, p.X)
			r.Max.Y = math.Max(r.Max.Y, p.Y)
		}
	}
	return r, true
}
