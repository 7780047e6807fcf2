package wireframe

import "fmt"

// Segment count limits for curved shapes.
const (
	// MinSegments is the smallest sample count with a defined angular step.
	MinSegments = 2

	// MaxSegments bounds the work done per outline.
	MaxSegments = 64

	// ClampMinSegments is the lower bound used by ClampSegments. It matches
	// the range exposed for interactive editing.
	ClampMinSegments = 6
)

// Params describes one outline. It is a plain value owned by the caller.
//
// Size is the nominal extent of the shape; zero or negative sizes are
// accepted and produce a collapsed or mirrored outline. Segments is the
// number of samples for curved shapes and is ignored by Square,
// RectangularColumn and Pyramid. Position is the center of the shape in
// output coordinates.
type Params struct {
	Size     float64
	Segments int
	Position Point
}

// DefaultParams returns size 5 and 32 segments centered on the origin.
func DefaultParams() Params {
	return Params{
		Size:     5,
		Segments: 32,
	}
}

// Translate returns a copy of p with Position moved by d.
func (p Params) Translate(d Point) Params {
	p.Position = p.Position.Add(d)
	return p
}

// SegmentPolicy decides what happens to an out-of-range segment count.
type SegmentPolicy uint8

const (
	// RejectSegments fails with ErrTooFewSegments or ErrTooManySegments.
	RejectSegments SegmentPolicy = iota

	// ClampSegments moves the count into [ClampMinSegments, MaxSegments].
	ClampSegments
)

// String returns "reject" or "clamp".
func (p SegmentPolicy) String() string {
	switch p {
	case RejectSegments:
		return "reject"
	case ClampSegments:
		return "clamp"
	default:
		return fmt.Sprintf("SegmentPolicy(%d)", uint8(p))
	}
}

// ParseSegmentPolicy converts "reject" or "clamp" into a SegmentPolicy.
// The empty string selects RejectSegments.
func ParseSegmentPolicy(s string) (SegmentPolicy, error) {
	switch s {
	case "", "reject":
		return RejectSegments, nil
	case "clamp":
		return ClampSegments, nil
	default:
		return 0, fmt.Errorf("wireframe: unknown segment policy %q", s)
	}
}

// normalize validates p for kind and applies the segment policy.
// Geometry code only ever sees the returned value.
func (p Params) normalize(kind ShapeKind, policy SegmentPolicy) (Params, error) {
	if !kind.Valid() {
		return p, fmt.Errorf("%w: %d", ErrUnsupportedShape, uint8(kind))
	}
	if !isFinite(p.Size) {
		return p, fmt.Errorf("%w: %v", ErrInvalidSize, p.Size)
	}
	if !p.Position.IsFinite() {
		return p, fmt.Errorf("%w: (%v, %v)", ErrInvalidPosition, p.Position.X, p.Position.Y)
	}
	if !kind.IsCurved() {
		return p, nil
	}

	n := p.Segments
	switch policy {
	case ClampSegments:
		n = min(max(n, ClampMinSegments), MaxSegments)
		if n != p.Segments {
			Logger().Warn("wireframe: segment count clamped",
				"shape", kind.String(), "requested", p.Segments, "used", n)
		}
	default:
		if n < MinSegments {
			return p, fmt.Errorf("%w: %s needs at least %d, got %d", ErrTooFewSegments, kind, MinSegments, n)
		}
		if n > MaxSegments {
			return p, fmt.Errorf("%w: %s allows at most %d, got %d", ErrTooManySegments, kind, MaxSegments, n)
		}
	}
	p.Segments = n
	return p, nil
}

// Validate reports whether Generate would accept p for kind under policy.
func (p Params) Validate(kind ShapeKind, policy SegmentPolicy) error {
	_, err := p.normalize(kind, policy)
	return err
}
