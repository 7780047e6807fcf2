package wireframe

import "errors"

var (
	// ErrUnsupportedShape is returned for a ShapeKind outside the known set.
	ErrUnsupportedShape = errors.New("wireframe: unsupported shape")

	// ErrTooFewSegments is returned when a curved shape is asked for fewer
	// than MinSegments samples under RejectSegments.
	ErrTooFewSegments = errors.New("wireframe: too few segments")

	// ErrTooManySegments is returned when a curved shape is asked for more
	// than MaxSegments samples under RejectSegments.
	ErrTooManySegments = errors.New("wireframe: too many segments")

	// ErrInvalidSize is returned for a NaN or infinite size.
	ErrInvalidSize = errors.New("wireframe: invalid size")

	// ErrInvalidPosition is returned for a NaN or infinite position.
	ErrInvalidPosition = errors.New("wireframe: invalid position")

	// ErrDegeneratePerspective is returned when focal+depth is zero or the
	// resulting scale is not finite.
	ErrDegeneratePerspective = errors.New("wireframe: degenerate perspective")
)
