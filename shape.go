package wireframe

import (
	"fmt"
	"strings"
)

// ShapeKind selects which outline Generate produces.
type ShapeKind uint8

const (
	Square ShapeKind = iota
	RectangularColumn
	Pyramid
	Cylinder
	Sphere
	Capsule

	shapeKindCount
)

var shapeKindNames = [...]string{
	Square:            "square",
	RectangularColumn: "rectangular-column",
	Pyramid:           "pyramid",
	Cylinder:          "cylinder",
	Sphere:            "sphere",
	Capsule:           "capsule",
}

// aliases accepted by ParseShapeKind in addition to the canonical names.
var shapeKindAliases = map[string]ShapeKind{
	"column":            RectangularColumn,
	"rectangularcolumn": RectangularColumn,
	"rectangle":         RectangularColumn,
	"circle":            Sphere,
}

// Kinds returns every supported shape in declaration order.
func Kinds() []ShapeKind {
	out := make([]ShapeKind, 0, shapeKindCount)
	for k := Square; k < shapeKindCount; k++ {
		out = append(out, k)
	}
	return out
}

// Valid reports whether k is one of the declared shapes.
func (k ShapeKind) Valid() bool {
	return k < shapeKindCount
}

// IsCurved reports whether the outline is built from sampled circles, in
// which case Params.Segments controls its resolution.
func (k ShapeKind) IsCurved() bool {
	switch k {
	case Cylinder, Sphere, Capsule:
		return true
	default:
		return false
	}
}

// String returns the canonical lower-case name of the shape.
func (k ShapeKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("ShapeKind(%d)", uint8(k))
	}
	return shapeKindNames[k]
}

// ParseShapeKind converts a name into a ShapeKind. Matching ignores case,
// surrounding space, and treats '_' and ' ' like '-'.
func ParseShapeKind(s string) (ShapeKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.NewReplacer("_", "-", " ", "-").Replace(name)
	for k, n := range shapeKindNames {
		if n == name {
			return ShapeKind(k), nil
		}
	}
	if k, ok := shapeKindAliases[name]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedShape, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k ShapeKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedShape, uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ShapeKind) UnmarshalText(text []byte) error {
	v, err := ParseShapeKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
