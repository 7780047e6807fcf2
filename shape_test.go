package wireframe

import (
	"errors"
	"testing"
)

func TestParseShapeKind(t *testing.T) {
	tests := []struct {
		in   string
		want ShapeKind
	}{
		{"square", Square},
		{"SQUARE", Square},
		{"  pyramid ", Pyramid},
		{"rectangular-column", RectangularColumn},
		{"rectangular_column", RectangularColumn},
		{"Rectangular Column", RectangularColumn},
		{"RectangularColumn", RectangularColumn},
		{"column", RectangularColumn},
		{"cylinder", Cylinder},
		{"sphere", Sphere},
		{"circle", Sphere},
		{"Capsule", Capsule},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseShapeKind(tt.in)
			if err != nil {
				t.Fatalf("ParseShapeKind(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseShapeKind(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseShapeKindUnknown(t *testing.T) {
	for _, in := range []string{"", "cube", "torus"} {
		if _, err := ParseShapeKind(in); !errors.Is(err, ErrUnsupportedShape) {
			t.Errorf("ParseShapeKind(%q) error = %v, want ErrUnsupportedShape", in, err)
		}
	}
}

func TestShapeKindRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		text, err := k.MarshalText()
		if err != nil {
			t.Fatalf("%v.MarshalText() error = %v", k, err)
		}
		var got ShapeKind
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error = %v", text, err)
		}
		if got != k {
			t.Errorf("round trip of %v = %v", k, got)
		}
	}
}

func TestShapeKindInvalid(t *testing.T) {
	k := ShapeKind(200)
	if k.Valid() {
		t.Error("ShapeKind(200).Valid() = true")
	}
	if got := k.String(); got != "ShapeKind(200)" {
		t.Errorf("String() = %q", got)
	}
	if _, err := k.MarshalText(); !errors.Is(err, ErrUnsupportedShape) {
		t.Errorf("MarshalText() error = %v, want ErrUnsupportedShape", err)
	}
}

func TestShapeKindIsCurved(t *testing.T) {
	curved := map[ShapeKind]bool{Cylinder: true, Sphere: true, Capsule: true}
	if n := len(Kinds()); n != 6 {
		t.Fatalf("len(Kinds()) = %d, want 6", n)
	}
	for _, k := range Kinds() {
		if k.IsCurved() != curved[k] {
			t.Errorf("%v.IsCurved() = %v", k, k.IsCurved())
		}
	}
}
