package scene

import (
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/gogpu/wireframe"
	"github.com/gogpu/wireframe/recording"
)

func TestLoad(t *testing.T) {
	s, err := Load("testdata/shapes.yaml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if s.Width != 320 || s.Height != 240 || s.Margin != 12 {
		t.Errorf("canvas = %dx%d margin %v", s.Width, s.Height, s.Margin)
	}
	if s.Background != (color.NRGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff}) {
		t.Errorf("background = %v", s.Background)
	}
	if s.Policy != wireframe.ClampSegments {
		t.Errorf("policy = %v, want clamp", s.Policy)
	}
	if len(s.Items) != 3 {
		t.Fatalf("got %d items, want 3", len(s.Items))
	}

	sq := s.Items[0]
	if sq.Kind != wireframe.Square || sq.Params.Size != 2 || sq.Params.Position != wireframe.Pt(-4, 0) {
		t.Errorf("item 0 = %+v", sq)
	}
	if sq.Stroke.Width != 1 || sq.Stroke.Color != (color.NRGBA{A: 255}) {
		t.Errorf("item 0 stroke = %+v, want default", sq.Stroke)
	}

	cyl := s.Items[1]
	if cyl.Stroke.Color != (color.NRGBA{R: 30, G: 144, B: 255, A: 255}) || cyl.Stroke.Width != 2 {
		t.Errorf("item 1 stroke = %+v", cyl.Stroke)
	}

	if capsule := s.Items[2]; capsule.Depth != 5 || capsule.Stroke.Color.R != 200 {
		t.Errorf("item 2 = %+v", capsule)
	}
}

func TestParseDefaults(t *testing.T) {
	s, err := Parse([]byte("shapes:\n  - shape: sphere\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if s.Width != DefaultWidth || s.Height != DefaultHeight || s.Margin != DefaultMargin {
		t.Errorf("canvas = %dx%d margin %v", s.Width, s.Height, s.Margin)
	}
	if s.Perspective != wireframe.DefaultPerspective() {
		t.Errorf("perspective = %+v", s.Perspective)
	}
	if got := s.Items[0].Params; got != wireframe.DefaultParams() {
		t.Errorf("params = %+v, want defaults", got)
	}
}

func TestParseExplicitZeroSize(t *testing.T) {
	s, err := Parse([]byte("shapes:\n  - {shape: square, size: 0}\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if s.Items[0].Params.Size != 0 {
		t.Errorf("size = %v, want explicit 0", s.Items[0].Params.Size)
	}
}

func TestParseCanvasAndCameraLimits(t *testing.T) {
	s, err := Parse([]byte("canvas: {width: 8192, height: 1}\ncamera: {focal_length: 0.5}\nshapes:\n  - shape: square\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if s.Width != recording.MaxCanvasSize || s.Height != 1 {
		t.Errorf("canvas = %dx%d", s.Width, s.Height)
	}
	if s.Perspective.FocalLength != 0.5 {
		t.Errorf("focal length = %v, want 0.5", s.Perspective.FocalLength)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		sheet   string
		wantErr error
		wantMsg string
	}{
		{"empty", "", ErrEmptySheet, ""},
		{"no shapes", "canvas: {width: 10}\n", ErrEmptySheet, ""},
		{"unknown field", "shapes:\n  - shape: square\n    colour: red\n", nil, "colour"},
		{"unknown shape", "shapes:\n  - shape: square\n  - shape: torus\n", wireframe.ErrUnsupportedShape, "shapes[1]"},
		{"too few segments", "shapes:\n  - {shape: sphere, segments: 1}\n", wireframe.ErrTooFewSegments, "shapes[0]"},
		{"bad policy", "segment_policy: round\nshapes:\n  - shape: square\n", nil, "round"},
		{"bad color", "shapes:\n  - {shape: square, stroke: {color: notacolor}}\n", nil, "notacolor"},
		{"bad background", "canvas: {background: nope}\nshapes:\n  - shape: square\n", nil, "background"},
		{"negative margin", "canvas: {margin: -1}\nshapes:\n  - shape: square\n", nil, "margin"},
		{"negative width", "shapes:\n  - {shape: square, stroke: {width: -2}}\n", nil, "negative width"},
		{"short position", "shapes:\n  - {shape: square, position: [1]}\n", nil, "decode"},
		{"huge canvas", "canvas: {width: 3037000500, height: 3037000500}\nshapes:\n  - shape: square\n", recording.ErrCanvasSize, "canvas"},
		{"canvas too wide", "canvas: {width: 8193, height: 10}\nshapes:\n  - shape: square\n", recording.ErrCanvasSize, "canvas"},
		{"negative canvas", "canvas: {width: -4}\nshapes:\n  - shape: square\n", recording.ErrCanvasSize, "canvas"},
		{"NaN focal length", "camera: {focal_length: .nan}\nshapes:\n  - shape: square\n", nil, "focal length"},
		{"infinite focal length", "camera: {focal_length: .inf}\nshapes:\n  - shape: square\n", nil, "focal length"},
		{"zero focal length", "camera: {focal_length: 0}\nshapes:\n  - shape: square\n", nil, "focal length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.sheet))
			if err == nil {
				t.Fatal("Parse() expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("testdata/missing.yaml"); err == nil {
		t.Error("Load() of missing file expected error")
	}
}
