// Package scene loads YAML sheets describing several wireframe shapes and
// renders them through the recording backends.
//
// A sheet looks like:
//
//	canvas: {width: 512, height: 512, margin: 24, background: white}
//	camera: {focal_length: 5}
//	segment_policy: clamp
//	shapes:
//	  - shape: cylinder
//	    size: 5
//	    segments: 32
//	    position: [0, 0]
//	    depth: 0
//	    stroke: {color: "#1e90ff", width: 2}
//	    label: cylinder
//
// Omitted values fall back to wireframe.DefaultParams,
// wireframe.DefaultPerspective and a 512x512 white canvas.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"github.com/mazznoer/csscolorparser"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/wireframe"
	"github.com/gogpu/wireframe/recording"
)

// Canvas defaults.
const (
	DefaultWidth  = 512
	DefaultHeight = 512
	DefaultMargin = 16.0
)

// ErrEmptySheet is returned for a sheet with no content or no shapes.
var ErrEmptySheet = errors.New("scene: sheet has no shapes")

// Sheet is the YAML document as written by the user.
type Sheet struct {
	Canvas        CanvasSpec  `yaml:"canvas"`
	Camera        CameraSpec  `yaml:"camera"`
	SegmentPolicy string      `yaml:"segment_policy"`
	Shapes        []ShapeSpec `yaml:"shapes"`
}

type CanvasSpec struct {
	Width      int      `yaml:"width"`
	Height     int      `yaml:"height"`
	Margin     *float64 `yaml:"margin"`
	Background string   `yaml:"background"`
}

type CameraSpec struct {
	FocalLength *float64 `yaml:"focal_length"`
}

type ShapeSpec struct {
	Shape    string     `yaml:"shape"`
	Size     *float64   `yaml:"size"`
	Segments *int       `yaml:"segments"`
	Position [2]float64 `yaml:"position"`
	Depth    float64    `yaml:"depth"`
	Stroke   StrokeSpec `yaml:"stroke"`
	Label    string     `yaml:"label"`
}

type StrokeSpec struct {
	Color string  `yaml:"color"`
	Width float64 `yaml:"width"`
}

// Scene is a validated sheet with every default applied.
type Scene struct {
	Width       int
	Height      int
	Margin      float64
	Background  color.NRGBA
	Perspective wireframe.Perspective
	Policy      wireframe.SegmentPolicy
	Items       []Item
}

// Item is one shape of a Scene.
type Item struct {
	Kind   wireframe.ShapeKind
	Params wireframe.Params
	Depth  float64
	Stroke recording.Stroke
	Label  string
}

// Load reads and parses the sheet at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: load %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a sheet strictly (unknown keys are errors) and resolves it
// into a Scene.
func Parse(data []byte) (*Scene, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var sheet Sheet
	if err := dec.Decode(&sheet); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptySheet
		}
		return nil, fmt.Errorf("scene: decode: %w", err)
	}
	return sheet.Resolve()
}

// Resolve validates the sheet and applies defaults.
func (sh Sheet) Resolve() (*Scene, error) {
	if len(sh.Shapes) == 0 {
		return nil, ErrEmptySheet
	}

	s := &Scene{
		Width:       sh.Canvas.Width,
		Height:      sh.Canvas.Height,
		Margin:      DefaultMargin,
		Background:  color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Perspective: wireframe.DefaultPerspective(),
	}
	if s.Width == 0 {
		s.Width = DefaultWidth
	}
	if s.Height == 0 {
		s.Height = DefaultHeight
	}
	if err := recording.CheckCanvasSize(s.Width, s.Height); err != nil {
		return nil, fmt.Errorf("scene: canvas: %w", err)
	}
	if m := sh.Canvas.Margin; m != nil {
		if *m < 0 {
			return nil, fmt.Errorf("scene: canvas: negative margin %v", *m)
		}
		s.Margin = *m
	}
	if sh.Canvas.Background != "" {
		c, err := parseColor(sh.Canvas.Background)
		if err != nil {
			return nil, fmt.Errorf("scene: canvas: background: %w", err)
		}
		s.Background = c
	}
	if f := sh.Camera.FocalLength; f != nil {
		if math.IsNaN(*f) || math.IsInf(*f, 0) || *f <= 0 {
			return nil, fmt.Errorf("scene: camera: invalid focal length %v", *f)
		}
		s.Perspective.FocalLength = *f
	}

	policy, err := wireframe.ParseSegmentPolicy(sh.SegmentPolicy)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	s.Policy = policy

	s.Items = make([]Item, 0, len(sh.Shapes))
	for i, spec := range sh.Shapes {
		item, err := spec.resolve(policy)
		if err != nil {
			return nil, fmt.Errorf("scene: shapes[%d]: %w", i, err)
		}
		s.Items = append(s.Items, item)
	}
	return s, nil
}

func (spec ShapeSpec) resolve(policy wireframe.SegmentPolicy) (Item, error) {
	kind, err := wireframe.ParseShapeKind(spec.Shape)
	if err != nil {
		return Item{}, err
	}

	params := wireframe.DefaultParams()
	if spec.Size != nil {
		params.Size = *spec.Size
	}
	if spec.Segments != nil {
		params.Segments = *spec.Segments
	}
	params.Position = wireframe.Pt(spec.Position[0], spec.Position[1])
	if err := params.Validate(kind, policy); err != nil {
		return Item{}, err
	}

	stroke := recording.DefaultStroke()
	if spec.Stroke.Color != "" {
		if stroke.Color, err = parseColor(spec.Stroke.Color); err != nil {
			return Item{}, fmt.Errorf("stroke: %w", err)
		}
	}
	if spec.Stroke.Width < 0 {
		return Item{}, fmt.Errorf("stroke: negative width %v", spec.Stroke.Width)
	}
	if spec.Stroke.Width > 0 {
		stroke.Width = spec.Stroke.Width
	}

	return Item{
		Kind:   kind,
		Params: params,
		Depth:  spec.Depth,
		Stroke: stroke,
		Label:  spec.Label,
	}, nil
}

// parseColor accepts any CSS color: names, #rgb, #rrggbbaa, rgb(), hsl().
func parseColor(s string) (color.NRGBA, error) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	r, g, b, a := c.RGBA255()
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
