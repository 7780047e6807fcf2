// Command wireframe renders primitive shape outlines.
//
// Render a single shape:
//
//	wireframe -shape capsule -segments 24 -o capsule.png
//
// Print the segments instead of rendering (one "x0 y0 x1 y1" per line):
//
//	wireframe -shape sphere -segments 8
//
// Render a YAML sheet, re-rendering whenever it changes:
//
//	wireframe -scene shapes.yaml -o shapes.svg -watch
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/gogpu/wireframe"
	"github.com/gogpu/wireframe/recording"
	_ "github.com/gogpu/wireframe/recording/backends/raster"
	_ "github.com/gogpu/wireframe/recording/backends/svg"
	"github.com/gogpu/wireframe/scene"
)

type options struct {
	shape    string
	size     float64
	segments int
	x, y     float64
	depth    float64
	focal    float64
	clamp    bool
	width    int
	height   int
	format   string
	output   string
	sheet    string
	watch    bool
	verbose  bool
}

func main() {
	var o options
	defaults := wireframe.DefaultParams()

	flag.StringVar(&o.shape, "shape", "square", "shape: square, rectangular-column, pyramid, cylinder, sphere, capsule")
	flag.Float64Var(&o.size, "size", defaults.Size, "shape size")
	flag.IntVar(&o.segments, "segments", defaults.Segments, "samples for curved shapes")
	flag.Float64Var(&o.x, "x", 0, "shape center x")
	flag.Float64Var(&o.y, "y", 0, "shape center y")
	flag.Float64Var(&o.depth, "depth", 0, "depth used for the perspective scale")
	flag.Float64Var(&o.focal, "focal", wireframe.DefaultFocalLength, "perspective focal length")
	flag.BoolVar(&o.clamp, "clamp", false, "clamp the segment count instead of rejecting it")
	flag.IntVar(&o.width, "width", scene.DefaultWidth, "image width")
	flag.IntVar(&o.height, "height", scene.DefaultHeight, "image height")
	flag.StringVar(&o.format, "format", "", "output format: png or a backend name ("+strings.Join(recording.Backends(), ", ")+"); default from -o extension")
	flag.StringVar(&o.output, "o", "", "output file (default: print segments to stdout)")
	flag.StringVar(&o.sheet, "scene", "", "render a YAML sheet instead of a single shape")
	flag.BoolVar(&o.watch, "watch", false, "with -scene, re-render whenever the sheet changes")
	flag.BoolVar(&o.verbose, "v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	wireframe.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, o, os.Stdout); err != nil {
		logger.Error("wireframe failed", "err", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, o options, stdout io.Writer) error {
	if o.watch && o.sheet == "" {
		return errors.New("-watch requires -scene")
	}
	if o.output != "" {
		if _, err := backendName(o.format, o.output); err != nil {
			return err
		}
	}
	if o.sheet != "" {
		return runScene(ctx, o, stdout)
	}

	s, err := singleShape(o)
	if err != nil {
		return err
	}
	if o.output == "" {
		layers, err := s.Build()
		if err != nil {
			return err
		}
		return printSegments(stdout, layers[0].Segments)
	}
	return render(s, o)
}

// singleShape expresses the shape flags as a one-item scene so both paths
// share validation and rendering.
func singleShape(o options) (*scene.Scene, error) {
	policy := "reject"
	if o.clamp {
		policy = "clamp"
	}
	size, segments := o.size, o.segments
	sheet := scene.Sheet{
		Canvas:        scene.CanvasSpec{Width: o.width, Height: o.height},
		Camera:        scene.CameraSpec{FocalLength: &o.focal},
		SegmentPolicy: policy,
		Shapes: []scene.ShapeSpec{{
			Shape:    o.shape,
			Size:     &size,
			Segments: &segments,
			Position: [2]float64{o.x, o.y},
			Depth:    o.depth,
		}},
	}
	return sheet.Resolve()
}

func runScene(ctx context.Context, o options, stdout io.Writer) error {
	if o.output == "" {
		if o.watch {
			return errors.New("-watch requires -o")
		}
		s, err := scene.Load(o.sheet)
		if err != nil {
			return err
		}
		layers, err := s.Build()
		if err != nil {
			return err
		}
		for _, l := range layers {
			if err := printSegments(stdout, l.Segments); err != nil {
				return err
			}
		}
		return nil
	}

	if !o.watch {
		s, err := scene.Load(o.sheet)
		if err != nil {
			return err
		}
		return render(s, o)
	}
	return scene.Watch(ctx, o.sheet, func(s *scene.Scene) error {
		return render(s, o)
	})
}

func render(s *scene.Scene, o options) error {
	name, err := backendName(o.format, o.output)
	if err != nil {
		return err
	}
	backend, err := recording.NewBackend(name)
	if err != nil {
		return err
	}
	fb, ok := backend.(recording.FileBackend)
	if !ok {
		return fmt.Errorf("backend %q cannot write files", name)
	}
	if err := s.Render(fb); err != nil {
		return err
	}
	if err := fb.SaveToFile(o.output); err != nil {
		return err
	}
	wireframe.Logger().Info("rendered", "output", o.output, "backend", name, "shapes", len(s.Items))
	return nil
}

func backendName(format, output string) (string, error) {
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
		if format == "" {
			return "", fmt.Errorf("cannot infer format from %q; use -format", output)
		}
	}
	name := format
	if name == "png" {
		name = "raster"
	}
	if !recording.IsRegistered(name) {
		return "", fmt.Errorf("unknown format %q; use png or one of: %s", format, strings.Join(recording.Backends(), ", "))
	}
	return name, nil
}

func printSegments(w io.Writer, segs []wireframe.Segment) error {
	bw := bufio.NewWriter(w)
	for _, s := range segs {
		fmt.Fprintf(bw, "%g %g %g %g\n", s.A.X, s.A.Y, s.B.X, s.B.Y)
	}
	return bw.Flush()
}
