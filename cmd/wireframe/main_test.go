package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func defaultOptions() options {
	return options{
		shape:    "square",
		size:     5,
		segments: 32,
		focal:    5,
		width:    64,
		height:   64,
	}
}

func TestRunPrintsSegments(t *testing.T) {
	o := defaultOptions()
	o.shape = "sphere"
	o.size = 2
	o.segments = 4

	var out bytes.Buffer
	if err := run(context.Background(), o, &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("printed %d lines, want 4:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "1 0 ") {
		t.Errorf("first line = %q, want to start at (1, 0)", lines[0])
	}
}

func TestRunRejectsAndClamps(t *testing.T) {
	o := defaultOptions()
	o.shape = "capsule"
	o.segments = 1
	if err := run(context.Background(), o, &bytes.Buffer{}); err == nil {
		t.Fatal("run() with 1 segment expected error")
	}

	o.clamp = true
	var out bytes.Buffer
	if err := run(context.Background(), o, &out); err != nil {
		t.Fatalf("run() with -clamp error = %v", err)
	}
	if n := strings.Count(out.String(), "\n"); n != 8 {
		t.Errorf("printed %d segments, want 8", n)
	}
}

func TestRunWritesFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"out.png", "out.svg"} {
		o := defaultOptions()
		o.shape = "cylinder"
		o.output = filepath.Join(dir, name)
		if err := run(context.Background(), o, &bytes.Buffer{}); err != nil {
			t.Fatalf("%s: run() error = %v", name, err)
		}
		if fi, err := os.Stat(o.output); err != nil || fi.Size() == 0 {
			t.Errorf("%s: output missing or empty (%v)", name, err)
		}
	}
}

func TestRunScene(t *testing.T) {
	o := defaultOptions()
	o.sheet = filepath.Join("..", "..", "scene", "testdata", "shapes.yaml")
	o.output = filepath.Join(t.TempDir(), "shapes.svg")
	if err := run(context.Background(), o, &bytes.Buffer{}); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	data, err := os.ReadFile(o.output)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `width="320"`) {
		t.Error("sheet canvas size not used")
	}
}

func TestRunFlagErrors(t *testing.T) {
	tests := []struct {
		name string
		edit func(*options)
	}{
		{"watch without scene", func(o *options) { o.watch = true }},
		{"unknown shape", func(o *options) { o.shape = "torus" }},
		{"unknown extension", func(o *options) { o.output = "out.bmp" }},
		{"unknown format", func(o *options) { o.output = "out.png"; o.format = "pdf" }},
		{"oversized canvas", func(o *options) { o.output = "out.png"; o.width = 3037000500 }},
		{"zero focal length", func(o *options) { o.focal = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			tt.edit(&o)
			if err := run(context.Background(), o, &bytes.Buffer{}); err == nil {
				t.Error("run() expected error")
			}
		})
	}
}

func TestBackendName(t *testing.T) {
	tests := []struct {
		format, output, want string
	}{
		{"", "a.png", "raster"},
		{"", "a.PNG", "raster"},
		{"", "dir/a.svg", "svg"},
		{"svg", "a.png", "svg"},
		{"png", "a.svg", "raster"},
		{"raster", "out", "raster"},
	}
	for _, tt := range tests {
		got, err := backendName(tt.format, tt.output)
		if err != nil || got != tt.want {
			t.Errorf("backendName(%q, %q) = %q, %v; want %q", tt.format, tt.output, got, err, tt.want)
		}
	}
	for _, bad := range [][2]string{{"", "out"}, {"", "out.bmp"}, {"pdf", "out.png"}} {
		if _, err := backendName(bad[0], bad[1]); err == nil {
			t.Errorf("backendName(%q, %q) expected error", bad[0], bad[1])
		}
	}
}
