package recording

import (
	"errors"
	"image/color"
	"slices"
	"testing"

	"github.com/gogpu/wireframe"
)

// mockBackend records every call for inspection.
type mockBackend struct {
	name       string
	beginCalls int
	endCalls   int
	width      int
	height     int
	clears     []color.NRGBA
	lines      []StrokeLineCommand
	texts      []DrawTextCommand
	beginErr   error
}

func newMockBackend(name string) *mockBackend {
	return &mockBackend{name: name}
}

func (b *mockBackend) Begin(width, height int) error {
	b.beginCalls++
	b.width = width
	b.height = height
	return b.beginErr
}

func (b *mockBackend) End() error {
	b.endCalls++
	return nil
}

func (b *mockBackend) Clear(c color.NRGBA) { b.clears = append(b.clears, c) }

func (b *mockBackend) StrokeLine(a, c wireframe.Point, s Stroke) {
	b.lines = append(b.lines, StrokeLineCommand{A: a, B: c, Stroke: s})
}

func (b *mockBackend) DrawText(s string, x, y float64, c color.NRGBA) {
	b.texts = append(b.texts, DrawTextCommand{Text: s, X: x, Y: y, Color: c})
}

// resetRegistry clears all registered backends for test isolation.
func resetRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends = make(map[string]BackendFactory)
}

func TestRegisterAndNewBackend(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("test", func() Backend {
		return newMockBackend("test")
	})

	backend, err := NewBackend("test")
	if err != nil {
		t.Fatalf("NewBackend failed: %v", err)
	}
	mock, ok := backend.(*mockBackend)
	if !ok {
		t.Fatal("backend is not a mockBackend")
	}
	if mock.name != "test" {
		t.Errorf("got name %q, want %q", mock.name, "test")
	}
}

func TestNewBackendUnknown(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	_, err := NewBackend("unknown")
	if !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("error = %v, want ErrUnknownBackend", err)
	}
}

func TestRegisterNilFactory(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for nil factory")
		}
	}()

	Register("nil", nil)
}

func TestRegisterDuplicate(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	factory := func() Backend { return newMockBackend("dup") }
	Register("dup", factory)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for duplicate registration")
		}
	}()

	Register("dup", factory)
}

func TestIsRegistered(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	if IsRegistered("temp") {
		t.Error("empty registry reports temp as registered")
	}
	Register("temp", func() Backend { return newMockBackend("temp") })
	if !IsRegistered("temp") {
		t.Error("backend should be registered")
	}
	if IsRegistered("Temp") {
		t.Error("names are case sensitive")
	}
}

func TestBackendsSorted(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	for _, name := range []string{"svg", "raster", "pdf"} {
		Register(name, func() Backend { return newMockBackend(name) })
	}
	if got, want := Backends(), []string{"pdf", "raster", "svg"}; !slices.Equal(got, want) {
		t.Errorf("Backends() = %v, want %v", got, want)
	}
}

func TestMustBackendPanics(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for unknown backend")
		}
	}()
	MustBackend("missing")
}
