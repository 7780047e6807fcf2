package recording

import (
	"errors"
	"fmt"
)

// MaxCanvasSize bounds each side of a canvas, in pixels.
const MaxCanvasSize = 8192

// ErrCanvasSize is returned for a canvas side outside 1..MaxCanvasSize.
var ErrCanvasSize = errors.New("recording: invalid canvas size")

// CheckCanvasSize reports whether a width×height canvas may be allocated.
// Bounding each side also keeps width*height far from int overflow.
func CheckCanvasSize(width, height int) error {
	if width <= 0 || height <= 0 || width > MaxCanvasSize || height > MaxCanvasSize {
		return fmt.Errorf("%w: width=%d, height=%d, max %d",
			ErrCanvasSize, width, height, MaxCanvasSize)
	}
	return nil
}
