// Package wireframe generates 2D wireframe outlines for a small set of
// primitive shapes.
//
// # Overview
//
// An outline is an ordered list of [Segment] values, each a straight line
// between two points. The list can be fed to any line renderer: an
// immediate-mode draw loop, an SVG writer, or the export backends in the
// recording sub-package.
//
//	segs, err := wireframe.Generate(wireframe.Cylinder, wireframe.Params{
//	    Size:     5,
//	    Segments: 32,
//	    Position: wireframe.Pt(0, 0),
//	})
//	if err != nil {
//	    // invalid parameters
//	}
//	for _, s := range segs {
//	    drawLine(s.A, s.B)
//	}
//
// # Shapes
//
//   - Square: axis-aligned square, 4 segments
//   - RectangularColumn: tall rectangle, 4 segments
//   - Pyramid: triangle with a raised apex, 3 segments
//   - Cylinder: two flattened rings and two silhouette edges, 2n+2 segments
//   - Sphere: circle, n segments
//   - Capsule: two sides and two half circles, 2+2*(n/2) segments
//
// # Coordinate System
//
// Outlines use a y-up coordinate system centered on Params.Position.
// Angles are in radians, 0 is right, increasing counter-clockwise.
//
// # Perspective
//
// [Perspective] computes the depth scale focal/(focal+depth) and can project
// an outline toward the origin. It is a plain value passed by the caller;
// there is no global camera.
//
// # Concurrency
//
// Generate touches no shared state and is safe to call from any goroutine.
package wireframe
