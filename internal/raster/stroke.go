package raster

import "math"

// Point is a position on the canvas in pixel coordinates. Pointer events
// deliver sub-pixel positions, so the components are not required integral.
type Point struct {
	X, Y float32
}

// DrawSegment rasterizes a solid line segment from p0 to p1 with round caps,
// so consecutive segments of a freehand stroke join without gaps. If eraser
// is true the color argument is ignored and the segment is painted in the
// surface background white. A zero-length segment (p0 == p1) still produces
// a dot of diameter ≈ width.
//
// Width must be positive; the drawing surface clamps it before calling.
func DrawSegment(b *Buffer, p0, p1 Point, c Color, width float32, eraser bool) {
	if eraser {
		c = White
	}
	r := float64(width) / 2

	x0, y0 := float64(p0.X), float64(p0.Y)
	x1, y1 := float64(p1.X), float64(p1.Y)

	minX := int(math.Floor(math.Min(x0, x1) - r))
	maxX := int(math.Ceil(math.Max(x0, x1) + r))
	minY := int(math.Floor(math.Min(y0, y1) - r))
	maxY := int(math.Ceil(math.Max(y0, y1) + r))

	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= b.w {
		maxX = b.w - 1
	}
	if maxY >= b.h {
		maxY = b.h - 1
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if distToSegment(float64(x), float64(y), x0, y0, x1, y1) <= r {
				b.set(x, y, c)
			}
		}
	}

	// Guarantee the dot for hairline strokes: with width 1 the radius is
	// 0.5 and the rounded seed pixel always falls inside it, but clamp
	// rounding at the edges can leave a short zero-length tap unpainted.
	if p0 == p1 {
		sx, sy := int(math.Round(x0)), int(math.Round(y0))
		if b.inBounds(sx, sy) {
			b.set(sx, sy, c)
		}
	}
}

// distToSegment returns the distance from point (px, py) to the segment
// (x0, y0)-(x1, y1).
func distToSegment(px, py, x0, y0, x1, y1 float64) float64 {
	dx := x1 - x0
	dy := y1 - y0
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return math.Hypot(px-x0, py-y0)
	}
	t := ((px-x0)*dx + (py-y0)*dy) / l2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return math.Hypot(px-(x0+t*dx), py-(y0+t*dy))
}
