package raster

// fillTolerance is the squared-Euclidean color distance (over all four
// channels) below which a pixel still counts as part of the region being
// filled. The value is tuned so the fill eats into near-white anti-aliased
// edge pixels without leaking across true black outlines. Do not change it:
// visible fill behavior depends on this exact threshold.
const fillTolerance = 12000

type coord struct {
	x, y int
}

// dist2 returns the squared Euclidean distance between two colors across all
// four channels.
func dist2(a, b Color) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	da := int(a.A) - int(b.A)
	return dr*dr + dg*dg + db*db + da*da
}

// FloodFill repaints the maximal 4-connected region of pixels visually
// similar to the seed pixel with target. An out-of-bounds seed is a no-op:
// clicks just outside the drawable area are expected and harmless. The
// target's alpha is forced opaque before any write.
//
// The traversal is iterative with an explicit stack so that a fill covering
// the whole canvas cannot overflow the call stack, and a W×H visited grid
// bounds total work to O(W·H). Boundary pixels (distance ≥ tolerance) are
// left untouched and unmarked, so they may be re-examined from another
// direction but never become fill.
func FloodFill(b *Buffer, x, y int, target Color) {
	if !b.inBounds(x, y) {
		return
	}
	target.A = 255

	ref := b.at(x, y)
	if ref == target {
		// Already the target color: filling would visit the whole region
		// for no visible change.
		return
	}

	visited := make([]byte, b.w*b.h)
	stack := make([]coord, 0, 64)
	stack = append(stack, coord{x, y})

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !b.inBounds(c.x, c.y) {
			continue
		}
		if visited[c.y*b.w+c.x] != 0 {
			continue
		}
		if dist2(b.at(c.x, c.y), ref) >= fillTolerance {
			continue
		}

		b.set(c.x, c.y, target)
		visited[c.y*b.w+c.x] = 1

		stack = append(stack,
			coord{c.x + 1, c.y},
			coord{c.x - 1, c.y},
			coord{c.x, c.y + 1},
			coord{c.x, c.y - 1},
		)
	}
}
