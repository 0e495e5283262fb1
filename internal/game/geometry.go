package game

import "fmt"

// Rect is an axis-aligned box in arena coordinates. W and H must be positive.
type Rect struct {
	X int
	Y int
	W int
	H int
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.W, r.H)
}

// Right returns the x coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Valid reports whether the box has positive dimensions.
func (r Rect) Valid() bool {
	return r.W > 0 && r.H > 0
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Inside reports whether r lies entirely within bounds.
func (r Rect) Inside(bounds Rect) bool {
	return r.X >= bounds.X && r.Y >= bounds.Y &&
		r.Right() <= bounds.Right() && r.Bottom() <= bounds.Bottom()
}

// ClampTo shifts r the minimum distance needed to lie within bounds.
// bounds must be at least as large as r.
func (r Rect) ClampTo(bounds Rect) Rect {
	if r.X < bounds.X {
		r.X = bounds.X
	}
	if r.Right() > bounds.Right() {
		r.X = bounds.Right() - r.W
	}
	if r.Y < bounds.Y {
		r.Y = bounds.Y
	}
	if r.Bottom() > bounds.Bottom() {
		r.Y = bounds.Bottom() - r.H
	}
	return r
}

// Overlaps reports whether a and b share any area. Boxes that only touch
// along an edge do not overlap.
func Overlaps(a, b Rect) bool {
	return !(a.X >= b.Right() || a.Right() <= b.X || a.Y >= b.Bottom() || a.Bottom() <= b.Y)
}

// AnyOverlap tests box against each segment in order and returns on the
// first hit. With skipFirst set, segments[0] is not tested.
func AnyOverlap(box Rect, segments []Rect, skipFirst bool) bool {
	start := 0
	if skipFirst {
		start = 1
	}
	for i := start; i < len(segments); i++ {
		if Overlaps(box, segments[i]) {
			return true
		}
	}
	return false
}
