// Package core holds the types shared by the game and the platform layer:
// rectangles, the cell screen, input frames and runtime config. It does
// not import Bubble Tea, so game logic stays testable without a terminal.
package core

// Rect is an axis-aligned box in field pixels or screen cells.
type Rect struct {
	X, Y int
	W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the box.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the box.
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether the box covers no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Intersects reports overlap. Boxes that only share an edge do not overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.Right() > other.X && r.X < other.Right() &&
		r.Bottom() > other.Y && r.Y < other.Bottom()
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clip returns the part of r inside bounds. A box entirely outside
// collapses to zero width or height at the nearest bounds edge.
func (r Rect) Clip(bounds Rect) Rect {
	x0 := max(r.X, bounds.X)
	y0 := max(r.Y, bounds.Y)
	x1 := min(r.Right(), bounds.Right())
	y1 := min(r.Bottom(), bounds.Bottom())
	return NewRect(x0, y0, max(x1-x0, 0), max(y1-y0, 0))
}

// ScaleCoord maps v from a [0, from) space into a [0, to) space.
// Used to project field pixels onto terminal cells.
func ScaleCoord(v, from, to int) int {
	if from <= 0 {
		return 0
	}
	return v * to / from
}
