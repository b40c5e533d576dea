// Package geom provides the 2D vector and rectangle math used by the
// simulation: points, axis-aligned rectangles defined by center and
// half-extent, scalar clamping, and AABB overlap tests.
package geom

// Vec2 is a 2D point or direction in world units.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by the scalar s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Clamp restricts v to the closed interval [lo, hi], snapping to the
// nearer bound if outside it. lo must not exceed hi.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampVec clamps each component of v independently into [lo, hi].
func ClampVec(v, lo, hi Vec2) Vec2 {
	return Vec2{
		X: Clamp(v.X, lo.X, hi.X),
		Y: Clamp(v.Y, lo.Y, hi.Y),
	}
}

// Rect is an axis-aligned rectangle described by its center point and
// half-extent along each axis.
type Rect struct {
	Center Vec2
	Half   Vec2
}

// Overlaps reports whether r and o share any interior area. Rectangles
// that merely touch along an edge do not overlap. The test is symmetric.
func (r Rect) Overlaps(o Rect) bool {
	dx := r.Center.X - o.Center.X
	if dx < 0 {
		dx = -dx
	}
	if dx >= r.Half.X+o.Half.X {
		return false
	}
	dy := r.Center.Y - o.Center.Y
	if dy < 0 {
		dy = -dy
	}
	return dy < r.Half.Y+o.Half.Y
}
