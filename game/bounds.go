package game

import (
	"errors"
	"fmt"

	"github.com/oakfield/boargame/geom"
)

// Wall names one edge of the rectangular playable area.
type Wall uint8

const (
	WallTop Wall = iota
	WallLeft
	WallBottom
	WallRight
)

func (w Wall) String() string {
	switch w {
	case WallTop:
		return "Top"
	case WallLeft:
		return "Left"
	case WallBottom:
		return "Bottom"
	case WallRight:
		return "Right"
	}
	return "Unknown"
}

// Walls lists the four edges in spawn order.
var Walls = [4]Wall{WallTop, WallLeft, WallBottom, WallRight}

// Bounds describes the rectangular playable area: the world coordinate of
// each edge plus the thickness of the walls placed on them. Immutable
// after initialization.
type Bounds struct {
	Top       float64
	Left      float64
	Bottom    float64
	Right     float64
	Thickness float64
}

// Width returns the horizontal world span.
func (b Bounds) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical world span.
func (b Bounds) Height() float64 {
	return b.Top - b.Bottom
}

// Validate rejects degenerate geometry at setup time: inverted edges,
// non-positive wall thickness, or walls thick enough to invert the
// clamping interval.
func (b Bounds) Validate() error {
	if b.Top <= b.Bottom {
		return fmt.Errorf("bounds: top (%g) must exceed bottom (%g)", b.Top, b.Bottom)
	}
	if b.Right <= b.Left {
		return fmt.Errorf("bounds: right (%g) must exceed left (%g)", b.Right, b.Left)
	}
	if b.Thickness <= 0 {
		return errors.New("bounds: wall thickness must be positive")
	}
	if b.Thickness >= b.Width() || b.Thickness >= b.Height() {
		return fmt.Errorf("bounds: wall thickness %g exceeds world span %gx%g", b.Thickness, b.Width(), b.Height())
	}
	return nil
}

// WallCenter returns the midpoint of the given edge.
func (b Bounds) WallCenter(w Wall) geom.Vec2 {
	midX := (b.Left + b.Right) / 2
	midY := (b.Bottom + b.Top) / 2
	switch w {
	case WallTop:
		return geom.Vec2{X: midX, Y: b.Top}
	case WallLeft:
		return geom.Vec2{X: b.Left, Y: midY}
	case WallBottom:
		return geom.Vec2{X: midX, Y: b.Bottom}
	default:
		return geom.Vec2{X: b.Right, Y: midY}
	}
}

// WallSize returns the full extent of the given wall. Vertical walls are
// shortened by one thickness and horizontal walls by one thickness in
// the other axis, so the four rectangles meet flush at the corners
// without double-counting area.
func (b Bounds) WallSize(w Wall) geom.Vec2 {
	switch w {
	case WallLeft, WallRight:
		return geom.Vec2{X: b.Thickness, Y: b.Height() - b.Thickness}
	default:
		return geom.Vec2{X: b.Width() - b.Thickness, Y: b.Thickness}
	}
}

// Inset returns the per-axis clamp interval [min, max] for an entity
// with the given half-extent: the wall centerline pushed inward by half
// the wall thickness plus the entity's half size.
func (b Bounds) Inset(half geom.Vec2) (min, max geom.Vec2) {
	margin := b.Thickness / 2
	min = geom.Vec2{X: b.Left + margin + half.X, Y: b.Bottom + margin + half.Y}
	max = geom.Vec2{X: b.Right - margin - half.X, Y: b.Top - margin - half.Y}
	return min, max
}
