package game

import "github.com/oakfield/boargame/geom"

// Input is a snapshot of the held logical keys for one tick. The host
// polls its input device and writes a fresh snapshot before advancing
// the simulation; the systems only ever read it.
type Input struct {
	Up, Down, Left, Right bool
	ZoomIn, ZoomOut       bool
}

// Direction accumulates the held movement keys into a direction vector:
// +1/-1 per axis, zero when opposing keys cancel or nothing is held.
// Diagonals are additive and deliberately unnormalized.
func (in Input) Direction() geom.Vec2 {
	var d geom.Vec2
	if in.Left {
		d.X -= 1
	}
	if in.Right {
		d.X += 1
	}
	if in.Up {
		d.Y += 1
	}
	if in.Down {
		d.Y -= 1
	}
	return d
}
