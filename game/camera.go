package game

import (
	"github.com/oakfield/boargame/geom"
	"github.com/oakfield/boargame/sim"
)

// Zoom limits and per-tick zoom factors. Zoom is a world-units-per-pixel
// scale: holding zoom-out grows it, holding zoom-in shrinks it, and the
// result is clamped every tick.
const (
	ZoomMin       = 0.5
	ZoomMax       = 2.0
	ZoomOutFactor = 1.07
	ZoomInFactor  = 0.93
)

// Camera is the single viewport of a running session: a world position
// and a zoom scale. Panning does not follow the player; the camera is
// driven by the same input snapshot, independently clamped.
type Camera struct {
	Pos  geom.Vec2
	Zoom float64
	// Half is the clamp margin against the world walls, same derivation
	// as an entity's sprite half-size.
	Half geom.Vec2
}

// CameraSystem pans and zooms the camera from the shared input snapshot.
// Pan and zoom are independent axes of camera state and may both change
// in the same tick.
type CameraSystem struct {
	World *World
}

func (s *CameraSystem) Update(t *sim.Tick) {
	cam := s.World.Camera
	if cam == nil {
		// A session without its camera is a fatal configuration error.
		panic("camera: world has no camera")
	}
	in := s.World.Input

	next := cam.Pos.Add(in.Direction().Scale(s.World.Speed * t.Step))
	min, max := s.World.Bounds.Inset(cam.Half)
	cam.Pos = geom.ClampVec(next, min, max)

	if in.ZoomOut {
		cam.Zoom *= ZoomOutFactor
	}
	if in.ZoomIn {
		cam.Zoom *= ZoomInFactor
	}
	cam.Zoom = geom.Clamp(cam.Zoom, ZoomMin, ZoomMax)
}
