// Package game builds the exploration game on top of the sim kernel:
// the bounded world and its walls, player movement, the pan/zoom
// camera, and the contact pass with per-kind interaction dispatch.
package game

import (
	"fmt"

	"github.com/oakfield/boargame/geom"
	"github.com/oakfield/boargame/sim"
)

// World constants. Positions use a y-up coordinate system centered on the
// world origin.
const (
	// Timestep is the logical seconds per simulation tick.
	Timestep = 5.0 / 60.0

	// PlayerSpeed is the pan/walk speed in world units per second, shared
	// by the player and the camera.
	PlayerSpeed = 100.0

	// PlayerMaxHealth is the player's starting health pool.
	PlayerMaxHealth = 100.0
)

var (
	// DefaultBounds is the stock playable area.
	DefaultBounds = Bounds{
		Top:       540,
		Left:      -960,
		Bottom:    -540,
		Right:     960,
		Thickness: 10,
	}

	// SpriteHalf is the approximate sprite half-size used as the wall
	// clamp margin for the player and the camera.
	SpriteHalf = geom.Vec2{X: 16, Y: 16}

	// ContactHalf is the fixed contact footprint half-extent shared by
	// the player and the NPCs, independent of sprite size.
	ContactHalf = geom.Vec2{X: 64, Y: 64}

	// Initial placements.
	PlayerStart = geom.Vec2{X: 350, Y: 350}
	CameraStart = geom.Vec2{X: 350, Y: 350}
	HousePos    = geom.Vec2{X: 150, Y: -200}
	BoarPos     = geom.Vec2{X: -360, Y: 270}

	// CameraStartZoom is the initial world-units-per-pixel scale.
	CameraStartZoom = 0.75
)

// Config carries the initialization-time parameters of a session.
type Config struct {
	Bounds Bounds
	// Speed is the movement speed for the player and camera, world units
	// per second.
	Speed float64
}

// DefaultConfig returns the stock session parameters.
func DefaultConfig() Config {
	return Config{
		Bounds: DefaultBounds,
		Speed:  PlayerSpeed,
	}
}

// World owns the simulation state of one session: the immutable bounds,
// the entity table, the single camera, and the input snapshot the host
// refreshes before each advance.
type World struct {
	Bounds Bounds
	Speed  float64
	Store  *sim.Store
	Camera *Camera

	// Input is the current held-key snapshot. Written by the host,
	// read by the systems.
	Input Input
}

// NewWorld validates the configuration and populates the initial scene:
// the player, the house and boar NPCs, the four walls as collidable
// geometry, and the camera.
func NewWorld(cfg Config) (*World, error) {
	if err := cfg.Bounds.Validate(); err != nil {
		return nil, err
	}
	if cfg.Speed <= 0 {
		return nil, fmt.Errorf("world: speed must be positive, got %g", cfg.Speed)
	}

	w := &World{
		Bounds: cfg.Bounds,
		Speed:  cfg.Speed,
		Store:  sim.NewStore(),
		Camera: &Camera{
			Pos:  CameraStart,
			Zoom: CameraStartZoom,
			Half: SpriteHalf,
		},
	}

	w.Store.Spawn(sim.Entity{
		Pos:       PlayerStart,
		Half:      SpriteHalf,
		Hitbox:    ContactHalf,
		Collider:  true,
		Player:    true,
		Health:    PlayerMaxHealth,
		HasHealth: true,
	})

	w.Store.Spawn(sim.Entity{
		Pos:      HousePos,
		Hitbox:   ContactHalf,
		Collider: true,
		Kind:     sim.KindHouse,
	})

	w.Store.Spawn(sim.Entity{
		Pos:      BoarPos,
		Hitbox:   ContactHalf,
		Collider: true,
		Kind:     sim.KindBoar,
	})

	for _, wall := range Walls {
		size := cfg.Bounds.WallSize(wall)
		w.Store.Spawn(sim.Entity{
			Pos:      cfg.Bounds.WallCenter(wall),
			Hitbox:   size.Scale(0.5),
			Collider: true,
		})
	}

	return w, nil
}

// Player resolves the singular player entity. Zero or multiple matches
// is a fatal configuration error surfaced to the caller.
func (w *World) Player() (sim.Handle, *sim.Entity, error) {
	return w.Store.Single(isPlayer)
}

// NewScheduler assembles the per-tick pipeline in its deterministic
// order: movement and camera first, then the contact pass, which must
// observe post-movement positions.
func (w *World) NewScheduler(reactions ReactionTable) *sim.Scheduler {
	scheduler := sim.NewScheduler(w.Store)
	scheduler.Register(&MovementSystem{World: w})
	scheduler.Register(&CameraSystem{World: w})
	scheduler.Register(NewCollisionSystem(w, reactions))
	return scheduler
}
