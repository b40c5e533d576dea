package game

import (
	"fmt"

	"github.com/oakfield/boargame/geom"
	"github.com/oakfield/boargame/sim"
)

// MovementSystem converts the held-key snapshot into a clamped position
// delta for the player. The new position is a pure function of the
// previous position, the input snapshot, and the timestep: running the
// system twice with identical state is a no-op the second time once the
// clamp has been hit.
type MovementSystem struct {
	World *World
}

func (s *MovementSystem) Update(t *sim.Tick) {
	_, player, err := t.Store.Single(isPlayer)
	if err != nil {
		// Zero or multiple players is a fatal configuration error; halt
		// rather than guess which entity to move.
		panic(fmt.Errorf("movement: %w", err))
	}

	next := player.Pos.Add(s.World.Input.Direction().Scale(s.World.Speed * t.Step))
	min, max := s.World.Bounds.Inset(player.Half)
	player.Pos = geom.ClampVec(next, min, max)
}

func isPlayer(e *sim.Entity) bool {
	return e.Player
}
