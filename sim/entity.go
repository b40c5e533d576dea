package sim

import (
	"math"

	"github.com/oakfield/boargame/geom"
)

// Handle identifies a live entity in a Store. It packs the slot index in
// the lower 32 bits and the slot generation in the upper 32 bits, so a
// handle held across a despawn goes stale instead of aliasing the slot's
// next occupant.
type Handle uint64

func newHandle(index, generation uint32) Handle {
	return Handle(uint64(generation)<<32 | uint64(index))
}

// Index extracts the slot index from the handle.
func (h Handle) Index() uint32 {
	return uint32(h & 0xFFFFFFFF)
}

// Generation extracts the slot generation from the handle.
func (h Handle) Generation() uint32 {
	return uint32(h >> 32)
}

// Kind discriminates which interaction behavior an entity triggers on
// contact with the player. KindNone marks the player itself and plain
// props (including walls); new kinds extend the enum and register a
// reaction without touching the collision pass.
type Kind uint8

const (
	KindNone Kind = iota
	KindHouse
	KindBoar
)

func (k Kind) String() string {
	switch k {
	case KindHouse:
		return "House"
	case KindBoar:
		return "Boar"
	default:
		return "None"
	}
}

// Entity is one row of the simulation's entity table. Fields beyond the
// position are optional in the sense that their zero value opts the
// entity out of the behavior: a zero Hitbox never overlaps anything, a
// false Collider is skipped by the collision pass, HasHealth gates the
// health pool.
type Entity struct {
	// Pos is the entity's center in world units. Mutated in place by the
	// movement system each tick.
	Pos geom.Vec2

	// Half is the approximate sprite half-size, used as the inward margin
	// when clamping movement against the world walls.
	Half geom.Vec2

	// Hitbox is the fixed contact footprint half-extent used by the AABB
	// overlap pass. Independent of the rendered sprite size.
	Hitbox geom.Vec2

	// Collider marks the entity as participating in the contact pass.
	Collider bool

	// Player marks the single player-controlled entity.
	Player bool

	// Kind selects the interaction reaction dispatched on contact.
	Kind Kind

	// Health is the entity's hit points, valid only when HasHealth is set.
	// Never negative.
	Health    float64
	HasHealth bool
}

// Rect returns the entity's contact rectangle.
func (e *Entity) Rect() geom.Rect {
	return geom.Rect{Center: e.Pos, Half: e.Hitbox}
}

// Damage subtracts hp from the entity's health pool, flooring at zero.
// Entities without health are unaffected.
func (e *Entity) Damage(hp float64) {
	if !e.HasHealth {
		return
	}
	e.Health = math.Max(0, e.Health-hp)
}
