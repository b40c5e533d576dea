package game

import (
	"fmt"

	"github.com/kamstrup/intmap"

	"github.com/oakfield/boargame/geom"
	"github.com/oakfield/boargame/sim"
)

// Annotator creates a transient text annotation at a world position.
// Supplied by the host's rendering layer.
type Annotator interface {
	Annotate(pos geom.Vec2, text string)
}

// AnnotatorFunc adapts a function to the Annotator interface.
type AnnotatorFunc func(pos geom.Vec2, text string)

func (f AnnotatorFunc) Annotate(pos geom.Vec2, text string) {
	f(pos, text)
}

// Contact describes one player/collider overlap handed to a reaction.
type Contact struct {
	Player *sim.Entity
	Handle sim.Handle
	Entity *sim.Entity
}

// Reaction is the behavior dispatched when the player contacts an entity
// of a given kind.
type Reaction func(t *sim.Tick, c Contact)

// ReactionTable maps entity kinds to their contact reactions. Kinds
// without an entry (and KindNone entities such as walls) are a defined
// no-op, so new kinds can be introduced before their behavior exists
// without crashing the collision pass.
type ReactionTable map[sim.Kind]Reaction

// Dispatch runs the reaction registered for the contacted entity's kind,
// if any.
func (rt ReactionTable) Dispatch(t *sim.Tick, c Contact) {
	if r, ok := rt[c.Entity.Kind]; ok && r != nil {
		r(t, c)
	}
}

// BoarContactDamage is the health cost of one boar contact episode.
const BoarContactDamage = 10

// DefaultReactions wires the stock per-kind behavior: a house announces
// itself with a transient label at its position, a boar gores the player
// for a fixed amount of health.
func DefaultReactions(annotator Annotator) ReactionTable {
	return ReactionTable{
		sim.KindHouse: func(t *sim.Tick, c Contact) {
			pos := c.Entity.Pos
			t.Commands.Defer(func() {
				annotator.Annotate(pos, c.Entity.Kind.String())
			})
		},
		sim.KindBoar: func(t *sim.Tick, c Contact) {
			c.Player.Damage(BoarContactDamage)
		},
	}
}

// CollisionSystem runs the per-tick contact pass: an AABB overlap test
// between the player and every collider entity (the player itself
// excluded). Every overlapping collider emits one contact event per
// tick. Reactions fire once per contact episode: a collider must stop
// overlapping for at least one tick before its reaction re-arms.
type CollisionSystem struct {
	World     *World
	Reactions ReactionTable

	// episodes records, per collider handle, the last tick it overlapped
	// the player. A contact starts a new episode unless the same handle
	// also overlapped on the immediately preceding tick.
	episodes *intmap.Map[sim.Handle, uint64]
}

// NewCollisionSystem creates the contact pass with the given reaction
// table. A nil table disables all reactions but still emits events.
func NewCollisionSystem(world *World, reactions ReactionTable) *CollisionSystem {
	return &CollisionSystem{
		World:     world,
		Reactions: reactions,
		episodes:  intmap.New[sim.Handle, uint64](64),
	}
}

func (s *CollisionSystem) Update(t *sim.Tick) {
	playerHandle, player, err := t.Store.Single(isPlayer)
	if err != nil {
		panic(fmt.Errorf("collision: %w", err))
	}

	playerRect := player.Rect()

	for h, e := range t.Store.Each(isCollider) {
		if h == playerHandle {
			continue
		}
		if !playerRect.Overlaps(e.Rect()) {
			continue
		}

		t.Events.EmitContact()

		last, seen := s.episodes.Get(h)
		s.episodes.Put(h, t.N)
		if seen && last == t.N-1 {
			// Same episode still running.
			continue
		}
		s.Reactions.Dispatch(t, Contact{Player: player, Handle: h, Entity: e})
	}
}

func isCollider(e *sim.Entity) bool {
	return e.Collider
}
