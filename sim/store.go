// Package sim is the fixed-timestep simulation kernel: an explicit
// entity table with predicate queries, an ordered system scheduler with
// deferred structural commands, transient per-tick events, and a
// fixed-step accumulator loop.
package sim

import (
	"errors"
	"fmt"
	"iter"
)

// Sentinel errors returned by Single. Both indicate a fatal configuration
// problem when the caller expected a singular entity (the player, the
// camera target): the simulation must halt rather than guess.
var (
	ErrNoMatch   = errors.New("sim: no entity matches predicate")
	ErrAmbiguous = errors.New("sim: multiple entities match predicate")
)

// Predicate selects entities from a Store by inspecting their fields.
type Predicate func(*Entity) bool

type slot struct {
	entity     Entity
	generation uint32
	live       bool
}

// Store is an indexed table of entities. Slots are reused after despawn
// with a bumped generation, so stale handles resolve to nil instead of
// the slot's new occupant. A Store is not safe for concurrent use; the
// whole tick is a single critical section over it.
type Store struct {
	slots []slot
	free  []uint32
	count int
}

// NewStore creates an empty entity table.
func NewStore() *Store {
	return &Store{}
}

// Spawn inserts a new entity and returns its handle.
func (s *Store) Spawn(e Entity) Handle {
	var index uint32
	if n := len(s.free); n > 0 {
		index = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.slots = append(s.slots, slot{})
		index = uint32(len(s.slots) - 1)
	}

	sl := &s.slots[index]
	sl.entity = e
	sl.live = true
	s.count++
	return newHandle(index, sl.generation)
}

// Get resolves a handle to its entity, or nil if the handle is stale or
// was never valid. The returned pointer is stable until the entity is
// despawned.
func (s *Store) Get(h Handle) *Entity {
	index := h.Index()
	if int(index) >= len(s.slots) {
		return nil
	}
	sl := &s.slots[index]
	if !sl.live || sl.generation != h.Generation() {
		return nil
	}
	return &sl.entity
}

// Despawn removes the entity behind h and recycles its slot. Reports
// whether anything was removed.
func (s *Store) Despawn(h Handle) bool {
	index := h.Index()
	if int(index) >= len(s.slots) {
		return false
	}
	sl := &s.slots[index]
	if !sl.live || sl.generation != h.Generation() {
		return false
	}
	sl.live = false
	sl.entity = Entity{}
	sl.generation++
	s.free = append(s.free, index)
	s.count--
	return true
}

// Len returns the number of live entities.
func (s *Store) Len() int {
	return s.count
}

// Each iterates over all live entities matching pred, in slot order.
// A nil predicate matches everything. Spawning or despawning during
// iteration is not supported; defer structural changes through Commands.
func (s *Store) Each(pred Predicate) iter.Seq2[Handle, *Entity] {
	return func(yield func(Handle, *Entity) bool) {
		for i := range s.slots {
			sl := &s.slots[i]
			if !sl.live {
				continue
			}
			if pred != nil && !pred(&sl.entity) {
				continue
			}
			if !yield(newHandle(uint32(i), sl.generation), &sl.entity) {
				return
			}
		}
	}
}

// Single resolves pred to exactly one entity. Zero matches return
// ErrNoMatch, more than one return ErrAmbiguous; both are configuration
// errors, not recoverable runtime conditions.
func (s *Store) Single(pred Predicate) (Handle, *Entity, error) {
	var (
		found  bool
		handle Handle
		entity *Entity
	)
	for h, e := range s.Each(pred) {
		if found {
			return 0, nil, fmt.Errorf("singular query: %w", ErrAmbiguous)
		}
		found = true
		handle, entity = h, e
	}
	if !found {
		return 0, nil, fmt.Errorf("singular query: %w", ErrNoMatch)
	}
	return handle, entity, nil
}
