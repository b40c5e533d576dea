package sim

import (
	"reflect"
	"time"
)

// System is one stage of the per-tick pipeline. Systems run to completion
// in registration order within a tick; there are no suspension points.
type System interface {
	Update(t *Tick)
}

// Tick is the context passed to every system for one fixed-timestep
// advance of the simulation.
type Tick struct {
	// Step is the fixed logical timestep in seconds.
	Step float64
	// N is the tick sequence number, starting at 1.
	N uint64
	// Store is the entity table. Structural changes must go through
	// Commands.
	Store *Store
	// Commands buffers spawns/despawns until the tick completes.
	Commands *Commands
	// Events collects this tick's transient contact events.
	Events *Events
}

// SchedulerStats summarizes scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats holds execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler runs registered systems in order, once per tick, and
// delivers contact events to an optional listener after each tick.
type Scheduler struct {
	store       *Store
	systems     []System
	systemStats []*systemStatsInternal
	events      *Events
	tick        uint64
	onContact   func(ContactEvent)
}

// NewScheduler creates a scheduler over the given store.
func NewScheduler(store *Store) *Scheduler {
	return &Scheduler{
		store:  store,
		events: &Events{},
	}
}

// Register appends a system to the tick pipeline.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// SetContactListener installs fn to be invoked once per contact event at
// the end of each tick, after all systems have run. The host's renderer
// or audio layer hangs off this hook.
func (s *Scheduler) SetContactListener(fn func(ContactEvent)) {
	s.onContact = fn
}

// Once executes all registered systems for a single tick with the given
// fixed step, flushes deferred commands, and delivers contact events.
func (s *Scheduler) Once(step float64) {
	s.tick++
	s.events.reset()

	tick := &Tick{
		Step:     step,
		N:        s.tick,
		Store:    s.store,
		Commands: newCommands(),
		Events:   s.events,
	}

	for i, system := range s.systems {
		start := time.Now()
		system.Update(tick)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	tick.Commands.flush(s.store)

	if s.onContact != nil {
		for _, ev := range s.events.Contacts() {
			s.onContact(ev)
		}
	}
}

// TickCount returns how many ticks have run.
func (s *Scheduler) TickCount() uint64 {
	return s.tick
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
