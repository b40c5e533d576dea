package sim

import (
	"context"
	"errors"
	"time"
)

// Loop advances a scheduler at a fixed logical timestep, decoupled from
// however often the host renders frames. Elapsed real time is
// accumulated and consumed in whole steps; the remainder carries over to
// the next call, so the simulation never runs partial ticks.
type Loop struct {
	scheduler *Scheduler
	step      float64
	acc       float64
}

// NewLoop creates a fixed-timestep loop. step is the logical tick length
// in seconds and must be positive.
func NewLoop(scheduler *Scheduler, step float64) (*Loop, error) {
	if step <= 0 {
		return nil, errors.New("sim: loop step must be positive")
	}
	return &Loop{scheduler: scheduler, step: step}, nil
}

// Step returns the configured tick length in seconds.
func (l *Loop) Step() float64 {
	return l.step
}

// Advance feeds elapsed real seconds into the accumulator and runs
// exactly as many fixed ticks as have become due. Returns the number of
// ticks executed. Negative elapsed time is ignored.
func (l *Loop) Advance(elapsed float64) int {
	if elapsed > 0 {
		l.acc += elapsed
	}

	ticks := 0
	for l.acc >= l.step {
		l.acc -= l.step
		l.scheduler.Once(l.step)
		ticks++
	}
	return ticks
}

// Run drives the loop from a real-time ticker until the context is
// cancelled. Shutdown is only observed between ticks; a tick in progress
// always runs to completion.
func (l *Loop) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			l.Advance(now.Sub(lastTime).Seconds())
			lastTime = now
		}
	}
}
