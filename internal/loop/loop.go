// Package loop provides tick sources that drive the physics step:
// wall-clock delta timing, a fixed-step accumulator and a ticker loop.
// None of them assume a particular scheduler.
package loop

import (
	"context"
	"math"
	"time"

	"github.com/vovakirdan/tiltmaze/internal/physics"
)

// MaxFrameDT is the largest step handed to the engine.
const MaxFrameDT = physics.MaxFrameDT

// maxCatchUp bounds how many fixed steps one Advance may run.
const maxCatchUp = 5

// ClampDT restricts dt to [0, MaxFrameDT]. Non-finite values become 0.
func ClampDT(dt float64) float64 {
	return ClampDTTo(dt, MaxFrameDT)
}

// ClampDTTo restricts dt to [0, limit].
func ClampDTTo(dt, limit float64) float64 {
	if math.IsNaN(dt) || dt < 0 {
		return 0
	}
	if dt > limit {
		return limit
	}
	return dt
}

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

// DeltaTimer turns frame timestamps into clamped step durations.
type DeltaTimer struct {
	Max  float64
	last time.Time
}

// NewDeltaTimer creates a timer clamping to max seconds.
func NewDeltaTimer(max float64) *DeltaTimer {
	if max <= 0 {
		max = MaxFrameDT
	}
	return &DeltaTimer{Max: max}
}

// Tick returns the seconds since the previous tick, clamped to Max.
// The first tick after creation or Reset returns 0.
func (d *DeltaTimer) Tick(now time.Time) float64 {
	if d.last.IsZero() {
		d.last = now
		return 0
	}
	dt := now.Sub(d.last).Seconds()
	d.last = now
	return ClampDTTo(dt, d.Max)
}

// Reset forgets the previous timestamp, e.g. after a pause.
func (d *DeltaTimer) Reset() {
	d.last = time.Time{}
}

// FixedStep runs a callback at a constant dt, carrying leftover time
// between calls.
type FixedStep struct {
	Step float64
	Max  int

	acc float64
}

// NewFixedStep creates an accumulator with the given step in seconds.
func NewFixedStep(step float64) *FixedStep {
	return &FixedStep{Step: step, Max: maxCatchUp}
}

// Advance adds elapsed seconds and runs fn once per whole step. After a
// stall at most Max steps run and the excess time is dropped. It returns
// the number of steps run.
func (f *FixedStep) Advance(elapsed float64, fn func(dt float64)) int {
	if f.Step <= 0 || math.IsNaN(elapsed) || elapsed < 0 {
		return 0
	}
	limit := f.Max
	if limit <= 0 {
		limit = maxCatchUp
	}

	f.acc += elapsed
	n := 0
	for f.acc >= f.Step && n < limit {
		fn(f.Step)
		f.acc -= f.Step
		n++
	}
	if n == limit && f.acc >= f.Step {
		f.acc = math.Mod(f.acc, f.Step)
	}
	return n
}

// Remainder returns the carried time not yet stepped.
func (f *FixedStep) Remainder() float64 {
	return f.acc
}

// Run calls fn every interval with the clamped time since the previous
// call until ctx is cancelled or fn returns false.
func Run(ctx context.Context, interval time.Duration, clock Clock, fn func(dt float64) bool) error {
	if clock == nil {
		clock = SystemClock{}
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	timer := NewDeltaTimer(MaxFrameDT)
	timer.Tick(clock.Now())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !fn(timer.Tick(clock.Now())) {
				return nil
			}
		}
	}
}
