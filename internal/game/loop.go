package game

import (
	"time"

	"github.com/plus3/horde/internal/input"
)

// Clock is a monotonic time source.
type Clock interface {
	Now() time.Duration
}

// MonotonicClock measures time since it was created.
type MonotonicClock struct {
	start time.Time
}

func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

func (c *MonotonicClock) Now() time.Duration {
	return time.Since(c.start)
}

// InputSource yields the input snapshot for a step. *input.Tracker is one.
type InputSource interface {
	Snapshot() input.State
}

// LoopStats counts loop invocations.
type LoopStats struct {
	Frames int64 // Tick calls
	Steps  int64 // Tick calls that ran a step
}

// Loop paces the world to a target interval on top of a caller that may
// invoke it at any rate. A step runs only once the elapsed time reaches the
// target, with dt = elapsed / target.
type Loop struct {
	world   *World
	clock   Clock
	input   InputSource
	target  time.Duration
	last    time.Duration
	started bool
	stats   LoopStats
}

func NewLoop(world *World, clock Clock, in InputSource, target time.Duration) *Loop {
	return &Loop{
		world:  world,
		clock:  clock,
		input:  in,
		target: target,
	}
}

// Tick advances the world if a step is due and reports whether it did. The
// first call only records the baseline time.
func (l *Loop) Tick() bool {
	now := l.clock.Now()
	l.stats.Frames++

	if !l.started {
		l.started = true
		l.last = now
		return false
	}

	elapsed := now - l.last
	if elapsed < l.target {
		return false
	}
	l.last = now
	l.stats.Steps++

	dt := float64(elapsed) / float64(l.target)
	l.world.Step(dt, now, l.input.Snapshot())
	return true
}

// Frame is Tick followed by a render of the processed step.
func (l *Loop) Frame(r Renderer) bool {
	if !l.Tick() {
		return false
	}
	l.world.Render(r)
	return true
}

func (l *Loop) Stats() LoopStats {
	return l.stats
}
