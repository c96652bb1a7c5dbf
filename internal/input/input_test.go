package input_test

import (
	"sync"
	"testing"

	"github.com/plus3/horde/internal/geom"
	"github.com/plus3/horde/internal/input"
	"github.com/stretchr/testify/assert"
)

func wasd() input.Bindings {
	return input.Bindings{
		input.MoveUp:    {"W", "ArrowUp"},
		input.MoveDown:  {"S"},
		input.MoveLeft:  {"A"},
		input.MoveRight: {"D"},
	}
}

func TestTrackerKeys(t *testing.T) {
	tracker := input.NewTracker(wasd())

	tracker.KeyDown("w")
	tracker.KeyDown("D")
	tracker.KeyDown("Space")

	state := tracker.Snapshot()
	assert.True(t, state.Held(input.MoveUp))
	assert.True(t, state.Held(input.MoveRight))
	assert.False(t, state.Held(input.MoveDown))
	assert.False(t, state.Held(input.MoveLeft))

	tracker.KeyUp("W")
	assert.False(t, tracker.Snapshot().Held(input.MoveUp))
	assert.True(t, state.Held(input.MoveUp), "earlier snapshots are not affected")
}

func TestTrackerAlternateBindingsShareAction(t *testing.T) {
	tracker := input.NewTracker(wasd())

	tracker.KeyDown("W")
	tracker.KeyDown("ArrowUp")
	tracker.KeyUp("W")

	assert.True(t, tracker.Snapshot().Held(input.MoveUp))

	tracker.KeyUp("arrowup")
	assert.False(t, tracker.Snapshot().Held(input.MoveUp))
}

func TestTrackerPointer(t *testing.T) {
	tracker := input.NewTracker(wasd())

	tracker.PointerMove(200, 100)
	tracker.PointerDown(2)
	assert.Equal(t, geom.Vector{X: 200, Y: 100}, tracker.Snapshot().Pointer())
	assert.False(t, tracker.Snapshot().Firing(), "only the primary button fires")

	tracker.PointerDown(input.PrimaryButton)
	assert.True(t, tracker.Snapshot().Firing())

	tracker.PointerUp(input.PrimaryButton)
	assert.False(t, tracker.Snapshot().Firing())
}

func TestTrackerBound(t *testing.T) {
	tracker := input.NewTracker(wasd())
	assert.True(t, tracker.Bound("a"))
	assert.False(t, tracker.Bound("q"))
}

func TestNewState(t *testing.T) {
	state := input.NewState(geom.Vector{X: 1, Y: 2}, true, input.MoveLeft, input.Action(99))

	assert.True(t, state.Held(input.MoveLeft))
	assert.False(t, state.Held(input.MoveRight))
	assert.False(t, state.Held(input.Action(-1)))
	assert.True(t, state.Firing())
	assert.Equal(t, geom.Vector{X: 1, Y: 2}, state.Pointer())

	var zero input.State
	assert.False(t, zero.Firing())
	assert.Equal(t, "left", input.MoveLeft.String())
}

func TestTrackerConcurrentWriters(t *testing.T) {
	tracker := input.NewTracker(wasd())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				tracker.KeyDown("W")
				tracker.PointerMove(float64(i), float64(j))
				_ = tracker.Snapshot()
				tracker.KeyUp("W")
			}
		}(i)
	}
	wg.Wait()

	assert.False(t, tracker.Snapshot().Held(input.MoveUp))
}
