package game_test

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/plus3/horde/internal/game"
	"github.com/plus3/horde/internal/game/mocks"
	"github.com/plus3/horde/internal/geom"
	"github.com/plus3/horde/internal/input"
)

func TestRenderDrawsEveryEntityOriented(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockRenderer(ctrl)

	world := newTestWorld(t, testConfig())
	world.PlacePlayer(centred(geom.Vector{X: 100, Y: 100}, 64))
	// Straight below the player, far enough not to be hit this frame.
	require.True(t, world.AddEnemies(parked(68, 468)))

	// Cursor to the right of the player: the bullet flies along +x.
	world.Step(1, frame, input.NewState(geom.Vector{X: 300, Y: 100}, true))

	gomock.InOrder(
		r.EXPECT().Fill(color.White),
		r.EXPECT().DrawSprite("player", geom.Vector{X: 100, Y: 100}, 64.0, 64.0, math.Pi/2),
		r.EXPECT().DrawSprite("cursor", geom.Vector{X: 300, Y: 100}, 32.0, 32.0, 0.0),
		r.EXPECT().DrawSprite("bullet", geom.Vector{X: 110, Y: 100}, 8.0, 8.0, math.Pi/2),
		// Enemy below the player faces up: atan2(-1, 0) + π/2 = 0.
		r.EXPECT().DrawSprite("enemy", geom.Vector{X: 100, Y: 500}, 64.0, 64.0, 0.0),
	)

	world.Render(r)
}

func TestRenderWinScreenEveryFrame(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockRenderer(ctrl)

	world := newTestWorld(t, testConfig())
	world.Step(1, frame, input.NewState(geom.Vector{}, false))
	require.True(t, world.Won())

	const frames = 5
	for i := 0; i < frames; i++ {
		gomock.InOrder(
			r.EXPECT().Fill(color.White),
			r.EXPECT().DrawText("You win!", geom.Vector{X: 10, Y: 50}, 48.0, color.Black),
		)
	}

	for i := 0; i < frames; i++ {
		world.Render(r)
	}
}

func TestLoopFrameRendersOnlyProcessedSteps(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockRenderer(ctrl)

	world := newTestWorld(t, testConfig())
	clock := &fakeClock{}
	loop := game.NewLoop(world, clock, &staticInput{}, frame)

	r.EXPECT().Fill(color.White).Times(2)
	r.EXPECT().DrawText(game.WinText, game.WinTextAt, float64(game.WinTextSize), color.Black).Times(2)

	require.False(t, loop.Frame(r), "baseline")
	clock.Advance(frame / 2)
	require.False(t, loop.Frame(r), "too early")
	clock.Advance(frame / 2)
	require.True(t, loop.Frame(r))
	clock.Advance(3 * frame)
	require.True(t, loop.Frame(r))

	stats := loop.Stats()
	require.Equal(t, int64(4), stats.Frames)
	require.Equal(t, int64(2), stats.Steps)
}
