package game_test

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/plus3/horde/internal/config"
	"github.com/plus3/horde/internal/game"
	"github.com/plus3/horde/internal/geom"
	"github.com/plus3/horde/internal/input"
)

const frame = time.Second / 60

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Window.Width = 800
	cfg.Window.Height = 600
	return cfg
}

func newTestWorld(t *testing.T, cfg *config.Config) *game.World {
	t.Helper()
	return game.NewWorld(cfg, zap.NewNop())
}

// stepper drives a world one target interval at a time with dt = 1.
type stepper struct {
	world *game.World
	now   time.Duration
}

func (s *stepper) step(in input.State) {
	s.now += frame
	s.world.Step(1, s.now, in)
}

func (s *stepper) steps(n int, in input.State) {
	for i := 0; i < n; i++ {
		s.step(in)
	}
}

type fakeClock struct {
	now time.Duration
}

func (c *fakeClock) Now() time.Duration { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now += d }

type staticInput struct {
	state input.State
}

func (s *staticInput) Snapshot() input.State { return s.state }

// parked is an enemy that never moves, placed far from the action so the
// game is not won.
func parked(x, y float64) game.EnemySpec {
	return game.EnemySpec{Origin: geom.Vector{X: x, Y: y}, Speed: 0}
}

// centred returns the origin that puts a size×size box's centre at c.
func centred(c geom.Vector, size float64) geom.Vector {
	return geom.Vector{X: c.X - size/2, Y: c.Y - size/2}
}
