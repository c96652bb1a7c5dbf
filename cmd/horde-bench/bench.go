package main

import (
	"image/color"
	"math/rand/v2"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/plus3/horde/ecs"
	"github.com/plus3/horde/internal/config"
	"github.com/plus3/horde/internal/game"
	"github.com/plus3/horde/internal/geom"
	"github.com/plus3/horde/internal/input"
)

// nullRenderer counts draw calls.
type nullRenderer struct {
	fills, texts, sprites int64
}

func (n *nullRenderer) Fill(color.Color) { n.fills++ }

func (n *nullRenderer) DrawText(string, geom.Vector, float64, color.Color) { n.texts++ }

func (n *nullRenderer) DrawSprite(string, geom.Vector, float64, float64, float64) { n.sprites++ }

// syntheticClock advances by a fixed step, optionally jittered, on every
// Now so the loop always finds a step due.
type syntheticClock struct {
	now    time.Duration
	step   time.Duration
	jitter float64
	rng    *rand.Rand
}

func (c *syntheticClock) Now() time.Duration {
	d := c.step
	if c.jitter > 0 {
		d += time.Duration(float64(c.step) * c.jitter * c.rng.Float64())
	}
	c.now += d
	return c.now
}

// autoFire holds the trigger down and aims at the first live enemy.
type autoFire struct {
	world *game.World
}

func (a *autoFire) Snapshot() input.State {
	enemies := a.world.Enemies()
	if len(enemies) == 0 {
		return input.NewState(geom.Vector{}, false)
	}
	return input.NewState(enemies[0].Middle(), true)
}

type benchOptions struct {
	Steps  int
	Seed   uint64
	Jitter float64
}

// runBench plays one game headless, spawning a wave every spawn interval of
// simulated time, and stops after opts.Steps steps or at the win.
func runBench(cfg *config.Config, opts benchOptions, log *zap.Logger) *Report {
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed))
	world := game.NewWorld(cfg, log)
	sizer := game.NewUniformSizer(cfg.Spawn.MinCount, cfg.Spawn.MaxCount, rng)
	spawner := game.NewSpawner(world, cfg, sizer, rng, log)

	target := cfg.Loop.TargetInterval()
	clock := &syntheticClock{step: target, jitter: opts.Jitter, rng: rng}
	loop := game.NewLoop(world, clock, &autoFire{world: world}, target)
	renderer := &nullRenderer{}

	report := &Report{
		Steps:         opts.Steps,
		Seed:          opts.Seed,
		ArenaW:        cfg.Window.Width,
		ArenaH:        cfg.Window.Height,
		SpawnInterval: cfg.Spawn.Interval,
		StepTime:      Stats{Samples: make([]time.Duration, 0, opts.Steps)},
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	spawner.Generate()
	nextWave := cfg.Spawn.Interval
	start := time.Now()

	for report.StepsRun < opts.Steps {
		begin := time.Now()
		if !loop.Frame(renderer) {
			continue
		}
		report.StepTime.Samples = append(report.StepTime.Samples, time.Since(begin))
		report.StepsRun++

		if world.Won() {
			report.Won = true
			report.SimulatedTime = clock.now
			break
		}
		if clock.now >= nextWave {
			spawner.Generate()
			nextWave += cfg.Spawn.Interval
		}
	}

	report.TotalTime = time.Since(start)
	if report.SimulatedTime == 0 {
		report.SimulatedTime = clock.now
	}
	report.StepTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	counts := world.Counts()
	report.Waves = spawner.Waves()
	report.Spawned = spawner.Spawned()
	report.Killed = report.Spawned - counts.Enemies
	report.Bullets = counts.Bullets
	report.Sprites = renderer.sprites
	world.Inspect(func(storage *ecs.Storage, scheduler *ecs.Scheduler) {
		stats := scheduler.GetStats()
		report.Systems = stats.Systems
		report.Commands = stats.CommandsApplied
		report.Archetypes = storage.CollectStats().ArchetypeCount
	})
	return report
}
