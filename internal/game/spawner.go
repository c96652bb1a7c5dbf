package game

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/plus3/horde/internal/config"
	"github.com/plus3/horde/internal/geom"
)

// WaveSizer picks the enemy count for the n-th wave, n starting at 1.
type WaveSizer interface {
	WaveSize(wave int) int
}

// UniformSizer draws a count uniformly from [Min, Max].
type UniformSizer struct {
	mu       sync.Mutex
	rng      *rand.Rand
	Min, Max int
}

func NewUniformSizer(min, max int, rng *rand.Rand) *UniformSizer {
	return &UniformSizer{rng: rng, Min: min, Max: max}
}

func (u *UniformSizer) WaveSize(int) int {
	if u.Max <= u.Min {
		return u.Min
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.Min + u.rng.IntN(u.Max-u.Min+1)
}

// Spawner adds waves of enemies at random positions, once at startup and
// then on its own timer.
type Spawner struct {
	mu       sync.Mutex
	world    *World
	sizer    WaveSizer
	rng      *rand.Rand
	minSpeed float64
	maxSpeed float64
	interval time.Duration
	waves    int
	spawned  int
	log      *zap.Logger
}

func NewSpawner(world *World, cfg *config.Config, sizer WaveSizer, rng *rand.Rand, log *zap.Logger) *Spawner {
	return &Spawner{
		world:    world,
		sizer:    sizer,
		rng:      rng,
		minSpeed: cfg.Enemy.MinSpeed,
		maxSpeed: cfg.Enemy.MaxSpeed,
		interval: cfg.Spawn.Interval,
		log:      log,
	}
}

// Generate spawns one wave and returns its size. Each enemy's top-left lies
// in [0, W) × [0, H) of the current arena and its speed in
// [minSpeed, maxSpeed). Nothing is spawned once the game is won.
func (s *Spawner) Generate() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := s.sizer.WaveSize(s.waves + 1)
	if count <= 0 {
		return 0
	}

	arena := s.world.Arena()
	specs := make([]EnemySpec, count)
	for i := range specs {
		specs[i] = EnemySpec{
			Origin: geom.Vector{X: s.rng.Float64() * arena.X, Y: s.rng.Float64() * arena.Y},
			Speed:  s.minSpeed + s.rng.Float64()*(s.maxSpeed-s.minSpeed),
		}
	}
	if !s.world.AddEnemies(specs...) {
		return 0
	}

	s.waves++
	s.spawned += count
	s.log.Debug("wave spawned",
		zap.Int("wave", s.waves),
		zap.Int("count", count),
		zap.Int("total", s.spawned),
	)
	return count
}

// Waves is the number of waves spawned so far.
func (s *Spawner) Waves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.waves
}

// Spawned is the number of enemies spawned so far.
func (s *Spawner) Spawned() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spawned
}

// Run calls Generate every interval until ctx is done or the game is won.
func (s *Spawner) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if s.world.Won() {
				return
			}
			s.Generate()
		}
	}
}
