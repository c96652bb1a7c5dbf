// Package app holds the start-up steps the horde binaries share: config,
// logger, sprite manifest, wave sizing and the running session.
package app

import (
	"context"
	"errors"
	"io/fs"
	"math/rand/v2"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/plus3/horde/ecs"
	"github.com/plus3/horde/internal/assets"
	"github.com/plus3/horde/internal/config"
	"github.com/plus3/horde/internal/game"
	"github.com/plus3/horde/internal/input"
	"github.com/plus3/horde/internal/scripting"
)

// ConfigEnv names the config file when no -config flag is given.
const ConfigEnv = "HORDE_CONFIG"

// ConfigPath prefers the flag value, then $HORDE_CONFIG. Empty means
// built-in defaults.
func ConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(ConfigEnv)
}

// NewLogger builds the process logger. outputs replaces stderr, e.g. with a
// file path when the terminal is in use.
func NewLogger(cfg config.LoggingConfig, outputs ...string) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if len(outputs) > 0 {
		zapCfg.OutputPaths = outputs
		zapCfg.ErrorOutputPaths = outputs
	}

	return zapCfg.Build()
}

// Manifest loads the configured sprite manifest. A missing file is not an
// error: the built-in placeholders are used instead.
func Manifest(cfg *config.Config, log *zap.Logger) (*assets.Manifest, error) {
	if cfg.Assets.Manifest == "" {
		return assets.Default(), nil
	}
	m, err := assets.LoadManifest(cfg.Assets.Manifest)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn("manifest not found, using placeholders", zap.String("path", cfg.Assets.Manifest))
		return assets.Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// WaveSizer builds the uniform sizer over [min_count, max_count] and, when
// spawn.script is set, puts the Lua script in front of it. The returned
// func releases the script.
func WaveSizer(cfg *config.Config, rng *rand.Rand, log *zap.Logger) (game.WaveSizer, func(), error) {
	uniform := game.NewUniformSizer(cfg.Spawn.MinCount, cfg.Spawn.MaxCount, rng)
	if cfg.Spawn.Script == "" {
		return uniform, func() {}, nil
	}
	script, err := scripting.LoadWaveScript(cfg.Spawn.Script, cfg.Spawn.MinCount, cfg.Spawn.MaxCount, uniform, log)
	if err != nil {
		return nil, nil, err
	}
	log.Info("wave script loaded", zap.String("path", cfg.Spawn.Script))
	return script, script.Close, nil
}

// Rand returns a generator seeded with seed, or with a random seed when
// seed is 0.
func Rand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// Bindings turns the [input] section into tracker bindings.
func Bindings(cfg config.InputConfig) input.Bindings {
	return input.Bindings{
		input.MoveUp:    cfg.Up,
		input.MoveDown:  cfg.Down,
		input.MoveLeft:  cfg.Left,
		input.MoveRight: cfg.Right,
	}
}

// Session is one running game: the world, its spawner and the input tracker
// frontends feed.
type Session struct {
	Config   *config.Config
	Log      *zap.Logger
	Manifest *assets.Manifest
	World    *game.World
	Spawner  *game.Spawner
	Tracker  *input.Tracker

	closeSizer func()
	wg         sync.WaitGroup
}

// NewSession wires a world to cfg. rng seeds enemy placement and wave
// sizes; nil picks a random seed.
func NewSession(cfg *config.Config, log *zap.Logger, rng *rand.Rand) (*Session, error) {
	if rng == nil {
		rng = Rand(0)
	}
	manifest, err := Manifest(cfg, log)
	if err != nil {
		return nil, err
	}
	sizer, closeSizer, err := WaveSizer(cfg, rng, log)
	if err != nil {
		return nil, err
	}

	world := game.NewWorld(cfg, log)
	return &Session{
		Config:     cfg,
		Log:        log,
		Manifest:   manifest,
		World:      world,
		Spawner:    game.NewSpawner(world, cfg, sizer, rng, log),
		Tracker:    input.NewTracker(Bindings(cfg.Input)),
		closeSizer: closeSizer,
	}, nil
}

// Start spawns the first wave and keeps spawning in the background until
// ctx is done or the game is won.
func (s *Session) Start(ctx context.Context) {
	n := s.Spawner.Generate()
	s.Log.Info("game started",
		zap.Int("enemies", n),
		zap.Float64("arena_w", s.World.Arena().X),
		zap.Float64("arena_h", s.World.Arena().Y),
	)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.Spawner.Run(ctx)
	}()
}

// Close waits for the spawner, whose context the caller must have
// cancelled, and releases the wave script.
func (s *Session) Close() {
	s.wg.Wait()
	s.closeSizer()
}

// LogStats reports how the session went: pools, waves and the cost of each
// system.
func (s *Session) LogStats() {
	counts := s.World.Counts()
	s.Log.Info("session finished",
		zap.Bool("won", s.World.Won()),
		zap.Int("waves", s.Spawner.Waves()),
		zap.Int("enemies", counts.Enemies),
		zap.Int("bullets", counts.Bullets),
	)
	s.World.Inspect(func(_ *ecs.Storage, scheduler *ecs.Scheduler) {
		for _, system := range scheduler.GetStats().Systems {
			s.Log.Debug("system stats",
				zap.String("system", system.Name),
				zap.Int64("runs", system.ExecutionCount),
				zap.Duration("avg", system.AvgDuration),
				zap.Duration("max", system.MaxDuration),
			)
		}
	})
}
