package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Window  WindowConfig  `toml:"window"`
	Loop    LoopConfig    `toml:"loop"`
	Player  PlayerConfig  `toml:"player"`
	Enemy   EnemyConfig   `toml:"enemy"`
	Bullet  BulletConfig  `toml:"bullet"`
	Cursor  CursorConfig  `toml:"cursor"`
	Spawn   SpawnConfig   `toml:"spawn"`
	Input   InputConfig   `toml:"input"`
	Assets  AssetsConfig  `toml:"assets"`
	Logging LoggingConfig `toml:"logging"`
	Debug   DebugConfig   `toml:"debug"`
}

type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

type LoopConfig struct {
	TargetFPS   int     `toml:"target_fps"`
	BulletSpeed float64 `toml:"bullet_speed"` // units per step at the target rate
	// ScaleAllMotion applies dt to bullets and enemies as well as the player.
	ScaleAllMotion bool `toml:"scale_all_motion"`
}

type PlayerConfig struct {
	Size     float64 `toml:"size"`
	Speed    float64 `toml:"speed"`
	FireRate float64 `toml:"fire_rate"` // shots per second
}

type EnemyConfig struct {
	Size         float64 `toml:"size"`
	MinSpeed     float64 `toml:"min_speed"`
	MaxSpeed     float64 `toml:"max_speed"` // exclusive
	HitThreshold float64 `toml:"hit_threshold"`
}

type BulletConfig struct {
	Size float64 `toml:"size"`
}

type CursorConfig struct {
	Size float64 `toml:"size"`
}

type SpawnConfig struct {
	Interval time.Duration `toml:"interval"`
	MinCount int           `toml:"min_count"`
	MaxCount int           `toml:"max_count"` // inclusive
	Script   string        `toml:"script"`    // optional Lua file defining wave(n, min, max)
}

type InputConfig struct {
	Up    []string `toml:"up"`
	Down  []string `toml:"down"`
	Left  []string `toml:"left"`
	Right []string `toml:"right"`
}

type AssetsConfig struct {
	Manifest string `toml:"manifest"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type DebugConfig struct {
	Overlay bool `toml:"overlay"`
}

// TargetInterval is the frame period the loop paces to.
func (c *LoopConfig) TargetInterval() time.Duration {
	return time.Second / time.Duration(c.TargetFPS)
}

// ShotInterval is the minimum time between two shots.
func (c *PlayerConfig) ShotInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.FireRate)
}

// Load reads the TOML file at path over the defaults. An empty path yields
// the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "horde",
			Width:  1280,
			Height: 720,
		},
		Loop: LoopConfig{
			TargetFPS:      60,
			BulletSpeed:    10,
			ScaleAllMotion: true,
		},
		Player: PlayerConfig{
			Size:     64,
			Speed:    4,
			FireRate: 6,
		},
		Enemy: EnemyConfig{
			Size:         64,
			MinSpeed:     1,
			MaxSpeed:     3,
			HitThreshold: 25,
		},
		Bullet: BulletConfig{Size: 8},
		Cursor: CursorConfig{Size: 32},
		Spawn: SpawnConfig{
			Interval: 3 * time.Second,
			MinCount: 3,
			MaxCount: 8,
		},
		Input: InputConfig{
			Up:    []string{"W"},
			Down:  []string{"S"},
			Left:  []string{"A"},
			Right: []string{"D"},
		},
		Assets: AssetsConfig{
			Manifest: "assets/manifest.yaml",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate rejects settings the simulation cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.Loop.TargetFPS <= 0:
		return fmt.Errorf("loop.target_fps %d must be positive", c.Loop.TargetFPS)
	case c.Loop.BulletSpeed < 0:
		return fmt.Errorf("loop.bullet_speed %v must not be negative", c.Loop.BulletSpeed)
	case c.Player.Size <= 0 || c.Enemy.Size <= 0 || c.Bullet.Size <= 0 || c.Cursor.Size <= 0:
		return fmt.Errorf("entity sizes must be positive")
	case c.Player.Speed < 0:
		return fmt.Errorf("player.speed %v must not be negative", c.Player.Speed)
	case c.Player.FireRate <= 0:
		return fmt.Errorf("player.fire_rate %v must be positive", c.Player.FireRate)
	case c.Enemy.MinSpeed < 0 || c.Enemy.MaxSpeed < c.Enemy.MinSpeed:
		return fmt.Errorf("enemy speed range [%v, %v) is invalid", c.Enemy.MinSpeed, c.Enemy.MaxSpeed)
	case c.Enemy.HitThreshold < 0:
		return fmt.Errorf("enemy.hit_threshold %v must not be negative", c.Enemy.HitThreshold)
	case c.Spawn.Interval <= 0:
		return fmt.Errorf("spawn.interval %v must be positive", c.Spawn.Interval)
	case c.Spawn.MinCount < 0 || c.Spawn.MaxCount < c.Spawn.MinCount:
		return fmt.Errorf("spawn count range [%d, %d] is invalid", c.Spawn.MinCount, c.Spawn.MaxCount)
	case c.Logging.Format != "json" && c.Logging.Format != "console":
		return fmt.Errorf("logging.format %q must be json or console", c.Logging.Format)
	}
	return nil
}
