package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/horde/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "horde.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 64.0, cfg.Player.Size)
	assert.Equal(t, 4.0, cfg.Player.Speed)
	assert.Equal(t, 6.0, cfg.Player.FireRate)
	assert.Equal(t, 25.0, cfg.Enemy.HitThreshold)
	assert.Equal(t, 8.0, cfg.Bullet.Size)
	assert.Equal(t, 3*time.Second, cfg.Spawn.Interval)
	assert.Equal(t, 3, cfg.Spawn.MinCount)
	assert.Equal(t, 8, cfg.Spawn.MaxCount)
	assert.Equal(t, []string{"W"}, cfg.Input.Up)

	assert.Equal(t, time.Second/60, cfg.Loop.TargetInterval())
	assert.InDelta(t, 166*time.Millisecond, cfg.Player.ShotInterval(), float64(time.Millisecond))
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
[window]
width = 640
height = 480

[spawn]
interval = "1500ms"
max_count = 5
script = "scripts/waves.lua"

[input]
up = ["W", "ArrowUp"]

[logging]
format = "json"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 480, cfg.Window.Height)
	assert.Equal(t, "horde", cfg.Window.Title, "untouched keys keep defaults")
	assert.Equal(t, 1500*time.Millisecond, cfg.Spawn.Interval)
	assert.Equal(t, 3, cfg.Spawn.MinCount)
	assert.Equal(t, 5, cfg.Spawn.MaxCount)
	assert.Equal(t, "scripts/waves.lua", cfg.Spawn.Script)
	assert.Equal(t, []string{"W", "ArrowUp"}, cfg.Input.Up)
	assert.Equal(t, []string{"S"}, cfg.Input.Down)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeConfig(t, "[window\nwidth = 1"))
	assert.ErrorContains(t, err, "parse config")

	_, err = config.Load(writeConfig(t, "[spawn]\nmin_count = 9\nmax_count = 2\n"))
	assert.ErrorContains(t, err, "spawn count range")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		errMsg string
	}{
		{"zero width", func(c *config.Config) { c.Window.Width = 0 }, "window size"},
		{"zero fps", func(c *config.Config) { c.Loop.TargetFPS = 0 }, "target_fps"},
		{"zero bullet size", func(c *config.Config) { c.Bullet.Size = 0 }, "entity sizes"},
		{"zero fire rate", func(c *config.Config) { c.Player.FireRate = 0 }, "fire_rate"},
		{"inverted enemy speed", func(c *config.Config) { c.Enemy.MinSpeed, c.Enemy.MaxSpeed = 3, 1 }, "enemy speed range"},
		{"negative threshold", func(c *config.Config) { c.Enemy.HitThreshold = -1 }, "hit_threshold"},
		{"zero interval", func(c *config.Config) { c.Spawn.Interval = 0 }, "spawn.interval"},
		{"bad log format", func(c *config.Config) { c.Logging.Format = "xml" }, "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.errMsg)
		})
	}
}

func TestShippedConfig(t *testing.T) {
	cfg, err := config.Load(filepath.Join("..", "..", "config", "horde.toml"))
	require.NoError(t, err)

	def := config.Default()
	assert.Equal(t, def.Window, cfg.Window)
	assert.Equal(t, def.Loop, cfg.Loop)
	assert.Equal(t, def.Player, cfg.Player)
	assert.Equal(t, def.Enemy, cfg.Enemy)
	assert.Equal(t, def.Spawn, cfg.Spawn)
	assert.Equal(t, []string{"W", "ArrowUp"}, cfg.Input.Up)
}
