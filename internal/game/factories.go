package game

import (
	"github.com/plus3/horde/internal/assets"
	"github.com/plus3/horde/internal/config"
	"github.com/plus3/horde/internal/geom"
)

// The factories below return the component set of one entity kind, ready
// for Storage.Spawn. Every kind shares Body and Sprite; movers add Velocity.

func newPlayer(origin geom.Vector, cfg config.PlayerConfig) []any {
	return []any{
		Body{geom.Box{X: origin.X, Y: origin.Y, W: cfg.Size, H: cfg.Size}},
		Velocity{},
		Sprite{ID: assets.SpritePlayer},
		Player{Speed: cfg.Speed, FireRate: cfg.FireRate},
	}
}

func newCursor(cfg config.CursorConfig) []any {
	return []any{
		Body{geom.Box{W: cfg.Size, H: cfg.Size}},
		Sprite{ID: assets.SpriteCursor},
		Cursor{},
	}
}

func newEnemy(origin geom.Vector, size, speed float64) []any {
	return []any{
		Body{geom.Box{X: origin.X, Y: origin.Y, W: size, H: size}},
		Velocity{},
		Sprite{ID: assets.SpriteEnemy},
		Enemy{Speed: speed},
	}
}

// newBullet centres the bullet on center. dir must be a unit vector.
func newBullet(center geom.Vector, dir geom.Vector, size float64) []any {
	return []any{
		Body{geom.NewBox(center, size, size)},
		Velocity{dir},
		Sprite{ID: assets.SpriteBullet},
		Bullet{},
	}
}
