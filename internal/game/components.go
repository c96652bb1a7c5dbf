package game

import (
	"time"

	"github.com/plus3/horde/ecs"
	"github.com/plus3/horde/internal/geom"
	"github.com/plus3/horde/internal/input"
)

// Body is the entity's box in arena coordinates.
type Body struct {
	geom.Box
}

// Velocity is the displacement applied this step. For bullets it is the
// unit flight direction.
type Velocity struct {
	geom.Vector
}

// Sprite names the manifest entry to draw.
type Sprite struct {
	ID string
}

type Player struct {
	Speed    float64 // units per step at the target rate
	FireRate float64 // shots per second
}

type Enemy struct {
	Speed float64
}

type Bullet struct{}

type Cursor struct{}

// Arena is the play surface, matching the render surface.
type Arena struct {
	Size geom.Vector
}

// GameState holds the single terminal transition.
type GameState struct {
	Won   bool
	WonAt time.Duration
	Steps int
}

// ShotClock gates the fire rate. The zero value allows an immediate shot.
type ShotClock struct {
	Next time.Duration
}

// Doomed collects entities deleted earlier in the current step. Deletes are
// only applied after the step, so later systems consult this set instead.
type Doomed struct {
	set map[ecs.EntityId]bool
}

func (d *Doomed) Mark(id ecs.EntityId) {
	d.set[id] = true
}

func (d *Doomed) Has(id ecs.EntityId) bool {
	return d.set[id]
}

// Controls is the input snapshot the current step reads.
type Controls struct {
	input.State
}

// Rules are the tuning values the systems need from configuration.
type Rules struct {
	BulletSpeed    float64
	BulletSize     float64
	HitThreshold   float64
	ScaleAllMotion bool
}

// motion is the dt factor for bullets and enemies.
func (r *Rules) motion(dt float64) float64 {
	if r.ScaleAllMotion {
		return dt
	}
	return 1
}

func newRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Body](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Sprite](registry)
	ecs.RegisterComponent[Player](registry)
	ecs.RegisterComponent[Enemy](registry)
	ecs.RegisterComponent[Bullet](registry)
	ecs.RegisterComponent[Cursor](registry)
	return registry
}
