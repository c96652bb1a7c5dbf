// Package game is the arena shooter itself: components, systems, the
// spawner and the frame loop, all built on the ecs package.
package game

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/plus3/horde/ecs"
	"github.com/plus3/horde/internal/config"
	"github.com/plus3/horde/internal/geom"
	"github.com/plus3/horde/internal/input"
)

type playerView struct {
	*Body
	*Sprite
	*Player
}

type cursorView struct {
	*Body
	*Sprite
	*Cursor
}

type enemyView struct {
	*Body
	*Sprite
	*Enemy
}

type bulletView struct {
	*Body
	*Velocity
	*Sprite
	*Bullet
}

// World owns the entity storage and runs one simulation step at a time. The
// frame loop, the spawner goroutine and any inspector serialise on its lock.
type World struct {
	mu        sync.Mutex
	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	log       *zap.Logger

	enemySize float64
	playerId  ecs.EntityId

	arena    *ecs.Singleton[Arena]
	state    *ecs.Singleton[GameState]
	controls *ecs.Singleton[Controls]

	players *ecs.View[playerView]
	cursors *ecs.View[cursorView]
	enemies *ecs.View[enemyView]
	bullets *ecs.View[bulletView]
}

// NewWorld builds the arena at the configured window size with the player
// in the middle and the cursor. Enemies come from a Spawner.
func NewWorld(cfg *config.Config, log *zap.Logger) *World {
	storage := ecs.NewStorage(newRegistry())
	size := geom.Vector{X: float64(cfg.Window.Width), Y: float64(cfg.Window.Height)}

	w := &World{
		storage:   storage,
		scheduler: ecs.NewScheduler(storage),
		log:       log,
		enemySize: cfg.Enemy.Size,
		arena:     ecs.NewSingleton[Arena](storage, Arena{Size: size}),
		state:     ecs.NewSingleton[GameState](storage),
		controls:  ecs.NewSingleton[Controls](storage),
	}
	ecs.NewSingleton[ShotClock](storage)
	ecs.NewSingleton[Doomed](storage, Doomed{set: make(map[ecs.EntityId]bool)})
	ecs.NewSingleton[Rules](storage, Rules{
		BulletSpeed:    cfg.Loop.BulletSpeed,
		BulletSize:     cfg.Bullet.Size,
		HitThreshold:   cfg.Enemy.HitThreshold,
		ScaleAllMotion: cfg.Loop.ScaleAllMotion,
	})

	w.players = ecs.NewView[playerView](storage)
	w.cursors = ecs.NewView[cursorView](storage)
	w.enemies = ecs.NewView[enemyView](storage)
	w.bullets = ecs.NewView[bulletView](storage)

	origin := size.Scale(0.5).Sub(geom.Vector{X: cfg.Player.Size / 2, Y: cfg.Player.Size / 2})
	w.playerId = storage.Spawn(newPlayer(origin, cfg.Player)...)
	storage.Spawn(newCursor(cfg.Cursor)...)

	w.register()
	return w
}

func (w *World) register() {
	w.scheduler.Register(&ClearDoomedSystem{})
	w.scheduler.Register(&CursorSystem{})
	w.scheduler.Register(&SteerSystem{})
	w.scheduler.Register(&ShootSystem{})
	w.scheduler.Register(&VictorySystem{})
	w.scheduler.Register(&PlayerMoveSystem{})
	w.scheduler.Register(&BulletSystem{})
	w.scheduler.Register(&EnemySystem{})
}

// Step runs one simulation step with the given dt scale, timestamp and input.
// It does nothing once the game is won.
func (w *World) Step(dt float64, now time.Duration, in input.State) {
	w.mu.Lock()
	defer w.mu.Unlock()

	state := w.state.Get()
	if state.Won {
		return
	}
	w.controls.Get().State = in
	w.scheduler.Once(dt, now)
	state.Steps++

	if state.Won {
		w.log.Info("all enemies down",
			zap.Int("steps", state.Steps),
			zap.Duration("at", state.WonAt),
		)
	}
}

// Won reports whether the terminal state was reached.
func (w *World) Won() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.Get().Won
}

// Resize makes the arena follow the render surface.
func (w *World) Resize(width, height float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.arena.Get().Size = geom.Vector{X: width, Y: height}
}

func (w *World) Arena() geom.Vector {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.arena.Get().Size
}

// EnemySpec places one enemy.
type EnemySpec struct {
	Origin geom.Vector
	Speed  float64
}

// AddEnemies spawns the enemies unless the game is already won, in which
// case it returns false and spawns nothing.
func (w *World) AddEnemies(specs ...EnemySpec) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state.Get().Won {
		return false
	}
	for _, spec := range specs {
		w.storage.Spawn(newEnemy(spec.Origin, w.enemySize, spec.Speed)...)
	}
	return true
}

// PlacePlayer moves the player's top-left corner to origin.
func (w *World) PlacePlayer(origin geom.Vector) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if body := ecs.ReadComponent[Body](w.storage, w.playerId); body != nil {
		body.X, body.Y = origin.X, origin.Y
	}
}

// Player returns the player's box.
func (w *World) Player() geom.Box {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.player()
}

func (w *World) player() geom.Box {
	if body := ecs.ReadComponent[Body](w.storage, w.playerId); body != nil {
		return body.Box
	}
	return geom.Box{}
}

// Enemies returns the boxes of all live enemies.
func (w *World) Enemies() []geom.Box {
	w.mu.Lock()
	defer w.mu.Unlock()
	var out []geom.Box
	for e := range w.enemies.Values() {
		out = append(out, e.Body.Box)
	}
	return out
}

// Bullets returns the boxes of all live bullets.
func (w *World) Bullets() []geom.Box {
	w.mu.Lock()
	defer w.mu.Unlock()
	var out []geom.Box
	for b := range w.bullets.Values() {
		out = append(out, b.Body.Box)
	}
	return out
}

// Counts is the size of each pool.
type Counts struct {
	Enemies int
	Bullets int
}

func (w *World) Counts() Counts {
	w.mu.Lock()
	defer w.mu.Unlock()
	var c Counts
	for range w.enemies.Values() {
		c.Enemies++
	}
	for range w.bullets.Values() {
		c.Bullets++
	}
	return c
}

// Inspect runs fn under the world lock, for debug views that read the
// storage or scheduler directly.
func (w *World) Inspect(fn func(storage *ecs.Storage, scheduler *ecs.Scheduler)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fn(w.storage, w.scheduler)
}
