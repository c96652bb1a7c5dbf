package game

import (
	"math"
	"time"

	"github.com/plus3/horde/ecs"
	"github.com/plus3/horde/internal/geom"
	"github.com/plus3/horde/internal/input"
)

// Systems run in registration order; see World.register.

type ClearDoomedSystem struct {
	Doomed ecs.Singleton[Doomed]
}

func (s *ClearDoomedSystem) Execute(frame *ecs.UpdateFrame) {
	clear(s.Doomed.Get().set)
}

// CursorSystem centres the cursor box on the pointer.
type CursorSystem struct {
	Cursors ecs.Query[struct {
		*Body
		*Cursor
	}]
	Controls ecs.Singleton[Controls]
}

func (s *CursorSystem) Execute(frame *ecs.UpdateFrame) {
	pointer := s.Controls.Get().Pointer()
	for cursor := range s.Cursors.Values() {
		cursor.Body.Box = cursor.Body.CenterOn(pointer)
	}
}

// SteerSystem turns held keys into the player's displacement for this step.
// Axes are independent, so diagonals are faster by √2.
type SteerSystem struct {
	Players ecs.Query[struct {
		*Velocity
		*Player
	}]
	Controls ecs.Singleton[Controls]
}

func (s *SteerSystem) Execute(frame *ecs.UpdateFrame) {
	controls := s.Controls.Get()
	for player := range s.Players.Values() {
		step := player.Player.Speed * frame.DeltaTime
		var d geom.Vector
		if controls.Held(input.MoveUp) {
			d.Y -= step
		}
		if controls.Held(input.MoveDown) {
			d.Y += step
		}
		if controls.Held(input.MoveLeft) {
			d.X -= step
		}
		if controls.Held(input.MoveRight) {
			d.X += step
		}
		player.Velocity.Vector = d
	}
}

// ShootSystem fires one bullet from the player's centre toward the cursor
// while the primary button is held, at most FireRate times a second.
type ShootSystem struct {
	Players ecs.Query[struct {
		*Body
		*Player
	}]
	Cursors ecs.Query[struct {
		*Body
		*Cursor
	}]
	Controls ecs.Singleton[Controls]
	Clock    ecs.Singleton[ShotClock]
	Rules    ecs.Singleton[Rules]
}

func (s *ShootSystem) Execute(frame *ecs.UpdateFrame) {
	if !s.Controls.Get().Firing() {
		return
	}
	clock := s.Clock.Get()
	if frame.Time < clock.Next {
		return
	}

	var target geom.Vector
	for cursor := range s.Cursors.Values() {
		target = cursor.Body.Middle()
	}

	rules := s.Rules.Get()
	for player := range s.Players.Values() {
		origin := player.Body.Middle()
		dir, ok := target.Sub(origin).Normalize()
		if !ok {
			// Cursor on the player's centre: no direction, keep the cooldown.
			continue
		}
		// Spawned directly so the bullet system sees it this step.
		frame.Storage.Spawn(newBullet(origin, dir, rules.BulletSize)...)
		clock.Next = frame.Time + shotInterval(player.Player.FireRate)
	}
}

// VictorySystem ends the game once no enemy is left.
type VictorySystem struct {
	Enemies ecs.Query[struct{ *Enemy }]
	State   ecs.Singleton[GameState]
}

func (s *VictorySystem) Execute(frame *ecs.UpdateFrame) {
	state := s.State.Get()
	if state.Won || s.Enemies.Len() > 0 {
		return
	}
	state.Won = true
	state.WonAt = frame.Time
}

// PlayerMoveSystem applies the displacement from SteerSystem and keeps the
// player inside the arena.
type PlayerMoveSystem struct {
	Players ecs.Query[struct {
		*Body
		*Velocity
		*Player
	}]
	Arena ecs.Singleton[Arena]
	State ecs.Singleton[GameState]
}

func (s *PlayerMoveSystem) Execute(frame *ecs.UpdateFrame) {
	if s.State.Get().Won {
		return
	}
	bounds := s.Arena.Get().Size
	for player := range s.Players.Values() {
		player.Body.Box = player.Body.Translate(player.Velocity.Vector).ClampTo(bounds)
	}
}

// BulletSystem advances bullets, drops the ones that left the arena and
// resolves bullet/enemy hits. A bullet removes at most one enemy.
type BulletSystem struct {
	Bullets ecs.Query[struct {
		ecs.EntityId
		*Body
		*Velocity
		*Bullet
	}]
	Enemies ecs.Query[struct {
		ecs.EntityId
		*Body
		*Enemy
	}]
	Arena  ecs.Singleton[Arena]
	Rules  ecs.Singleton[Rules]
	Doomed ecs.Singleton[Doomed]
	State  ecs.Singleton[GameState]
}

func (s *BulletSystem) Execute(frame *ecs.UpdateFrame) {
	if s.State.Get().Won {
		return
	}
	bounds := s.Arena.Get().Size
	rules := s.Rules.Get()
	doomed := s.Doomed.Get()
	travel := rules.BulletSpeed * rules.motion(frame.DeltaTime)

	for bullet := range s.Bullets.Values() {
		bullet.Body.Box = bullet.Body.Translate(bullet.Velocity.Scale(travel))

		if !bullet.Body.OriginWithin(bounds) {
			doomed.Mark(bullet.EntityId)
			frame.Commands.Delete(bullet.EntityId)
			continue
		}

		for enemy := range s.Enemies.Values() {
			if doomed.Has(enemy.EntityId) {
				continue
			}
			if bullet.Body.Intersects(enemy.Body.Box, rules.HitThreshold) {
				doomed.Mark(bullet.EntityId)
				doomed.Mark(enemy.EntityId)
				frame.Commands.Delete(bullet.EntityId)
				frame.Commands.Delete(enemy.EntityId)
				break
			}
		}
	}
}

// EnemySystem walks every surviving enemy toward the player. An enemy
// already overlapping the player stays parked.
type EnemySystem struct {
	Enemies ecs.Query[struct {
		ecs.EntityId
		*Body
		*Velocity
		*Enemy
	}]
	Players ecs.Query[struct {
		*Body
		*Player
	}]
	Arena  ecs.Singleton[Arena]
	Rules  ecs.Singleton[Rules]
	Doomed ecs.Singleton[Doomed]
	State  ecs.Singleton[GameState]
}

func (s *EnemySystem) Execute(frame *ecs.UpdateFrame) {
	if s.State.Get().Won {
		return
	}
	var player geom.Box
	for p := range s.Players.Values() {
		player = p.Body.Box
	}

	bounds := s.Arena.Get().Size
	rules := s.Rules.Get()
	doomed := s.Doomed.Get()
	scale := rules.motion(frame.DeltaTime)
	target := player.Middle()

	for enemy := range s.Enemies.Values() {
		if doomed.Has(enemy.EntityId) {
			continue
		}
		if enemy.Body.Intersects(player, rules.HitThreshold) {
			enemy.Velocity.Vector = geom.Vector{}
			continue
		}
		angle := target.Sub(enemy.Body.Middle()).Angle()
		d := geom.FromAngle(angle).Scale(enemy.Enemy.Speed * scale)
		enemy.Velocity.Vector = d
		enemy.Body.Box = enemy.Body.Translate(d).ClampTo(bounds)
	}
}

func shotInterval(fireRate float64) time.Duration {
	if fireRate <= 0 || math.IsInf(fireRate, 0) {
		return 0
	}
	return time.Duration(float64(time.Second) / fireRate)
}
