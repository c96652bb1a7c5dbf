package game

import (
	"image/color"
	"math"

	"github.com/plus3/horde/internal/geom"
)

//go:generate go tool mockgen -destination=./mocks/renderer_mock.go -package=mocks . Renderer

// Renderer is the drawing surface. Each call is self-contained: any
// transform it applies is undone before it returns.
type Renderer interface {
	// Fill paints the whole surface.
	Fill(c color.Color)
	// DrawText draws text with its baseline origin at at.
	DrawText(text string, at geom.Vector, size float64, c color.Color)
	// DrawSprite draws sprite id scaled to w×h, centred on center and rotated
	// by angle radians. Sprites with no size yet are skipped.
	DrawSprite(id string, center geom.Vector, w, h, angle float64)
}

const (
	WinText     = "You win!"
	WinTextSize = 48
)

// WinTextAt is where the win message is drawn.
var WinTextAt = geom.Vector{X: 10, Y: 50}

// facing turns a direction angle into a sprite rotation. Sprites are drawn
// pointing up, so a quarter turn is added.
func facing(angle float64) float64 {
	return angle + math.Pi/2
}

// Render draws the current state: the win screen once the game is won,
// otherwise the player, cursor, bullets and enemies over a white field.
func (w *World) Render(r Renderer) {
	w.mu.Lock()
	defer w.mu.Unlock()

	r.Fill(color.White)
	if w.state.Get().Won {
		r.DrawText(WinText, WinTextAt, WinTextSize, color.Black)
		return
	}

	var cursor cursorView
	for c := range w.cursors.Values() {
		cursor = c
	}
	var player playerView
	for p := range w.players.Values() {
		player = p
	}
	if player.Body == nil || cursor.Body == nil {
		return
	}

	playerMid := player.Body.Middle()
	aim := cursor.Body.Middle()
	r.DrawSprite(player.Sprite.ID, playerMid, player.Body.W, player.Body.H,
		facing(aim.Sub(playerMid).Angle()))
	r.DrawSprite(cursor.Sprite.ID, aim, cursor.Body.W, cursor.Body.H, 0)

	for b := range w.bullets.Values() {
		r.DrawSprite(b.Sprite.ID, b.Body.Middle(), b.Body.W, b.Body.H,
			facing(b.Velocity.Angle()))
	}
	for e := range w.enemies.Values() {
		mid := e.Body.Middle()
		r.DrawSprite(e.Sprite.ID, mid, e.Body.W, e.Body.H,
			facing(playerMid.Sub(mid).Angle()))
	}
}
