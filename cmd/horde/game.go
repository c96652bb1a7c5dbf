package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/horde/internal/app"
	"github.com/plus3/horde/internal/game"
	"github.com/plus3/horde/internal/input"
	"github.com/plus3/horde/internal/render"
)

// Game adapts the session to ebiten. Update runs once per displayed frame;
// the loop decides whether a simulation step is due.
type Game struct {
	session *app.Session
	loop    *game.Loop
	poller  *input.EbitenPoller
	surface *render.Surface
	overlay *overlay

	// A step ran since the last Draw.
	dirty bool
}

func newGame(session *app.Session, poller *input.EbitenPoller) *Game {
	return &Game{
		session: session,
		loop: game.NewLoop(session.World, game.NewMonotonicClock(), session.Tracker,
			session.Config.Loop.TargetInterval()),
		poller:  poller,
		surface: render.NewSurface(session.Manifest, session.Log),
		dirty:   true,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.poller.Poll()
	if g.overlay != nil {
		g.overlay.Update()
		if g.overlay.WantsMouse() {
			g.session.Tracker.PointerUp(input.PrimaryButton)
		}
	}

	if g.loop.Tick() {
		g.dirty = true
	}
	return nil
}

// Draw repaints only after a processed step; the screen keeps the last
// frame otherwise. The overlay needs a fresh frame every time.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.dirty || g.overlay != nil {
		g.surface.Target(screen)
		g.session.World.Render(g.surface)
		g.dirty = false
	}
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

// Layout keeps the arena the size of the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	arena := g.session.World.Arena()
	if int(arena.X) != outsideWidth || int(arena.Y) != outsideHeight {
		g.session.World.Resize(float64(outsideWidth), float64(outsideHeight))
		g.dirty = true
	}
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
