package input

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type ebitenKey struct {
	key  ebiten.Key
	name string
}

// EbitenPoller feeds a Tracker from ebiten's polled input state. Call Poll
// once per Update.
type EbitenPoller struct {
	tracker *Tracker
	keys    []ebitenKey
}

// NewEbitenPoller resolves every key bound in tracker to an ebiten key. Key
// names use ebiten's spelling ("W", "ArrowUp", "Space").
func NewEbitenPoller(tracker *Tracker) (*EbitenPoller, error) {
	p := &EbitenPoller{tracker: tracker}
	for _, name := range tracker.Keys() {
		var key ebiten.Key
		if err := key.UnmarshalText([]byte(name)); err != nil {
			return nil, fmt.Errorf("bind key %q: %w", name, err)
		}
		p.keys = append(p.keys, ebitenKey{key: key, name: name})
	}
	return p, nil
}

// Poll forwards this tick's key transitions and the cursor position.
func (p *EbitenPoller) Poll() {
	for _, k := range p.keys {
		switch {
		case inpututil.IsKeyJustPressed(k.key):
			p.tracker.KeyDown(k.name)
		case inpututil.IsKeyJustReleased(k.key):
			p.tracker.KeyUp(k.name)
		}
	}

	x, y := ebiten.CursorPosition()
	p.tracker.PointerMove(float64(x), float64(y))

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		p.tracker.PointerDown(PrimaryButton)
	} else if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		p.tracker.PointerUp(PrimaryButton)
	}
}
