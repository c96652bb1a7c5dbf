package tty

import (
	"context"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/horde/internal/input"
)

// Events polls screen on its own goroutine until ctx is done or the screen
// is finalised, then closes the returned channel. A send blocked on a reader
// that has gone away gives up when ctx is done.
func Events(ctx context.Context, screen tcell.Screen, buffer int) <-chan tcell.Event {
	events := make(chan tcell.Event, buffer)
	go func() {
		defer close(events)
		for ctx.Err() == nil {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return events
}

// DefaultHold covers the gap between the first key press and the terminal's
// auto-repeat.
const DefaultHold = 600 * time.Millisecond

// Pump feeds terminal events into an input.Tracker. Terminals report presses
// and repeats but never releases, so a key stays held until no repeat has
// arrived for the hold duration.
type Pump struct {
	tracker *input.Tracker
	hold    time.Duration
	seen    map[string]time.Duration
	button  bool
}

func NewPump(tracker *input.Tracker, hold time.Duration) *Pump {
	return &Pump{
		tracker: tracker,
		hold:    hold,
		seen:    make(map[string]time.Duration),
	}
}

// Handle applies one event received at now. It returns false when the event
// asks to quit.
func (p *Pump) Handle(ev tcell.Event, now time.Duration) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if quits(ev) {
			return false
		}
		name := keyName(ev)
		if name == "" {
			return true
		}
		if _, held := p.seen[name]; !held {
			p.tracker.KeyDown(name)
		}
		p.seen[name] = now

	case *tcell.EventMouse:
		x, y := ev.Position()
		c := CellCenter(x, y)
		p.tracker.PointerMove(c.X, c.Y)

		down := ev.Buttons()&tcell.Button1 != 0
		if down && !p.button {
			p.tracker.PointerDown(input.PrimaryButton)
		} else if !down && p.button {
			p.tracker.PointerUp(input.PrimaryButton)
		}
		p.button = down
	}
	return true
}

// Expire releases keys that have not repeated within the hold duration.
func (p *Pump) Expire(now time.Duration) {
	for name, at := range p.seen {
		if now-at >= p.hold {
			delete(p.seen, name)
			p.tracker.KeyUp(name)
		}
	}
}

func quits(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// keyName spells keys the way the config binds them, so the same bindings
// serve both frontends.
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyRune:
		return strings.ToLower(string(ev.Rune()))
	case tcell.KeyUp:
		return "arrowup"
	case tcell.KeyDown:
		return "arrowdown"
	case tcell.KeyLeft:
		return "arrowleft"
	case tcell.KeyRight:
		return "arrowright"
	}
	return ""
}
