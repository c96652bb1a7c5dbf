// Package input turns raw key and pointer events into the immutable State
// snapshot the simulation reads once per step.
package input

import (
	"slices"
	"strings"
	"sync"

	"github.com/plus3/horde/internal/geom"
)

// Action is a movement intent bound to one or more keys.
type Action int

const (
	MoveUp Action = iota
	MoveDown
	MoveLeft
	MoveRight

	actionCount
)

func (a Action) String() string {
	switch a {
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	default:
		return "unknown"
	}
}

// PrimaryButton is the pointer button that fires.
const PrimaryButton = 0

// Bindings maps each action to the key names that trigger it. Key names are
// matched case-insensitively.
type Bindings map[Action][]string

// State is a point-in-time copy of the input. The zero value has nothing
// held and the pointer at the origin.
type State struct {
	held    [actionCount]bool
	pointer geom.Vector
	firing  bool
}

// NewState builds a snapshot directly, for tests and synthetic drivers.
func NewState(pointer geom.Vector, firing bool, held ...Action) State {
	s := State{pointer: pointer, firing: firing}
	for _, a := range held {
		if a >= 0 && a < actionCount {
			s.held[a] = true
		}
	}
	return s
}

// Held reports whether any key bound to a is down.
func (s State) Held(a Action) bool {
	if a < 0 || a >= actionCount {
		return false
	}
	return s.held[a]
}

// Pointer is the last reported pointer position in arena coordinates.
func (s State) Pointer() geom.Vector {
	return s.pointer
}

// Firing reports whether the primary button is down.
func (s State) Firing() bool {
	return s.firing
}

// Tracker accumulates events from an input collaborator. Its methods may be
// called from any goroutine.
type Tracker struct {
	mu       sync.Mutex
	bindings map[string]Action
	down     map[string]bool
	buttons  map[int]bool
	pointer  geom.Vector
}

// NewTracker creates a tracker with the given key bindings.
func NewTracker(bindings Bindings) *Tracker {
	t := &Tracker{
		bindings: make(map[string]Action),
		down:     make(map[string]bool),
		buttons:  make(map[int]bool),
	}
	for action, keys := range bindings {
		for _, key := range keys {
			t.bindings[normalize(key)] = action
		}
	}
	return t
}

func normalize(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Bound reports whether key is bound to any action.
func (t *Tracker) Bound(key string) bool {
	_, ok := t.bindings[normalize(key)]
	return ok
}

// Keys lists every bound key name, lower-cased and sorted.
func (t *Tracker) Keys() []string {
	keys := make([]string, 0, len(t.bindings))
	for key := range t.bindings {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

func (t *Tracker) KeyDown(key string) {
	t.mu.Lock()
	t.down[normalize(key)] = true
	t.mu.Unlock()
}

func (t *Tracker) KeyUp(key string) {
	t.mu.Lock()
	delete(t.down, normalize(key))
	t.mu.Unlock()
}

func (t *Tracker) PointerMove(x, y float64) {
	t.mu.Lock()
	t.pointer = geom.Vector{X: x, Y: y}
	t.mu.Unlock()
}

func (t *Tracker) PointerDown(button int) {
	t.mu.Lock()
	t.buttons[button] = true
	t.mu.Unlock()
}

func (t *Tracker) PointerUp(button int) {
	t.mu.Lock()
	delete(t.buttons, button)
	t.mu.Unlock()
}

// Snapshot copies the current state.
func (t *Tracker) Snapshot() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := State{
		pointer: t.pointer,
		firing:  t.buttons[PrimaryButton],
	}
	for key := range t.down {
		if action, ok := t.bindings[key]; ok {
			s.held[action] = true
		}
	}
	return s
}
