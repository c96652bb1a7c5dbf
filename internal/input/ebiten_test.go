package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEbitenPollerResolvesKeys(t *testing.T) {
	tracker := NewTracker(Bindings{
		MoveUp:    {"W", "ArrowUp"},
		MoveRight: {"d"},
	})

	poller, err := NewEbitenPoller(tracker)
	require.NoError(t, err)

	got := map[string]ebiten.Key{}
	for _, k := range poller.keys {
		got[k.name] = k.key
	}
	assert.Equal(t, map[string]ebiten.Key{
		"arrowup": ebiten.KeyArrowUp,
		"d":       ebiten.KeyD,
		"w":       ebiten.KeyW,
	}, got)
}

func TestNewEbitenPollerRejectsUnknownKey(t *testing.T) {
	tracker := NewTracker(Bindings{MoveUp: {"NotAKey"}})

	_, err := NewEbitenPoller(tracker)
	assert.ErrorContains(t, err, "notakey")
}
