package ecs_test

import (
	"testing"

	"github.com/plus3/horde/ecs"
	"github.com/stretchr/testify/assert"
)

type spawnThenDelete struct {
	Scores ecs.Query[struct {
		ecs.EntityId
		*Score
	}]
	pending int
}

func (s *spawnThenDelete) Execute(frame *ecs.UpdateFrame) {
	for item := range s.Scores.Values() {
		if *item.Score < 0 {
			frame.Commands.Delete(item.EntityId)
			// A second delete of the same id must be harmless.
			frame.Commands.Delete(item.EntityId)
		}
	}
	frame.Commands.Spawn(Score(100))
	s.pending = frame.Commands.Pending()
}

func TestCommandsAreDeferredUntilFrameEnd(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	doomed := storage.Spawn(Score(-1))
	kept := storage.Spawn(Score(1))

	scheduler := ecs.NewScheduler(storage)
	system := &spawnThenDelete{}
	scheduler.Register(system)

	var observed []bool
	scheduler.Register(observer(func(frame *ecs.UpdateFrame) {
		// Later systems still see the queued deletion as alive.
		observed = append(observed, frame.Storage.Alive(doomed))
	}))

	scheduler.Once(1, 0)

	assert.Equal(t, 3, system.pending)
	assert.Equal(t, []bool{true}, observed)
	assert.Equal(t, int64(3), scheduler.GetStats().CommandsApplied)

	// The spawn lands in the slot the deletion freed; the old id stays dead.
	assert.False(t, storage.Alive(doomed))
	assert.Nil(t, ecs.ReadComponent[Score](storage, doomed))
	assert.True(t, storage.Alive(kept))
	assert.Equal(t, 2, storage.GetArchetype(Score(0)).Len())
}

func TestDeferRunsAfterStructuralChanges(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	doomed := storage.Spawn(Name("doomed"))

	var aliveInDefer bool
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(observer(func(frame *ecs.UpdateFrame) {
		frame.Commands.Defer(func() {
			aliveInDefer = storage.Alive(doomed)
		})
		frame.Commands.Delete(doomed)
	}))

	scheduler.Once(1, 0)
	assert.False(t, aliveInDefer)
}

type observer func(frame *ecs.UpdateFrame)

func (o observer) Execute(frame *ecs.UpdateFrame) { o(frame) }
