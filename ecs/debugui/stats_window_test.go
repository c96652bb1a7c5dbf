package debugui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/horde/ecs"
	"github.com/plus3/horde/ecs/debugui"
)

func ids(rows []ecs.ArchetypeStats) []uint32 {
	out := make([]uint32, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

func TestSortArchetypes(t *testing.T) {
	rows := []ecs.ArchetypeStats{
		{ID: 3, ComponentTypes: []string{"game.Body", "game.Enemy"}, EntityCount: 40},
		{ID: 1, ComponentTypes: []string{"game.Body", "game.Bullet"}, EntityCount: 2},
		{ID: 2, ComponentTypes: []string{"game.Body", "game.Cursor"}, EntityCount: 1},
		{ID: 4, ComponentTypes: []string{"game.Body", "game.Player"}, EntityCount: 1},
	}

	debugui.SortArchetypes(rows, debugui.ColumnEntities, false)
	assert.Equal(t, []uint32{3, 1, 2, 4}, ids(rows))

	debugui.SortArchetypes(rows, debugui.ColumnEntities, true)
	assert.Equal(t, []uint32{2, 4, 1, 3}, ids(rows))

	debugui.SortArchetypes(rows, debugui.ColumnID, true)
	assert.Equal(t, []uint32{1, 2, 3, 4}, ids(rows))

	debugui.SortArchetypes(rows, debugui.ColumnComponents, false)
	assert.Equal(t, []uint32{4, 3, 2, 1}, ids(rows))
}

func TestStatsWindowAverageFrame(t *testing.T) {
	w := debugui.NewStatsWindow("stats", 4)

	ms, fps := w.AverageFrame()
	assert.Zero(t, ms)
	assert.Zero(t, fps)

	for i := 0; i < 6; i++ {
		w.Record(0.020)
	}
	ms, fps = w.AverageFrame()
	assert.InDelta(t, 20.0, ms, 1e-3)
	assert.InDelta(t, 50.0, fps, 1e-2)

	// A ring: older samples are overwritten.
	w.Record(0.010)
	w.Record(0.010)
	ms, _ = w.AverageFrame()
	assert.InDelta(t, 15.0, ms, 1e-3)
}
