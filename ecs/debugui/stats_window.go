package debugui

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/horde/ecs"
)

// Archetype table columns.
const (
	ColumnID = iota
	ColumnComponents
	ColumnEntities
)

// StatsWindow shows storage and scheduler statistics: entity totals, a
// frame time graph, a sortable archetype table and per-system timings.
type StatsWindow struct {
	Title string

	history []float32
	index   int

	sortColumn    int
	sortAscending bool
}

func NewStatsWindow(title string, historyFrames int) *StatsWindow {
	return &StatsWindow{
		Title:      title,
		history:    make([]float32, max(historyFrames, 1)),
		sortColumn: ColumnEntities,
	}
}

// Record adds a frame time sample in seconds.
func (w *StatsWindow) Record(deltaTime float32) {
	w.history[w.index] = deltaTime * 1000.0
	w.index = (w.index + 1) % len(w.history)
}

// AverageFrame returns the mean frame time in milliseconds and the matching
// rate. Unfilled slots count as zero.
func (w *StatsWindow) AverageFrame() (ms, fps float32) {
	for _, ft := range w.history {
		ms += ft
	}
	ms /= float32(len(w.history))
	if ms > 0 {
		fps = 1000.0 / ms
	}
	return ms, fps
}

// Render draws the window. scheduler may be nil. extra, if set, runs inside
// the window after the totals.
func (w *StatsWindow) Render(storage *ecs.Storage, scheduler *ecs.Scheduler, extra func()) {
	if !imgui.BeginV(w.Title, nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	defer imgui.End()

	stats := storage.CollectStats()
	imgui.Text(fmt.Sprintf("Total Entities: %d", stats.TotalEntityCount))
	imgui.Text(fmt.Sprintf("Archetypes: %d", stats.ArchetypeCount))
	imgui.Text(fmt.Sprintf("Singletons: %d", stats.SingletonCount))
	if extra != nil {
		extra()
	}

	ms, fps := w.AverageFrame()
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", ms, fps))
	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &w.history[0], int32(len(w.history)))

	if imgui.TreeNodeStr("Archetypes") {
		w.archetypeTable(stats.ArchetypeBreakdown)
		imgui.TreePop()
	}

	if scheduler != nil && imgui.TreeNodeStr("Systems") {
		systemTable(scheduler.GetStats())
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Singletons") {
		for _, singletonType := range stats.SingletonTypes {
			imgui.BulletText(singletonType)
		}
		imgui.TreePop()
	}
}

func (w *StatsWindow) archetypeTable(rows []ecs.ArchetypeStats) {
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable
	if !imgui.BeginTableV("ArchetypeTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}
	imgui.TableSetupColumn("Archetype ID")
	imgui.TableSetupColumn("Components")
	imgui.TableSetupColumn("Entity Count")
	imgui.TableHeadersRow()

	sortSpecs := imgui.TableGetSortSpecs()
	if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
		spec := sortSpecs.Specs()
		w.sortColumn = int(spec.ColumnIndex())
		w.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
		sortSpecs.SetSpecsDirty(false)
	}
	SortArchetypes(rows, w.sortColumn, w.sortAscending)

	for _, arch := range rows {
		imgui.TableNextRow()
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("0x%X", arch.ID))
		imgui.TableNextColumn()
		imgui.Text(strings.Join(arch.ComponentTypes, ", "))
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%d", arch.EntityCount))
	}
	imgui.EndTable()
}

func systemTable(stats *ecs.SchedulerStats) {
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if !imgui.BeginTableV("SystemTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}
	imgui.TableSetupColumn("System")
	imgui.TableSetupColumn("Runs")
	imgui.TableSetupColumn("Last")
	imgui.TableSetupColumn("Avg / Max")
	imgui.TableHeadersRow()

	for _, system := range stats.Systems {
		imgui.TableNextRow()
		imgui.TableNextColumn()
		imgui.Text(system.Name)
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%d", system.ExecutionCount))
		imgui.TableNextColumn()
		imgui.Text(formatDuration(system.LastDuration))
		imgui.TableNextColumn()
		imgui.Text(formatDuration(system.AvgDuration) + " / " + formatDuration(system.MaxDuration))
	}
	imgui.EndTable()
}

// SortArchetypes orders rows by column, breaking ties by archetype id.
func SortArchetypes(rows []ecs.ArchetypeStats, column int, ascending bool) {
	slices.SortStableFunc(rows, func(a, b ecs.ArchetypeStats) int {
		var c int
		switch column {
		case ColumnID:
			c = cmp.Compare(a.ID, b.ID)
		case ColumnComponents:
			c = strings.Compare(strings.Join(a.ComponentTypes, ","), strings.Join(b.ComponentTypes, ","))
		default:
			c = cmp.Compare(a.EntityCount, b.EntityCount)
		}
		if !ascending {
			c = -c
		}
		if c == 0 {
			c = cmp.Compare(a.ID, b.ID)
		}
		return c
	})
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.3f ms", float64(d)/float64(time.Millisecond))
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
