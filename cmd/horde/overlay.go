package main

import (
	"fmt"
	"time"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/horde/ecs"
	"github.com/plus3/horde/ecs/debugui"
	debugui_ebiten "github.com/plus3/horde/ecs/debugui/ebiten"
	"github.com/plus3/horde/internal/app"
	"github.com/plus3/horde/internal/game"
)

// overlay is the -debug imgui layer. It runs on its own small ECS so it
// keeps drawing after the game world stops stepping.
type overlay struct {
	backend   *ecs.Singleton[debugui_ebiten.ImguiBackend]
	capture   *ecs.Singleton[debugui.ImguiInputState]
	scheduler *ecs.Scheduler
	timer     *debugui.FrameTimer
	window    *debugui.StatsWindow
	start     time.Time
}

func newOverlay(session *app.Session, loop *game.Loop) *overlay {
	cfg := session.Config.Window
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(cfg.Title, cfg.Width, cfg.Height)
	imgui.CurrentIO().SetIniFilename("")

	storage := ecs.NewStorage(debugui.NewRegistry(debugui_ebiten.Register))
	o := &overlay{
		backend: ecs.NewSingleton[debugui_ebiten.ImguiBackend](storage, debugui_ebiten.ImguiBackend{
			EbitenBackend: backend,
		}),
		capture:   ecs.NewSingleton[debugui.ImguiInputState](storage),
		scheduler: ecs.NewScheduler(storage),
		timer:     debugui.NewFrameTimer(),
		window:    debugui.NewStatsWindow("Horde", 120),
		start:     time.Now(),
	}
	o.scheduler.Register(&debugui.ImguiSystem{})

	storage.Spawn(debugui.ImguiItem{
		Render: func() {
			// Read through the world's own lock before Inspect takes it.
			counts := session.World.Counts()
			won := session.World.Won()
			waves := session.Spawner.Waves()
			loopStats := loop.Stats()

			session.World.Inspect(func(storage *ecs.Storage, scheduler *ecs.Scheduler) {
				o.window.Render(storage, scheduler, func() {
					imgui.Separator()
					imgui.Text(fmt.Sprintf("Enemies: %d  Bullets: %d", counts.Enemies, counts.Bullets))
					imgui.Text(fmt.Sprintf("Waves: %d  Won: %t", waves, won))
					imgui.Text(fmt.Sprintf("Frames: %d  Steps: %d", loopStats.Frames, loopStats.Steps))
				})
			})
		},
	})
	return o
}

func (o *overlay) Update() {
	o.window.Record(o.timer.GetDeltaTime())
	o.backend.Get().BeginFrame()
	o.scheduler.Once(1, time.Since(o.start))
	o.backend.Get().EndFrame()
}

func (o *overlay) WantsMouse() bool {
	return o.capture.Get().WantCaptureMouse
}

func (o *overlay) Draw(screen *ebiten.Image) {
	o.backend.Get().Draw(screen)
}

func (o *overlay) Layout(w, h int) {
	o.backend.Get().Layout(w, h)
}
