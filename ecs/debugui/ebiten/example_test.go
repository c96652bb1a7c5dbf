package ebiten_test

import (
	"time"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/horde/ecs"
	"github.com/plus3/horde/ecs/debugui"
	debugui_ebiten "github.com/plus3/horde/ecs/debugui/ebiten"
)

// Game implements ebiten.Game and integrates the ECS with ImGui rendering.
type Game struct {
	scheduler    *ecs.Scheduler
	imguiBackend *ecs.Singleton[debugui_ebiten.ImguiBackend]
	start        time.Time
}

func (g *Game) Update() error {
	g.imguiBackend.Get().BeginFrame()
	g.scheduler.Once(1, time.Since(g.start))
	g.imguiBackend.Get().EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Game content first, the overlay on top.
	g.imguiBackend.Get().Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Get().Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	imguiBackend := ebitenbackend.NewEbitenBackend()
	imguiBackend.CreateWindow("ECS ImGui Example", 1280, 720)
	imgui.CurrentIO().SetIniFilename("")

	storage := ecs.NewStorage(debugui.NewRegistry(debugui_ebiten.Register))
	backend := ecs.NewSingleton[debugui_ebiten.ImguiBackend](storage, debugui_ebiten.ImguiBackend{
		EbitenBackend: imguiBackend,
	})

	window := debugui.NewStatsWindow("Storage", 120)
	storage.Spawn(debugui.ImguiItem{
		Render: func() { window.Render(storage, nil, nil) },
	})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&debugui.ImguiSystem{})

	game := &Game{scheduler: scheduler, imguiBackend: backend, start: time.Now()}
	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
