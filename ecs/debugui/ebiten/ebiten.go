// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"

	"github.com/plus3/horde/ecs"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
// Store it as a singleton so the game loop and systems share one backend.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// Register adds ImguiBackend to a registry; pass it to debugui.NewRegistry.
func Register(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[ImguiBackend](registry)
}
