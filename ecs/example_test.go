package ecs_test

import (
	"fmt"

	"github.com/plus3/horde/ecs"
)

type ArenaSize struct {
	Width, Height int
}

// ExampleNewSingleton shows world-level state that is not attached to any
// entity. Every accessor of the same type shares one value.
func ExampleNewSingleton() {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())

	arena := ecs.NewSingleton[ArenaSize](storage, ArenaSize{Width: 800, Height: 600})
	fmt.Printf("arena: %dx%d\n", arena.Get().Width, arena.Get().Height)

	arena.Get().Width = 1024
	same := ecs.NewSingleton[ArenaSize](storage, ArenaSize{Width: 1, Height: 1})
	fmt.Printf("same arena: %dx%d\n", same.Get().Width, same.Get().Height)

	// Output:
	// arena: 800x600
	// same arena: 1024x600
}

// ExampleStorage_ReadSingleton reads a singleton outside of any system.
func ExampleStorage_ReadSingleton() {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())
	storage.AddSingleton(ArenaSize{Width: 640, Height: 480})

	var arena *ArenaSize
	if storage.ReadSingleton(&arena) {
		fmt.Printf("arena: %dx%d\n", arena.Width, arena.Height)
	}

	var score *Score
	fmt.Println("score present:", storage.ReadSingleton(&score))

	// Output:
	// arena: 640x480
	// score present: false
}

type Drift struct {
	Entities ecs.Query[struct {
		ecs.EntityId
		*Position
		*Velocity
	}]
	Arena ecs.Singleton[ArenaSize]
}

func (d *Drift) Execute(frame *ecs.UpdateFrame) {
	arena := d.Arena.Get()
	for item := range d.Entities.Values() {
		item.Position.X += item.Velocity.DX * float32(frame.DeltaTime)
		if item.Position.X > float32(arena.Width) {
			frame.Commands.Delete(item.EntityId)
		}
	}
}

// ExampleScheduler wires a system's Query and Singleton fields and runs two
// frames. The entity that leaves the arena is removed when the first frame's
// commands are flushed.
func ExampleScheduler() {
	storage := ecs.NewStorage(newTestRegistry())
	ecs.NewSingleton[ArenaSize](storage, ArenaSize{Width: 100, Height: 100})

	storage.Spawn(Position{X: 95}, Velocity{DX: 10})
	storage.Spawn(Position{X: 10}, Velocity{DX: 10})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&Drift{})

	for frame := 0; frame < 2; frame++ {
		scheduler.Once(1, 0)
		stats := storage.CollectStats()
		fmt.Printf("frame %d: %d entities\n", frame, stats.TotalEntityCount)
	}

	// Output:
	// frame 0: 1 entities
	// frame 1: 1 entities
}
