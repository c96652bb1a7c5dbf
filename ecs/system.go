package ecs

// System is one stage of a frame. Implementations are structs whose exported
// Query and Singleton fields are wired by Scheduler.Register; any other
// fields persist between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
