package ecs

import "time"

// UpdateFrame is passed to every system of one scheduler pass.
type UpdateFrame struct {
	// DeltaTime is the step scale the caller chose, e.g. elapsed/target.
	DeltaTime float64
	// Time is the caller's monotonic timestamp for this pass.
	Time     time.Duration
	Commands *Commands
	Storage  *Storage
}

func newUpdateFrame(dt float64, now time.Duration, storage *Storage) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Time:      now,
		Commands:  newCommands(),
		Storage:   storage,
	}
}
