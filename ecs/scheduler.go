package ecs

import (
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	// CommandsApplied counts queued spawns, deletes and deferred calls
	// flushed since the scheduler was created.
	CommandsApplied int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type storageBinder interface {
	Init(storage *Storage)
}

type queryExecutor interface {
	Execute()
}

type registeredSystem struct {
	system  System
	queries []queryExecutor
	stats   SystemStats
}

// Scheduler runs registered systems in registration order.
type Scheduler struct {
	storage  *Storage
	systems  []*registeredSystem
	commands int64
}

// NewScheduler creates a scheduler for the given storage.
func NewScheduler(storage *Storage) *Scheduler {
	return &Scheduler{
		storage: storage,
	}
}

// Register wires the Query and Singleton fields of system to the storage and
// appends it to the run order.
func (s *Scheduler) Register(system System) {
	entry := &registeredSystem{
		system: system,
		stats: SystemStats{
			Name:        systemName(system),
			MinDuration: time.Duration(1<<63 - 1),
		},
	}

	value := reflect.ValueOf(system)
	if value.Kind() == reflect.Ptr {
		value = value.Elem()
	}
	if value.Kind() == reflect.Struct {
		for i := 0; i < value.NumField(); i++ {
			field := value.Field(i)
			if !field.CanSet() || field.Kind() != reflect.Struct {
				continue
			}
			binder, ok := field.Addr().Interface().(storageBinder)
			if !ok {
				continue
			}
			binder.Init(s.storage)
			if query, ok := binder.(queryExecutor); ok {
				entry.queries = append(entry.queries, query)
			}
		}
	}

	s.systems = append(s.systems, entry)
}

func systemName(system System) string {
	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Once runs every system a single time. Each system's queries are
// snapshotted just before it runs, so it sees entities spawned directly by
// earlier systems; queued commands are flushed after the last system.
func (s *Scheduler) Once(dt float64, now time.Duration) {
	frame := newUpdateFrame(dt, now, s.storage)

	for _, entry := range s.systems {
		start := time.Now()
		for _, query := range entry.queries {
			query.Execute()
		}
		entry.system.Execute(frame)
		duration := time.Since(start)

		stats := &entry.stats
		stats.ExecutionCount++
		stats.LastDuration = duration
		stats.TotalDuration += duration
		stats.MinDuration = min(stats.MinDuration, duration)
		stats.MaxDuration = max(stats.MaxDuration, duration)
	}

	s.commands += int64(frame.Commands.Pending())
	frame.Commands.Flush(s.storage)
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount:     len(s.systems),
		CommandsApplied: s.commands,
		Systems:         make([]SystemStats, len(s.systems)),
	}

	for i, entry := range s.systems {
		system := entry.stats
		if system.ExecutionCount > 0 {
			system.AvgDuration = system.TotalDuration / time.Duration(system.ExecutionCount)
		}
		stats.Systems[i] = system
		stats.TotalExecutions += system.ExecutionCount
	}

	return stats
}
