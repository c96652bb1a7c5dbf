package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/horde/ecs"
)

type Report struct {
	// Configuration
	Steps         int
	Seed          uint64
	ArenaW        int
	ArenaH        int
	SpawnInterval time.Duration

	// Results
	StepsRun      int
	TotalTime     time.Duration
	SimulatedTime time.Duration
	StepTime      Stats
	Won           bool
	Waves         int
	Spawned       int
	Killed        int
	Bullets       int
	Sprites       int64
	Archetypes    int
	Commands      int64
	Systems       []ecs.SystemStats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Horde Benchmark Report

## Configuration
- **Step Limit:** {{.Steps}}
- **Seed:** {{.Seed}}
- **Arena:** {{.ArenaW}}x{{.ArenaH}}
- **Spawn Interval:** {{.SpawnInterval}}

## Game
- **Steps Run:** {{.StepsRun}}
- **Simulated Time:** {{.SimulatedTime}}
- **Outcome:** {{if .Won}}won{{else}}step limit reached{{end}}
- **Waves:** {{.Waves}}
- **Enemies Spawned / Killed:** {{.Spawned}} / {{.Killed}}
- **Bullets In Flight:** {{.Bullets}}
- **Sprites Drawn:** {{.Sprites}}
- **Archetypes:** {{.Archetypes}}
- **Deferred Commands:** {{.Commands}}

## Performance
- **Wall Time:** {{.TotalTime}}
- **Step + Render Time:**
  - **Avg:** {{.StepTime.Avg}}
  - **Min:** {{.StepTime.Min}}
  - **Max:** {{.StepTime.Max}}

## Systems
{{range .Systems}}- {{.Name}}: {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
- GC Pause:       {{.MemStatsEnd.PauseTotalNs | ns}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
