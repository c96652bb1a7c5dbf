// Command horde-bench plays the game headless with an auto-firing player
// and prints a performance report.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/plus3/horde/internal/app"
	"github.com/plus3/horde/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "horde-bench: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "TOML config file (default $"+app.ConfigEnv+")")
	steps := flag.Int("steps", 36000, "maximum number of simulation steps")
	seed := flag.Uint64("seed", 1, "random seed")
	jitter := flag.Float64("jitter", 0, "extra frame time as a fraction of the target, drawn uniformly per frame")
	flag.Parse()

	cfg, err := config.Load(app.ConfigPath(*configPath))
	if err != nil {
		return err
	}
	log, err := app.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync()

	log.Info("starting benchmark",
		zap.Int("steps", *steps),
		zap.Uint64("seed", *seed),
		zap.Float64("jitter", *jitter),
	)
	report := runBench(cfg, benchOptions{Steps: *steps, Seed: *seed, Jitter: *jitter}, log)
	log.Info("benchmark finished",
		zap.Int("steps", report.StepsRun),
		zap.Bool("won", report.Won),
		zap.Duration("wall", report.TotalTime),
	)

	if err := report.Generate(os.Stdout); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}
