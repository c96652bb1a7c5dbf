// Command horde runs the arena shooter in a desktop window.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/plus3/horde/internal/app"
	"github.com/plus3/horde/internal/config"
	"github.com/plus3/horde/internal/input"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "horde: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "TOML config file (default $"+app.ConfigEnv+")")
	debug := flag.Bool("debug", false, "show the imgui debug overlay")
	seed := flag.Uint64("seed", 0, "random seed; 0 picks one")
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

	log.Info("config loaded",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Int("target_fps", cfg.Loop.TargetFPS),
		zap.Bool("scale_all_motion", cfg.Loop.ScaleAllMotion),
		zap.Bool("debug", *debug || cfg.Debug.Overlay),
	)

	session, err := app.NewSession(cfg, log, app.Rand(*seed))
	if err != nil {
		return err
	}
	poller, err := input.NewEbitenPoller(session.Tracker)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer func() {
		cancel()
		session.Close()
	}()

	g := newGame(session, poller)
	if *debug || cfg.Debug.Overlay {
		g.overlay = newOverlay(session, g.loop)
	} else {
		ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
		ebiten.SetWindowTitle(cfg.Window.Title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetScreenClearedEveryFrame(false)

	session.Start(ctx)
	err = ebiten.RunGame(g)
	session.LogStats()
	return err
}
