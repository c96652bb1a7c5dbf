// Command horde-tty runs the arena shooter in a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/plus3/horde/internal/app"
	"github.com/plus3/horde/internal/config"
	"github.com/plus3/horde/internal/game"
	"github.com/plus3/horde/internal/tty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "horde-tty: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "TOML config file (default $"+app.ConfigEnv+")")
	seed := flag.Uint64("seed", 0, "random seed; 0 picks one")
	hold := flag.Duration("hold", tty.DefaultHold, "how long a key counts as held after its last repeat")
	logPath := flag.String("log", "horde-tty.log", "log file; the terminal is busy drawing")
	flag.Parse()

	cfg, err := config.Load(app.ConfigPath(*configPath))
	if err != nil {
		return err
	}
	log, err := app.NewLogger(cfg.Logging, *logPath)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	cols, rows := screen.Size()
	cfg.Window.Width, cfg.Window.Height = cols*tty.CellWidth, rows*tty.CellHeight
	log.Info("terminal ready", zap.Int("cols", cols), zap.Int("rows", rows))

	session, err := app.NewSession(cfg, log, app.Rand(*seed))
	if err != nil {
		return err
	}
	surface := tty.NewScreen(screen, session.Manifest)

	ctx, cancel := context.WithCancel(context.Background())
	defer func() {
		cancel()
		session.Close()
	}()
	session.Start(ctx)

	clock := game.NewMonotonicClock()
	loop := game.NewLoop(session.World, clock, session.Tracker, cfg.Loop.TargetInterval())
	pump := tty.NewPump(session.Tracker, *hold)

	events := tty.Events(ctx, screen, 64)

	ticker := time.NewTicker(cfg.Loop.TargetInterval() / 2)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				session.LogStats()
				return nil
			}
			if resize, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				w, h := resize.Size()
				session.World.Resize(float64(w*tty.CellWidth), float64(h*tty.CellHeight))
				continue
			}
			if !pump.Handle(ev, clock.Now()) {
				session.LogStats()
				return nil
			}

		case <-ticker.C:
			pump.Expire(clock.Now())
			if loop.Frame(surface) {
				surface.Show()
			}
		}
	}
}
