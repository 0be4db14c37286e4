// mandelzoom is the desktop Mandelbrot explorer.
// It opens a window showing the current view and maps mouse and keyboard input to navigation commands.

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
	mandel "github.com/marben/mandelzoom"
	"github.com/marben/mandelzoom/nav"
	"github.com/marben/mandelzoom/view"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	cfg := mandel.DefaultConfig()
	verbose := flag.Bool("v", false, "log every navigation step")
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	nav.SetLogger(logger)
	gg.SetLogger(logger)

	state, err := view.New(cfg.Width, cfg.Height, cfg.Xmin, cfg.Xmax)
	if err != nil {
		return err
	}
	ctrl, err := nav.New(state, nav.WithSnapshotPath(cfg.SnapshotPath))
	if err != nil {
		return err
	}
	if cfg.Landmark != "" {
		if err := ctrl.Handle(nav.Event{Cmd: nav.CmdGoto, Landmark: cfg.Landmark}); err != nil {
			return err
		}
	}

	fmt.Print(nav.Help)

	g := NewGame(ctrl)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Mandelbrot")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
