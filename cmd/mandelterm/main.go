// mandelterm explores the Mandelbrot set inside a true-colour terminal.
// Every cell shows two vertically stacked pixels using the upper half block.

package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg"
	mandel "github.com/marben/mandelzoom"
	"github.com/marben/mandelzoom/nav"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	cfg := mandel.DefaultConfig()
	logFile := flag.String("log", "", "append navigation log to this file")
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	// -width and -height are accepted but the terminal size wins
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("log file: %w", err)
		}
		defer f.Close()
		logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelInfo}))
		nav.SetLogger(logger)
		gg.SetLogger(logger)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	t, err := newTerm(screen, cfg)
	if err != nil {
		return err
	}
	return t.loop()
}
