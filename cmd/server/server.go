package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gogpu/gg"
	mandel "github.com/marben/mandelzoom"
	"github.com/marben/mandelzoom/nav"
)

// main is the entry point for the Mandelbrot server.
// Every browser or CLI client gets its own navigation session; frames are rendered here.
func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	cfg := mandel.DefaultConfig()
	addr := flag.String("addr", ":8080", "http listen address")
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	websocketListener, httpServer := webServer(ctx, *addr)

	// httpServer provides index.html along with websocket endpoint
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("httpServer: %v", err)
		}
	}()

	go acceptSessions(ctx, websocketListener, cfg)

	log.Printf("mandelbrot server waiting for websocket connections (%dx%d)", cfg.Width, cfg.Height)
	<-ctx.Done()

	log.Println("shutting down")
	websocketListener.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// acceptSessions serves every accepted connection in its own goroutine until l is closed.
func acceptSessions(ctx context.Context, l *WebsocketListener, cfg mandel.Config) {
	for {
		conn, err := l.Accept()
		if err != nil {
			if !errors.Is(err, net.ErrClosed) {
				log.Printf("accept: %v", err)
			}
			return
		}

		go func() {
			log.Printf("session started")
			if err := serveSession(ctx, conn, cfg); err != nil {
				log.Printf("session: %v", err)
				return
			}
			log.Printf("session finished")
		}()
	}
}
