// cliclient is a CLI client for the Mandelbrot server.
// It connects over websocket, replays navigation commands given as arguments, and saves the final frame as a PNG file.

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/coder/websocket"
)

// main is the entry point for the CLI client.
// It runs the client logic and logs any fatal errors.
func main() {
	log.Printf("Starting CLI client...")
	if err := run(); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

// run connects to the Mandelbrot server, sends the requested commands, and saves the last frame.
// Returns an error if any step fails.
func run() error {
	addr := flag.String("addr", "ws://localhost:8080/ws", "server websocket url")
	out := flag.String("out", "mandel.png", "output PNG file")
	timeout := flag.Duration("timeout", time.Minute, "overall timeout")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] command...\n\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "commands: pan-up pan-down pan-left pan-right zoom-in zoom-out")
		fmt.Fprintln(flag.CommandLine.Output(), "          zoom-rect@X,Y precision-up precision-down color reset save goto@LANDMARK")
		fmt.Fprintln(flag.CommandLine.Output())
		flag.PrintDefaults()
	}
	flag.Parse()

	reqs, err := parseRequests(flag.Args())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	// Step 1: Connect to Mandelbrot server
	log.Printf("Connecting to Mandelbrot server at %s...", *addr)
	conn, _, err := websocket.Dial(ctx, *addr, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	defer conn.CloseNow()
	conn.SetReadLimit(maxFrameSize)

	// Step 2: The server sends the starting frame unasked
	st, frame, err := readFrame(ctx, conn)
	if err != nil {
		return fmt.Errorf("initial frame: %w", err)
	}
	log.Printf("%s, %s", st.Zoom, st.Iterations)

	// Step 3: Replay the commands, one frame per command
	for _, req := range reqs {
		st, frame, err = roundTrip(ctx, conn, req)
		if err != nil {
			return fmt.Errorf("%s: %w", req.Cmd, err)
		}
		if st.Error != "" {
			return fmt.Errorf("%s: server: %s", req.Cmd, st.Error)
		}
		log.Printf("%s -> %s, %s", req.Cmd, st.Zoom, st.Iterations)
	}

	// Step 4: Save the last frame to a PNG file
	log.Printf("Saving frame to %q...", *out)
	if err := os.WriteFile(*out, frame, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	if err := closeSession(ctx, conn); err != nil {
		return err
	}
	log.Printf("Frame saved to %q", *out)
	return nil
}
