package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	mandel "github.com/marben/mandelzoom"
	"github.com/marben/mandelzoom/nav"
	"github.com/marben/mandelzoom/view"
)

// serveSession runs one navigation session over conn. Requests are handled
// one at a time; each is answered with a status message and a PNG frame.
func serveSession(ctx context.Context, conn *websocket.Conn, cfg mandel.Config) error {
	defer conn.CloseNow()

	// requests are small JSON objects
	conn.SetReadLimit(4 << 10)

	state, err := view.New(cfg.Width, cfg.Height, cfg.Xmin, cfg.Xmax)
	if err != nil {
		return fmt.Errorf("view.New: %w", err)
	}
	ctrl, err := nav.New(state, nav.WithSnapshotPath(cfg.SnapshotPath))
	if err != nil {
		return fmt.Errorf("nav.New: %w", err)
	}
	if cfg.Landmark != "" {
		if err := ctrl.Handle(nav.Event{Cmd: nav.CmdGoto, Landmark: cfg.Landmark}); err != nil {
			return err
		}
	}

	if err := sendFrame(ctx, conn, ctrl, nil); err != nil {
		return err
	}

	for {
		var req nav.Request
		if err := wsjson.Read(ctx, conn, &req); err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				return nil
			}
			return fmt.Errorf("read request: %w", err)
		}

		err := ctrl.Handle(req.Event())
		if errors.Is(err, nav.ErrClosed) {
			return conn.Close(websocket.StatusNormalClosure, "closed")
		}
		if err != nil {
			log.Printf("session: %s: %v", req.Cmd, err)
		}

		if err := sendFrame(ctx, conn, ctrl, err); err != nil {
			return err
		}
	}
}

func sendFrame(ctx context.Context, conn *websocket.Conn, ctrl *nav.Controller, handleErr error) error {
	if err := wsjson.Write(ctx, conn, ctrl.Status(handleErr)); err != nil {
		return fmt.Errorf("write status: %w", err)
	}

	w, err := conn.Writer(ctx, websocket.MessageBinary)
	if err != nil {
		return fmt.Errorf("frame writer: %w", err)
	}
	if err := ctrl.EncodeFrame(w); err != nil {
		w.Close()
		return fmt.Errorf("encode frame: %w", err)
	}
	return w.Close()
}
