package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/marben/mandelzoom/nav"
)

// maxFrameSize bounds one PNG frame; a 4K frame of noise stays below it.
const maxFrameSize = 64 << 20

// parseRequests turns arguments like "zoom-in", "zoom-rect@640,360" or
// "goto@seahorse" into requests.
func parseRequests(args []string) ([]nav.Request, error) {
	reqs := make([]nav.Request, 0, len(args))
	for _, arg := range args {
		name, param, _ := strings.Cut(arg, "@")
		cmd, err := nav.ParseCommand(name)
		if err != nil {
			return nil, err
		}

		req := nav.Request{Cmd: cmd}
		switch cmd {
		case nav.CmdZoomToRect, nav.CmdPointer:
			x, y, ok := strings.Cut(param, ",")
			if !ok {
				return nil, fmt.Errorf("%s needs @X,Y: %q", cmd, arg)
			}
			if req.X, err = strconv.Atoi(x); err != nil {
				return nil, fmt.Errorf("%q: x: %w", arg, err)
			}
			if req.Y, err = strconv.Atoi(y); err != nil {
				return nil, fmt.Errorf("%q: y: %w", arg, err)
			}
		case nav.CmdGoto:
			if param == "" {
				return nil, fmt.Errorf("goto needs @LANDMARK: %q", arg)
			}
			req.Landmark = param
		case nav.CmdClose, nav.CmdNone:
			return nil, fmt.Errorf("%s cannot be sent from the command line", cmd)
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

// roundTrip sends req and waits for the answering frame.
func roundTrip(ctx context.Context, conn *websocket.Conn, req nav.Request) (nav.Status, []byte, error) {
	if err := wsjson.Write(ctx, conn, req); err != nil {
		return nav.Status{}, nil, fmt.Errorf("send: %w", err)
	}
	return readFrame(ctx, conn)
}

// readFrame reads one status message and the PNG frame following it.
func readFrame(ctx context.Context, conn *websocket.Conn) (nav.Status, []byte, error) {
	var st nav.Status
	if err := wsjson.Read(ctx, conn, &st); err != nil {
		return st, nil, fmt.Errorf("read status: %w", err)
	}

	typ, r, err := conn.Reader(ctx)
	if err != nil {
		return st, nil, fmt.Errorf("read frame: %w", err)
	}
	if typ != websocket.MessageBinary {
		return st, nil, fmt.Errorf("frame: unexpected %s message", typ)
	}
	frame, err := io.ReadAll(r)
	if err != nil {
		return st, nil, fmt.Errorf("read frame: %w", err)
	}
	return st, frame, nil
}

// closeSession asks the server to end the session and waits for its close frame.
func closeSession(ctx context.Context, conn *websocket.Conn) error {
	if err := wsjson.Write(ctx, conn, nav.Request{Cmd: nav.CmdClose}); err != nil {
		return fmt.Errorf("send close: %w", err)
	}
	_, _, err := conn.Read(ctx)
	var ce websocket.CloseError
	if errors.As(err, &ce) && ce.Code == websocket.StatusNormalClosure {
		return nil
	}
	return fmt.Errorf("close: %w", err)
}
