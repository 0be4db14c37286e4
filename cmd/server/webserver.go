package main

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/coder/websocket"
)

//go:embed static
var staticFiles embed.FS

// webServer creates server serving the embedded page in ./static
// initializes websocket endpoint and returns listener accepting websocket connections
func webServer(ctx context.Context, addr string) (*WebsocketListener, *http.Server) {
	l := NewWSListener(ctx)
	srv := &http.Server{
		Addr:              addr,
		Handler:           newMux(l),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://%s", displayAddr(addr))
	return l, srv
}

func newMux(l *WebsocketListener) *http.ServeMux {
	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler(l))
	mux.Handle("/", http.FileServerFS(static))
	return mux
}

// websocketHandler handles the http ws endpoint
// if websocket is succesfully initialized it is passed to WebsocketListener so it can be accepted
func websocketHandler(l *WebsocketListener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, nil)
		if err != nil {
			log.Println(err)
			return
		}

		select {
		case l.ch <- c:
		case <-l.ctx.Done():
			c.Close(websocket.StatusGoingAway, "server shutting down")
		}
	}
}

// WebsocketListener hands out accepted websocket connections, one per session.
type WebsocketListener struct {
	ch     chan *websocket.Conn
	ctx    context.Context
	cancel context.CancelFunc
}

func NewWSListener(ctx context.Context) *WebsocketListener {
	ctx, cancel := context.WithCancel(ctx)
	return &WebsocketListener{
		ch:     make(chan *websocket.Conn),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Accept blocks until a client connects or the listener is closed.
func (l *WebsocketListener) Accept() (*websocket.Conn, error) {
	select {
	case c := <-l.ch:
		return c, nil
	case <-l.ctx.Done():
		if err := context.Cause(l.ctx); !errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, net.ErrClosed
	}
}

func (l *WebsocketListener) Close() error {
	l.cancel()
	return nil
}

func displayAddr(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil || host != "" {
		return addr
	}
	return net.JoinHostPort("localhost", port)
}
