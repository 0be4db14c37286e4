package nav

import (
	"image"

	mandel "github.com/marben/mandelzoom"
)

// Request is the JSON message a remote front-end sends for one event.
type Request struct {
	Cmd      Command `json:"cmd"`
	X        int     `json:"x"`
	Y        int     `json:"y"`
	Landmark string  `json:"landmark,omitempty"`
}

func (r Request) Event() Event {
	return Event{Cmd: r.Cmd, Pointer: image.Pt(r.X, r.Y), Landmark: r.Landmark}
}

// Status describes the frame that follows it on the wire.
type Status struct {
	Zoom       string        `json:"zoom"`
	Iterations string        `json:"iterations"`
	ZoomLevel  int           `json:"zoomLevel"`
	MaxIter    int           `json:"maxIter"`
	Scheme     string        `json:"scheme"`
	Region     mandel.Region `json:"region"`
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	Landmarks  []string      `json:"landmarks,omitempty"`
	Error      string        `json:"error,omitempty"`
}

// Status reports the current state. A non-nil err is passed on as text.
func (c *Controller) Status(err error) Status {
	s := c.state
	size := s.Size()
	zoom, iters := c.Labels()
	st := Status{
		Zoom:       zoom,
		Iterations: iters,
		ZoomLevel:  s.ZoomLevel(),
		MaxIter:    s.MaxIter(),
		Scheme:     s.Scheme().String(),
		Region:     s.Region(),
		Width:      size.X,
		Height:     size.Y,
		Landmarks:  mandel.LandmarkNames(),
	}
	if err != nil {
		st.Error = err.Error()
	}
	return st
}
