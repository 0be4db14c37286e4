// Package nav turns navigation commands into view transitions and keeps the
// frame for the current view rendered.
package nav

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"slices"
	"strconv"

	"github.com/gogpu/gg/text"
	mandel "github.com/marben/mandelzoom"
	"github.com/marben/mandelzoom/view"
)

// Controller owns one navigation session. It is not safe for concurrent use;
// events are handled one at a time, each to completion.
type Controller struct {
	state    view.State
	renderer mandel.Renderer
	raster   *image.RGBA
	pointer  image.Point

	face         text.Face
	snapshotPath string
	closed       bool
}

// New renders state and returns a controller showing it.
func New(state view.State, opts ...Option) (*Controller, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Controller{
		state:        state,
		renderer:     o.renderer,
		snapshotPath: o.snapshotPath,
	}
	if o.fontSize > 0 {
		face, err := labelFace(o.fontSize)
		if err != nil {
			return nil, fmt.Errorf("label font: %w", err)
		}
		c.face = face
	}

	size := state.Size()
	c.pointer = image.Pt(size.X/2, size.Y/2)
	c.render()
	return c, nil
}

// Handle applies ev and re-renders when the view changed. After CmdClose
// every call returns ErrClosed.
func (c *Controller) Handle(ev Event) error {
	if c.closed {
		return ErrClosed
	}

	prev := c.state
	log := logger()

	switch ev.Cmd {
	case CmdNone:
	case CmdPointer:
		c.pointer = ev.Pointer
	case CmdPanUp:
		c.state = c.state.PanUp()
		log.Info("shifting plot upwards")
	case CmdPanDown:
		c.state = c.state.PanDown()
		log.Info("shifting plot downwards")
	case CmdPanLeft:
		c.state = c.state.PanLeft()
		log.Info("shifting plot leftwards")
	case CmdPanRight:
		c.state = c.state.PanRight()
		log.Info("shifting plot rightwards")
	case CmdZoomIn:
		c.state = c.state.ZoomIn()
		log.Info("zooming into centre of screen")
	case CmdZoomOut:
		next, ok := c.state.ZoomOut()
		if !ok {
			log.Debug("zoom out rejected at home zoom level")
			return nil
		}
		c.state = next
		log.Info("zoom out of centre of screen")
	case CmdZoomToRect:
		c.pointer = ev.Pointer
		size := c.state.Size()
		c.state = c.state.ZoomToRect(c.state.Selection(ev.Pointer), size.X, size.Y)
		log.Info("zoom into bounding box", "pointer", ev.Pointer)
	case CmdIncreasePrecision:
		c.state = c.state.IncreasePrecision()
		log.Info("increase precision", "maxIter", c.state.MaxIter())
	case CmdDecreasePrecision:
		c.state = c.state.DecreasePrecision()
		log.Info("decrease precision", "maxIter", c.state.MaxIter())
	case CmdCycleColor:
		c.state = c.state.CycleScheme()
		log.Info("changing colour", "scheme", c.state.Scheme())
	case CmdReset:
		c.state = c.state.Reset()
		log.Info("reverting to original state")
	case CmdGoto:
		r, err := mandel.Landmark(ev.Landmark)
		if err != nil {
			return err
		}
		c.state = c.state.GoTo(r)
		log.Info("going to landmark", "name", ev.Landmark)
	case CmdSave:
		if err := writeSnapshot(c.snapshotPath, c.raster); err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}
		log.Info("saved screenshot", "path", c.snapshotPath)
	case CmdClose:
		c.closed = true
		return ErrClosed
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, ev.Cmd)
	}

	if c.state != prev {
		c.render()
	}
	return nil
}

func (c *Controller) render() {
	s := c.state
	size := s.Size()
	c.raster = c.renderer.Render(s.Region(), size.X, size.Y, s.MaxIter(), s.Scheme())
	logger().Debug("rendered",
		slog.String("region", s.Region().String()),
		slog.Int("zoom", s.ZoomLevel()),
		slog.Int("maxIter", s.MaxIter()))
}

func (c *Controller) State() view.State    { return c.state }
func (c *Controller) Pointer() image.Point { return c.pointer }
func (c *Controller) Closed() bool         { return c.closed }

// Raster is the last rendered pixel buffer, without labels or selection.
// Callers must not modify it.
func (c *Controller) Raster() *image.RGBA { return c.raster }

// GetImage implements mandel.ImgProvider. The returned image does not share
// pixels with the controller.
func (c *Controller) GetImage() (image.RGBA, error) {
	img := *c.raster
	img.Pix = slices.Clone(c.raster.Pix)
	return img, nil
}

// Labels returns the zoom and iteration label texts for the current state.
func (c *Controller) Labels() (zoom, iterations string) {
	return zoomLabel(c.state), iterationsLabel(c.state)
}

func zoomLabel(s view.State) string {
	return "Zoom: " + strconv.FormatFloat(s.Magnification(), 'g', 6, 64)
}

func iterationsLabel(s view.State) string {
	return "Max. Iterations: " + strconv.Itoa(s.MaxIter())
}

// Frame returns a copy of the raster with labels and the selection box
// drawn over it.
func (c *Controller) Frame() (*image.RGBA, error) {
	dc, err := c.compose()
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	return toRGBA(dc.Image()), nil
}

// EncodeFrame writes Frame as PNG.
func (c *Controller) EncodeFrame(w io.Writer) error {
	dc, err := c.compose()
	if err != nil {
		return err
	}
	defer dc.Close()
	return dc.EncodePNG(w)
}

var _ mandel.ImgProvider = (*Controller)(nil)
