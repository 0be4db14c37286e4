package nav

import (
	mandel "github.com/marben/mandelzoom"
	"github.com/marben/mandelzoom/render"
)

// Option configures a Controller.
type Option func(*options)

type options struct {
	renderer     mandel.Renderer
	snapshotPath string
	fontSize     float64
}

func defaultOptions() options {
	return options{
		renderer:     render.RendererImpl{},
		snapshotPath: "image.jpg",
		fontSize:     24,
	}
}

// WithRenderer replaces the CPU rasterizer.
func WithRenderer(r mandel.Renderer) Option {
	return func(o *options) {
		o.renderer = r
	}
}

// WithSnapshotPath sets the file CmdSave overwrites. A ".png" extension
// writes PNG, anything else JPEG.
func WithSnapshotPath(path string) Option {
	return func(o *options) {
		o.snapshotPath = path
	}
}

// WithFontSize sets the label size in points. Zero hides the labels.
func WithFontSize(points float64) Option {
	return func(o *options) {
		o.fontSize = points
	}
}
