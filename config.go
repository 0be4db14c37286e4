package mandel

import (
	"errors"
	"flag"
	"fmt"
)

var ErrInvalidSize = errors.New("invalid size")

// Config is the startup configuration shared by all front-ends.
type Config struct {
	Width, Height int
	Xmin, Xmax    float64

	// SnapshotPath is overwritten on every save.
	SnapshotPath string

	// Landmark, when set, names the region shown right after startup.
	Landmark string
}

func DefaultConfig() Config {
	return Config{
		Width:        1280,
		Height:       720,
		Xmin:         -2.5,
		Xmax:         1.0,
		SnapshotPath: "image.jpg",
	}
}

// RegisterFlags binds the config fields to fs, using the current values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "image width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "image height in pixels")
	fs.Float64Var(&c.Xmin, "xmin", c.Xmin, "left edge of the home view")
	fs.Float64Var(&c.Xmax, "xmax", c.Xmax, "right edge of the home view")
	fs.StringVar(&c.SnapshotPath, "snapshot", c.SnapshotPath, "snapshot file path (.jpg)")
	fs.StringVar(&c.Landmark, "landmark", c.Landmark, "start at a named landmark")
}

func (c Config) Validate() error {
	// the pixel-to-plane map divides by width-1 and height-1
	if c.Width < 2 || c.Height < 2 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if !(c.Xmin < c.Xmax) {
		return fmt.Errorf("%w: xmin %g >= xmax %g", ErrInvalidRegion, c.Xmin, c.Xmax)
	}
	if c.Landmark != "" {
		if _, err := Landmark(c.Landmark); err != nil {
			return err
		}
	}
	return nil
}
