package nav

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	mandel "github.com/marben/mandelzoom"
	"github.com/marben/mandelzoom/render"
	"github.com/marben/mandelzoom/view"
)

// countingRenderer records how often the controller re-rasterizes.
type countingRenderer struct {
	calls int
}

func (r *countingRenderer) Render(reg mandel.Region, w, h, maxIter int, scheme mandel.Scheme) *image.RGBA {
	r.calls++
	return render.Rasterize(reg, w, h, maxIter, scheme)
}

func newController(t *testing.T, opts ...Option) (*Controller, *countingRenderer) {
	t.Helper()
	s, err := view.New(64, 48, -2.5, 1.0)
	if err != nil {
		t.Fatalf("view.New: %v", err)
	}
	r := &countingRenderer{}
	opts = append([]Option{WithRenderer(r), WithFontSize(0)}, opts...)
	c, err := New(s, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, r
}

func TestNew_RendersHome(t *testing.T) {
	c, r := newController(t)
	if r.calls != 1 {
		t.Errorf("renders = %d, want 1", r.calls)
	}
	if got := c.Raster().Bounds(); got != image.Rect(0, 0, 64, 48) {
		t.Errorf("Raster bounds = %v", got)
	}
	if c.Pointer() != image.Pt(32, 24) {
		t.Errorf("Pointer() = %v", c.Pointer())
	}
}

func TestHandle_Transitions(t *testing.T) {
	tests := []struct {
		name        string
		events      []Event
		wantRenders int
		check       func(t *testing.T, s view.State)
	}{
		{
			name:        "pan up",
			events:      []Event{{Cmd: CmdPanUp}},
			wantRenders: 2,
			check: func(t *testing.T, s view.State) {
				if s.Region() == s.Home() {
					t.Error("region unchanged")
				}
			},
		},
		{
			name:        "zoom in then out",
			events:      []Event{{Cmd: CmdZoomIn}, {Cmd: CmdZoomOut}},
			wantRenders: 3,
			check: func(t *testing.T, s view.State) {
				if s.ZoomLevel() != 1 || s.MaxIter() != 64 {
					t.Errorf("zoom %d maxIter %d", s.ZoomLevel(), s.MaxIter())
				}
			},
		},
		{
			name:        "zoom out at home is ignored",
			events:      []Event{{Cmd: CmdZoomOut}, {Cmd: CmdZoomOut}},
			wantRenders: 1,
		},
		{
			name:        "pointer only moves the overlay",
			events:      []Event{{Cmd: CmdPointer, Pointer: image.Pt(3, 4)}, {Cmd: CmdNone}},
			wantRenders: 1,
		},
		{
			name:        "precision clamps without re-rendering",
			events:      []Event{{Cmd: CmdDecreasePrecision}},
			wantRenders: 1,
		},
		{
			name: "precision up to the cap",
			events: []Event{
				{Cmd: CmdIncreasePrecision}, {Cmd: CmdIncreasePrecision}, {Cmd: CmdIncreasePrecision},
				{Cmd: CmdIncreasePrecision}, {Cmd: CmdIncreasePrecision}, {Cmd: CmdIncreasePrecision},
			},
			wantRenders: 5,
			check: func(t *testing.T, s view.State) {
				if s.MaxIter() != view.PrecisionMax {
					t.Errorf("MaxIter() = %d", s.MaxIter())
				}
			},
		},
		{
			name:        "color",
			events:      []Event{{Cmd: CmdCycleColor}},
			wantRenders: 2,
			check: func(t *testing.T, s view.State) {
				if s.Scheme() != mandel.SchemeB {
					t.Errorf("Scheme() = %s", s.Scheme())
				}
			},
		},
		{
			name:        "zoom to rect",
			events:      []Event{{Cmd: CmdZoomToRect, Pointer: image.Pt(10, 10)}},
			wantRenders: 2,
			check: func(t *testing.T, s view.State) {
				if s.ZoomLevel() != 2 || s.MaxIter() != 128 {
					t.Errorf("zoom %d maxIter %d", s.ZoomLevel(), s.MaxIter())
				}
			},
		},
		{
			name:        "reset",
			events:      []Event{{Cmd: CmdZoomIn}, {Cmd: CmdPanLeft}, {Cmd: CmdCycleColor}, {Cmd: CmdReset}},
			wantRenders: 5,
			check: func(t *testing.T, s view.State) {
				if s != s.Reset() {
					t.Errorf("state after reset = %+v", s)
				}
			},
		},
		{
			name:        "goto",
			events:      []Event{{Cmd: CmdGoto, Landmark: "seahorse"}},
			wantRenders: 2,
			check: func(t *testing.T, s view.State) {
				if s.Region() != mandel.SeahorseValley {
					t.Errorf("Region() = %v", s.Region())
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, r := newController(t)
			for _, ev := range tt.events {
				if err := c.Handle(ev); err != nil {
					t.Fatalf("Handle(%v): %v", ev.Cmd, err)
				}
			}
			if r.calls != tt.wantRenders {
				t.Errorf("renders = %d, want %d", r.calls, tt.wantRenders)
			}
			if tt.check != nil {
				tt.check(t, c.State())
			}
		})
	}
}

func TestHandle_RasterMatchesState(t *testing.T) {
	c, _ := newController(t)
	for _, cmd := range []Command{CmdZoomIn, CmdPanRight, CmdCycleColor, CmdIncreasePrecision} {
		if err := c.Handle(Event{Cmd: cmd}); err != nil {
			t.Fatalf("Handle(%v): %v", cmd, err)
		}
	}

	s := c.State()
	want := render.Rasterize(s.Region(), 64, 48, s.MaxIter(), s.Scheme())
	if !bytes.Equal(c.Raster().Pix, want.Pix) {
		t.Error("raster does not match the current state")
	}
}

func TestHandle_Errors(t *testing.T) {
	c, r := newController(t)

	if err := c.Handle(Event{Cmd: CmdGoto, Landmark: "narnia"}); !errors.Is(err, mandel.ErrUnknownLandmark) {
		t.Errorf("goto error = %v", err)
	}
	if err := c.Handle(Event{Cmd: Command(99)}); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("unknown command error = %v", err)
	}
	if r.calls != 1 {
		t.Errorf("renders = %d after failed events", r.calls)
	}
}

func TestHandle_Close(t *testing.T) {
	c, _ := newController(t)
	if err := c.Handle(Event{Cmd: CmdClose}); !errors.Is(err, ErrClosed) {
		t.Fatalf("close error = %v", err)
	}
	if !c.Closed() {
		t.Error("Closed() = false")
	}
	if err := c.Handle(Event{Cmd: CmdZoomIn}); !errors.Is(err, ErrClosed) {
		t.Errorf("Handle after close = %v", err)
	}
}

func TestHandle_Save(t *testing.T) {
	dir := t.TempDir()

	t.Run("jpeg", func(t *testing.T) {
		path := filepath.Join(dir, "image.jpg")
		if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
			t.Fatal(err)
		}
		c, _ := newController(t, WithSnapshotPath(path))
		if err := c.Handle(Event{Cmd: CmdSave}); err != nil {
			t.Fatalf("save: %v", err)
		}

		f, err := os.Open(path)
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()
		cfg, err := jpeg.DecodeConfig(f)
		if err != nil {
			t.Fatalf("DecodeConfig: %v", err)
		}
		if cfg.Width != 64 || cfg.Height != 48 {
			t.Errorf("snapshot %dx%d", cfg.Width, cfg.Height)
		}
	})

	t.Run("png keeps exact pixels", func(t *testing.T) {
		path := filepath.Join(dir, "shot.png")
		c, _ := newController(t, WithSnapshotPath(path))
		if err := c.Handle(Event{Cmd: CmdSave}); err != nil {
			t.Fatalf("save: %v", err)
		}

		f, err := os.Open(path)
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()
		img, err := png.Decode(f)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		raster := c.Raster()
		for _, p := range []image.Point{{0, 0}, {63, 47}, {32, 24}, {10, 40}} {
			r1, g1, b1, _ := img.At(p.X, p.Y).RGBA()
			r2, g2, b2, _ := raster.At(p.X, p.Y).RGBA()
			if r1>>8 != r2>>8 || g1>>8 != g2>>8 || b1>>8 != b2>>8 {
				t.Errorf("pixel %v = %v, raster %v", p, img.At(p.X, p.Y), raster.At(p.X, p.Y))
			}
		}
	})

	t.Run("unwritable path", func(t *testing.T) {
		c, _ := newController(t, WithSnapshotPath(filepath.Join(dir, "missing", "x.jpg")))
		if err := c.Handle(Event{Cmd: CmdSave}); err == nil {
			t.Error("save into a missing directory succeeded")
		}
	})
}

func TestLabels(t *testing.T) {
	c, _ := newController(t)
	for range 3 {
		if err := c.Handle(Event{Cmd: CmdZoomIn}); err != nil {
			t.Fatal(err)
		}
	}
	zoom, iters := c.Labels()
	if zoom != "Zoom: 512" {
		t.Errorf("zoom label = %q", zoom)
	}
	if iters != "Max. Iterations: 256" {
		t.Errorf("iterations label = %q", iters)
	}

	for range 5 {
		if err := c.Handle(Event{Cmd: CmdZoomIn}); err != nil {
			t.Fatal(err)
		}
	}
	if zoom, _ := c.Labels(); zoom != "Zoom: 1.67772e+07" {
		t.Errorf("zoom label = %q", zoom)
	}
}

func TestFrame(t *testing.T) {
	c, _ := newController(t, WithFontSize(12))
	before := bytes.Clone(c.Raster().Pix)

	frame, err := c.Frame()
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if frame.Bounds() != c.Raster().Bounds() {
		t.Fatalf("Frame bounds = %v", frame.Bounds())
	}
	if !bytes.Equal(before, c.Raster().Pix) {
		t.Error("Frame modified the raster")
	}
	if bytes.Equal(frame.Pix, c.Raster().Pix) {
		t.Error("Frame has no overlay")
	}

	var buf bytes.Buffer
	if err := c.EncodeFrame(&buf); err != nil {
		t.Fatalf("EncodeFrame: %v", err)
	}
	cfg, err := png.DecodeConfig(&buf)
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if cfg.Width != 64 || cfg.Height != 48 {
		t.Errorf("encoded frame %dx%d", cfg.Width, cfg.Height)
	}
}

func TestGetImage(t *testing.T) {
	c, _ := newController(t)
	img, err := c.GetImage()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(img.Pix, c.Raster().Pix) {
		t.Error("GetImage differs from Raster")
	}

	want := c.Raster().Pix[0]
	img.Pix[0] = ^want
	if got := c.Raster().Pix[0]; got != want {
		t.Errorf("writing to GetImage changed the raster: %d, want %d", got, want)
	}
}
