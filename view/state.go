// Package view holds the navigation state of a Mandelbrot session and the
// pure transitions between states.
package view

import (
	"fmt"
	"image"
	"math"

	mandel "github.com/marben/mandelzoom"
)

const (
	PrecisionMin  = 64
	PrecisionStep = 64
	PrecisionMax  = 320

	// ZoomFactor is the magnification of one zoom step.
	ZoomFactor = 8
)

// State is a point in a navigation session. The zero value is not usable;
// start from New. Transitions return a new State and leave the receiver
// untouched.
type State struct {
	width, height int

	home   mandel.Region
	region mandel.Region

	zoomLevel int
	maxIter   int
	scheme    mandel.Scheme
}

// New returns the home state for a width x height image whose home view
// spans [xmin, xmax] horizontally.
func New(width, height int, xmin, xmax float64) (State, error) {
	if width < 1 || height < 1 {
		return State{}, fmt.Errorf("%w: %dx%d", mandel.ErrInvalidSize, width, height)
	}
	home := mandel.HomeRegion(width, height, xmin, xmax)
	if err := home.Validate(); err != nil {
		return State{}, err
	}
	return State{
		width:     width,
		height:    height,
		home:      home,
		region:    home,
		zoomLevel: 1,
		maxIter:   PrecisionMin,
		scheme:    mandel.SchemeA,
	}, nil
}

func (s State) Region() mandel.Region { return s.region }
func (s State) Home() mandel.Region   { return s.home }
func (s State) ZoomLevel() int        { return s.zoomLevel }
func (s State) MaxIter() int          { return s.maxIter }
func (s State) Scheme() mandel.Scheme { return s.scheme }

// Size is the pixel size of the image the state is rendered to.
func (s State) Size() image.Point { return image.Pt(s.width, s.height) }

// Magnification is 8^(zoomLevel-1).
func (s State) Magnification() float64 {
	return math.Pow(ZoomFactor, float64(s.zoomLevel-1))
}

// Reset returns to the home view with default precision and scheme.
func (s State) Reset() State {
	s.region = s.home
	s.zoomLevel = 1
	s.maxIter = PrecisionMin
	s.scheme = mandel.SchemeA
	return s
}

func (s State) IncreasePrecision() State {
	s.maxIter = min(PrecisionMax, s.maxIter+PrecisionStep)
	return s
}

func (s State) DecreasePrecision() State {
	s.maxIter = max(PrecisionMin, s.maxIter-PrecisionStep)
	return s
}

// PanUp moves the view a quarter of its height towards Ymin.
func (s State) PanUp() State {
	d := s.region.Dy() / 4
	s.region.Ymin -= d
	s.region.Ymax -= d
	return s
}

func (s State) PanDown() State {
	d := s.region.Dy() / 4
	s.region.Ymin += d
	s.region.Ymax += d
	return s
}

func (s State) PanLeft() State {
	d := s.region.Dx() / 4
	s.region.Xmin -= d
	s.region.Xmax -= d
	return s
}

func (s State) PanRight() State {
	d := s.region.Dx() / 4
	s.region.Xmin += d
	s.region.Xmax += d
	return s
}

// ZoomIn magnifies the center of the view eight times.
func (s State) ZoomIn() State {
	r := s.region
	s.region = mandel.Region{
		Xmin: 0.5625*r.Xmin + 0.4375*r.Xmax,
		Xmax: 0.5625*r.Xmax + 0.4375*r.Xmin,
		Ymin: 0.5625*r.Ymin + 0.4375*r.Ymax,
		Ymax: 0.5625*r.Ymax + 0.4375*r.Ymin,
	}
	s.zoomLevel++
	return s.IncreasePrecision()
}

// ZoomOut undoes one centered zoom step. It reports false and returns s
// unchanged at zoom level 1.
func (s State) ZoomOut() (State, bool) {
	if s.zoomLevel <= 1 {
		return s, false
	}
	r := s.region
	s.region = mandel.Region{
		Xmin: 4.5*r.Xmin - 3.5*r.Xmax,
		Xmax: 4.5*r.Xmax - 3.5*r.Xmin,
		Ymin: 4.5*r.Ymin - 3.5*r.Ymax,
		Ymax: 4.5*r.Ymax - 3.5*r.Ymin,
	}
	s.zoomLevel--
	return s.DecreasePrecision(), true
}

// ZoomToRect adopts the part of the view under sel, given in pixels of a
// screenW x screenH screen, as the new view.
func (s State) ZoomToRect(sel image.Rectangle, screenW, screenH int) State {
	r := s.region
	w, h := float64(screenW), float64(screenH)
	s.region = mandel.Region{
		Xmin: float64(sel.Min.X)/w*r.Dx() + r.Xmin,
		Xmax: float64(sel.Max.X)/w*r.Dx() + r.Xmin,
		Ymin: float64(sel.Min.Y)/h*r.Dy() + r.Ymin,
		Ymax: float64(sel.Max.Y)/h*r.Dy() + r.Ymin,
	}
	s.zoomLevel++
	return s.IncreasePrecision()
}

// Selection is the zoom box centered on pointer, one eighth of the image
// in each direction and at least one pixel. Odd box sizes put the extra
// pixel right of and below the pointer.
func (s State) Selection(pointer image.Point) image.Rectangle {
	w, h := max(s.width/ZoomFactor, 1), max(s.height/ZoomFactor, 1)
	origin := pointer.Sub(image.Pt(w/2, h/2))
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(w, h))}
}

func (s State) CycleScheme() State {
	s.scheme = s.scheme.Next()
	return s
}

// GoTo shows region r with the zoom level and precision a sequence of
// centered zooms from home would have reached.
func (s State) GoTo(r mandel.Region) State {
	level := 1
	if ratio := s.home.Dx() / r.Dx(); ratio > 1 {
		level += int(math.Round(math.Log(ratio) / math.Log(ZoomFactor)))
	}
	s.region = r
	s.zoomLevel = level
	s.maxIter = min(PrecisionMax, max(PrecisionMin, PrecisionStep*level))
	return s
}
