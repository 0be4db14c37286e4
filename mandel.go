package mandel

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	ErrInvalidRegion   = errors.New("invalid region")
	ErrUnknownLandmark = errors.New("unknown landmark")
)

// Region within the Mandelbrot set
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// HomeRegion returns the region spanning [xmin, xmax] horizontally with the
// vertical range symmetric about the real axis and proportioned to w/h.
func HomeRegion(w, h int, xmin, xmax float64) Region {
	y := (xmax - xmin) * float64(h) / float64(w)
	return Region{
		Xmin: xmin,
		Xmax: xmax,
		Ymin: -y / 2,
		Ymax: y / 2,
	}
}

func (r Region) Dx() float64 { return r.Xmax - r.Xmin }
func (r Region) Dy() float64 { return r.Ymax - r.Ymin }

// Validate reports whether both axes are non-empty and finite.
func (r Region) Validate() error {
	if !(r.Xmin < r.Xmax) || !(r.Ymin < r.Ymax) {
		return fmt.Errorf("%w: %s", ErrInvalidRegion, r)
	}
	if math.IsInf(r.Xmin, 0) || math.IsInf(r.Xmax, 0) || math.IsInf(r.Ymin, 0) || math.IsInf(r.Ymax, 0) {
		return fmt.Errorf("%w: infinite bound in %s", ErrInvalidRegion, r)
	}
	return nil
}

func (r Region) String() string {
	return fmt.Sprintf("x[%g, %g] y[%g, %g]", r.Xmin, r.Xmax, r.Ymin, r.Ymax)
}

// Classic regions / landmarks in the Mandelbrot set
var (
	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Region{
		Xmin: -0.8,
		Xmax: -0.7,
		Ymin: 0.05,
		Ymax: 0.15,
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Region{
		Xmin: -1.85,
		Xmax: -1.75,
		Ymin: -0.10,
		Ymax: -0.02,
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Region{
		Xmin: -0.7435,
		Xmax: -0.7420,
		Ymin: 0.1310,
		Ymax: 0.1325,
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Region{
		Xmin: -0.7480,
		Xmax: -0.7450,
		Ymin: 0.0950,
		Ymax: 0.0980,
	}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Region{
		Xmin: -0.7400,
		Xmax: -0.7350,
		Ymin: 0.1800,
		Ymax: 0.1850,
	}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Region{
		Xmin: -1.7390,
		Xmax: -1.7375,
		Ymin: -0.0235,
		Ymax: -0.0220,
	}
)

var landmarks = map[string]Region{
	"seahorse":      SeahorseValley,
	"elephant":      ElephantValley,
	"spiral":        SpiralMinibrot,
	"triple-spiral": TripleSpiral,
	"dragon":        ValleyOfTheDragon,
	"mini-spiral":   MinibrotInMiniSpiral,
}

// Landmark looks up a classic region by its short name.
func Landmark(name string) (Region, error) {
	r, ok := landmarks[name]
	if !ok {
		return Region{}, fmt.Errorf("%w: %q", ErrUnknownLandmark, name)
	}
	return r, nil
}

// LandmarkNames returns the known landmark names in sorted order.
func LandmarkNames() []string {
	names := make([]string, 0, len(landmarks))
	for n := range landmarks {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
