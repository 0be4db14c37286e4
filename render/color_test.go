package render

import (
	"image/color"
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	mandel "github.com/marben/mandelzoom"
)

func TestHSV_OutOfRangeIsBlack(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v float64
	}{
		{name: "hue above", h: 360.5, s: 100, v: 100},
		{name: "hue below", h: -1, s: 100, v: 100},
		{name: "saturation above", h: 10, s: 101, v: 100},
		{name: "saturation below", h: 10, s: -0.1, v: 100},
		{name: "value above", h: 10, s: 100, v: 100.1},
		{name: "value below", h: 10, s: 100, v: -5},
		{name: "hue NaN", h: math.NaN(), s: 100, v: 100},
		{name: "saturation NaN", h: 10, s: math.NaN(), v: 100},
		{name: "value NaN", h: 10, s: 100, v: math.NaN()},
		{name: "hue infinite", h: math.Inf(1), s: 100, v: 100},
	}

	for _, tt := range tests {
		for _, scheme := range []mandel.Scheme{mandel.SchemeA, mandel.SchemeB} {
			t.Run(tt.name+"/"+scheme.String(), func(t *testing.T) {
				if got := HSV(tt.h, tt.s, tt.v, scheme); got != black {
					t.Errorf("HSV(%g, %g, %g) = %v, want black", tt.h, tt.s, tt.v, got)
				}
			})
		}
	}
}

func TestHSV_KnownColors(t *testing.T) {
	tests := []struct {
		name   string
		h      float64
		scheme mandel.Scheme
		want   color.RGBA
	}{
		{name: "A hue 0 rotates to green", h: 0, scheme: mandel.SchemeA, want: color.RGBA{0, 255, 0, 255}},
		{name: "B hue 0 rotates to red", h: 0, scheme: mandel.SchemeB, want: color.RGBA{255, 0, 0, 255}},
		{name: "A hue 60", h: 60, scheme: mandel.SchemeA, want: color.RGBA{0, 255, 255, 255}},
		{name: "B hue 60", h: 60, scheme: mandel.SchemeB, want: color.RGBA{255, 255, 0, 255}},
		{name: "A hue 120", h: 120, scheme: mandel.SchemeA, want: color.RGBA{0, 0, 255, 255}},
		{name: "B hue 120", h: 120, scheme: mandel.SchemeB, want: color.RGBA{0, 255, 0, 255}},
		{name: "A closing hue", h: 240, scheme: mandel.SchemeA, want: color.RGBA{255, 0, 0, 255}},
		{name: "B closing hue", h: 240, scheme: mandel.SchemeB, want: color.RGBA{255, 0, 0, 255}},
		{name: "A hue 360 wraps", h: 360, scheme: mandel.SchemeA, want: color.RGBA{0, 255, 0, 255}},
		{name: "A half sextant", h: 270, scheme: mandel.SchemeA, want: color.RGBA{255, 128, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSV(tt.h, 100, 100, tt.scheme); got != tt.want {
				t.Errorf("HSV(%g) = %v, want %v", tt.h, got, tt.want)
			}
		})
	}
}

func TestHSV_SchemeAMatchesStandardConversion(t *testing.T) {
	for h := 0; h <= 360; h++ {
		rotated := math.Mod(float64(h)+hueShift, 360)
		r, g, b := colorful.Hsv(rotated, 1, 1).RGB255()
		want := color.RGBA{r, g, b, 255}

		if got := HSV(float64(h), 100, 100, mandel.SchemeA); got != want {
			t.Errorf("HSV(%d) = %v, colorful gives %v", h, got, want)
		}
	}
}

func TestHSV_SchemesDiffer(t *testing.T) {
	for h := 0; h <= 360; h++ {
		a := HSV(float64(h), 100, 100, mandel.SchemeA)
		b := HSV(float64(h), 100, 100, mandel.SchemeB)

		// a hue of 240 rotates onto 360, the one slice both schemes share
		if h == 240 {
			if a != b {
				t.Errorf("hue %d: A %v != B %v", h, a, b)
			}
			continue
		}
		if a == b {
			t.Errorf("hue %d: both schemes give %v", h, a)
		}
	}
}

func TestColor(t *testing.T) {
	tests := []struct {
		name    string
		iter    float64
		maxIter int
		scheme  mandel.Scheme
		want    color.RGBA
	}{
		{name: "interior A", iter: 64, maxIter: 64, scheme: mandel.SchemeA, want: color.RGBA{0, 255, 0, 255}},
		{name: "interior B", iter: 64, maxIter: 64, scheme: mandel.SchemeB, want: color.RGBA{255, 0, 0, 255}},
		{name: "immediate escape A", iter: 0, maxIter: 64, scheme: mandel.SchemeA, want: color.RGBA{0, 255, 0, 255}},
		{name: "past the cap is black", iter: 65, maxIter: 64, scheme: mandel.SchemeA, want: black},
		// 360*1/7 = 51.43 truncates to 51, rotated 171
		{name: "zero cap is black", iter: 0, maxIter: 0, scheme: mandel.SchemeA, want: black},
		{name: "negative cap is black", iter: 3, maxIter: -4, scheme: mandel.SchemeB, want: black},
		{name: "hue truncates", iter: 1, maxIter: 7, scheme: mandel.SchemeA, want: HSV(51, 100, 100, mandel.SchemeA)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Color(tt.iter, tt.maxIter, tt.scheme); got != tt.want {
				t.Errorf("Color(%g, %d) = %v, want %v", tt.iter, tt.maxIter, got, tt.want)
			}
		})
	}
}

func TestPalette(t *testing.T) {
	const maxIter = 128
	for _, scheme := range []mandel.Scheme{mandel.SchemeA, mandel.SchemeB} {
		p := Palette(maxIter, scheme)
		if len(p) != maxIter+1 {
			t.Fatalf("len(Palette) = %d, want %d", len(p), maxIter+1)
		}
		for i, got := range p {
			if want := Color(float64(i), maxIter, scheme); got != want {
				t.Errorf("scheme %s: Palette[%d] = %v, want %v", scheme, i, got, want)
			}
		}
	}
}

func TestPalette_NonPositiveCap(t *testing.T) {
	for _, maxIter := range []int{0, -1, -64} {
		p := Palette(maxIter, mandel.SchemeA)
		if len(p) != 1 || p[0] != black {
			t.Errorf("Palette(%d) = %v, want [black]", maxIter, p)
		}
	}
}
