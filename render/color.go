package render

import (
	"image/color"
	"math"

	mandel "github.com/marben/mandelzoom"
)

// hueShift rotates every hue before the sextant lookup.
const hueShift = 120

// channel picks which of {0, X, C} lands in a color channel.
type channel uint8

const (
	zero channel = iota
	second
	chroma
)

// sextants lists the (r, g, b) channel picks for each 60° slice of the
// rotated hue, in scheme A order.
var sextants = [...][3]channel{
	{chroma, second, zero},
	{second, chroma, zero},
	{zero, chroma, second},
	{zero, second, chroma},
	{second, zero, chroma},
	{chroma, zero, second},
}

// schemeSextants maps the slice index of the rotated hue to a row of
// sextants. Index 6 is a rotated hue of exactly 360°, shared by both schemes.
// Scheme B is scheme A shifted by three slices.
var schemeSextants = [...][7]uint8{
	mandel.SchemeA: {0, 1, 2, 3, 4, 5, 5},
	mandel.SchemeB: {3, 4, 5, 0, 1, 2, 5},
}

var black = color.RGBA{A: 255}

// HSV converts hue in degrees [0, 360], saturation and value in percent
// [0, 100] to an opaque color. Out of range input, NaN included, yields black.
func HSV(h, s, v float64, scheme mandel.Scheme) color.RGBA {
	if !(h >= 0 && h <= 360) || !(s >= 0 && s <= 100) || !(v >= 0 && v <= 100) {
		return black
	}
	if int(scheme) >= len(schemeSextants) {
		return black
	}

	h += hueShift
	if h > 360 {
		h -= 360
	}

	s /= 100
	v /= 100
	c := s * v
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	row := sextants[schemeSextants[scheme][int(h/60)]]
	pick := func(ch channel) uint8 {
		var f float64
		switch ch {
		case second:
			f = x
		case chroma:
			f = c
		}
		return uint8(math.Round((f + m) * 255))
	}
	return color.RGBA{R: pick(row[0]), G: pick(row[1]), B: pick(row[2]), A: 255}
}

// Color maps an escape count to its display color. A non-positive maxIter
// yields black.
func Color(iter float64, maxIter int, scheme mandel.Scheme) color.RGBA {
	if maxIter <= 0 {
		return black
	}
	hue := math.Trunc(360 * iter / float64(maxIter))
	val := 100.0
	if iter > float64(maxIter) {
		val = 0
	}
	return HSV(hue, 100, val, scheme)
}

// Palette returns Color for every whole escape count 0..maxIter.
func Palette(maxIter int, scheme mandel.Scheme) []color.RGBA {
	p := make([]color.RGBA, max(maxIter, 0)+1)
	for i := range p {
		p[i] = Color(float64(i), maxIter, scheme)
	}
	return p
}
