package mandel

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Scheme selects one of the two hue-rotation colorings.
type Scheme uint8

const (
	SchemeA Scheme = iota
	SchemeB
)

// Next returns the other scheme.
func (s Scheme) Next() Scheme {
	if s == SchemeA {
		return SchemeB
	}
	return SchemeA
}

// Contrast is the color used for labels and the selection outline drawn
// over a frame rendered with s.
func (s Scheme) Contrast() colorful.Color {
	if s == SchemeB {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return colorful.Color{B: 1}
}

func (s Scheme) String() string {
	switch s {
	case SchemeA:
		return "A"
	case SchemeB:
		return "B"
	}
	return fmt.Sprintf("Scheme(%d)", uint8(s))
}
