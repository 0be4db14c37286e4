package mandel

import (
	"image"
)

// ImgProvider hands out the most recently rendered image.
type ImgProvider interface {
	GetImage() (image.RGBA, error)
}

// Renderer produces a full imgW x imgH pixel buffer for region r.
type Renderer interface {
	Render(r Region, imgW, imgH, maxIter int, scheme Scheme) *image.RGBA
}
