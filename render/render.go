package render

import (
	"image"

	mandel "github.com/marben/mandelzoom"
)

// Rasterize renders region r into a new w x h image. Pixel (0, 0) maps to
// (Xmin, Ymin) and pixel (w-1, h-1) to (Xmax, Ymax).
func Rasterize(r mandel.Region, w, h, maxIter int, scheme mandel.Scheme) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
	if w <= 0 || h <= 0 || maxIter <= 0 {
		return img
	}

	palette := Palette(maxIter, scheme)
	// a single pixel column or row samples the minimum edge
	xDiv := float64(max(w-1, 1))
	yDiv := float64(max(h-1, 1))

	for iy := range h {
		y := r.Ymin + (r.Ymax-r.Ymin)*float64(iy)/yDiv
		row := img.Pix[iy*img.Stride:]

		for ix := range w {
			x := r.Xmin + (r.Xmax-r.Xmin)*float64(ix)/xDiv

			col := palette[int(Iterate(x, y, maxIter))]
			p := row[4*ix : 4*ix+4 : 4*ix+4]
			p[0] = col.R
			p[1] = col.G
			p[2] = col.B
			p[3] = 255
		}
	}

	return img
}

type RendererImpl struct {
	// OnRender, if set, is called before each render.
	OnRender func(r mandel.Region, maxIter int)
}

func (imp RendererImpl) Render(r mandel.Region, imgW, imgH, maxIter int, scheme mandel.Scheme) *image.RGBA {
	if imp.OnRender != nil {
		imp.OnRender(r, maxIter)
	}
	return Rasterize(r, imgW, imgH, maxIter, scheme)
}

var _ mandel.Renderer = RendererImpl{}
