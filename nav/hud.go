package nav

import (
	"fmt"
	"image"
	"image/draw"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// labelLineHeight is the vertical distance between the two labels.
const labelLineHeight = 32

var labelSource = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

func labelFace(points float64) (text.Face, error) {
	src, err := labelSource()
	if err != nil {
		return nil, err
	}
	return src.Face(points), nil
}

// compose draws the labels and the selection outline over a copy of the
// raster. The caller closes the returned context.
func (c *Controller) compose() (*gg.Context, error) {
	s := c.state
	dc := newCanvas(c.raster)
	dc.SetColor(s.Scheme().Contrast())

	if c.face != nil {
		dc.SetFont(c.face)
		dc.DrawStringAnchored(zoomLabel(s), 0, 0, 0, 1)
		dc.DrawStringAnchored(iterationsLabel(s), 0, labelLineHeight, 0, 1)
	}

	sel := s.Selection(c.pointer)
	dc.SetLineWidth(1)
	// half-pixel offset keeps the 1px outline on pixel centers
	dc.DrawRectangle(float64(sel.Min.X)+0.5, float64(sel.Min.Y)+0.5, float64(sel.Dx()), float64(sel.Dy()))
	if err := dc.Stroke(); err != nil {
		_ = dc.Close()
		return nil, fmt.Errorf("stroke selection: %w", err)
	}
	if err := dc.FlushGPU(); err != nil {
		_ = dc.Close()
		return nil, fmt.Errorf("flush overlay: %w", err)
	}
	return dc, nil
}

// newCanvas returns a drawing context over a byte-exact copy of img.
func newCanvas(img *image.RGBA) *gg.Context {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	pm := gg.NewPixmap(w, h)
	data := pm.Data()
	for y := range h {
		src := img.Pix[img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y):]
		copy(data[4*w*y:4*w*(y+1)], src[:4*w])
	}
	return gg.NewContext(w, h, gg.WithPixmap(pm))
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba
}
