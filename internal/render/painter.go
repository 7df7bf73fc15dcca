//go:build ebiten

package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a rasterized RGBA buffer into a single ebiten image
// and draws it. The buffer already carries the cell pixel scale, so the
// blit is 1:1.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
}

// NewGridPainter allocates a painter for a w*h pixel buffer.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Blit uploads the buffer into the painter image and draws it onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, buf *image.RGBA) {
	if buf == nil || buf.Bounds().Dx() != gp.w || buf.Bounds().Dy() != gp.h {
		return
	}
	gp.img.WritePixels(buf.Pix)
	dst.DrawImage(gp.img, nil)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
