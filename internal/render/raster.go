// Package render maps composed cell fields onto pixels: an RGBA raster for
// display and export, a PNG file named after the generating seed, and a
// plain text dump.
package render

import (
	"fmt"
	"image"
	"image/color"

	"semifractal/internal/core"
)

// Rasterize expands a cell field into an RGBA image where every cell
// becomes a pixelSize*pixelSize block, live cells painted on and dead cells
// off. No blending: each pixel carries exactly one of the two colors.
func Rasterize(g *core.Grid, pixelSize int, on, off color.Color) (*image.RGBA, error) {
	if pixelSize <= 0 {
		return nil, fmt.Errorf("%w: %d", core.ErrInvalidPixelSize, pixelSize)
	}

	img := image.NewRGBA(image.Rect(0, 0, g.W*pixelSize, g.H*pixelSize))
	if pixelSize == 1 {
		fillBinaryRGBA(img.Pix, g.Cells(), on, off)
		return img, nil
	}

	cOn := rgba8(on)
	cOff := rgba8(off)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			px := cOff
			if g.Get(x, y) != 0 {
				px = cOn
			}
			for dy := 0; dy < pixelSize; dy++ {
				base := img.PixOffset(x*pixelSize, y*pixelSize+dy)
				for dx := 0; dx < pixelSize; dx++ {
					o := base + dx*4
					img.Pix[o+0] = px[0]
					img.Pix[o+1] = px[1]
					img.Pix[o+2] = px[2]
					img.Pix[o+3] = px[3]
				}
			}
		}
	}
	return img, nil
}
