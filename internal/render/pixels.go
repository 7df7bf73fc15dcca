package render

import "image/color"

// rgba8 reduces a color to 8-bit RGBA channels.
func rgba8(c color.Color) [4]uint8 {
	r, g, b, a := c.RGBA()
	return [4]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	cOn := rgba8(on)
	cOff := rgba8(off)
	for i, c := range cells {
		base := i * 4
		px := cOff
		if c != 0 {
			px = cOn
		}
		buf[base+0] = px[0]
		buf[base+1] = px[1]
		buf[base+2] = px[2]
		buf[base+3] = px[3]
	}
}
