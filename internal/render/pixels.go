package render

import "image/color"

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// Change highlight colours, premultiplied as WritePixels expects.
var (
	BornColor = color.RGBA{R: 40, G: 200, B: 90, A: 200}
	DiedColor = color.RGBA{R: 160, G: 48, B: 48, A: 160}
)

// fillChangeRGBA marks cells that were born (dead in prev, alive in cur) or
// died between two generations. Unchanged cells are left transparent. prev and
// cur must be the same length.
func fillChangeRGBA(buf []byte, prev, cur []uint8, born, died color.RGBA) {
	for i := range cur {
		base := i * 4
		var col color.RGBA
		switch {
		case prev[i] == 0 && cur[i] != 0:
			col = born
		case prev[i] != 0 && cur[i] == 0:
			col = died
		}
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
