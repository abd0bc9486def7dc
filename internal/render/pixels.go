package render

import "image/color"

// Palette maps the two cell states to draw colors.
type Palette struct {
	Alive color.NRGBA
	Dead  color.NRGBA
}

// DefaultPalette uses faint colors so that drawing over the previous frame
// leaves fading trails.
var DefaultPalette = Palette{
	Alive: color.NRGBA{R: 255, G: 255, B: 255, A: 20},
	Dead:  color.NRGBA{R: 55, G: 55, B: 55, A: 10},
}

// OpaquePalette draws each frame without trails.
var OpaquePalette = Palette{
	Alive: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	Dead:  color.NRGBA{R: 55, G: 55, B: 55, A: 255},
}

// fillBinaryRGBA converts binary cell data (0/1) into premultiplied RGBA
// pixels in buf.
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

// Fill writes the pixels for cells into buf, which must hold 4 bytes per cell.
func (p Palette) Fill(buf []byte, cells []uint8) {
	fillBinaryRGBA(buf, cells, p.Alive, p.Dead)
}
