// Package rgb565 reduces 24-bit truecolor pixels to the packed 16-bit
// RGB565 format used by small display controllers.
package rgb565

import (
	"image"

	"github.com/disintegration/imaging"
)

// Pack converts an RGB888 triple to RGB565: the top 5 bits of red,
// top 6 of green, and top 5 of blue, packed red-high. The dropped low
// bits are an intentional loss; the truncation must stay bit-exact
// because the generated arrays are consumed verbatim by firmware.
func Pack(r, g, b uint8) uint16 {
	return uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b)>>3
}

// FromImage flattens a decoded image into a row-major RGB565 buffer
// of length width*height (row 0 first, left-to-right). Whatever the
// source color model was (gray, paletted, YCbCr, alpha), imaging.Clone
// normalizes it to 8-bit non-premultiplied RGBA first; the alpha
// channel is discarded.
func FromImage(img image.Image) []uint16 {
	nrgba := imaging.Clone(img)
	w := nrgba.Rect.Dx()
	h := nrgba.Rect.Dy()

	buf := make([]uint16, 0, w*h)
	for y := 0; y < h; y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+w*4]
		for x := 0; x < len(row); x += 4 {
			buf = append(buf, Pack(row[x], row[x+1], row[x+2]))
		}
	}
	return buf
}
