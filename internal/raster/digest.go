package raster

import (
	"image"

	"github.com/cespare/xxhash/v2"
)

// Digest returns an xxhash of the pixels of img. Equal frames have equal
// digests, which makes headless runs easy to compare.
func Digest(img *image.RGBA) uint64 {
	b := img.Bounds()
	if img.Stride == 4*b.Dx() {
		return xxhash.Sum64(img.Pix[:4*b.Dx()*b.Dy()])
	}
	d := xxhash.New()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := img.PixOffset(b.Min.X, y)
		_, _ = d.Write(img.Pix[off : off+4*b.Dx()])
	}
	return d.Sum64()
}
