package raster

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// boxKernel weights every source pixel under a destination pixel equally.
// When minifying, x/image stretches a kernel's support by the scale
// factor, so at an integer factor the taps are exactly the source pixels
// of the corresponding block and the scale is a true box average. The At
// cutoff keeps taps from neighboring blocks at weight zero.
var boxKernel = &xdraw.Kernel{
	Support: 0.5,
	At: func(t float64) float64 {
		if t < 0.5 {
			return 1
		}
		return 0
	},
}

// Downsample reduces img by an integer factor, averaging each factor by
// factor source block into one destination pixel. Averaging happens in
// premultiplied space and converts back to straight alpha, so a uniform
// source block maps to exactly its color and coverage never bleeds
// across block boundaries.
func Downsample(img *image.NRGBA, factor int) *image.NRGBA {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()/factor, b.Dy()/factor))
	boxKernel.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}
