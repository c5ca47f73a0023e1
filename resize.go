package iconkit

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// ScaleTo resamples src down (or up) to a size x size copy. Catmull-Rom is
// slow but this runs a handful of times per export, and it keeps the
// checkerboard edges from going muddy at the small sizes.
func ScaleTo(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	if b := src.Bounds(); b.Dx() == size && b.Dy() == size {
		xdraw.Copy(dst, image.Point{}, src, b, xdraw.Src, nil)
		return dst
	}
	xdraw.CatmullRom.Scale(dst, dst.Rect, src, src.Bounds(), xdraw.Src, nil)
	return dst
}
