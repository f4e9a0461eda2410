package tcellsixel

import (
	"image"

	"golang.org/x/image/draw"
)

// Image returns the placement's pixels as an image.RGBA sharing the
// underlying buffer.
func (p *Placement) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    p.Pix,
		Stride: p.Stride,
		Rect:   image.Rect(0, 0, p.Width, p.Height),
	}
}

// scaleImage resamples src to width x height. Alpha is carried over as-is so
// undrawn sixel regions stay transparent.
func scaleImage(src *image.RGBA, width, height int) *image.RGBA {
	if src.Bounds().Dx() == width && src.Bounds().Dy() == height {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
