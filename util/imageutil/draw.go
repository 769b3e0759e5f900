package imageutil

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

func DrawUniform(dst draw.Image, r image.Rectangle, c color.Color, op draw.Op) {
	if c == nil {
		return
	}
	src := image.NewUniform(c)
	draw.Draw(dst, r, src, image.Point{}, op)
}

func FillRectangle(img draw.Image, r image.Rectangle, c color.Color) {
	DrawUniform(img, r, c, draw.Src)
}

//----------

func DrawCopy(dst draw.Image, r image.Rectangle, src image.Image) {
	draw.Draw(dst, r, src, image.Point{}, draw.Src)
}

//----------

// Scales the src sub-rectangle into the dst rectangle. Only the part of dr inside clip is written.
func DrawScaled(dst draw.Image, dr image.Rectangle, src image.Image, sr image.Rectangle, clip image.Rectangle) {
	if dr.Empty() || sr.Empty() {
		return
	}
	if dr.Intersect(clip).Empty() {
		return
	}
	opts := &xdraw.Options{}
	if !dr.In(clip) {
		opts.DstMask = clipMask(clip)
		opts.DstMaskP = image.Point{}
	}
	xdraw.ApproxBiLinear.Scale(dst, dr, src, sr, draw.Over, opts)
}

// A mask that is opaque only inside r.
func clipMask(r image.Rectangle) image.Image {
	m := image.NewAlpha(r)
	draw.Draw(m, r, image.Opaque, image.Point{}, draw.Src)
	return m
}
