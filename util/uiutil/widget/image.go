package widget

import (
	"image"
	"image/color"

	"github.com/jmigpin/scrollview/util/imageutil"
	"github.com/jmigpin/scrollview/util/mathutil"
)

// Paints a sub-region of a named texture scaled to the node size.
type Image struct {
	ENode
	Texture       string
	TextureOrigin mathutil.PointF // in texture space
	TextureSize   mathutil.PointF // in texture space, zero uses the whole texture
	Fallback      color.Color     // painted when the texture is not available

	ctx Context
	err error
}

func NewImage(ctx Context, texture string) *Image {
	im := &Image{ctx: ctx, Texture: texture}
	im.Fallback = color.RGBA{0x80, 0x80, 0x80, 0xff}
	return im
}

// Last error while getting the texture, if any.
func (im *Image) Err() error {
	return im.err
}

func (im *Image) textureRect(tex image.Image) image.Rectangle {
	b := tex.Bounds()
	if im.TextureSize == (mathutil.PointF{}) {
		return b
	}
	r := mathutil.RF(im.TextureOrigin, im.TextureSize).ToRectFloorCeil()
	return r.Add(b.Min).Intersect(b)
}

func (im *Image) Paint(clip image.Rectangle) {
	if im.ctx == nil {
		return
	}
	dr := im.AbsRect().ToRectFloorCeil()
	dst := im.ctx.Image()

	tex, err := im.ctx.Texture(im.Texture)
	im.err = err
	if err != nil {
		imageutil.FillRectangle(dst, dr.Intersect(clip), im.Fallback)
		return
	}
	imageutil.DrawScaled(dst, dr, tex, im.textureRect(tex), clip)
}
