package widget

import (
	"image"
	"image/color"

	"github.com/jmigpin/scrollview/util/imageutil"
	"github.com/jmigpin/scrollview/util/mathutil"
)

type Rectangle struct {
	ENode
	Color color.Color
	ctx   ImageContext
}

func NewRectangle(ctx ImageContext) *Rectangle {
	r := &Rectangle{ctx: ctx}
	return r
}

func NewRectangle2(ctx ImageContext, pos, size mathutil.PointF, c color.Color) *Rectangle {
	r := NewRectangle(ctx)
	r.Pos = pos
	r.Size = size
	r.Color = c
	return r
}

func (r *Rectangle) Paint(clip image.Rectangle) {
	if r.ctx == nil {
		return
	}
	rr := r.AbsRect().ToRectFloorCeil().Intersect(clip)
	imageutil.FillRectangle(r.ctx.Image(), rr, r.Color)
}
