package widget

import (
	"image"
	"image/color"

	"github.com/jmigpin/scrollview/util/imageutil"
)

// Decorative marker that paints a background over its parent area. Never counts for the content extent.
type Style struct {
	ENode
	Background color.Color
	ctx        ImageContext
}

func NewStyle(ctx ImageContext, bg color.Color) *Style {
	s := &Style{ctx: ctx, Background: bg}
	s.Kind = KindDecorative
	return s
}

func (s *Style) Paint(clip image.Rectangle) {
	if s.ctx == nil || s.Parent == nil {
		return
	}
	r := s.Parent.AbsRect().ToRectFloorCeil().Intersect(clip)
	imageutil.FillRectangle(s.ctx.Image(), r, s.Background)
}
