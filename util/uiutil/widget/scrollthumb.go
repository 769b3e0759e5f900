package widget

import (
	"image"

	"github.com/jmigpin/scrollview/util/imageutil"
	"github.com/jmigpin/scrollview/util/mathutil"
	"github.com/jmigpin/scrollview/util/uiutil/event"
)

// Draggable handle of the ScrollContainer. The container does the decision making, the thumb forwards its pointer events.
type ScrollThumb struct {
	Image
	sc *ScrollContainer
}

func newScrollThumb(ctx Context, sc *ScrollContainer) *ScrollThumb {
	opt := &sc.opt
	th := &ScrollThumb{sc: sc}
	th.Image = *NewImage(ctx, opt.ThumbTexture)
	th.TextureOrigin = mathutil.PF(opt.ThumbTextureOrigin[0], opt.ThumbTextureOrigin[1])
	th.TextureSize = mathutil.PF(opt.ThumbTextureSize[0], opt.ThumbTextureSize[1])
	th.Size = mathutil.PF(opt.ThumbWidth, 0)
	th.AddMarks(MarkHidden)
	return th
}

func (th *ScrollThumb) Paint(clip image.Rectangle) {
	if th.ctx == nil {
		return
	}
	th.Image.Paint(clip)
	if th.err != nil && th.sc.scrolling {
		// flat fallback color, show the grab
		r := th.AbsRect().ToRectFloorCeil().Intersect(clip)
		imageutil.FillRectangle(th.ctx.Image(), r, imageutil.Tint(th.Fallback, 0.4))
	}
}

func (th *ScrollThumb) OnInputEvent(ev interface{}, p mathutil.PointF, hit bool) event.Handle {
	switch evt := ev.(type) {
	case *event.MouseDown:
		if evt.Button == event.ButtonLeft && th.sc.BeginDrag(p.Y, hit) {
			th.MarkNeedsPaint()
			return event.Handled
		}
	case *event.MouseMove:
		th.sc.OnPointerMove(p.Y)
	case *event.MouseUp:
		if th.sc.scrolling {
			th.MarkNeedsPaint()
		}
		th.sc.EndDrag()
	}
	return event.NotHandled
}
