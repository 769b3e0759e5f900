package widget

import (
	"github.com/jmigpin/scrollview/util/mathutil"
	"github.com/jmigpin/scrollview/util/uiutil/event"
)

// Delivers input events to the tree. Every visible node receives pointer events, topmost first, with a hit flag that is true only for nodes under the pointer that weren't preceded by a node that handled the event.
type ApplyEvent struct {
	sctx ScreenContext
}

func NewApplyEvent(sctx ScreenContext) *ApplyEvent {
	return &ApplyEvent{sctx: sctx}
}

//----------

// Converts the driver input (origin at the bottom) into toolkit space and applies it.
func (ae *ApplyEvent) ApplyInput(node Node, wi *event.WindowInput) {
	sf := event.ScreenFrame{Height: ae.sctx.ScreenHeight()}
	p := sf.ToTop(wi.Point)
	ae.Apply(node, event.WithPoint(wi.Event, p), p)
}

// The point is in toolkit space.
func (ae *ApplyEvent) Apply(node Node, ev interface{}, p mathutil.PointF) {
	switch ev.(type) {
	case nil:
	case *event.MouseDown, *event.MouseUp, *event.MouseMove,
		*event.MouseWheel, *event.KeyDown:
		clip := node.Embed().AbsRect()
		handled := false
		ae.broadcast(node, ev, p, clip, &handled)
	}
}

//----------

func (ae *ApplyEvent) broadcast(node Node, ev interface{}, p mathutil.PointF, clip mathutil.RectF, handled *bool) {
	ne := node.Embed()
	if !ne.Visible() {
		return
	}

	cclip := clip
	if ne.HasAnyMarks(MarkCrop) {
		cclip = clip.Intersect(ne.AbsRect())
	}

	// later childs are drawn over previous ones, run loop backwards
	ne.IterateWrappersReverse(func(c Node) bool {
		ae.broadcast(c, ev, p, cclip, handled)
		return true
	})

	hit := !*handled && p.In(ne.AbsRect().Intersect(clip))
	h := node.OnInputEvent(ev, p, hit)
	if hit && h == event.Handled {
		*handled = true
	}
}
