package widget

import (
	"image"
	"image/color"
	"math"

	"github.com/jmigpin/scrollview/util/imageutil"
	"github.com/jmigpin/scrollview/util/mathutil"
	"github.com/jmigpin/scrollview/util/uiutil/event"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type ScrollListener func(*ScrollContainer)

type ListenerID uint64

// Fixed size viewport that clips and vertically scrolls its childs. The childs live in an inner content node that is moved by -multiplier*thumbY, the thumb being the only source of the scroll position.
type ScrollContainer struct {
	ENode
	Background color.Color

	content *Container
	thumb   *ScrollThumb
	opt     ScrollOptions
	ctx     Context

	enableScrolling bool
	enableScrollbar bool

	scrolling     bool    // thumb is grabbed
	dragAnchor    float64 // pointer offset from the thumb top at grab time
	contentHeight float64
	multiplier    float64 // content travel per unit of thumb travel
	scrollable    bool

	listeners *orderedmap.OrderedMap[ListenerID, ScrollListener]
	lastID    ListenerID

	notifying     bool
	pendingNotify bool
	pendingUpdate bool
}

// Interactive container with clipping, scrolling and scrollbar enabled.
func NewScrollContainer(ctx Context, size mathutil.PointF, opt *ScrollOptions) *ScrollContainer {
	sc := newScrollContainer(ctx, opt)
	sc.Size = size
	sc.AddMarks(MarkCrop)
	sc.enableScrolling = true
	sc.enableScrollbar = true
	sc.placeThumb()
	sc.updateContentBounds()
	return sc
}

// Non-interactive placeholder: zero size, scrolling and scrollbar disabled.
func NewPlaceholderScrollContainer(ctx Context, opt *ScrollOptions) *ScrollContainer {
	sc := newScrollContainer(ctx, opt)
	sc.placeThumb()
	sc.updateContentBounds()
	return sc
}

func newScrollContainer(ctx Context, opt *ScrollOptions) *ScrollContainer {
	sc := &ScrollContainer{
		multiplier: 1,
		listeners:  orderedmap.New[ListenerID, ScrollListener](),
	}
	if opt != nil {
		sc.opt = *opt
	} else {
		sc.opt = DefaultScrollOptions()
	}
	if sc.opt.WheelDivisor <= 0 {
		sc.opt.WheelDivisor = 1
	}
	sc.Kind = KindContainer
	sc.SetWrapperForRoot(sc) // childs appended before insertion in a tree go to the content

	sc.content = NewContainer()
	sc.thumb = newScrollThumb(ctx, sc)

	// content first, the thumb paints and gets hit over it
	sc.EmbedNode.InsertBefore(sc.content, nil)
	sc.EmbedNode.InsertBefore(sc.thumb, nil)

	sc.ctx = ctx
	sc.Background = color.RGBA{0x20, 0x20, 0x20, 0xff}
	return sc
}

//----------

func (sc *ScrollContainer) Content() *Container     { return sc.content }
func (sc *ScrollContainer) Thumb() *ScrollThumb     { return sc.thumb }
func (sc *ScrollContainer) Options() ScrollOptions  { return sc.opt }
func (sc *ScrollContainer) Scrolling() bool         { return sc.scrolling }
func (sc *ScrollContainer) DragAnchor() float64     { return sc.dragAnchor }
func (sc *ScrollContainer) ContentHeight() float64  { return sc.contentHeight }
func (sc *ScrollContainer) Multiplier() float64     { return sc.multiplier }
func (sc *ScrollContainer) Scrollable() bool        { return sc.scrollable }
func (sc *ScrollContainer) ScrollingEnabled() bool  { return sc.enableScrolling }
func (sc *ScrollContainer) ScrollbarEnabled() bool  { return sc.enableScrollbar }
func (sc *ScrollContainer) Children() []Node        { return sc.content.ChildsWrappers() }
func (sc *ScrollContainer) ThumbPos() float64       { return sc.thumb.Pos.Y }
func (sc *ScrollContainer) ThumbHeight() float64    { return sc.thumb.Size.Y }
func (sc *ScrollContainer) viewportHeight() float64 { return sc.Size.Y }

// Content travel, positive when the content is moved up. Never negative zero.
func (sc *ScrollContainer) ScrollOffset() float64 {
	off := -sc.content.Pos.Y
	if off == 0 {
		return 0
	}
	return off
}

//----------

func (sc *ScrollContainer) SetScrollingEnabled(v bool) {
	sc.enableScrolling = v
	if !v {
		sc.EndDrag()
	}
	sc.updateContentBounds()
}

func (sc *ScrollContainer) SetScrollbarEnabled(v bool) {
	sc.enableScrollbar = v
	sc.updateContentBounds()
}

func (sc *ScrollContainer) SetSize(size mathutil.PointF) {
	sc.EmbedNode.SetSize(size)
	sc.placeThumb()
	sc.updateContentBounds()
}

//----------

func (sc *ScrollContainer) Append(nodes ...Node) {
	for _, n := range nodes {
		sc.InsertBefore(n, nil)
	}
}

func (sc *ScrollContainer) InsertBefore(n Node, next *EmbedNode) {
	sc.content.InsertBefore(n, next)
	sc.updateContentBounds()
}

func (sc *ScrollContainer) Remove(child Node) {
	sc.content.Remove(child)
	sc.updateContentBounds()
}

func (sc *ScrollContainer) RemoveAll() {
	sc.content.RemoveAll()
	sc.updateContentBounds()
}

//----------

// Grabs the thumb. The pointer y is in toolkit space (origin at the top).
func (sc *ScrollContainer) BeginDrag(pointerY float64, hit bool) bool {
	if !hit || !sc.enableScrolling {
		return false
	}
	sc.scrolling = true
	sc.dragAnchor = pointerY - sc.thumb.Pos.Y - sc.AbsPos().Y
	return true
}

func (sc *ScrollContainer) EndDrag() {
	sc.scrolling = false
	sc.dragAnchor = 0
}

func (sc *ScrollContainer) OnPointerMove(pointerY float64) {
	if sc.scrolling && sc.enableScrolling {
		sc.moveScrollbar(pointerY)
	}
}

// Returns true if the wheel moved (or tried to move) the content. The drag anchor is ignored, a wheel notch while grabbed moves the thumb by the notch only.
func (sc *ScrollContainer) OnWheel(delta int, hit bool) bool {
	if delta == 0 || !sc.enableScrolling || !sc.scrollable || !hit {
		return false
	}
	d := delta / sc.opt.WheelDivisor
	sc.setThumbPos(sc.thumb.Pos.Y - float64(d))
	return true
}

//----------

// Scrolls the content to the given offset (positive moves the content up).
func (sc *ScrollContainer) ScrollTo(offset float64) {
	sc.setThumbPos(offset / sc.multiplier)
}

func (sc *ScrollContainer) ScrollToTop() {
	sc.setThumbPos(0)
}

func (sc *ScrollContainer) ScrollToBottom() {
	sc.setThumbPos(sc.maxThumbPos())
}

func (sc *ScrollContainer) scrollPage(up bool) {
	v := sc.viewportHeight()
	if up {
		v = -v
	}
	sc.ScrollTo(sc.ScrollOffset() + v)
}

//----------

// Target y is an absolute toolkit y. All interactive scrolling goes through here.
func (sc *ScrollContainer) moveScrollbar(targetY float64) {
	sc.setThumbPos(targetY - sc.AbsPos().Y - sc.dragAnchor)
}

func (sc *ScrollContainer) maxThumbPos() float64 {
	max := sc.viewportHeight() - sc.thumb.Size.Y
	if max < 0 {
		max = 0
	}
	return max
}

func (sc *ScrollContainer) setThumbPos(pos float64) {
	if math.IsNaN(pos) {
		pos = sc.thumb.Pos.Y
	}
	pos = mathutil.LimitFloat64(pos, 0, sc.maxThumbPos())

	oldThumb, oldContent := sc.thumb.Pos.Y, sc.content.Pos.Y

	sc.thumb.SetPos(mathutil.PF(sc.thumb.Pos.X, pos))
	cy := -sc.multiplier * pos
	if cy == 0 {
		cy = 0 // no negative zero
	}
	sc.content.SetPos(mathutil.PF(sc.content.Pos.X, cy))

	if sc.thumb.Pos.Y != oldThumb || sc.content.Pos.Y != oldContent {
		sc.notifyScrollListeners()
	}
}

//----------

func (sc *ScrollContainer) isThumb(en *EmbedNode) bool {
	return en == sc.thumb.Embed()
}

// Recomputes the content extent, thumb size/visibility and re-clamps the scroll position.
func (sc *ScrollContainer) updateContentBounds() {
	if sc.notifying {
		// a listener changed the childs, run after the listeners are done
		sc.pendingUpdate = true
		return
	}
	sc.updateContentBounds2()
}

func (sc *ScrollContainer) updateContentBounds2() {
	sc.contentHeight = 0
	if min, max, ok := ComputeExtent(sc.content.Embed(), sc.isThumb); ok {
		sc.contentHeight = max - min
	}

	vh := sc.viewportHeight()
	if vh > 0 && sc.contentHeight > vh {
		sc.scrollable = true
		th, m := thumbGeometry(sc.contentHeight, vh, sc.opt.MinThumbHeight)
		sc.multiplier = m
		sc.thumb.SetSize(mathutil.PF(sc.thumb.Size.X, th))
		sc.thumb.SetVisible(sc.enableScrollbar)
		// keep the current location, re-clamped to the new thumb height
		sc.setThumbPos(sc.thumb.Pos.Y)
	} else {
		sc.scrollable = false
		sc.multiplier = 1
		sc.EndDrag()
		sc.thumb.SetSize(mathutil.PF(sc.thumb.Size.X, math.Max(vh, 0)))
		sc.thumb.SetVisible(false)
		sc.setThumbPos(0)
	}

	sc.MarkNeedsLayoutAndPaint()
}

// Returns the thumb height and the multiplier. The multiplier maps the thumb travel onto the content travel, which keeps the content bottom reachable when the thumb height is floored.
func thumbGeometry(contentHeight, viewHeight, minThumb float64) (float64, float64) {
	diff := contentHeight - viewHeight
	m := diff/viewHeight + 1
	th := viewHeight / m

	floor := minThumb
	if floor > viewHeight/2 {
		floor = viewHeight / 2
	}
	if th < floor {
		th = floor
		m = diff / (viewHeight - th)
	}
	return th, m
}

//----------

func (sc *ScrollContainer) AddScrollListener(fn ScrollListener) ListenerID {
	sc.lastID++
	sc.listeners.Set(sc.lastID, fn)
	return sc.lastID
}

func (sc *ScrollContainer) RemoveScrollListener(id ListenerID) {
	sc.listeners.Delete(id)
}

// Rounds of listener calls for one scroll change. Listeners that keep changing the childs on every call are not run again after this.
const maxNotifyRounds = 8

func (sc *ScrollContainer) notifyScrollListeners() {
	if sc.notifying {
		sc.pendingNotify = true
		return
	}
	sc.notifying = true
	defer func() { sc.notifying = false }()

	for round := 1; ; round++ {
		sc.pendingNotify = false

		// listeners can remove themselves while running
		fns := make([]ScrollListener, 0, sc.listeners.Len())
		for pair := sc.listeners.Oldest(); pair != nil; pair = pair.Next() {
			fns = append(fns, pair.Value)
		}
		for _, fn := range fns {
			fn(sc)
		}

		if sc.pendingUpdate {
			sc.pendingUpdate = false
			sc.updateContentBounds2()
		}
		if !sc.pendingNotify {
			return
		}
		if round >= maxNotifyRounds {
			sc.pendingNotify = false
			return
		}
	}
}

//----------

func (sc *ScrollContainer) Layout() {
	sc.placeThumb()
}

// The thumb sits at the right edge of the viewport.
func (sc *ScrollContainer) placeThumb() {
	w := sc.opt.ThumbWidth
	sc.thumb.SetSize(mathutil.PF(w, sc.thumb.Size.Y))
	sc.thumb.SetPos(mathutil.PF(sc.Size.X-w, sc.thumb.Pos.Y))
}

func (sc *ScrollContainer) Paint(clip image.Rectangle) {
	if sc.ctx == nil || sc.Background == nil {
		return
	}
	r := sc.AbsRect().ToRectFloorCeil().Intersect(clip)
	imageutil.FillRectangle(sc.ctx.Image(), r, sc.Background)
}

func (sc *ScrollContainer) OnInputEvent(ev interface{}, p mathutil.PointF, hit bool) event.Handle {
	switch evt := ev.(type) {
	case *event.MouseWheel:
		if sc.OnWheel(evt.Delta, hit) {
			return event.Handled
		}
	case *event.MouseUp:
		// the thumb can be hidden while grabbed
		sc.EndDrag()
	case *event.KeyDown:
		if !hit || !sc.enableScrolling || !sc.scrollable {
			break
		}
		switch evt.KeySym {
		case event.KSymPageUp:
			sc.scrollPage(true)
		case event.KSymPageDown:
			sc.scrollPage(false)
		case event.KSymHome:
			sc.ScrollToTop()
		case event.KSymEnd:
			sc.ScrollToBottom()
		default:
			return event.NotHandled
		}
		return event.Handled
	}
	return event.NotHandled
}
