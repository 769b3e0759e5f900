package widget

import (
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/jmigpin/scrollview/util/mathutil"
)

func newTestScrollContainer(contentHeight float64) *ScrollContainer {
	sc := NewScrollContainer(nil, mathutil.PF(200, 100), nil)
	if contentHeight > 0 {
		sc.Append(newRect(0, contentHeight))
	}
	return sc
}

func checkCoupling(t *testing.T, sc *ScrollContainer) {
	t.Helper()
	tp := sc.ThumbPos()
	if tp < 0 || tp > sc.Size.Y-sc.ThumbHeight() {
		t.Fatalf("thumb out of range: pos=%v height=%v", tp, sc.ThumbHeight())
	}
	if sc.Content().Pos.Y != -sc.Multiplier()*tp {
		t.Fatalf("content not coupled: %v != %v", sc.Content().Pos.Y, -sc.Multiplier()*tp)
	}
}

//----------

func TestScrollMultiplier(t *testing.T) {
	sc := newTestScrollContainer(250)
	if !sc.Scrollable() {
		t.Fatal("expecting scrollable")
	}
	if sc.ContentHeight() != 250 {
		t.Fatal(sc.ContentHeight())
	}
	if sc.Multiplier() != 2.5 {
		t.Fatal(sc.Multiplier())
	}
	if sc.ThumbHeight() != 40 {
		t.Fatal(sc.ThumbHeight())
	}
	if !sc.Thumb().Visible() {
		t.Fatal("expecting visible thumb")
	}
}

func TestScrollClamp(t *testing.T) {
	sc := newTestScrollContainer(250)
	targets := []float64{-1000, -1, 0, 30, 59.5, 60, 61, 1000, math.Inf(1), math.Inf(-1), math.NaN()}
	for _, y := range targets {
		sc.moveScrollbar(y)
		checkCoupling(t, sc)
	}
	sc.moveScrollbar(1000)
	if sc.ThumbPos() != 60 {
		t.Fatal(sc.ThumbPos())
	}
	if sc.ScrollOffset() != 150 {
		t.Fatal(sc.ScrollOffset())
	}
	sc.moveScrollbar(-5)
	if sc.ThumbPos() != 0 || sc.ScrollOffset() != 0 {
		t.Fatal(sc.ThumbPos(), sc.ScrollOffset())
	}
}

func TestScrollThreshold(t *testing.T) {
	sc := newTestScrollContainer(100) // same as the viewport
	if sc.Scrollable() {
		t.Fatal("expecting not scrollable")
	}
	if sc.Thumb().Visible() {
		t.Fatal("expecting hidden thumb")
	}
	if sc.ScrollOffset() != 0 || sc.Multiplier() != 1 {
		t.Fatal(sc.ScrollOffset(), sc.Multiplier())
	}
	if math.Signbit(sc.ScrollOffset()) {
		t.Fatal("negative zero offset")
	}

	sc.Append(newRect(100, 1))
	if !sc.Scrollable() || sc.Multiplier() < 1 {
		t.Fatal(sc.Scrollable(), sc.Multiplier())
	}
}

func TestScrollDragRoundTrip(t *testing.T) {
	sc := newTestScrollContainer(250)
	sc.Pos = mathutil.PF(0, 50)

	sc.moveScrollbar(60) // thumb at 10
	if sc.ThumbPos() != 10 {
		t.Fatal(sc.ThumbPos())
	}

	if !sc.BeginDrag(75, true) {
		t.Fatal("expecting drag")
	}
	if sc.DragAnchor() != 15 {
		t.Fatal(sc.DragAnchor())
	}
	for _, d := range []float64{7, -3, 20} {
		sc.OnPointerMove(75 + d)
		if sc.ThumbPos() != 10+d {
			t.Fatalf("delta %v: %v", d, sc.ThumbPos())
		}
		checkCoupling(t, sc)
	}

	sc.EndDrag()
	if sc.Scrolling() || sc.DragAnchor() != 0 {
		t.Fatal(spew.Sdump(sc.Scrolling(), sc.DragAnchor()))
	}
	// moves are ignored after release
	sc.OnPointerMove(0)
	if sc.ThumbPos() != 30 {
		t.Fatal(sc.ThumbPos())
	}
}

func TestScrollBeginDragMiss(t *testing.T) {
	sc := newTestScrollContainer(250)
	if sc.BeginDrag(10, false) {
		t.Fatal("expecting no drag")
	}
	sc.SetScrollingEnabled(false)
	if sc.BeginDrag(10, true) {
		t.Fatal("expecting no drag with scrolling disabled")
	}
}

func TestScrollListeners(t *testing.T) {
	sc := newTestScrollContainer(250)
	calls := []string{}
	id1 := sc.AddScrollListener(func(*ScrollContainer) { calls = append(calls, "a") })
	sc.AddScrollListener(func(sc2 *ScrollContainer) {
		if sc2 != sc {
			t.Fatal("unexpected container")
		}
		calls = append(calls, "b")
	})

	sc.moveScrollbar(20)
	sc.moveScrollbar(20) // no change
	if len(calls) != 2 || calls[0] != "a" || calls[1] != "b" {
		t.Fatal(calls)
	}

	sc.RemoveScrollListener(id1)
	sc.moveScrollbar(30)
	if len(calls) != 3 || calls[2] != "b" {
		t.Fatal(calls)
	}
}

func TestScrollListenerRemovesItself(t *testing.T) {
	sc := newTestScrollContainer(250)
	n := 0
	var id ListenerID
	id = sc.AddScrollListener(func(sc *ScrollContainer) {
		n++
		sc.RemoveScrollListener(id)
	})
	m := 0
	sc.AddScrollListener(func(*ScrollContainer) { m++ })
	sc.moveScrollbar(10)
	sc.moveScrollbar(20)
	if n != 1 || m != 2 {
		t.Fatal(n, m)
	}
}

func TestScrollListenerMutatesChilds(t *testing.T) {
	sc := newTestScrollContainer(250)
	n := 0
	sc.AddScrollListener(func(sc *ScrollContainer) {
		n++
		if n == 1 {
			sc.RemoveAll()
			if !sc.Scrollable() {
				t.Fatal("expecting recompute to be delayed")
			}
		}
	})
	sc.moveScrollbar(60)
	if sc.Scrollable() {
		t.Fatal("expecting not scrollable")
	}
	if sc.ScrollOffset() != 0 {
		t.Fatal(sc.ScrollOffset())
	}
	// second call reports the snap to the top
	if n != 2 {
		t.Fatal(n)
	}
}

func TestScrollListenerGrowsChildsForever(t *testing.T) {
	sc := newTestScrollContainer(250)
	sc.moveScrollbar(30)
	calls := 0
	y := 250.0
	sc.AddScrollListener(func(sc *ScrollContainer) {
		calls++
		sc.Append(newRect(y, 10)) // moves the content on every recompute
		y += 10
	})
	sc.moveScrollbar(31)
	if calls != maxNotifyRounds {
		t.Fatal(calls)
	}
	if sc.ContentHeight() != 250+10*maxNotifyRounds {
		t.Fatal(sc.ContentHeight())
	}
	checkCoupling(t, sc)

	// at the top the content stays put, one round only
	sc.moveScrollbar(0)
	if calls != maxNotifyRounds+1 {
		t.Fatal(calls)
	}
}

func TestScrollMutationRecompute(t *testing.T) {
	sc := newTestScrollContainer(0)
	if sc.Scrollable() || sc.ContentHeight() != 0 {
		t.Fatal(sc.Scrollable(), sc.ContentHeight())
	}

	r1 := newRect(0, 50)
	sc.Append(r1)
	if sc.Scrollable() {
		t.Fatal("expecting not scrollable")
	}

	r2 := newRect(60, 80)
	sc.Append(r2)
	if !sc.Scrollable() || !sc.Thumb().Visible() {
		t.Fatal("expecting scrollable with visible thumb")
	}
	if sc.ContentHeight() != 140 {
		t.Fatal(sc.ContentHeight())
	}
	if len(sc.Children()) != 2 {
		t.Fatal(len(sc.Children()))
	}
	if r2.Parent != sc.Content().Embed() {
		t.Fatal("expecting content to be the parent")
	}

	sc.ScrollToBottom()
	if !almostEqual(sc.ScrollOffset(), 40) {
		t.Fatal(sc.ScrollOffset())
	}

	sc.Remove(r2)
	if r2.Parent != nil {
		t.Fatal("expecting parent to be cleared")
	}
	if sc.Scrollable() || sc.ScrollOffset() != 0 {
		t.Fatal(sc.Scrollable(), sc.ScrollOffset())
	}

	sc.Append(r2)
	sc.ScrollToBottom()
	sc.RemoveAll()
	if sc.Scrollable() || sc.ScrollOffset() != 0 || sc.Thumb().Visible() {
		t.Fatal(sc.Scrollable(), sc.ScrollOffset(), sc.Thumb().Visible())
	}
	if r1.Parent != nil || r2.Parent != nil {
		t.Fatal("expecting parents to be cleared")
	}
	if len(sc.Children()) != 0 {
		t.Fatal(len(sc.Children()))
	}
}

func TestScrollReclampOnShrink(t *testing.T) {
	sc := newTestScrollContainer(0)
	r1 := newRect(0, 150)
	r2 := newRect(150, 100)
	sc.Append(r1, r2)
	sc.moveScrollbar(60) // bottom
	if sc.ThumbPos() != 60 {
		t.Fatal(sc.ThumbPos())
	}

	sc.Remove(r2)
	if sc.Multiplier() != 1.5 {
		t.Fatal(sc.Multiplier())
	}
	if !almostEqual(sc.ThumbPos(), 100-100/1.5) {
		t.Fatal(sc.ThumbPos())
	}
	if !almostEqual(sc.ScrollOffset(), 50) {
		t.Fatal(sc.ScrollOffset())
	}
	checkCoupling(t, sc)
}

func TestScrollWheel(t *testing.T) {
	sc := newTestScrollContainer(50)
	for _, d := range []int{-1000, -10, 10, 1000} {
		if sc.OnWheel(d, true) {
			t.Fatal("expecting no-op wheel")
		}
		if sc.ScrollOffset() != 0 {
			t.Fatal(sc.ScrollOffset())
		}
	}

	sc = newTestScrollContainer(250)
	sc.OnWheel(-100, true)
	if sc.ThumbPos() != 10 || sc.ScrollOffset() != 25 {
		t.Fatal(sc.ThumbPos(), sc.ScrollOffset())
	}
	sc.OnWheel(5, true) // less than one unit
	if sc.ThumbPos() != 10 {
		t.Fatal(sc.ThumbPos())
	}
	sc.OnWheel(40, true)
	if sc.ThumbPos() != 6 {
		t.Fatal(sc.ThumbPos())
	}
	sc.OnWheel(-100, false)
	if sc.ThumbPos() != 6 {
		t.Fatal(sc.ThumbPos())
	}
	sc.OnWheel(1000, true)
	if sc.ThumbPos() != 0 {
		t.Fatal(sc.ThumbPos())
	}

	sc.SetScrollingEnabled(false)
	if sc.OnWheel(-100, true) {
		t.Fatal("expecting no-op wheel")
	}
}

func TestScrollbarDisabled(t *testing.T) {
	sc := newTestScrollContainer(250)
	sc.SetScrollbarEnabled(false)
	if sc.Thumb().Visible() {
		t.Fatal("expecting hidden thumb")
	}
	if !sc.Scrollable() || !sc.ScrollingEnabled() {
		t.Fatal("expecting scrolling to stay enabled")
	}
	// wheel keeps working
	sc.OnWheel(-100, true)
	if sc.ScrollOffset() != 25 {
		t.Fatal(sc.ScrollOffset())
	}
	sc.SetScrollbarEnabled(true)
	if !sc.Thumb().Visible() {
		t.Fatal("expecting visible thumb")
	}
	if sc.ScrollOffset() != 25 {
		t.Fatal(sc.ScrollOffset())
	}
}

func TestScrollMinThumbHeight(t *testing.T) {
	sc := newTestScrollContainer(10000)
	if sc.ThumbHeight() != 10 {
		t.Fatal(sc.ThumbHeight())
	}
	if sc.Multiplier() != 110 {
		t.Fatal(sc.Multiplier())
	}
	sc.ScrollToBottom()
	if sc.ScrollOffset() != 9900 {
		t.Fatal(sc.ScrollOffset())
	}
}

func TestScrollTo(t *testing.T) {
	sc := newTestScrollContainer(250)
	sc.ScrollTo(50)
	if sc.ThumbPos() != 20 || sc.ScrollOffset() != 50 {
		t.Fatal(sc.ThumbPos(), sc.ScrollOffset())
	}
	sc.ScrollTo(1e6)
	if sc.ScrollOffset() != 150 {
		t.Fatal(sc.ScrollOffset())
	}
	sc.ScrollToTop()
	if sc.ScrollOffset() != 0 {
		t.Fatal(sc.ScrollOffset())
	}
}

func TestScrollSetSize(t *testing.T) {
	sc := newTestScrollContainer(250)
	sc.SetSize(mathutil.PF(100, 300))
	if sc.Scrollable() {
		t.Fatal("expecting not scrollable")
	}
	if sc.Thumb().Pos.X != 100-sc.Options().ThumbWidth {
		t.Fatal(sc.Thumb().Pos.X)
	}
	sc.SetSize(mathutil.PF(100, 0))
	if sc.Scrollable() || sc.Multiplier() != 1 {
		t.Fatal("expecting zero height viewport to not scroll")
	}
}

func TestScrollPlaceholder(t *testing.T) {
	sc := NewPlaceholderScrollContainer(nil, nil)
	if sc.ScrollingEnabled() || sc.ScrollbarEnabled() {
		t.Fatal("expecting disabled")
	}
	sc.Append(newRect(0, 250))
	if sc.Scrollable() || sc.Multiplier() != 1 || sc.Thumb().Visible() {
		t.Fatal(sc.Scrollable(), sc.Multiplier())
	}
	if sc.BeginDrag(10, true) {
		t.Fatal("expecting no drag")
	}
}

func TestScrollChildOrder(t *testing.T) {
	sc := newTestScrollContainer(0)
	if sc.FirstChild() != sc.Content().Embed() || sc.LastChild() != sc.Thumb().Embed() {
		t.Fatal("expecting content then thumb")
	}
	r1, r2 := newRect(0, 10), newRect(10, 10)
	sc.Append(r1)
	sc.InsertBefore(r2, r1.Embed())
	w := sc.Children()
	if w[0] != Node(r2) || w[1] != Node(r1) {
		t.Fatal(spew.Sdump(w))
	}
}

func TestThumbGeometry(t *testing.T) {
	th, m := thumbGeometry(250, 100, 10)
	if th != 40 || m != 2.5 {
		t.Fatal(th, m)
	}
	// floor limited to half the viewport
	th, m = thumbGeometry(1000, 10, 30)
	if th != 5 || m != 198 {
		t.Fatal(th, m)
	}
}
