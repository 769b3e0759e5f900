package event

import (
	"github.com/jmigpin/scrollview/util/mathutil"
)

//----------

type WindowClose struct{}
type WindowExpose struct{}

// Input as delivered by the driver. The point is in screen space (origin at the bottom-left).
type WindowInput struct {
	Point mathutil.PointF
	Event interface{}
}

//----------

type Handle bool

const (
	NotHandled Handle = false
	Handled    Handle = true
)

//----------

// Points of the events below are in toolkit space (origin at the top-left) once they reach the widgets.

type MouseDown struct {
	Point  mathutil.PointF
	Button MouseButton
}
type MouseUp struct {
	Point  mathutil.PointF
	Button MouseButton
}
type MouseMove struct {
	Point   mathutil.PointF
	Buttons MouseButtons
}

// Delta is in wheel units as reported by the driver. Positive values scroll up.
type MouseWheel struct {
	Point mathutil.PointF
	Delta int
}

type KeyDown struct {
	Point  mathutil.PointF
	KeySym KeySym
}

//----------

// Returns a copy of the event with its point replaced. Unknown events are returned unchanged.
func WithPoint(ev interface{}, p mathutil.PointF) interface{} {
	switch t := ev.(type) {
	case *MouseDown:
		u := *t
		u.Point = p
		return &u
	case *MouseUp:
		u := *t
		u.Point = p
		return &u
	case *MouseMove:
		u := *t
		u.Point = p
		return &u
	case *MouseWheel:
		u := *t
		u.Point = p
		return &u
	case *KeyDown:
		u := *t
		u.Point = p
		return &u
	}
	return ev
}
