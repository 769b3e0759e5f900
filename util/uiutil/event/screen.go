package event

import "github.com/jmigpin/scrollview/util/mathutil"

// Screen coordinates have the origin at the bottom-left, toolkit coordinates at the top-left. This is the only place where the flip happens.
type ScreenFrame struct {
	Height float64
}

func (sf ScreenFrame) ToTopY(y float64) float64 {
	return sf.Height - y
}

func (sf ScreenFrame) ToTop(p mathutil.PointF) mathutil.PointF {
	return mathutil.PointF{X: p.X, Y: sf.ToTopY(p.Y)}
}

// Inverse of ToTop. Used to produce screen-space input from toolkit points.
func (sf ScreenFrame) ToScreen(p mathutil.PointF) mathutil.PointF {
	return mathutil.PointF{X: p.X, Y: sf.Height - p.Y}
}
