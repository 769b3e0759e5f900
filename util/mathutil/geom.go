package mathutil

import (
	"fmt"
	"image"
	"math"
)

// Float based point. Toolkit coordinates have the origin at the top-left.
type PointF struct {
	X, Y float64
}

func PF(x, y float64) PointF {
	return PointF{x, y}
}
func PF2(p image.Point) PointF {
	return PointF{float64(p.X), float64(p.Y)}
}

func (p PointF) Add(q PointF) PointF {
	return PointF{p.X + q.X, p.Y + q.Y}
}
func (p PointF) Sub(q PointF) PointF {
	return PointF{p.X - q.X, p.Y - q.Y}
}

func (p PointF) In(r RectF) bool {
	return r.Min.X <= p.X && p.X < r.Max.X && r.Min.Y <= p.Y && p.Y < r.Max.Y
}

func (p PointF) ToPointFloor() image.Point {
	return image.Point{int(math.Floor(p.X)), int(math.Floor(p.Y))}
}
func (p PointF) ToPointCeil() image.Point {
	return image.Point{int(math.Ceil(p.X)), int(math.Ceil(p.Y))}
}

func (p PointF) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

//----------

type RectF struct {
	Min, Max PointF
}

func RF(pos, size PointF) RectF {
	return RectF{pos, pos.Add(size)}
}
func RF2(r image.Rectangle) RectF {
	return RectF{PF2(r.Min), PF2(r.Max)}
}

func (r RectF) Size() PointF {
	return r.Max.Sub(r.Min)
}
func (r RectF) Dy() float64 {
	return r.Max.Y - r.Min.Y
}

func (r RectF) Add(p PointF) RectF {
	return RectF{r.Min.Add(p), r.Max.Add(p)}
}
func (r RectF) Sub(p PointF) RectF {
	return RectF{r.Min.Sub(p), r.Max.Sub(p)}
}

func (r RectF) Intersect(s RectF) RectF {
	if r.Min.X < s.Min.X {
		r.Min.X = s.Min.X
	}
	if r.Min.Y < s.Min.Y {
		r.Min.Y = s.Min.Y
	}
	if r.Max.X > s.Max.X {
		r.Max.X = s.Max.X
	}
	if r.Max.Y > s.Max.Y {
		r.Max.Y = s.Max.Y
	}
	if r.Empty() {
		return RectF{}
	}
	return r
}

func (r RectF) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

func (r RectF) ToRectFloorCeil() image.Rectangle {
	min := r.Min.ToPointFloor()
	max := r.Max.ToPointCeil()
	return image.Rectangle{min, max}
}

func (r RectF) String() string {
	return fmt.Sprintf("%v-%v", r.Min, r.Max)
}
