package mathutil

import "cmp"

func LimitFloat64(v float64, min, max float64) float64 {
	return Limit(v, min, max)
}

func Limit[T cmp.Ordered](v, min, max T) T {
	if v < min {
		return min
	} else if v > max {
		return max
	}
	return v
}
