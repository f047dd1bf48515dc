package simplify

import (
	"ecoroute/geo"
)

// DouglasPeucker reduces a polyline to the points that matter at the
// given tolerance. The first and last point are always retained,
// interior points are either kept or dropped, never moved, and input
// order is preserved.
//
// epsilon shares units with the input coordinates; picking a tolerance
// that fits the rendering scale is the caller's responsibility. With
// epsilon = 0 only exactly collinear interior points are dropped.
func DouglasPeucker(points geo.CoordArray, epsilon float64) geo.CoordArray {
	if len(points) == 0 {
		return nil
	}
	out := make(geo.CoordArray, 0, len(points))
	if len(points) <= 2 {
		return append(out, points...)
	}

	keep := make([]bool, len(points))
	keep[0] = true
	keep[len(points)-1] = true

	// iterative range subdivision, ranges held on an explicit stack
	type span struct {
		first int
		last  int
	}
	stack := make([]span, 0, len(points))
	stack = append(stack, span{0, len(points) - 1})
	eps2 := epsilon * epsilon
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		best := -1.0
		best_index := -1
		for i := s.first + 1; i < s.last; i++ {
			d2 := geo.DistToSegmentSquared(points[s.first], points[s.last], points[i])
			if d2 > best {
				best = d2
				best_index = i
			}
		}
		if best_index != -1 && best > eps2 {
			keep[best_index] = true
			stack = append(stack, span{s.first, best_index}, span{best_index, s.last})
		}
	}

	for i, p := range points {
		if keep[i] {
			out = append(out, p)
		}
	}
	return out
}
