// SPDX-License-Identifier: MIT

package seidel

import (
	"math"

	"github.com/katalvlaran/planelp/geometry"
)

// sentinelScale is how far the sentinel box lies beyond the farthest
// reference point of the real constraints.
const sentinelScale = 4

// sentinelBound returns M, the half-width of the sentinel box.
//
// Every vertex of the real region is a crossing of two real boundaries, and
// a non-empty region without vertices (all normals parallel) contains the
// foot of one of its boundaries. Both kinds of points lie strictly inside
// [−M, M]², so the box never cuts off a feasible optimum and never empties
// a non-empty region.
//
// Complexity: O(n²).
func sentinelBound(cs []geometry.Constraint) float64 {
	r := 1.0
	grow := func(p geometry.Point) {
		if math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) || math.IsNaN(p.X) || math.IsNaN(p.Y) {
			return
		}
		r = math.Max(r, math.Max(math.Abs(p.X), math.Abs(p.Y)))
	}

	for i := range cs {
		grow(cs[i].Foot())
		for j := i + 1; j < len(cs); j++ {
			if in := geometry.Intersect(cs[i], cs[j]); in.Kind == geometry.IntersectPoint {
				grow(in.Point)
			}
		}
	}

	return sentinelScale * r
}

// sentinels builds the synthetic bounds: x ≤ M and y ≤ M when top is set,
// −x ≤ M and −y ≤ M for each suppressed axis.
func sentinels(m float64, top, negX, negY bool) []geometry.Constraint {
	out := make([]geometry.Constraint, 0, 4)
	if top {
		out = append(out,
			geometry.Constraint{Line: geometry.Line{A: 1}, C: m},
			geometry.Constraint{Line: geometry.Line{B: 1}, C: m},
		)
	}
	if negX {
		out = append(out, geometry.Constraint{Line: geometry.Line{A: -1}, C: m})
	}
	if negY {
		out = append(out, geometry.Constraint{Line: geometry.Line{B: -1}, C: m})
	}

	return out
}
