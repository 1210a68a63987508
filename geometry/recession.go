// SPDX-License-Identifier: MIT

package geometry

// ImprovingDirection looks for a recession ray of the region cut out by cs
// along which the objective grows: a unit direction d with n·d ≤ tol for
// every constraint normal n and t·d > tol. If the region is non-empty and
// such a ray exists, the program is unbounded.
//
// The candidate rays are t itself plus both directions along every
// boundary. A polyhedral cone in the plane is either the whole plane
// (t works), a half-plane or a line (a boundary direction works unless t is
// a non-negative multiple of the blocking normal), or a pointed cone whose
// extreme rays lie on boundaries; a linear function positive somewhere on a
// pointed cone is positive on one of its extreme rays.
//
// Complexity: O(n²) for n constraints.
func ImprovingDirection(t Target, cs []Constraint, tol float64) (Point, bool) {
	tn := unit(t.Normal())

	candidates := make([]Point, 0, 1+2*len(cs))
	candidates = append(candidates, tn)
	var k Constraint
	for _, k = range cs {
		n := unit(k.Normal())
		candidates = append(candidates, Point{X: n.Y, Y: -n.X}, Point{X: -n.Y, Y: n.X})
	}

	var d Point
	for _, d = range candidates {
		if tn.Dot(d) <= tol {
			continue
		}
		if recedes(d, cs, tol) {
			return d, true
		}
	}

	return Point{}, false
}

// recedes reports whether moving along d never leaves any half-plane in cs.
func recedes(d Point, cs []Constraint, tol float64) bool {
	var k Constraint
	for _, k = range cs {
		if unit(k.Normal()).Dot(d) > tol {
			return false
		}
	}

	return true
}

// unit scales p to length one. Callers guarantee p ≠ 0.
func unit(p Point) Point {
	l := p.Length()

	return Point{X: p.X / l, Y: p.Y / l}
}
