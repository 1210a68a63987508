// SPDX-License-Identifier: MIT

package geometry

import "math"

const panicZeroDeterminant = "geometry: Intersect: zero determinant on non-parallel boundaries"

// Intersect intersects the boundary lines of two constraints and classifies
// the result.
//
// Algorithm:
//  1. If l2 is axis-aligned, swap the operands so the axis-aligned special
//     cases are always handled on the first one.
//  2. Parallel normals (cross product zero within a relative 1e-12):
//     - same direction: equal normalised bounds ⇒ IntersectOverlay, else IntersectNone;
//     - opposite direction: C₁/|n₁| = −C₂/|n₂| ⇒ IntersectOverlay, else IntersectNone.
//     An overlay reports the foot of the perpendicular from the origin onto
//     the shared line. IntersectNone reports the zero point, which must not
//     be used.
//  3. Horizontal first operand: y = C₁/B₁, then x from the second boundary.
//  4. Vertical first operand: x = C₁/A₁, then y from the second boundary.
//  5. Generic: x = (B₁C₂ − B₂C₁) / (A₂B₁ − A₁B₂), y from the first boundary.
//
// Only the six coefficients are used; no matrix inversion.
//
// Complexity: O(1).
func Intersect(l1, l2 Constraint) Intersection {
	if l2.Horizontal() || l2.Vertical() {
		l1, l2 = l2, l1
	}

	if parallel(l1.Line, l2.Line) {
		return intersectParallel(l1, l2)
	}

	var x, y float64
	switch {
	case l1.Horizontal():
		y = l1.C / l1.B
		if l2.Vertical() {
			x = l2.C / l2.A
		} else {
			x = l2.AtY(y)
		}
	case l1.Vertical():
		x = l1.C / l1.A
		if l2.Horizontal() {
			y = l2.C / l2.B
		} else {
			y = l2.AtX(x)
		}
	default:
		den := l2.A*l1.B - l1.A*l2.B
		if den == 0 {
			// parallel() already caught every zero cross product.
			panic(panicZeroDeterminant)
		}
		x = (l1.B*l2.C - l2.B*l1.C) / den
		y = l1.AtX(x)
	}

	return Intersection{Point: Point{X: x, Y: y}, Kind: IntersectPoint}
}

// intersectParallel classifies two constraints whose normals are parallel.
func intersectParallel(l1, l2 Constraint) Intersection {
	d1 := l1.C / l1.Normal().Length()
	d2 := l2.C / l2.Normal().Length()

	if l1.Normal().Dot(l2.Normal()) > 0 {
		if closeTo(d1, d2) {
			return Intersection{Point: foot(l1), Kind: IntersectOverlay}
		}

		return Intersection{Kind: IntersectNone}
	}

	// Opposite directions: a·x+b·y ≤ c₁ against −a·x−b·y ≤ c₂. The two
	// half-planes either share only the boundary, share a stripe, or miss
	// each other; the last two both report IntersectNone.
	if closeTo(d1, -d2) {
		return Intersection{Point: foot(l1), Kind: IntersectOverlay}
	}

	return Intersection{Kind: IntersectNone}
}

// Disjoint reports whether two half-planes have no point in common. Only
// antiparallel constraints can be disjoint: k bounds u·p from above, o
// bounds it from below, and the bounds cross. Same-direction parallels are
// nested and crossing boundaries always meet.
func Disjoint(k, o Constraint, tol float64) bool {
	if !parallel(k.Line, o.Line) || k.Normal().Dot(o.Normal()) > 0 {
		return false
	}
	upper := k.C / k.Normal().Length()
	lower := -o.C / o.Normal().Length()

	return upper < lower-tol*math.Max(1, math.Max(math.Abs(upper), math.Abs(lower)))
}

// foot returns the point of the boundary of k closest to the origin.
func foot(k Constraint) Point {
	n2 := k.A*k.A + k.B*k.B

	return Point{X: k.A * k.C / n2, Y: k.B * k.C / n2}
}

// closeTo compares two bounds with the relative Epsilon.
func closeTo(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}
