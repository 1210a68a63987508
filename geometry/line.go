// SPDX-License-Identifier: MIT

package geometry

import "math"

// Line holds the coefficients of the homogeneous form A·x + B·y.
// It is never used on its own: Constraint and Target embed it.
type Line struct {
	A, B float64
}

// Slope returns −A/B. It is ±Inf for vertical lines (B = 0); callers that
// care must test Vertical first.
func (l Line) Slope() float64 {
	return -l.A / l.B
}

// Horizontal reports whether the boundary A·x + B·y = c is horizontal (A = 0).
func (l Line) Horizontal() bool {
	return l.A == 0
}

// Vertical reports whether the boundary A·x + B·y = c is vertical (B = 0).
func (l Line) Vertical() bool {
	return l.B == 0
}

// Normal returns (A, B) as a vector.
func (l Line) Normal() Point {
	return Point{X: l.A, Y: l.B}
}

// Parallel reports whether l and o have parallel normals, same or opposite
// direction. Scaled copies (2x+2y vs x+y) count as parallel.
func (l Line) Parallel(o Line) bool {
	return parallel(l, o)
}

// cross returns A₁·B₂ − A₂·B₁.
func cross(l, o Line) float64 {
	return l.A*o.B - o.A*l.B
}

func parallel(l, o Line) bool {
	c := cross(l, o)
	if c == 0 {
		return true
	}

	return math.Abs(c) <= parallelTol*l.Normal().Length()*o.Normal().Length()
}

// valid reports whether the normal is finite and non-zero.
func (l Line) valid() error {
	if isNonFinite(l.A) || isNonFinite(l.B) {
		return ErrNonFinite
	}
	if l.A == 0 && l.B == 0 {
		return ErrDegenerateLine
	}

	return nil
}

// String renders "Ax + By".
func (l Line) String() string {
	return formatFloat(l.A) + "x + " + formatFloat(l.B) + "y"
}

func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
