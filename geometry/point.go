// SPDX-License-Identifier: MIT

package geometry

import (
	"math"
	"strconv"
)

// Point is a position (or direction) in the plane.
type Point struct {
	X, Y float64
}

// Pt is a convenience constructor.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Legal reports whether p lies in the first quadrant (x ≥ 0 and y ≥ 0).
func (p Point) Legal() bool {
	return p.X >= 0 && p.Y >= 0
}

// Equal reports approximate equality within EqualityDelta on both axes.
func (p Point) Equal(q Point) bool {
	return math.Abs(p.X-q.X) < EqualityDelta && math.Abs(p.Y-q.Y) < EqualityDelta
}

// Dot returns the dot product of p and q seen as vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Length returns the Euclidean norm of p.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// String renders "(x, y)". Negative zero is printed as 0.
func (p Point) String() string {
	return "(" + formatFloat(p.X) + ", " + formatFloat(p.Y) + ")"
}

// formatFloat prints the shortest representation, folding -0 into 0.
func formatFloat(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
