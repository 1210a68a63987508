// SPDX-License-Identifier: MIT

package geometry

import "errors"

// Sentinel errors. Constructors return them directly; callers match with errors.Is.
var (
	// ErrNonFinite indicates a NaN or ±Inf coefficient.
	ErrNonFinite = errors.New("geometry: coefficient is NaN or Inf")

	// ErrDegenerateLine indicates a constraint whose normal (A, B) is the zero vector.
	ErrDegenerateLine = errors.New("geometry: constraint has zero normal")

	// ErrZeroObjective indicates an objective with both coefficients equal to zero.
	ErrZeroObjective = errors.New("geometry: objective is the zero vector")
)

const (
	// EqualityDelta is the absolute tolerance of Point.Equal. It is coarse on
	// purpose: it absorbs the rounding of chained intersections.
	EqualityDelta = 0.01

	// Epsilon is the relative tolerance used for structural comparisons
	// (coincident bounds, admission of a point by a constraint).
	Epsilon = 1e-9

	// parallelTol is the relative tolerance on the cross product of two normals.
	parallelTol = 1e-12
)

// Side tells which side of an axis satisfies a constraint along almost all
// of that axis.
//
//   - Minus   – coefficient > 0: the constraint cuts off the positive end and
//     admits the whole negative end.
//   - Neither – coefficient = 0: the boundary is parallel to that axis.
//   - Plus    – coefficient < 0: the constraint admits the positive end.
type Side int

const (
	Plus    Side = -1
	Neither Side = 0
	Minus   Side = 1
)

// String implements fmt.Stringer.
func (s Side) String() string {
	switch s {
	case Plus:
		return "plus"
	case Minus:
		return "minus"
	default:
		return "neither"
	}
}

// sideOf classifies a single coefficient.
func sideOf(v float64) Side {
	switch {
	case v < 0:
		return Plus
	case v == 0:
		return Neither
	default:
		return Minus
	}
}

// IntersectionKind classifies the intersection of two constraint boundaries.
type IntersectionKind int

const (
	// IntersectNone – parallel, non-coincident boundaries.
	IntersectNone IntersectionKind = iota
	// IntersectPoint – boundaries cross in a single point.
	IntersectPoint
	// IntersectOverlay – boundaries coincide.
	IntersectOverlay
)

// String implements fmt.Stringer.
func (k IntersectionKind) String() string {
	switch k {
	case IntersectPoint:
		return "lines intersect in a point"
	case IntersectOverlay:
		return "lines are overlaid"
	default:
		return "lines do not intersect (parallel)"
	}
}

// Intersection is the result of Intersect. Point is meaningful only when
// Kind is IntersectPoint (a vertex) or IntersectOverlay (a reference point
// on the shared line).
type Intersection struct {
	Point Point
	Kind  IntersectionKind
}
