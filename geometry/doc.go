// SPDX-License-Identifier: MIT

// Package geometry is the planar kernel used by the LP solvers.
//
// It provides value types only, no state:
//
//   - Point      – (x, y) with approximate equality and a legality test (x, y ≥ 0).
//   - Line       – coefficients (A, B) of A·x + B·y, embedded by the two model types.
//   - Constraint – half-plane A·x + B·y ≤ C with Sides, Contains and Intersect.
//   - Target     – objective A·x + B·y to maximize, evaluated with F.
//
// Intersect classifies every pairing of generic, horizontal and vertical
// boundaries, and of same-direction, opposite-direction and crossing normals:
//
//	IntersectPoint   – the boundaries cross in exactly one point.
//	IntersectOverlay – the boundaries are the same line.
//	IntersectNone    – parallel, distinct boundaries (point is meaningless).
//
// IntersectNone deliberately covers both antiparallel sub-cases: a common
// stripe and two half-planes that exclude each other. Use Disjoint to tell
// them apart.
//
// Complexity: every operation is O(1) except ImprovingDirection, which is
// O(n²) in the number of constraints.
package geometry
