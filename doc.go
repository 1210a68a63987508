// SPDX-License-Identifier: MIT

// Package planelp solves two-variable linear programs with Seidel's
// randomized incremental algorithm, specialised to the plane.
//
// 🚀 What is planelp?
//
//	A small, correctness-first LP toolkit:
//		• Geometry kernel: points, lines, half-plane constraints, intersections
//		• Linear programs: objective + constraints + seeded random order
//		• Seidel method: expected O(n) incremental solving
//		• Vertex enumeration: O(n³) reference method for cross-checks
//		• Program files: "!id" text sections and YAML documents
//
// Every degeneracy is classified explicitly (parallel, coincident and
// axis-aligned boundaries, redundant constraints); no numerical LP library
// sits in the solving path.
//
// Under the hood, everything is organized under these subpackages:
//
//	geometry/    – Point, Line, Constraint, Target, Intersect, Disjoint
//	program/     – LinearProgram, Status, Result, seeded shuffling
//	seidel/      – the incremental solving method
//	vertexenum/  – brute-force reference method
//	solver/      – driver binding a method to a program
//	programfile/ – readers for program definition files
//
// Quick example:
//
//	maximize 2x + y
//	     x       ≤ 1.8
//	    -x + 3y  ≤ 0
//	     x, y    ≥ 0
//
// has its optimum at (1.8, 0.6) with objective value 4.2.
//
// Logging is silent by default; install a *slog.Logger with SetLogger to
// trace the solver step by step.
package planelp
