// SPDX-License-Identifier: MIT

// Package seidel solves two-variable linear programs with Seidel's
// randomized incremental method, specialised to the plane.
//
// The method works on a constraint list whose order was randomized by the
// program (see package program); it never reorders the list itself.
//
// Phase 1 (basic solution):
//
//	– The axes x ≥ 0 / y ≥ 0, when present, are applied first.
//	– The list is scanned for one constraint cutting both positive ends
//	  (sides Minus, Minus) or for an x-cutting / y-cutting pair that closes
//	  the positive quadrant. Those constraints are applied.
//	– Without either, or with an axis suppressed, the missing directions are
//	  closed by sentinel bounds (x ≤ M, y ≤ M, −x ≤ M, −y ≤ M) far outside
//	  every vertex of the real constraints.
//	– The best vertex of the applied set that every applied constraint
//	  admits is the basic solution; no such vertex ⇒ Infeasible.
//
// Phase 2 (incremental insertion), LIFO from the remaining list:
//
//	– A constraint admitting the current solution is simply applied.
//	– Otherwise the new optimum lies on its boundary: every crossing with an
//	  applied boundary admitted by all applied constraints is a candidate,
//	  the best becomes the solution. No candidate, or an applied constraint
//	  whose half-plane excludes it entirely, ⇒ Infeasible.
//	– After the last constraint, an improving recession ray of the real
//	  constraints (sentinels excluded) ⇒ Unbounded, otherwise Optimal.
//
// Best candidate: larger objective value; ties within tolerance go to the
// point nearer the origin.
//
// Complexity:
//
//	– Time:  expected O(n) insertion under random order, O(n²) worst case,
//	         plus O(n²) for the sentinel bound when one is needed.
//	– Space: O(n).
//
// Options:
//
//	– WithTolerance: relative tolerance for admission and ties (default 1e-9).
//
// Progress is traced at debug level through planelp.Logger().
package seidel
