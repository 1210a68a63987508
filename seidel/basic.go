// SPDX-License-Identifier: MIT

package seidel

import (
	"log/slog"
	"slices"

	"github.com/katalvlaran/planelp/geometry"
	"github.com/katalvlaran/planelp/program"
)

// findBasicSolution runs phase 1: it picks the constraints that bound the
// start region, closes whatever stays open with sentinels, and sets the
// best admitted vertex as the initial solution. Everything it does not
// apply is left in s.pending, in the original order.
func (s *state) findBasicSolution() {
	if len(s.input) == 0 {
		s.log.Debug("seidel: no constraints")
		s.status = program.Unbounded

		return
	}

	var hasX, hasY bool
	rest := make([]geometry.Constraint, 0, len(s.input))
	for _, k := range s.input {
		switch k {
		case geometry.AxisX:
			hasX = true
			s.applied = append(s.applied, k)
		case geometry.AxisY:
			hasY = true
			s.applied = append(s.applied, k)
		default:
			rest = append(rest, k)
		}
	}

	picked, xs, ys := scanBounding(rest)
	for _, i := range picked {
		s.applied = append(s.applied, rest[i])
		s.log.Debug("seidel: bounding constraint", slog.String("constraint", rest[i].String()))
	}
	for i, k := range rest {
		if !slices.Contains(picked, i) {
			s.pending = append(s.pending, k)
		}
	}

	if len(picked) == 0 {
		if disjointPair(rest, xs, ys, s.tol) {
			s.log.Debug("seidel: mutually exclusive bounds")
			s.status = program.Infeasible

			return
		}
	}

	if len(picked) == 0 || !hasX || !hasY {
		m := sentinelBound(s.input)
		s.log.Debug("seidel: sentinel bound",
			slog.Float64("M", m), slog.Bool("axisX", hasX), slog.Bool("axisY", hasY))
		s.applied = append(s.applied, sentinels(m, len(picked) == 0, !hasX, !hasY)...)
	}

	cands := s.vertices()
	if len(cands) == 0 {
		s.log.Debug("seidel: empty start region")
		s.status = program.Infeasible

		return
	}
	s.solution = s.best(cands)
	s.log.Debug("seidel: basic solution", slog.String("point", s.solution.String()))
}

// scanBounding scans rest in order for the constraints that bound the
// positive quadrant: the first (Minus, Minus) constraint, or the first
// x-cutting / y-cutting pair that closes it. It returns the indices picked
// (none, one or two) and the x- and y-cutting constraints seen.
func scanBounding(rest []geometry.Constraint) (picked []int, xs, ys []int) {
	for i, k := range rest {
		sx, sy := k.Sides()
		switch {
		case sx == geometry.Minus && sy == geometry.Minus:
			return []int{i}, xs, ys
		case sx == geometry.Minus:
			for _, j := range ys {
				if closesQuadrant(k, rest[j]) {
					return []int{i, j}, xs, ys
				}
			}
			xs = append(xs, i)
		case sy == geometry.Minus:
			for _, j := range xs {
				if closesQuadrant(rest[j], k) {
					return []int{j, i}, xs, ys
				}
			}
			ys = append(ys, i)
		}
	}

	return nil, xs, ys
}

// closesQuadrant reports whether an x-cutting constraint xk and a y-cutting
// constraint yk cross and leave no unbounded direction inside x, y ≥ 0.
func closesQuadrant(xk, yk geometry.Constraint) bool {
	if geometry.Intersect(xk, yk).Kind != geometry.IntersectPoint {
		return false
	}

	return xk.A*yk.B-yk.A*xk.B > 0
}

// disjointPair reports whether some x-cutting and some y-cutting
// constraint of rest (given by index) exclude each other.
func disjointPair(rest []geometry.Constraint, xs, ys []int, tol float64) bool {
	for _, i := range xs {
		for _, j := range ys {
			if geometry.Disjoint(rest[i], rest[j], tol) {
				return true
			}
		}
	}

	return false
}

// vertices returns every crossing of two applied boundaries that all
// applied constraints admit.
func (s *state) vertices() []geometry.Point {
	var out []geometry.Point
	for i := 0; i < len(s.applied); i++ {
		for j := i + 1; j < len(s.applied); j++ {
			in := geometry.Intersect(s.applied[i], s.applied[j])
			if in.Kind == geometry.IntersectPoint && s.admitted(in.Point) {
				out = append(out, in.Point)
			}
		}
	}

	return out
}
