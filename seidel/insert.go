// SPDX-License-Identifier: MIT

package seidel

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/planelp/geometry"
	"github.com/katalvlaran/planelp/program"
)

// end is one end of the feasible segment on a cut boundary: the crossing
// with the applied boundary that limits it, and its position along the line.
type end struct {
	at  float64
	p   geometry.Point
	set bool
}

// insert runs one phase 2 step for constraint c.
//
// If c admits the current solution it is applied as is. Otherwise the new
// optimum lies on the boundary of c, at one of the crossings with an
// applied boundary that every applied constraint admits. Those crossings
// are exactly the two ends of the boundary clipped by the applied
// half-planes, so the step walks the applied list once:
//
//   - IntersectOverlay: the boundaries coincide, nothing to clip.
//   - IntersectNone: a parallel half-plane either contains the whole
//     boundary or misses it; missing it makes the program infeasible.
//   - IntersectPoint: the crossing bounds the segment from one side,
//     chosen by the sign of the applied normal along the boundary.
//
// An empty segment is Infeasible; otherwise the better end wins.
//
// Complexity: O(len(applied)).
func (s *state) insert(c geometry.Constraint) {
	if c.Admits(s.solution, s.tol) {
		s.applied = append(s.applied, c)
		s.log.Debug("seidel: applied", slog.String("constraint", c.String()))

		return
	}

	n := c.Normal()
	l := n.Length()
	dir := geometry.Point{X: -n.Y / l, Y: n.X / l}
	base := c.Foot()

	var lo, hi end
	for _, a := range s.applied {
		in := geometry.Intersect(c, a)
		switch in.Kind {
		case geometry.IntersectOverlay:
			continue
		case geometry.IntersectNone:
			if geometry.Disjoint(c, a, s.tol) || !a.Admits(base, s.tol) {
				s.infeasible(c, a)

				return
			}
		case geometry.IntersectPoint:
			at := (in.Point.X-base.X)*dir.X + (in.Point.Y-base.Y)*dir.Y
			if a.Normal().Dot(dir) > 0 {
				if !hi.set || at < hi.at {
					hi = end{at: at, p: in.Point, set: true}
				}
			} else if !lo.set || at > lo.at {
				lo = end{at: at, p: in.Point, set: true}
			}
		}
	}

	cands := make([]geometry.Point, 0, 2)
	if lo.set {
		cands = append(cands, lo.p)
	}
	if hi.set {
		cands = append(cands, hi.p)
	}
	if len(cands) == 0 || lo.set && hi.set && lo.at > hi.at+s.tol*math.Max(1, math.Max(math.Abs(lo.at), math.Abs(hi.at))) {
		s.log.Debug("seidel: no feasible point on boundary", slog.String("constraint", c.String()))
		s.status = program.Infeasible

		return
	}

	s.solution = s.best(cands)
	s.applied = append(s.applied, c)
	s.log.Debug("seidel: cut",
		slog.String("constraint", c.String()), slog.String("solution", s.solution.String()))
}

// infeasible records that applied constraint a excludes the boundary of c.
func (s *state) infeasible(c, a geometry.Constraint) {
	s.log.Debug("seidel: excluded by parallel constraint",
		slog.String("constraint", c.String()), slog.String("by", a.String()))
	s.status = program.Infeasible
}
