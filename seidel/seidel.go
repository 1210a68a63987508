// SPDX-License-Identifier: MIT

package seidel

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/planelp"
	"github.com/katalvlaran/planelp/geometry"
	"github.com/katalvlaran/planelp/program"
)

// Name is the method name reported by (*Method).Name.
const Name = "seidel"

// Method is the Seidel solving method. The zero value is not usable; build
// it with New. A Method holds only configuration and may be shared.
type Method struct {
	opts Options
}

// New returns a Method configured by opts.
func New(opts ...Option) *Method {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Method{opts: o}
}

// Name returns "seidel".
func (m *Method) Name() string {
	return Name
}

// Tolerance returns the configured relative tolerance.
func (m *Method) Tolerance() float64 {
	return m.opts.Tolerance
}

// Solve maximizes t over the constraints in cs, in the given order.
//
// cs is not modified. An invalid target or constraint is an error; every
// LP outcome (including Infeasible and Unbounded) is a Result.
func (m *Method) Solve(t geometry.Target, cs []geometry.Constraint) (program.Result, error) {
	if err := t.Validate(); err != nil {
		return program.Result{}, fmt.Errorf("seidel: objective: %w", err)
	}
	for i, k := range cs {
		if err := k.Validate(); err != nil {
			return program.Result{}, fmt.Errorf("seidel: constraint %d: %w", i, err)
		}
	}

	s := newState(t, cs, m.opts.Tolerance)
	s.findBasicSolution()
	for s.status == program.NotSolved && len(s.pending) > 0 {
		s.insert(s.pop())
	}
	s.conclude()

	s.log.Debug("seidel: done", slog.String("status", s.status.String()))
	if s.status != program.Optimal {
		return program.Outcome(s.status), nil
	}

	return program.Solved(t, s.solution), nil
}

// state is the working set of one solve.
type state struct {
	t   geometry.Target
	tol float64
	log *slog.Logger

	input   []geometry.Constraint // the caller's constraints, for the final recession test
	pending []geometry.Constraint // not yet applied; popped from the end
	applied []geometry.Constraint // the current region, sentinels included

	status   program.Status
	solution geometry.Point
}

func newState(t geometry.Target, cs []geometry.Constraint, tol float64) *state {
	input := make([]geometry.Constraint, len(cs))
	copy(input, cs)

	return &state{
		t:       t,
		tol:     tol,
		log:     planelp.Logger(),
		input:   input,
		pending: make([]geometry.Constraint, 0, len(cs)),
		applied: make([]geometry.Constraint, 0, 6),
		status:  program.NotSolved,
	}
}

// pop removes and returns the last pending constraint.
func (s *state) pop() geometry.Constraint {
	last := len(s.pending) - 1
	c := s.pending[last]
	s.pending = s.pending[:last]

	return c
}

// admitted reports whether every applied constraint admits p.
func (s *state) admitted(p geometry.Point) bool {
	for _, a := range s.applied {
		if !a.Admits(p, s.tol) {
			return false
		}
	}

	return true
}

// better reports whether p beats q: a larger objective value, or a tie
// within tolerance and p nearer the origin.
func (s *state) better(p, q geometry.Point) bool {
	fp, fq := s.t.F(p), s.t.F(q)
	scale := fq
	if scale < 0 {
		scale = -scale
	}
	if scale < 1 {
		scale = 1
	}
	switch {
	case fp > fq+s.tol*scale:
		return true
	case fp < fq-s.tol*scale:
		return false
	default:
		return p.Dot(p) < q.Dot(q)
	}
}

// best returns the best of a non-empty candidate list.
func (s *state) best(cands []geometry.Point) geometry.Point {
	b := cands[0]
	for _, p := range cands[1:] {
		if s.better(p, b) {
			b = p
		}
	}

	return b
}

// conclude settles a program that ran out of constraints without a
// verdict: an improving recession ray of the real constraints means
// Unbounded, anything else Optimal.
func (s *state) conclude() {
	if s.status != program.NotSolved {
		return
	}
	if d, ok := geometry.ImprovingDirection(s.t, s.input, s.tol); ok {
		s.log.Debug("seidel: improving ray", slog.String("direction", d.String()))
		s.status = program.Unbounded

		return
	}
	s.status = program.Optimal
}
