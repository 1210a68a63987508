// SPDX-License-Identifier: MIT

// Package vertexenum is a brute-force reference method for two-variable
// linear programs: it evaluates the objective at every vertex of the
// feasible region.
//
// It exists to cross-check the Seidel method and costs O(n³): O(n²)
// crossings, each tested against all n constraints. With x ≥ 0 and y ≥ 0
// present the region is pointed, so a non-empty region always has a
// vertex; the method therefore refuses lists without both axes.
package vertexenum

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/planelp/geometry"
	"github.com/katalvlaran/planelp/program"
)

// Name is the method name reported by (*Method).Name.
const Name = "enumerate"

// ErrNeedsNonNegativity indicates a constraint list without AxisX or AxisY.
var ErrNeedsNonNegativity = errors.New("vertexenum: x ≥ 0 and y ≥ 0 are required")

// Option configures the method.
type Option func(*Method)

// WithTolerance sets the relative admission/tie tolerance (default 1e-9).
// Panics on a negative, NaN or infinite value.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(fmt.Sprintf("vertexenum: WithTolerance(%v): must be finite and non-negative", tol))
	}
	return func(m *Method) {
		m.tol = tol
	}
}

// Method enumerates vertices. Build it with New.
type Method struct {
	tol float64
}

// New returns a Method configured by opts.
func New(opts ...Option) *Method {
	m := &Method{tol: geometry.Epsilon}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Name returns "enumerate".
func (m *Method) Name() string {
	return Name
}

// Solve maximizes t over cs.
//
// Steps:
//  1. Collect every IntersectPoint of two boundaries admitted by all of cs.
//  2. None ⇒ Infeasible.
//  3. An improving recession ray ⇒ Unbounded.
//  4. Otherwise the best vertex (ties to the one nearer the origin) ⇒ Optimal.
func (m *Method) Solve(t geometry.Target, cs []geometry.Constraint) (program.Result, error) {
	if err := t.Validate(); err != nil {
		return program.Result{}, fmt.Errorf("vertexenum: objective: %w", err)
	}
	for i, k := range cs {
		if err := k.Validate(); err != nil {
			return program.Result{}, fmt.Errorf("vertexenum: constraint %d: %w", i, err)
		}
	}
	if !slices.Contains(cs, geometry.AxisX) || !slices.Contains(cs, geometry.AxisY) {
		return program.Result{}, ErrNeedsNonNegativity
	}

	var (
		best  geometry.Point
		found bool
	)
	for i := 0; i < len(cs); i++ {
		for j := i + 1; j < len(cs); j++ {
			in := geometry.Intersect(cs[i], cs[j])
			if in.Kind != geometry.IntersectPoint || !m.feasible(in.Point, cs) {
				continue
			}
			if !found || m.better(t, in.Point, best) {
				best, found = in.Point, true
			}
		}
	}

	if !found {
		return program.Outcome(program.Infeasible), nil
	}
	if _, ok := geometry.ImprovingDirection(t, cs, m.tol); ok {
		return program.Outcome(program.Unbounded), nil
	}

	return program.Solved(t, best), nil
}

func (m *Method) feasible(p geometry.Point, cs []geometry.Constraint) bool {
	for _, k := range cs {
		if !k.Admits(p, m.tol) {
			return false
		}
	}

	return true
}

func (m *Method) better(t geometry.Target, p, q geometry.Point) bool {
	fp, fq := t.F(p), t.F(q)
	d := m.tol * math.Max(1, math.Abs(fq))
	if math.Abs(fp-fq) > d {
		return fp > fq
	}

	return p.Dot(p) < q.Dot(q)
}
