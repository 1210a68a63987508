// SPDX-License-Identifier: MIT

package program

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/planelp/geometry"
)

// LinearProgram is a two-variable LP: maximize Target subject to every
// constraint in its list. See the package documentation for the lifecycle.
type LinearProgram struct {
	target      geometry.Target
	constraints []geometry.Constraint
	seed        int64

	claimed atomic.Bool

	mu       sync.RWMutex
	status   Status
	solution geometry.Point
	value    float64
}

// New builds a program from an objective and user constraints.
//
// Steps:
//  1. Validate the target and every constraint (wrapped with its index).
//  2. Copy the constraints and append geometry.AxisX / geometry.AxisY unless
//     suppressed by WithoutNonNegativeX / WithoutNonNegativeY.
//  3. Shuffle the list with a *rand.Rand seeded from Options.Seed, unless
//     WithoutShuffle was given.
//
// Complexity: O(n).
func New(t geometry.Target, constraints []geometry.Constraint, opts ...Option) (*LinearProgram, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("program: objective: %w", err)
	}

	list := make([]geometry.Constraint, 0, len(constraints)+2)
	for i, k := range constraints {
		if err := k.Validate(); err != nil {
			return nil, fmt.Errorf("program: constraint %d: %w", i, err)
		}
		list = append(list, k)
	}
	if o.NonNegativeX {
		list = append(list, geometry.AxisX)
	}
	if o.NonNegativeY {
		list = append(list, geometry.AxisY)
	}
	if o.Shuffle {
		shuffleInPlace(list, rngFromSeed(o.Seed))
	}

	return &LinearProgram{
		target:      t,
		constraints: list,
		seed:        o.Seed,
		status:      NotSolved,
		value:       math.NaN(),
	}, nil
}

// FromCoefficients builds a program from raw numbers: objective = (a, b),
// each row = (a, b, c) for a·x + b·y ≤ c.
func FromCoefficients(objective [2]float64, rows [][3]float64, opts ...Option) (*LinearProgram, error) {
	t, err := geometry.NewTarget(objective[0], objective[1])
	if err != nil {
		return nil, fmt.Errorf("program: objective: %w", err)
	}

	cs := make([]geometry.Constraint, len(rows))
	var (
		i   int
		row [3]float64
	)
	for i, row = range rows {
		if cs[i], err = geometry.NewConstraint(row[0], row[1], row[2]); err != nil {
			return nil, fmt.Errorf("program: constraint %d: %w", i, err)
		}
	}

	return New(t, cs, opts...)
}

// Target returns the objective.
func (p *LinearProgram) Target() geometry.Target {
	return p.target
}

// Constraints returns a copy of the (shuffled) constraint list.
func (p *LinearProgram) Constraints() []geometry.Constraint {
	out := make([]geometry.Constraint, len(p.constraints))
	copy(out, p.constraints)

	return out
}

// Len returns the number of constraints, axes included.
func (p *LinearProgram) Len() int {
	return len(p.constraints)
}

// Seed returns the seed the constraint order was drawn with (0 = default).
func (p *LinearProgram) Seed() int64 {
	return p.seed
}

// Status returns the current status.
func (p *LinearProgram) Status() Status {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.status
}

// Solution returns the optimal point; ok is false unless Status is Optimal.
func (p *LinearProgram) Solution() (geometry.Point, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.solution, p.status == Optimal
}

// Value returns the objective at the optimum; ok is false unless Status is Optimal.
func (p *LinearProgram) Value() (float64, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.value, p.status == Optimal
}

// Result returns status, solution and value as one consistent record.
func (p *LinearProgram) Result() Result {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return Result{Status: p.status, Solution: p.solution, Value: p.value}
}

// Claim reserves the program for one solve. A program that was already
// claimed (or finished) returns ErrAlreadySolved.
func (p *LinearProgram) Claim() error {
	if !p.claimed.CompareAndSwap(false, true) {
		return ErrAlreadySolved
	}

	return nil
}

// Release gives a claim back after a failed solve, so the program can be
// solved again. A finished program stays claimed.
func (p *LinearProgram) Release() error {
	p.mu.RLock()
	done := p.status.Terminal()
	p.mu.RUnlock()
	if done {
		return ErrAlreadySolved
	}
	if !p.claimed.CompareAndSwap(true, false) {
		return ErrNotClaimed
	}

	return nil
}

// Finish records the outcome of a solve. Status, solution and value are
// written under one lock. The transition happens once; later calls return
// ErrAlreadySolved and leave the program untouched.
func (p *LinearProgram) Finish(r Result) error {
	if !r.Status.Terminal() {
		return ErrNotTerminal
	}
	if !p.claimed.Load() {
		return ErrNotClaimed
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.status.Terminal() {
		return ErrAlreadySolved
	}

	p.status = r.Status
	if r.Status == Optimal {
		p.solution = r.Solution
		p.value = p.target.F(r.Solution)
	} else {
		p.value = math.NaN()
	}

	return nil
}

// String renders the outcome: for an optimal program the status, the
// solution point and the objective value on three lines; otherwise the
// status alone.
func (p *LinearProgram) String() string {
	r := p.Result()
	if r.Status != Optimal {
		return r.Status.String()
	}

	return fmt.Sprintf("%s\n%s\nobjective value: %s", r.Status, r.Solution, formatValue(r.Value))
}

// formatValue prints v rounded to 12 significant digits, so chained
// intersections print 4.2 instead of 4.199999999999999.
func formatValue(v float64) string {
	if v == 0 {
		v = 0 // fold -0
	}

	return fmt.Sprintf("%.12g", v)
}
