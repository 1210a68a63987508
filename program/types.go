// SPDX-License-Identifier: MIT

package program

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/planelp/geometry"
)

// Sentinel errors returned by the lifecycle methods.
var (
	// ErrAlreadySolved indicates a second attempt to solve the same program.
	ErrAlreadySolved = errors.New("program: already solved")

	// ErrNotClaimed indicates Finish or Release without a preceding Claim.
	ErrNotClaimed = errors.New("program: not claimed for solving")

	// ErrNotTerminal indicates a Finish with a result whose status is NotSolved.
	ErrNotTerminal = errors.New("program: result status is not terminal")
)

// Status is the state of a linear program. It starts at NotSolved and
// moves exactly once to one of the terminal states.
type Status int

const (
	NotSolved Status = iota
	Optimal
	Infeasible
	Unbounded
)

// String returns the human-readable status.
func (s Status) String() string {
	switch s {
	case NotSolved:
		return "not yet solved"
	case Optimal:
		return "optimal solution found"
	case Infeasible:
		return "infeasible"
	case Unbounded:
		return "unbounded"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Terminal reports whether s is one of Optimal, Infeasible or Unbounded.
func (s Status) Terminal() bool {
	return s == Optimal || s == Infeasible || s == Unbounded
}

// Key returns the machine-readable name used in JSON output.
func (s Status) Key() string {
	switch s {
	case Optimal:
		return "optimal"
	case Infeasible:
		return "infeasible"
	case Unbounded:
		return "unbounded"
	default:
		return "not_solved"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.Key()), nil
}

// Result is what a solving method reports for one program.
//
// Solution and Value are meaningful only when Status is Optimal; Value is
// NaN otherwise.
type Result struct {
	Status   Status
	Solution geometry.Point
	Value    float64
}

// Solved builds an Optimal result, evaluating t at p.
func Solved(t geometry.Target, p geometry.Point) Result {
	return Result{Status: Optimal, Solution: p, Value: t.F(p)}
}

// Outcome builds a result without a solution (Infeasible or Unbounded).
func Outcome(s Status) Result {
	return Result{Status: s, Value: math.NaN()}
}

// Options configures program construction.
//
// Seed            – RNG seed for the constraint shuffle; 0 selects a fixed default.
// Shuffle         – shuffle the constraint list (default true).
// NonNegativeX    – add geometry.AxisX, i.e. x ≥ 0 (default true).
// NonNegativeY    – add geometry.AxisY, i.e. y ≥ 0 (default true).
type Options struct {
	Seed         int64
	Shuffle      bool
	NonNegativeX bool
	NonNegativeY bool
}

// Option represents a functional option for configuring a LinearProgram.
type Option func(*Options)

// WithSeed sets the shuffle seed. Zero keeps the deterministic default.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithoutShuffle keeps the constraints in the given order, the axes last.
func WithoutShuffle() Option {
	return func(o *Options) {
		o.Shuffle = false
	}
}

// WithoutNonNegativeX drops the implicit x ≥ 0.
func WithoutNonNegativeX() Option {
	return func(o *Options) {
		o.NonNegativeX = false
	}
}

// WithoutNonNegativeY drops the implicit y ≥ 0.
func WithoutNonNegativeY() Option {
	return func(o *Options) {
		o.NonNegativeY = false
	}
}

// DefaultOptions returns shuffling on, default seed, both axes present.
func DefaultOptions() Options {
	return Options{
		Seed:         0,
		Shuffle:      true,
		NonNegativeX: true,
		NonNegativeY: true,
	}
}
