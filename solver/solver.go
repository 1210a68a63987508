// SPDX-License-Identifier: MIT

// Package solver binds a solving method to a linear program: it claims the
// program, runs the method on a copy of the constraint list and records the
// result.
//
// Methods:
//
//	– Seidel            (seidel.Method)     expected O(n), the default.
//	– VertexEnumeration (vertexenum.Method) O(n³), for cross-checking.
//
// Errors (sentinel):
//
//	– ErrNilProgram           if Solve receives a nil program.
//	– ErrUnsupportedAlgorithm if ParseAlgo/ForAlgo meet an unknown algorithm.
//	– program.ErrAlreadySolved on a second solve of the same program.
//
// Example:
//
//	p, _ := program.FromCoefficients([2]float64{2, 1}, [][3]float64{{1, 0, 1.8}, {-1, 3, 0}})
//	res, err := solver.New(nil).Solve(p)
//	fmt.Println(res.Status, res.Solution) // optimal solution found (1.8, 0.6)
package solver

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/katalvlaran/planelp"
	"github.com/katalvlaran/planelp/geometry"
	"github.com/katalvlaran/planelp/program"
	"github.com/katalvlaran/planelp/seidel"
	"github.com/katalvlaran/planelp/vertexenum"
)

var (
	// ErrNilProgram indicates a nil *program.LinearProgram.
	ErrNilProgram = errors.New("solver: program is nil")

	// ErrUnsupportedAlgorithm indicates an unknown algorithm name or value.
	ErrUnsupportedAlgorithm = errors.New("solver: unsupported algorithm")
)

// Method is a solving method. It must not modify cs and must report every
// LP outcome as a Result; errors are for invalid input only.
type Method interface {
	Name() string
	Solve(t geometry.Target, cs []geometry.Constraint) (program.Result, error)
}

// Algo selects a built-in method.
type Algo int

const (
	Seidel Algo = iota
	VertexEnumeration
)

// String returns the name ParseAlgo accepts.
func (a Algo) String() string {
	switch a {
	case Seidel:
		return seidel.Name
	case VertexEnumeration:
		return vertexenum.Name
	default:
		return fmt.Sprintf("Algo(%d)", int(a))
	}
}

// ParseAlgo maps "seidel" or "enumerate" (case-insensitive) to an Algo.
func ParseAlgo(s string) (Algo, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case seidel.Name:
		return Seidel, nil
	case vertexenum.Name:
		return VertexEnumeration, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
	}
}

// ForAlgo returns the built-in method for a with its default options.
func ForAlgo(a Algo) (Method, error) {
	switch a {
	case Seidel:
		return seidel.New(), nil
	case VertexEnumeration:
		return vertexenum.New(), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, a)
	}
}

// Solver drives one method. It holds no per-program state and may be
// shared between goroutines solving different programs.
type Solver struct {
	m Method
}

// New returns a Solver for m; nil selects the Seidel method.
func New(m Method) *Solver {
	if m == nil {
		m = seidel.New()
	}

	return &Solver{m: m}
}

// Method returns the method in use.
func (s *Solver) Method() Method {
	return s.m
}

// Solve solves p once and returns the recorded result.
//
// Steps:
//  1. Claim p; a program solved (or being solved) before ⇒ program.ErrAlreadySolved.
//  2. Run the method on p.Target() and a copy of p.Constraints().
//  3. On a method error release the claim and return the error.
//  4. Otherwise Finish p with the result.
func (s *Solver) Solve(p *program.LinearProgram) (program.Result, error) {
	if p == nil {
		return program.Result{}, ErrNilProgram
	}
	if err := p.Claim(); err != nil {
		return program.Result{}, fmt.Errorf("solver: %w", err)
	}

	log := planelp.Logger()
	log.Info("solver: start", slog.String("method", s.m.Name()), slog.Int("constraints", p.Len()))
	start := time.Now()

	res, err := s.m.Solve(p.Target(), p.Constraints())
	if err != nil {
		_ = p.Release()
		return program.Result{}, fmt.Errorf("solver: %s: %w", s.m.Name(), err)
	}
	if err = p.Finish(res); err != nil {
		return program.Result{}, fmt.Errorf("solver: %w", err)
	}

	log.Info("solver: finish",
		slog.String("method", s.m.Name()),
		slog.String("status", res.Status.String()),
		slog.Duration("elapsed", time.Since(start)))

	return p.Result(), nil
}

// Solve solves p with the default Seidel method.
func Solve(p *program.LinearProgram) (program.Result, error) {
	return New(nil).Solve(p)
}
