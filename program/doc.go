// SPDX-License-Identifier: MIT

// Package program defines the two-variable linear program that the planelp
// solving methods operate on.
//
// A LinearProgram bundles:
//
//	– Target:      the objective t₁·x + t₂·y to maximize.
//	– Constraints: half-planes aᵢ·x + bᵢ·y ≤ cᵢ, plus the implicit x ≥ 0 and
//	               y ≥ 0 (geometry.AxisX, geometry.AxisY) unless suppressed.
//	– Status:      NotSolved until a method finishes it, then one of Optimal,
//	               Infeasible or Unbounded, forever.
//	– Solution:    the optimal point, defined only when Status is Optimal.
//
// The constraint list is shuffled once at construction by a seeded
// *rand.Rand, so every solve of the same program with the same seed sees
// the same order. The list is never consumed: methods receive a copy.
//
// Lifecycle:
//
//	p, _ := program.New(target, constraints, program.WithSeed(42))
//	if err := p.Claim(); err != nil { ... }  // exactly one solve
//	res, err := method.Solve(p.Target(), p.Constraints())
//	if err != nil { p.Release(); ... }       // the claim can be retried
//	_ = p.Finish(res)                         // terminal, read-only from now on
//
// The solver package wraps this sequence; most callers never touch Claim
// and Finish directly.
//
// Concurrency: readers (Status, Solution, Value, String) are safe from any
// goroutine. Claim uses a compare-and-swap so a second concurrent solve
// fails fast with ErrAlreadySolved.
//
// Errors (sentinel):
//
//	– ErrAlreadySolved  if the program was claimed or finished before.
//	– ErrNotClaimed     if Finish or Release is called without a Claim.
//	– ErrNotTerminal    if Finish receives a NotSolved result.
//	– geometry.ErrNonFinite, geometry.ErrDegenerateLine,
//	  geometry.ErrZeroObjective from the constructors.
package program
