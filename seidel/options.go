// SPDX-License-Identifier: MIT

package seidel

import (
	"fmt"
	"math"
)

// DefaultTolerance is the relative tolerance used unless WithTolerance is given.
const DefaultTolerance = 1e-9

// Options configures the Seidel method.
//
// Tolerance – relative slack allowed when a constraint admits a point and
// when two objective values count as tied. Must be finite and ≥ 0.
type Options struct {
	Tolerance float64
}

// Option represents a functional option for configuring the method.
type Option func(*Options)

// WithTolerance sets the admission/tie tolerance.
// Panics on a negative, NaN or infinite value.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(fmt.Sprintf("seidel: WithTolerance(%v): must be finite and non-negative", tol))
	}
	return func(o *Options) {
		o.Tolerance = tol
	}
}

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance}
}
