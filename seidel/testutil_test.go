package seidel_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planelp/geometry"
)

// axes selects which implicit constraints a fixture carries.
type axes int

const (
	both axes = iota
	onlyX
	onlyY
	none
)

// build turns raw rows into a constraint list, axes appended last.
func build(t testing.TB, rows [][3]float64, ax axes) []geometry.Constraint {
	t.Helper()
	out := make([]geometry.Constraint, 0, len(rows)+2)
	for _, r := range rows {
		k, err := geometry.NewConstraint(r[0], r[1], r[2])
		require.NoError(t, err)
		out = append(out, k)
	}
	if ax == both || ax == onlyX {
		out = append(out, geometry.AxisX)
	}
	if ax == both || ax == onlyY {
		out = append(out, geometry.AxisY)
	}

	return out
}

func target(t testing.TB, a, b float64) geometry.Target {
	t.Helper()
	tg, err := geometry.NewTarget(a, b)
	require.NoError(t, err)

	return tg
}

// permutations calls fn with every ordering of cs (Heap's algorithm).
// fn receives a fresh slice each time.
func permutations(cs []geometry.Constraint, fn func([]geometry.Constraint)) {
	a := append([]geometry.Constraint(nil), cs...)
	var rec func(k int)
	rec = func(k int) {
		if k <= 1 {
			fn(append([]geometry.Constraint(nil), a...))
			return
		}
		rec(k - 1)
		for i := 0; i < k-1; i++ {
			if k%2 == 0 {
				a[i], a[k-1] = a[k-1], a[i]
			} else {
				a[0], a[k-1] = a[k-1], a[0]
			}
			rec(k - 1)
		}
	}
	rec(len(a))
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// randomRows draws n constraints with small integer coefficients. Most
// bounds are positive so that the origin is usually feasible; a few are
// negative to produce infeasible and shifted programs. Every row has a
// non-zero normal and both variables occur in some row.
func randomRows(r *rand.Rand, n int) [][3]float64 {
	for {
		rows := make([][3]float64, 0, n)
		var usesX, usesY bool
		for len(rows) < n {
			a := float64(r.Intn(11) - 5)
			b := float64(r.Intn(11) - 5)
			if a == 0 && b == 0 {
				continue
			}
			c := float64(r.Intn(12))
			if r.Intn(5) == 0 {
				c = -c
			}
			usesX = usesX || a != 0
			usesY = usesY || b != 0
			rows = append(rows, [3]float64{a, b, c})
		}
		if usesX && usesY {
			return rows
		}
	}
}

// randomTarget draws a non-zero objective with small integer coefficients.
func randomTarget(r *rand.Rand) (float64, float64) {
	for {
		a, b := float64(r.Intn(7)-3), float64(r.Intn(7)-3)
		if a != 0 || b != 0 {
			return a, b
		}
	}
}
