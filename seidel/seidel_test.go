package seidel_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planelp"
	"github.com/katalvlaran/planelp/geometry"
	"github.com/katalvlaran/planelp/program"
	"github.com/katalvlaran/planelp/seidel"
)

// scenario is one hand-checked program.
type scenario struct {
	name   string
	obj    [2]float64
	rows   [][3]float64
	axes   axes
	status program.Status
	point  *geometry.Point // nil when several optima tie
	value  float64
}

func pt(x, y float64) *geometry.Point {
	p := geometry.Pt(x, y)
	return &p
}

var scenarios = []scenario{
	{name: "square, tie on the right edge", obj: [2]float64{2, 0}, rows: [][3]float64{{1, 0, 3}, {0, 1, 2}},
		status: program.Optimal, point: pt(3, 0), value: 6},
	{name: "slanted corner", obj: [2]float64{2, 1}, rows: [][3]float64{{1, 0, 1.8}, {-1, 3, 0}},
		status: program.Optimal, point: pt(1.8, 0.6), value: 4.2},
	{name: "open to the right", obj: [2]float64{1, 1}, rows: [][3]float64{{0, 1, 2}},
		status: program.Unbounded},
	{name: "mutually exclusive", obj: [2]float64{1, 1}, rows: [][3]float64{{1, 1, 1}, {-1, -1, -5}},
		status: program.Infeasible},
	{name: "axes only, minimize", obj: [2]float64{-1, -1},
		status: program.Optimal, point: pt(0, 0), value: 0},
	{name: "axes only, maximize", obj: [2]float64{1, 0},
		status: program.Unbounded},
	{name: "no constraints", obj: [2]float64{1, 0}, axes: none,
		status: program.Unbounded},
	{name: "redundant parallels", obj: [2]float64{1, 1}, rows: [][3]float64{{1, 1, 4}, {2, 2, 8}, {1, 1, 6}},
		status: program.Optimal, value: 4},
	{name: "stripe", obj: [2]float64{1, 2}, rows: [][3]float64{{1, 1, 4}, {-1, -1, -2}},
		status: program.Optimal, point: pt(0, 4), value: 8},
	{name: "left of the y axis", obj: [2]float64{1, 1}, rows: [][3]float64{{1, 0, -1}},
		status: program.Infeasible},
	{name: "box without axes", obj: [2]float64{1, 1}, rows: [][3]float64{{1, 0, 2}, {0, 1, 3}, {-1, 0, 1}, {0, -1, 1}}, axes: none,
		status: program.Optimal, point: pt(2, 3), value: 5},
	{name: "below the x axis", obj: [2]float64{0, -1}, rows: [][3]float64{{-1, -1, 3}, {1, 0, 1}}, axes: onlyX,
		status: program.Optimal, point: pt(1, -4), value: 4},
	{name: "horizontal band without axes", obj: [2]float64{1, 0}, rows: [][3]float64{{0, 1, 1}, {0, -1, 1}}, axes: none,
		status: program.Unbounded},
	{name: "flat optimum without axes", obj: [2]float64{0, 1}, rows: [][3]float64{{0, 1, 2}}, axes: none,
		status: program.Optimal, value: 2},
	{name: "duplicated vertical", obj: [2]float64{1, 1}, rows: [][3]float64{{1, 0, 3}, {1, 0, 3}, {0, 1, 2}},
		status: program.Optimal, point: pt(3, 2), value: 5},
	{name: "empty boundary", obj: [2]float64{1, 1}, rows: [][3]float64{{1, 1, 1}, {-1, 0, -2}},
		status: program.Infeasible},
	{name: "single point region", obj: [2]float64{1, 1}, rows: [][3]float64{{1, 1, 0}},
		status: program.Optimal, point: pt(0, 0), value: 0},
	{name: "shared boundary", obj: [2]float64{1, 0}, rows: [][3]float64{{1, 1, 2}, {-1, -1, -2}},
		status: program.Optimal, point: pt(2, 0), value: 2},
}

func (sc scenario) check(t *testing.T, got program.Result) {
	t.Helper()
	require.Equal(t, sc.status, got.Status, sc.name)
	if sc.status != program.Optimal {
		assert.True(t, math.IsNaN(got.Value), "%s: value must be NaN", sc.name)
		return
	}
	assert.InDelta(t, sc.value, got.Value, 1e-9, sc.name)
	if sc.point != nil {
		assert.True(t, got.Solution.Equal(*sc.point), "%s: want %v, got %v", sc.name, *sc.point, got.Solution)
	}
}

// TestSolve_Scenarios runs every hand-checked program in its written order.
func TestSolve_Scenarios(t *testing.T) {
	m := seidel.New()
	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			res, err := m.Solve(target(t, sc.obj[0], sc.obj[1]), build(t, sc.rows, sc.axes))
			require.NoError(t, err)
			sc.check(t, res)
		})
	}
}

// TestSolve_OrderIndependence solves every ordering of the small scenarios:
// status and value never depend on the insertion order.
func TestSolve_OrderIndependence(t *testing.T) {
	m := seidel.New()
	for _, sc := range scenarios {
		cs := build(t, sc.rows, sc.axes)
		if len(cs) > 6 {
			continue
		}
		t.Run(sc.name, func(t *testing.T) {
			tg := target(t, sc.obj[0], sc.obj[1])
			permutations(cs, func(order []geometry.Constraint) {
				res, err := m.Solve(tg, order)
				require.NoError(t, err)
				require.Equal(t, sc.status, res.Status, "order %v", order)
				if sc.status == program.Optimal {
					require.InDelta(t, sc.value, res.Value, 1e-9, "order %v", order)
				}
			})
		})
	}
}

// TestSolve_ProgramSeeds solves the same program under many shuffles.
func TestSolve_ProgramSeeds(t *testing.T) {
	rows := [][3]float64{{1, 0, 1.8}, {-1, 3, 0}, {1, 1, 5}, {0, 1, 4}, {2, 1, 8}}
	m := seidel.New()
	for seed := int64(0); seed < 50; seed++ {
		p, err := program.FromCoefficients([2]float64{2, 1}, rows, program.WithSeed(seed))
		require.NoError(t, err)
		res, err := m.Solve(p.Target(), p.Constraints())
		require.NoError(t, err)
		require.Equal(t, program.Optimal, res.Status, "seed %d", seed)
		assert.InDelta(t, 4.2, res.Value, 1e-9, "seed %d", seed)
		assert.True(t, res.Solution.Equal(geometry.Pt(1.8, 0.6)), "seed %d: %v", seed, res.Solution)
	}
}

// TestSolve_SolutionAdmitted checks that an optimal solution satisfies
// every constraint of the program, not only the last ones inserted.
func TestSolve_SolutionAdmitted(t *testing.T) {
	r := newRand(11)
	m := seidel.New()
	for i := 0; i < 300; i++ {
		a, b := randomTarget(r)
		cs := build(t, randomRows(r, 2+r.Intn(8)), both)
		res, err := m.Solve(target(t, a, b), cs)
		require.NoError(t, err)
		if res.Status != program.Optimal {
			continue
		}
		for _, k := range cs {
			assert.True(t, k.Admits(res.Solution, seidel.DefaultTolerance), "%v violates %v", res.Solution, k)
		}
	}
}

// TestSolve_InputUntouched checks that the caller's slice is not reordered.
func TestSolve_InputUntouched(t *testing.T) {
	cs := build(t, [][3]float64{{1, 0, 3}, {0, 1, 2}, {1, 1, 4}}, both)
	before := append([]geometry.Constraint(nil), cs...)

	_, err := seidel.New().Solve(target(t, 1, 1), cs)
	require.NoError(t, err)
	assert.Equal(t, before, cs)
}

// TestSolve_InvalidInput checks the wrapped geometry sentinels.
func TestSolve_InvalidInput(t *testing.T) {
	m := seidel.New()

	_, err := m.Solve(geometry.Target{}, build(t, nil, both))
	assert.ErrorIs(t, err, geometry.ErrZeroObjective)

	_, err = m.Solve(target(t, 1, 1), []geometry.Constraint{geometry.AxisX, {C: 1}})
	require.ErrorIs(t, err, geometry.ErrDegenerateLine)
	assert.Contains(t, err.Error(), "constraint 1")
}

// TestOptions checks the tolerance option and its validation.
func TestOptions(t *testing.T) {
	assert.Equal(t, seidel.DefaultTolerance, seidel.New().Tolerance())
	assert.Equal(t, 1e-6, seidel.New(seidel.WithTolerance(1e-6)).Tolerance())
	assert.Equal(t, "seidel", seidel.New().Name())

	assert.Panics(t, func() { seidel.WithTolerance(-1) })
	assert.Panics(t, func() { seidel.WithTolerance(math.NaN()) })
	assert.NotPanics(t, func() { seidel.WithTolerance(0) })
}

// TestSolve_Logging checks that the solver traces through the shared logger.
func TestSolve_Logging(t *testing.T) {
	var buf bytes.Buffer
	planelp.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer planelp.SetLogger(nil)

	_, err := seidel.New().Solve(target(t, 2, 1), build(t, [][3]float64{{1, 0, 1.8}, {-1, 3, 0}}, both))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "seidel: bounding constraint")
	assert.Contains(t, out, "seidel: basic solution")
	assert.Contains(t, out, `status="optimal solution found"`)
}
