package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planelp"
	"github.com/katalvlaran/planelp/programfile"
	"github.com/katalvlaran/planelp/solver"
)

var (
	textFixture = filepath.Join("..", "..", "programfile", "testdata", "programs.txt")
	yamlFixture = filepath.Join("..", "..", "programfile", "testdata", "programs.yaml")
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { planelp.SetLogger(nil) })

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestSolve_PrettyOne(t *testing.T) {
	out, _, err := run(t, "solve", textFixture, "--id", "1")
	require.NoError(t, err)
	assert.Equal(t, "program 1 (slanted corner)\noptimal solution found\n(1.8, 0.6)\nobjective value: 4.2\n", out)
}

func TestSolve_PrettyAll(t *testing.T) {
	out, _, err := run(t, "solve", textFixture, "--seed", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "program 0 (square)\noptimal solution found\n(3, 0)\nobjective value: 6\n")
	assert.Contains(t, out, "program 2 (open to the right)\nunbounded\n")
	assert.Contains(t, out, "program 3 (mutually exclusive)\ninfeasible\n")
}

func TestSolve_JSON(t *testing.T) {
	for _, method := range []string{"seidel", "enumerate"} {
		t.Run(method, func(t *testing.T) {
			out, _, err := run(t, "solve", yamlFixture, "--all", "--format", "json", "--method", method)
			require.NoError(t, err)

			var got []struct {
				ID       int      `json:"id"`
				Name     string   `json:"name"`
				Status   string   `json:"status"`
				Solution *struct{ X, Y float64 }
				Value    *float64 `json:"value"`
			}
			require.NoError(t, json.Unmarshal([]byte(out), &got))
			require.Len(t, got, 4)

			assert.Equal(t, "optimal", got[1].Status)
			require.NotNil(t, got[1].Solution)
			assert.InDelta(t, 1.8, got[1].Solution.X, 1e-9)
			assert.InDelta(t, 0.6, got[1].Solution.Y, 1e-9)
			require.NotNil(t, got[1].Value)
			assert.InDelta(t, 4.2, *got[1].Value, 1e-9)

			assert.Equal(t, "unbounded", got[2].Status)
			assert.Nil(t, got[2].Solution)
			assert.Nil(t, got[2].Value)
			assert.Equal(t, "infeasible", got[3].Status)
		})
	}
}

func TestSolve_Errors(t *testing.T) {
	_, _, err := run(t, "solve", textFixture, "--id", "42")
	assert.ErrorIs(t, err, programfile.ErrProgramNotFound)

	_, _, err = run(t, "solve", textFixture, "--method", "simplex")
	assert.ErrorIs(t, err, solver.ErrUnsupportedAlgorithm)

	_, _, err = run(t, "solve", textFixture, "--format", "xml")
	assert.ErrorContains(t, err, "unsupported format")

	_, _, err = run(t, "solve", textFixture, "--id", "1", "--all")
	assert.Error(t, err)

	_, _, err = run(t, "solve", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	_, _, err = run(t, "solve")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	out, _, err := run(t, "list", yamlFixture)
	require.NoError(t, err)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "slanted corner")
	assert.Contains(t, out, "2x + 1y")
	assert.Contains(t, out, "mutually exclusive")
}

func TestDebug(t *testing.T) {
	_, stderr, err := run(t, "--debug", "solve", textFixture, "--id", "1")
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "seidel: basic solution")
	assert.Contains(t, stderr, "solver: finish")

	_, stderr, err = run(t, "solve", textFixture, "--id", "1")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}
