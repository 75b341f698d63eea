package sweep_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-gridindex/gridindex"
	"github.com/hasbyte1/go-gridindex/sweep"
)

const nestedDoc = `
name: regression
restriction: Diagonal
parameters:
  alpha: [0.10, 0.2]
  solver:
    method: [lbfgs, newton]
    tol: 1e-6
`

func TestLoad_NestedMapping(t *testing.T) {
	s, err := sweep.Load(strings.NewReader(nestedDoc))
	require.NoError(t, err)

	assert.Equal(t, "regression", s.Name)
	assert.Equal(t, gridindex.RestrictionDiagonal, s.Restriction)
	assert.Equal(t, []sweep.Parameter{
		{Name: "alpha", Values: []string{"0.10", "0.2"}},
		{Name: "solver.method", Values: []string{"lbfgs", "newton"}},
		{Name: "solver.tol", Values: []string{"1e-6"}},
	}, s.Parameters)
	assert.Equal(t, []int{2, 2, 1}, s.Extents())
}

func TestLoad_NestedScalarLeaves(t *testing.T) {
	s, err := sweep.Load(strings.NewReader(`
parameters:
  seed: [1, 2]
  solver:
    verbose: true
    nested:
      depth: 3
  timeout: 1m30s
`))
	require.NoError(t, err)

	assert.Equal(t, []sweep.Parameter{
		{Name: "seed", Values: []string{"1", "2"}},
		{Name: "solver.verbose", Values: []string{"true"}},
		{Name: "solver.nested.depth", Values: []string{"3"}},
		{Name: "timeout", Values: []string{"1m30s"}},
	}, s.Parameters)
}

func TestLoad_ParameterList(t *testing.T) {
	doc := `
parameters:
  - name: b
    values: ["1", "2"]
  - name: a
    values: [x]
`
	s, err := sweep.Load(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, gridindex.RestrictionNone, s.Restriction)
	assert.Equal(t, []int{2, 1}, s.Extents())
	assert.Equal(t, "b", s.Parameters[0].Name)
}

func TestLoad_Aliases(t *testing.T) {
	doc := `
parameters:
  first: &seeds [1, 2, 3]
  second: *seeds
`
	s, err := sweep.Load(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3}, s.Extents())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", "", sweep.ErrInvalidSweep},
		{"no parameters", "name: x\n", sweep.ErrInvalidSweep},
		{"scalar parameters", "parameters: 3\n", sweep.ErrInvalidSweep},
		{"empty list", "parameters:\n  a: []\n", sweep.ErrInvalidSweep},
		{"nested list", "parameters:\n  a: [[1, 2]]\n", sweep.ErrInvalidSweep},
		{"unknown field", "parameterz:\n  a: [1]\n", sweep.ErrInvalidSweep},
		{"bad restriction", "restriction: bogus\nparameters:\n  a: [1]\n", gridindex.ErrUnknownRestriction},
		{"duplicate names", "parameters:\n  - name: a\n    values: [1]\n  - name: a\n    values: [2]\n", sweep.ErrInvalidSweep},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sweep.Load(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(nestedDoc), 0o600))

	s, err := sweep.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "regression", s.Name)

	_, err = sweep.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
