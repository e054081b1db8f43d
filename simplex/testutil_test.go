package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlp/problem"
	"github.com/katalvlaran/lvlp/simplex"
)

const tol = 1e-9

var (
	defaultResources = []float64{20, 16, 12, 8}
	defaultPrices    = []float64{10, 12, 15, 8, 9}
)

// fakeData is a ProblemData whose methods return whatever the test put in,
// including shapes a problem.Table would reject.
type fakeData struct {
	products  []string
	resources []string
	values    [][]float64
}

func (f fakeData) ProductNames() []string      { return f.products }
func (f fakeData) ResourceNames() []string     { return f.resources }
func (f fakeData) ResourceValues() [][]float64 { return f.values }
func (f fakeData) ResourceCount() int          { return len(f.resources) }
func (f fakeData) ProductCount() int           { return len(f.products) }

// mustSolver builds a Solver over the default dataset.
func mustSolver(t testing.TB, resources, prices []float64, opts ...simplex.Option) *simplex.Solver {
	t.Helper()
	s, err := simplex.New(resources, prices, problem.Default(), opts...)
	require.NoError(t, err)

	return s
}

// mustSolve builds and solves, requiring optimality.
func mustSolve(t testing.TB, resources, prices []float64, opts ...simplex.Option) *simplex.Solver {
	t.Helper()
	s := mustSolver(t, resources, prices, opts...)
	require.NoError(t, s.Solve())
	require.Equal(t, simplex.StatusOptimal, s.Status())

	return s
}
