package problem_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlp/problem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	tbl := problem.Default()

	assert.Equal(t, []string{"oatmeal", "wheat", "corn", "barley", "soy"}, tbl.ProductNames())
	assert.Equal(t, []string{"F1", "F2", "F3", "F4"}, tbl.ResourceNames())
	assert.Equal(t, 5, tbl.ProductCount())
	assert.Equal(t, 4, tbl.ResourceCount())
	assert.Equal(t, [][]float64{
		{1, 0, 1, 0, 2},
		{1, 2, 0, 1, 0},
		{2, 1, 0, 1, 0},
		{0, 0, 3, 1, 2},
	}, tbl.ResourceValues())
}

func TestDefault_FreshCopies(t *testing.T) {
	a := problem.Default()
	vals := a.ResourceValues()
	vals[0][0] = 99
	names := a.ProductNames()
	names[0] = "changed"

	assert.Equal(t, 1.0, a.ResourceValues()[0][0], "ResourceValues must be a deep copy")
	assert.Equal(t, "oatmeal", a.ProductNames()[0])
	assert.Equal(t, 1.0, problem.Default().ResourceValues()[0][0])
}

func TestTable_Resource(t *testing.T) {
	tbl := problem.Default()

	r, ok := tbl.Resource("F4")
	require.True(t, ok)
	assert.Equal(t, "F4", r.Name)
	assert.Equal(t, []float64{0, 0, 3, 1, 2}, r.Values)

	r.Values[2] = -1
	again, _ := tbl.Resource("F4")
	assert.Equal(t, 3.0, again.Values[2])

	_, ok = tbl.Resource("F9")
	assert.False(t, ok)
}

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name      string
		products  []string
		resources []problem.Resource
		want      error
	}{
		{"no products", nil, nil, problem.ErrEmptyTable},
		{"duplicate product", []string{"a", "b", "a"}, nil, problem.ErrDuplicateProduct},
		{
			"duplicate resource",
			[]string{"a"},
			[]problem.Resource{{Name: "r", Values: []float64{1}}, {Name: "r", Values: []float64{2}}},
			problem.ErrDuplicateResource,
		},
		{
			"short row",
			[]string{"a", "b"},
			[]problem.Resource{{Name: "r", Values: []float64{1}}},
			problem.ErrRowLength,
		},
		{
			"negative",
			[]string{"a", "b"},
			[]problem.Resource{{Name: "r", Values: []float64{1, -2}}},
			problem.ErrInvalidCoefficient,
		},
		{
			"nan",
			[]string{"a"},
			[]problem.Resource{{Name: "r", Values: []float64{math.NaN()}}},
			problem.ErrInvalidCoefficient,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tbl, err := problem.New(tc.products, tc.resources)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, tbl)
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	values := []float64{1, 2}
	tbl, err := problem.New([]string{"a", "b"}, []problem.Resource{{Name: "r", Values: values}})
	require.NoError(t, err)

	values[0] = 42
	assert.Equal(t, []float64{1, 2}, tbl.ResourceValues()[0])
}
