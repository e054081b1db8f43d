// SPDX-License-Identifier: MIT

// Package simplex - solver construction and tableau layout.
//
// Layout of the (m+1) × (n+m+2) tableau for m resources and n products:
//
//	constraint row i: [ a_i (n) | e_i (m) | 0 | r_i ]
//	objective row:    [ ±p (n)  | 0 (m)   | 1 | 0   ]
//
// Column n+m tracks the objective and the last column is the right-hand side.
package simplex

import (
	"fmt"

	"github.com/katalvlaran/lvlp/matrix"
)

// Solver owns one tableau and its basis. It is not safe for concurrent use;
// build one Solver per problem.
type Solver struct {
	opts Options

	m, n int // resource rows, product columns

	resources     []float64
	prices        []float64
	resourceNames []string
	productNames  []string

	tab    *matrix.Dense
	basis  []int // product j -> constraint row, or -1
	rowVar []int // constraint row -> basic column

	started    bool
	status     Status
	iterations int
	quantities []float64 // set once on optimality
}

// New validates the instance and builds the initial tableau.
//
// Implementation:
//   - Stage 1: total dimension check len(resources)+len(prices) == m+n, then
//     the per-vector lengths and every coefficient row width.
//   - Stage 2: finite values everywhere, non-negative resources.
//   - Stage 3: assemble constraint rows, then the objective row.
//
// Errors:
//   - ErrNilProblem, ErrDimensionMismatch, ErrNaNInf, ErrNegativeResource.
//
// Complexity: O(m·(n+m)) time and space.
func New(resources, prices []float64, data ProblemData, opts ...Option) (*Solver, error) {
	if data == nil {
		return nil, ErrNilProblem
	}
	o := gatherOptions(opts...)
	m, n := data.ResourceCount(), data.ProductCount()

	// Stage 1: shape.
	if len(resources)+len(prices) != m+n {
		return nil, fmt.Errorf("simplex: New: %d resources + %d prices, problem has %d + %d: %w",
			len(resources), len(prices), m, n, ErrDimensionMismatch)
	}
	if err := matrix.ValidateVecLen(resources, m); err != nil {
		return nil, fmt.Errorf("simplex: New: resources: %v: %w", err, ErrDimensionMismatch)
	}
	if err := matrix.ValidateVecLen(prices, n); err != nil {
		return nil, fmt.Errorf("simplex: New: prices: %v: %w", err, ErrDimensionMismatch)
	}
	values := data.ResourceValues()
	resourceNames := data.ResourceNames()
	productNames := data.ProductNames()
	if len(values) != m || len(resourceNames) != m || len(productNames) != n {
		return nil, fmt.Errorf("simplex: New: problem data disagrees with its own counts: %w", ErrDimensionMismatch)
	}
	for i, row := range values {
		if len(row) != n {
			return nil, fmt.Errorf("simplex: New: coefficient row %d has %d values, want %d: %w",
				i, len(row), n, ErrDimensionMismatch)
		}
	}

	// Stage 2: values.
	if err := matrix.ValidateFinite(resources); err != nil {
		return nil, fmt.Errorf("simplex: New: resources: %v: %w", err, ErrNaNInf)
	}
	if err := matrix.ValidateFinite(prices); err != nil {
		return nil, fmt.Errorf("simplex: New: prices: %v: %w", err, ErrNaNInf)
	}
	for i, row := range values {
		if err := matrix.ValidateFinite(row); err != nil {
			return nil, fmt.Errorf("simplex: New: coefficient row %d: %v: %w", i, err, ErrNaNInf)
		}
	}
	for i, r := range resources {
		if r < 0 {
			return nil, fmt.Errorf("simplex: New: resource %d = %v: %w", i, r, ErrNegativeResource)
		}
	}

	// Stage 3: tableau.
	tab, err := matrix.NewDenseFromRows(buildTableau(values, resources, prices), matrix.WithEpsilon(o.eps))
	if err != nil {
		return nil, fmt.Errorf("simplex: New: %w", err)
	}

	s := &Solver{
		opts:          o,
		m:             m,
		n:             n,
		resources:     append([]float64(nil), resources...),
		prices:        append([]float64(nil), prices...),
		resourceNames: resourceNames,
		productNames:  productNames,
		tab:           tab,
		basis:         make([]int, n),
		rowVar:        make([]int, m),
	}
	for j := range s.basis {
		s.basis[j] = -1
	}
	for i := range s.rowVar {
		s.rowVar[i] = n + i // every constraint row starts basic in its slack
	}

	return s, nil
}

// buildTableau lays out the initial tableau rows.
func buildTableau(values [][]float64, resources, prices []float64) [][]float64 {
	m, n := len(resources), len(prices)
	cols := n + m + 2
	rows := make([][]float64, m+1)

	for i := 0; i < m; i++ {
		row := make([]float64, cols)
		copy(row, values[i])
		row[n+i] = 1
		row[cols-1] = resources[i]
		rows[i] = row
	}

	obj := make([]float64, cols)
	for j := 0; j < n; j++ {
		if negatePrice(values, resources, j) {
			obj[j] = -prices[j]
		} else {
			obj[j] = prices[j]
		}
	}
	obj[n+m] = 1
	rows[m] = obj

	return rows
}

// negatePrice reports whether every resource row either leaves product j
// unused or has a non-zero quantity. Only then does the price enter the
// objective row negated; otherwise it stays positive and column j is never
// chosen to enter from the starting tableau.
func negatePrice(values [][]float64, resources []float64, j int) bool {
	for i := range values {
		if values[i][j] != 0 && resources[i] == 0 {
			return false
		}
	}

	return true
}
