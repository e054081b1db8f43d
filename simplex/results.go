// SPDX-License-Identifier: MIT

package simplex

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlp/matrix"
)

// extractQuantities reads each basic product's value from its row's RHS.
func (s *Solver) extractQuantities() []float64 {
	q := make([]float64, s.n)
	last := s.tab.Cols() - 1
	for j, row := range s.basis {
		if row < 0 {
			continue
		}
		v, err := s.tab.At(row, last)
		if err != nil {
			continue
		}
		q[j] = v
	}

	return q
}

// Status reports the lifecycle state.
func (s *Solver) Status() Status { return s.status }

// Iterations returns the number of committed pivots.
func (s *Solver) Iterations() int { return s.iterations }

// ProductQuantities returns the optimal production plan, one value per
// product. The slice is a copy of values computed once when Solve reached
// optimality; it is nil before that.
func (s *Solver) ProductQuantities() []float64 {
	if s.status != StatusOptimal {
		return nil
	}
	out := make([]float64, len(s.quantities))
	copy(out, s.quantities)

	return out
}

// TotalValue returns Σ quantity_j · price_j, or 0 before optimality.
func (s *Solver) TotalValue() float64 {
	if s.status != StatusOptimal {
		return 0
	}

	return floats.Dot(s.quantities, s.prices)
}

// ObjectiveValue returns the objective row's trailing cell. After an optimal
// solve it equals TotalValue within floating-point tolerance.
func (s *Solver) ObjectiveValue() float64 {
	v, _ := s.tab.At(s.m, s.tab.Cols()-1)

	return v
}

// Basis returns a copy of the basis vector: slot j holds the constraint row
// where product j is basic, or -1.
func (s *Solver) Basis() []int {
	out := make([]int, len(s.basis))
	copy(out, s.basis)

	return out
}

// SlackValues returns the unused quantity of every resource, or nil before
// optimality.
func (s *Solver) SlackValues() []float64 {
	if s.status != StatusOptimal {
		return nil
	}
	out := make([]float64, s.m)
	last := s.tab.Cols() - 1
	for row, v := range s.rowVar {
		if v < s.n || v >= s.n+s.m {
			continue
		}
		rhs, err := s.tab.At(row, last)
		if err != nil {
			continue
		}
		out[v-s.n] = rhs
	}

	return out
}

// Tableau returns a deep copy of the current tableau.
func (s *Solver) Tableau() *matrix.Dense {
	return s.tab.Clone()
}

// ResourceNames returns the resource names the Solver was built with.
func (s *Solver) ResourceNames() []string { return append([]string(nil), s.resourceNames...) }

// ProductNames returns the product names the Solver was built with.
func (s *Solver) ProductNames() []string { return append([]string(nil), s.productNames...) }
