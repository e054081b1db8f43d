// SPDX-License-Identifier: MIT

// Package simplex - pivot selection.
//
// Selection never returns a placeholder index: the outcome tag says whether a
// pivot was found, the tableau is optimal, or the entering column is unbounded.
package simplex

import (
	"fmt"
	"math"
)

type pivotOutcome int

const (
	pivotFound pivotOutcome = iota
	pivotOptimal
	pivotUnbounded
)

// pivot is the result of one selection pass. row is meaningful only for
// pivotFound; col for pivotFound and pivotUnbounded.
type pivot struct {
	outcome  pivotOutcome
	row, col int
}

// selectPivot scans the objective row for an entering column, then the
// constraint rows for the leaving row, under the configured rule.
func (s *Solver) selectPivot() (pivot, error) {
	obj, err := s.tab.Row(s.m)
	if err != nil {
		return pivot{}, fmt.Errorf("simplex: objective row: %w", err)
	}
	col, ok := s.enteringColumn(obj[:len(obj)-1])
	if !ok {
		return pivot{outcome: pivotOptimal}, nil
	}

	colVals, err := s.tab.Col(col)
	if err != nil {
		return pivot{}, fmt.Errorf("simplex: entering column: %w", err)
	}
	rhs, err := s.tab.Col(s.tab.Cols() - 1)
	if err != nil {
		return pivot{}, fmt.Errorf("simplex: rhs column: %w", err)
	}
	row, ok := s.leavingRow(colVals[:s.m], rhs[:s.m])
	if !ok {
		return pivot{outcome: pivotUnbounded, col: col}, nil
	}

	return pivot{outcome: pivotFound, row: row, col: col}, nil
}

// enteringColumn picks a column with reduced cost below -eps.
//   - Dantzig: the most negative, first occurrence on ties.
//   - Bland: the first one.
//
// costs excludes the right-hand side.
func (s *Solver) enteringColumn(costs []float64) (int, bool) {
	best, bestVal := -1, -s.opts.eps
	for j, v := range costs {
		if v >= -s.opts.eps {
			continue
		}
		if s.opts.rule == Bland {
			return j, true
		}
		if v < bestVal {
			best, bestVal = j, v
		}
	}

	return best, best >= 0
}

// leavingRow runs the ratio test over the constraint rows. Only rows with a
// coefficient above eps are candidates; a zero right-hand side gives a zero
// ratio, which is a valid degenerate pivot. Rounding noise below zero on the
// right-hand side counts as zero. The smallest ratio wins; ties keep the first
// row under Dantzig and the row with the smallest basic variable under Bland.
func (s *Solver) leavingRow(coef, rhs []float64) (int, bool) {
	best, bestRatio := -1, math.Inf(1)
	for i, a := range coef {
		if a <= s.opts.eps {
			continue
		}
		ratio := math.Max(rhs[i], 0) / a
		switch {
		case ratio < bestRatio:
			best, bestRatio = i, ratio
		case ratio == bestRatio && s.opts.rule == Bland && s.rowVar[i] < s.rowVar[best]:
			best = i
		}
	}

	return best, best >= 0
}
