// SPDX-License-Identifier: MIT

package simplex

// White-box bridge for simplex_test: pivot selection and single steps.

// Pivot outcomes as seen by tests.
const (
	OutcomeFound     = "found"
	OutcomeOptimal   = "optimal"
	OutcomeUnbounded = "unbounded"
)

// SelectPivot runs one selection pass without committing it.
func SelectPivot(s *Solver) (outcome string, row, col int, err error) {
	p, err := s.selectPivot()
	if err != nil {
		return "", 0, 0, err
	}
	switch p.outcome {
	case pivotFound:
		return OutcomeFound, p.row, p.col, nil
	case pivotUnbounded:
		return OutcomeUnbounded, 0, p.col, nil
	default:
		return OutcomeOptimal, 0, 0, nil
	}
}

// Step commits a pivot chosen by the caller.
func Step(s *Solver, row, col int) error { return s.step(row, col) }

// RowVars exposes the basic column of every constraint row.
func RowVars(s *Solver) []int { return append([]int(nil), s.rowVar...) }
