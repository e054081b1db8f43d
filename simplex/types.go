// SPDX-License-Identifier: MIT

package simplex

import "fmt"

// ProblemData is the read-only coefficient source a Solver is built from.
// *problem.Table satisfies it.
type ProblemData interface {
	// ProductNames returns one name per product column.
	ProductNames() []string

	// ResourceNames returns one name per resource row.
	ResourceNames() []string

	// ResourceValues returns the coefficient rows, row-major: cell (i, j) is
	// how much of resource i one unit of product j consumes.
	ResourceValues() [][]float64

	// ResourceCount returns the number of resource rows.
	ResourceCount() int

	// ProductCount returns the number of product columns.
	ProductCount() int
}

// Status is the lifecycle state of a Solver.
type Status int

const (
	// StatusPending means Solve has not finished yet.
	StatusPending Status = iota
	// StatusOptimal means no negative reduced cost remains.
	StatusOptimal
	// StatusUnbounded means an entering column had no leaving row.
	StatusUnbounded
	// StatusIterationLimit means the pivot budget ran out.
	StatusIterationLimit
	// StatusCanceled means the context was canceled or the time limit expired.
	StatusCanceled
)

// String returns the lower-case status name.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusOptimal:
		return "optimal"
	case StatusUnbounded:
		return "unbounded"
	case StatusIterationLimit:
		return "iteration limit"
	case StatusCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}
