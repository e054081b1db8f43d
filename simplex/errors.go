// SPDX-License-Identifier: MIT

package simplex

import "errors"

// Sentinel errors. They are wrapped with call-site context; match with errors.Is.
var (
	// ErrNilProblem indicates New was called without problem data.
	ErrNilProblem = errors.New("simplex: nil problem data")

	// ErrDimensionMismatch indicates resources, prices or coefficient rows whose
	// lengths disagree with the problem data.
	ErrDimensionMismatch = errors.New("simplex: dimension mismatch")

	// ErrNaNInf indicates a NaN or infinite resource, price or coefficient.
	ErrNaNInf = errors.New("simplex: NaN or Inf in input")

	// ErrNegativeResource indicates a resource quantity below zero; the
	// all-slack starting basis would be infeasible.
	ErrNegativeResource = errors.New("simplex: negative resource quantity")

	// ErrUnbounded indicates an entering column with no positive ratio in any
	// constraint row: the objective grows without limit.
	ErrUnbounded = errors.New("simplex: unbounded problem")

	// ErrIterationLimit indicates the pivot budget ran out before optimality.
	ErrIterationLimit = errors.New("simplex: iteration limit reached")

	// ErrAlreadySolved indicates a second Solve on the same Solver.
	ErrAlreadySolved = errors.New("simplex: solver already ran")

	// ErrNotSolved indicates a report requested before an optimal solve.
	ErrNotSolved = errors.New("simplex: no optimal solution")

	// ErrUnknownPivotRule indicates a pivot rule name ParsePivotRule does not know.
	ErrUnknownPivotRule = errors.New("simplex: unknown pivot rule")
)
