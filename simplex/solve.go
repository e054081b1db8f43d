// SPDX-License-Identifier: MIT

// Package simplex - the solve loop.
//
// State machine: Pending → Optimal | Unbounded | IterationLimit | Canceled.
// Each transition out of Pending is terminal; committed pivots are never undone.
package simplex

import (
	"context"
	"fmt"
	"log/slog"
)

// Solve runs the simplex method to optimality with a background context.
// See SolveContext.
func (s *Solver) Solve() error {
	return s.SolveContext(context.Background())
}

// SolveContext pivots until no reduced cost is below -eps.
//
// Implementation:
//   - Stage 1: refuse a second run; arm the optional time limit.
//   - Stage 2: loop { check ctx; select pivot; stop on optimal/unbounded;
//     enforce the pivot budget; commit the pivot }.
//   - Stage 3: on optimality, extract product quantities once.
//
// Errors:
//   - ErrAlreadySolved on a second call.
//   - ErrUnbounded when an entering column has no leaving row.
//   - ErrIterationLimit when the pivot budget is exhausted.
//   - ctx.Err() (context.Canceled or context.DeadlineExceeded), wrapped.
//
// Complexity: O(k·m·(n+m)) for k pivots.
func (s *Solver) SolveContext(ctx context.Context) error {
	if s.started {
		return fmt.Errorf("simplex: Solve (status %s): %w", s.status, ErrAlreadySolved)
	}
	s.started = true

	if s.opts.timeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.timeLimit)
		defer cancel()
	}

	for {
		if err := ctx.Err(); err != nil {
			s.status = StatusCanceled
			return fmt.Errorf("simplex: Solve after %d pivots: %w", s.iterations, err)
		}

		p, err := s.selectPivot()
		if err != nil {
			return err
		}
		switch p.outcome {
		case pivotOptimal:
			s.status = StatusOptimal
			s.quantities = s.extractQuantities()
			s.opts.logger.LogAttrs(ctx, slog.LevelDebug, "simplex optimal",
				slog.Int("pivots", s.iterations),
				slog.Float64("objective", s.ObjectiveValue()),
			)

			return nil
		case pivotUnbounded:
			s.status = StatusUnbounded
			return fmt.Errorf("simplex: Solve: column %d after %d pivots: %w", p.col, s.iterations, ErrUnbounded)
		}

		if s.iterations >= s.opts.maxIter {
			s.status = StatusIterationLimit
			return fmt.Errorf("simplex: Solve: %d pivots: %w", s.iterations, ErrIterationLimit)
		}
		if err = s.step(p.row, p.col); err != nil {
			return err
		}
		s.opts.logger.LogAttrs(ctx, slog.LevelDebug, "simplex pivot",
			slog.Int("iteration", s.iterations),
			slog.String("rule", s.opts.rule.String()),
			slog.Int("row", p.row),
			slog.Int("col", p.col),
		)
	}
}

// step commits one pivot: Gauss-Jordan elimination, then basis bookkeeping.
func (s *Solver) step(row, col int) error {
	if err := s.tab.Pivot(row, col); err != nil {
		return fmt.Errorf("simplex: pivot %d: %w", s.iterations+1, err)
	}

	// Whatever product was basic in row leaves the basis.
	for j, r := range s.basis {
		if r == row {
			s.basis[j] = -1
		}
	}
	if col < s.n {
		s.basis[col] = row
	}
	s.rowVar[row] = col
	s.iterations++

	return nil
}
