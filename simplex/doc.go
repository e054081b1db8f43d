// SPDX-License-Identifier: MIT

// Package simplex maximizes the revenue of a production plan with the
// tableau simplex method.
//
// 🧠 Problem
//
//	maximize   Σ_j p_j x_j
//	subject to Σ_j a_ij x_j ≤ r_i   for every resource i
//	           x_j ≥ 0
//
// where a_ij comes from a ProblemData (usually a *problem.Table), r is the
// resources vector and p the prices vector.
//
// ⚙️ Usage:
//
//	s, err := simplex.New(resources, prices, problem.Default(),
//	  simplex.WithPivotRule(simplex.Bland),
//	  simplex.WithMaxIterations(500),
//	)
//	if err != nil {
//	  // ErrDimensionMismatch, ErrNaNInf, ErrNegativeResource, ...
//	}
//	if err = s.Solve(); err != nil {
//	  // ErrUnbounded, ErrIterationLimit, context errors
//	}
//	fmt.Println(s.ProductQuantities(), s.TotalValue())
//	fmt.Print(s)
//
// 📐 Algorithm
//
//   - The starting basis is all-slack: each constraint row is basic in its own
//     slack column. The objective row holds the negated prices, except that a
//     product consumed by some resource whose quantity is zero keeps a positive
//     price and so never enters first.
//   - Each iteration selects an entering column (reduced cost below -eps) and a
//     leaving row (smallest ratio RHS/a over coefficients above eps), runs one
//     Gauss-Jordan pivot (matrix.Dense.Pivot), then updates the basis.
//   - Dantzig's rule is the default. Bland's rule is available when cycling is
//     a concern; an iteration cap and an optional time limit bound every run.
//
// Complexity: each pivot costs O(m·(n+m)) for m resources and n products.
//
// A Solver runs once and is not safe for concurrent use.
package simplex
