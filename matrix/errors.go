// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation panics on user-triggered error conditions.
// Panics are reserved for nonsensical option values (see options.go).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Call sites wrap with fmt.Errorf("ctx: %w", ErrX) to attach coordinates;
// callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// shape/index -> NaN/Inf -> dimension mismatch -> singular pivot.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row/Col) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible lengths, e.g. a ragged
	// input to NewDenseFromRows or a vector of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates a nil vector where a non-empty one was required.
	ErrNilMatrix = errors.New("matrix: nil input")

	// ErrSingular is returned by Pivot when the pivot element is zero within eps.
	ErrSingular = errors.New("matrix: singular pivot")
)
