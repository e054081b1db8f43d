// Package matrix provides the dense storage that tableau algorithms run on.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set, row and
//     column copies; every write rejects NaN/Inf.
//   - Row operations (ScaleRow, AddScaledRow) and Pivot, one Gauss-Jordan
//     elimination step that turns a column into a unit vector.
//   - Validators for vectors fed into matrix-backed algorithms.
//
// Errors are package sentinels (ErrOutOfRange, ErrSingular, ...) wrapped with
// the method and coordinates; match them with errors.Is.
//
//	m, _ := matrix.NewDenseFromRows([][]float64{{2, 4}, {1, 3}})
//	_ = m.Pivot(0, 0) // row 0 becomes [1, 2], row 1 becomes [0, 1]
package matrix
