// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations and the Gauss-Jordan pivot.
//
// Purpose:
//   - Give tableau-style algorithms (simplex) the Gauss-Jordan pivot step,
//     built from two exported primitives: scale a row, and add a multiple of
//     one row to another.
//   - Operate directly on the flat row-major buffer; no allocations.
//
// Determinism:
//   - Fixed i→j loop order; identical inputs give bit-identical results.
package matrix

import "math"

// ScaleRow multiplies every element of row i by alpha in place.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Rows()).
//   - ErrNaNInf when alpha is non-finite.
//
// Complexity: O(c).
func (m *Dense) ScaleRow(i int, alpha float64) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxScale, i, 0, ErrOutOfRange)
	}
	if isNonFinite(alpha) {
		return denseErrorf(ctxScale, i, 0, ErrNaNInf)
	}
	row := m.data[i*m.c : (i+1)*m.c]
	for j := range row {
		row[j] *= alpha
	}

	return nil
}

// AddScaledRow performs row[dst] += alpha * row[src] in place.
// dst == src is legal and yields row *= (1+alpha).
//
// Errors:
//   - ErrOutOfRange when dst or src is outside [0, Rows()).
//   - ErrNaNInf when alpha is non-finite.
//
// Complexity: O(c).
func (m *Dense) AddScaledRow(dst, src int, alpha float64) error {
	if dst < 0 || dst >= m.r {
		return denseErrorf(ctxAddRow, dst, src, ErrOutOfRange)
	}
	if src < 0 || src >= m.r {
		return denseErrorf(ctxAddRow, dst, src, ErrOutOfRange)
	}
	if isNonFinite(alpha) {
		return denseErrorf(ctxAddRow, dst, src, ErrNaNInf)
	}
	dstRow := m.data[dst*m.c : (dst+1)*m.c]
	srcRow := m.data[src*m.c : (src+1)*m.c]
	for j := range dstRow {
		dstRow[j] += alpha * srcRow[j]
	}

	return nil
}

// Pivot performs one Gauss-Jordan elimination step around (row, col).
//
// Implementation:
//   - Stage 1: bounds-check (row, col); reject |a[row][col]| <= eps with ErrSingular.
//   - Stage 2: ScaleRow the pivot row by 1/pivot.
//   - Stage 3: for every other row k, AddScaledRow(k, row, -a[k][col]).
//
// Behavior highlights:
//   - Order matters: elimination uses the already-normalized pivot row.
//   - Postcondition: column col is the unit vector e_row (the pivot cell is set
//     to exactly 1 and eliminated cells to exactly 0 to stop drift).
//   - ErrOutOfRange and ErrSingular leave the matrix untouched.
//
// Errors:
//   - ErrOutOfRange, ErrSingular.
//   - ErrNaNInf when 1/pivot or an elimination factor is non-finite, which
//     takes arithmetic overflow (a zero tolerance with a subnormal pivot).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Pivot(row, col int) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxPivot, row, col, err)
	}
	pv := m.data[off]
	if math.Abs(pv) <= m.eps {
		return denseErrorf(ctxPivot, row, col, ErrSingular)
	}

	// Stage 2: normalize pivot row.
	if err = m.ScaleRow(row, 1/pv); err != nil {
		return denseErrorf(ctxPivot, row, col, err)
	}
	m.data[off] = 1

	// Stage 3: eliminate the pivot column from every other row.
	var k int
	var factor float64
	for k = 0; k < m.r; k++ {
		if k == row {
			continue
		}
		factor = m.data[k*m.c+col]
		if factor == 0 {
			continue
		}
		if err = m.AddScaledRow(k, row, -factor); err != nil {
			return denseErrorf(ctxPivot, row, col, err)
		}
		m.data[k*m.c+col] = 0
	}

	return nil
}
