// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations and pivot selection.
//
// Purpose:
//   - In-place row transforms used by row reduction: swap, scale, add-scaled.
//   - Partial pivot query: the largest |a[i,col]| at or below a starting row.
//
// Determinism:
//   - Rows are scanned top-down; ties keep the first (smallest) row index.
//
// AI-Hints:
//   - These operate on the matrix only. Code that also carries a right-hand
//     side must mirror every call on its vector (see linsys.System).

package matrix

import (
	"fmt"
	"math"
)

const (
	ctxSwapRows       = "SwapRows"
	ctxScaleRow       = "ScaleRow"
	ctxAddScaledRow   = "AddScaledRow"
	ctxSelectPivotRow = "SelectPivotRow"
)

// rowErrorf wraps err with a row-operation tag and the row arguments.
func rowErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, i, j, err)
}

// checkRow reports whether 0 <= i < m.r.
func (m *Dense) checkRow(i int) bool { return i >= 0 && i < m.r }

// SwapRows exchanges rows i and j in place.
// MAIN DESCRIPTION:
//   - Elementary operation of type I; i == j is a no-op.
//
// Errors:
//   - ErrOutOfRange if either index is outside [0, Rows()).
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) SwapRows(i, j int) error {
	if !m.checkRow(i) || !m.checkRow(j) {
		return rowErrorf(ctxSwapRows, i, j, ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	ri := m.data[i*m.c : (i+1)*m.c]
	rj := m.data[j*m.c : (j+1)*m.c]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}

	return nil
}

// ScaleRow multiplies every entry of row i by k in place.
// MAIN DESCRIPTION:
//   - Elementary operation of type II.
//
// Errors:
//   - ErrOutOfRange for a bad index.
//   - ErrNaNInf if k is not finite and the numeric policy is on.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) ScaleRow(i int, k float64) error {
	if !m.checkRow(i) {
		return rowErrorf(ctxScaleRow, i, i, ErrOutOfRange)
	}
	if m.validateNaNInf && isNonFinite(k) {
		return rowErrorf(ctxScaleRow, i, i, ErrNaNInf)
	}
	row := m.data[i*m.c : (i+1)*m.c]
	for j := range row {
		row[j] *= k
	}

	return nil
}

// AddScaledRow performs row[target] += k * row[source] in place.
// MAIN DESCRIPTION:
//   - Elementary operation of type III; target == source is allowed and
//     scales the row by (1+k).
//
// Errors:
//   - ErrOutOfRange for a bad index.
//   - ErrNaNInf if k is not finite and the numeric policy is on.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) AddScaledRow(target, source int, k float64) error {
	if !m.checkRow(target) || !m.checkRow(source) {
		return rowErrorf(ctxAddScaledRow, target, source, ErrOutOfRange)
	}
	if m.validateNaNInf && isNonFinite(k) {
		return rowErrorf(ctxAddScaledRow, target, source, ErrNaNInf)
	}
	if k == 0 {
		return nil
	}
	dst := m.data[target*m.c : (target+1)*m.c]
	src := m.data[source*m.c : (source+1)*m.c]
	for j := range dst {
		dst[j] += k * src[j]
	}

	return nil
}

// SelectPivotRow finds the partial pivot for column col among rows fromRow..Rows()-1.
// MAIN DESCRIPTION:
//   - Returns the row whose |a[row,col]| is largest, or NoPivot when every
//     candidate satisfies |a[row,col]| <= eps.
//
// Implementation:
//   - Stage 1: validate col and fromRow.
//   - Stage 2: single top-down scan keeping the strict maximum.
//
// Behavior highlights:
//   - Ties keep the uppermost row, so an already-good pivot is never swapped away.
//
// Errors:
//   - ErrOutOfRange if col or fromRow is outside the matrix.
//
// Complexity:
//   - Time O(r), Space O(1).
//
// Notes:
//   - eps must be finite and >= 0; anything else panics (programmer error).
func (m *Dense) SelectPivotRow(col, fromRow int, eps float64) (int, error) {
	mustEpsilon(eps)
	if col < 0 || col >= m.c || !m.checkRow(fromRow) {
		return NoPivot, rowErrorf(ctxSelectPivotRow, col, fromRow, ErrOutOfRange)
	}

	best, bestAbs := NoPivot, eps
	var a float64
	for i := fromRow; i < m.r; i++ {
		a = math.Abs(m.data[i*m.c+col])
		if a > bestAbs {
			best, bestAbs = i, a
		}
	}

	return best, nil
}
