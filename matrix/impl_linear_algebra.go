// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, scalar scaling, transpose, matrix
// multiplication and the row primitives (AddRows, MultiplyRowCol, SwapRows,
// ReplaceRow) the echelon reduction is built from. All functions perform
// strict fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Every kernel returns a freshly allocated *Dense; inputs are never mutated.
//   - *Dense operands are read directly; other Matrix implementations are
//     materialised once through denseOf.

package matrix

import (
	"fmt"
)

// ZeroSum is the initial accumulator value for dot products.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in the echelon reduction.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd            = "Add"
	opSub            = "Sub"
	opAddRows        = "AddRows"
	opMul            = "Mul"
	opMultiplyRowCol = "MultiplyRowCol"
	opTranspose      = "Transpose"
	opScale          = "Scale"
	opSwapRows       = "SwapRows"
	opReplaceRow     = "ReplaceRow"
	opEchelon        = "EchelonForm"
	opPivot          = "PivotMultiplier"
	opDet            = "Det"
	opMinorMatrix    = "MinorMatrix"
	opMinor          = "Minor"
	opCofactor       = "Cofactor"
	opComatrix       = "Comatrix"
	opAdjoint        = "Adjoint"
	opInverse        = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
//   - Keep `tag` to the op* constants to simplify log/search pipelines.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// AddRows returns the element-wise sum r1 + r2 of two equal-length rows.
// It is the primitive Add is built on, so a column mismatch between two
// matrices surfaces here.
//
// Errors:
//   - ErrDimensionMismatch when len(r1) != len(r2).
//
// Complexity:
//   - Time O(n), Space O(n).
func AddRows(r1, r2 []float64) ([]float64, error) {
	if len(r1) != len(r2) {
		return nil, matrixErrorf(opAddRows, fmt.Errorf("len %d vs %d: %w", len(r1), len(r2), ErrDimensionMismatch))
	}
	out := make([]float64, len(r1))
	for k := range r1 {
		out[k] = r1[k] + r2[k]
	}

	return out, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Implementation:
//   - Stage 1: validate both operands are non-nil and have the same row count.
//   - Stage 2: for each row i, C[i] = AddRows(A[i], B[i]); a column mismatch is
//     reported by AddRows on the first row.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (row or column mismatch).
//
// Determinism:
//   - Fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) {
	if err := ValidateBinarySameRows(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	da, err := denseOf(a)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	db, err := denseOf(b)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	res := &Dense{r: da.r, c: da.c, data: make([]float64, 0, da.r*da.c)}
	var row []float64
	for i := 0; i < da.r; i++ {
		if row, err = AddRows(da.rowView(i), db.rowView(i)); err != nil {
			return nil, matrixErrorf(opAdd, fmt.Errorf("row %d: %w", i, err))
		}
		res.data = append(res.data, row...)
	}

	return res, nil
}

// Sub computes the element-wise difference C = A − B.
// Both operands must have identical shapes.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	da, err := denseOf(a)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	db, err := denseOf(b)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	res := &Dense{r: da.r, c: da.c, data: make([]float64, len(da.data))}
	for idx := range da.data { // flat 0..n-1
		res.data[idx] = da.data[idx] - db.data[idx]
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j]
// (the "multiplyLinear" primitive).
//
// Implementation:
//   - Stage 1: ValidateNotNil(m) via denseOf.
//   - Stage 2: single flat multiply into a fresh buffer.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - alpha = 0 yields an explicit zero matrix with the same shape.
//   - NaN/Inf in alpha propagate; Inverse guards its reciprocal before calling Scale.
func Scale(m Matrix, alpha float64) (*Dense, error) {
	dm, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res := &Dense{r: dm.r, c: dm.c, data: make([]float64, len(dm.data))}
	for idx, v := range dm.data {
		res.data[idx] = v * alpha
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Column i of m becomes row i of the result, which is Cols(m)×Rows(m).
//
// Errors:
//   - ErrNilMatrix.
//
// Determinism:
//   - Fixed i→j traversal of the source.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Mul calls Transpose(b) once and then reads columns of b as contiguous rows.
func Transpose(m Matrix) (*Dense, error) {
	dm, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := dm.r, dm.c
	res := &Dense{r: cols, c: rows, data: make([]float64, rows*cols)}
	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = dm.data[baseSrc+j]
		}
	}

	return res, nil
}

// MultiplyRowCol returns the dot product Σ row[k]*col[k].
//
// Errors:
//   - ErrDimensionMismatch when len(row) != len(col).
//
// Determinism:
//   - Accumulates in index order k = 0..n-1.
//
// Complexity:
//   - Time O(n), Space O(1).
func MultiplyRowCol(row, col []float64) (float64, error) {
	if len(row) != len(col) {
		return 0, matrixErrorf(opMultiplyRowCol, fmt.Errorf("len %d vs %d: %w", len(row), len(col), ErrDimensionMismatch))
	}
	sum := ZeroSum
	for k := range row {
		sum += row[k] * col[k]
	}

	return sum, nil
}

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: validate A,B non-nil and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: Bt = Transpose(B), so every column of B is a contiguous row.
//   - Stage 3: C[i][j] = MultiplyRowCol(A[i], Bt[j]) for i→j.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed i→j→k order; each entry is summed in k order.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c + n*c) for C and the transposed copy of B.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := denseOf(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bt, err := Transpose(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, bCols := da.r, bt.r
	res := &Dense{r: aRows, c: bCols, data: make([]float64, aRows*bCols)}
	var i, j int
	var v float64
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			if v, err = MultiplyRowCol(da.rowView(i), bt.rowView(j)); err != nil {
				return nil, matrixErrorf(opMul, err)
			}
			res.data[i*bCols+j] = v
		}
	}

	return res, nil
}

// SwapRows returns a copy of m with rows i and j exchanged; every other row
// keeps its position. i == j yields a plain copy.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
//
// Complexity:
//   - Time O(r*c) for the copy, Space O(r*c).
func SwapRows(m Matrix, i, j int) (*Dense, error) {
	dm, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opSwapRows, err)
	}
	if err = ValidateRowIndex(dm, i); err != nil {
		return nil, matrixErrorf(opSwapRows, err)
	}
	if err = ValidateRowIndex(dm, j); err != nil {
		return nil, matrixErrorf(opSwapRows, err)
	}

	res := dm.clone()
	res.swapRowsInPlace(i, j)

	return res, nil
}

// ReplaceRow returns a copy of m whose row i is replaced by row.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (bad i), ErrDimensionMismatch (len(row) != Cols).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ReplaceRow(m Matrix, i int, row []float64) (*Dense, error) {
	dm, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opReplaceRow, err)
	}
	if err = ValidateRowIndex(dm, i); err != nil {
		return nil, matrixErrorf(opReplaceRow, err)
	}
	if err = ValidateVecLen(row, dm.c); err != nil {
		return nil, matrixErrorf(opReplaceRow, err)
	}

	res := dm.clone()
	copy(res.rowView(i), row)

	return res, nil
}

// swapRowsInPlace exchanges rows i and j of a matrix the caller owns.
func (m *Dense) swapRowsInPlace(i, j int) {
	if i == j {
		return
	}
	ri, rj := m.rowView(i), m.rowView(j)
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}
