// SPDX-License-Identifier: MIT
// Package matrix - determinant, minors, cofactors, adjugate and inverse.
//
// Purpose:
//   - Det reads the determinant off the echelon diagonal (O(n³)).
//   - Minor/Cofactor/Comatrix/Adjoint build the classical adjugate by taking
//     one determinant per (i,j) sub-matrix; Inverse = Adjoint / Det.
//
// Cost model:
//   - Det: one EchelonForm, Time O(n³).
//   - Comatrix/Adjoint/Inverse: n² determinants of order n-1, Time O(n⁵).
//     Fine for the small systems this package targets; use a factorisation
//     library for anything large.
//
// Numeric policy:
//   - No pivot search (see impl_echelon.go). Every determinant, and therefore
//     every inverse, inherits the single-swap behaviour.
//   - Singularity is decided by an exact comparison det == 0.

package matrix

import (
	"fmt"
)

// Det returns the determinant of a square matrix ("detByEchelon").
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m).
//   - Stage 2: 1×1 → the single element.
//   - Stage 3: EchelonForm(m, TrackSwaps); product of the reduced diagonal
//     multiplied by (-1)^swaps.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (matches ErrDimensionMismatch).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Det(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	dm, err := denseOf(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	if dm.r == 1 {
		return dm.data[0], nil
	}

	ech, err := EchelonForm(dm, TrackSwaps)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	prod := 1.0
	for i := 0; i < dm.r; i++ {
		prod *= ech.Reduced.data[i*dm.c+i]
	}

	return prod * ech.Sign(), nil
}

// MinorMatrix returns the sub-matrix of m with row i and column j removed.
//
// Implementation:
//   - Stage 1: validate m (non-nil, at least 2×2) and the indices.
//   - Stage 2: build the kept index sets and copy through Dense.Induced.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange, ErrInvalidDimensions (1-row or 1-column input).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func MinorMatrix(m Matrix, i, j int) (*Dense, error) {
	dm, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opMinorMatrix, err)
	}
	if err = ValidateRowIndex(dm, i); err != nil {
		return nil, matrixErrorf(opMinorMatrix, err)
	}
	if err = ValidateColIndex(dm, j); err != nil {
		return nil, matrixErrorf(opMinorMatrix, err)
	}

	res, err := dm.Induced(indicesWithout(dm.r, i), indicesWithout(dm.c, j))
	if err != nil {
		return nil, matrixErrorf(opMinorMatrix, err)
	}

	return res, nil
}

// indicesWithout returns 0..n-1 without skip.
func indicesWithout(n, skip int) []int {
	out := make([]int, 0, n-1)
	for k := 0; k < n; k++ {
		if k != skip {
			out = append(out, k)
		}
	}

	return out
}

// Minor returns Det(MinorMatrix(m, i, j)).
// For a 1×1 matrix the minor is the empty matrix, whose determinant is 1;
// this makes Inverse([[a]]) == [[1/a]].
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOutOfRange.
func Minor(m Matrix, i, j int) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opMinor, err)
	}
	if err := ValidateRowIndex(m, i); err != nil {
		return 0, matrixErrorf(opMinor, err)
	}
	if err := ValidateColIndex(m, j); err != nil {
		return 0, matrixErrorf(opMinor, err)
	}
	if m.Rows() == 1 {
		return 1, nil
	}

	sub, err := MinorMatrix(m, i, j)
	if err != nil {
		return 0, matrixErrorf(opMinor, err)
	}
	det, err := Det(sub)
	if err != nil {
		return 0, matrixErrorf(opMinor, err)
	}

	return det, nil
}

// Cofactor returns (-1)^(i+j) · Minor(m, i, j).
func Cofactor(m Matrix, i, j int) (float64, error) {
	minor, err := Minor(m, i, j)
	if err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	if (i+j)%2 == 1 {
		return -minor, nil
	}

	return minor, nil
}

// Comatrix returns the matrix of all cofactors, same shape as m.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n⁵) (n² determinants of order n-1), Space O(n²).
func Comatrix(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opComatrix, err)
	}
	dm, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opComatrix, err)
	}

	n := dm.r
	res := &Dense{r: n, c: n, data: make([]float64, n*n)}
	var i, j int
	var cof float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if cof, err = Cofactor(dm, i, j); err != nil {
				return nil, matrixErrorf(opComatrix, fmt.Errorf("(%d,%d): %w", i, j, err))
			}
			res.data[i*n+j] = cof
		}
	}

	return res, nil
}

// Adjoint returns the adjugate Transpose(Comatrix(m)).
func Adjoint(m Matrix) (*Dense, error) {
	com, err := Comatrix(m)
	if err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}
	adj, err := Transpose(com)
	if err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}

	return adj, nil
}

// Inverse returns m⁻¹ = Adjoint(m) · (1 / Det(m)).
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m).
//   - Stage 2: det = Det(m); det == 0 → ErrSingular (the reciprocal is undefined).
//   - Stage 3: Scale(Adjoint(m), 1/det).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n⁵) dominated by Adjoint, Space O(n²).
//
// Notes:
//   - Because Det uses the single-swap echelon policy, some non-singular
//     inputs whose leading rows share zeros are reported as ErrSingular.
func Inverse(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	det, err := Det(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if det == 0 {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	adj, err := Adjoint(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv, err := Scale(adj, 1/det)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}
