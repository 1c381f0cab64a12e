// SPDX-License-Identifier: MIT

// Package matrix offers small, exact-policy dense linear algebra over float64.
//
// The matrix package provides:
//
//   - Dense, a row-major immutable-from-outside matrix, and the read-only
//     Matrix interface every kernel accepts.
//   - Arithmetic: Add, Sub, Scale (MultiplyLinear), Transpose, Mul, and the
//     row primitives AddRows, MultiplyRowCol, SwapRows, ReplaceRow.
//   - EchelonForm: forward Gaussian elimination with a single-swap zero-pivot
//     policy and optional swap tracking.
//   - Det (echelon diagonal × (-1)^swaps), MinorMatrix, Minor, Cofactor,
//     Comatrix, Adjoint and Inverse (= Adjoint / Det).
//   - Conversions to and from gonum.org/v1/gonum/mat.
//
// Every operation returns a new *Dense and reports failures through the
// sentinels in errors.go (ErrDimensionMismatch, ErrDivisionByZero,
// ErrSingular, ...), wrapped with the operation name.
//
// The engine does not search for pivots. It reproduces one reference
// algorithm exactly, limitation included; see EchelonForm.
//
//	A := matrix.MustFromRows([][]float64{{0, 4, 5}, {1, 2, 3}, {6, 7, 8}})
//	res, _ := matrix.EchelonForm(A, matrix.TrackSwaps)
//	// res.Reduced = [[1 2 3] [0 4 5] [0 0 -3.75]], res.Swaps = 1
package matrix
