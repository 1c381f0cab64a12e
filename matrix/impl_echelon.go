// SPDX-License-Identifier: MIT
// Package matrix - forward Gaussian elimination to echelon form.
//
// Purpose:
//   - Reduce a matrix to an upper-triangular-like form with row replacements,
//     the basis of Det.
//   - Reproduce one fixed pivoting policy exactly: a zero pivot triggers ONE
//     unconditional swap with the row directly below it. There is no search
//     further down and no partial/full pivoting.
//
// Known limitation (kept on purpose, outputs depend on it):
//   - If the row below a zero pivot is also zero in that column, the next inner
//     step sees a zero pivot again and swaps the two rows back. Such inputs do
//     not reach a valid triangular form, and Det reports 0 for them even when
//     the matrix is non-singular (e.g. the 3×3 anti-diagonal permutation).

package matrix

import "fmt"

// PivotMultiplier returns the factor that eliminates target using pivot:
//
//	multiplier = -target / pivot
//
// so that targetRow + multiplier*pivotRow has a zero in the pivot column.
//
// Errors:
//   - ErrDivisionByZero when pivot == 0 (no silent ±Inf/NaN).
//
// Complexity:
//   - O(1).
func PivotMultiplier(pivot, target float64) (float64, error) {
	if pivot == ZeroPivot {
		return 0, matrixErrorf(opPivot, fmt.Errorf("target %g: %w", target, ErrDivisionByZero))
	}

	return -target / pivot, nil
}

// EchelonForm performs forward Gaussian elimination without pivot search.
//
// Implementation:
//   - Stage 1: validate input (non-nil; Cols ≥ Rows-1 so every pivot A[i][i] exists).
//   - Stage 2: for i = 0..n-2, for j = i..n-2:
//     pivot = A[i][i];
//     if pivot == 0 → swap rows i and i+1, count the swap, continue with next j;
//     else A[j+1] = A[j+1] + PivotMultiplier(pivot, A[j+1][i]) * A[i].
//   - Stage 3: wrap the reduced copy in an EchelonResult; Swaps is filled only for TrackSwaps.
//
// Behavior highlights:
//   - Exactly one swap per zero-pivot encounter; see the package note on the
//     limitation this implies.
//   - The input is never mutated; the reduction runs on a private copy.
//
// Inputs:
//   - m:    any non-nil matrix (rectangular allowed, n = Rows).
//   - mode: IgnoreSwaps or TrackSwaps.
//
// Returns:
//   - EchelonResult{Reduced, Swaps, Tracked}.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (too few columns),
//     ErrDivisionByZero (propagated from PivotMultiplier).
//
// Determinism:
//   - Fixed i→j loop order; identical input gives bit-identical output.
//
// Complexity:
//   - Time O(n²·c), Space O(n·c) for the working copy.
//
// AI-Hints:
//   - Use TrackSwaps whenever the reduced diagonal feeds a determinant; the
//     sign is EchelonResult.Sign().
func EchelonForm(m Matrix, mode SwapTracking) (EchelonResult, error) {
	dm, err := denseOf(m)
	if err != nil {
		return EchelonResult{}, matrixErrorf(opEchelon, err)
	}
	n := dm.r
	if n > 1 && dm.c < n-1 {
		return EchelonResult{}, matrixErrorf(opEchelon, fmt.Errorf("%dx%d has no pivot in column %d: %w", dm.r, dm.c, n-2, ErrDimensionMismatch))
	}

	work := dm.clone() // private copy; callers never observe the row operations
	swaps := 0

	var (
		i, j       int
		pivot      float64
		multiplier float64
		scaled     []float64
		replaced   []float64
	)
	for i = 0; i < n-1; i++ {
		for j = i; j < n-1; j++ {
			pivot = work.data[i*work.c+i]
			if pivot == ZeroPivot {
				// Single unconditional swap with the row directly below.
				work.swapRowsInPlace(i, i+1)
				swaps++
				continue
			}
			multiplier, err = PivotMultiplier(pivot, work.data[(j+1)*work.c+i])
			if err != nil {
				return EchelonResult{}, matrixErrorf(opEchelon, err)
			}
			scaled = scaleRow(work.rowView(i), multiplier)
			if replaced, err = AddRows(work.rowView(j+1), scaled); err != nil {
				return EchelonResult{}, matrixErrorf(opEchelon, err)
			}
			copy(work.rowView(j+1), replaced)
		}
	}

	res := EchelonResult{Reduced: work, Tracked: mode == TrackSwaps}
	if res.Tracked {
		res.Swaps = swaps
	}

	return res, nil
}

// scaleRow returns k*row in a new slice.
func scaleRow(row []float64, k float64) []float64 {
	out := make([]float64, len(row))
	for idx, v := range row {
		out[idx] = v * k
	}

	return out
}
