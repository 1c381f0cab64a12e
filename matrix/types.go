// SPDX-License-Identifier: MIT

// Package matrix: the public read-only Matrix contract and echelon result types.
// Matrices are values: no kernel in this package mutates its inputs and the
// Matrix interface deliberately exposes no setter.
package matrix

// Matrix represents a two-dimensional, read-only array of float64 values.
//
// Every kernel accepts any Matrix and returns a freshly allocated *Dense.
// *Dense operands take a flat-slice fast path; other implementations (for
// example a gonum adapter, see gonum.go) are materialised once through At.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// SwapTracking selects whether EchelonForm reports the number of row swaps.
type SwapTracking int

const (
	// IgnoreSwaps returns only the reduced matrix; EchelonResult.Swaps stays 0.
	IgnoreSwaps SwapTracking = iota
	// TrackSwaps also counts pivot-zero row exchanges, which Det needs to fix
	// the sign of the diagonal product.
	TrackSwaps
)

// String implements fmt.Stringer.
func (s SwapTracking) String() string {
	if s == TrackSwaps {
		return "TrackSwaps"
	}
	return "IgnoreSwaps"
}

// EchelonResult is the outcome of EchelonForm.
//   - Reduced: the row-reduced matrix (same shape as the input).
//   - Swaps:   number of pivot-zero row exchanges; meaningful only if Tracked.
//   - Tracked: true when the reduction ran with TrackSwaps.
type EchelonResult struct {
	Reduced *Dense
	Swaps   int
	Tracked bool
}

// Sign returns (-1)^Swaps, the factor that corrects a determinant read off
// the reduced diagonal. It is 1 for untracked results.
func (r EchelonResult) Sign() float64 {
	if r.Swaps%2 == 1 {
		return -1
	}
	return 1
}
