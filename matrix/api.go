// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.
//   - Keep the textbook names (multiplyLinear, detByEchelon, adjugate) discoverable.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.

package matrix

import (
	"fmt"
	"math"
)

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
//
// AI-Hints: Use as the neutral element when checking Inverse(A)·A ≈ I.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}
	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	return NewIdentity(m.Rows())
}

// ToRows returns any Matrix as [][]float64.
func ToRows(m Matrix) ([][]float64, error) {
	dm, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf("ToRows", err)
	}
	return dm.ToRows(), nil
}

// ---------- Aliases (facades map 1:1 to kernels) ----------

// MultiplyLinear is an alias for Scale: every element times scalar.
func MultiplyLinear(m Matrix, scalar float64) (*Dense, error) { return Scale(m, scalar) }

// Product is an alias for Mul.
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// T is an alias for Transpose.
func T(m Matrix) (*Dense, error) { return Transpose(m) }

// DetByEchelon is an alias for Det.
func DetByEchelon(m Matrix) (float64, error) { return Det(m) }

// Adjugate is an alias for Adjoint.
func Adjugate(m Matrix) (*Dense, error) { return Adjoint(m) }

// InverseOf is an alias for Inverse.
func InverseOf(m Matrix) (*Dense, error) { return Inverse(m) }

// ---------- Inspection & comparison ----------

// Trace returns Σ m[i,i] of a square matrix.
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf("Trace", err)
	}
	dm, err := denseOf(m)
	if err != nil {
		return 0, matrixErrorf("Trace", err)
	}
	sum := ZeroSum
	for i := 0; i < dm.r; i++ {
		sum += dm.data[i*dm.c+i]
	}

	return sum, nil
}

// Equal reports whether a and b have the same shape and bit-equal elements
// (+0 == -0, NaN != NaN as in Go ==). Nil operands are never equal.
func Equal(a, b Matrix) bool {
	if ValidateBinarySameShape(a, b) != nil {
		return false
	}
	da, err := denseOf(a)
	if err != nil {
		return false
	}
	db, err := denseOf(b)
	if err != nil {
		return false
	}
	for idx := range da.data {
		if da.data[idx] != db.data[idx] {
			return false
		}
	}

	return true
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances give ErrNaNInf.
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for Inverse(A)·A ≈ I checks.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if math.IsNaN(rtol) || math.IsInf(rtol, 0) || math.IsNaN(atol) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", fmt.Errorf("rtol=%g atol=%g: %w", rtol, atol, ErrNaNInf))
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	da, err := denseOf(a)
	if err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	db, err := denseOf(b)
	if err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	var av, bv float64
	for idx := range da.data {
		av, bv = da.data[idx], db.data[idx]
		if math.IsNaN(av) || math.IsNaN(bv) {
			return false, nil
		}
		if math.IsInf(av, 0) || math.IsInf(bv, 0) {
			if av != bv {
				return false, nil
			}
			continue
		}
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false, nil
		}
	}

	return true, nil
}
