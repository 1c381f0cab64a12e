// SPDX-License-Identifier: MIT
// Package numtheory - extended Euclidean algorithm and derived helpers.
//
// Notes:
//   - All inputs are non-negative int64; negatives fail with ErrInvalidArgument.
//   - Bézout coefficients are bounded by the inputs, so the recurrence itself
//     cannot overflow. Only LCM can leave the int64 range.

package numtheory

import (
	"fmt"
	"math"
)

const (
	opEuclid     = "ExtendedEuclid"
	opGCD        = "GCD"
	opLCM        = "LCM"
	opModInverse = "ModInverse"
)

func numErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Bezout is the result of ExtendedEuclid.
//   - GCD: greatest common divisor of the inputs.
//   - M, N: the inputs in the order the recurrence used them (M >= N).
//   - X, Y: coefficients with X*M + Y*N == GCD.
type Bezout struct {
	GCD  int64
	X, Y int64
	M, N int64
}

// Holds reports whether X*M + Y*N == GCD.
func (b Bezout) Holds() bool {
	return b.X*b.M+b.Y*b.N == b.GCD
}

// CoefficientsFor returns the coefficients in the order of (m, n), the
// arguments originally passed to ExtendedEuclid, so x*m + y*n == GCD.
func (b Bezout) CoefficientsFor(m, n int64) (x, y int64) {
	if m == b.M && n == b.N {
		return b.X, b.Y
	}
	return b.Y, b.X
}

// String implements fmt.Stringer.
func (b Bezout) String() string {
	return fmt.Sprintf("%d = %d*%d + %d*%d", b.GCD, b.X, b.M, b.Y, b.N)
}

// ExtendedEuclid computes gcd(m, n) and Bézout coefficients.
//
// Implementation:
//   - Stage 1: reject negative input; order the pair so M >= N.
//   - Stage 2: N == 0 → (M, 1, 0).
//   - Stage 3: seed (a', b') = (1, 0) and (a, b) = (0, 1); repeat
//     c = q*d + r, and while r != 0 rotate (c, d) = (d, r) and
//     (a', a) = (a, a' - q*a), (b', b) = (b, b' - q*b).
//     The divisor at r == 0 is the GCD with coefficients (a, b).
//
// Errors:
//   - ErrInvalidArgument (m < 0 or n < 0).
//
// Complexity:
//   - O(log min(m, n)) divisions.
func ExtendedEuclid(m, n int64) (Bezout, error) {
	if m < 0 || n < 0 {
		return Bezout{}, numErrorf(opEuclid, fmt.Errorf("(%d, %d): %w", m, n, ErrInvalidArgument))
	}
	if m < n {
		m, n = n, m
	}
	if n == 0 {
		return Bezout{GCD: m, X: 1, Y: 0, M: m, N: n}, nil
	}

	var a0, a, b0, b int64 = 1, 0, 0, 1
	var q, r int64
	c, d := m, n
	for {
		q, r = c/d, c%d
		if r == 0 {
			return Bezout{GCD: d, X: a, Y: b, M: m, N: n}, nil
		}
		c, d = d, r
		a0, a = a, a0-q*a
		b0, b = b, b0-q*b
	}
}

// GCD returns the greatest common divisor of two non-negative integers.
// GCD(0, 0) is 0.
func GCD(m, n int64) (int64, error) {
	bz, err := ExtendedEuclid(m, n)
	if err != nil {
		return 0, numErrorf(opGCD, err)
	}

	return bz.GCD, nil
}

// LCM returns the least common multiple of two non-negative integers.
// LCM with a zero operand is 0.
//
// Errors:
//   - ErrInvalidArgument (negative input), ErrOverflow (result > MaxInt64).
func LCM(m, n int64) (int64, error) {
	g, err := GCD(m, n)
	if err != nil {
		return 0, numErrorf(opLCM, err)
	}
	if m == 0 || n == 0 {
		return 0, nil
	}
	k := m / g
	if k > math.MaxInt64/n {
		return 0, numErrorf(opLCM, fmt.Errorf("(%d, %d): %w", m, n, ErrOverflow))
	}

	return k * n, nil
}

// ModInverse returns x in [0, m) with a*x ≡ 1 (mod m).
// a may be negative; it is reduced modulo m first.
//
// Errors:
//   - ErrInvalidArgument (m < 1).
//   - ErrNotInvertible (gcd(a, m) != 1).
func ModInverse(a, m int64) (int64, error) {
	if m < 1 {
		return 0, numErrorf(opModInverse, fmt.Errorf("modulus %d: %w", m, ErrInvalidArgument))
	}
	a %= m
	if a < 0 {
		a += m
	}

	bz, err := ExtendedEuclid(a, m)
	if err != nil {
		return 0, numErrorf(opModInverse, err)
	}
	if bz.GCD != 1 {
		return 0, numErrorf(opModInverse, fmt.Errorf("gcd(%d, %d) = %d: %w", a, m, bz.GCD, ErrNotInvertible))
	}
	x, _ := bz.CoefficientsFor(a, m)
	x %= m
	if x < 0 {
		x += m
	}

	return x, nil
}
