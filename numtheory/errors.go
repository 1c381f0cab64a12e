// SPDX-License-Identifier: MIT
// Package numtheory: sentinel error set.

package numtheory

import "errors"

var (
	// ErrInvalidArgument indicates a negative input where a non-negative
	// integer is required, or a modulus below 1.
	ErrInvalidArgument = errors.New("numtheory: invalid argument")

	// ErrNotInvertible indicates that a has no inverse modulo m (gcd(a, m) != 1).
	ErrNotInvertible = errors.New("numtheory: not invertible")

	// ErrOverflow indicates a result that does not fit in int64.
	ErrOverflow = errors.New("numtheory: int64 overflow")
)
