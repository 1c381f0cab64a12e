// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// Operations wrap these with an operation tag; match them with errors.Is.

package vector

import "errors"

var (
	// ErrDimensionMismatch indicates operands of different length, or a
	// cross product whose operands are not both of length 3.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrZeroMagnitude indicates a division by a zero norm
	// (CosineSimilarity, Angle, Normalize).
	ErrZeroMagnitude = errors.New("vector: zero magnitude")
)
