// SPDX-License-Identifier: MIT
// Package vector - element-wise arithmetic, products and norms.
//
// Notes:
//   - Every function allocates its result; inputs are never written.
//   - Length checks happen before any arithmetic (fail-fast).
//   - Summations run left to right so results are bit-reproducible.

package vector

import (
	"fmt"
	"math"
)

// Operation name constants for error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opDot       = "Dot"
	opCross     = "Cross"
	opDistance  = "EuclideanDistance"
	opCosine    = "CosineSimilarity"
	opAngle     = "Angle"
	opNormalize = "Normalize"
)

// crossLen is the only length Cross accepts.
const crossLen = 3

// vectorErrorf wraps err with an operation tag, keeping the sentinel reachable via %w.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateSameLen ensures len(a) == len(b).
func validateSameLen(a, b []float64) error {
	if len(a) != len(b) {
		return fmt.Errorf("len %d vs %d: %w", len(a), len(b), ErrDimensionMismatch)
	}

	return nil
}

// Add returns a + b.
//
// Errors:
//   - ErrDimensionMismatch (len(a) != len(b)).
//
// Complexity:
//   - Time O(n), Space O(n).
func Add(a, b []float64) ([]float64, error) {
	if err := validateSameLen(a, b); err != nil {
		return nil, vectorErrorf(opAdd, err)
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}

	return out, nil
}

// Sub returns a - b.
func Sub(a, b []float64) ([]float64, error) {
	if err := validateSameLen(a, b); err != nil {
		return nil, vectorErrorf(opSub, err)
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}

	return out, nil
}

// Scale returns k·v. It never fails.
func Scale(v []float64, k float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x * k
	}

	return out
}

// Dot returns Σ a[i]·b[i].
//
// Errors:
//   - ErrDimensionMismatch (len(a) != len(b)).
func Dot(a, b []float64) (float64, error) {
	if err := validateSameLen(a, b); err != nil {
		return 0, vectorErrorf(opDot, err)
	}
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum, nil
}

// Cross returns a × b for 3-component vectors, expanding the determinant
//
//	| i  j  k  |
//	| a0 a1 a2 |
//	| b0 b1 b2 |
//
// along its first row.
//
// Errors:
//   - ErrDimensionMismatch (either operand not of length 3).
func Cross(a, b []float64) ([]float64, error) {
	if len(a) != crossLen || len(b) != crossLen {
		return nil, vectorErrorf(opCross, fmt.Errorf("len %d and %d, want %d: %w", len(a), len(b), crossLen, ErrDimensionMismatch))
	}

	return []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}, nil
}

// Magnitude returns the Euclidean norm sqrt(Σ v[i]²). The empty vector has magnitude 0.
func Magnitude(v []float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}

	return math.Sqrt(sum)
}

// EuclideanDistance returns Magnitude(a + (-1)·b).
//
// Errors:
//   - ErrDimensionMismatch (len(a) != len(b)).
func EuclideanDistance(a, b []float64) (float64, error) {
	diff, err := Add(a, Scale(b, -1))
	if err != nil {
		return 0, vectorErrorf(opDistance, err)
	}

	return Magnitude(diff), nil
}

// CosineSimilarity returns Dot(a,b) / (Magnitude(a)·Magnitude(b)).
//
// Errors:
//   - ErrDimensionMismatch (len(a) != len(b)).
//   - ErrZeroMagnitude (either vector has zero norm; the ratio is undefined).
func CosineSimilarity(a, b []float64) (float64, error) {
	dot, err := Dot(a, b)
	if err != nil {
		return 0, vectorErrorf(opCosine, err)
	}
	denom := Magnitude(a) * Magnitude(b)
	if denom == 0 {
		return 0, vectorErrorf(opCosine, ErrZeroMagnitude)
	}

	return dot / denom, nil
}

// Angle returns arccos(CosineSimilarity(a, b)) in radians, within [0, π].
//
// Rounding can push the cosine of (anti)parallel vectors just past ±1, where
// arccos is NaN; the cosine is clamped to [-1, 1] first.
//
// Errors:
//   - ErrDimensionMismatch, ErrZeroMagnitude (see CosineSimilarity).
func Angle(a, b []float64) (float64, error) {
	cos, err := CosineSimilarity(a, b)
	if err != nil {
		return 0, vectorErrorf(opAngle, err)
	}

	return math.Acos(math.Max(-1, math.Min(1, cos))), nil
}

// Normalize returns v / Magnitude(v).
//
// Errors:
//   - ErrZeroMagnitude (v is the zero or empty vector).
func Normalize(v []float64) ([]float64, error) {
	norm := Magnitude(v)
	if norm == 0 {
		return nil, vectorErrorf(opNormalize, ErrZeroMagnitude)
	}

	return Scale(v, 1/norm), nil
}
