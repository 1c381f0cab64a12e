// SPDX-License-Identifier: MIT

// Package vector implements arithmetic on fixed-length float64 sequences.
//
// A vector is a plain []float64. Binary operations require operands of equal
// length and fail with ErrDimensionMismatch otherwise; Cross is defined for
// length 3 only. Every operation returns a new slice and leaves its inputs
// untouched, so calls are safe to run concurrently.
//
//	d, _ := vector.Dot([]float64{1, 2, 3}, []float64{4, 5, 6})        // 32
//	c, _ := vector.Cross([]float64{1, 0, 0}, []float64{0, 1, 0})      // [0 0 1]
//	dist, _ := vector.EuclideanDistance([]float64{0, 0}, []float64{3, 4}) // 5
package vector
