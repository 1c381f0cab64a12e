// SPDX-License-Identifier: MIT
// Package matrix - interop with gonum.org/v1/gonum/mat.
//
// Only conversions live here. No kernel in this package delegates to gonum:
// Det/Inverse must keep the single-swap echelon policy bit for bit.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// gonumView adapts a mat.Matrix to the read-only Matrix interface without copying.
// Kernels see it as a non-*Dense operand and materialise it once.
type gonumView struct {
	m mat.Matrix
}

var _ Matrix = gonumView{}

// WrapGonum returns a Matrix view over g. The view shares storage with g;
// later writes to g are visible through it.
//
// Errors:
//   - ErrNilMatrix (nil g), ErrInvalidDimensions (empty g).
func WrapGonum(g mat.Matrix) (Matrix, error) {
	if g == nil {
		return nil, matrixErrorf("WrapGonum", ErrNilMatrix)
	}
	if r, c := g.Dims(); r <= 0 || c <= 0 {
		return nil, matrixErrorf("WrapGonum", ErrInvalidDimensions)
	}

	return gonumView{m: g}, nil
}

// Rows returns the row count of the wrapped matrix.
func (v gonumView) Rows() int {
	r, _ := v.m.Dims()
	return r
}

// Cols returns the column count of the wrapped matrix.
func (v gonumView) Cols() int {
	_, c := v.m.Dims()
	return c
}

// At reads (i, j), translating gonum's panic-on-bounds into ErrOutOfRange.
func (v gonumView) At(i, j int) (float64, error) {
	r, c := v.m.Dims()
	if i < 0 || i >= r || j < 0 || j >= c {
		return 0, fmt.Errorf("gonumView.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return v.m.At(i, j), nil
}

// Clone copies the wrapped data into a *Dense.
func (v gonumView) Clone() Matrix {
	d, _ := FromGonum(v.m) // dims were validated by WrapGonum
	return d
}

// FromGonum copies any mat.Matrix into a new *Dense.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf("FromGonum", ErrNilMatrix)
	}
	r, c := g.Dims()
	d, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("FromGonum", err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			d.data[i*c+j] = g.At(i, j)
		}
	}

	return d, nil
}

// ToGonum copies m into a new *mat.Dense.
//
// Errors:
//   - ErrNilMatrix and any error from a foreign At.
func ToGonum(m Matrix) (*mat.Dense, error) {
	dm, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf("ToGonum", err)
	}
	data := make([]float64, len(dm.data))
	copy(data, dm.data) // mat.NewDense keeps the slice; hand it its own copy

	return mat.NewDense(dm.r, dm.c, data), nil
}
