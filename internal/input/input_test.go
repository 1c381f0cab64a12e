// SPDX-License-Identifier: MIT
package input_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/internal/input"
	"github.com/katalvlaran/linalg/matrix"
)

func TestParseGrid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want [][]float64
	}{
		{"semicolons", "1 2; 3 4", [][]float64{{1, 2}, {3, 4}}},
		{"newlines and commas", "1, 2\n3, 4\n", [][]float64{{1, 2}, {3, 4}}},
		{"brackets", "[[0, 4, 5], [1, 2, 3]]", [][]float64{{0, 4, 5, 1, 2, 3}}},
		{"bracket rows", "[0 4 5]; [1 2 3]", [][]float64{{0, 4, 5}, {1, 2, 3}}},
		{"exponent and sign", "-1.5e2 +3", [][]float64{{-150, 3}}},
		{"blank rows skipped", "1;;2", [][]float64{{1}, {2}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := input.ParseGrid(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	_, err := input.ParseGrid("1 two")
	require.ErrorIs(t, err, input.ErrSyntax)
	_, err = input.ParseGrid(" ; ")
	require.ErrorIs(t, err, input.ErrSyntax)
}

func TestParseMatrix(t *testing.T) {
	t.Parallel()

	m, err := input.ParseMatrix("1 2 3; 4 5 6")
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	_, err = input.ParseMatrix("1 2; 3")
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestParseVector(t *testing.T) {
	t.Parallel()

	v, err := input.ParseVector("1 2 3")
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, v)

	v, err = input.ParseVector("1; 2; 3")
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, v)

	_, err = input.ParseVector("1 2; 3 4")
	require.ErrorIs(t, err, input.ErrNotVector)
}

func TestDecode_YAML(t *testing.T) {
	t.Parallel()

	doc, err := input.Decode(strings.NewReader(`
matrix: [[0, 4, 5], [1, 2, 3], [6, 7, 8]]
a: [1, 2, 3]
b: "4 5 6"
`))
	require.NoError(t, err)

	m, err := doc.Matrix.Matrix()
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 4, 5}, {1, 2, 3}, {6, 7, 8}}, m.ToRows())

	a, err := doc.A.Vector()
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, a)

	b, err := doc.B.Vector()
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, b)
}

func TestDecode_JSON(t *testing.T) {
	t.Parallel()

	doc, err := input.Decode(strings.NewReader(`{"a": [[1, 2], [3, 4]], "b": [[5], [6]]}`))
	require.NoError(t, err)
	require.True(t, doc.Matrix.IsZero())

	_, err = doc.Matrix.Matrix()
	require.ErrorIs(t, err, input.ErrMissing)

	b, err := doc.B.Matrix()
	require.NoError(t, err)
	require.Equal(t, 2, b.Rows())
	require.Equal(t, 1, b.Cols())
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	_, err := input.Decode(strings.NewReader(""))
	require.ErrorIs(t, err, input.ErrMissing)

	_, err = input.Decode(strings.NewReader("c: [1]\n"))
	require.Error(t, err)

	_, err = input.Decode(strings.NewReader("matrix: {x: 1}\n"))
	require.ErrorIs(t, err, input.ErrSyntax)

	_, err = input.Decode(strings.NewReader("a: \"1 x\"\n"))
	require.ErrorIs(t, err, input.ErrSyntax)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "doc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("matrix: \"4 7; 2 6\"\n"), 0o600))

	doc, err := input.Load(path)
	require.NoError(t, err)
	m, err := doc.Matrix.Matrix()
	require.NoError(t, err)
	require.Equal(t, [][]float64{{4, 7}, {2, 6}}, m.ToRows())

	_, err = input.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
