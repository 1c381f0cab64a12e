// SPDX-License-Identifier: MIT
package report_test

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linalg/internal/report"
)

func intPtr(v int) *int { return &v }

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]report.Format{"text": report.Text, "YAML": report.YAML, " json ": report.JSON} {
		got, err := report.ParseFormat(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := report.ParseFormat("xml")
	require.ErrorIs(t, err, report.ErrFormat)
}

func TestRenderText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		precision int
		res       report.Result
		want      string
	}{
		{"scalar", -1, report.ScalarResult("det", 15), "det = 15\n"},
		{"scalar precision", 3, report.ScalarResult("angle", math.Pi), "angle = 3.14\n"},
		{"integer", 3, report.IntegerResult("modinverse", 6148914691236517205), "modinverse = 6148914691236517205\n"},
		{"vector", -1, report.Result{Op: "cross", Vector: []float64{-3, 6, -3}}, "cross = [-3 6 -3]\n"},
		{
			"echelon", -1,
			report.Result{Op: "echelon", Matrix: [][]float64{{1, 2, 3}, {0, 4, 5}, {0, 0, -3.75}}, Swaps: intPtr(1)},
			"echelon =\n  1 2 3\n  0 4 5\n  0 0 -3.75\nswaps = 1\n",
		},
		{
			"bezout", -1,
			report.Result{Op: "egcd", Bezout: &report.Bezout{GCD: 29, X: 5, Y: -16, M: 1769, N: 551}},
			"gcd = 29\nx = 5\ny = -16\n29 = 5*1769 + -16*551\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			rd := report.Renderer{Format: report.Text, Precision: tc.precision}
			require.NoError(t, rd.Render(&buf, tc.res))
			require.Equal(t, tc.want, buf.String())
		})
	}
}

func TestRenderYAML(t *testing.T) {
	t.Parallel()

	res := report.Result{Op: "inverse", Matrix: [][]float64{{0.6, -0.7}, {-0.2, 0.4}}}
	var buf bytes.Buffer
	require.NoError(t, report.Renderer{Format: report.YAML}.Render(&buf, res))

	var back report.Result
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	require.Equal(t, res, back)
	require.NotContains(t, buf.String(), "scalar")
}

func TestRenderJSON(t *testing.T) {
	t.Parallel()

	res := report.ScalarResult("det", -306)
	var buf bytes.Buffer
	require.NoError(t, report.Renderer{Format: report.JSON}.Render(&buf, res))
	require.JSONEq(t, `{"op": "det", "scalar": -306}`, buf.String())

	var back report.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	require.Equal(t, -306.0, *back.Scalar)

	buf.Reset()
	require.NoError(t, report.Renderer{Format: report.JSON}.Render(&buf, report.IntegerResult("modinverse", 6666667)))
	require.JSONEq(t, `{"op": "modinverse", "integer": 6666667}`, buf.String())

	// JSON has no Inf
	err := report.Renderer{Format: report.JSON}.Render(&buf, report.ScalarResult("det", math.Inf(1)))
	require.Error(t, err)
}

func TestRender_UnknownFormat(t *testing.T) {
	t.Parallel()

	err := report.Renderer{Format: "xml"}.Render(&bytes.Buffer{}, report.ScalarResult("det", 1))
	require.ErrorIs(t, err, report.ErrFormat)
}
