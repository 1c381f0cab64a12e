// SPDX-License-Identifier: MIT
package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linalg/internal/report"
	"github.com/katalvlaran/linalg/vector"
)

// vecScalarOps and vecVectorOps map operation names to their binary kernels.
var (
	vecScalarOps = map[string]func(a, b []float64) (float64, error){
		"dot":      vector.Dot,
		"distance": vector.EuclideanDistance,
		"cosine":   vector.CosineSimilarity,
		"angle":    vector.Angle,
	}
	vecVectorOps = map[string]func(a, b []float64) ([]float64, error){
		"add":   vector.Add,
		"sub":   vector.Sub,
		"cross": vector.Cross,
	}
)

// vecUnaryOps need only --a.
var vecUnaryOps = []string{"magnitude", "normalize"}

func vecOpNames() []string {
	names := append([]string(nil), vecUnaryOps...)
	for k := range vecScalarOps {
		names = append(names, k)
	}
	for k := range vecVectorOps {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func newVecCmd(a *app) *cobra.Command {
	var ops operands
	c := &cobra.Command{
		Use:       "vec OP",
		Short:     "Vector operations",
		Long:      "Runs one vector operation. OP is one of: " + strings.Join(vecOpNames(), ", ") + ".",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: vecOpNames(),
		RunE: func(c *cobra.Command, args []string) error {
			op := args[0]
			x, err := ops.loadVector(ops.a, "a")
			if err != nil {
				return err
			}

			switch op {
			case "magnitude":
				return a.render(c, report.ScalarResult(op, vector.Magnitude(x)))
			case "normalize":
				u, err := vector.Normalize(x)
				if err != nil {
					return err
				}
				return a.render(c, report.Result{Op: op, Vector: u})
			}

			y, err := ops.loadVector(ops.b, "b")
			if err != nil {
				return err
			}
			a.log.Debug("vec", "op", op, "len_a", len(x), "len_b", len(y))

			if fn, ok := vecScalarOps[op]; ok {
				v, err := fn(x, y)
				if err != nil {
					return err
				}
				return a.render(c, report.ScalarResult(op, v))
			}
			if fn, ok := vecVectorOps[op]; ok {
				v, err := fn(x, y)
				if err != nil {
					return err
				}
				return a.render(c, report.Result{Op: op, Vector: v})
			}
			return fmt.Errorf("unknown vector operation %q", op)
		},
	}
	ops.registerPair(c, "vector")
	return c
}
