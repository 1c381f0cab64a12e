// SPDX-License-Identifier: MIT
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/linalg/internal/report"
	"github.com/katalvlaran/linalg/matrix"
)

func newMulCmd(a *app) *cobra.Command {
	var (
		ops operands
		add bool
	)
	c := &cobra.Command{
		Use:   "mul",
		Short: "Matrix product A·B",
		Long: `Multiplies A (r×k) by B (k×c). With --add the operands are added
element-wise instead and must have the same shape.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			x, err := ops.loadMatrix(ops.a, "a")
			if err != nil {
				return err
			}
			y, err := ops.loadMatrix(ops.b, "b")
			if err != nil {
				return err
			}
			a.log.Debug("mul", "a", []int{x.Rows(), x.Cols()}, "b", []int{y.Rows(), y.Cols()}, "add", add)

			op, fn := "mul", matrix.Mul
			if add {
				op, fn = "add", matrix.Add
			}
			res, err := fn(x, y)
			if err != nil {
				return err
			}
			return a.render(c, report.Result{Op: op, Matrix: res.ToRows()})
		},
	}
	ops.registerPair(c, "matrix")
	c.Flags().BoolVar(&add, "add", false, "add instead of multiply")
	return c
}
