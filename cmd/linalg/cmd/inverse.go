// SPDX-License-Identifier: MIT
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/linalg/internal/report"
	"github.com/katalvlaran/linalg/matrix"
)

func newInverseCmd(a *app) *cobra.Command {
	var (
		ops     operands
		adjoint bool
	)
	c := &cobra.Command{
		Use:   "inverse",
		Short: "Inverse as adjugate divided by determinant",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			m, err := ops.loadMatrix(ops.matrix, "matrix")
			if err != nil {
				return err
			}
			a.log.Debug("inverse", "rows", m.Rows(), "cols", m.Cols(), "adjoint", adjoint)

			op, fn := "inverse", matrix.Inverse
			if adjoint {
				op, fn = "adjoint", matrix.Adjoint
			}
			res, err := fn(m)
			if err != nil {
				return err
			}
			return a.render(c, report.Result{Op: op, Matrix: res.ToRows()})
		},
	}
	ops.registerMatrix(c)
	c.Flags().BoolVar(&adjoint, "adjoint", false, "print the adjugate instead of the inverse")
	return c
}
