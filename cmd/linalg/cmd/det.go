// SPDX-License-Identifier: MIT
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/linalg/internal/report"
	"github.com/katalvlaran/linalg/matrix"
)

func newDetCmd(a *app) *cobra.Command {
	var ops operands
	c := &cobra.Command{
		Use:   "det",
		Short: "Determinant via echelon reduction",
		Long: `Reduces the matrix to echelon form and multiplies the diagonal,
flipping the sign once per row swap.

A zero pivot is swapped with the row directly below it, once. Matrices whose
leading rows share a zero in the same column may report 0.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			m, err := ops.loadMatrix(ops.matrix, "matrix")
			if err != nil {
				return err
			}
			a.log.Debug("det", "rows", m.Rows(), "cols", m.Cols())

			det, err := matrix.Det(m)
			if err != nil {
				return err
			}
			return a.render(c, report.ScalarResult("det", det))
		},
	}
	ops.registerMatrix(c)
	return c
}
