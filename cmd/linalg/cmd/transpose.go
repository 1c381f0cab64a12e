// SPDX-License-Identifier: MIT
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/linalg/internal/report"
	"github.com/katalvlaran/linalg/matrix"
)

func newTransposeCmd(a *app) *cobra.Command {
	var ops operands
	c := &cobra.Command{
		Use:   "transpose",
		Short: "Swap rows and columns",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			m, err := ops.loadMatrix(ops.matrix, "matrix")
			if err != nil {
				return err
			}
			t, err := matrix.Transpose(m)
			if err != nil {
				return err
			}
			return a.render(c, report.Result{Op: "transpose", Matrix: t.ToRows()})
		},
	}
	ops.registerMatrix(c)
	return c
}
