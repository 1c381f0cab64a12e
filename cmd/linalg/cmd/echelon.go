// SPDX-License-Identifier: MIT
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/linalg/internal/report"
	"github.com/katalvlaran/linalg/matrix"
)

func newEchelonCmd(a *app) *cobra.Command {
	var (
		ops   operands
		swaps bool
	)
	c := &cobra.Command{
		Use:   "echelon",
		Short: "Row-reduce to echelon form",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			m, err := ops.loadMatrix(ops.matrix, "matrix")
			if err != nil {
				return err
			}

			mode := matrix.IgnoreSwaps
			if swaps || a.cfg.Numeric.TrackSwaps {
				mode = matrix.TrackSwaps
			}
			a.log.Debug("echelon", "rows", m.Rows(), "cols", m.Cols(), "mode", mode)

			ech, err := matrix.EchelonForm(m, mode)
			if err != nil {
				return err
			}
			res := report.Result{Op: "echelon", Matrix: ech.Reduced.ToRows()}
			if ech.Tracked {
				res.Swaps = &ech.Swaps
			}
			return a.render(c, res)
		},
	}
	ops.registerMatrix(c)
	c.Flags().BoolVar(&swaps, "swaps", false, "also report the number of row swaps")
	return c
}
