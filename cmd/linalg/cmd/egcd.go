// SPDX-License-Identifier: MIT
package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linalg/internal/report"
	"github.com/katalvlaran/linalg/numtheory"
)

func newEgcdCmd(a *app) *cobra.Command {
	var modInverse bool
	c := &cobra.Command{
		Use:   "egcd M N",
		Short: "Extended Euclidean algorithm",
		Long: `Prints gcd(M, N) and Bezout coefficients x, y with x*M' + y*N' = gcd,
where M' >= N' are the inputs reordered larger first.

With --mod-inverse prints the inverse of M modulo N instead.`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			m, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("M: %w", err)
			}
			n, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("N: %w", err)
			}

			if modInverse {
				x, err := numtheory.ModInverse(m, n)
				if err != nil {
					return err
				}
				return a.render(c, report.IntegerResult("modinverse", x))
			}

			bz, err := numtheory.ExtendedEuclid(m, n)
			if err != nil {
				return err
			}
			a.log.Debug("egcd", "m", m, "n", n, "reordered", bz.M != m)
			return a.render(c, report.Result{Op: "egcd", Bezout: &report.Bezout{
				GCD: bz.GCD, X: bz.X, Y: bz.Y, M: bz.M, N: bz.N,
			}})
		},
	}
	c.Flags().BoolVar(&modInverse, "mod-inverse", false, "print M^-1 mod N")
	return c
}
