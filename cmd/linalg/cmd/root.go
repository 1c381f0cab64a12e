// SPDX-License-Identifier: MIT

// Package cmd wires the linalg subcommands onto a cobra root command.
package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linalg/internal/config"
	"github.com/katalvlaran/linalg/internal/report"
)

// app holds the flag values and the state built from them before a subcommand runs.
type app struct {
	cfgFile   string
	output    string
	precision int
	verbose   bool

	cfg      *config.Config
	log      *slog.Logger
	renderer report.Renderer
}

// Execute runs the linalg command line.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "linalg",
		Short: "Small dense linear algebra and number theory",
		Long: `linalg computes determinants, inverses, echelon forms and products of
small matrices, vector products and norms, and Bezout coefficients.

Matrices are given as "1 2; 3 4" or in a YAML/JSON file:
  matrix: [[1, 2], [3, 4]]

Examples:
  linalg det --matrix "0 4 5; 1 2 3; 6 7 8"
  linalg echelon --swaps -m "0 4 5; 1 2 3; 6 7 8"
  linalg inverse --file system.yaml --output json
  linalg vec cross --a "1 2 3" --b "4 5 6"
  linalg egcd 1769 551`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default: $"+config.EnvVar+" or ./linalg.toml)")
	pf.StringVarP(&a.output, "output", "o", "", "output format: text, yaml or json")
	pf.IntVar(&a.precision, "precision", 0, "significant digits in text output (0 or -1: shortest)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "verbose logging on stderr")

	rootCmd.AddCommand(
		newDetCmd(a),
		newInverseCmd(a),
		newEchelonCmd(a),
		newTransposeCmd(a),
		newMulCmd(a),
		newVecCmd(a),
		newEgcdCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// setup loads the configuration, applies flag overrides and builds the logger and renderer.
func (a *app) setup(c *cobra.Command, _ []string) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	flags := c.Flags()
	if flags.Changed("output") {
		a.cfg.Output.Format = a.output
	}
	if flags.Changed("precision") {
		a.cfg.Output.Precision = a.precision
	}
	if a.verbose {
		a.cfg.Log.Level = "debug"
	}
	if err = a.cfg.Validate(); err != nil {
		return err
	}

	lvl, err := a.cfg.Log.SlogLevel()
	if err != nil {
		return err
	}
	a.log = slog.New(slog.NewTextHandler(c.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))

	format, err := report.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return err
	}
	a.renderer = report.Renderer{Format: format, Precision: a.cfg.Output.Precision}

	a.log.Debug("configured", "command", c.Name(), "format", format, "precision", a.cfg.Output.Precision)
	return nil
}

// render writes res to the command's stdout.
func (a *app) render(c *cobra.Command, res report.Result) error {
	return a.renderer.Render(c.OutOrStdout(), res)
}
