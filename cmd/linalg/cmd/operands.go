// SPDX-License-Identifier: MIT
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linalg/internal/input"
	"github.com/katalvlaran/linalg/matrix"
)

// operands collects the operand flags shared by the subcommands.
// Text flags win over the document given with --file.
type operands struct {
	matrix string
	a, b   string
	file   string

	doc *input.Document
}

func (o *operands) registerMatrix(c *cobra.Command) {
	c.Flags().StringVarP(&o.matrix, "matrix", "m", "", `matrix as text, e.g. "1 2; 3 4"`)
	c.Flags().StringVarP(&o.file, "file", "f", "", "YAML or JSON document with a 'matrix' key")
}

func (o *operands) registerPair(c *cobra.Command, what string) {
	c.Flags().StringVar(&o.a, "a", "", "first "+what+" as text")
	c.Flags().StringVar(&o.b, "b", "", "second "+what+" as text")
	c.Flags().StringVarP(&o.file, "file", "f", "", "YAML or JSON document with 'a' and 'b' keys")
}

// document loads --file once.
func (o *operands) document() (*input.Document, error) {
	if o.doc != nil {
		return o.doc, nil
	}
	if o.file == "" {
		return &input.Document{}, nil
	}
	doc, err := input.Load(o.file)
	if err != nil {
		return nil, err
	}
	o.doc = doc
	return doc, nil
}

// pick returns the text flag value or the document operand for key.
func (o *operands) pick(text, key string) (string, input.Operand, error) {
	if text != "" {
		return text, input.Operand{}, nil
	}
	doc, err := o.document()
	if err != nil {
		return "", input.Operand{}, err
	}
	var op input.Operand
	switch key {
	case "matrix":
		op = doc.Matrix
	case "a":
		op = doc.A
	case "b":
		op = doc.B
	}
	if op.IsZero() {
		return "", op, fmt.Errorf("--%s or %q in --file: %w", key, key, input.ErrMissing)
	}
	return "", op, nil
}

func (o *operands) loadMatrix(text, key string) (*matrix.Dense, error) {
	s, op, err := o.pick(text, key)
	if err != nil {
		return nil, err
	}
	if s != "" {
		return input.ParseMatrix(s)
	}
	return op.Matrix()
}

func (o *operands) loadVector(text, key string) ([]float64, error) {
	s, op, err := o.pick(text, key)
	if err != nil {
		return nil, err
	}
	if s != "" {
		return input.ParseVector(s)
	}
	return op.Vector()
}
