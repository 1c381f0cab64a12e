// SPDX-License-Identifier: MIT

// Package report renders command results as text, YAML or JSON.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the renderer.
type Format string

const (
	Text Format = "text"
	YAML Format = "yaml"
	JSON Format = "json"
)

// ErrFormat indicates an unknown output format.
var ErrFormat = errors.New("report: unknown format")

// ParseFormat maps a flag or config value to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Text, YAML, JSON:
		return f, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrFormat)
	}
}

// Bezout carries an extended Euclid result.
type Bezout struct {
	GCD int64 `yaml:"gcd" json:"gcd"`
	X   int64 `yaml:"x" json:"x"`
	Y   int64 `yaml:"y" json:"y"`
	M   int64 `yaml:"m" json:"m"`
	N   int64 `yaml:"n" json:"n"`
}

// Result is what a command produced. Exactly one of Scalar, Integer, Matrix,
// Vector or Bezout is set; Swaps accompanies an echelon matrix when tracked.
type Result struct {
	Op      string      `yaml:"op" json:"op"`
	Scalar  *float64    `yaml:"scalar,omitempty" json:"scalar,omitempty"`
	Integer *int64      `yaml:"integer,omitempty" json:"integer,omitempty"`
	Matrix  [][]float64 `yaml:"matrix,omitempty,flow" json:"matrix,omitempty"`
	Vector  []float64   `yaml:"vector,omitempty,flow" json:"vector,omitempty"`
	Swaps   *int        `yaml:"swaps,omitempty" json:"swaps,omitempty"`
	Bezout  *Bezout     `yaml:"bezout,omitempty" json:"bezout,omitempty"`
}

// ScalarResult is a shorthand for a single-number result.
func ScalarResult(op string, v float64) Result {
	return Result{Op: op, Scalar: &v}
}

// IntegerResult is a shorthand for an exact integer result.
func IntegerResult(op string, v int64) Result {
	return Result{Op: op, Integer: &v}
}

// Renderer writes results in one format.
type Renderer struct {
	Format Format
	// Precision is the number of significant digits in text output (-1: shortest).
	Precision int
}

// Render writes r to w.
func (rd Renderer) Render(w io.Writer, r Result) error {
	switch rd.Format {
	case Text, "":
		return rd.renderText(w, r)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("render yaml: %w", err)
		}
		return enc.Close()
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("render json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%q: %w", rd.Format, ErrFormat)
	}
}

func (rd Renderer) num(v float64) string {
	return strconv.FormatFloat(v, 'g', rd.Precision, 64)
}

func (rd Renderer) row(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = rd.num(v)
	}
	return strings.Join(parts, " ")
}

func (rd Renderer) renderText(w io.Writer, r Result) error {
	var b strings.Builder
	switch {
	case r.Scalar != nil:
		fmt.Fprintf(&b, "%s = %s\n", r.Op, rd.num(*r.Scalar))
	case r.Integer != nil:
		fmt.Fprintf(&b, "%s = %d\n", r.Op, *r.Integer)
	case r.Bezout != nil:
		bz := r.Bezout
		fmt.Fprintf(&b, "gcd = %d\nx = %d\ny = %d\n%d = %d*%d + %d*%d\n",
			bz.GCD, bz.X, bz.Y, bz.GCD, bz.X, bz.M, bz.Y, bz.N)
	case r.Vector != nil:
		fmt.Fprintf(&b, "%s = [%s]\n", r.Op, rd.row(r.Vector))
	case r.Matrix != nil:
		fmt.Fprintf(&b, "%s =\n", r.Op)
		for _, row := range r.Matrix {
			b.WriteString("  " + rd.row(row) + "\n")
		}
	}
	if r.Swaps != nil {
		fmt.Fprintf(&b, "swaps = %d\n", *r.Swaps)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
