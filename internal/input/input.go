// SPDX-License-Identifier: MIT

// Package input parses matrix and vector operands for the linalg command,
// either from compact text ("1 2; 3 4") or from YAML/JSON documents.
package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linalg/matrix"
)

var (
	// ErrSyntax indicates text that is not a number grid.
	ErrSyntax = errors.New("input: syntax error")
	// ErrMissing indicates that a required operand is absent.
	ErrMissing = errors.New("input: missing operand")
	// ErrNotVector indicates a grid with more than one row and column where a vector is required.
	ErrNotVector = errors.New("input: operand is not a vector")
)

// ParseGrid parses rows separated by ';' or newlines, values separated by
// blanks or commas. Surrounding brackets are ignored, so "[1, 2]" works.
func ParseGrid(s string) ([][]float64, error) {
	s = strings.NewReplacer("[", " ", "]", " ").Replace(s)
	lines := strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == '\n' })

	var rows [][]float64
	for _, line := range lines {
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\r'
		})
		if len(fields) == 0 {
			continue
		}
		row := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%q: %w", f, ErrSyntax)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no values in %q: %w", s, ErrSyntax)
	}

	return rows, nil
}

// ParseMatrix parses s with ParseGrid and builds a matrix from it.
// Ragged rows fail with matrix.ErrDimensionMismatch.
func ParseMatrix(s string) (*matrix.Dense, error) {
	rows, err := ParseGrid(s)
	if err != nil {
		return nil, err
	}
	return matrix.FromRows(rows)
}

// ParseVector parses a single row or a single column of numbers.
func ParseVector(s string) ([]float64, error) {
	rows, err := ParseGrid(s)
	if err != nil {
		return nil, err
	}
	return Operand{rows: rows}.Vector()
}

// Operand is a matrix or vector read from a document. In YAML it may be a
// list of lists, a flat list (one row) or a string in ParseGrid syntax.
type Operand struct {
	rows [][]float64
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *Operand) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		rows, err := ParseGrid(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		o.rows = rows
	case yaml.SequenceNode:
		if len(value.Content) > 0 && value.Content[0].Kind == yaml.SequenceNode {
			return value.Decode(&o.rows)
		}
		var row []float64
		if err := value.Decode(&row); err != nil {
			return err
		}
		o.rows = [][]float64{row}
	default:
		return fmt.Errorf("line %d: want a list or a string: %w", value.Line, ErrSyntax)
	}

	return nil
}

// IsZero reports whether the operand was absent from the document.
func (o Operand) IsZero() bool { return len(o.rows) == 0 }

// Matrix returns the operand as a matrix.
func (o Operand) Matrix() (*matrix.Dense, error) {
	if o.IsZero() {
		return nil, ErrMissing
	}
	return matrix.FromRows(o.rows)
}

// Vector returns the operand as a vector; a single row or a single column qualifies.
func (o Operand) Vector() ([]float64, error) {
	switch {
	case o.IsZero():
		return nil, ErrMissing
	case len(o.rows) == 1:
		return append([]float64(nil), o.rows[0]...), nil
	}
	out := make([]float64, len(o.rows))
	for i, r := range o.rows {
		if len(r) != 1 {
			return nil, fmt.Errorf("%d rows, row %d has %d values: %w", len(o.rows), i, len(r), ErrNotVector)
		}
		out[i] = r[0]
	}

	return out, nil
}

// Document is the operand file read with --file.
//
//	matrix: [[1, 2], [3, 4]]
//	a: [1, 2, 3]
//	b: "4 5 6"
type Document struct {
	Matrix Operand `yaml:"matrix"`
	A      Operand `yaml:"a"`
	B      Operand `yaml:"b"`
}

// Decode reads one YAML (or JSON) document from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty document: %w", ErrMissing)
		}
		return nil, fmt.Errorf("decode document: %w", err)
	}

	return &doc, nil
}

// Load opens path and decodes it with Decode.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}
