// SPDX-License-Identifier: Apache-2.0
// Copyright © 2023 Wrangle Ltd

package expr

import (
	"fmt"
	"strings"

	"github.com/wrgl/csvcmp/pkg/slice"
)

type Criterion interface {
	Evaluate(row []string) (bool, error)
}

// Comparison holds for a row when (Comparand Op value) holds, where value is
// the row's cell at Index. Op is therefore the inverse of the operator as
// written in "COLUMN OP COMPARAND".
type Comparison struct {
	Column    string
	Index     int
	Op        Operator
	Type      ValueType
	Comparand string
}

func (c *Comparison) Evaluate(row []string) (bool, error) {
	n, err := c.Type.Compare(c.Comparand, slice.ValueAt(row, c.Index))
	if err != nil {
		return false, fmt.Errorf("column %q: %v", c.Column, err)
	}
	return c.Op.Apply(n), nil
}

func (c *Comparison) String() string {
	return fmt.Sprintf("%s %s (%s) %s", c.Column, c.Op.Invert(), c.Type, c.Comparand)
}

type And []Criterion

func (sl And) Evaluate(row []string) (bool, error) {
	for _, c := range sl {
		ok, err := c.Evaluate(row)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

type Or []Criterion

func (sl Or) Evaluate(row []string) (bool, error) {
	for _, c := range sl {
		ok, err := c.Evaluate(row)
		if err != nil || ok {
			return ok, err
		}
	}
	return false, nil
}

type Always struct{}

func (Always) Evaluate(row []string) (bool, error) {
	return true, nil
}

type conjunction int

const (
	noConj conjunction = iota
	andConj
	orConj
)

func parseConjunction(s string) (conjunction, error) {
	switch strings.ToUpper(s) {
	case "AND", "&&":
		return andConj, nil
	case "OR", "||":
		return orConj, nil
	}
	return noConj, fmt.Errorf("conjunction %q not recognized", s)
}

type termReader struct {
	terms []string
	pos   int
}

func (r *termReader) next(what string) (string, error) {
	if r.pos >= len(r.terms) {
		return "", fmt.Errorf("expression ended early, expecting %s", what)
	}
	s := r.terms[r.pos]
	r.pos++
	return s, nil
}

func (r *termReader) done() bool {
	return r.pos >= len(r.terms)
}

func parseComparison(r *termReader, header []string) (*Comparison, error) {
	column, err := r.next("column")
	if err != nil {
		return nil, err
	}
	negate := false
	if strings.ToUpper(column) == "NOT" {
		negate = true
		if column, err = r.next("column"); err != nil {
			return nil, err
		}
	}
	idx := slice.IndexOf(header, column)
	if idx < 0 {
		return nil, fmt.Errorf("column %q not found among columns: %q", column, header)
	}
	s, err := r.next("operator")
	if err != nil {
		return nil, err
	}
	op, err := ParseOperator(s)
	if err != nil {
		return nil, err
	}
	if negate {
		op = op.Negate()
	}
	typ := String
	comparand, err := r.next("comparand")
	if err != nil {
		return nil, err
	}
	if strings.HasPrefix(comparand, "(") && strings.HasSuffix(comparand, ")") {
		if typ, err = ParseValueType(comparand[1 : len(comparand)-1]); err != nil {
			return nil, err
		}
		if comparand, err = r.next("comparand"); err != nil {
			return nil, err
		}
	}
	if _, err = typ.Compare(comparand, comparand); err != nil {
		return nil, fmt.Errorf("comparand %q is not a valid %s", comparand, typ)
	}
	return &Comparison{
		Column:    column,
		Index:     idx,
		Op:        op.Invert(),
		Type:      typ,
		Comparand: comparand,
	}, nil
}

// Parse builds a criterion from terms of the form
// "[NOT] COLUMN OPERATOR [(TYPE)] COMPARAND" joined by AND or OR. Mixing AND
// with OR is not supported. No terms means every row matches.
func Parse(header []string, terms []string) (Criterion, error) {
	if len(terms) == 0 {
		return Always{}, nil
	}
	r := &termReader{terms: terms}
	var criteria []Criterion
	conj := noConj
	for {
		c, err := parseComparison(r, header)
		if err != nil {
			return nil, err
		}
		criteria = append(criteria, c)
		if r.done() {
			break
		}
		s, _ := r.next("conjunction")
		cj, err := parseConjunction(s)
		if err != nil {
			return nil, err
		}
		if conj != noConj && conj != cj {
			return nil, fmt.Errorf("mixing AND with OR is not supported")
		}
		conj = cj
	}
	switch {
	case len(criteria) == 1:
		return criteria[0], nil
	case conj == orConj:
		return Or(criteria), nil
	default:
		return And(criteria), nil
	}
}
