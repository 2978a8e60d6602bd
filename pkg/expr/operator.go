// SPDX-License-Identifier: Apache-2.0
// Copyright © 2023 Wrangle Ltd

package expr

import (
	"fmt"
)

// Operator is one of six comparison operators
type Operator int

const (
	EQ Operator = iota
	NE
	LT
	GT
	LE
	GE
)

var operatorSymbols = [...]string{"=", "≠", "<", ">", "≤", "≥"}

var operatorAliases = map[string]Operator{
	"=":  EQ,
	"==": EQ,
	"EQ": EQ,
	"≠":  NE,
	"!=": NE,
	"<>": NE,
	"NE": NE,
	"<":  LT,
	"LT": LT,
	">":  GT,
	"GT": GT,
	"≤":  LE,
	"<=": LE,
	"LE": LE,
	"≥":  GE,
	">=": GE,
	"GE": GE,
}

func ParseOperator(s string) (Operator, error) {
	if op, ok := operatorAliases[s]; ok {
		return op, nil
	}
	return 0, fmt.Errorf("operator %q not recognized", s)
}

func (o Operator) String() string {
	if o < EQ || o > GE {
		return fmt.Sprintf("Operator(%d)", int(o))
	}
	return operatorSymbols[o]
}

// Negate returns the operator equivalent to NOT (a o b)
func (o Operator) Negate() Operator {
	switch o {
	case EQ:
		return NE
	case NE:
		return EQ
	case LT:
		return GE
	case GT:
		return LE
	case LE:
		return GT
	default:
		return LT
	}
}

// Invert returns the operator equivalent to swapping the operands, so that
// (a o b) == (b o.Invert() a)
func (o Operator) Invert() Operator {
	switch o {
	case LT:
		return GT
	case GT:
		return LT
	case LE:
		return GE
	case GE:
		return LE
	default:
		return o
	}
}

// Apply reports whether (c o 0) holds for the three-way comparison result c
func (o Operator) Apply(c int) bool {
	switch o {
	case EQ:
		return c == 0
	case NE:
		return c != 0
	case LT:
		return c < 0
	case GT:
		return c > 0
	case LE:
		return c <= 0
	default:
		return c >= 0
	}
}
