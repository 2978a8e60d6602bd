// SPDX-License-Identifier: Apache-2.0
// Copyright © 2023 Wrangle Ltd

package expr

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

var errNaN = fmt.Errorf("NaN cannot be compared")

// ValueType decides how cell values and comparands are compared
type ValueType int

const (
	String ValueType = iota
	Int
	Float
)

func ParseValueType(s string) (ValueType, error) {
	switch s {
	case "str":
		return String, nil
	case "int":
		return Int, nil
	case "float":
		return Float, nil
	}
	return 0, fmt.Errorf("type %q not recognized", s)
}

func (t ValueType) String() string {
	switch t {
	case Int:
		return "int"
	case Float:
		return "float"
	default:
		return "str"
	}
}

// Compare returns -1, 0 or 1 depending on whether a is less than, equal to
// or greater than b when both are interpreted as t
func (t ValueType) Compare(a, b string) (int, error) {
	switch t {
	case Int:
		x, err := strconv.ParseInt(strings.TrimSpace(a), 10, 64)
		if err != nil {
			return 0, err
		}
		y, err := strconv.ParseInt(strings.TrimSpace(b), 10, 64)
		if err != nil {
			return 0, err
		}
		return cmpOrdered(x < y, x > y), nil
	case Float:
		x, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
		if err != nil {
			return 0, err
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(b), 64)
		if err != nil {
			return 0, err
		}
		if math.IsNaN(x) || math.IsNaN(y) {
			return 0, errNaN
		}
		return cmpOrdered(x < y, x > y), nil
	default:
		return strings.Compare(a, b), nil
	}
}

func cmpOrdered(less, greater bool) int {
	if less {
		return -1
	}
	if greater {
		return 1
	}
	return 0
}
