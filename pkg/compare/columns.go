// SPDX-License-Identifier: Apache-2.0
// Copyright © 2023 Wrangle Ltd

package compare

import (
	"fmt"

	"github.com/wrgl/csvcmp/pkg/slice"
)

// ColumnNotFoundError is returned when a configured match or check column is
// absent from one of the headers
type ColumnNotFoundError struct {
	Side   Side
	Column string
	Header []string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column %q not found in %s header %q", e.Column, e.Side, e.Header)
}

// ColumnIndices returns the position of each name in header, in the given
// order. A duplicated header name resolves to its first occurrence.
func ColumnIndices(side Side, header, names []string) ([]int, error) {
	res := make([]int, 0, len(names))
	for _, name := range names {
		i := slice.IndexOf(header, name)
		if i < 0 {
			return nil, &ColumnNotFoundError{
				Side:   side,
				Column: name,
				Header: header,
			}
		}
		res = append(res, i)
	}
	return res, nil
}

// Columns holds the resolved match and check column positions for both sources
type Columns struct {
	LeftMatch  []int
	RightMatch []int
	LeftCheck  []int
	RightCheck []int
}

func ResolveColumns(leftHeader, rightHeader, match, check []string) (cols *Columns, err error) {
	if len(match) == 0 {
		return nil, ErrNoMatchColumns
	}
	cols = &Columns{}
	if cols.LeftMatch, err = ColumnIndices(Left, leftHeader, match); err != nil {
		return nil, err
	}
	if cols.RightMatch, err = ColumnIndices(Right, rightHeader, match); err != nil {
		return nil, err
	}
	if cols.LeftCheck, err = ColumnIndices(Left, leftHeader, check); err != nil {
		return nil, err
	}
	if cols.RightCheck, err = ColumnIndices(Right, rightHeader, check); err != nil {
		return nil, err
	}
	return cols, nil
}
