// SPDX-License-Identifier: Apache-2.0
// Copyright © 2023 Wrangle Ltd

package compare

type Result struct {
	// LeftMissingEntries is true when the right source had keys absent from the left
	LeftMissingEntries bool

	// RightMissingEntries is true when the left source had keys absent from the right
	RightMissingEntries bool

	// MatchedRowsUnequal is true when a key-matched pair disagreed on a check column
	MatchedRowsUnequal bool

	Tally Tally

	// Truncated is true when the walk stopped at the difference ceiling. The
	// flags and counters are then a lower bound.
	Truncated bool
}

func newResult(t Tally, truncated bool) *Result {
	return &Result{
		LeftMissingEntries:  t.MissingLeft > 0,
		RightMissingEntries: t.MissingRight > 0,
		MatchedRowsUnequal:  t.Unequal > 0,
		Tally:               t,
		Truncated:           truncated,
	}
}

func (r *Result) Differences() int64 {
	return r.Tally.MissingLeft + r.Tally.MissingRight + r.Tally.Unequal
}

// ExitStatus packs the three flags into bits 2, 1 and 0 respectively
func (r *Result) ExitStatus() int {
	var s int
	if r.LeftMissingEntries {
		s |= 1 << 2
	}
	if r.RightMissingEntries {
		s |= 1 << 1
	}
	if r.MatchedRowsUnequal {
		s |= 1 << 0
	}
	return s
}
