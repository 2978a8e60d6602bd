// SPDX-License-Identifier: Apache-2.0
// Copyright © 2023 Wrangle Ltd

package compare

// Side identifies one of the two compared sources
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Outcome classifies a single merge step
type Outcome int

const (
	Unspecified Outcome = iota

	// LeftOnly means the right source skipped the key of the current left row
	LeftOnly

	// RightOnly means the left source skipped the key of the current right row
	RightOnly

	// MatchedEqual means both rows share the key and agree on every check column
	MatchedEqual

	// MatchedUnequal means both rows share the key but disagree on at least one
	// check column
	MatchedUnequal
)

func (o Outcome) String() string {
	switch o {
	case LeftOnly:
		return "LeftOnly"
	case RightOnly:
		return "RightOnly"
	case MatchedEqual:
		return "MatchedEqual"
	case MatchedUnequal:
		return "MatchedUnequal"
	default:
		return "Unspecified"
	}
}

// IsDifference reports whether the outcome counts toward the difference ceiling
func (o Outcome) IsDifference() bool {
	return o == LeftOnly || o == RightOnly || o == MatchedUnequal
}

// Event is emitted once per merge step. Left is set for LeftOnly and both
// matched outcomes, Right is set for RightOnly and both matched outcomes.
// Rows are only valid until the next call to Walker.Next.
type Event struct {
	Outcome Outcome
	Left    []string
	Right   []string
}
