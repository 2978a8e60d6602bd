// SPDX-License-Identifier: Apache-2.0
// Copyright © 2023 Wrangle Ltd

package compare

// bound stops a walk once max differences have been observed. A max of 0
// means unlimited.
type bound struct {
	max int64
	n   int64
}

// observe records the outcome and reports whether the ceiling was reached
func (b *bound) observe(o Outcome) bool {
	if !o.IsDifference() {
		return false
	}
	b.n++
	return b.max > 0 && b.n >= b.max
}
