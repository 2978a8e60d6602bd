// SPDX-License-Identifier: Apache-2.0
// Copyright © 2023 Wrangle Ltd

package utils

import (
	"io"

	"golang.org/x/term"
)

// IsTerminal reports whether w is a file descriptor connected to a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
