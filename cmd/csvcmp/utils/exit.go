// SPDX-License-Identifier: Apache-2.0
// Copyright © 2023 Wrangle Ltd

package utils

import "fmt"

// ExitCodeError makes the process exit with Code without printing anything
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
