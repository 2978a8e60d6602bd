// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package utils

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/wrgl/csvcmp/pkg/conf"
)

func GetRuneFromFlag(cmd *cobra.Command, flag string) (rune, error) {
	s, err := cmd.Flags().GetString(flag)
	if err != nil {
		return 0, err
	}
	if s != "" {
		r, size := utf8.DecodeRuneInString(s)
		if size == len(s) && r != utf8.RuneError {
			return r, nil
		}
		return 0, fmt.Errorf("error reading rune from flag %q: %q is not a single character", flag, s)
	}
	return 0, nil
}

// GetDelimiter returns the delimiter given by flag, or the configured
// delimiter if the flag is empty. 0 means comma.
func GetDelimiter(cmd *cobra.Command, flag string, c *conf.Config) (rune, error) {
	r, err := GetRuneFromFlag(cmd, flag)
	if err != nil || r != 0 {
		return r, err
	}
	return c.Delimiter()
}
