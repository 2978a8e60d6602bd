// SPDX-License-Identifier: Apache-2.0
// Copyright © 2023 Wrangle Ltd

package utils

import (
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func AddHumanReadableFlag(flags *pflag.FlagSet) {
	flags.BoolP("human-readable", "H", false, "print counts with thousands separators")
}

func formatPlain(n int64) string {
	return strconv.FormatInt(n, 10)
}

// CountFormatter returns humanize.Comma when --human-readable is set
func CountFormatter(cmd *cobra.Command) (func(int64) string, error) {
	human, err := cmd.Flags().GetBool("human-readable")
	if err != nil {
		return nil, err
	}
	if human {
		return humanize.Comma, nil
	}
	return formatPlain, nil
}
