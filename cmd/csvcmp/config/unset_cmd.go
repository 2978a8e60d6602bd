// SPDX-License-Identifier: Apache-2.0
// Copyright © 2021 Wrangle Ltd

package config

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wrgl/csvcmp/cmd/csvcmp/utils"
	"github.com/wrgl/csvcmp/pkg/dotno"
)

func unsetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unset NAME [VALUE_PATTERN] [--all]",
		Short: "Remove one or more values.",
		Long:  "Remove one or more values. If VALUE_PATTERN is given, the field must be multi-valued. All values matching VALUE_PATTERN will be removed.",
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "remove an option",
				Line:    "csvcmp config unset compare.assumeSorted",
			},
			{
				Comment: "remove column price from the check columns",
				Line:    "csvcmp config unset compare.checkColumns price --fixed-value",
			},
			{
				Comment: "remove a profile",
				Line:    "csvcmp config unset profiles.orders",
			},
		}),
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := writeableConfigStore(cmd)
			if err != nil {
				return err
			}
			c, err := s.Open()
			if err != nil {
				return err
			}
			all, err := cmd.Flags().GetBool("all")
			if err != nil {
				return err
			}
			if len(args) > 1 {
				v, err := dotno.GetFieldValue(c, args[0], false)
				if err != nil {
					return err
				}
				idxMap, _, err := dotno.FilterWithValuePattern(cmd, v, args[1])
				if err != nil {
					return err
				}
				if len(idxMap) > 1 && !all {
					return fmt.Errorf("key contains multiple values, specify flag --all to remove multiple values")
				}
				dotno.RemoveIndices(v, idxMap)
			} else if err = dotno.UnsetField(c, args[0], all); err != nil {
				return err
			}
			return s.Save(c)
		},
	}
	cmd.Flags().Bool("all", false, "remove all values. If VALUE_PATTERN is defined, remove all values that match VALUE_PATTERN.")
	return cmd
}
