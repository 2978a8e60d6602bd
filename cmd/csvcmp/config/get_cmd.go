package config

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wrgl/csvcmp/cmd/csvcmp/utils"
	"github.com/wrgl/csvcmp/pkg/dotno"
)

func getCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get NAME [VALUE_PATTERN]",
		Short: "Get value of a field.",
		Long:  "Get value of a field. If VALUE_PATTERN is given then only return the values that match pattern (a regular expression if --fixed-value is not set). Returns error code 1 if the key was not found.",
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "get the default match columns",
				Line:    "csvcmp config get compare.matchColumns",
			},
			{
				Comment: "get the check columns that start with \"price\"",
				Line:    "csvcmp config get compare.checkColumns ^price",
			},
			{
				Comment: "print a profile as JSON string",
				Line:    "csvcmp config get profiles.orders",
			},
			{
				Comment: "get the second match column",
				Line:    "csvcmp config get compare.matchColumns.1",
			},
		}),
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readableConfigStore(cmd)
			if err != nil {
				return err
			}
			c, err := s.Open()
			if err != nil {
				return err
			}
			v, err := dotno.GetFieldValue(c, args[0], false)
			if err != nil {
				return fmt.Errorf("key %q is not set", args[0])
			}
			if len(args) == 2 {
				_, vals, err := dotno.FilterWithValuePattern(cmd, v, args[1])
				if err != nil {
					return err
				}
				if len(vals) == 0 {
					return fmt.Errorf("no value of %q matches %q", args[0], args[1])
				}
				return dotno.OutputValues(cmd, vals)
			}
			return dotno.OutputValues(cmd, v.Interface())
		},
	}
	return cmd
}
