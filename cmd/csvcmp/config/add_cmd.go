package config

import (
	"github.com/spf13/cobra"
	"github.com/wrgl/csvcmp/cmd/csvcmp/utils"
	"github.com/wrgl/csvcmp/pkg/dotno"
)

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add NAME VALUE",
		Short: "Add to a multi-valued field without altering any existing values.",
		Args:  cobra.ExactArgs(2),
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "add a match column",
				Line:    "csvcmp config add compare.matchColumns id",
			},
			{
				Comment: "add a check column to a profile",
				Line:    "csvcmp config add profiles.orders.compare.checkColumns total",
			},
		}),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := writeableConfigStore(cmd)
			if err != nil {
				return err
			}
			c, err := s.Open()
			if err != nil {
				return err
			}
			v, err := dotno.GetFieldValue(c, args[0], true)
			if err != nil {
				return err
			}
			if err = dotno.AppendSlice(v, args[1]); err != nil {
				return err
			}
			return s.Save(c)
		},
	}
	return cmd
}
