package config

import (
	"github.com/spf13/cobra"
	"github.com/wrgl/csvcmp/cmd/csvcmp/utils"
	"github.com/wrgl/csvcmp/pkg/dotno"
)

func setCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set NAME VALUE",
		Short: "Set value for a field.",
		Long:  "Set value for a field. This command only work with single-valued fields. For multi-valued fields, use \"csvcmp config add\" instead. For boolean fields, only \"true\" or \"false\" value can be set.",
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "alter setting in the local config",
				Line:    "csvcmp config set compare.assumeSorted true",
			},
			{
				Comment: "alter system-wide config",
				Line:    "csvcmp config set compare.maxDifferences 100 --system",
			},
			{
				Comment: "use a profile for files whose name starts with \"orders_\"",
				Line:    "csvcmp config set profiles.orders.files 'orders_*' --global",
			},
		}),
		Args: cobra.ExactArgs(2),
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
			if err = dotno.SetValue(v, args[1]); err != nil {
				return err
			}
			return s.Save(c)
		},
	}
	return cmd
}
