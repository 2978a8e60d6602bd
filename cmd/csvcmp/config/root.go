// SPDX-License-Identifier: Apache-2.0
// Copyright © 2021 Wrangle Ltd

package config

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/wrgl/csvcmp/pkg/conf"
	conffs "github.com/wrgl/csvcmp/pkg/conf/fs"
)

func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Read or write config.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Usage()
		},
	}
	cmd.PersistentFlags().Bool("system", false, "for writing commands: write to system-wide /usr/local/etc/csvcmp/config.yaml rather than ./.csvcmp.yaml. For reading commands: read only from the system-wide file rather than from all available files.")
	cmd.PersistentFlags().Bool("global", false, "for writing commands: write to global $XDG_CONFIG_HOME/csvcmp/config.yaml rather than ./.csvcmp.yaml. For reading commands: read only from the global file rather than from all available files.")
	cmd.PersistentFlags().Bool("local", false, "for writing commands: write to ./.csvcmp.yaml. This is the default behavior. For reading commands: read only from ./.csvcmp.yaml rather than from all available files.")
	cmd.PersistentFlags().StringP("file", "f", "", "use the given config file instead of ./.csvcmp.yaml")
	cmd.PersistentFlags().Bool("fixed-value", false, "when used with the VALUE_PATTERN argument, treat VALUE_PATTERN as an exact string instead of a regular expression.")
	cmd.PersistentFlags().BoolP("null", "z", false, "for all options that output values, always end values with the null character (instead of a newline).")
	cmd.AddCommand(getCmd())
	cmd.AddCommand(setCmd())
	cmd.AddCommand(addCmd())
	cmd.AddCommand(unsetCmd())
	return cmd
}

func fileOptions(cmd *cobra.Command) (file string, system, global, local bool, err error) {
	if file, err = cmd.Flags().GetString("file"); err != nil {
		return
	}
	if system, err = cmd.Flags().GetBool("system"); err != nil {
		return
	}
	if global, err = cmd.Flags().GetBool("global"); err != nil {
		return
	}
	local, err = cmd.Flags().GetBool("local")
	return
}

func readableConfigStore(cmd *cobra.Command) (conf.Store, error) {
	file, system, global, local, err := fileOptions(cmd)
	if err != nil {
		return nil, err
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	source := conffs.AggregateSource
	if system {
		source = conffs.SystemSource
	} else if global {
		source = conffs.GlobalSource
	} else if local {
		source = conffs.LocalSource
	}
	return conffs.NewStore(wd, source, file), nil
}

func writeableConfigStore(cmd *cobra.Command) (conf.Store, error) {
	file, system, global, _, err := fileOptions(cmd)
	if err != nil {
		return nil, err
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	source := conffs.LocalSource
	if system {
		source = conffs.SystemSource
	} else if global {
		source = conffs.GlobalSource
	}
	return conffs.NewStore(wd, source, file), nil
}
