// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package utils

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/wrgl/csvcmp/pkg/conf"
	conffs "github.com/wrgl/csvcmp/pkg/conf/fs"
)

func AddConfigFlag(flags *pflag.FlagSet) {
	flags.String("config", "", "read settings from this file instead of the system, global and local config files")
}

// OpenConfig reads the file given with --config, or merges the system,
// global and local config files
func OpenConfig(cmd *cobra.Command) (*conf.Config, error) {
	file, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if file != "" {
		return conffs.NewStore("", conffs.FileSource, file).Open()
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return conffs.NewStore(wd, conffs.AggregateSource, "").Open()
}
