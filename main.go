// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/wrgl/csvcmp/cmd/csvcmp"
	"github.com/wrgl/csvcmp/cmd/csvcmp/utils"
	"github.com/wrgl/csvcmp/pkg/errors"
)

func main() {
	rootCmd := csvcmp.RootCmd()
	rootCmd.SetOut(os.Stdout)
	if err := rootCmd.Execute(); err != nil {
		var exitErr *utils.ExitCodeError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		color.New(color.FgRed).Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}
}
