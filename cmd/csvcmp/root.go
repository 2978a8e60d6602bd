// SPDX-License-Identifier: Apache-2.0
// Copyright © 2021 Wrangle Ltd

package csvcmp

import (
	"os"
	"runtime/pprof"

	"github.com/spf13/cobra"
	"github.com/wrgl/csvcmp/cmd/csvcmp/config"
	"github.com/wrgl/csvcmp/cmd/csvcmp/utils"
)

func RootCmd() *cobra.Command {
	var cleanupLogger func()
	rootCmd := &cobra.Command{
		Use:   "csvcmp",
		Short: "Compare, sort, count and filter CSV files",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cleanupLogger, err = utils.SetupLogger(cmd)
			if err != nil {
				return err
			}
			cpuprofile, err := cmd.Flags().GetString("cpuprofile")
			if err != nil {
				return err
			}
			if cpuprofile != "" {
				f, err := os.Create(cpuprofile)
				if err != nil {
					return err
				}
				if err = pprof.StartCPUProfile(f); err != nil {
					return err
				}
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			pprof.StopCPUProfile()
			if cleanupLogger != nil {
				defer cleanupLogger()
			}
			heapprofile, err := cmd.Flags().GetString("heapprofile")
			if err != nil {
				return err
			}
			if heapprofile != "" {
				f, err := os.Create(heapprofile)
				if err != nil {
					return err
				}
				defer f.Close()
				return pprof.WriteHeapProfile(f)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Usage()
		},
	}
	utils.AddLoggerFlags(rootCmd.PersistentFlags())
	utils.AddConfigFlag(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().String("cpuprofile", "", "write cpu profile to file")
	rootCmd.PersistentFlags().String("heapprofile", "", "write heap profile to file")
	rootCmd.AddCommand(newCompareCmd())
	rootCmd.AddCommand(newOrderCmd())
	rootCmd.AddCommand(newCountCmd())
	rootCmd.AddCommand(newSelectCmd())
	rootCmd.AddCommand(config.RootCmd())
	return rootCmd
}
