// SPDX-License-Identifier: Apache-2.0
// Copyright © 2023 Wrangle Ltd

package csvcmp

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/wrgl/csvcmp/cmd/csvcmp/utils"
	"github.com/wrgl/csvcmp/pkg/csvfile"
	"github.com/wrgl/csvcmp/pkg/errors"
	"github.com/wrgl/csvcmp/pkg/pbar"
)

func newCountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count [FILE...]",
		Short: "Count data rows of CSV files.",
		Long:  "Count data rows of CSV files, excluding the header row. With several files, print each file's count followed by the total. Without files, read from stdin.",
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "count rows of a file",
				Line:    "csvcmp count data.csv",
			},
			{
				Comment: "count rows of several files with thousands separators",
				Line:    "csvcmp count -H jan.csv feb.csv.gz",
			},
		}),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{csvfile.StdinName}
			}
			format, err := utils.CountFormatter(cmd)
			if err != nil {
				return err
			}
			c, err := utils.OpenConfig(cmd)
			if err != nil {
				return err
			}
			delim, err := utils.GetDelimiter(cmd, "delimiter", c)
			if err != nil {
				return err
			}
			pc, err := utils.GetProgressBarContainer(cmd)
			if err != nil {
				return err
			}
			var total int64
			counts := make([]int64, len(args))
			for i, name := range args {
				counts[i], err = countRows(pc, name, cmd.InOrStdin(), delim)
				if err != nil {
					return err
				}
				total += counts[i]
			}
			if len(args) == 1 {
				cmd.Println(format(total))
				return nil
			}
			for i, name := range args {
				cmd.Printf("%s\t%s\n", name, format(counts[i]))
			}
			cmd.Printf("total\t%s\n", format(total))
			return nil
		},
	}
	cmd.Flags().String("delimiter", "", "field delimiter, defaults to config csv.delimiter or \",\"")
	utils.AddHumanReadableFlag(cmd.Flags())
	utils.SetupProgressBarFlags(cmd.Flags())
	return cmd
}

func countRows(pc *pbar.Container, name string, stdin io.Reader, delim rune) (int64, error) {
	f, err := csvfile.Open(name, stdin)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	bar := pc.NewBar(0, "Reading "+name, pbar.UnitKiB)
	defer pc.Wait()
	r := csvfile.NewReader(pbar.NewReader(bar, f), delim)
	r.ReuseRecord = true
	var n int64
	for {
		_, err := r.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			bar.Abort()
			return 0, errors.Wrapf(err, "reading %s", name)
		}
		n++
	}
	bar.Done()
	if n == 0 {
		return 0, nil
	}
	return n - 1, nil
}
