// SPDX-License-Identifier: Apache-2.0
// Copyright © 2023 Wrangle Ltd

package csvcmp

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wrgl/csvcmp/cmd/csvcmp/utils"
	"github.com/wrgl/csvcmp/pkg/csvfile"
	"github.com/wrgl/csvcmp/pkg/errors"
	"github.com/wrgl/csvcmp/pkg/slice"
	"github.com/wrgl/csvcmp/pkg/sorter"
)

var errMissingOrderColumns = fmt.Errorf("order columns not found")

type orderInput struct {
	f        *csvfile.File
	r        interface{ Read() ([]string, error) }
	header   []string
	included int64
	dropped  int64
}

func newOrderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order FILE...",
		Short: "Sort CSV files by one or more columns.",
		Long: strings.Join([]string{
			"Sort CSV files by one or more columns, in the order \"csvcmp compare\" expects. Files",
			"sharing the header of the first file are sorted together into a single output written",
			"to stdout. Files with a different header are skipped. Values are compared as strings",
			"and rows with equal values keep their input order. Rows that do not fit in memory are",
			"spilled to temporary files.",
			"",
			"Per-file row counts are written to stderr as: path, included, dropped, all.",
		}, "\n"),
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "sort a file by id then date",
				Line:    "csvcmp order data.csv --column id --column date > sorted.csv",
			},
			{
				Comment: "combine monthly exports, dropping rows without an id",
				Line:    "csvcmp order jan.csv feb.csv.gz mar.csv --column id --only-nonempty > q1.csv",
			},
		}),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := utils.Logger(cmd)
			columns, err := cmd.Flags().GetStringSlice("column")
			if err != nil {
				return err
			}
			if len(columns) == 0 {
				return fmt.Errorf("at least one --column is required")
			}
			if s := slice.DuplicatedString(columns); s != "" {
				return fmt.Errorf("column %q is given more than once", s)
			}
			onlyNonEmpty, err := cmd.Flags().GetBool("only-nonempty")
			if err != nil {
				return err
			}
			runSize, err := cmd.Flags().GetUint64("run-size")
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

			inputs, err := openOrderInputs(cmd, args, delim)
			defer func() {
				for _, in := range inputs {
					in.f.Close()
				}
			}()
			if err != nil {
				return err
			}
			if err = checkOrderColumns(cmd, inputs, columns); err != nil {
				return err
			}

			pc, err := utils.GetProgressBarContainer(cmd)
			if err != nil {
				return err
			}
			bar := pc.NewBar(0, "Sorting rows", 0)
			s := sorter.NewSorter(runSize, bar)
			defer s.Close()
			if err = s.SetColumns(inputs[0].header, columns); err != nil {
				return err
			}
			var sorted []*orderInput
			for _, in := range inputs {
				if !slice.StringSliceEqual(in.header, s.Columns) {
					logger.V(1).Info("skipping file with a different header", "file", in.f.Name, "header", in.header)
					cmd.PrintErrf("skipping %s: header differs from %s\n", in.f.Name, inputs[0].f.Name)
					continue
				}
				if err = addOrderRows(s, in, onlyNonEmpty); err != nil {
					bar.Abort()
					pc.Wait()
					return err
				}
				sorted = append(sorted, in)
			}
			bar.Done()
			pc.Wait()

			w := csvfile.NewWriter(cmd.OutOrStdout(), delim)
			if err = w.Write(s.Columns); err != nil {
				return err
			}
			if err = s.SortedRows(w.Write); err != nil {
				return err
			}
			w.Flush()
			if err = w.Error(); err != nil {
				return err
			}
			printOrderStats(cmd, sorted)
			return nil
		},
	}
	cmd.Flags().StringSlice("column", nil, "column to sort by. Can be repeated, earlier columns take precedence")
	cmd.Flags().Bool("only-nonempty", false, "drop rows with an empty value in any sort column")
	cmd.Flags().Uint64("run-size", 0, "number of bytes to sort in memory before spilling to disk, defaults to a quarter of available memory")
	cmd.Flags().String("delimiter", "", "field delimiter of input and output, defaults to config csv.delimiter or \",\"")
	utils.SetupProgressBarFlags(cmd.Flags())
	return cmd
}

func openOrderInputs(cmd *cobra.Command, args []string, delim rune) (inputs []*orderInput, err error) {
	stdinUsed := false
	for _, name := range args {
		if name == csvfile.StdinName {
			if stdinUsed {
				return inputs, fmt.Errorf("only one file can be read from stdin")
			}
			stdinUsed = true
		}
		f, err := csvfile.Open(name, cmd.InOrStdin())
		if err != nil {
			return inputs, err
		}
		in := &orderInput{f: f}
		inputs = append(inputs, in)
		r := csvfile.NewReader(f, delim)
		r.ReuseRecord = true
		in.r = r
		header, err := r.Read()
		if err == io.EOF {
			return inputs, errors.Wrapf(fmt.Errorf("missing header row"), "reading %s", name)
		} else if err != nil {
			return inputs, errors.Wrapf(err, "reading %s", name)
		}
		in.header = append([]string(nil), header...)
	}
	return inputs, nil
}

// checkOrderColumns prints a report of sort columns missing from each input
func checkOrderColumns(cmd *cobra.Command, inputs []*orderInput, columns []string) error {
	var lines []string
	for _, in := range inputs {
		if missing := slice.StringsNotInSubset(columns, in.header); len(missing) > 0 {
			lines = append(lines, fmt.Sprintf("%s\t%s", in.f.Name, strings.Join(missing, ",")))
		}
	}
	if len(lines) == 0 {
		return nil
	}
	cmd.PrintErrln("source\tmissing_columns")
	for _, l := range lines {
		cmd.PrintErrln(l)
	}
	return errMissingOrderColumns
}

func addOrderRows(s *sorter.Sorter, in *orderInput, onlyNonEmpty bool) error {
	for {
		row, err := in.r.Read()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return errors.Wrapf(err, "reading %s", in.f.Name)
		}
		if onlyNonEmpty && hasEmptyValue(row, s.Key) {
			in.dropped++
			continue
		}
		if err = s.AddRow(row); err != nil {
			return err
		}
		in.included++
	}
}

func hasEmptyValue(row []string, indices []int) bool {
	for _, i := range indices {
		if slice.ValueAt(row, i) == "" {
			return true
		}
	}
	return false
}

func printOrderStats(cmd *cobra.Command, inputs []*orderInput) {
	var included, dropped int64
	for _, in := range inputs {
		cmd.PrintErrf("%s\t%d\t%d\t%d\n", in.f.Name, in.included, in.dropped, in.included+in.dropped)
		included += in.included
		dropped += in.dropped
	}
	cmd.PrintErrf("total\t%d\t%d\t%d\n", included, dropped, included+dropped)
}
