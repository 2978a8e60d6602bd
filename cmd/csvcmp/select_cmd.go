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
	"github.com/wrgl/csvcmp/pkg/expr"
	"github.com/wrgl/csvcmp/pkg/slice"
)

func newSelectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select FILE [TERM...]",
		Short: "Print rows of a CSV file that match a condition.",
		Long: strings.Join([]string{
			"Print rows of a CSV file that match a condition. The condition is a list of terms of the",
			"form \"[NOT] COLUMN OPERATOR [(TYPE)] VALUE\" joined by AND (&&) or OR (||). AND and OR",
			"cannot be mixed in one condition. Without terms every row matches.",
			"",
			"Operators: = == EQ, ≠ != <> NE, < LT, > GT, ≤ <= LE, ≥ >= GE.",
			"Types: str (the default), int, float.",
			"",
			"The header is printed before the first matching row. The number of matching rows is",
			"written to stderr.",
		}, "\n"),
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "print products that sold more than 1000 units",
				Line:    "csvcmp select products.csv total_sold GT '(int)' 1000",
			},
			{
				Comment: "print name and price of the first 5 cheap fruits",
				Line:    "csvcmp select products.csv category = fruit AND price '<' '(float)' 1.5 --only-columns name,price --limit 5",
			},
			{
				Comment: "use -- when a value starts with a dash",
				Line:    "csvcmp select ledger.csv -- amount LT '(int)' -100",
			},
		}),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := utils.Logger(cmd)
			onlyColumns, err := cmd.Flags().GetStringSlice("only-columns")
			if err != nil {
				return err
			}
			limit, err := cmd.Flags().GetInt("limit")
			if err != nil {
				return err
			}
			onlyNonEmpty, err := cmd.Flags().GetBool("only-nonempty")
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
			f, err := csvfile.Open(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer f.Close()
			r := csvfile.NewReader(f, delim)
			r.ReuseRecord = true
			header, err := r.Read()
			if err == io.EOF {
				return fmt.Errorf("%s: missing header row", args[0])
			} else if err != nil {
				return errors.Wrapf(err, "reading %s", args[0])
			}
			header = append([]string(nil), header...)
			crit, err := expr.Parse(header, args[1:])
			if err != nil {
				return err
			}
			logger.V(1).Info("parsed condition", "condition", fmt.Sprint(crit))

			var indices []int
			if len(onlyColumns) > 0 {
				indices = make([]int, 0, len(onlyColumns))
				for _, col := range onlyColumns {
					if i := slice.IndexOf(header, col); i >= 0 {
						indices = append(indices, i)
					} else {
						logger.V(1).Info("skipping column not found in header", "column", col, "header", header)
						cmd.PrintErrf("skipping column %q: not found in header\n", col)
					}
				}
			}
			project := func(row []string) []string {
				if indices == nil {
					return row
				}
				return slice.IndicesToValues(row, indices)
			}

			w := csvfile.NewWriter(cmd.OutOrStdout(), delim)
			var n, line int64
			for limit <= 0 || n < int64(limit) {
				row, err := r.Read()
				if err == io.EOF {
					break
				} else if err != nil {
					return errors.Wrapf(err, "reading %s", args[0])
				}
				line++
				ok, err := crit.Evaluate(row)
				if err != nil {
					return errors.Wrapf(err, "evaluating row %d", line)
				}
				if !ok || (onlyNonEmpty && allEmpty(project(row))) {
					continue
				}
				if n == 0 {
					if err = w.Write(project(header)); err != nil {
						return err
					}
				}
				if err = w.Write(project(row)); err != nil {
					return err
				}
				n++
			}
			w.Flush()
			if err = w.Error(); err != nil {
				return err
			}
			cmd.PrintErrf("%s\t%d\n", args[0], n)
			return nil
		},
	}
	cmd.Flags().StringSlice("only-columns", nil, "print only these columns, in this order. Columns missing from the header are skipped")
	cmd.Flags().Bool("only-nonempty", false, "print only rows with a value in at least one printed column")
	cmd.Flags().Int("limit", 0, "stop after this many matching rows, 0 means no limit")
	cmd.Flags().String("delimiter", "", "field delimiter of input and output, defaults to config csv.delimiter or \",\"")
	return cmd
}

func allEmpty(row []string) bool {
	for _, v := range row {
		if v != "" {
			return false
		}
	}
	return true
}
