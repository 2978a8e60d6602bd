// SPDX-License-Identifier: Apache-2.0
// Copyright © 2023 Wrangle Ltd

package csvcmp

import (
	"fmt"
	"strings"

	"github.com/mitchellh/colorstring"
	"github.com/spf13/cobra"
	"github.com/wrgl/csvcmp/cmd/csvcmp/utils"
	"github.com/wrgl/csvcmp/pkg/compare"
	"github.com/wrgl/csvcmp/pkg/conf"
	"github.com/wrgl/csvcmp/pkg/csvfile"
)

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare LEFT_FILE RIGHT_FILE",
		Short: "Compare two CSV files sorted by the same match columns.",
		Long: strings.Join([]string{
			"Compare two CSV files sorted by the same match columns. Rows are paired by their match",
			"column values and paired rows are compared on the check columns. Differences are written",
			"to stdout as CSV rows whose first field is \"-\" for a left row or \"+\" for a right row.",
			"Counts requested with --report are written to stderr.",
			"",
			"The exit status packs three flags: 4 when the left file misses rows of the right file,",
			"2 when the right file misses rows of the left file and 1 when paired rows differ.",
			"",
			"Both files must already be sorted by the match columns (see \"csvcmp order\"), which",
			"must be confirmed with --assume-sorted. Either file can be \"-\" to read from stdin.",
			"",
			"Report channels: " + strings.Join(compare.ChannelNames(), ", ") + ".",
		}, "\n"),
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "compare rows by id, checking columns name and price",
				Line:    "csvcmp compare old.csv new.csv -m id -c name,price --assume-sorted",
			},
			{
				Comment: "list every difference and count rows on both sides",
				Line:    "csvcmp compare old.csv new.csv -m id -c name --assume-sorted --max-differences 0 --report each_missing_left,each_missing_right,each_unequal,count_left,count_right",
			},
			{
				Comment: "compare a semicolon-delimited file with a gzipped file from stdin",
				Line:    "zcat new.csv.gz | csvcmp compare old.csv - -m id --delimiter-1 ';' --assume-sorted",
			},
		}),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := utils.Logger(cmd)
			if args[0] == csvfile.StdinName && args[1] == csvfile.StdinName {
				return fmt.Errorf("only one file can be read from stdin")
			}
			c, err := utils.OpenConfig(cmd)
			if err != nil {
				return err
			}
			profile, cmpConf, err := c.ProfileFor(args[0])
			if err != nil {
				return err
			}
			if profile != "" {
				logger.V(1).Info("using config profile", "profile", profile)
			}
			settings, err := utils.ResolveCompareSettings(cmd, cmpConf)
			if err != nil {
				return err
			}
			channels := compare.DefaultChannels
			if settings.Report != nil {
				if channels, err = compare.ParseChannels(settings.Report); err != nil {
					return err
				}
			}
			leftDelim, err := utils.GetDelimiter(cmd, "delimiter-1", c)
			if err != nil {
				return err
			}
			rightDelim, err := utils.GetDelimiter(cmd, "delimiter-2", c)
			if err != nil {
				return err
			}
			format, err := utils.CountFormatter(cmd)
			if err != nil {
				return err
			}

			left, err := csvfile.Open(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer left.Close()
			right, err := csvfile.Open(args[1], cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer right.Close()
			lr := csvfile.NewReader(left, leftDelim)
			lr.ReuseRecord = true
			rr := csvfile.NewReader(right, rightDelim)
			rr.ReuseRecord = true
			w := csvfile.NewWriter(cmd.OutOrStdout(), 0)

			res, err := compare.Tables(lr, rr, w,
				compare.WithMatchColumns(settings.MatchColumns...),
				compare.WithCheckColumns(settings.CheckColumns...),
				compare.WithMaxDifferences(int64(settings.MaxDifferences)),
				compare.WithAssumeSorted(settings.AssumeSorted),
				compare.WithChannels(channels),
				compare.WithLogger(logger),
				compare.WithSummary(cmd.ErrOrStderr(), format),
			)
			w.Flush()
			if err != nil {
				return err
			}
			if err = w.Error(); err != nil {
				return err
			}
			if res.Truncated {
				printTruncated(cmd, res)
			}
			if s := res.ExitStatus(); s != 0 {
				return &utils.ExitCodeError{Code: s}
			}
			return nil
		},
	}
	cmd.Flags().StringSliceP("match-column", "m", nil, "columns that identify a row, in sort order. Can be repeated or comma-separated. Overrides CSVCMP_MATCH_COLUMNS and config compare.matchColumns")
	cmd.Flags().StringSliceP("check-column", "c", nil, "columns to compare between paired rows. Overrides CSVCMP_CHECK_COLUMNS and config compare.checkColumns")
	cmd.Flags().Int("max-differences", conf.DefaultMaxDifferences, "stop after this many differences, 0 means no limit. Overrides CSVCMP_MAX_DIFFERENCES and config compare.maxDifferences")
	cmd.Flags().StringSlice("report", nil, fmt.Sprintf("report channels to enable, replacing the defaults (%s)", compare.DefaultChannels))
	cmd.Flags().Bool("assume-sorted", false, "confirm that both files are sorted by the match columns")
	cmd.Flags().String("delimiter-1", "", "field delimiter of the left file, defaults to config csv.delimiter or \",\"")
	cmd.Flags().String("delimiter-2", "", "field delimiter of the right file, defaults to config csv.delimiter or \",\"")
	utils.AddHumanReadableFlag(cmd.Flags())
	return cmd
}

func printTruncated(cmd *cobra.Command, res *compare.Result) {
	c := colorstring.Colorize{
		Colors:  colorstring.DefaultColors,
		Disable: !utils.IsTerminal(cmd.ErrOrStderr()),
		Reset:   true,
	}
	cmd.PrintErrln(c.Color(fmt.Sprintf(
		"[yellow]stopped after %d differences, counts are lower bounds. Use --max-differences 0 to see all differences",
		res.Differences(),
	)))
}
