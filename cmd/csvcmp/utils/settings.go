// SPDX-License-Identifier: Apache-2.0
// Copyright © 2023 Wrangle Ltd

package utils

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wrgl/csvcmp/pkg/conf"
)

const (
	KeyMatchColumns   = "match_columns"
	KeyCheckColumns   = "check_columns"
	KeyMaxDifferences = "max_differences"
	KeyReport         = "report"
	KeyAssumeSorted   = "assume_sorted"
)

// CompareSettings are the effective compare settings of one invocation
type CompareSettings struct {
	MatchColumns   []string
	CheckColumns   []string
	MaxDifferences int
	// Report is nil when no channel list was given anywhere
	Report       []string
	AssumeSorted bool
}

// settingFlags maps setting keys to flag names
var settingFlags = map[string]string{
	KeyMatchColumns:   "match-column",
	KeyCheckColumns:   "check-column",
	KeyMaxDifferences: "max-differences",
	KeyReport:         "report",
	KeyAssumeSorted:   "assume-sorted",
}

func configMap(c *conf.Compare) map[string]interface{} {
	m := map[string]interface{}{}
	if c == nil {
		return m
	}
	if c.MatchColumns != nil {
		m[KeyMatchColumns] = c.MatchColumns
	}
	if c.CheckColumns != nil {
		m[KeyCheckColumns] = c.CheckColumns
	}
	if c.MaxDifferences != nil {
		m[KeyMaxDifferences] = *c.MaxDifferences
	}
	if c.Report != nil {
		m[KeyReport] = c.Report
	}
	if c.AssumeSorted != nil {
		m[KeyAssumeSorted] = *c.AssumeSorted
	}
	return m
}

// stringSlice reads a list setting. Values from the environment are comma
// separated.
func stringSlice(v *viper.Viper, key string) []string {
	switch val := v.Get(key).(type) {
	case nil:
		return nil
	case string:
		var res []string
		for _, s := range strings.Split(val, ",") {
			if s = strings.TrimSpace(s); s != "" {
				res = append(res, s)
			}
		}
		return res
	default:
		return cast.ToStringSlice(val)
	}
}

// ResolveCompareSettings layers, from highest to lowest precedence: flags
// that were set on cmd, CSVCMP_* environment variables, c and built-in
// defaults
func ResolveCompareSettings(cmd *cobra.Command, c *conf.Compare) (*CompareSettings, error) {
	v := viper.New()
	v.SetEnvPrefix("csvcmp")
	v.SetDefault(KeyMaxDifferences, conf.DefaultMaxDifferences)
	v.SetDefault(KeyAssumeSorted, false)
	if err := v.MergeConfigMap(configMap(c)); err != nil {
		return nil, err
	}
	for key, name := range settingFlags {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, err
			}
		}
	}
	s := &CompareSettings{
		MatchColumns: stringSlice(v, KeyMatchColumns),
		CheckColumns: stringSlice(v, KeyCheckColumns),
	}
	if v.IsSet(KeyReport) {
		s.Report = stringSlice(v, KeyReport)
		if s.Report == nil {
			s.Report = []string{}
		}
	}
	var err error
	s.MaxDifferences, err = cast.ToIntE(v.Get(KeyMaxDifferences))
	if err != nil {
		return nil, fmt.Errorf("invalid max differences %q: %v", v.Get(KeyMaxDifferences), err)
	}
	if s.MaxDifferences < 0 {
		return nil, fmt.Errorf("max differences must not be negative, got %d", s.MaxDifferences)
	}
	s.AssumeSorted, err = cast.ToBoolE(v.Get(KeyAssumeSorted))
	if err != nil {
		return nil, fmt.Errorf("invalid assume sorted %q: %v", v.Get(KeyAssumeSorted), err)
	}
	return s, nil
}
