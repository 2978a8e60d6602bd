// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package conf

import (
	"fmt"
	"path/filepath"
	"sort"
	"unicode/utf8"

	"github.com/gobwas/glob"
)

const (
	DefaultMaxDifferences = 10
)

type Compare struct {
	// MatchColumns are the columns that identify a row. Both tables must be sorted by
	// these columns, in this order.
	MatchColumns []string `yaml:"matchColumns,omitempty" json:"matchColumns,omitempty"`

	// CheckColumns are compared between rows that share the same match values.
	CheckColumns []string `yaml:"checkColumns,omitempty" json:"checkColumns,omitempty"`

	// MaxDifferences stops the comparison after this many differences. 0 means no limit.
	// Defaults to 10.
	MaxDifferences *int `yaml:"maxDifferences,omitempty" json:"maxDifferences,omitempty"`

	// Report lists the enabled report channels, e.g. "each_unequal" or "count_left".
	Report []string `yaml:"report,omitempty" json:"report,omitempty"`

	// AssumeSorted confirms that both tables are sorted by the match columns.
	AssumeSorted *bool `yaml:"assumeSorted,omitempty" json:"assumeSorted,omitempty"`
}

// Merge returns a copy of c with every field set in o taking precedence
func (c *Compare) Merge(o *Compare) *Compare {
	res := &Compare{}
	if c != nil {
		*res = *c
	}
	if o == nil {
		return res
	}
	if o.MatchColumns != nil {
		res.MatchColumns = o.MatchColumns
	}
	if o.CheckColumns != nil {
		res.CheckColumns = o.CheckColumns
	}
	if o.MaxDifferences != nil {
		res.MaxDifferences = o.MaxDifferences
	}
	if o.Report != nil {
		res.Report = o.Report
	}
	if o.AssumeSorted != nil {
		res.AssumeSorted = o.AssumeSorted
	}
	return res
}

type CSV struct {
	// Delimiter is the field delimiter of input files. Defaults to ",".
	Delimiter string `yaml:"delimiter,omitempty" json:"delimiter,omitempty"`
}

// Profile holds compare settings for files whose base name matches Files
type Profile struct {
	// Files is a glob pattern. See https://github.com/gobwas/glob for supported format
	Files string `yaml:"files,omitempty" json:"files,omitempty"`

	Compare *Compare `yaml:"compare,omitempty" json:"compare,omitempty"`
}

type Config struct {
	Compare  *Compare            `yaml:"compare,omitempty" json:"compare,omitempty"`
	CSV      *CSV                `yaml:"csv,omitempty" json:"csv,omitempty"`
	Profiles map[string]*Profile `yaml:"profiles,omitempty" json:"profiles,omitempty"`
}

// Delimiter returns the configured field delimiter, or 0 if none is set
func (c *Config) Delimiter() (rune, error) {
	if c.CSV == nil || c.CSV.Delimiter == "" {
		return 0, nil
	}
	r, size := utf8.DecodeRuneInString(c.CSV.Delimiter)
	if size != len(c.CSV.Delimiter) || r == utf8.RuneError {
		return 0, fmt.Errorf("csv.delimiter must be a single character, found %q", c.CSV.Delimiter)
	}
	return r, nil
}

// ProfileFor returns the top-level compare settings overlaid with the first
// profile, in name order, whose pattern matches the base name of path. The
// returned name is empty when no profile matches.
func (c *Config) ProfileFor(path string) (name string, cmp *Compare, err error) {
	base := filepath.Base(path)
	names := make([]string, 0, len(c.Profiles))
	for k := range c.Profiles {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		p := c.Profiles[k]
		if p == nil || p.Files == "" {
			continue
		}
		g, err := glob.Compile(p.Files)
		if err != nil {
			return "", nil, fmt.Errorf("profile %q: invalid files pattern %q: %v", k, p.Files, err)
		}
		if g.Match(base) {
			return k, c.Compare.Merge(p.Compare), nil
		}
	}
	return "", c.Compare.Merge(nil), nil
}
