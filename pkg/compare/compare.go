// SPDX-License-Identifier: Apache-2.0
// Copyright © 2023 Wrangle Ltd

package compare

import (
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/wrgl/csvcmp/pkg/errors"
)

var (
	ErrPreconditionUnmet = fmt.Errorf("comparing unsorted tables is not supported: sort both tables by the match columns, then assume sorted")
	ErrNoMatchColumns    = fmt.Errorf("at least one match column is required")
	ErrMissingHeader     = fmt.Errorf("missing header row")
)

type Comparator struct {
	match        []string
	check        []string
	maxDiff      int64
	assumeSorted bool
	channels     Channel
	logger       logr.Logger
	summary      io.Writer
	formatCount  func(int64) string
}

type Option func(c *Comparator)

func WithMatchColumns(cols ...string) Option {
	return func(c *Comparator) {
		c.match = cols
	}
}

func WithCheckColumns(cols ...string) Option {
	return func(c *Comparator) {
		c.check = cols
	}
}

// WithMaxDifferences stops the walk once n differences were found. 0 means
// unlimited.
func WithMaxDifferences(n int64) Option {
	return func(c *Comparator) {
		c.maxDiff = n
	}
}

// WithAssumeSorted asserts that both sources are sorted by the match columns.
// Comparisons refuse to run without it.
func WithAssumeSorted(b bool) Option {
	return func(c *Comparator) {
		c.assumeSorted = b
	}
}

func WithChannels(ch Channel) Option {
	return func(c *Comparator) {
		c.channels = ch
	}
}

func WithLogger(logger logr.Logger) Option {
	return func(c *Comparator) {
		c.logger = logger
	}
}

// WithSummary writes summary lines for enabled count_* channels to w after the
// walk, formatting counts with format (nil means plain decimal)
func WithSummary(w io.Writer, format func(int64) string) Option {
	return func(c *Comparator) {
		c.summary = w
		c.formatCount = format
	}
}

func NewComparator(opts ...Option) *Comparator {
	c := &Comparator{
		channels: DefaultChannels,
		logger:   logr.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger.GetSink() == nil {
		c.logger = logr.Discard()
	}
	return c
}

func readHeader(side Side, r RowReader) ([]string, error) {
	header, err := r.Read()
	if err == io.EOF {
		return nil, errors.Wrapf(ErrMissingHeader, "reading %s header", side)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s header", side)
	}
	return append([]string(nil), header...), nil
}

// Compare walks left and right, writing detail rows to w (which may be nil)
// according to the enabled channels. All errors are raised before the first
// data row is classified, except read and write errors.
func (c *Comparator) Compare(left, right RowReader, w RowWriter) (*Result, error) {
	if !c.assumeSorted {
		return nil, ErrPreconditionUnmet
	}
	if len(c.match) == 0 {
		return nil, ErrNoMatchColumns
	}
	leftHeader, err := readHeader(Left, left)
	if err != nil {
		return nil, err
	}
	rightHeader, err := readHeader(Right, right)
	if err != nil {
		return nil, err
	}
	cols, err := ResolveColumns(leftHeader, rightHeader, c.match, c.check)
	if err != nil {
		return nil, err
	}
	c.logger.V(1).Info("resolved columns",
		"leftMatch", cols.LeftMatch, "rightMatch", cols.RightMatch,
		"leftCheck", cols.LeftCheck, "rightCheck", cols.RightCheck,
	)
	walker, err := NewWalker(left, right, cols, c.logger)
	if err != nil {
		return nil, err
	}
	rep := NewReporter(w, c.channels)
	b := &bound{max: c.maxDiff}
	truncated := false
	for {
		ev, err := walker.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if err = rep.Report(ev); err != nil {
			return nil, errors.Wrap("writing row", err)
		}
		if b.observe(ev.Outcome) {
			truncated = true
			c.logger.V(1).Info("difference ceiling reached",
				"maxDifferences", c.maxDiff,
				"leftRowsRead", walker.RowsRead(Left),
				"rightRowsRead", walker.RowsRead(Right),
			)
			break
		}
	}
	if c.summary != nil {
		if err = rep.WriteSummary(c.summary, c.formatCount); err != nil {
			return nil, err
		}
	}
	return newResult(rep.Tally(), truncated), nil
}

// Tables compares two sorted tables, each starting with a header row
func Tables(left, right RowReader, w RowWriter, opts ...Option) (*Result, error) {
	return NewComparator(opts...).Compare(left, right, w)
}
