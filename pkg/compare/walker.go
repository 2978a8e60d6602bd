// SPDX-License-Identifier: Apache-2.0
// Copyright © 2023 Wrangle Ltd

package compare

import (
	"io"

	"github.com/go-logr/logr"
	"github.com/wrgl/csvcmp/pkg/errors"
	"github.com/wrgl/csvcmp/pkg/slice"
)

// RowReader is a source of decoded rows. Read returns io.EOF once the source
// is exhausted. *csv.Reader satisfies this interface.
type RowReader interface {
	Read() ([]string, error)
}

type State int

const (
	Ready State = iota
	LeftExhausted
	RightExhausted
	Done
)

func (s State) String() string {
	switch s {
	case Ready:
		return "Ready"
	case LeftExhausted:
		return "LeftExhausted"
	case RightExhausted:
		return "RightExhausted"
	default:
		return "Done"
	}
}

type cursor struct {
	side    Side
	r       RowReader
	match   []int
	row     []string
	eof     bool
	pending bool
	n       int64

	// previous key, kept to detect unsorted input
	prevKey  []string
	unsorted bool
}

func (c *cursor) next(logger logr.Logger) error {
	if c.row != nil {
		c.prevKey = c.prevKey[:0]
		for _, i := range c.match {
			c.prevKey = append(c.prevKey, slice.ValueAt(c.row, i))
		}
	}
	row, err := c.r.Read()
	if err == io.EOF {
		c.eof = true
		c.row = nil
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "reading %s row %d", c.side, c.n+1)
	}
	c.row = row
	c.n++
	if !c.unsorted && len(c.prevKey) > 0 && c.keyLessThanPrev() {
		c.unsorted = true
		logger.Info("rows are not sorted by match columns, results will contain spurious differences",
			"side", c.side.String(), "row", c.n,
		)
	}
	return nil
}

func (c *cursor) keyLessThanPrev() bool {
	for k, i := range c.match {
		v := slice.ValueAt(c.row, i)
		if v < c.prevKey[k] {
			return true
		} else if v > c.prevKey[k] {
			return false
		}
	}
	return false
}

// Walker advances a cursor over each source in lockstep, producing one Event
// per step. Cursors never rewind. A row is only read past once the event
// holding it has been handed out and Next is called again.
type Walker struct {
	left   *cursor
	right  *cursor
	cols   *Columns
	state  State
	logger logr.Logger
}

// NewWalker positions both cursors on the first data row. Headers must have
// been consumed already.
func NewWalker(left, right RowReader, cols *Columns, logger logr.Logger) (*Walker, error) {
	if logger.GetSink() == nil {
		logger = logr.Discard()
	}
	w := &Walker{
		left:   &cursor{side: Left, r: left, match: cols.LeftMatch},
		right:  &cursor{side: Right, r: right, match: cols.RightMatch},
		cols:   cols,
		logger: logger,
	}
	for _, c := range []*cursor{w.left, w.right} {
		if err := c.next(logger); err != nil {
			return nil, err
		}
	}
	w.updateState()
	return w, nil
}

func (w *Walker) State() State {
	return w.state
}

// RowsRead returns the number of data rows read so far from a source
func (w *Walker) RowsRead(side Side) int64 {
	if side == Left {
		return w.left.n
	}
	return w.right.n
}

func (w *Walker) updateState() {
	switch {
	case w.left.eof && w.right.eof:
		w.state = Done
	case w.left.eof:
		w.state = LeftExhausted
	case w.right.eof:
		w.state = RightExhausted
	default:
		w.state = Ready
	}
}

func (w *Walker) advance() error {
	for _, c := range []*cursor{w.left, w.right} {
		if c.pending {
			c.pending = false
			if err := c.next(w.logger); err != nil {
				return err
			}
		}
	}
	w.updateState()
	return nil
}

// Next returns the next classified event, or io.EOF once both sources are
// exhausted
func (w *Walker) Next() (Event, error) {
	if err := w.advance(); err != nil {
		return Event{}, err
	}
	switch w.state {
	case Done:
		return Event{}, io.EOF
	case LeftExhausted:
		w.right.pending = true
		return Event{Outcome: RightOnly, Right: w.right.row}, nil
	case RightExhausted:
		w.left.pending = true
		return Event{Outcome: LeftOnly, Left: w.left.row}, nil
	}
	switch c := slice.CompareAt(w.left.row, w.cols.LeftMatch, w.right.row, w.cols.RightMatch); {
	case c < 0:
		w.left.pending = true
		return Event{Outcome: LeftOnly, Left: w.left.row}, nil
	case c > 0:
		w.right.pending = true
		return Event{Outcome: RightOnly, Right: w.right.row}, nil
	}
	w.left.pending = true
	w.right.pending = true
	ev := Event{Outcome: MatchedUnequal, Left: w.left.row, Right: w.right.row}
	if slice.EqualAt(w.left.row, w.cols.LeftCheck, w.right.row, w.cols.RightCheck) {
		ev.Outcome = MatchedEqual
	}
	return ev, nil
}
