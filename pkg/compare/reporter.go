// SPDX-License-Identifier: Apache-2.0
// Copyright © 2023 Wrangle Ltd

package compare

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Channel is a set of report channels. Each bit enables one kind of detail
// row or summary line.
type Channel uint16

const (
	EachMissingLeft Channel = 1 << iota
	EachMissingRight
	EachUnequal
	EachEqual
	CountMissingLeft
	CountMissingRight
	CountUnequal
	CountEqual
	CountLeft
	CountRight

	DefaultChannels = EachMissingLeft | EachMissingRight | EachUnequal
)

const (
	PrefixLeft  = "-"
	PrefixRight = "+"
	PrefixEqual = " "
)

var channelNames = []struct {
	ch   Channel
	name string
}{
	{EachMissingLeft, "each_missing_left"},
	{EachMissingRight, "each_missing_right"},
	{EachUnequal, "each_unequal"},
	{EachEqual, "each_equal"},
	{CountMissingLeft, "count_missing_left"},
	{CountMissingRight, "count_missing_right"},
	{CountUnequal, "count_unequal"},
	{CountEqual, "count_equal"},
	{CountLeft, "count_left"},
	{CountRight, "count_right"},
}

// UnknownChannelError is returned by ParseChannels for a name that isn't a
// report channel
type UnknownChannelError struct {
	Name string
}

func (e *UnknownChannelError) Error() string {
	return fmt.Sprintf("unknown report channel %q, valid channels are: %s", e.Name, strings.Join(ChannelNames(), ", "))
}

func ChannelNames() []string {
	names := make([]string, len(channelNames))
	for i, v := range channelNames {
		names[i] = v.name
	}
	return names
}

// ParseChannels turns channel names into a Channel set
func ParseChannels(names []string) (Channel, error) {
	var c Channel
	for _, s := range names {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		found := false
		for _, v := range channelNames {
			if v.name == s {
				c |= v.ch
				found = true
				break
			}
		}
		if !found {
			return 0, &UnknownChannelError{Name: s}
		}
	}
	return c, nil
}

func (c Channel) Has(o Channel) bool {
	return c&o == o
}

func (c Channel) Names() []string {
	var names []string
	for _, v := range channelNames {
		if c.Has(v.ch) {
			names = append(names, v.name)
		}
	}
	return names
}

func (c Channel) String() string {
	return strings.Join(c.Names(), ",")
}

// RowWriter is the sink for detail rows. *csv.Writer satisfies this interface.
type RowWriter interface {
	Write(row []string) error
}

// Tally counts what a comparison run observed
type Tally struct {
	MissingLeft  int64
	MissingRight int64
	Unequal      int64
	Equal        int64
	LeftRows     int64
	RightRows    int64
}

type handler func(r *Reporter, ev Event) error

// Reporter applies the handlers enabled by its channels to each event
type Reporter struct {
	w        RowWriter
	channels Channel
	handlers map[Outcome][]handler
	tally    Tally
	buf      []string
}

func NewReporter(w RowWriter, channels Channel) *Reporter {
	r := &Reporter{
		w:        w,
		channels: channels,
		handlers: map[Outcome][]handler{},
	}
	r.on(LeftOnly, func(r *Reporter, ev Event) error {
		r.tally.LeftRows++
		r.tally.MissingRight++
		return nil
	})
	r.on(RightOnly, func(r *Reporter, ev Event) error {
		r.tally.RightRows++
		r.tally.MissingLeft++
		return nil
	})
	r.on(MatchedUnequal, func(r *Reporter, ev Event) error {
		r.tally.LeftRows++
		r.tally.RightRows++
		r.tally.Unequal++
		return nil
	})
	r.on(MatchedEqual, func(r *Reporter, ev Event) error {
		r.tally.LeftRows++
		r.tally.RightRows++
		r.tally.Equal++
		return nil
	})
	if w == nil {
		return r
	}
	if channels.Has(EachMissingRight) {
		r.on(LeftOnly, writeLeft(PrefixLeft))
	}
	if channels.Has(EachMissingLeft) {
		r.on(RightOnly, writeRight(PrefixRight))
	}
	if channels.Has(EachUnequal) {
		r.on(MatchedUnequal, writeLeft(PrefixLeft), writeRight(PrefixRight))
	}
	if channels.Has(EachEqual) {
		r.on(MatchedEqual, writeLeft(PrefixEqual))
	}
	return r
}

func (r *Reporter) on(o Outcome, handlers ...handler) {
	r.handlers[o] = append(r.handlers[o], handlers...)
}

func writeLeft(prefix string) handler {
	return func(r *Reporter, ev Event) error {
		return r.writeRow(ev.Left, prefix)
	}
}

func writeRight(prefix string) handler {
	return func(r *Reporter, ev Event) error {
		return r.writeRow(ev.Right, prefix)
	}
}

func (r *Reporter) writeRow(row []string, prefix string) error {
	if len(row) == 0 {
		return r.w.Write(row)
	}
	r.buf = append(r.buf[:0], row...)
	r.buf[0] = prefix + r.buf[0]
	return r.w.Write(r.buf)
}

// Report runs every handler registered for the event's outcome
func (r *Reporter) Report(ev Event) error {
	for _, h := range r.handlers[ev.Outcome] {
		if err := h(r, ev); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reporter) Tally() Tally {
	return r.tally
}

// WriteSummary writes a "<label>\t<count>" line for each enabled count_*
// channel. format defaults to plain decimal.
func (r *Reporter) WriteSummary(w io.Writer, format func(int64) string) error {
	if format == nil {
		format = func(n int64) string {
			return strconv.FormatInt(n, 10)
		}
	}
	for _, line := range []struct {
		ch    Channel
		label string
		n     int64
	}{
		{CountMissingLeft, "missing_left", r.tally.MissingLeft},
		{CountMissingRight, "missing_right", r.tally.MissingRight},
		{CountUnequal, "unequal", r.tally.Unequal},
		{CountEqual, "equal", r.tally.Equal},
		{CountLeft, "left", r.tally.LeftRows},
		{CountRight, "right", r.tally.RightRows},
	} {
		if !r.channels.Has(line.ch) {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", line.label, format(line.n)); err != nil {
			return err
		}
	}
	return nil
}
