// SPDX-License-Identifier: Apache-2.0
// Copyright © 2021 Wrangle Ltd

package sorter

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"sort"

	"github.com/wrgl/csvcmp/pkg/csvfile"
	"github.com/wrgl/csvcmp/pkg/errors"
	"github.com/wrgl/csvcmp/pkg/mem"
	"github.com/wrgl/csvcmp/pkg/pbar"
	"github.com/wrgl/csvcmp/pkg/slice"
	"github.com/wrgl/csvcmp/pkg/testutils"
)

// DefaultRunSize is used when available memory cannot be determined
const DefaultRunSize uint64 = 64 << 20

func getRunSize() uint64 {
	total, err := mem.GetTotalMem()
	if err != nil {
		return DefaultRunSize
	}
	avail, err := mem.GetAvailMem()
	if err != nil {
		return DefaultRunSize
	}
	size := avail
	if size < total/8 {
		size = total / 8
	}
	return size / 4
}

type chunk struct {
	f *os.File
	r *csv.Reader
}

func writeChunk(rows [][]string) (*chunk, error) {
	f, err := testutils.TempFile("", "sorted_chunk_*.csv")
	if err != nil {
		return nil, err
	}
	bw := bufio.NewWriter(f)
	w := csvfile.NewWriter(bw, 0)
	if err = w.WriteAll(rows); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, err
	}
	if err = bw.Flush(); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, err
	}
	if _, err = f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, err
	}
	return &chunk{f: f, r: csvfile.NewReader(bufio.NewReader(f), 0)}, nil
}

func (c *chunk) next() ([]string, error) {
	row, err := c.r.Read()
	if err == io.EOF {
		return nil, nil
	}
	return row, err
}

func (c *chunk) remove() error {
	if err := c.f.Close(); err != nil {
		return err
	}
	return os.Remove(c.f.Name())
}

// Sorter sorts CSV rows by Key columns. Rows are held in memory until they
// exceed the run size, then sorted and spilled to a temporary chunk file.
// SortedRows merges all chunks. Rows with equal keys keep their input order.
type Sorter struct {
	Columns   []string
	Key       []int
	RowsCount uint32
	runSize   uint64
	size      uint64
	bar       pbar.Bar
	chunks    []*chunk
	current   [][]string
}

// NewSorter creates a sorter. A runSize of 0 derives the run size from
// available memory. bar may be nil.
func NewSorter(runSize uint64, bar pbar.Bar) *Sorter {
	if runSize == 0 {
		runSize = getRunSize()
	}
	if bar == nil {
		bar = pbar.NewNoopBar()
	}
	return &Sorter{
		runSize: runSize,
		bar:     bar,
	}
}

func (s *Sorter) less(a, b []string) bool {
	return slice.CompareAt(a, s.Key, b, s.Key) < 0
}

func (s *Sorter) sortCurrent() {
	sort.SliceStable(s.current, func(i, j int) bool {
		return s.less(s.current[i], s.current[j])
	})
}

// SetColumns sets the header and the columns to sort by
func (s *Sorter) SetColumns(columns, key []string) (err error) {
	s.Key, err = slice.KeyIndices(columns, key)
	if err != nil {
		return err
	}
	s.Columns = append(s.Columns[:0], columns...)
	return nil
}

func (s *Sorter) AddRow(row []string) error {
	s.size += 4
	for _, str := range row {
		s.size += uint64(len(str)) + 2
	}
	s.bar.Incr()
	s.RowsCount++
	s.current = append(s.current, append([]string(nil), row...))
	if s.size >= s.runSize {
		s.size = 0
		s.sortCurrent()
		c, err := writeChunk(s.current)
		if err != nil {
			return errors.Wrap("error writing sorted chunk", err)
		}
		s.chunks = append(s.chunks, c)
		s.current = s.current[:0]
	}
	return nil
}

// SortedRows calls fn with every row in sorted order. fn must not retain row.
func (s *Sorter) SortedRows(fn func(row []string) error) (err error) {
	s.sortCurrent()
	n := len(s.chunks)
	heads := make([][]string, n)
	for i, c := range s.chunks {
		if heads[i], err = c.next(); err != nil {
			return errors.Wrap("error reading sorted chunk", err)
		}
	}
	for {
		minInd := -1
		var minRow []string
		for i, row := range heads {
			if row == nil {
				continue
			}
			if minRow == nil || s.less(row, minRow) {
				minRow = row
				minInd = i
			}
		}
		if len(s.current) > 0 && (minRow == nil || s.less(s.current[0], minRow)) {
			minRow = s.current[0]
			minInd = n
		}
		if minRow == nil {
			return nil
		}
		if err = fn(minRow); err != nil {
			return err
		}
		if minInd < n {
			if heads[minInd], err = s.chunks[minInd].next(); err != nil {
				return errors.Wrap("error reading sorted chunk", err)
			}
		} else {
			s.current = s.current[1:]
		}
	}
}

// Close removes all chunk files
func (s *Sorter) Close() error {
	var firstErr error
	for _, c := range s.chunks {
		if err := c.remove(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.chunks = nil
	s.current = nil
	return firstErr
}
