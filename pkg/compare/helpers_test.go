// SPDX-License-Identifier: Apache-2.0
// Copyright © 2023 Wrangle Ltd

package compare

import (
	"fmt"
	"io"
)

type sliceReader struct {
	rows [][]string
	// reads counts calls to Read
	reads int
	// failAt makes the nth Read (1-based) fail
	failAt int
}

func newSliceReader(rows ...[]string) *sliceReader {
	return &sliceReader{rows: rows}
}

func (r *sliceReader) Read() ([]string, error) {
	r.reads++
	if r.failAt > 0 && r.reads == r.failAt {
		return nil, fmt.Errorf("disk on fire")
	}
	if len(r.rows) == 0 {
		return nil, io.EOF
	}
	row := r.rows[0]
	r.rows = r.rows[1:]
	return row, nil
}

type rowRecorder struct {
	rows [][]string
}

func (w *rowRecorder) Write(row []string) error {
	w.rows = append(w.rows, append([]string(nil), row...))
	return nil
}

func idVal(pairs ...string) [][]string {
	rows := [][]string{{"id", "val"}}
	for i := 0; i < len(pairs); i += 2 {
		rows = append(rows, []string{pairs[i], pairs[i+1]})
	}
	return rows
}
