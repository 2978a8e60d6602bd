// SPDX-License-Identifier: Apache-2.0
// Copyright © 2023 Wrangle Ltd

package csvfile

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// StdinName is the file name that reads from standard input
const StdinName = "-"

type File struct {
	Name string
	r    io.Reader
	// closers are called in reverse order
	closers []func() error
}

func (f *File) Read(p []byte) (int, error) {
	return f.r.Read(p)
}

func (f *File) Close() error {
	var firstErr error
	for i := len(f.closers) - 1; i >= 0; i-- {
		if err := f.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	f.closers = nil
	return firstErr
}

// Open opens name for reading, decompressing ".gz" and ".zst" files. The name
// "-" reads from stdin, which is never closed.
func Open(name string, stdin io.Reader) (*File, error) {
	f := &File{Name: name}
	if name == StdinName {
		f.r = bufio.NewReader(stdin)
		return f, nil
	}
	osf, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	f.closers = append(f.closers, osf.Close)
	br := bufio.NewReader(osf)
	switch {
	case strings.HasSuffix(name, ".gz"):
		gzr, err := gzip.NewReader(br)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("error opening gzip file %q: %v", name, err)
		}
		f.closers = append(f.closers, gzr.Close)
		f.r = gzr
	case strings.HasSuffix(name, ".zst"):
		zr, err := zstd.NewReader(br)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("error opening zstd file %q: %v", name, err)
		}
		f.closers = append(f.closers, func() error {
			zr.Close()
			return nil
		})
		f.r = zr
	default:
		f.r = br
	}
	return f, nil
}

// NewReader returns a csv.Reader with the given delimiter, or comma if delim
// is 0. Records may have varying numbers of fields.
func NewReader(r io.Reader, delim rune) *csv.Reader {
	cr := csv.NewReader(r)
	if delim != 0 {
		cr.Comma = delim
	}
	cr.FieldsPerRecord = -1
	return cr
}

func NewWriter(w io.Writer, delim rune) *csv.Writer {
	cw := csv.NewWriter(w)
	if delim != 0 {
		cw.Comma = delim
	}
	return cw
}
