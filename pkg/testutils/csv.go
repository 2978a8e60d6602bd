// SPDX-License-Identifier: Apache-2.0
// Copyright © 2021 Wrangle Ltd

package testutils

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// BuildRawCSV returns a header plus numRow rows sorted by the "id" column,
// which holds zero-padded sequence numbers so that string order matches
// numeric order
func BuildRawCSV(numCol, numRow int) [][]string {
	columns := []string{"id"}
	for i := 0; i < numCol-1; i++ {
		columns = append(columns, fmt.Sprintf("col_%d", i+1))
	}
	rawCSV := [][]string{columns}
	for i := 0; i < numRow; i++ {
		row := []string{fmt.Sprintf("%08d", i+1)}
		for j := 0; j < numCol-1; j++ {
			row = append(row, RandomValue())
		}
		rawCSV = append(rawCSV, row)
	}
	return rawCSV
}

// ModifiedCSV copies orig and changes a non-id value in roughly mPercent of
// the data rows
func ModifiedCSV(orig [][]string, mPercent int) [][]string {
	res := [][]string{}
	for i := 0; i < len(orig); i++ {
		row := append([]string{}, orig[i]...)
		if i > 0 && len(row) > 1 && rand.Intn(100) < mPercent {
			j := rand.Intn(len(row)-1) + 1
			row[j] = row[j] + "_" + BrokenRandomAlphaNumericString(3)
		}
		res = append(res, row)
	}
	return res
}

// DropRows copies orig without the data rows for which drop returns true
func DropRows(orig [][]string, drop func(i int) bool) [][]string {
	res := [][]string{orig[0]}
	for i, row := range orig[1:] {
		if !drop(i) {
			res = append(res, row)
		}
	}
	return res
}

func CSVString(t *testing.T, rows [][]string) string {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	w := csv.NewWriter(buf)
	require.NoError(t, w.WriteAll(rows))
	return buf.String()
}

func RawCSVReader(t *testing.T, rows [][]string) *csv.Reader {
	t.Helper()
	return csv.NewReader(strings.NewReader(CSVString(t, rows)))
}

// ParseCSV decodes s, failing the test on error
func ParseCSV(t *testing.T, s string) [][]string {
	t.Helper()
	r := csv.NewReader(strings.NewReader(s))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	require.NoError(t, err)
	return rows
}
