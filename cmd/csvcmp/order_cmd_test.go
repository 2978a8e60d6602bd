// SPDX-License-Identifier: Apache-2.0
// Copyright © 2023 Wrangle Ltd

package csvcmp

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrgl/csvcmp/pkg/testutils"
)

func TestOrderCmd(t *testing.T) {
	isolateConfig(t)
	f1 := createCSVFile(t, []string{
		"id,name",
		"3,c",
		"1,a",
		",x",
		"2,b",
	})
	f2 := createCSVFile(t, []string{
		"id,name",
		"0,z",
		"1,a2",
	})
	f3 := createCSVFile(t, []string{
		"id,label",
		"9,q",
	})

	stdout, stderr, err := runCmd(t, "", "order", f1, f2, f3, "--column", "id", "--only-nonempty", "--no-progress")
	require.NoError(t, err)
	assert.Equal(t, "id,name\n0,z\n1,a\n1,a2\n2,b\n3,c\n", stdout)
	assert.Equal(t, fmt.Sprintf(
		"skipping %s: header differs from %s\n%s\t3\t1\t4\n%s\t2\t0\t2\ntotal\t5\t1\t6\n",
		f3, f1, f1, f2,
	), stderr)

	stdout, _, err = runCmd(t, "", "order", f1, "--column", "name", "--column", "id", "--no-progress")
	require.NoError(t, err)
	assert.Equal(t, "id,name\n1,a\n2,b\n3,c\n,x\n", stdout)
}

func TestOrderCmdMissingColumns(t *testing.T) {
	isolateConfig(t)
	f1 := createCSVFile(t, []string{"id,name", "1,a"})
	f2 := createCSVFile(t, []string{"key,name", "1,a"})
	stdout, stderr, err := runCmd(t, "", "order", f1, f2, "--column", "id", "--column", "qty")
	assert.Equal(t, errMissingOrderColumns, err)
	assert.Equal(t, "", stdout)
	assert.Equal(t, fmt.Sprintf("source\tmissing_columns\n%s\tqty\n%s\tid,qty\n", f1, f2), stderr)

	_, _, err = runCmd(t, "", "order", f1)
	assert.EqualError(t, err, "at least one --column is required")

	_, _, err = runCmd(t, "", "order", f1, "--column", "id", "--column", "id")
	assert.EqualError(t, err, `column "id" is given more than once`)
}

func TestOrderCmdSpill(t *testing.T) {
	isolateConfig(t)
	rows := testutils.BuildRawCSV(3, 400)
	shuffled := append([][]string{rows[0]}, rows[1:]...)
	for i, j := 1, len(shuffled)-1; i < j; i, j = i+1, j-1 {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	f := testutils.WriteCSVFile(t, "test_csvcmp_*.csv", shuffled)
	stdout, _, err := runCmd(t, "", "order", f, "--column", "id", "--run-size", "512", "--no-progress")
	require.NoError(t, err)
	assert.Equal(t, testutils.CSVString(t, rows), stdout)

	// sorted output satisfies compare's precondition
	sorted := testutils.WriteCSVFile(t, "test_csvcmp_*.csv", testutils.ParseCSV(t, stdout))
	_, _, err = runCmd(t, "", "compare", sorted, sorted, "-m", "id", "--assume-sorted")
	require.NoError(t, err)
}
