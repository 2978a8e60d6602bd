// SPDX-License-Identifier: Apache-2.0
// Copyright © 2023 Wrangle Ltd

package utils

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrgl/csvcmp/pkg/conf"
)

func TestCombineExamples(t *testing.T) {
	assert.Equal(t, "  # a\n  csvcmp a\n\n  # b\n  csvcmp b", CombineExamples([]Example{
		{Comment: "a", Line: "csvcmp a"},
		{Comment: "b", Line: "csvcmp b"},
	}))
}

func TestGetDelimiter(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().String("delimiter", "", "")
	c := &conf.Config{CSV: &conf.CSV{Delimiter: ";"}}

	r, err := GetDelimiter(cmd, "delimiter", c)
	require.NoError(t, err)
	assert.Equal(t, ';', r)

	require.NoError(t, cmd.Flags().Set("delimiter", "|"))
	r, err = GetDelimiter(cmd, "delimiter", c)
	require.NoError(t, err)
	assert.Equal(t, '|', r)

	require.NoError(t, cmd.Flags().Set("delimiter", "||"))
	_, err = GetDelimiter(cmd, "delimiter", c)
	assert.Error(t, err)
}

func TestCountFormatter(t *testing.T) {
	cmd := &cobra.Command{}
	AddHumanReadableFlag(cmd.Flags())
	f, err := CountFormatter(cmd)
	require.NoError(t, err)
	assert.Equal(t, "1234567", f(1234567))

	require.NoError(t, cmd.Flags().Set("human-readable", "true"))
	f, err = CountFormatter(cmd)
	require.NoError(t, err)
	assert.Equal(t, "1,234,567", f(1234567))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(bytes.NewBuffer(nil)))
}

func TestLogger(t *testing.T) {
	cmd := &cobra.Command{}
	AddLoggerFlags(cmd.Flags())
	buf := bytes.NewBuffer(nil)
	cmd.SetErr(buf)
	assert.Nil(t, GetLogger(cmd))
	cleanup, err := SetupLogger(cmd)
	require.NoError(t, err)
	assert.Nil(t, cleanup)
	Logger(cmd).Info("hello", "k", "v")
	assert.Contains(t, buf.String(), `"msg"="hello" "k"="v"`)
}
