// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package csvcmp

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	confhelpers "github.com/wrgl/csvcmp/pkg/conf/helpers"
	"github.com/wrgl/csvcmp/pkg/errors"
	"github.com/wrgl/csvcmp/pkg/testutils"
)

func rootCmd() *cobra.Command {
	cmd := RootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd
}

// isolateConfig hides config files of the machine running the tests
func isolateConfig(t *testing.T) {
	t.Helper()
	cleanups := []func(){
		confhelpers.MockSystemConf(t),
		confhelpers.MockGlobalConf(t),
	}
	_, cleanup := testutils.ChTempDir(t)
	cleanups = append(cleanups, cleanup)
	t.Cleanup(func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	})
}

func createCSVFile(t *testing.T, content []string) (filePath string) {
	t.Helper()
	file, err := testutils.TempFile("", "test_csvcmp_*.csv")
	require.NoError(t, err)
	defer file.Close()
	t.Cleanup(func() { os.Remove(file.Name()) })
	for _, line := range content {
		_, err := fmt.Fprintln(file, line)
		require.NoError(t, err)
	}
	return file.Name()
}

func assertCmdOutput(t *testing.T, cmd *cobra.Command, output string) {
	t.Helper()
	buf := bytes.NewBufferString("")
	cmd.SetOut(buf)
	err := cmd.Execute()
	assert.Equal(t, output, buf.String())
	require.NoError(t, err)
}

func assertCmdFailed(t *testing.T, cmd *cobra.Command, output string, err error) {
	t.Helper()
	buf := bytes.NewBufferString("")
	cmd.SetOut(buf)
	exErr := cmd.Execute()
	assert.True(t, errors.Contains(exErr, err), "expecting error %v to contain error %v", exErr, err)
	assert.Equal(t, output, buf.String())
}

// runCmd executes args and returns stdout, stderr and the error
func runCmd(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := rootCmd()
	stdout := bytes.NewBufferString("")
	stderr := bytes.NewBufferString("")
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetIn(bytes.NewBufferString(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
