// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package confhelpers

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wrgl/csvcmp/pkg/testutils"
)

func MockEnv(t *testing.T, key, val string) func() {
	t.Helper()
	orig, ok := os.LookupEnv(key)
	require.NoError(t, os.Setenv(key, val))
	return func() {
		if ok {
			require.NoError(t, os.Setenv(key, orig))
		} else {
			require.NoError(t, os.Unsetenv(key))
		}
	}
}

func mockDirEnv(t *testing.T, key string) func() {
	t.Helper()
	dir, err := testutils.TempDir("", "test_csvcmp_config")
	require.NoError(t, err)
	cleanup := MockEnv(t, key, dir)
	return func() {
		require.NoError(t, os.RemoveAll(dir))
		cleanup()
	}
}

// MockGlobalConf points the global config to an empty temporary directory
func MockGlobalConf(t *testing.T) func() {
	t.Helper()
	return mockDirEnv(t, "CSVCMP_CONFIG_HOME")
}

// MockSystemConf points the system config to an empty temporary directory
func MockSystemConf(t *testing.T) func() {
	t.Helper()
	return mockDirEnv(t, "CSVCMP_SYSTEM_CONFIG_DIR")
}
