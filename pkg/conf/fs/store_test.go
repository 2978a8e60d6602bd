// SPDX-License-Identifier: Apache-2.0
// Copyright © 2021 Wrangle Ltd

package conffs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrgl/csvcmp/pkg/conf"
	confhelpers "github.com/wrgl/csvcmp/pkg/conf/helpers"
	"github.com/wrgl/csvcmp/pkg/testutils"
)

func intPtr(i int) *int { return &i }

func boolPtr(b bool) *bool { return &b }

func randomConfig() *conf.Config {
	return &conf.Config{
		Compare: &conf.Compare{
			MatchColumns: []string{testutils.BrokenRandomAlphaNumericString(8)},
			CheckColumns: []string{
				testutils.BrokenRandomAlphaNumericString(8),
				testutils.BrokenRandomAlphaNumericString(8),
			},
			MaxDifferences: intPtr(5),
		},
	}
}

func TestOpenSystemConfig(t *testing.T) {
	cleanup := confhelpers.MockSystemConf(t)
	defer cleanup()

	s := NewStore("", SystemSource, "")
	c1 := randomConfig()
	require.NoError(t, s.Save(c1))

	c2, err := s.Open()
	require.NoError(t, err)
	assert.Equal(t, c1, c2)
}

func TestOpenGlobalConfig(t *testing.T) {
	cleanup := confhelpers.MockGlobalConf(t)
	defer cleanup()

	s := NewStore("", GlobalSource, "")
	c1, err := s.Open()
	require.NoError(t, err)
	assert.Equal(t, &conf.Config{}, c1)
	c1.CSV = &conf.CSV{Delimiter: "|"}
	require.NoError(t, s.Save(c1))

	c2, err := s.Open()
	require.NoError(t, err)
	assert.Equal(t, c1, c2)
	fp, err := globalConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(os.Getenv("CSVCMP_CONFIG_HOME"), "config.yaml"), fp)
}

func TestOpenLocalConfig(t *testing.T) {
	rd, err := testutils.TempDir("", "test_csvcmp_config")
	require.NoError(t, err)
	defer os.RemoveAll(rd)

	s := NewStore(rd, LocalSource, "")
	c1, err := s.Open()
	require.NoError(t, err)
	c1.Profiles = map[string]*conf.Profile{
		"orders": {
			Files:   "orders_*.csv",
			Compare: &conf.Compare{AssumeSorted: boolPtr(true)},
		},
	}
	require.NoError(t, s.Save(c1))
	_, err = os.Stat(filepath.Join(rd, LocalFileName))
	require.NoError(t, err)

	c2, err := s.Open()
	require.NoError(t, err)
	assert.Equal(t, c1, c2)
}

func TestOpenFileConfig(t *testing.T) {
	f, err := testutils.TempFile("", "test_csvcmp_config*.yaml")
	require.NoError(t, err)
	require.NoError(t, f.Close())
	defer os.Remove(f.Name())

	s := NewStore("", LocalSource, f.Name())
	c1 := randomConfig()
	require.NoError(t, s.Save(c1))

	c2, err := s.Open()
	require.NoError(t, err)
	assert.Equal(t, c1, c2)
}

func TestOpenInvalidConfig(t *testing.T) {
	f, err := testutils.TempFile("", "test_csvcmp_config*.yaml")
	require.NoError(t, err)
	_, err = f.Write([]byte("compare: [unclosed"))
	require.NoError(t, err)
	require.NoError(t, f.Close())
	defer os.Remove(f.Name())

	_, err = NewStore("", FileSource, f.Name()).Open()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing config file")
}

func TestAggregateConfig(t *testing.T) {
	cleanup := confhelpers.MockSystemConf(t)
	defer cleanup()
	cleanup = confhelpers.MockGlobalConf(t)
	defer cleanup()
	rd, err := testutils.TempDir("", "test_csvcmp_config")
	require.NoError(t, err)
	defer os.RemoveAll(rd)

	require.NoError(t, NewStore(rd, SystemSource, "").Save(&conf.Config{
		Compare: &conf.Compare{
			MaxDifferences: intPtr(100),
			AssumeSorted:   boolPtr(true),
		},
		CSV: &conf.CSV{Delimiter: ";"},
	}))
	require.NoError(t, NewStore(rd, GlobalSource, "").Save(&conf.Config{
		Compare: &conf.Compare{
			MatchColumns: []string{"id"},
			Report:       []string{"each_unequal"},
		},
	}))
	require.NoError(t, NewStore(rd, LocalSource, "").Save(&conf.Config{
		Compare: &conf.Compare{
			MatchColumns: []string{"key"},
			AssumeSorted: boolPtr(false),
		},
		Profiles: map[string]*conf.Profile{
			"gz": {Files: "*.gz"},
		},
	}))

	s := NewStore(rd, AggregateSource, "")
	c, err := s.Open()
	require.NoError(t, err)
	assert.Equal(t, &conf.Config{
		Compare: &conf.Compare{
			MatchColumns:   []string{"key"},
			MaxDifferences: intPtr(100),
			Report:         []string{"each_unequal"},
			AssumeSorted:   boolPtr(false),
		},
		CSV: &conf.CSV{Delimiter: ";"},
		Profiles: map[string]*conf.Profile{
			"gz": {Files: "*.gz"},
		},
	}, c)
	assert.Error(t, s.Save(c))
}
