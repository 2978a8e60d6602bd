// SPDX-License-Identifier: Apache-2.0
// Copyright © 2021 Wrangle Ltd

package dotno

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrgl/csvcmp/pkg/conf"
)

func intPtr(i int) *int { return &i }

func boolPtr(b bool) *bool { return &b }

func TestGetFieldValue(t *testing.T) {
	c := &conf.Config{
		Compare: &conf.Compare{
			MatchColumns:   []string{"id", "date"},
			MaxDifferences: intPtr(3),
		},
		CSV: &conf.CSV{Delimiter: ";"},
		Profiles: map[string]*conf.Profile{
			"orders": {Files: "orders_*.csv"},
		},
	}
	for i, tc := range []struct {
		prop     string
		expected interface{}
		err      string
	}{
		{prop: "compare.matchColumns", expected: []string{"id", "date"}},
		{prop: "compare.matchColumns.1", expected: "date"},
		{prop: "compare.maxDifferences", expected: intPtr(3)},
		{prop: "csv.delimiter", expected: ";"},
		{prop: "CSV.Delimiter", expected: ";"},
		{prop: "profiles.orders.files", expected: "orders_*.csv"},
		{prop: "compare.checkColumns", err: `field "checkColumns" is not set`},
		{prop: "compare.matchColumns.2", err: `index "2" out of range`},
		{prop: "profiles.customers", err: `key not found: "customers"`},
		{prop: "compare.abc", err: `field "abc" not found`},
		{prop: "csv.delimiter.x", err: `unhandled kind string`},
	} {
		v, err := GetFieldValue(c, tc.prop, false)
		if tc.err != "" {
			assert.EqualError(t, err, tc.err, "case %d", i)
			continue
		}
		require.NoError(t, err, "case %d", i)
		assert.Equal(t, tc.expected, v.Interface(), "case %d", i)
	}
}

func TestGetFieldValueCreateIfZero(t *testing.T) {
	c := &conf.Config{}
	v, err := GetFieldValue(c, "profiles.orders.compare.assumeSorted", true)
	require.NoError(t, err)
	require.NoError(t, SetValue(v, "TRUE"))
	assert.Equal(t, &conf.Config{
		Profiles: map[string]*conf.Profile{
			"orders": {Compare: &conf.Compare{AssumeSorted: boolPtr(true)}},
		},
	}, c)

	v, err = GetFieldValue(c, "compare.maxDifferences", true)
	require.NoError(t, err)
	require.NoError(t, SetValue(v, "25"))
	assert.Equal(t, 25, *c.Compare.MaxDifferences)

	v, err = GetFieldValue(c, "csv.delimiter", true)
	require.NoError(t, err)
	require.NoError(t, SetValue(v, "|"))
	assert.Equal(t, "|", c.CSV.Delimiter)
}

func TestSetValueErrors(t *testing.T) {
	c := &conf.Config{}
	v, err := GetFieldValue(c, "compare.assumeSorted", true)
	require.NoError(t, err)
	assert.EqualError(t, SetValue(v, "yes"), `bad value: "yes", only accept "true" or "false"`)
	assert.Nil(t, c.Compare.AssumeSorted)

	v, err = GetFieldValue(c, "compare.maxDifferences", true)
	require.NoError(t, err)
	assert.EqualError(t, SetValue(v, "ten"), `bad value: "ten", expecting an integer`)

	v, err = GetFieldValue(c, "compare.report", true)
	require.NoError(t, err)
	assert.Error(t, SetValue(v, "each_equal"))

	v, err = GetFieldValue(c, "profiles", true)
	require.NoError(t, err)
	assert.Error(t, SetValue(v, "x"))
}

func TestAppendSlice(t *testing.T) {
	c := &conf.Config{}
	v, err := GetFieldValue(c, "compare.checkColumns", true)
	require.NoError(t, err)
	require.NoError(t, AppendSlice(v, "name"))
	require.NoError(t, AppendSlice(v, "total"))
	assert.Equal(t, []string{"name", "total"}, c.Compare.CheckColumns)

	v, err = GetFieldValue(c, "compare.maxDifferences", true)
	require.NoError(t, err)
	assert.Error(t, AppendSlice(v, "1"))
}

func TestUnsetField(t *testing.T) {
	c := &conf.Config{
		Compare: &conf.Compare{
			MatchColumns:   []string{"id", "date"},
			CheckColumns:   []string{"name"},
			MaxDifferences: intPtr(3),
		},
		Profiles: map[string]*conf.Profile{
			"orders": {Files: "orders_*.csv"},
			"gz":     {Files: "*.gz"},
		},
	}
	assert.EqualError(t, UnsetField(c, "compare.matchColumns", false), "key contains multiple values")
	require.NoError(t, UnsetField(c, "compare.matchColumns", true))
	require.NoError(t, UnsetField(c, "compare.checkColumns", false))
	require.NoError(t, UnsetField(c, "compare.maxDifferences", false))
	require.NoError(t, UnsetField(c, "profiles.gz", false))
	assert.EqualError(t, UnsetField(c, "profiles.abc", false), `key not found: "abc"`)
	assert.Equal(t, &conf.Config{
		Compare: &conf.Compare{},
		Profiles: map[string]*conf.Profile{
			"orders": {Files: "orders_*.csv"},
		},
	}, c)

	require.NoError(t, UnsetField(c, "compare", false))
	assert.Nil(t, c.Compare)
}

func TestGetParentField(t *testing.T) {
	c := &conf.Config{CSV: &conf.CSV{}}
	v, name, err := GetParentField(c, "csv.delimiter")
	require.NoError(t, err)
	assert.Equal(t, "delimiter", name)
	assert.Equal(t, reflect.Ptr, v.Kind())

	v, name, err = GetParentField(c, "csv")
	require.NoError(t, err)
	assert.Equal(t, "csv", name)
	assert.Equal(t, c, v.Interface())
}
