// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package conf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func boolPtr(b bool) *bool { return &b }

func TestProfileFor(t *testing.T) {
	c := &Config{
		Compare: &Compare{
			MatchColumns:   []string{"id"},
			MaxDifferences: intPtr(20),
		},
		Profiles: map[string]*Profile{
			"b_orders": {
				Files: "orders_*.csv",
				Compare: &Compare{
					MatchColumns: []string{"order_id"},
					CheckColumns: []string{"total"},
				},
			},
			"a_orders_gz": {
				Files: "orders_*.csv.gz",
				Compare: &Compare{
					AssumeSorted: boolPtr(true),
				},
			},
			"empty": {},
		},
	}

	name, cmp, err := c.ProfileFor("/data/orders_2023.csv")
	require.NoError(t, err)
	assert.Equal(t, "b_orders", name)
	assert.Equal(t, &Compare{
		MatchColumns:   []string{"order_id"},
		CheckColumns:   []string{"total"},
		MaxDifferences: intPtr(20),
	}, cmp)

	name, cmp, err = c.ProfileFor("orders_2023.csv.gz")
	require.NoError(t, err)
	assert.Equal(t, "a_orders_gz", name)
	assert.Equal(t, boolPtr(true), cmp.AssumeSorted)
	assert.Equal(t, []string{"id"}, cmp.MatchColumns)
	assert.Equal(t, intPtr(20), cmp.MaxDifferences)

	name, cmp, err = c.ProfileFor("customers.csv")
	require.NoError(t, err)
	assert.Equal(t, "", name)
	assert.Equal(t, c.Compare, cmp)
	assert.NotSame(t, c.Compare, cmp)

	c.Profiles["0_bad"] = &Profile{Files: "[a-"}
	_, _, err = c.ProfileFor("x.csv")
	assert.Error(t, err)
}

func TestCompareDefaults(t *testing.T) {
	var c *Compare
	assert.Equal(t, &Compare{}, c.Merge(nil))
	zero := &Compare{MaxDifferences: intPtr(0)}
	assert.Equal(t, intPtr(0), zero.Merge(&Compare{}).MaxDifferences)
}

func TestDelimiter(t *testing.T) {
	c := &Config{}
	r, err := c.Delimiter()
	require.NoError(t, err)
	assert.Equal(t, rune(0), r)

	c.CSV = &CSV{Delimiter: ";"}
	r, err = c.Delimiter()
	require.NoError(t, err)
	assert.Equal(t, ';', r)

	c.CSV.Delimiter = "\t"
	r, err = c.Delimiter()
	require.NoError(t, err)
	assert.Equal(t, '\t', r)

	c.CSV.Delimiter = ";;"
	_, err = c.Delimiter()
	assert.Error(t, err)
}
