package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryworks/shelflife/internal/model"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "snapshots.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func sampleTable() model.PreparedTable {
	return model.PreparedTable{
		TotalRevenue: 1000,
		SummaryItem:  "Total",
		Columns:      []string{"Item", "TotalRevenue", "CurrentOnHandValue", "QtyOnHand"},
		Items: []model.CleanRow{
			{
				Item:               "Widget A",
				TotalRevenue:       600,
				CurrentOnHandValue: 250,
				Extra:              map[string]float64{"QtyOnHand": 12},
				ExtraOrder:         []string{"QtyOnHand"},
			},
			{
				Item:               "Widget B",
				TotalRevenue:       400,
				CurrentOnHandValue: 100,
				Extra:              map[string]float64{"QtyOnHand": 3},
				ExtraOrder:         []string{"QtyOnHand"},
			},
		},
	}
}

func TestCacheSaveAndLookup(t *testing.T) {
	c := openTestCache(t)

	require.NoError(t, c.Save("/reports/q3.csv", 111, 2048, sampleTable()))

	got, hit, err := c.Lookup("/reports/q3.csv", 111, 2048)
	require.NoError(t, err)
	require.True(t, hit)

	assert.Equal(t, sampleTable(), got)
}

func TestCacheMissOnUnknownPath(t *testing.T) {
	c := openTestCache(t)

	_, hit, err := c.Lookup("/reports/unknown.csv", 1, 1)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCacheStaleOnMtimeChange(t *testing.T) {
	c := openTestCache(t)
	require.NoError(t, c.Save("/reports/q3.csv", 111, 2048, sampleTable()))

	_, hit, err := c.Lookup("/reports/q3.csv", 222, 2048)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCacheStaleOnSizeChange(t *testing.T) {
	c := openTestCache(t)
	require.NoError(t, c.Save("/reports/q3.csv", 111, 2048, sampleTable()))

	_, hit, err := c.Lookup("/reports/q3.csv", 111, 4096)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCacheSaveReplacesSnapshot(t *testing.T) {
	c := openTestCache(t)
	require.NoError(t, c.Save("/reports/q3.csv", 111, 2048, sampleTable()))

	updated := sampleTable()
	updated.TotalRevenue = 5000
	updated.Items = updated.Items[:1]
	require.NoError(t, c.Save("/reports/q3.csv", 222, 4096, updated))

	count, err := c.SnapshotCount()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, hit, err := c.Lookup("/reports/q3.csv", 222, 4096)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, 5000.0, got.TotalRevenue)
	assert.Len(t, got.Items, 1)
}

func TestCacheMultipleFiles(t *testing.T) {
	c := openTestCache(t)
	require.NoError(t, c.Save("/reports/q3.csv", 1, 10, sampleTable()))
	require.NoError(t, c.Save("/reports/q4.csv", 2, 20, sampleTable()))

	count, err := c.SnapshotCount()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	_, hit, err := c.Lookup("/reports/q4.csv", 2, 20)
	require.NoError(t, err)
	assert.True(t, hit)
}

func TestCacheEmptyExtraColumns(t *testing.T) {
	c := openTestCache(t)

	table := model.PreparedTable{
		TotalRevenue: 100,
		SummaryItem:  "Total",
		Columns:      []string{"Item", "TotalRevenue", "CurrentOnHandValue"},
		Items: []model.CleanRow{
			{Item: "Widget A", TotalRevenue: 100, CurrentOnHandValue: 50, Extra: map[string]float64{}},
		},
	}
	require.NoError(t, c.Save("/reports/min.csv", 1, 1, table))

	got, hit, err := c.Lookup("/reports/min.csv", 1, 1)
	require.NoError(t, err)
	require.True(t, hit)
	assert.NotNil(t, got.Items[0].Extra)
	assert.Empty(t, got.Items[0].Extra)
}
