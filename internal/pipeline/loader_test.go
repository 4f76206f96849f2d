package pipeline

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryworks/shelflife/internal/store"
)

const testReport = `Acme Distributing Inc.
Inventory Valuation Report
Generated 2026-08-01
Item,Total Revenue,Current OnHand Value
Widget A,"$600",250
Widget B,"$400",100
Total,"$1,000",350
`

func writeReport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeReport(t, testReport)

	result, err := Load(path, 3)
	require.NoError(t, err)

	assert.Equal(t, path, result.Path)
	assert.False(t, result.FromCache)
	assert.Equal(t, 1000.0, result.Table.TotalRevenue)
	assert.Len(t, result.Table.Items, 2)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"), 3)
	assert.Error(t, err)
}

func TestLoadWithCacheHitsOnSecondLoad(t *testing.T) {
	path := writeReport(t, testReport)

	cache, err := store.Open(filepath.Join(t.TempDir(), "snapshots.db"))
	require.NoError(t, err)
	defer func() { _ = cache.Close() }()

	first, err := LoadWithCache(path, 3, cache)
	require.NoError(t, err)
	assert.False(t, first.FromCache)

	second, err := LoadWithCache(path, 3, cache)
	require.NoError(t, err)
	assert.True(t, second.FromCache)
	assert.Equal(t, first.Table, second.Table)
}

func TestLoadWithCacheInvalidatesOnFileChange(t *testing.T) {
	path := writeReport(t, testReport)

	cache, err := store.Open(filepath.Join(t.TempDir(), "snapshots.db"))
	require.NoError(t, err)
	defer func() { _ = cache.Close() }()

	_, err = LoadWithCache(path, 3, cache)
	require.NoError(t, err)

	// Grow the file and push its mtime forward so the snapshot goes stale.
	updated := testReport + `Widget C,"$100",50` + "\n"
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o600))
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	result, err := LoadWithCache(path, 3, cache)
	require.NoError(t, err)
	assert.False(t, result.FromCache)
	assert.Len(t, result.Table.Items, 3)
}

func TestCachePathUnderXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", dir)
	assert.Equal(t, filepath.Join(dir, "shelflife", "snapshots.db"), CachePath())
}
