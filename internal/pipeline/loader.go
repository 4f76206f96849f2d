package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/quarryworks/shelflife/internal/model"
	"github.com/quarryworks/shelflife/internal/source"
	"github.com/quarryworks/shelflife/internal/store"
)

// LoadResult holds a prepared report table plus load metadata.
type LoadResult struct {
	Path      string
	Table     model.PreparedTable
	FromCache bool
}

// CachePath returns the snapshot database location under the XDG cache dir.
func CachePath() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "shelflife", "snapshots.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "shelflife", "snapshots.db")
}

// Load reads and prepares a report without touching the cache.
func Load(path string, skip int) (*LoadResult, error) {
	table, err := source.ReadReport(path, skip)
	if err != nil {
		return nil, err
	}
	return &LoadResult{Path: path, Table: table}, nil
}

// LoadWithCache returns the cached table when the file is unchanged,
// otherwise parses the report and refreshes the snapshot. Cache write
// failures are non-fatal; the parsed table is still returned.
func LoadWithCache(path string, skip int, cache *store.Cache) (*LoadResult, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	mtimeNs := fi.ModTime().UnixNano()
	size := fi.Size()

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	if table, hit, err := cache.Lookup(abs, mtimeNs, size); err == nil && hit {
		return &LoadResult{Path: path, Table: table, FromCache: true}, nil
	}

	result, err := Load(path, skip)
	if err != nil {
		return nil, err
	}

	if err := cache.Save(abs, mtimeNs, size, result.Table); err != nil {
		return result, nil // snapshot write failed; parsed result still good
	}
	return result, nil
}
