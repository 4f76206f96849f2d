// Package store provides a SQLite-backed cache of prepared report tables.
//
// Reopening the same report file skips the parse and clean pass: a snapshot
// is keyed by file path and invalidated when the file's mtime or size
// changes. Only cleaned input rows are cached; computed columns depend on
// the budget and are always recomputed.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // register sqlite driver

	"github.com/quarryworks/shelflife/internal/model"
)

// Cache wraps the snapshot database.
type Cache struct {
	db *sql.DB
}

// Open opens or creates the cache database at the given path.
func Open(dbPath string) (*Cache, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Lookup returns the cached table for filePath if the stored mtime and size
// still match. The second return is false on a miss or stale entry.
func (c *Cache) Lookup(filePath string, mtimeNs, sizeBytes int64) (model.PreparedTable, bool, error) {
	var (
		table      model.PreparedTable
		snapshotID string
		gotMtime   int64
		gotSize    int64
		columnsRaw string
	)

	err := c.db.QueryRow(`SELECT snapshot_id, mtime_ns, size_bytes, summary_item, total_revenue, columns
		FROM snapshots WHERE file_path = ?`, filePath).
		Scan(&snapshotID, &gotMtime, &gotSize, &table.SummaryItem, &table.TotalRevenue, &columnsRaw)
	if err == sql.ErrNoRows {
		return model.PreparedTable{}, false, nil
	}
	if err != nil {
		return model.PreparedTable{}, false, err
	}
	if gotMtime != mtimeNs || gotSize != sizeBytes {
		return model.PreparedTable{}, false, nil
	}

	if err := json.Unmarshal([]byte(columnsRaw), &table.Columns); err != nil {
		return model.PreparedTable{}, false, fmt.Errorf("decoding columns: %w", err)
	}

	rows, err := c.db.Query(`SELECT item, total_revenue, on_hand_value, extra
		FROM snapshot_rows WHERE snapshot_id = ? ORDER BY seq`, snapshotID)
	if err != nil {
		return model.PreparedTable{}, false, err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			row      model.CleanRow
			extraRaw string
		)
		if err := rows.Scan(&row.Item, &row.TotalRevenue, &row.CurrentOnHandValue, &extraRaw); err != nil {
			return model.PreparedTable{}, false, err
		}
		var extra extraColumns
		if err := json.Unmarshal([]byte(extraRaw), &extra); err != nil {
			return model.PreparedTable{}, false, fmt.Errorf("decoding extra columns: %w", err)
		}
		row.Extra = extra.Values
		if row.Extra == nil {
			row.Extra = make(map[string]float64)
		}
		row.ExtraOrder = extra.Order
		table.Items = append(table.Items, row)
	}
	if err := rows.Err(); err != nil {
		return model.PreparedTable{}, false, err
	}

	return table, true, nil
}

// Save stores a prepared table, replacing any previous snapshot for the
// same file path.
func (c *Cache) Save(filePath string, mtimeNs, sizeBytes int64, table model.PreparedTable) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	// Drop the old snapshot for this file; cascade removes its rows.
	if _, err := tx.Exec("DELETE FROM snapshots WHERE file_path = ?", filePath); err != nil {
		return err
	}

	columnsRaw, err := json.Marshal(table.Columns)
	if err != nil {
		return fmt.Errorf("encoding columns: %w", err)
	}

	snapshotID := uuid.NewString()
	_, err = tx.Exec(`INSERT INTO snapshots
		(snapshot_id, file_path, mtime_ns, size_bytes, summary_item, total_revenue, columns, parsed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		snapshotID, filePath, mtimeNs, sizeBytes,
		table.SummaryItem, table.TotalRevenue, string(columnsRaw),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return err
	}

	for seq, row := range table.Items {
		extraRaw, err := json.Marshal(extraColumns{Values: row.Extra, Order: row.ExtraOrder})
		if err != nil {
			return fmt.Errorf("encoding extra columns: %w", err)
		}
		_, err = tx.Exec(`INSERT INTO snapshot_rows
			(snapshot_id, seq, item, total_revenue, on_hand_value, extra)
			VALUES (?, ?, ?, ?, ?, ?)`,
			snapshotID, seq, row.Item, row.TotalRevenue, row.CurrentOnHandValue, string(extraRaw),
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// SnapshotCount returns the number of cached report snapshots.
func (c *Cache) SnapshotCount() (int, error) {
	var count int
	err := c.db.QueryRow("SELECT COUNT(*) FROM snapshots").Scan(&count)
	return count, err
}

// extraColumns is the JSON shape for a row's pass-through columns.
type extraColumns struct {
	Values map[string]float64 `json:"values,omitempty"`
	Order  []string           `json:"order,omitempty"`
}
