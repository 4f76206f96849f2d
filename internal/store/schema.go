package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS snapshots (
    snapshot_id    TEXT PRIMARY KEY,
    file_path      TEXT NOT NULL UNIQUE,
    mtime_ns       INTEGER NOT NULL,
    size_bytes     INTEGER NOT NULL,
    summary_item   TEXT NOT NULL,
    total_revenue  REAL NOT NULL,
    columns        TEXT NOT NULL,
    parsed_at      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS snapshot_rows (
    snapshot_id    TEXT NOT NULL REFERENCES snapshots(snapshot_id) ON DELETE CASCADE,
    seq            INTEGER NOT NULL,
    item           TEXT NOT NULL,
    total_revenue  REAL NOT NULL,
    on_hand_value  REAL NOT NULL,
    extra          TEXT NOT NULL,
    PRIMARY KEY (snapshot_id, seq)
);
`
