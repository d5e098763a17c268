package main

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store records per-score scan results in a SQLite database so repeated
// scans of a corpus can be compared over time.
type Store struct {
	db *sql.DB
}

func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return store, nil
}

func (store *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS scans (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		path TEXT NOT NULL,
		scanned_at DATETIME NOT NULL,
		size INTEGER NOT NULL,
		marks INTEGER NOT NULL,
		warnings INTEGER NOT NULL,
		error TEXT
	);

	CREATE TABLE IF NOT EXISTS mark_counts (
		scan_id INTEGER NOT NULL,
		kind TEXT NOT NULL,
		count INTEGER NOT NULL,
		FOREIGN KEY (scan_id) REFERENCES scans(id)
	);

	CREATE INDEX IF NOT EXISTS idx_scans_path ON scans(path);
	CREATE INDEX IF NOT EXISTS idx_mark_counts_scan ON mark_counts(scan_id);
	`
	_, err := store.db.Exec(schema)
	return err
}

// RecordScan writes one score's results and its per-kind counts.
func (store *Store) RecordScan(result ScoreResult) error {
	errText := ""
	if result.Err != nil {
		errText = result.Err.Error()
	}
	inserted, err := store.db.Exec(
		`INSERT INTO scans (path, scanned_at, size, marks, warnings, error)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		result.Path, time.Now().UTC(), result.Size, len(result.Marks),
		len(result.Warnings), errText)
	if err != nil {
		return fmt.Errorf("insert scan: %w", err)
	}
	scanID, err := inserted.LastInsertId()
	if err != nil {
		return err
	}
	kindCounts := make(map[string]int, len(result.Marks))
	for _, mark := range result.Marks {
		kindCounts[mark.Kind().String()]++
	}
	for kind, count := range kindCounts {
		if _, err := store.db.Exec(
			`INSERT INTO mark_counts (scan_id, kind, count) VALUES (?, ?, ?)`,
			scanID, kind, count); err != nil {
			return fmt.Errorf("insert mark count: %w", err)
		}
	}
	return nil
}

func (store *Store) Close() error {
	return store.db.Close()
}
