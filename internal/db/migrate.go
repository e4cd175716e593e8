package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE statements are re-run on every open.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// Progress is persisted one JSON document per key so a single corrupt
	// value only resets that field.
	`CREATE TABLE IF NOT EXISTS kv_store (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS journal_entries (
		id         TEXT PRIMARY KEY,
		kind       TEXT NOT NULL
		           CHECK(kind IN ('daily','weekly','sunday')),
		office     TEXT NOT NULL DEFAULT '',
		day        INTEGER NOT NULL CHECK(day BETWEEN 1 AND 120),
		prompt     TEXT NOT NULL DEFAULT '',
		response   TEXT NOT NULL DEFAULT '',
		responses  TEXT,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_journal_created ON journal_entries(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_journal_day ON journal_entries(day)`,
}
