package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations are idempotent schema statements, re-run on every open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS literature_chunks (
		id TEXT PRIMARY KEY,
		source TEXT NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		section TEXT NOT NULL DEFAULT '正文',
		content TEXT NOT NULL,
		embedding BLOB,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_literature_chunks_source
		ON literature_chunks (source)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
