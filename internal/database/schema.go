package database

import (
	"database/sql"
	"fmt"
)

const schemaVersion = 1

func initSchema(db *sql.DB) error {
	// Check schema version
	var version int
	err := db.QueryRow("PRAGMA user_version").Scan(&version)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	if version == schemaVersion {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := createTables(tx); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("failed to update schema version: %w", err)
	}

	return tx.Commit()
}

func createTables(tx *sql.Tx) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS files (
            path TEXT PRIMARY KEY,
            checksum BLOB,
            last_modified INTEGER NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS footnotes (
            path TEXT NOT NULL,
            label INTEGER NOT NULL,
            row INTEGER NOT NULL,
            word TEXT NOT NULL DEFAULT '',
            has_content INTEGER NOT NULL DEFAULT 0,
            FOREIGN KEY (path) REFERENCES files(path) ON DELETE CASCADE
        )`,
		`CREATE INDEX IF NOT EXISTS idx_footnotes_path
            ON footnotes(path)`,
	}

	for _, query := range queries {
		if _, err := tx.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query %q: %w", query, err)
		}
	}

	return nil
}
