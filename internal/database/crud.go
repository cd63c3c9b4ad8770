package database

import (
	"database/sql"
	"fmt"
)

func (db *SQLiteDB) GetFile(path string) (*FileRecord, error) {
	var record FileRecord
	err := db.db.QueryRow(
		"SELECT path, checksum, last_modified FROM files WHERE path = ?",
		path,
	).Scan(&record.Path, &record.Checksum, &record.LastModified)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to get file: %w", err)
	}

	return &record, nil
}

func (db *SQLiteDB) GetAllFiles() ([]FileRecord, error) {
	rows, err := db.db.Query("SELECT path, checksum, last_modified FROM files ORDER BY path")
	if err != nil {
		return nil, fmt.Errorf("failed to query files: %w", err)
	}
	defer rows.Close()

	var records []FileRecord
	for rows.Next() {
		var record FileRecord
		if err := rows.Scan(&record.Path, &record.Checksum, &record.LastModified); err != nil {
			return nil, fmt.Errorf("failed to scan file record: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

func (db *SQLiteDB) UpsertFile(file *FileRecord) error {
	_, err := db.db.Exec(`
        INSERT INTO files (path, checksum, last_modified)
        VALUES (?, ?, ?)
        ON CONFLICT(path) DO UPDATE SET
            checksum = excluded.checksum,
            last_modified = excluded.last_modified
    `, file.Path, file.Checksum, file.LastModified)

	if err != nil {
		return fmt.Errorf("failed to upsert file: %w", err)
	}

	return nil
}

func (db *SQLiteDB) DeleteFile(path string) error {
	result, err := db.db.Exec("DELETE FROM files WHERE path = ?", path)
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (db *SQLiteDB) GetFootnotes(path string) ([]FootnoteRecord, error) {
	rows, err := db.db.Query(`
        SELECT path, label, row, word, has_content
        FROM footnotes
        WHERE path = ?
        ORDER BY row, label
    `, path)
	if err != nil {
		return nil, fmt.Errorf("failed to query footnotes: %w", err)
	}
	defer rows.Close()

	var records []FootnoteRecord
	for rows.Next() {
		var record FootnoteRecord
		if err := rows.Scan(
			&record.Path, &record.Label, &record.Row, &record.Word, &record.HasContent,
		); err != nil {
			return nil, fmt.Errorf("failed to scan footnote record: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// ReplaceFootnotes swaps the recorded footnotes for path in one transaction.
func (db *SQLiteDB) ReplaceFootnotes(path string, footnotes []FootnoteRecord) error {
	return db.WithTx(func(tx Transaction) error {
		return tx.ReplaceFootnotes(path, footnotes)
	})
}

// Stats aggregates per-file footnote and orphan counts over the whole index.
func (db *SQLiteDB) Stats() ([]FileStats, error) {
	rows, err := db.db.Query(`
        SELECT f.path,
               COUNT(n.path),
               COALESCE(SUM(CASE WHEN n.has_content = 0 THEN 1 ELSE 0 END), 0)
        FROM files f
        LEFT JOIN footnotes n ON n.path = f.path
        GROUP BY f.path
        ORDER BY f.path
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query stats: %w", err)
	}
	defer rows.Close()

	var stats []FileStats
	for rows.Next() {
		var s FileStats
		if err := rows.Scan(&s.Path, &s.Footnotes, &s.Orphans); err != nil {
			return nil, fmt.Errorf("failed to scan stats: %w", err)
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}
