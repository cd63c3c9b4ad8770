package database

import (
	"database/sql"
	"fmt"
)

type SQLiteTx struct {
	tx *sql.Tx
}

func (tx *SQLiteTx) UpsertFile(file *FileRecord) error {
	_, err := tx.tx.Exec(`
        INSERT INTO files (path, checksum, last_modified)
        VALUES (?, ?, ?)
        ON CONFLICT(path) DO UPDATE SET
            checksum = excluded.checksum,
            last_modified = excluded.last_modified
    `, file.Path, file.Checksum, file.LastModified)

	if err != nil {
		return fmt.Errorf("failed to upsert file in transaction: %w", err)
	}

	return nil
}

func (tx *SQLiteTx) ReplaceFootnotes(path string, footnotes []FootnoteRecord) error {
	// Delete existing footnotes
	_, err := tx.tx.Exec("DELETE FROM footnotes WHERE path = ?", path)
	if err != nil {
		return fmt.Errorf("failed to delete existing footnotes: %w", err)
	}

	if len(footnotes) == 0 {
		return nil
	}

	stmt, err := tx.tx.Prepare(`
        INSERT INTO footnotes (path, label, row, word, has_content)
        VALUES (?, ?, ?, ?, ?)
    `)
	if err != nil {
		return fmt.Errorf("failed to prepare footnote insert: %w", err)
	}
	defer stmt.Close()

	for _, fn := range footnotes {
		if _, err := stmt.Exec(path, fn.Label, fn.Row, fn.Word, fn.HasContent); err != nil {
			return fmt.Errorf("failed to insert footnote: %w", err)
		}
	}

	return nil
}
