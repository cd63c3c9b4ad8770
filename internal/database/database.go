package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Database is the footnote index store.
type Database interface {
	GetFile(path string) (*FileRecord, error)
	GetAllFiles() ([]FileRecord, error)
	UpsertFile(file *FileRecord) error
	DeleteFile(path string) error

	GetFootnotes(path string) ([]FootnoteRecord, error)
	ReplaceFootnotes(path string, footnotes []FootnoteRecord) error
	Stats() ([]FileStats, error)

	WithTx(fn func(Transaction) error) error
	Clear() error
	Close() error
}

// Transaction exposes the write operations available inside WithTx.
type Transaction interface {
	UpsertFile(file *FileRecord) error
	ReplaceFootnotes(path string, footnotes []FootnoteRecord) error
}

type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB opens (creating if needed) the index database at path.
func NewSQLiteDB(path string) (*SQLiteDB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys and WAL mode
	if _, err := db.Exec(`
        PRAGMA foreign_keys = ON;
        PRAGMA journal_mode = WAL;
    `); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set PRAGMA: %w", err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteDB{db: db}, nil
}

func (db *SQLiteDB) WithTx(fn func(Transaction) error) error {
	tx, err := db.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTransaction, err)
	}
	defer tx.Rollback()

	if err := fn(&SQLiteTx{tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTransaction, err)
	}

	return nil
}

func (db *SQLiteDB) Clear() error {
	_, err := db.db.Exec("DELETE FROM files")
	if err != nil {
		return fmt.Errorf("failed to clear database: %w", err)
	}
	return nil
}

func (db *SQLiteDB) Close() error {
	return db.db.Close()
}
