// Package index maintains the workspace footnote index: a sqlite record of
// every footnote reference seen in the indexed documents, used for
// workspace-wide listings. The index only records what the scanner sees;
// it never renumbers on its own.
package index

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"footman/internal/database"
	"footman/internal/parser"
	"footman/internal/utils"
)

const defaultWorkers = 4

// Indexer scans a directory of documents and keeps the database current.
type Indexer struct {
	db      database.Database
	dir     string
	workers int
}

// NewIndexer creates an indexer over dir backed by db.
func NewIndexer(db database.Database, dir string) *Indexer {
	return &Indexer{db: db, dir: dir, workers: defaultWorkers}
}

// SetWorkers bounds the number of files processed in parallel.
func (indexer *Indexer) SetWorkers(n int) {
	if n > 0 {
		indexer.workers = n
	}
}

// FindPaths returns all markdown files in the indexer's directory.
func (indexer *Indexer) FindPaths() []string {
	pattern := filepath.Join(indexer.dir, "*.md")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil
	}
	return matches
}

// Reindex scans every document under the indexer's directory and records
// its footnotes. Files whose checksum is unchanged since the last run are
// skipped.
func (indexer *Indexer) Reindex(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(indexer.workers)

	for _, path := range indexer.FindPaths() {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return indexer.IndexFile(path)
		})
	}

	return g.Wait()
}

// IndexFile records the footnotes of a single document, skipping the work
// when the file content has not changed since the last index run.
func (indexer *Indexer) IndexFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", path, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	checksum := utils.ComputeChecksum(content)

	record, err := indexer.db.GetFile(path)
	if err != nil && err != database.ErrNotFound {
		return fmt.Errorf("failed to check file in db: %w", err)
	}
	if record != nil && bytes.Equal(record.Checksum, checksum) {
		// No changes, skip
		return nil
	}

	footnotes := ScanFootnotes(string(content))

	return indexer.db.WithTx(func(tx database.Transaction) error {
		if err := tx.UpsertFile(&database.FileRecord{
			Path:         path,
			Checksum:     checksum,
			LastModified: info.ModTime().Unix(),
		}); err != nil {
			return fmt.Errorf("failed to upsert file: %w", err)
		}
		return tx.ReplaceFootnotes(path, footnotes)
	})
}

// Prune removes index records for files that no longer exist on disk.
func (indexer *Indexer) Prune() error {
	records, err := indexer.db.GetAllFiles()
	if err != nil {
		return fmt.Errorf("failed to list indexed files: %w", err)
	}

	for _, record := range records {
		if _, err := os.Stat(record.Path); os.IsNotExist(err) {
			if err := indexer.db.DeleteFile(record.Path); err != nil && err != database.ErrNotFound {
				return fmt.Errorf("failed to prune %s: %w", record.Path, err)
			}
		}
	}

	return nil
}

// ScanFootnotes extracts the footnote records for one document's content.
func ScanFootnotes(content string) []database.FootnoteRecord {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	refs, contents := parser.ScanMarkers(lines)

	defined := make(map[int]bool, len(contents))
	for _, c := range contents {
		defined[c.Label] = true
	}

	records := make([]database.FootnoteRecord, 0, len(refs))
	for _, r := range refs {
		records = append(records, database.FootnoteRecord{
			Label:      r.Label,
			Row:        r.Row,
			Word:       parser.WordBefore(lines[r.Row], r.StartCol),
			HasContent: defined[r.Label],
		})
	}
	return records
}

// Touch stamps a file record without scanning, for hosts that already hold
// the parsed footnotes (e.g. an open editor document).
func (indexer *Indexer) Touch(path string, footnotes []database.FootnoteRecord) error {
	return indexer.db.WithTx(func(tx database.Transaction) error {
		if err := tx.UpsertFile(&database.FileRecord{
			Path:         path,
			LastModified: time.Now().Unix(),
		}); err != nil {
			return fmt.Errorf("failed to upsert file: %w", err)
		}
		return tx.ReplaceFootnotes(path, footnotes)
	})
}
