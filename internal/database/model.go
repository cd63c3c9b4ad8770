package database

import "errors"

var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidTransaction = errors.New("invalid transaction")
)

// FileRecord is an indexed document.
type FileRecord struct {
	Path         string
	Checksum     []byte
	LastModified int64
}

// FootnoteRecord is one footnote reference observed in a document.
type FootnoteRecord struct {
	Path       string
	Label      int
	Row        int
	Word       string
	HasContent bool
}

// FileStats summarizes the footnote state of one indexed document.
type FileStats struct {
	Path      string
	Footnotes int
	Orphans   int
}
