package index_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"footman/internal/database"
	"footman/internal/index"
)

type testHelper struct {
	db  *database.SQLiteDB
	dir string
}

func setupTest(t *testing.T) *testHelper {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "footman_index_test_*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}

	db, err := database.NewSQLiteDB(filepath.Join(tmpDir, "index.db"))
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to create test database: %v", err)
	}

	return &testHelper{db: db, dir: tmpDir}
}

func (h *testHelper) cleanup(t *testing.T) {
	t.Helper()
	if err := h.db.Close(); err != nil {
		t.Errorf("Failed to close database: %v", err)
	}
	if err := os.RemoveAll(h.dir); err != nil {
		t.Errorf("Failed to remove test directory: %v", err)
	}
}

func (h *testHelper) writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(h.dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	return path
}

func TestScanFootnotes(t *testing.T) {
	records := index.ScanFootnotes("the turbine[^1] spins\norphan[^9] here\n\n[^1]: def")

	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0].Word != "turbine" || !records[0].HasContent || records[0].Label != 1 {
		t.Errorf("Unexpected first record: %+v", records[0])
	}
	if records[1].Word != "orphan" || records[1].HasContent || records[1].Label != 9 {
		t.Errorf("Unexpected second record: %+v", records[1])
	}
}

func TestIndexFile(t *testing.T) {
	h := setupTest(t)
	defer h.cleanup(t)

	path := h.writeFile(t, "doc.md", "word[^1]\n\n[^1]: def")
	indexer := index.NewIndexer(h.db, h.dir)

	if err := indexer.IndexFile(path); err != nil {
		t.Fatalf("Failed to index file: %v", err)
	}

	footnotes, err := h.db.GetFootnotes(path)
	if err != nil {
		t.Fatalf("Failed to get footnotes: %v", err)
	}
	if len(footnotes) != 1 || footnotes[0].Word != "word" {
		t.Errorf("Unexpected footnotes: %+v", footnotes)
	}

	t.Run("SkipsUnchangedFile", func(t *testing.T) {
		before, err := h.db.GetFile(path)
		if err != nil {
			t.Fatalf("Failed to get file record: %v", err)
		}

		if err := indexer.IndexFile(path); err != nil {
			t.Fatalf("Failed to reindex file: %v", err)
		}

		after, err := h.db.GetFile(path)
		if err != nil {
			t.Fatalf("Failed to get file record: %v", err)
		}
		if after.LastModified != before.LastModified {
			t.Errorf("Unchanged file was reindexed")
		}
	})
}

func TestReindexAndPrune(t *testing.T) {
	h := setupTest(t)
	defer h.cleanup(t)

	a := h.writeFile(t, "a.md", "one[^1]\n\n[^1]: x")
	b := h.writeFile(t, "b.md", "no markers")
	h.writeFile(t, "ignored.txt", "not[^1] indexed")

	indexer := index.NewIndexer(h.db, h.dir)
	if err := indexer.Reindex(context.Background()); err != nil {
		t.Fatalf("Failed to reindex: %v", err)
	}

	files, err := h.db.GetAllFiles()
	if err != nil {
		t.Fatalf("Failed to list files: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("Expected 2 indexed files, got %d", len(files))
	}

	if err := os.Remove(b); err != nil {
		t.Fatalf("Failed to remove test file: %v", err)
	}
	if err := indexer.Prune(); err != nil {
		t.Fatalf("Failed to prune: %v", err)
	}

	files, err = h.db.GetAllFiles()
	if err != nil {
		t.Fatalf("Failed to list files: %v", err)
	}
	if len(files) != 1 || files[0].Path != a {
		t.Errorf("Expected only %s to remain, got %+v", a, files)
	}
}

func TestOrganizeFile(t *testing.T) {
	h := setupTest(t)
	defer h.cleanup(t)

	path := h.writeFile(t, "doc.md", "Hello world[^5].\n\n[^5]: definition")

	rewritten, err := index.OrganizeFile(path)
	if err != nil {
		t.Fatalf("Failed to organize: %v", err)
	}
	if !rewritten {
		t.Fatal("Expected file to be rewritten")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read organized file: %v", err)
	}
	want := "Hello world[^1].\n\n[^1]: definition"
	if string(content) != want {
		t.Errorf("Organized content = %q, want %q", content, want)
	}

	t.Run("NoRewriteWhenCanonical", func(t *testing.T) {
		rewritten, err := index.OrganizeFile(path)
		if err != nil {
			t.Fatalf("Failed to organize: %v", err)
		}
		if rewritten {
			t.Error("Canonical file should not be rewritten")
		}
	})
}

func TestOrganizeAll(t *testing.T) {
	h := setupTest(t)
	defer h.cleanup(t)

	h.writeFile(t, "a.md", "x[^3]\n\n[^3]: three")
	h.writeFile(t, "b.md", "already[^1]\n\n[^1]: fine")

	indexer := index.NewIndexer(h.db, h.dir)
	changed, err := indexer.OrganizeAll(context.Background(), nil)
	if err != nil {
		t.Fatalf("Failed to organize all: %v", err)
	}
	if changed != 1 {
		t.Errorf("Expected 1 changed file, got %d", changed)
	}

	content, err := os.ReadFile(filepath.Join(h.dir, "a.md"))
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(content) != "x[^1]\n\n[^1]: three" {
		t.Errorf("Unexpected organized content: %q", content)
	}
}
