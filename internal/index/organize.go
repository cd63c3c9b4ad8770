package index

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"footman/internal/document"
	"footman/internal/footnote"
)

// OrganizeFile runs the organize pass over a file on disk, writing the
// result back only when the pass changed something. Reports whether the
// file was rewritten.
func OrganizeFile(path string) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	buf := document.NewMemoryBuffer(string(content))
	eng := footnote.NewEngine(buf, nil)
	eng.Organize()

	updated := buf.Content()
	if updated == strings.ReplaceAll(string(content), "\r\n", "\n") {
		return false, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("failed to stat file %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(updated), info.Mode()); err != nil {
		return false, fmt.Errorf("failed to write file %s: %w", path, err)
	}

	return true, nil
}

// OrganizeAll organizes every given file with bounded parallelism and then
// refreshes the index for the files that changed. Returns the number of
// rewritten files.
func (indexer *Indexer) OrganizeAll(ctx context.Context, paths []string) (int, error) {
	if len(paths) == 0 {
		paths = indexer.FindPaths()
	}

	changed := make(chan string, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(indexer.workers)

	for _, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rewritten, err := OrganizeFile(path)
			if err != nil {
				return err
			}
			if rewritten {
				changed <- path
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	close(changed)

	count := 0
	for path := range changed {
		count++
		if err := indexer.IndexFile(path); err != nil {
			return count, err
		}
	}

	return count, nil
}
