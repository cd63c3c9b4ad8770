package cli

import (
	"fmt"

	"footman/internal/config"
	"footman/internal/database"
	"footman/internal/index"

	"github.com/spf13/cobra"
)

// RunOrganize organizes footnotes in files on disk and refreshes the
// workspace index for every file that changed.
func RunOrganize(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	parallel, _ := cmd.Flags().GetInt("parallel")

	db, err := openIndex()
	if err != nil {
		return err
	}
	defer db.Close()

	indexer := index.NewIndexer(db, dir)
	indexer.SetWorkers(parallel)

	changed, err := indexer.OrganizeAll(cmd.Context(), args)
	if err != nil {
		return fmt.Errorf("organize failed: %w", err)
	}

	cmd.Printf("Organized %d file(s)\n", changed)
	return nil
}

// openIndex opens the index database at the configured location.
func openIndex() (*database.SQLiteDB, error) {
	path := indexFlag
	if path == "" {
		path = config.Default().IndexPath
	}

	db, err := database.NewSQLiteDB(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open index at %s: %w", path, err)
	}
	return db, nil
}
