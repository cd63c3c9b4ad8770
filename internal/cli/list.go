package cli

import (
	"bytes"
	"fmt"

	"footman/internal/index"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// RunList prints per-file footnote and orphan counts from the workspace
// index, reindexing the workspace directory first unless told not to.
func RunList(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	noReindex, _ := cmd.Flags().GetBool("no-reindex")

	db, err := openIndex()
	if err != nil {
		return err
	}
	defer db.Close()

	indexer := index.NewIndexer(db, dir)
	if !noReindex {
		if err := indexer.Prune(); err != nil {
			return fmt.Errorf("prune failed: %w", err)
		}
		if err := indexer.Reindex(cmd.Context()); err != nil {
			return fmt.Errorf("reindex failed: %w", err)
		}
	}

	stats, err := db.Stats()
	if err != nil {
		return fmt.Errorf("failed to read index: %w", err)
	}

	if len(stats) == 0 {
		cmd.Println("No indexed files")
		return nil
	}

	var tableBuffer bytes.Buffer
	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Footnotes", "Orphans"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
	})

	totalFootnotes, totalOrphans := 0, 0
	for _, s := range stats {
		table.Append([]string{s.Path, fmt.Sprintf("%d", s.Footnotes), fmt.Sprintf("%d", s.Orphans)})
		totalFootnotes += s.Footnotes
		totalOrphans += s.Orphans
	}
	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(stats)),
		fmt.Sprintf("%d", totalFootnotes),
		fmt.Sprintf("%d", totalOrphans),
	})

	table.Render()
	cmd.Printf("\n%s", tableBuffer.String())
	return nil
}
