// Package cli provides the footman command line interface.
package cli

import (
	"github.com/spf13/cobra"
)

var indexFlag string

// NewRootCommand builds the footman command tree.
func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "footman",
		Version: version,
		Short:   "Footnote assistant for plain-text documents",
		Long: `Footman keeps numbered footnote references [^N] and their content
definitions [^N]: consistent while a document is edited: it renumbers
references into first-occurrence order, removes orphans, and reorders
content lines to match.

Run it as an LSP server for live editor integration, or use the batch
commands to organize files on disk and inspect the workspace index.`,
	}

	rootCmd.PersistentFlags().StringVar(&indexFlag, "index", "",
		"path to the sqlite footnote index (default: under the system temp directory)")

	lspCmd := &cobra.Command{
		Use:   "lsp",
		Short: "Run the footnote language server on stdio",
		RunE:  RunLSP,
	}

	organizeCmd := &cobra.Command{
		Use:   "organize [paths...]",
		Short: "Renumber and clean up footnotes in files on disk",
		Long: `Organize runs the renumbering pass over the given markdown files and
writes the result back in place. Without arguments every *.md file in
the workspace directory is processed.`,
		RunE: RunOrganize,
	}
	organizeCmd.Flags().StringP("dir", "d", ".", "workspace directory used when no paths are given")
	organizeCmd.Flags().IntP("parallel", "p", 4, "number of files processed in parallel")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Show per-file footnote counts from the workspace index",
		RunE:  RunList,
	}
	listCmd.Flags().StringP("dir", "d", ".", "workspace directory to reindex before listing")
	listCmd.Flags().Bool("no-reindex", false, "list from the existing index without rescanning")

	rootCmd.AddCommand(lspCmd, organizeCmd, listCmd)
	return rootCmd
}
