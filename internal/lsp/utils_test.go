package lsp

import (
	"testing"

	"footman/internal/document"

	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestCommandArgs(t *testing.T) {
	uri, pos, err := commandArgs([]any{"file:///notes/doc.md", float64(3), float64(14)})
	require.NoError(t, err)
	require.Equal(t, "file:///notes/doc.md", uri)
	require.Equal(t, document.Position{Row: 3, Col: 14}, pos)

	_, _, err = commandArgs([]any{"file:///x.md"})
	require.Error(t, err)

	_, _, err = commandArgs([]any{42, float64(0), float64(0)})
	require.Error(t, err)
}

func TestURIToPath(t *testing.T) {
	require.Equal(t, "/notes/doc.md", uriToPath("file:///notes/doc.md"))
	require.Equal(t, "", uriToPath("untitled:Untitled-1"))
}

func TestOrphanDiagnostics(t *testing.T) {
	diagnostics := orphanDiagnostics([]string{
		"good[^1] orphan[^7]",
		"",
		"[^1]: fine",
		"[^9]: unreferenced",
	})

	require.Len(t, diagnostics, 2)
	require.Contains(t, diagnostics[0].Message, "[^7]")
	require.Equal(t, protocol.UInteger(0), diagnostics[0].Range.Start.Line)
	require.Contains(t, diagnostics[1].Message, "[^9]:")
	require.Equal(t, protocol.UInteger(3), diagnostics[1].Range.Start.Line)
}

func TestOrphanDiagnosticsClean(t *testing.T) {
	diagnostics := orphanDiagnostics([]string{"a[^1]", "", "[^1]: ok"})
	require.Empty(t, diagnostics)
}
