package lsp

import (
	"fmt"
	"strings"

	"footman/internal/document"
	"footman/internal/parser"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// commandArgs extracts [uri, line, character] from executeCommand
// arguments. JSON numbers arrive as float64.
func commandArgs(args []any) (string, document.Position, error) {
	if len(args) < 3 {
		return "", document.Position{}, fmt.Errorf("expected [uri, line, character], got %d arguments", len(args))
	}

	uri, ok := args[0].(string)
	if !ok {
		return "", document.Position{}, fmt.Errorf("uri argument must be a string")
	}
	line, ok := args[1].(float64)
	if !ok {
		return "", document.Position{}, fmt.Errorf("line argument must be a number")
	}
	character, ok := args[2].(float64)
	if !ok {
		return "", document.Position{}, fmt.Errorf("character argument must be a number")
	}

	return uri, document.Position{Row: int(line), Col: int(character)}, nil
}

func rangeFromProtocol(r protocol.Range) *document.Range {
	return &document.Range{
		Start: document.Position{Row: int(r.Start.Line), Col: int(r.Start.Character)},
		End:   document.Position{Row: int(r.End.Line), Col: int(r.End.Character)},
	}
}

func positionToProtocol(pos document.Position) protocol.Position {
	return protocol.Position{
		Line:      protocol.UInteger(pos.Row),
		Character: protocol.UInteger(pos.Col),
	}
}

// uriToPath converts a file:// URI to a filesystem path. Returns "" for
// non-file URIs.
func uriToPath(uri string) string {
	if !strings.HasPrefix(uri, "file://") {
		return ""
	}
	return strings.TrimPrefix(uri, "file://")
}

// rootDir picks the workspace directory from initialize params.
func rootDir(params *protocol.InitializeParams) string {
	if params.RootURI != nil {
		if path := uriToPath(string(*params.RootURI)); path != "" {
			return path
		}
	}
	if params.RootPath != nil {
		return *params.RootPath
	}
	return "."
}

// publishDiagnostics reports every orphan marker in a document as an
// informational diagnostic.
func (ls *Server) publishDiagnostics(context *glsp.Context, uri string) {
	buf, ok := ls.docs.Get(uri)
	if !ok {
		return
	}

	diagnostics := orphanDiagnostics(buf.Lines())
	context.Notify("textDocument/publishDiagnostics", protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentUri(uri),
		Diagnostics: diagnostics,
	})
}

func orphanDiagnostics(lines []string) []protocol.Diagnostic {
	refs, contents := parser.ScanMarkers(lines)

	defined := make(map[int]bool, len(contents))
	for _, c := range contents {
		defined[c.Label] = true
	}
	referenced := make(map[int]bool, len(refs))
	for _, r := range refs {
		referenced[r.Label] = true
	}

	severity := protocol.DiagnosticSeverityInformation
	diagnostics := []protocol.Diagnostic{}

	for _, ref := range refs {
		if defined[ref.Label] {
			continue
		}
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: positionToProtocol(document.Position{Row: ref.Row, Col: ref.StartCol}),
				End:   positionToProtocol(document.Position{Row: ref.Row, Col: ref.EndCol}),
			},
			Severity: &severity,
			Message:  fmt.Sprintf("Orphan footnote reference %s", parser.RefText(ref.Label)),
		})
	}

	for _, c := range contents {
		if referenced[c.Label] {
			continue
		}
		prefix := parser.ContentPrefix(c.Label)
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: positionToProtocol(document.Position{Row: c.Row, Col: 0}),
				End:   positionToProtocol(document.Position{Row: c.Row, Col: len(prefix)}),
			},
			Severity: &severity,
			Message:  fmt.Sprintf("Unreferenced footnote content %s", prefix),
		})
	}

	return diagnostics
}
