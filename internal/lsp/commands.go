package lsp

import (
	"context"
	"fmt"
	"log"

	"footman/internal/document"
	"footman/internal/footnote"
	"footman/internal/scheduler"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func (ls *Server) executeCommand(
	glspContext *glsp.Context,
	params *protocol.ExecuteCommandParams,
) (any, error) {
	if params.Command == cmdReindex {
		return nil, ls.reindex()
	}

	uri, pos, err := commandArgs(params.Arguments)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", params.Command, err)
	}

	buf, ok := ls.docs.Get(uri)
	if !ok {
		return nil, fmt.Errorf("document not open: %s", uri)
	}
	buf.SetCursor(pos)

	var status string
	switch params.Command {
	case cmdFootnote:
		ls.runCommand(glspContext, uri, buf, func(eng *footnote.Engine) {
			status = eng.Footnote().String()
		})
	case cmdOrganize:
		ls.runCommand(glspContext, uri, buf, func(eng *footnote.Engine) {
			eng.Organize()
		})
		status = "Organized footnotes"
	case cmdNext:
		ls.runCommand(glspContext, uri, buf, func(eng *footnote.Engine) {
			eng.NextFootnote()
		})
	case cmdPrev:
		ls.runCommand(glspContext, uri, buf, func(eng *footnote.Engine) {
			eng.PrevFootnote()
		})
	case cmdAutoRef:
		ls.runCommand(glspContext, uri, buf, func(eng *footnote.Engine) {
			n := eng.AutoReferenceAll()
			status = fmt.Sprintf("Inserted %d references", n)
		})
	default:
		return nil, fmt.Errorf("unknown command: %s", params.Command)
	}

	if status != "" {
		glspContext.Notify("window/showMessage", protocol.ShowMessageParams{
			Type:    protocol.MessageTypeInfo,
			Message: status,
		})
	}

	return status, nil
}

// runCommand executes one footnote operation against a document buffer and
// pushes the outcome to the editor: a whole-document edit when the text
// changed, and a cursor move when the cursor changed.
func (ls *Server) runCommand(
	glspContext *glsp.Context,
	uri string,
	buf *document.MemoryBuffer,
	op func(*footnote.Engine),
) {
	beforeText := buf.Content()
	beforeLines := buf.Lines()
	beforeCursor := buf.Cursor()

	op(footnote.NewEngine(buf, ls.cfg))

	if afterText := buf.Content(); afterText != beforeText {
		lastRow := len(beforeLines) - 1
		edit := protocol.TextEdit{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End: protocol.Position{
					Line:      protocol.UInteger(lastRow),
					Character: protocol.UInteger(len(beforeLines[lastRow])),
				},
			},
			NewText: afterText,
		}
		glspContext.Notify("workspace/applyEdit", protocol.ApplyWorkspaceEditParams{
			Edit: protocol.WorkspaceEdit{
				Changes: map[protocol.DocumentUri][]protocol.TextEdit{
					protocol.DocumentUri(uri): {edit},
				},
			},
		})
		ls.publishDiagnostics(glspContext, uri)
	}

	if cursor := buf.Cursor(); cursor != beforeCursor {
		sel := protocol.Range{
			Start: positionToProtocol(cursor),
			End:   positionToProtocol(cursor),
		}
		glspContext.Notify("window/showDocument", protocol.ShowDocumentParams{
			URI:       protocol.URI(uri),
			TakeFocus: &protocol.True,
			Selection: &sel,
		})
	}
}

// reindex rescans the whole workspace directory as a high-priority task.
func (ls *Server) reindex() error {
	if ls.sched == nil || ls.indexer == nil {
		return fmt.Errorf("workspace index unavailable")
	}

	ls.sched.Schedule(ls.reindexTask())
	log.Println("Workspace reindex scheduled")
	return nil
}

// reindexTask prunes deleted files and rescans the workspace directory.
func (ls *Server) reindexTask() scheduler.Task {
	return scheduler.Task{
		Name: "reindex",
		Execute: func() error {
			if err := ls.indexer.Prune(); err != nil {
				return err
			}
			return ls.indexer.Reindex(context.Background())
		},
	}
}
