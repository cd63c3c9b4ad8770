package lsp

import (
	"footman/internal/config"
	"footman/internal/database"
	"footman/internal/document"
	"footman/internal/index"
	"footman/internal/scheduler"

	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

const lsName = "footman"

var version = "0.1.0"

// Commands exposed through workspace/executeCommand. The editor binds its
// keys to these.
const (
	cmdFootnote = "footman.footnote"
	cmdOrganize = "footman.organize"
	cmdNext     = "footman.next"
	cmdPrev     = "footman.prev"
	cmdAutoRef  = "footman.autoref"
	cmdReindex  = "footman.reindex"
)

// Server is the footnote language server. Open documents are mirrored into
// memory buffers; footnote operations mutate a buffer and the result is
// pushed back to the editor as a workspace edit plus a cursor move.
type Server struct {
	handler *protocol.Handler
	docs    *document.Manager
	cfg     *config.Config
	db      database.Database
	indexer *index.Indexer
	sched   *scheduler.Scheduler
}

// NewServer builds the LSP server with all document-sync and command
// handlers registered.
func NewServer() (*server.Server, error) {
	ls := &Server{
		docs: document.NewManager(),
		cfg:  config.Default(),
	}

	ls.handler = &protocol.Handler{
		Initialize:              ls.initialize,
		Initialized:             ls.initialized,
		Shutdown:                ls.shutdown,
		SetTrace:                ls.setTrace,
		TextDocumentDidOpen:     ls.textDocumentDidOpen,
		TextDocumentDidChange:   ls.textDocumentDidChange,
		TextDocumentDidSave:     ls.textDocumentDidSave,
		TextDocumentDidClose:    ls.textDocumentDidClose,
		WorkspaceExecuteCommand: ls.executeCommand,
	}

	return server.NewServer(ls.handler, lsName, false), nil
}
