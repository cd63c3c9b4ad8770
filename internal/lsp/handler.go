package lsp

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"footman/internal/config"
	"footman/internal/database"
	"footman/internal/document"
	"footman/internal/footnote"
	"footman/internal/index"
	"footman/internal/scheduler"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func (ls *Server) initialize(
	context *glsp.Context,
	params *protocol.InitializeParams,
) (any, error) {
	if opts, ok := params.InitializationOptions.(map[string]any); ok {
		ls.cfg = config.FromMap(opts)
	}
	if ls.cfg.DebugPrint {
		log.Printf("configuration: %+v", ls.cfg)
	}

	db, err := database.NewSQLiteDB(ls.cfg.IndexPath)
	if err != nil {
		// The server stays useful without the workspace index.
		log.Printf("failed to open index database: %v", err)
	} else {
		ls.db = db
		root := rootDir(params)
		ls.indexer = index.NewIndexer(db, root)
		ls.sched = scheduler.NewScheduler(32)
		ls.sched.Run()
	}

	capabilities := ls.handler.CreateServerCapabilities()
	syncKind := protocol.TextDocumentSyncKindIncremental
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: &protocol.True,
		Change:    &syncKind,
		Save:      &protocol.SaveOptions{IncludeText: &protocol.True},
	}
	capabilities.ExecuteCommandProvider = &protocol.ExecuteCommandOptions{
		Commands: []string{
			cmdFootnote, cmdOrganize, cmdNext, cmdPrev, cmdAutoRef, cmdReindex,
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &version,
		},
	}, nil
}

func (ls *Server) initialized(
	context *glsp.Context,
	params *protocol.InitializedParams,
) error {
	log.Println("Server initialized")
	if ls.sched != nil && ls.indexer != nil {
		go ls.sched.SchedulePeriodic(5*time.Minute, ls.reindexTask())
	}
	return nil
}

func (ls *Server) shutdown(context *glsp.Context) error {
	log.Println("Server shutting down")
	if ls.sched != nil {
		ls.sched.Stop()
	}
	if ls.db != nil {
		if err := ls.db.Close(); err != nil {
			log.Printf("failed to close index database: %v", err)
		}
	}
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (ls *Server) setTrace(context *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(
	context *glsp.Context,
	params *protocol.DidOpenTextDocumentParams,
) error {
	uri := string(params.TextDocument.URI)
	if _, err := ls.docs.Open(uri, params.TextDocument.Text); err != nil {
		return fmt.Errorf("failed to open document: %w", err)
	}

	ls.publishDiagnostics(context, uri)
	return nil
}

func (ls *Server) textDocumentDidChange(
	context *glsp.Context,
	params *protocol.DidChangeTextDocumentParams,
) error {
	uri := string(params.TextDocument.URI)
	buf, ok := ls.docs.Get(uri)
	if !ok {
		return fmt.Errorf("document not open: %s", uri)
	}

	for _, change := range params.ContentChanges {
		switch contentChange := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			if err := buf.ApplyChanges([]document.Change{
				{NewText: contentChange.Text},
			}); err != nil {
				return fmt.Errorf("failed to apply whole change: %w", err)
			}

		case protocol.TextDocumentContentChangeEvent:
			if contentChange.Range == nil {
				continue
			}
			if err := buf.ApplyChanges([]document.Change{
				{
					Range:   rangeFromProtocol(*contentChange.Range),
					NewText: contentChange.Text,
				},
			}); err != nil {
				return fmt.Errorf("failed to apply change: %w", err)
			}
		}
	}

	ls.publishDiagnostics(context, uri)
	return nil
}

func (ls *Server) textDocumentDidSave(
	context *glsp.Context,
	params *protocol.DidSaveTextDocumentParams,
) error {
	uri := string(params.TextDocument.URI)
	buf, ok := ls.docs.Get(uri)
	if !ok {
		return nil
	}

	if ls.cfg.OrganizeOnSave {
		ls.runCommand(context, uri, buf, func(eng *footnote.Engine) { eng.Organize() })
	}

	ls.commitStats(uri, buf)
	return nil
}

func (ls *Server) textDocumentDidClose(
	context *glsp.Context,
	params *protocol.DidCloseTextDocumentParams,
) error {
	uri := string(params.TextDocument.URI)
	if err := ls.docs.Close(uri); err != nil {
		return err
	}

	// Clear diagnostics for the closed document.
	context.Notify("textDocument/publishDiagnostics",
		protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentUri(uri),
			Diagnostics: []protocol.Diagnostic{},
		})
	return nil
}

// commitStats queues a low-priority index commit for an open document.
func (ls *Server) commitStats(uri string, buf *document.MemoryBuffer) {
	if ls.sched == nil || ls.indexer == nil {
		return
	}

	path := uriToPath(uri)
	if path == "" || filepath.Ext(path) != ".md" {
		return
	}

	footnotes := index.ScanFootnotes(buf.Content())
	task := scheduler.Task{
		Name: "commit " + path,
		Execute: func() error {
			return ls.indexer.Touch(path, footnotes)
		},
	}
	if !ls.sched.TrySchedule(task) && ls.cfg.DebugPrint {
		log.Printf("index commit for %s dropped, queue full", path)
	}
}
