// Package footnote implements the location-tracking and renumbering core:
// scanning a document for numbered footnote markers, keeping recorded
// marker coordinates valid through a sequence of in-place edits, removing
// orphans, and rewriting labels into canonical order.
package footnote

import (
	"strings"

	"footman/internal/config"
	"footman/internal/document"
	"footman/internal/parser"
)

// Engine holds one operation's view of the document: the location lists
// from the most recent scan plus a tombstone flag per reference. Location
// lists are ephemeral; every public operation re-scans before acting.
type Engine struct {
	buf document.Buffer
	cfg *config.Config

	refs     []parser.Ref
	contents []parser.Content
	deleted  []bool
}

// NewEngine creates an engine over a buffer. A nil config uses defaults.
func NewEngine(buf document.Buffer, cfg *config.Config) *Engine {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Engine{buf: buf, cfg: cfg}
}

// scan rebuilds the location lists from live document text. Any prior
// mutation may have shifted rows or columns, so callers re-scan between
// logically independent phases.
func (e *Engine) scan() {
	e.refs, e.contents = parser.ScanMarkers(e.buf.Lines())
	e.deleted = make([]bool, len(e.refs))
}

// shiftAfter adds delta to the recorded columns of every reference after
// refs[i] on the same row. The reference list is row-contiguous, so the
// walk stops at the first entry on a different row.
func (e *Engine) shiftAfter(i, delta int) {
	if delta == 0 {
		return
	}
	row := e.refs[i].Row
	for j := i + 1; j < len(e.refs); j++ {
		if e.refs[j].Row != row {
			break
		}
		e.refs[j].StartCol += delta
		e.refs[j].EndCol += delta
	}
}

// rewriteRef replaces refs[i]'s marker text with the marker for label and
// shifts later same-row references by the width change.
func (e *Engine) rewriteRef(i, label int) {
	r := e.refs[i]
	text := parser.RefText(label)
	e.buf.ReplaceSpan(r.Row, r.StartCol, r.EndCol, text)
	delta := len(text) - (r.EndCol - r.StartCol)
	e.refs[i].Label = label
	e.refs[i].EndCol += delta
	e.shiftAfter(i, delta)
}

// removeRef deletes refs[i]'s marker text from the buffer and tombstones
// the entry so iteration indices stay stable.
func (e *Engine) removeRef(i int) {
	r := e.refs[i]
	e.buf.ReplaceSpan(r.Row, r.StartCol, r.EndCol, "")
	e.deleted[i] = true
	e.shiftAfter(i, r.StartCol-r.EndCol)
}

// rewriteContent replaces the label in contents[ci]'s definition prefix.
func (e *Engine) rewriteContent(ci, label int) {
	c := e.contents[ci]
	line, ok := e.buf.Line(c.Row)
	if !ok {
		return
	}
	old := parser.ContentPrefix(c.Label)
	if strings.HasPrefix(line, old) {
		e.buf.SetLine(c.Row, parser.ContentPrefix(label)+line[len(old):])
	}
	e.contents[ci].Label = label
}

// contentFor returns the first content definition carrying label.
func (e *Engine) contentFor(label int) (parser.Content, bool) {
	for _, c := range e.contents {
		if c.Label == label {
			return c, true
		}
	}
	return parser.Content{}, false
}

// refAt returns the index of the live reference whose span covers pos.
func (e *Engine) refAt(pos document.Position) (int, bool) {
	for i, r := range e.refs {
		if e.deleted[i] {
			continue
		}
		if r.Row == pos.Row && pos.Col >= r.StartCol && pos.Col < r.EndCol {
			return i, true
		}
	}
	return 0, false
}
