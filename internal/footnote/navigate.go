package footnote

import (
	"footman/internal/document"
	"footman/internal/parser"
)

// Next returns the first reference strictly after pos in document order.
// Content definition lines never yield references, so navigation cannot
// land inside the definition list.
func (e *Engine) Next(pos document.Position) (parser.Ref, bool) {
	refs, _ := parser.ScanMarkers(e.buf.Lines())
	for _, r := range refs {
		if r.Row > pos.Row || (r.Row == pos.Row && r.StartCol > pos.Col) {
			return r, true
		}
	}
	return parser.Ref{}, false
}

// Prev returns the last reference strictly before pos in document order.
func (e *Engine) Prev(pos document.Position) (parser.Ref, bool) {
	refs, _ := parser.ScanMarkers(e.buf.Lines())
	for i := len(refs) - 1; i >= 0; i-- {
		r := refs[i]
		if r.Row < pos.Row || (r.Row == pos.Row && r.StartCol < pos.Col) {
			return r, true
		}
	}
	return parser.Ref{}, false
}

// NextFootnote moves the cursor to the next reference. The cursor is left
// untouched when no further reference exists.
func (e *Engine) NextFootnote() bool {
	r, ok := e.Next(e.buf.Cursor())
	if !ok {
		return false
	}
	e.buf.SetCursor(document.Position{Row: r.Row, Col: r.StartCol})
	return true
}

// PrevFootnote moves the cursor to the previous reference.
func (e *Engine) PrevFootnote() bool {
	r, ok := e.Prev(e.buf.Cursor())
	if !ok {
		return false
	}
	e.buf.SetCursor(document.Position{Row: r.Row, Col: r.StartCol})
	return true
}
