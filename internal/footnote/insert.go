package footnote

import (
	"unicode"

	"footman/internal/document"
	"footman/internal/parser"
)

// Action describes what Footnote did for one invocation.
type Action int

const (
	ActionNone Action = iota
	ActionJumpedToContent
	ActionJumpedToReference
	ActionDeletedOrphanRef
	ActionDeletedOrphanContent
	ActionReusedLabel
	ActionCreated
)

// String returns the status message shown to the user for an action.
func (a Action) String() string {
	switch a {
	case ActionJumpedToContent:
		return "Jumped to footnote content"
	case ActionJumpedToReference:
		return "Jumped to footnote reference"
	case ActionDeletedOrphanRef:
		return "Deleted orphan reference"
	case ActionDeletedOrphanContent:
		return "Deleted orphan content"
	case ActionReusedLabel:
		return "Reused existing footnote"
	case ActionCreated:
		return "New footnote created"
	default:
		return ""
	}
}

// Footnote acts on the footnote context at the cursor: jump between a
// reference and its content, delete an orphan, reuse the label of an
// already-referenced word, or mint a new label with an empty content stub.
func (e *Engine) Footnote() Action {
	e.scan()
	cur := e.buf.Cursor()

	// Cursor inside a reference span.
	if i, ok := e.refAt(cur); ok {
		label := e.refs[i].Label
		if c, found := e.contentFor(label); found {
			line, _ := e.buf.Line(c.Row)
			e.buf.SetCursor(document.Position{Row: c.Row, Col: len(line)})
			return ActionJumpedToContent
		}
		e.removeRef(i)
		return ActionDeletedOrphanRef
	}

	// Cursor on a content definition line.
	line, ok := e.buf.Line(cur.Row)
	if !ok {
		return ActionNone
	}
	if label, isContent := parser.ContentLabel(line); isContent {
		for _, r := range e.refs {
			if r.Label == label {
				e.buf.SetCursor(document.Position{Row: r.Row, Col: r.StartCol})
				return ActionJumpedToReference
			}
		}
		e.buf.RemoveLine(cur.Row)
		return ActionDeletedOrphanContent
	}

	// The word under the cursor may already carry a reference elsewhere;
	// reuse that label instead of minting a new one.
	word, wordStart, wordEnd, hasWord := parser.WordAt(line, cur.Col)
	insertAt := cur.Col
	if hasWord {
		insertAt = wordEnd
		if label, found := e.labelForWord(word, cur.Row, wordStart); found {
			text := parser.RefText(label)
			e.buf.ReplaceSpan(cur.Row, insertAt, insertAt, text)
			e.buf.SetCursor(document.Position{Row: cur.Row, Col: insertAt + len(text)})
			return ActionReusedLabel
		}
	}

	// Mint a new label and append an empty content stub.
	next := parser.MaxLabel(e.refs, e.contents) + 1
	marker := parser.RefText(next)
	e.buf.ReplaceSpan(cur.Row, insertAt, insertAt, marker)

	stub := parser.ContentPrefix(next) + " "
	e.buf.AppendLines([]string{"", stub})
	e.buf.SetCursor(document.Position{Row: e.buf.LineCount() - 1, Col: len(stub)})

	if e.cfg.OrganizeOnNew {
		e.Organize()
	}
	return ActionCreated
}

// labelForWord finds a reference whose marker immediately follows another
// occurrence of word. The occurrence at (exceptRow, exceptStart) is the
// word under the cursor itself and does not count.
func (e *Engine) labelForWord(word string, exceptRow, exceptStart int) (int, bool) {
	if word == "" {
		return 0, false
	}
	for _, r := range e.refs {
		start := r.StartCol - len(word)
		if start < 0 {
			continue
		}
		line, ok := e.buf.Line(r.Row)
		if !ok || len(line) < r.StartCol {
			continue
		}
		if line[start:r.StartCol] != word {
			continue
		}
		// The preceding run must be maximal.
		if start > 0 && !unicode.IsSpace(rune(line[start-1])) {
			continue
		}
		if r.Row == exceptRow && start == exceptStart {
			continue
		}
		return r.Label, true
	}
	return 0, false
}
