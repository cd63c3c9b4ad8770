package document

// Position is a location in a document. Rows and columns are 0-indexed;
// columns are byte offsets within the line.
type Position struct {
	Row int
	Col int
}

// Range represents a span between two positions.
type Range struct {
	Start Position
	End   Position
}

// Change represents a change to be applied to a document. A nil Range
// replaces the whole document.
type Change struct {
	Range   *Range
	NewText string
}

// Buffer is the line-addressable view of a text document the footnote
// engine works against. Implementations own the text; callers must re-read
// lines after any mutation because row numbers may have shifted.
type Buffer interface {
	// Read operations
	Lines() []string
	Line(row int) (string, bool)
	LineCount() int

	// Write operations
	SetLine(row int, text string) bool
	ReplaceSpan(row, startCol, endCol int, text string) bool
	RemoveLine(row int) bool
	AppendLines(lines []string)

	// Cursor operations
	Cursor() Position
	SetCursor(pos Position)
}
