package document

import (
	"fmt"
	"strings"
	"sync"
)

// MemoryBuffer implements Buffer over an in-memory line slice. It also
// accepts LSP-style range changes so an open editor document can be kept in
// sync incrementally.
type MemoryBuffer struct {
	lines  []string
	cursor Position
	mu     sync.RWMutex
}

// NewMemoryBuffer creates a buffer from full document content.
func NewMemoryBuffer(content string) *MemoryBuffer {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return &MemoryBuffer{lines: strings.Split(content, "\n")}
}

func (b *MemoryBuffer) Lines() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	lines := make([]string, len(b.lines))
	copy(lines, b.lines)
	return lines
}

func (b *MemoryBuffer) Line(row int) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if row < 0 || row >= len(b.lines) {
		return "", false
	}
	return b.lines[row], true
}

func (b *MemoryBuffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines)
}

func (b *MemoryBuffer) SetLine(row int, text string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if row < 0 || row >= len(b.lines) {
		return false
	}
	b.lines[row] = text
	return true
}

// ReplaceSpan replaces the half-open byte span [startCol, endCol) on row
// with text. Column bounds are clamped to the line.
func (b *MemoryBuffer) ReplaceSpan(row, startCol, endCol int, text string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if row < 0 || row >= len(b.lines) {
		return false
	}
	line := b.lines[row]
	startCol = clamp(startCol, 0, len(line))
	endCol = clamp(endCol, startCol, len(line))
	b.lines[row] = line[:startCol] + text + line[endCol:]
	return true
}

func (b *MemoryBuffer) RemoveLine(row int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if row < 0 || row >= len(b.lines) {
		return false
	}
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
	if len(b.lines) == 0 {
		b.lines = []string{""}
	}
	if b.cursor.Row > row {
		b.cursor.Row--
	} else if b.cursor.Row == row {
		b.cursor.Col = 0
	}
	return true
}

func (b *MemoryBuffer) AppendLines(lines []string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = append(b.lines, lines...)
}

func (b *MemoryBuffer) Cursor() Position {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.cursor
}

func (b *MemoryBuffer) SetCursor(pos Position) {
	b.mu.Lock()
	defer b.mu.Unlock()

	pos.Row = clamp(pos.Row, 0, len(b.lines)-1)
	pos.Col = clamp(pos.Col, 0, len(b.lines[pos.Row]))
	b.cursor = pos
}

// Content returns the full document text.
func (b *MemoryBuffer) Content() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return strings.Join(b.lines, "\n")
}

// ApplyChanges applies a sequence of document changes in order. Range
// changes may span multiple lines; a change with a nil range replaces the
// whole document.
func (b *MemoryBuffer) ApplyChanges(changes []Change) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, change := range changes {
		if change.Range == nil {
			text := strings.ReplaceAll(change.NewText, "\r\n", "\n")
			b.lines = strings.Split(text, "\n")
			continue
		}
		if err := b.applyRangeChange(*change.Range, change.NewText); err != nil {
			return err
		}
	}
	return nil
}

func (b *MemoryBuffer) applyRangeChange(r Range, newText string) error {
	if r.End.Row < r.Start.Row ||
		(r.End.Row == r.Start.Row && r.End.Col < r.Start.Col) {
		return fmt.Errorf("invalid change range: end %v before start %v", r.End, r.Start)
	}

	startRow := clamp(r.Start.Row, 0, len(b.lines)-1)
	endRow := clamp(r.End.Row, 0, len(b.lines)-1)
	startCol := clamp(r.Start.Col, 0, len(b.lines[startRow]))
	endCol := clamp(r.End.Col, 0, len(b.lines[endRow]))

	prefix := b.lines[startRow][:startCol]
	suffix := b.lines[endRow][endCol:]

	newText = strings.ReplaceAll(newText, "\r\n", "\n")
	inserted := strings.Split(newText, "\n")
	inserted[0] = prefix + inserted[0]
	inserted[len(inserted)-1] += suffix

	replaced := make([]string, 0, len(b.lines)-(endRow-startRow+1)+len(inserted))
	replaced = append(replaced, b.lines[:startRow]...)
	replaced = append(replaced, inserted...)
	replaced = append(replaced, b.lines[endRow+1:]...)
	b.lines = replaced

	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
