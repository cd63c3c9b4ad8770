package footnote

import (
	"strings"
	"unicode"

	"footman/internal/parser"
)

// AutoReferenceAll inserts a reference after every bare occurrence of a
// word that already carries one elsewhere in the document, reusing the
// existing label. Content definition lines are left alone. Returns the
// number of references inserted.
func (e *Engine) AutoReferenceAll() int {
	e.scan()
	labels := e.referencedWords()
	if len(labels) == 0 {
		return 0
	}

	inserted := 0
	for row, line := range e.buf.Lines() {
		if _, isContent := parser.ContentLabel(line); isContent {
			continue
		}
		newLine, n := autoReferenceLine(line, labels)
		if n > 0 {
			e.buf.SetLine(row, newLine)
			inserted += n
		}
	}
	return inserted
}

// referencedWords maps each word immediately preceding a reference marker
// to that marker's label. The first occurrence of a word wins.
func (e *Engine) referencedWords() map[string]int {
	labels := make(map[string]int)
	for _, r := range e.refs {
		line, ok := e.buf.Line(r.Row)
		if !ok || len(line) < r.StartCol {
			continue
		}

		word := parser.WordBefore(line, r.StartCol)
		if word == "" {
			continue
		}
		if _, seen := labels[word]; !seen {
			labels[word] = r.Label
		}
	}
	return labels
}

// autoReferenceLine appends markers to bare occurrences of referenced
// words on one line, returning the rewritten line and the insert count.
func autoReferenceLine(line string, labels map[string]int) (string, int) {
	var b strings.Builder
	inserted := 0

	i := 0
	for i < len(line) {
		if unicode.IsSpace(rune(line[i])) {
			b.WriteByte(line[i])
			i++
			continue
		}
		end := i
		for end < len(line) && !unicode.IsSpace(rune(line[end])) {
			end++
		}
		token := line[i:end]
		b.WriteString(token)

		if _, already := parser.TrailingRef(token); !already {
			if label, ok := labels[token]; ok {
				b.WriteString(parser.RefText(label))
				inserted++
			}
		}
		i = end
	}

	return b.String(), inserted
}
