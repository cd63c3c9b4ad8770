package parser

import "unicode"

// WordAt returns the maximal run of non-whitespace characters covering
// col on line, with its half-open byte span. Returns ok=false when the
// cursor sits on whitespace or past the end of the line.
func WordAt(line string, col int) (word string, start, end int, ok bool) {
	if col > len(line) {
		col = len(line)
	}
	// A cursor at the end of a word still counts as being on it.
	if col == len(line) || isSpace(line[col]) {
		if col == 0 || isSpace(line[col-1]) {
			return "", 0, 0, false
		}
		col--
	}

	start = col
	for start > 0 && !isSpace(line[start-1]) {
		start--
	}
	end = col
	for end < len(line) && !isSpace(line[end]) {
		end++
	}

	return line[start:end], start, end, true
}

// WordBefore returns the maximal run of non-whitespace characters ending
// exactly at col. Used to find the word a reference marker is attached to.
func WordBefore(line string, col int) string {
	if col > len(line) {
		col = len(line)
	}
	start := col
	for start > 0 && !isSpace(line[start-1]) {
		start--
	}
	return line[start:col]
}

func isSpace(b byte) bool {
	return unicode.IsSpace(rune(b))
}
