package parser

import (
	"fmt"
	"regexp"
	"strconv"
)

// Precompiled patterns for the two marker syntaxes. A reference is
// "[^" digits "]"; a content definition is a line starting with
// "[^" digits "]:".
var (
	refPattern      = regexp.MustCompile(`\[\^(\d+)\]`)
	contentPattern  = regexp.MustCompile(`^\[\^(\d+)\]:`)
	trailingPattern = regexp.MustCompile(`\[\^(\d+)\]$`)
)

// Ref is an inline footnote reference with its location. StartCol and
// EndCol delimit the half-open byte span of the marker text on Row.
type Ref struct {
	Row      int
	StartCol int
	EndCol   int
	Label    int
}

// Text returns the marker text for the reference's current label.
func (r Ref) Text() string {
	return RefText(r.Label)
}

// Content is a footnote content definition line.
type Content struct {
	Row   int
	Label int
}

// RefText renders the reference marker for a label.
func RefText(label int) string {
	return fmt.Sprintf("[^%d]", label)
}

// ContentPrefix renders the content definition prefix for a label.
func ContentPrefix(label int) string {
	return fmt.Sprintf("[^%d]:", label)
}

// ScanMarkers scans the document once and produces the reference and
// content location lists, each in reading order. A line matching the
// content pattern at column 0 is classified exclusively as content; its
// body is not scanned for references.
func ScanMarkers(lines []string) ([]Ref, []Content) {
	var refs []Ref
	var contents []Content

	for row, line := range lines {
		if label, ok := ContentLabel(line); ok {
			contents = append(contents, Content{Row: row, Label: label})
			continue
		}

		for _, m := range refPattern.FindAllStringSubmatchIndex(line, -1) {
			label, err := strconv.Atoi(line[m[2]:m[3]])
			if err != nil {
				continue
			}
			refs = append(refs, Ref{
				Row:      row,
				StartCol: m[0],
				EndCol:   m[1],
				Label:    label,
			})
		}
	}

	return refs, contents
}

// ContentLabel reports whether line is a content definition and returns
// its label.
func ContentLabel(line string) (int, bool) {
	m := contentPattern.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	label, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return label, true
}

// TrailingRef reports whether token ends with a reference marker and
// returns that marker's label. Used for WORD[^N] detection.
func TrailingRef(token string) (int, bool) {
	m := trailingPattern.FindStringSubmatch(token)
	if m == nil {
		return 0, false
	}
	label, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return label, true
}

// MaxLabel returns the highest label carried by any reference or content
// definition, or 0 when the document has none.
func MaxLabel(refs []Ref, contents []Content) int {
	max := 0
	for _, r := range refs {
		if r.Label > max {
			max = r.Label
		}
	}
	for _, c := range contents {
		if c.Label > max {
			max = c.Label
		}
	}
	return max
}
