package footnote

import (
	"sort"

	"footman/internal/document"
)

// Organize renumbers references into first-occurrence order, deletes
// references whose label has no content definition, and reorders content
// lines to match the new numbering. Running it a second time makes no
// further changes.
func (e *Engine) Organize() {
	e.scan()
	e.renumber()
	// Labels changed width and tombstones left gaps; rebuild coordinates
	// before touching line order.
	e.scan()
	e.sortContents()
}

// resolveOrphan reports whether label has no content definition. An
// orphaned label's references are all deleted from the document; a label
// with content is left untouched.
func (e *Engine) resolveOrphan(label int) bool {
	if _, ok := e.contentFor(label); ok {
		return false
	}
	for i := range e.refs {
		if !e.deleted[i] && e.refs[i].Label == label {
			e.removeRef(i)
		}
	}
	return true
}

// renumber walks the reference list in document order, assigning counter
// values 1,2,... to each distinct label on first encounter. Assignment is
// a true label swap so any marker already carrying the counter value keeps
// a resolvable identity at every intermediate step.
func (e *Engine) renumber() {
	counter := 1
	for i := range e.refs {
		if e.deleted[i] {
			continue
		}
		label := e.refs[i].Label
		if label < counter {
			// Already assigned on an earlier first occurrence.
			continue
		}
		if e.resolveOrphan(label) {
			continue
		}
		if label != counter {
			e.swapLabels(label, counter)
		}
		counter++
	}
}

// swapLabels rewrites every marker carrying a to carry b and vice versa,
// in document order so same-row offset shifts stay valid.
func (e *Engine) swapLabels(a, b int) {
	target := make(map[int]int)
	for i := range e.refs {
		if e.deleted[i] {
			continue
		}
		switch e.refs[i].Label {
		case a:
			target[i] = b
		case b:
			target[i] = a
		}
	}

	idxs := make([]int, 0, len(target))
	for i := range target {
		idxs = append(idxs, i)
	}
	sort.Ints(idxs)
	for _, i := range idxs {
		e.rewriteRef(i, target[i])
	}

	for ci := range e.contents {
		switch e.contents[ci].Label {
		case a:
			e.rewriteContent(ci, b)
		case b:
			e.rewriteContent(ci, a)
		}
	}
}

// sortContents swaps content line texts until line order follows ascending
// label order. The cursor follows its content when the line it sits on is
// moved.
func (e *Engine) sortContents() {
	for pos := range e.contents {
		want := pos + 1
		if e.contents[pos].Label == want {
			continue
		}
		for j := pos + 1; j < len(e.contents); j++ {
			if e.contents[j].Label != want {
				continue
			}
			e.swapContentLines(pos, j)
			break
		}
	}
}

func (e *Engine) swapContentLines(ci, cj int) {
	ri, rj := e.contents[ci].Row, e.contents[cj].Row
	li, iok := e.buf.Line(ri)
	lj, jok := e.buf.Line(rj)
	if !iok || !jok {
		return
	}
	e.buf.SetLine(ri, lj)
	e.buf.SetLine(rj, li)
	e.contents[ci].Label, e.contents[cj].Label = e.contents[cj].Label, e.contents[ci].Label

	cur := e.buf.Cursor()
	if cur.Row == ri {
		e.buf.SetCursor(document.Position{Row: rj, Col: cur.Col})
	} else if cur.Row == rj {
		e.buf.SetCursor(document.Position{Row: ri, Col: cur.Col})
	}
}
