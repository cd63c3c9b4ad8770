package footnote_test

import (
	"testing"

	"footman/internal/document"
	"footman/internal/parser"

	"github.com/stretchr/testify/require"
)

func TestNextSkipsContentLines(t *testing.T) {
	eng, _ := newEngine(
		"first[^1] marker",
		"[^1]: content body mentions nothing",
		"second[^2] marker",
		"",
		"[^2]: more",
	)

	r, ok := eng.Next(document.Position{Row: 0, Col: 5})
	require.True(t, ok)
	require.Equal(t, parser.Ref{Row: 2, StartCol: 6, EndCol: 10, Label: 2}, r)
}

func TestNextStrictlyAfter(t *testing.T) {
	eng, _ := newEngine("a[^1] b[^2]")

	// Cursor exactly on the first marker's start column: next is the
	// second marker, not the one under the cursor.
	r, ok := eng.Next(document.Position{Row: 0, Col: 1})
	require.True(t, ok)
	require.Equal(t, 2, r.Label)

	_, ok = eng.Next(document.Position{Row: 0, Col: 7})
	require.False(t, ok)
}

func TestPrevStrictlyBefore(t *testing.T) {
	eng, _ := newEngine("a[^1] b[^2]")

	r, ok := eng.Prev(document.Position{Row: 0, Col: 7})
	require.True(t, ok)
	require.Equal(t, 1, r.Label)

	_, ok = eng.Prev(document.Position{Row: 0, Col: 1})
	require.False(t, ok)
}

func TestNextFootnoteMovesCursor(t *testing.T) {
	eng, buf := newEngine(
		"start here",
		"then a marker[^3]",
		"",
		"[^3]: x",
	)
	buf.SetCursor(document.Position{Row: 0, Col: 0})

	require.True(t, eng.NextFootnote())
	require.Equal(t, document.Position{Row: 1, Col: 13}, buf.Cursor())

	// No marker after the last one: the cursor is left untouched.
	require.False(t, eng.NextFootnote())
	require.Equal(t, document.Position{Row: 1, Col: 13}, buf.Cursor())
}

func TestPrevFootnoteMovesCursor(t *testing.T) {
	eng, buf := newEngine(
		"marker[^1] first",
		"cursor ends up down here",
	)
	buf.SetCursor(document.Position{Row: 1, Col: 4})

	require.True(t, eng.PrevFootnote())
	require.Equal(t, document.Position{Row: 0, Col: 6}, buf.Cursor())

	require.False(t, eng.PrevFootnote())
}
