package footnote_test

import (
	"testing"

	"footman/internal/config"
	"footman/internal/document"
	"footman/internal/footnote"

	"github.com/stretchr/testify/require"
)

// newEngineNoAuto disables organize-on-new so tests see the raw insertion.
func newEngineNoAuto(lines ...string) (*footnote.Engine, *document.MemoryBuffer) {
	buf := document.NewMemoryBuffer(joinLines(lines))
	cfg := config.Default()
	cfg.OrganizeOnNew = false
	return footnote.NewEngine(buf, cfg), buf
}

func TestFootnoteMintsNewLabel(t *testing.T) {
	eng, buf := newEngineNoAuto(
		"some foo here",
	)
	buf.SetCursor(document.Position{Row: 0, Col: 6})

	action := eng.Footnote()

	require.Equal(t, footnote.ActionCreated, action)
	require.Equal(t, []string{
		"some foo[^1] here",
		"",
		"[^1]: ",
	}, buf.Lines())
	require.Equal(t, document.Position{Row: 2, Col: 6}, buf.Cursor())
}

func TestFootnoteMintsMaxPlusOne(t *testing.T) {
	eng, buf := newEngineNoAuto(
		"already[^3] marked",
		"target word",
		"",
		"[^3]: three",
	)
	buf.SetCursor(document.Position{Row: 1, Col: 8})

	action := eng.Footnote()

	require.Equal(t, footnote.ActionCreated, action)
	require.Equal(t, "target word[^4]", buf.Lines()[1])
	require.Equal(t, "[^4]: ", buf.Lines()[5])
}

func TestFootnoteJumpsToContent(t *testing.T) {
	eng, buf := newEngineNoAuto(
		"jump from here[^2]",
		"",
		"[^2]: the content",
	)
	buf.SetCursor(document.Position{Row: 0, Col: 15})

	action := eng.Footnote()

	require.Equal(t, footnote.ActionJumpedToContent, action)
	require.Equal(t, document.Position{Row: 2, Col: len("[^2]: the content")}, buf.Cursor())
}

func TestFootnoteDeletesOrphanReference(t *testing.T) {
	eng, buf := newEngineNoAuto(
		"dead marker[^8] here",
	)
	buf.SetCursor(document.Position{Row: 0, Col: 12})

	action := eng.Footnote()

	require.Equal(t, footnote.ActionDeletedOrphanRef, action)
	require.Equal(t, "dead marker here", buf.Lines()[0])
}

func TestFootnoteJumpsBackToReference(t *testing.T) {
	eng, buf := newEngineNoAuto(
		"the reference[^2] lives here",
		"",
		"[^2]: content line",
	)
	buf.SetCursor(document.Position{Row: 2, Col: 4})

	action := eng.Footnote()

	require.Equal(t, footnote.ActionJumpedToReference, action)
	require.Equal(t, document.Position{Row: 0, Col: 13}, buf.Cursor())
}

func TestFootnoteDeletesOrphanContent(t *testing.T) {
	eng, buf := newEngineNoAuto(
		"no reference to it",
		"[^5]: orphaned content",
		"last line",
	)
	buf.SetCursor(document.Position{Row: 1, Col: 0})

	action := eng.Footnote()

	require.Equal(t, footnote.ActionDeletedOrphanContent, action)
	require.Equal(t, []string{
		"no reference to it",
		"last line",
	}, buf.Lines())
}

func TestFootnoteReusesLabelForRepeatedWord(t *testing.T) {
	eng, buf := newEngineNoAuto(
		"turbine[^1] spins",
		"the turbine again",
		"",
		"[^1]: a turbine",
	)
	buf.SetCursor(document.Position{Row: 1, Col: 5})

	action := eng.Footnote()

	require.Equal(t, footnote.ActionReusedLabel, action)
	require.Equal(t, "the turbine[^1] again", buf.Lines()[1])
	// No second content stub is created.
	require.Equal(t, 4, buf.LineCount())
	require.Equal(t, document.Position{Row: 1, Col: 15}, buf.Cursor())
}

func TestFootnoteOrganizeOnNew(t *testing.T) {
	buf := document.NewMemoryBuffer(joinLines([]string{
		"late[^9] word",
		"",
		"[^9]: nine",
	}))
	cfg := config.Default()
	cfg.OrganizeOnNew = true
	eng := footnote.NewEngine(buf, cfg)
	buf.SetCursor(document.Position{Row: 0, Col: 10})

	action := eng.Footnote()

	require.Equal(t, footnote.ActionCreated, action)
	// Organize ran right after the insert: [^9] became [^1] and the new
	// [^10] became [^2], with content lines following their labels.
	require.Equal(t, []string{
		"late[^1] word[^2]",
		"",
		"[^1]: nine",
		"",
		"[^2]: ",
	}, buf.Lines())
}
