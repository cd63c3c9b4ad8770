package footnote_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAutoReferenceAll(t *testing.T) {
	eng, buf := newEngine(
		"the turbine[^1] spins",
		"a turbine needs oil",
		"turbine blades and a turbine hub",
		"",
		"[^1]: turbine: a rotary engine",
	)

	n := eng.AutoReferenceAll()

	require.Equal(t, 3, n)
	require.Equal(t, []string{
		"the turbine[^1] spins",
		"a turbine[^1] needs oil",
		"turbine[^1] blades and a turbine[^1] hub",
		"",
		"[^1]: turbine: a rotary engine",
	}, buf.Lines())
}

func TestAutoReferenceAllSkipsAlreadyMarked(t *testing.T) {
	eng, buf := newEngine(
		"word[^2] and word[^2]",
		"",
		"[^2]: w",
	)

	require.Equal(t, 0, eng.AutoReferenceAll())
	require.Equal(t, "word[^2] and word[^2]", buf.Lines()[0])
}

func TestAutoReferenceAllExactTokenOnly(t *testing.T) {
	// "turbine," is a different token than "turbine"; whitespace-delimited
	// tokens must match literally.
	eng, buf := newEngine(
		"turbine[^1] runs",
		"stop the turbine, now",
		"",
		"[^1]: t",
	)

	require.Equal(t, 0, eng.AutoReferenceAll())
	require.Equal(t, "stop the turbine, now", buf.Lines()[1])
}

func TestAutoReferenceAllNoReferencedWords(t *testing.T) {
	eng, _ := newEngine("nothing marked here")
	require.Equal(t, 0, eng.AutoReferenceAll())
}
