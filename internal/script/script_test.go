package script

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExecPassingScript(t *testing.T) {
	prog, err := Parse(`
		pattern "(a|b)*abb";
		assert "abb" matches;
		assert "aababb" matches;
		assert "ab" fails;

		pattern "a*";
		assert "" matches;
		assert "b" fails;
	`)
	require.NoError(t, err)
	require.NoError(t, prog.Exec(&Context{}))
}

func TestExecFailingAssert(t *testing.T) {
	prog, err := Parse(`
		pattern "ab";
		assert "ab" fails;
	`)
	require.NoError(t, err)
	err = prog.Exec(&Context{})
	require.Error(t, err)
	require.Contains(t, err.Error(), `"ab"`)
}

func TestAssertBeforePattern(t *testing.T) {
	prog, err := Parse(`assert "x" matches;`)
	require.NoError(t, err)
	require.Error(t, prog.Exec(&Context{}))
}

func TestMalformedPatternStatement(t *testing.T) {
	prog, err := Parse(`pattern "*";`)
	require.NoError(t, err)
	require.Error(t, prog.Exec(&Context{}))
}

func TestDotStatement(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.dot")
	prog, err := Parse(`
		pattern "a|b";
		dot "` + path + `";
	`)
	require.NoError(t, err)
	require.NoError(t, prog.Exec(&Context{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "digraph G {")
}
