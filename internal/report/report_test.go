package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderJoinsSectionsAndAppendsFooter(t *testing.T) {
	r := New()
	r.AddSection("\n=== Results for a.txt ===\n")
	r.AddSection("\n=== Results for b.txt ===\n")

	text := r.Render()

	assert.Equal(t, 2, r.Sections())
	assert.True(t, strings.HasPrefix(text, "\n=== Results for a.txt ==="))
	assert.Contains(t, text, "b.txt")
	assert.Contains(t, text, "=== Total elapsed time (seconds): ")
	assert.True(t, strings.HasSuffix(text, "===\n"))
}

func TestRunIDsAreUnique(t *testing.T) {
	a, b := New(), New()
	assert.NotEmpty(t, a.RunID)
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestWriteFileCreatesParentsAndOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "nested", "Results.txt")

	require.NoError(t, WriteFile(path, "first\n"))
	require.NoError(t, WriteFile(path, "second\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(data))
}

func TestRule(t *testing.T) {
	assert.Equal(t, "====", Rule("=", 4))
	assert.Equal(t, "", Rule("-", 0))
}
