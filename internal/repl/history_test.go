package repl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryAppendsLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.txt")
	h, err := OpenHistory(path)
	require.NoError(t, err)

	require.NoError(t, h.Append("(+ 1 2)"))
	require.NoError(t, h.Append("(def! a 1)"))
	require.NoError(t, h.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "(+ 1 2)\n(def! a 1)\n", string(data))
}

func TestHistoryReopenAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.txt")
	h1, err := OpenHistory(path)
	require.NoError(t, err)
	require.NoError(t, h1.Append("first"))
	require.NoError(t, h1.Close())

	h2, err := OpenHistory(path)
	require.NoError(t, err)
	require.NoError(t, h2.Append("second"))
	require.NoError(t, h2.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
}
