package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunScriptMode(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "script.mal")
	require.NoError(t, os.WriteFile(script, []byte(`(prn (+ 1 2))`), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(wd) }()

	exitCode, err := run([]string{script}, runOpts{})
	require.NoError(t, err)
	assert.Equal(t, 0, exitCode)
}

func TestRunScriptModeBindsArgv(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "argv.mal")
	require.NoError(t, os.WriteFile(script, []byte(`(prn *ARGV*)`), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(wd) }()

	exitCode, err := run([]string{script, "a", "b"}, runOpts{})
	require.NoError(t, err)
	assert.Equal(t, 0, exitCode)
}

func TestRunMissingScriptIsError(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(wd) }()

	exitCode, err := run([]string{filepath.Join(dir, "missing.mal")}, runOpts{})
	require.NoError(t, err)
	assert.Equal(t, 1, exitCode)
}
