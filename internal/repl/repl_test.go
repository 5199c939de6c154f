package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunEvaluatesEachLine(t *testing.T) {
	rootEnv, err := NewRootEnv(nil)
	require.NoError(t, err)

	in := strings.NewReader("(+ 1 2)\n(def! a 5)\na\n")
	var out bytes.Buffer

	err = Run(rootEnv, in, &out, nil, false)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "3")
	assert.Contains(t, out.String(), "5")
}

func TestRunReportsErrors(t *testing.T) {
	rootEnv, err := NewRootEnv(nil)
	require.NoError(t, err)

	in := strings.NewReader("(undefined-symbol)\n")
	var out bytes.Buffer

	err = Run(rootEnv, in, &out, nil, false)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "ERROR:")
}
