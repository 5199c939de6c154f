package repl

import (
	"testing"

	"github.com/DogMillionaire/mal/internal/eval"
	"github.com/DogMillionaire/mal/internal/printer"
	"github.com/DogMillionaire/mal/internal/reader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootEnvBootstrapForms(t *testing.T) {
	rootEnv, err := NewRootEnv(nil)
	require.NoError(t, err)

	ast, err := reader.ReadString("(not false)")
	require.NoError(t, err)
	v, err := eval.Eval(ast, rootEnv)
	require.NoError(t, err)
	assert.Equal(t, "true", printer.PrStr(v))

	ast, err = reader.ReadString(`(cond false 1 false 2 :else 3)`)
	require.NoError(t, err)
	v, err = eval.Eval(ast, rootEnv)
	require.NoError(t, err)
	assert.Equal(t, "3", printer.PrStr(v))
}

func TestNewRootEnvBindsArgv(t *testing.T) {
	rootEnv, err := NewRootEnv([]string{"a", "b"})
	require.NoError(t, err)

	ast, err := reader.ReadString("*ARGV*")
	require.NoError(t, err)
	v, err := eval.Eval(ast, rootEnv)
	require.NoError(t, err)
	assert.Equal(t, `("a" "b")`, printer.PrStr(v))
}

func TestHostLanguageIsGo(t *testing.T) {
	rootEnv, err := NewRootEnv(nil)
	require.NoError(t, err)

	ast, err := reader.ReadString("*host-language*")
	require.NoError(t, err)
	v, err := eval.Eval(ast, rootEnv)
	require.NoError(t, err)
	assert.Equal(t, `"go"`, printer.PrStr(v))
}
