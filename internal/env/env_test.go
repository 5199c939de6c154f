package env

import (
	"testing"

	"github.com/DogMillionaire/mal/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestGetWalksChainToNearestBinding(t *testing.T) {
	root, err := NewRoot(nil, nil)
	assert.NoError(t, err)
	root.Set("x", types.Int(1))

	child, err := NewWithOuter(nil, nil, root)
	assert.NoError(t, err)
	child.Set("x", types.Int(2))

	v, err := child.Get("x")
	assert.NoError(t, err)
	assert.Equal(t, types.Int(2), v, "Get returns the innermost binding")

	grandchild, err := NewWithOuter(nil, nil, child)
	assert.NoError(t, err)
	v, err = grandchild.Get("x")
	assert.NoError(t, err)
	assert.Equal(t, types.Int(2), v, "unbound frames fall through to outer bindings")
}

func TestSetThenGetFromSameFrame(t *testing.T) {
	root, _ := NewRoot(nil, nil)
	child, _ := NewWithOuter(nil, nil, root)

	child.Set("y", types.Int(10))
	root.Set("y", types.Int(99))

	v, err := child.Get("y")
	assert.NoError(t, err)
	assert.Equal(t, types.Int(10), v, "set in frame F is visible from F regardless of ancestor bindings")

	v, err = root.Get("y")
	assert.NoError(t, err)
	assert.Equal(t, types.Int(99), v, "ancestor frame is unaffected by a child's set")
}

func TestGetMissingSymbolFails(t *testing.T) {
	root, _ := NewRoot(nil, nil)
	_, err := root.Get("nope")
	assert.Error(t, err)
}

func TestVariadicParameterBinding(t *testing.T) {
	e, err := NewRoot(
		[]types.Sym{"a", "&", "rest"},
		[]types.Value{types.Int(1), types.Int(2), types.Int(3)},
	)
	assert.NoError(t, err)

	a, err := e.Get("a")
	assert.NoError(t, err)
	assert.Equal(t, types.Int(1), a)

	rest, err := e.Get("rest")
	assert.NoError(t, err)
	list, ok := rest.(*types.List)
	assert.True(t, ok)
	assert.Equal(t, []types.Value{types.Int(2), types.Int(3)}, list.Items)
}

func TestVariadicParameterBindingNoExtraArgs(t *testing.T) {
	e, err := NewRoot([]types.Sym{"&", "rest"}, []types.Value{})
	assert.NoError(t, err)

	rest, err := e.Get("rest")
	assert.NoError(t, err)
	list, ok := rest.(*types.List)
	assert.True(t, ok)
	assert.Empty(t, list.Items)
}

func TestRootIsMemoisedAcrossGenerations(t *testing.T) {
	root, _ := NewRoot(nil, nil)
	child, _ := NewWithOuter(nil, nil, root)
	grandchild, _ := NewWithOuter(nil, nil, child)

	assert.Same(t, types.Environment(root), grandchild.GetRoot())
	assert.Same(t, types.Environment(root), root.GetRoot())
}
