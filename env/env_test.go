package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisklang/wisk/object"
)

func TestDefineAndGet(t *testing.T) {
	e := New(nil)
	require.NoError(t, e.Define("x", &object.Number{Value: 1}))

	v, ok := e.Get("x")
	require.True(t, ok)
	assert.Equal(t, 1.0, v.(*object.Number).Value)
}

func TestGetMissingReturnsFalse(t *testing.T) {
	e := New(nil)
	_, ok := e.Get("missing")
	assert.False(t, ok)
}

func TestDefineRejectsRedeclarationInSameScope(t *testing.T) {
	e := New(nil)
	require.NoError(t, e.Define("x", &object.Number{Value: 1}))

	err := e.Define("x", &object.Number{Value: 2})
	require.Error(t, err)
	assert.Equal(t, "Variable 'x' already defined", err.Error())

	v, ok := e.Get("x")
	require.True(t, ok)
	assert.Equal(t, 1.0, v.(*object.Number).Value, "the original binding must survive a rejected redefinition")
}

func TestGetWalksOuterChain(t *testing.T) {
	outer := New(nil)
	require.NoError(t, outer.Define("x", &object.Number{Value: 1}))
	inner := New(outer)

	v, ok := inner.Get("x")
	require.True(t, ok)
	assert.Equal(t, 1.0, v.(*object.Number).Value)
}

func TestInnerShadowsOuter(t *testing.T) {
	outer := New(nil)
	require.NoError(t, outer.Define("x", &object.Number{Value: 1}))
	inner := New(outer)
	require.NoError(t, inner.Define("x", &object.Number{Value: 2}))

	v, ok := inner.Get("x")
	require.True(t, ok)
	assert.Equal(t, 2.0, v.(*object.Number).Value)

	outerV, ok := outer.Get("x")
	require.True(t, ok)
	assert.Equal(t, 1.0, outerV.(*object.Number).Value)
}

func TestAssignUpdatesDeclaringScope(t *testing.T) {
	outer := New(nil)
	require.NoError(t, outer.Define("x", &object.Number{Value: 1}))
	inner := New(outer)

	err := inner.Assign("x", &object.Number{Value: 9})
	require.NoError(t, err)

	v, _ := outer.Get("x")
	assert.Equal(t, 9.0, v.(*object.Number).Value)

	_, definedLocally := inner.Get("x")
	assert.True(t, definedLocally, "Get should still see it via the chain")
}

func TestAssignUndefinedReturnsError(t *testing.T) {
	e := New(nil)
	err := e.Assign("missing", &object.Number{Value: 1})
	assert.Error(t, err)
}
