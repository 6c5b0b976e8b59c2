package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsonbind-lang/jsonbind/internal/codegen/attr"
	generrors "github.com/jsonbind-lang/jsonbind/internal/codegen/errors"
)

func TestUnionNonNullPreservesOrder(t *testing.T) {
	u := NewUnion("id", []Type{
		NewPrimitive(Integer),
		NewPrimitive(Null),
		NewPrimitive(String),
	})

	nonNull := u.NonNull()
	require.Len(t, nonNull, 2)
	assert.Equal(t, Integer, nonNull[0].Kind())
	assert.Equal(t, String, nonNull[1].Kind())
	assert.True(t, u.HasNull())
}

func TestUnionWithoutNull(t *testing.T) {
	u := NewUnion("value", []Type{
		NewPrimitive(Bool),
		NewPrimitive(String),
	})

	assert.False(t, u.HasNull())
	assert.Len(t, u.NonNull(), 2)
}

func TestNewPrimitiveRejectsCompoundKinds(t *testing.T) {
	for _, kind := range []Kind{Array, Map, Class, Union} {
		assert.Panics(t, func() { NewPrimitive(kind) }, kind.String())
	}
}

func TestNamedInFirstAppearanceOrder(t *testing.T) {
	inner := NewClass("address", []Property{
		{JSONKey: "street", Type: NewPrimitive(String)},
	})
	id := NewUnion("id", []Type{
		NewPrimitive(Integer),
		NewPrimitive(String),
	})
	outer := NewClass("person", []Property{
		{JSONKey: "id", Type: id},
		{JSONKey: "address", Type: inner},
		{JSONKey: "previous", Type: NewArray(inner)},
	})

	named := NamedIn(outer)
	require.Len(t, named, 3)
	assert.Equal(t, "person", named[0].Hint())
	assert.Equal(t, "id", named[1].Hint())
	assert.Equal(t, "address", named[2].Hint())
}

func TestDependencyOrderChildrenFirst(t *testing.T) {
	inner := NewClass("address", []Property{
		{JSONKey: "street", Type: NewPrimitive(String)},
	})
	outer := NewClass("person", []Property{
		{JSONKey: "address", Type: inner},
	})

	order := DependencyOrder(outer)
	require.Len(t, order, 2)
	assert.Equal(t, "address", order[0].Hint())
	assert.Equal(t, "person", order[1].Hint())
}

func TestDependencyOrderBreaksCycles(t *testing.T) {
	node := NewClass("node", nil)
	node.Properties = []Property{
		{JSONKey: "next", Type: node},
	}

	order := DependencyOrder(node)
	require.Len(t, order, 1)
	assert.Equal(t, "node", order[0].Hint())
}

func TestNamedInDeduplicatesSharedNodes(t *testing.T) {
	shared := NewClass("tag", []Property{
		{JSONKey: "label", Type: NewPrimitive(String)},
	})
	a := NewClass("a", []Property{{JSONKey: "tag", Type: shared}})
	b := NewClass("b", []Property{{JSONKey: "tag", Type: shared}})

	named := NamedIn(a, b)
	require.Len(t, named, 3)
	assert.Equal(t, "a", named[0].Hint())
	assert.Equal(t, "tag", named[1].Hint())
	assert.Equal(t, "b", named[2].Hint())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "any", Any.String())
	assert.Equal(t, "union", Union.String())
}

// foreignType implements Type outside the closed variant.
type foreignType struct{}

func (foreignType) Kind() Kind           { return Class }
func (foreignType) Attributes() attr.Bag { return attr.Empty() }

func TestWalkersRejectForeignNodes(t *testing.T) {
	for name, walk := range map[string]func(...Type) []Named{
		"NamedIn":         NamedIn,
		"DependencyOrder": DependencyOrder,
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r)
				genErr, ok := r.(*generrors.GeneratorError)
				require.True(t, ok, "panic value should carry the error code, got %T", r)
				assert.Equal(t, generrors.ErrUnknownTypeKind, genErr.Code)
			}()
			walk(foreignType{})
		})
	}
}
