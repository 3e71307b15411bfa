package compose_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go.appointy.com/gqlcore/compose"
	"go.appointy.com/gqlcore/graphql"
)

func TestMergedDescribeFoldsFieldsAPrecedence(t *testing.T) {
	r := graphql.NewRegistry()
	merged := compose.NewMerged("WidgetWithPrice", widget{id: "w1", name: "Widget One"}, gadget{name: "overridden", price: 9})

	ref := merged.Describe(r)
	require.Equal(t, "WidgetWithPrice!", ref)

	typ, ok := r.ConcreteTypeByName("WidgetWithPrice")
	require.True(t, ok)
	obj := typ.(*graphql.MetaObject)

	nameField, ok := obj.Fields.Get("name")
	require.True(t, ok)
	require.Equal(t, "String!", nameField.Type, "A's name field (String!) wins over B's (String)")

	_, ok = obj.Fields.Get("id")
	require.True(t, ok)
	_, ok = obj.Fields.Get("price")
	require.True(t, ok)

	require.Equal(t, []string{"id", "name", "price"}, obj.Fields.Keys(), "A's fields in declared order, then B's remaining fields")
}

func TestMergedResolveFieldTriesAFirstThenB(t *testing.T) {
	merged := compose.NewMerged("WidgetWithPrice", widget{id: "w1", name: "Widget One"}, gadget{name: "overridden", price: 9})

	name, ok := merged.ResolveField(nil, "name")
	require.True(t, ok)
	require.Equal(t, "Widget One", name, "A's ResolveField wins on collision")

	price, ok := merged.ResolveField(nil, "price")
	require.True(t, ok)
	require.Equal(t, 9, price)

	_, ok = merged.ResolveField(nil, "missing")
	require.False(t, ok)
}

func TestMergedChainWithTail(t *testing.T) {
	r := graphql.NewRegistry()
	inner := compose.NewMerged("Inner", gadget{name: "g", price: 1}, compose.Tail{})
	outer := compose.NewMerged("Outer", widget{id: "w1", name: "w"}, inner)

	ref := outer.Describe(r)
	require.Equal(t, "Outer!", ref)

	typ, ok := r.ConcreteTypeByName("Outer")
	require.True(t, ok)
	obj := typ.(*graphql.MetaObject)

	_, ok = obj.Fields.Get("id")
	require.True(t, ok)
	_, ok = obj.Fields.Get("price")
	require.True(t, ok)

	price, ok := outer.ResolveField(nil, "price")
	require.True(t, ok)
	require.Equal(t, 1, price)
}

func TestTailContributesNothing(t *testing.T) {
	var tail compose.Tail
	require.Equal(t, 0, tail.Fields(nil).Len())
	_, ok := tail.ResolveField(nil, "anything")
	require.False(t, ok)
}
