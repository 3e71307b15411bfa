package compose_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go.appointy.com/gqlcore/compose"
	"go.appointy.com/gqlcore/graphql"
)

func TestEdgeNameIsNodeTypeNamePlusEdge(t *testing.T) {
	edge := compose.NewEdge[intNode](intNode{v: 1}, "cursor-1")
	require.Equal(t, "IntEdge", edge.TypeName())
	require.Equal(t, "IntEdge!", edge.QualifiedTypeName())
}

func TestEdgeDescribeRegistersNodeAndCursorFields(t *testing.T) {
	r := graphql.NewRegistry()
	edge := compose.NewEdge[intNode](intNode{v: 1}, "cursor-1")

	ref := edge.Describe(r)
	require.Equal(t, "IntEdge!", ref)

	typ, ok := r.ConcreteTypeByName("IntEdge")
	require.True(t, ok)
	obj := typ.(*graphql.MetaObject)

	node, ok := obj.Fields.Get("node")
	require.True(t, ok)
	require.Equal(t, "Int!", node.Type)

	cursor, ok := obj.Fields.Get("cursor")
	require.True(t, ok)
	require.Equal(t, "String!", cursor.Type)

	require.Equal(t, []string{"node", "cursor"}, obj.Fields.Keys())
}

func TestEdgeResolveFieldNodeAndCursor(t *testing.T) {
	edge := compose.NewEdge[intNode](intNode{v: 7}, "cursor-7")

	node, ok := edge.ResolveField("node")
	require.True(t, ok)
	require.Equal(t, intNode{v: 7}, node)

	cursor, ok := edge.ResolveField("cursor")
	require.True(t, ok)
	require.Equal(t, "cursor-7", cursor)

	_, ok = edge.ResolveField("missing")
	require.False(t, ok)
}

// countExtension is an EdgeExtension contributing one extra field, used to
// exercise NewEdgeWithExtensions end to end.
type countExtension struct{ count int }

func (countExtension) TypeName() string                  { return "" }
func (countExtension) QualifiedTypeName() string         { return "" }
func (countExtension) Describe(*graphql.Registry) string { return "" }
func (countExtension) Fields(*graphql.Registry) *graphql.OrderedMap[graphql.MetaField] {
	fields := graphql.NewOrderedMap[graphql.MetaField]()
	fields.Set("count", graphql.MetaField{Name: "count", Type: "Int!", Args: graphql.NewOrderedMap[graphql.MetaInputValue]()})
	return fields
}
func (c countExtension) ResolveField(source interface{}, fieldName string) (interface{}, bool) {
	if fieldName == "count" {
		return c.count, true
	}
	return nil, false
}

func TestEdgeWithExtensionsAddsFieldsAfterNodeCursor(t *testing.T) {
	r := graphql.NewRegistry()
	edge := compose.NewEdgeWithExtensions[intNode](intNode{v: 1}, "cursor-1", countExtension{count: 3})

	edge.Describe(r)
	typ, _ := r.ConcreteTypeByName("IntEdge")
	obj := typ.(*graphql.MetaObject)
	require.Equal(t, []string{"node", "cursor", "count"}, obj.Fields.Keys())

	value, ok := edge.ResolveField("count")
	require.True(t, ok)
	require.Equal(t, 3, value)
}
