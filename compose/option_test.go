package compose_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go.appointy.com/gqlcore/compose"
	"go.appointy.com/gqlcore/graphql"
)

func TestOptionQualifiedTypeNameIsNullable(t *testing.T) {
	opt := compose.Some(intNode{v: 1})
	require.Equal(t, "Int", opt.TypeName())
	require.Equal(t, "Int", opt.QualifiedTypeName(), "Option never adds NonNull, even though intNode's own QualifiedTypeName is Int!")
}

func TestOptionResolveSomeAndNone(t *testing.T) {
	some := compose.Some(intNode{v: 42})
	require.Equal(t, intNode{v: 42}, some.Resolve())

	none := compose.None[intNode]()
	require.Nil(t, none.Resolve())
}

func TestOptionDescribeRegistersInnerType(t *testing.T) {
	r := graphql.NewRegistry()
	opt := compose.Some(intNode{v: 1})

	ref := opt.Describe(r)
	require.Equal(t, "Int", ref)

	_, ok := r.ConcreteTypeByName("Int")
	require.True(t, ok)
}

func TestParseOptionNilIsAbsent(t *testing.T) {
	parseInner := func(raw interface{}) (intNode, error) {
		return intNode{v: raw.(int)}, nil
	}

	opt, err := compose.ParseOption[intNode](nil, parseInner)
	require.NoError(t, err)
	require.False(t, opt.Valid)

	opt, err = compose.ParseOption[intNode](7, parseInner)
	require.NoError(t, err)
	require.True(t, opt.Valid)
	require.Equal(t, 7, opt.Value.v)
}
