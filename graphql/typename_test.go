package graphql_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go.appointy.com/gqlcore/graphql"
)

func TestParseTypeNameRoundTrip(t *testing.T) {
	for _, ref := range []string{"Int", "Int!", "[Int]", "[Int!]", "[Int!]!", "[[Int!]!]!"} {
		parsed := graphql.ParseTypeName(ref)
		require.Equal(t, ref, parsed.String(), "round-trip for %q", ref)
	}
}

func TestParseTypeNameKinds(t *testing.T) {
	require.Equal(t, graphql.KindNamed, graphql.ParseTypeName("User").Kind)
	require.Equal(t, graphql.KindNonNull, graphql.ParseTypeName("User!").Kind)
	require.Equal(t, graphql.KindList, graphql.ParseTypeName("[User]").Kind)
}

func TestConcreteTypeName(t *testing.T) {
	require.Equal(t, "User", graphql.ConcreteTypeName("User"))
	require.Equal(t, "User", graphql.ConcreteTypeName("User!"))
	require.Equal(t, "User", graphql.ConcreteTypeName("[User!]!"))
	require.Equal(t, "User", graphql.ConcreteTypeName("[[User]!]"))
}

func TestIsNonNullAndUnwrap(t *testing.T) {
	require.True(t, graphql.IsNonNull("User!"))
	require.False(t, graphql.IsNonNull("User"))
	require.False(t, graphql.IsNonNull("[User!]"))

	require.Equal(t, "User", graphql.UnwrapNonNull("User!"))
	require.Equal(t, "[User!]", graphql.UnwrapNonNull("[User!]"))
	require.Equal(t, "User", graphql.UnwrapNonNull("User"))
}

func TestIsSubtypeNamed(t *testing.T) {
	require.True(t, graphql.IsSubtype("User", "User"))
	require.False(t, graphql.IsSubtype("User", "Product"))
}

func TestIsSubtypeNonNullNarrowsToNullable(t *testing.T) {
	// A nullable field position accepts a non-null value.
	require.True(t, graphql.IsSubtype("User", "User!"))
	// A non-null field position never accepts a nullable value.
	require.False(t, graphql.IsSubtype("User!", "User"))
	require.True(t, graphql.IsSubtype("User!", "User!"))
}

func TestIsSubtypeList(t *testing.T) {
	require.True(t, graphql.IsSubtype("[User]", "[User!]"))
	require.False(t, graphql.IsSubtype("[User!]", "[User]"))
	require.False(t, graphql.IsSubtype("[User]", "User"))
}

func TestIsSubtypeNeverCrossesListAndNonNull(t *testing.T) {
	require.False(t, graphql.IsSubtype("[User]", "User!"))
	require.False(t, graphql.IsSubtype("User", "[User]"))
}
