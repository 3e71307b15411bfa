package users_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"go.appointy.com/gqlcore/example/users"
	"go.appointy.com/gqlcore/graphql"
)

func TestBuildRegistry(t *testing.T) {
	registry, err := users.BuildRegistry()
	require.NoError(t, err)
	require.NotNil(t, registry)

	require.Equal(t, "Query", registry.QueryType)
	require.Equal(t, "Mutation", registry.MutationType)
	require.Equal(t, "Subscription", registry.SubscriptionType)

	for _, name := range []string{
		"User", "Role", "DateTime",
		"CreateUserInput", "IdentifierInput", "UserInput", "CreateUserByContactInput", "ContactByInput",
		"__Schema", "__Type", "__Field", "__InputValue", "__EnumValue", "__Directive",
	} {
		_, ok := registry.ConcreteTypeByName(name)
		require.Truef(t, ok, "expected %s to be registered", name)
	}
}

func TestUserObjectDescriptions(t *testing.T) {
	registry, err := users.BuildRegistry()
	require.NoError(t, err)

	typ, ok := registry.ConcreteTypeByName("User")
	require.True(t, ok)
	obj, ok := typ.(*graphql.MetaObject)
	require.True(t, ok)
	require.NotEmpty(t, obj.Description)

	idField, ok := obj.Fields.Get("id")
	require.True(t, ok)
	require.NotEmpty(t, idField.Description)
	require.Equal(t, "ID!", idField.Type)
}

func TestDateTimeScalarSpecifiedBy(t *testing.T) {
	registry, err := users.BuildRegistry()
	require.NoError(t, err)

	typ, ok := registry.ConcreteTypeByName("DateTime")
	require.True(t, ok)
	scalar, ok := typ.(*graphql.MetaScalar)
	require.True(t, ok)
	require.Equal(t, "https://tools.ietf.org/html/rfc3339", scalar.SpecifiedByURL)
}

func TestIdentifierInputIsOneOf(t *testing.T) {
	registry, err := users.BuildRegistry()
	require.NoError(t, err)

	typ, ok := registry.ConcreteTypeByName("IdentifierInput")
	require.True(t, ok)
	input, ok := typ.(*graphql.MetaInputObject)
	require.True(t, ok)
	require.True(t, input.OneOf)
}

func TestQueryResolvers(t *testing.T) {
	registry, err := users.BuildRegistry()
	require.NoError(t, err)

	root := registry.MustQueryRoot()
	ctx := context.Background()

	allUsersField, ok := root.Fields.Get("allUsers")
	require.True(t, ok)
	result, err := allUsersField.Resolve(ctx, nil, nil, nil)
	require.NoError(t, err)
	all, ok := result.([]*users.User)
	require.True(t, ok)
	require.Len(t, all, 1)
	require.Equal(t, "u1", all[0].ID.Value)

	meField, ok := root.Fields.Get("me")
	require.True(t, ok)
	result, err = meField.Resolve(ctx, nil, nil, nil)
	require.NoError(t, err)
	me, ok := result.(*users.User)
	require.True(t, ok)
	require.Equal(t, "John Doe", me.Name)
}

func TestCreateUserMutation(t *testing.T) {
	registry, err := users.BuildRegistry()
	require.NoError(t, err)

	mutationType, ok := registry.ConcreteTypeByName("Mutation")
	require.True(t, ok)
	mutation, ok := mutationType.(*graphql.MetaObject)
	require.True(t, ok)

	createUser, ok := mutation.Fields.Get("createUser")
	require.True(t, ok)
	require.Equal(t, "User", createUser.Type)

	createUserByContact, ok := mutation.Fields.Get("createUserByContact")
	require.True(t, ok)
	_, ok = createUserByContact.Args.Get("input")
	require.True(t, ok)
}

func TestUserDeclaresFederationKey(t *testing.T) {
	registry, err := users.BuildRegistry()
	require.NoError(t, err)

	typ, ok := registry.ConcreteTypeByName("User")
	require.True(t, ok)
	obj, ok := typ.(*graphql.MetaObject)
	require.True(t, ok)
	require.Contains(t, obj.Keys, "id")
	require.True(t, registry.HasEntities())

	_, ok = registry.ConcreteTypeByName("_Entity")
	require.True(t, ok)
	_, ok = registry.ConcreteTypeByName("_Service")
	require.True(t, ok)
}

func TestUsersConnection(t *testing.T) {
	registry, err := users.BuildRegistry()
	require.NoError(t, err)

	_, ok := registry.ConcreteTypeByName("UserEdge")
	require.True(t, ok)

	root := registry.MustQueryRoot()
	field, ok := root.Fields.Get("allUsersConnection")
	require.True(t, ok)
	require.Equal(t, "[UserEdge!]!", field.Type)

	result, err := field.Resolve(context.Background(), nil, nil, nil)
	require.NoError(t, err)
	require.Equal(t, 1, reflect.ValueOf(result).Len())
}
