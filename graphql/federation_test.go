package graphql_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go.appointy.com/gqlcore/graphql"
)

func buildQueryRegistry() *graphql.Registry {
	r := graphql.NewRegistry()
	r.QueryType = "Query"
	r.Types.Set("Query", &graphql.MetaObject{Name: "Query", Fields: graphql.NewOrderedMap[graphql.MetaField]()})
	return r
}

func TestHasEntitiesFalseWithoutKeys(t *testing.T) {
	r := buildQueryRegistry()
	r.Types.Set("User", &graphql.MetaObject{Name: "User", Fields: graphql.NewOrderedMap[graphql.MetaField]()})
	require.False(t, r.HasEntities())
}

func TestCreateFederationTypesNoopWithoutEntities(t *testing.T) {
	r := buildQueryRegistry()
	r.CreateFederationTypes()

	_, ok := r.ConcreteTypeByName("_Service")
	require.False(t, ok)
}

func TestCreateFederationTypesWiresServiceAndEntity(t *testing.T) {
	r := buildQueryRegistry()
	r.Types.Set("User", &graphql.MetaObject{Name: "User", Fields: graphql.NewOrderedMap[graphql.MetaField]()})
	r.AddKeys("User", "id")

	require.True(t, r.HasEntities())
	r.CreateFederationTypes()

	_, ok := r.ConcreteTypeByName("_Any")
	require.True(t, ok)

	serviceType, ok := r.ConcreteTypeByName("_Service")
	require.True(t, ok)
	sdl, ok := serviceType.(*graphql.MetaObject).Fields.Get("sdl")
	require.True(t, ok)
	require.Equal(t, "String", sdl.Type)

	entityType, ok := r.ConcreteTypeByName("_Entity")
	require.True(t, ok)
	union, ok := entityType.(*graphql.MetaUnion)
	require.True(t, ok)
	_, isPossible := union.PossibleTypes["User"]
	require.True(t, isPossible)

	root := r.MustQueryRoot()
	serviceField, ok := root.Fields.Get("_service")
	require.True(t, ok)
	require.Equal(t, "_Service!", serviceField.Type)

	entitiesField, ok := root.Fields.Get("_entities")
	require.True(t, ok)
	require.Equal(t, "[_Entity]!", entitiesField.Type)
	representations, ok := entitiesField.Args.Get("representations")
	require.True(t, ok)
	require.Equal(t, "[_Any!]!", representations.Type)
}

func TestLoadKeyManifestAppliesEveryEntry(t *testing.T) {
	r := buildQueryRegistry()
	r.Types.Set("Product", &graphql.MetaObject{Name: "Product", Fields: graphql.NewOrderedMap[graphql.MetaField]()})

	manifest := []byte(`
Product:
  - sku
  - upc
`)
	require.NoError(t, r.LoadKeyManifest(manifest))

	typ, ok := r.ConcreteTypeByName("Product")
	require.True(t, ok)
	require.ElementsMatch(t, []string{"sku", "upc"}, typ.(*graphql.MetaObject).Keys)
}

func TestLoadKeyManifestRejectsInvalidYAML(t *testing.T) {
	r := buildQueryRegistry()
	err := r.LoadKeyManifest([]byte("not: [valid"))
	require.Error(t, err)
}
