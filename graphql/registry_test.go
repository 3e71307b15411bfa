package graphql_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"go.appointy.com/gqlcore/graphql"
)

func TestCreateNamedIsIdempotent(t *testing.T) {
	r := graphql.NewRegistry()
	calls := 0
	build := func(*graphql.Registry) graphql.MetaType {
		calls++
		return &graphql.MetaObject{Name: "Widget", Fields: graphql.NewOrderedMap[graphql.MetaField]()}
	}

	r.CreateNamed("Widget", build)
	r.CreateNamed("Widget", build)

	require.Equal(t, 1, calls)
	_, ok := r.ConcreteTypeByName("Widget")
	require.True(t, ok)
}

func TestCreateNamedBreaksSelfReferentialCycle(t *testing.T) {
	r := graphql.NewRegistry()
	var build func(*graphql.Registry) graphql.MetaType
	build = func(reg *graphql.Registry) graphql.MetaType {
		// A self-referential field must observe the placeholder, not recurse.
		reg.CreateNamed("Node", build)
		fields := graphql.NewOrderedMap[graphql.MetaField]()
		fields.Set("next", graphql.MetaField{Name: "next", Type: "Node", Args: graphql.NewOrderedMap[graphql.MetaInputValue]()})
		return &graphql.MetaObject{Name: "Node", Fields: fields}
	}

	require.NotPanics(t, func() { r.CreateNamed("Node", build) })

	typ, ok := r.ConcreteTypeByName("Node")
	require.True(t, ok)
	obj, ok := typ.(*graphql.MetaObject)
	require.True(t, ok)
	next, ok := obj.Fields.Get("next")
	if !ok {
		t.Fatalf("cyclic registration left no \"next\" field; registry state:\n%s", spew.Sdump(r))
	}
	require.Equal(t, "Node", next.Type)
}

// fixedNode is a Registrar whose TypeName/QualifiedTypeName are callable on
// the Go zero value, matching CreateType's contract.
type fixedNode struct{}

func (fixedNode) TypeName() string          { return "FixedNode" }
func (fixedNode) QualifiedTypeName() string { return "FixedNode!" }

func TestCreateTypeGeneric(t *testing.T) {
	r := graphql.NewRegistry()
	calls := 0
	ref := graphql.CreateType[fixedNode](r, func(*graphql.Registry) graphql.MetaType {
		calls++
		return &graphql.MetaObject{Name: "FixedNode", Fields: graphql.NewOrderedMap[graphql.MetaField]()}
	})
	graphql.CreateType[fixedNode](r, func(*graphql.Registry) graphql.MetaType {
		calls++
		return &graphql.MetaObject{Name: "FixedNode", Fields: graphql.NewOrderedMap[graphql.MetaField]()}
	})

	require.Equal(t, "FixedNode!", ref)
	require.Equal(t, 1, calls)
}

func TestAddDirectiveInsertsByNameLastWriterWins(t *testing.T) {
	r := graphql.NewRegistry()
	r.AddDirective(graphql.MetaDirective{Name: "auth", Description: "first", Locations: []string{"FIELD_DEFINITION"}})
	r.AddDirective(graphql.MetaDirective{Name: "auth", Description: "second", Locations: []string{"FIELD_DEFINITION"}})

	d, ok := r.Directives["auth"]
	require.True(t, ok)
	require.Equal(t, "second", d.Description, "re-adding a directive by the same name overwrites it")
}

func TestAddImplementsAndQuery(t *testing.T) {
	r := graphql.NewRegistry()
	r.AddImplements("User", "Node")

	require.True(t, r.ImplementsInterface("User", "Node"))
	require.False(t, r.ImplementsInterface("User", "Entity"))
	require.False(t, r.ImplementsInterface("Product", "Node"))
}

func TestAddKeysOnlyAppliesToObjectAndInterface(t *testing.T) {
	r := graphql.NewRegistry()
	r.Types.Set("User", &graphql.MetaObject{Name: "User", Fields: graphql.NewOrderedMap[graphql.MetaField]()})
	r.Types.Set("Node", &graphql.MetaInterface{Name: "Node", Fields: graphql.NewOrderedMap[graphql.MetaField]()})
	r.Types.Set("Status", &graphql.MetaEnum{Name: "Status", Values: graphql.NewOrderedMap[graphql.MetaEnumValue]()})

	r.AddKeys("User", "id")
	r.AddKeys("Node", "id")
	r.AddKeys("Status", "id")
	r.AddKeys("Missing", "id")

	userType, _ := r.ConcreteTypeByName("User")
	require.Equal(t, []string{"id"}, userType.(*graphql.MetaObject).Keys)

	nodeType, _ := r.ConcreteTypeByName("Node")
	require.Equal(t, []string{"id"}, nodeType.(*graphql.MetaInterface).Keys)

	statusType, _ := r.ConcreteTypeByName("Status")
	require.IsType(t, &graphql.MetaEnum{}, statusType)
}

func TestConcreteTypeByNameStripsModifiers(t *testing.T) {
	r := graphql.NewRegistry()
	r.Types.Set("User", &graphql.MetaObject{Name: "User", Fields: graphql.NewOrderedMap[graphql.MetaField]()})

	for _, ref := range []string{"User", "User!", "[User!]!", "[[User]!]"} {
		_, ok := r.ConcreteTypeByName(ref)
		require.Truef(t, ok, "expected %q to resolve to User", ref)
	}

	_, ok := r.ConcreteTypeByName("Missing!")
	require.False(t, ok)
}

func TestMustQueryRootPanicsWithoutQueryType(t *testing.T) {
	r := graphql.NewRegistry()
	require.Panics(t, func() { r.MustQueryRoot() })

	r.QueryType = "Query"
	require.Panics(t, func() { r.MustQueryRoot() }, "query type named but not registered still panics")

	r.Types.Set("Query", &graphql.MetaObject{Name: "Query", Fields: graphql.NewOrderedMap[graphql.MetaField]()})
	require.NotPanics(t, func() { r.MustQueryRoot() })
}

func TestNamesCollectsEveryIdentifier(t *testing.T) {
	r := graphql.NewRegistry()

	fields := graphql.NewOrderedMap[graphql.MetaField]()
	args := graphql.NewOrderedMap[graphql.MetaInputValue]()
	args.Set("limit", graphql.MetaInputValue{Name: "limit", Type: "Int"})
	fields.Set("all", graphql.MetaField{Name: "all", Type: "[User!]!", Args: args})
	r.Types.Set("Query", &graphql.MetaObject{Name: "Query", Fields: fields})

	values := graphql.NewOrderedMap[graphql.MetaEnumValue]()
	values.Set("ADMIN", graphql.MetaEnumValue{Name: "ADMIN"})
	r.Types.Set("Role", &graphql.MetaEnum{Name: "Role", Values: values})

	names := r.Names()
	for _, want := range []string{"Query", "all", "limit", "Role", "ADMIN"} {
		require.Containsf(t, names, want, "expected %q in Names()", want)
	}
}
