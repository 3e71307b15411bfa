package compose_test

import (
	"go.appointy.com/gqlcore/graphql"
)

// intNode is a minimal Lifted scalar wrapper used across this package's
// tests, standing in for a hand-registered scalar like Int.
type intNode struct{ v int }

func (intNode) TypeName() string          { return "Int" }
func (intNode) QualifiedTypeName() string { return "Int!" }

func (n intNode) Describe(r *graphql.Registry) string {
	r.CreateNamed("Int", func(*graphql.Registry) graphql.MetaType {
		return &graphql.MetaScalar{Name: "Int", IsValid: func(graphql.Value) bool { return true }}
	})
	return "Int!"
}

// widget and gadget are Mergeable test fixtures: two disjoint-but-overlapping
// field sets, standing in for two partial object sources being merged.
type widget struct {
	id   string
	name string
}

func (widget) TypeName() string          { return "Widget" }
func (widget) QualifiedTypeName() string { return "Widget!" }
func (w widget) Describe(r *graphql.Registry) string {
	name := "Widget"
	r.CreateNamed(name, func(r *graphql.Registry) graphql.MetaType {
		return &graphql.MetaObject{Name: name, Fields: w.Fields(r)}
	})
	return name + "!"
}
func (widget) Fields(*graphql.Registry) *graphql.OrderedMap[graphql.MetaField] {
	fields := graphql.NewOrderedMap[graphql.MetaField]()
	fields.Set("id", graphql.MetaField{Name: "id", Type: "ID!", Args: graphql.NewOrderedMap[graphql.MetaInputValue]()})
	fields.Set("name", graphql.MetaField{Name: "name", Type: "String!", Args: graphql.NewOrderedMap[graphql.MetaInputValue]()})
	return fields
}
func (w widget) ResolveField(source interface{}, fieldName string) (interface{}, bool) {
	switch fieldName {
	case "id":
		return w.id, true
	case "name":
		return w.name, true
	default:
		return nil, false
	}
}

type gadget struct {
	name  string // collides with widget's "name", should lose to A
	price int
}

func (gadget) TypeName() string          { return "Gadget" }
func (gadget) QualifiedTypeName() string { return "Gadget!" }
func (g gadget) Describe(r *graphql.Registry) string {
	name := "Gadget"
	r.CreateNamed(name, func(r *graphql.Registry) graphql.MetaType {
		return &graphql.MetaObject{Name: name, Fields: g.Fields(r)}
	})
	return name + "!"
}
func (gadget) Fields(*graphql.Registry) *graphql.OrderedMap[graphql.MetaField] {
	fields := graphql.NewOrderedMap[graphql.MetaField]()
	fields.Set("name", graphql.MetaField{Name: "name", Type: "String", Args: graphql.NewOrderedMap[graphql.MetaInputValue]()})
	fields.Set("price", graphql.MetaField{Name: "price", Type: "Int!", Args: graphql.NewOrderedMap[graphql.MetaInputValue]()})
	return fields
}
func (g gadget) ResolveField(source interface{}, fieldName string) (interface{}, bool) {
	switch fieldName {
	case "name":
		return g.name, true
	case "price":
		return g.price, true
	default:
		return nil, false
	}
}
