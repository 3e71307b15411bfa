package schemabuilder

import (
	"fmt"
	"reflect"

	"go.appointy.com/gqlcore/graphql"
)

// Schema is the entry point for building a graphql.Registry by reflection:
// register objects, input objects, enums, and interfaces against Go types,
// then call Build to lower all of it into a Registry.
type Schema struct {
	sb *schemaBuilder

	query        *Object
	mutation     *Object
	subscription *Object
}

// NewSchema creates a new Schema.
func NewSchema() *Schema {
	return &Schema{sb: newSchemaBuilder()}
}

// Query returns the root query object, creating it on first call.
func (s *Schema) Query() *Object {
	if s.query == nil {
		s.query = &Object{Name: "Query"}
	}
	return s.query
}

// Mutation returns the root mutation object, creating it on first call.
func (s *Schema) Mutation() *Object {
	if s.mutation == nil {
		s.mutation = &Object{Name: "Mutation"}
	}
	return s.mutation
}

// Subscription returns the root subscription object, creating it on first call.
func (s *Schema) Subscription() *Object {
	if s.subscription == nil {
		s.subscription = &Object{Name: "Subscription"}
	}
	return s.subscription
}

// Object registers typ as a GraphQL object type named name. typ should be a
// zero value of the Go struct backing the type; field resolvers are added to
// the returned *Object via FieldFunc.
func (s *Schema) Object(name string, typ interface{}, description ...string) *Object {
	desc := ""
	if len(description) > 0 {
		desc = description[0]
	}
	obj := &Object{Name: name, Type: typ, Description: desc}
	s.sb.objects[reflect.TypeOf(typ)] = obj
	return obj
}

// InputObject registers typ as a GraphQL input object type named name.
func (s *Schema) InputObject(name string, typ interface{}, description ...string) *InputObject {
	desc := ""
	if len(description) > 0 {
		desc = description[0]
	}
	io := &InputObject{Name: name, Type: typ, Description: desc}
	if t := reflect.TypeOf(typ); t != nil && t.Kind() == reflect.Struct {
		io.oneOf = hasOneOfMarkerEmbedded(t)
	}
	s.sb.inputObjects[reflect.TypeOf(typ)] = io
	return io
}

// Interface registers typ as a GraphQL interface type named name. Objects
// declare conformance with Object.Implements.
func (s *Schema) Interface(name string, typ interface{}, description ...string) *InterfaceObj {
	desc := ""
	if len(description) > 0 {
		desc = description[0]
	}
	iface := &InterfaceObj{Name: name, Struct: reflect.TypeOf(typ), Type: typ, Description: desc}
	s.sb.interfaces[reflect.TypeOf(typ)] = iface
	return iface
}

// Directive registers a custom directive definition, in addition to the
// five the server always carries (include/skip/deprecated/specifiedBy/
// oneOf). It is visible immediately: the underlying Registry is created by
// NewSchema, not by Build.
func (s *Schema) Directive(d graphql.MetaDirective) {
	s.sb.registry.AddDirective(d)
}

// EnumValue pairs a GraphQL symbolic name with the Go constant it
// represents. Declaration order in the slice passed to Enum is the order
// the values appear in the registered MetaEnum, and so in SDL and
// introspection output.
type EnumValue struct {
	Symbol string
	Value  interface{}
}

// Enum registers a Go constant's type as a GraphQL enum. val must be any
// value of the enum's underlying type; values pairs each GraphQL symbolic
// name to the Go constant it represents, in declaration order.
func (s *Schema) Enum(val interface{}, values []EnumValue, description ...string) {
	desc := ""
	if len(description) > 0 {
		desc = description[0]
	}
	typ := reflect.TypeOf(val)
	mapping := make(map[string]interface{}, len(values))
	reverse := make(map[interface{}]string, len(values))
	order := make([]string, 0, len(values))
	for _, v := range values {
		mapping[v.Symbol] = v.Value
		reverse[v.Value] = v.Symbol
		order = append(order, v.Symbol)
	}
	s.sb.enumMappings[typ] = &EnumMapping{Map: mapping, ReverseMap: reverse, Order: order, Description: desc}
}

// Build lowers every registration made against s into a graphql.Registry.
func (s *Schema) Build() (*graphql.Registry, error) {
	if s.query != nil {
		if err := s.sb.registerObject(s.query); err != nil {
			return nil, fmt.Errorf("query: %w", err)
		}
		s.sb.registry.QueryType = s.query.Name
	}
	if s.mutation != nil {
		if err := s.sb.registerObject(s.mutation); err != nil {
			return nil, fmt.Errorf("mutation: %w", err)
		}
		s.sb.registry.MutationType = s.mutation.Name
	}
	if s.subscription != nil {
		if err := s.sb.registerObject(s.subscription); err != nil {
			return nil, fmt.Errorf("subscription: %w", err)
		}
		s.sb.registry.SubscriptionType = s.subscription.Name
	}

	for typ, obj := range s.sb.objects {
		if obj == s.query || obj == s.mutation || obj == s.subscription {
			continue
		}
		if err := s.sb.registerObject(obj); err != nil {
			return nil, fmt.Errorf("%s: %w", typ, err)
		}
	}

	for typ, iface := range s.sb.interfaces {
		if err := s.sb.registerInterface(iface); err != nil {
			return nil, fmt.Errorf("%s: %w", typ, err)
		}
	}

	// An interface's conformance set is discovered from its implementers
	// (Object.Implements), not declared on the interface itself, so it can
	// only be filled in after every object has registered.
	for object, ifaceSet := range s.sb.registry.Implements {
		for ifaceName := range ifaceSet {
			t, ok := s.sb.registry.ConcreteTypeByName(ifaceName)
			if !ok {
				return nil, fmt.Errorf("%s implements unregistered interface %s", object, ifaceName)
			}
			iface, ok := t.(*graphql.MetaInterface)
			if !ok {
				return nil, fmt.Errorf("%s implements %s, which is not an interface", object, ifaceName)
			}
			iface.PossibleTypes[object] = struct{}{}
		}
	}

	if s.sb.registry.HasEntities() {
		s.sb.registry.CreateFederationTypes()
	}

	return s.sb.registry, nil
}
