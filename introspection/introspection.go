// Package introspection projects a graphql.Registry into the standard
// __schema/__type GraphQL introspection surface, as plain MetaObjects with
// hand-written Resolvers rather than through schemabuilder reflection: the
// mirror types below are never touched by application code, only read back
// out by a query executor, so there is no Go struct worth reflecting over.
package introspection

import (
	"context"
	"fmt"
	"sort"

	"go.appointy.com/gqlcore/graphql"
)

type typeKind string

const (
	kindScalar      typeKind = "SCALAR"
	kindObject      typeKind = "OBJECT"
	kindInterface   typeKind = "INTERFACE"
	kindUnion       typeKind = "UNION"
	kindEnum        typeKind = "ENUM"
	kindInputObject typeKind = "INPUT_OBJECT"
	kindList        typeKind = "LIST"
	kindNonNull     typeKind = "NON_NULL"
)

// typeRef is the __Type mirror: a registry plus an unparsed type reference
// string, resolved lazily field-by-field rather than eagerly walked into a
// tree, since most queries only ever read a handful of its fields.
type typeRef struct {
	registry *graphql.Registry
	ref      string
}

func (t typeRef) parsed() graphql.TypeName {
	return graphql.ParseTypeName(t.ref)
}

func (t typeRef) kind() typeKind {
	p := t.parsed()
	switch p.Kind {
	case graphql.KindNonNull:
		return kindNonNull
	case graphql.KindList:
		return kindList
	}
	concrete, ok := t.registry.ConcreteTypeByName(t.ref)
	if !ok {
		return kindScalar
	}
	switch concrete.(type) {
	case *graphql.MetaObject:
		return kindObject
	case *graphql.MetaInterface:
		return kindInterface
	case *graphql.MetaUnion:
		return kindUnion
	case *graphql.MetaEnum:
		return kindEnum
	case *graphql.MetaInputObject:
		return kindInputObject
	default:
		return kindScalar
	}
}

func (t typeRef) name() string {
	if t.kind() == kindList || t.kind() == kindNonNull {
		return ""
	}
	return graphql.ConcreteTypeName(t.ref)
}

func (t typeRef) description() string {
	concrete, ok := t.registry.ConcreteTypeByName(t.ref)
	if !ok {
		return ""
	}
	switch v := concrete.(type) {
	case *graphql.MetaObject:
		return v.Description
	case *graphql.MetaInterface:
		return v.Description
	case *graphql.MetaUnion:
		return v.Description
	case *graphql.MetaEnum:
		return v.Description
	case *graphql.MetaInputObject:
		return v.Description
	case *graphql.MetaScalar:
		return v.Description
	default:
		return ""
	}
}

// asTypeRef accepts a source that is either a typeRef or a *typeRef:
// ofType and the schema's root type fields hand back *typeRef so a missing
// root type can be represented as nil, but every other typeRef-producing
// field hands back a plain value, so field resolvers normalize here rather
// than assume one shape.
func asTypeRef(s interface{}) typeRef {
	if p, ok := s.(*typeRef); ok {
		return *p
	}
	return s.(typeRef)
}

func (t typeRef) ofType() *typeRef {
	p := t.parsed()
	if p.Kind != graphql.KindList && p.Kind != graphql.KindNonNull {
		return nil
	}
	return &typeRef{registry: t.registry, ref: p.Inner}
}

func (t typeRef) specifiedByURL() *string {
	concrete, ok := t.registry.ConcreteTypeByName(t.ref)
	if !ok {
		return nil
	}
	scalar, ok := concrete.(*graphql.MetaScalar)
	if !ok || scalar.SpecifiedByURL == "" {
		return nil
	}
	return &scalar.SpecifiedByURL
}

type fieldMirror struct {
	name              string
	description       string
	args              []inputValueMirror
	typ               typeRef
	isDeprecated      bool
	deprecationReason *string
}

func (t typeRef) fields() []fieldMirror {
	var fields *graphql.OrderedMap[graphql.MetaField]
	concrete, ok := t.registry.ConcreteTypeByName(t.ref)
	if !ok {
		return nil
	}
	switch v := concrete.(type) {
	case *graphql.MetaObject:
		fields = v.Fields
	case *graphql.MetaInterface:
		fields = v.Fields
	default:
		return nil
	}

	var out []fieldMirror
	fields.Range(func(name string, f graphql.MetaField) bool {
		out = append(out, fieldMirror{
			name:              name,
			description:       f.Description,
			args:              inputValueMirrors(t.registry, f.Args),
			typ:               typeRef{registry: t.registry, ref: f.Type},
			isDeprecated:      f.Deprecation != nil,
			deprecationReason: f.Deprecation,
		})
		return true
	})
	return out
}

type inputValueMirror struct {
	name              string
	description       string
	typ               typeRef
	defaultValue      *string
	isDeprecated      bool
	deprecationReason *string
}

func inputValueMirrors(r *graphql.Registry, args *graphql.OrderedMap[graphql.MetaInputValue]) []inputValueMirror {
	if args == nil {
		return nil
	}
	var out []inputValueMirror
	args.Range(func(name string, a graphql.MetaInputValue) bool {
		out = append(out, inputValueMirror{
			name:              name,
			description:       a.Description,
			typ:               typeRef{registry: r, ref: a.Type},
			defaultValue:      a.DefaultValue,
			isDeprecated:      a.Deprecation != nil,
			deprecationReason: a.Deprecation,
		})
		return true
	})
	return out
}

func (t typeRef) inputFields() []inputValueMirror {
	concrete, ok := t.registry.ConcreteTypeByName(t.ref)
	if !ok {
		return nil
	}
	io, ok := concrete.(*graphql.MetaInputObject)
	if !ok {
		return nil
	}
	return inputValueMirrors(t.registry, io.Fields)
}

func (t typeRef) interfaces() []typeRef {
	name := t.name()
	if name == "" {
		return nil
	}
	set, ok := t.registry.Implements[name]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	sort.Strings(names)

	out := make([]typeRef, 0, len(names))
	for _, n := range names {
		out = append(out, typeRef{registry: t.registry, ref: n})
	}
	return out
}

func (t typeRef) possibleTypes() []typeRef {
	concrete, ok := t.registry.ConcreteTypeByName(t.ref)
	if !ok {
		return nil
	}
	names := graphql.PossibleTypes(concrete)
	if len(names) == 0 {
		return nil
	}
	sorted := make([]string, 0, len(names))
	for n := range names {
		sorted = append(sorted, n)
	}
	sort.Strings(sorted)
	out := make([]typeRef, 0, len(sorted))
	for _, n := range sorted {
		out = append(out, typeRef{registry: t.registry, ref: n})
	}
	return out
}

type enumValueMirror struct {
	name        string
	description string
}

func (t typeRef) enumValues() []enumValueMirror {
	concrete, ok := t.registry.ConcreteTypeByName(t.ref)
	if !ok {
		return nil
	}
	enum, ok := concrete.(*graphql.MetaEnum)
	if !ok {
		return nil
	}
	var out []enumValueMirror
	enum.Values.Range(func(name string, v graphql.MetaEnumValue) bool {
		out = append(out, enumValueMirror{name: name, description: v.Description})
		return true
	})
	return out
}

type directiveMirror struct {
	name        string
	description string
	locations   []string
	args        []inputValueMirror
}

// builtinDirectives are the directives every conforming server supports,
// independent of anything application code registers.
func builtinDirectives(r *graphql.Registry) []directiveMirror {
	strArg := func(name, desc string) *graphql.OrderedMap[graphql.MetaInputValue] {
		m := graphql.NewOrderedMap[graphql.MetaInputValue]()
		m.Set(name, graphql.MetaInputValue{Name: name, Description: desc, Type: "String"})
		return m
	}
	boolArg := func(name, desc string) *graphql.OrderedMap[graphql.MetaInputValue] {
		m := graphql.NewOrderedMap[graphql.MetaInputValue]()
		m.Set(name, graphql.MetaInputValue{Name: name, Description: desc, Type: "Boolean!"})
		return m
	}
	return []directiveMirror{
		{
			name: "include", description: "Directs the executor to include this field or fragment only when the `if` argument is true.",
			locations: []string{"FIELD", "FRAGMENT_SPREAD", "INLINE_FRAGMENT"},
			args:      inputValueMirrors(r, boolArg("if", "Included when true.")),
		},
		{
			name: "skip", description: "Directs the executor to skip this field or fragment only when the `if` argument is true.",
			locations: []string{"FIELD", "FRAGMENT_SPREAD", "INLINE_FRAGMENT"},
			args:      inputValueMirrors(r, boolArg("if", "Skipped when true.")),
		},
		{
			name: "deprecated", description: "Marks an element of a GraphQL schema as no longer supported.",
			locations: []string{"FIELD_DEFINITION", "ARGUMENT_DEFINITION", "INPUT_FIELD_DEFINITION", "ENUM_VALUE"},
			args:      inputValueMirrors(r, strArg("reason", "Explains why this element was deprecated.")),
		},
		{
			name: "specifiedBy", description: "Exposes a URL that specifies the behaviour of this scalar.",
			locations: []string{"SCALAR"},
			args:      inputValueMirrors(r, strArg("url", "The URL that specifies the behaviour of this scalar.")),
		},
		{
			name: "oneOf", description: "Indicates that an Input Object is a OneOf Input Object (exactly one field must be set).",
			locations: []string{"INPUT_OBJECT"},
		},
	}
}

// allDirectives is the builtin directives plus every directive application
// code registered via Schema.Directive, sorted by name after the builtins
// so the fixed prefix a client expects stays stable.
func allDirectives(r *graphql.Registry) []directiveMirror {
	out := builtinDirectives(r)

	names := make([]string, 0, len(r.Directives))
	for name := range r.Directives {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		d := r.Directives[name]
		out = append(out, directiveMirror{
			name:        d.Name,
			description: d.Description,
			locations:   d.Locations,
			args:        inputValueMirrors(r, d.Args),
		})
	}
	return out
}

type schemaMirror struct {
	registry         *graphql.Registry
	queryType        *typeRef
	mutationType     *typeRef
	subscriptionType *typeRef
}

func (s schemaMirror) types() []typeRef {
	var typeNames []string
	s.registry.Types.Range(func(name string, _ graphql.MetaType) bool {
		typeNames = append(typeNames, name)
		return true
	})
	sort.Strings(typeNames)

	out := make([]typeRef, 0, len(typeNames))
	for _, n := range typeNames {
		out = append(out, typeRef{registry: s.registry, ref: n})
	}
	return out
}

func namedOrNil(r *graphql.Registry, name string) *typeRef {
	if name == "" {
		return nil
	}
	return &typeRef{registry: r, ref: name}
}

func rootField(name, typeRefString string, resolve graphql.Resolver) graphql.MetaField {
	return graphql.MetaField{
		Name:    name,
		Type:    typeRefString,
		Args:    graphql.NewOrderedMap[graphql.MetaInputValue](),
		Resolve: resolve,
	}
}

// simpleField builds a no-argument MetaField whose Resolve ignores
// everything but source and applies get to it directly: every introspection
// field is a pure projection of its mirror struct, never a query against
// application state.
func simpleField(name, typeRefString string, get func(source interface{}) interface{}) graphql.MetaField {
	return graphql.MetaField{
		Name: name,
		Type: typeRefString,
		Args: graphql.NewOrderedMap[graphql.MetaInputValue](),
		Resolve: func(ctx context.Context, source, args interface{}, sel *graphql.SelectionSet) (interface{}, error) {
			return get(source), nil
		},
	}
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

var typeKinds = []typeKind{kindScalar, kindObject, kindInterface, kindUnion, kindEnum, kindInputObject, kindList, kindNonNull}

var directiveLocations = []string{
	"QUERY", "MUTATION", "SUBSCRIPTION", "FIELD", "FRAGMENT_DEFINITION", "FRAGMENT_SPREAD",
	"INLINE_FRAGMENT", "SCALAR", "OBJECT", "FIELD_DEFINITION", "ARGUMENT_DEFINITION",
	"INTERFACE", "UNION", "ENUM", "ENUM_VALUE", "INPUT_OBJECT", "INPUT_FIELD_DEFINITION",
}

// registerMirrorTypes registers the fixed __Schema/__Type/__Field/
// __InputValue/__EnumValue/__Directive/__TypeKind/__DirectiveLocation types
// that back every introspection query, regardless of what r itself contains.
func registerMirrorTypes(r *graphql.Registry) {
	r.CreateNamed("__Schema", func(*graphql.Registry) graphql.MetaType {
		fields := graphql.NewOrderedMap[graphql.MetaField]()
		fields.Set("types", simpleField("types", "[__Type!]!", func(s interface{}) interface{} { return s.(schemaMirror).types() }))
		fields.Set("queryType", simpleField("queryType", "__Type!", func(s interface{}) interface{} { return s.(schemaMirror).queryType }))
		fields.Set("mutationType", simpleField("mutationType", "__Type", func(s interface{}) interface{} { return s.(schemaMirror).mutationType }))
		fields.Set("subscriptionType", simpleField("subscriptionType", "__Type", func(s interface{}) interface{} { return s.(schemaMirror).subscriptionType }))
		fields.Set("directives", simpleField("directives", "[__Directive!]!", func(s interface{}) interface{} { return allDirectives(s.(schemaMirror).registry) }))
		return &graphql.MetaObject{Name: "__Schema", Fields: fields}
	})

	r.CreateNamed("__Type", func(*graphql.Registry) graphql.MetaType {
		fields := graphql.NewOrderedMap[graphql.MetaField]()
		fields.Set("kind", simpleField("kind", "__TypeKind!", func(s interface{}) interface{} { return string(asTypeRef(s).kind()) }))
		fields.Set("name", simpleField("name", "String", func(s interface{}) interface{} { return nullIfEmpty(asTypeRef(s).name()) }))
		fields.Set("description", simpleField("description", "String", func(s interface{}) interface{} { return nullIfEmpty(asTypeRef(s).description()) }))
		fields.Set("fields", simpleField("fields", "[__Field!]", func(s interface{}) interface{} { return asTypeRef(s).fields() }))
		fields.Set("interfaces", simpleField("interfaces", "[__Type!]", func(s interface{}) interface{} { return asTypeRef(s).interfaces() }))
		fields.Set("possibleTypes", simpleField("possibleTypes", "[__Type!]", func(s interface{}) interface{} { return asTypeRef(s).possibleTypes() }))
		fields.Set("enumValues", simpleField("enumValues", "[__EnumValue!]", func(s interface{}) interface{} { return asTypeRef(s).enumValues() }))
		fields.Set("inputFields", simpleField("inputFields", "[__InputValue!]", func(s interface{}) interface{} { return asTypeRef(s).inputFields() }))
		fields.Set("ofType", simpleField("ofType", "__Type", func(s interface{}) interface{} { return asTypeRef(s).ofType() }))
		fields.Set("specifiedByURL", simpleField("specifiedByURL", "String", func(s interface{}) interface{} { return asTypeRef(s).specifiedByURL() }))
		return &graphql.MetaObject{Name: "__Type", Fields: fields}
	})

	r.CreateNamed("__Field", func(*graphql.Registry) graphql.MetaType {
		fields := graphql.NewOrderedMap[graphql.MetaField]()
		fields.Set("name", simpleField("name", "String!", func(s interface{}) interface{} { return s.(fieldMirror).name }))
		fields.Set("description", simpleField("description", "String", func(s interface{}) interface{} { return nullIfEmpty(s.(fieldMirror).description) }))
		fields.Set("args", simpleField("args", "[__InputValue!]!", func(s interface{}) interface{} { return s.(fieldMirror).args }))
		fields.Set("type", simpleField("type", "__Type!", func(s interface{}) interface{} { return s.(fieldMirror).typ }))
		fields.Set("isDeprecated", simpleField("isDeprecated", "Boolean!", func(s interface{}) interface{} { return s.(fieldMirror).isDeprecated }))
		fields.Set("deprecationReason", simpleField("deprecationReason", "String", func(s interface{}) interface{} { return s.(fieldMirror).deprecationReason }))
		return &graphql.MetaObject{Name: "__Field", Fields: fields}
	})

	r.CreateNamed("__InputValue", func(*graphql.Registry) graphql.MetaType {
		fields := graphql.NewOrderedMap[graphql.MetaField]()
		fields.Set("name", simpleField("name", "String!", func(s interface{}) interface{} { return s.(inputValueMirror).name }))
		fields.Set("description", simpleField("description", "String", func(s interface{}) interface{} { return nullIfEmpty(s.(inputValueMirror).description) }))
		fields.Set("type", simpleField("type", "__Type!", func(s interface{}) interface{} { return s.(inputValueMirror).typ }))
		fields.Set("defaultValue", simpleField("defaultValue", "String", func(s interface{}) interface{} { return s.(inputValueMirror).defaultValue }))
		fields.Set("isDeprecated", simpleField("isDeprecated", "Boolean!", func(s interface{}) interface{} { return s.(inputValueMirror).isDeprecated }))
		fields.Set("deprecationReason", simpleField("deprecationReason", "String", func(s interface{}) interface{} { return s.(inputValueMirror).deprecationReason }))
		return &graphql.MetaObject{Name: "__InputValue", Fields: fields}
	})

	r.CreateNamed("__EnumValue", func(*graphql.Registry) graphql.MetaType {
		fields := graphql.NewOrderedMap[graphql.MetaField]()
		fields.Set("name", simpleField("name", "String!", func(s interface{}) interface{} { return s.(enumValueMirror).name }))
		fields.Set("description", simpleField("description", "String", func(s interface{}) interface{} { return nullIfEmpty(s.(enumValueMirror).description) }))
		fields.Set("isDeprecated", simpleField("isDeprecated", "Boolean!", func(s interface{}) interface{} { return false }))
		fields.Set("deprecationReason", simpleField("deprecationReason", "String", func(s interface{}) interface{} { return (*string)(nil) }))
		return &graphql.MetaObject{Name: "__EnumValue", Fields: fields}
	})

	r.CreateNamed("__Directive", func(*graphql.Registry) graphql.MetaType {
		fields := graphql.NewOrderedMap[graphql.MetaField]()
		fields.Set("name", simpleField("name", "String!", func(s interface{}) interface{} { return s.(directiveMirror).name }))
		fields.Set("description", simpleField("description", "String", func(s interface{}) interface{} { return nullIfEmpty(s.(directiveMirror).description) }))
		fields.Set("locations", simpleField("locations", "[__DirectiveLocation!]!", func(s interface{}) interface{} { return s.(directiveMirror).locations }))
		fields.Set("args", simpleField("args", "[__InputValue!]!", func(s interface{}) interface{} { return s.(directiveMirror).args }))
		return &graphql.MetaObject{Name: "__Directive", Fields: fields}
	})

	r.CreateNamed("__TypeKind", func(*graphql.Registry) graphql.MetaType {
		values := graphql.NewOrderedMap[graphql.MetaEnumValue]()
		for _, k := range typeKinds {
			values.Set(string(k), graphql.MetaEnumValue{Name: string(k)})
		}
		return &graphql.MetaEnum{Name: "__TypeKind", Values: values}
	})

	r.CreateNamed("__DirectiveLocation", func(*graphql.Registry) graphql.MetaType {
		values := graphql.NewOrderedMap[graphql.MetaEnumValue]()
		for _, l := range directiveLocations {
			values.Set(l, graphql.MetaEnumValue{Name: l})
		}
		return &graphql.MetaEnum{Name: "__DirectiveLocation", Values: values}
	})
}

// AddIntrospectionToRegistry inserts __schema and __type into the query
// root's fields, backed by resolvers that project r itself. r's query root
// must already be registered.
func AddIntrospectionToRegistry(r *graphql.Registry) error {
	root := r.MustQueryRoot()

	registerMirrorTypes(r)

	mirror := schemaMirror{
		registry:         r,
		queryType:        namedOrNil(r, r.QueryType),
		mutationType:     namedOrNil(r, r.MutationType),
		subscriptionType: namedOrNil(r, r.SubscriptionType),
	}

	root.Fields.Set("__schema", rootField("__schema", "__Schema!", func(ctx context.Context, source, args interface{}, sel *graphql.SelectionSet) (interface{}, error) {
		return mirror, nil
	}))

	root.Fields.Set("__type", rootField("__type", "__Type", func(ctx context.Context, source, rawArgs interface{}, sel *graphql.SelectionSet) (interface{}, error) {
		asMap, _ := rawArgs.(map[string]interface{})
		name, _ := asMap["name"].(string)
		if _, ok := r.ConcreteTypeByName(name); !ok {
			return nil, fmt.Errorf("introspection: unknown type %q", name)
		}
		return typeRef{registry: r, ref: name}, nil
	}))

	return nil
}
