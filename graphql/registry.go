package graphql

import "fmt"

// Registry is the name-keyed catalog of meta descriptors assembled once
// during bootstrap and thereafter read-only. It is the
// only process-wide mutable structure in the core; after bootstrap it is
// frozen and freely shared across goroutines since every lookup is pure.
type Registry struct {
	Types      *OrderedMap[MetaType]
	Directives map[string]MetaDirective
	Implements map[string]map[string]struct{}

	QueryType        string
	MutationType     string
	SubscriptionType string
}

// NewRegistry returns an empty Registry. QueryType must be set by the caller
// (schemabuilder's Schema.Build does so) before CreateFederationTypes is
// called; the Registry never sets it itself.
func NewRegistry() *Registry {
	return &Registry{
		Types:      NewOrderedMap[MetaType](),
		Directives: make(map[string]MetaDirective),
		Implements: make(map[string]map[string]struct{}),
	}
}

// Registrar is implemented by every type that can register itself into a
// Registry. Go has no static trait methods, so TypeName/QualifiedTypeName
// must be callable on the zero value: they report facts about the *type*,
// never about the instance's data. This lets CreateType obtain a type's
// name purely from its Go type parameter, without ever constructing an
// instance of it.
type Registrar interface {
	// TypeName is the bare name this type registers under.
	TypeName() string
	// QualifiedTypeName is the type reference string a field referring to
	// this type should use (adds List/NonNull modifiers as required).
	QualifiedTypeName() string
}

// placeholder is inserted before a builder runs so that a recursive
// reference to the type being built finds *something* and returns
// immediately instead of recursing forever. Its
// content is never observed: bootstrap is single-threaded and the Registry
// is not queried until bootstrap completes.
var placeholder MetaType = &MetaObject{Fields: NewOrderedMap[MetaField]()}

// createTypeByName is the name-driven half of the cycle-safe registration
// protocol. CreateNamed and CreateType wrap it, and CreateFederationTypes
// calls it directly; schemabuilder reaches it through CreateNamed, since it
// discovers type names at runtime via reflection rather than at compile
// time via a Go type parameter.
func (r *Registry) createTypeByName(name string, build func(*Registry) MetaType) {
	if r.Types.Has(name) {
		return
	}
	r.Types.Set(name, placeholder)
	built := build(r)
	r.Types.Set(name, built)
}

// CreateNamed is the exported form of the name-driven registration
// protocol, for callers (such as compose's Merged) that know their type
// name at runtime rather than through a Go type parameter.
func (r *Registry) CreateNamed(name string, build func(*Registry) MetaType) {
	r.createTypeByName(name, build)
}

// CreateType is the generic, compile-time-known half of the cycle-safe
// registration protocol, keyed by a Registrar type parameter (the compose
// wrappers register through CreateNamed instead). T's TypeName/QualifiedTypeName are
// called on a Go zero value, so implementations must not dereference their
// receiver in those two methods.
func CreateType[T Registrar](r *Registry, build func(*Registry) MetaType) string {
	var zero T
	r.createTypeByName(zero.TypeName(), build)
	return zero.QualifiedTypeName()
}

// AddDirective inserts a directive definition by name; the last writer wins.
func (r *Registry) AddDirective(d MetaDirective) {
	r.Directives[d.Name] = d
}

// AddImplements records that object implements interface.
func (r *Registry) AddImplements(object, interfaceName string) {
	set, ok := r.Implements[object]
	if !ok {
		set = make(map[string]struct{})
		r.Implements[object] = set
	}
	set[interfaceName] = struct{}{}
}

// ImplementsInterface reports whether object is recorded as implementing
// interfaceName.
func (r *Registry) ImplementsInterface(object, interfaceName string) bool {
	set, ok := r.Implements[object]
	if !ok {
		return false
	}
	_, ok = set[interfaceName]
	return ok
}

// AddKeys appends a federation key spec to typeName's key list. It is
// silently ignored for any variant other than Object or Interface, since
// only composite outputs can be federation entities.
func (r *Registry) AddKeys(typeName string, keySpec string) {
	entry, ok := r.Types.Get(typeName)
	if !ok {
		return
	}
	switch t := entry.(type) {
	case *MetaObject:
		t.Keys = append(t.Keys, keySpec)
	case *MetaInterface:
		t.Keys = append(t.Keys, keySpec)
	}
}

// ConcreteTypeByName strips modifiers from ref and looks up the underlying
// entry.
func (r *Registry) ConcreteTypeByName(ref string) (MetaType, bool) {
	return r.Types.Get(ConcreteTypeName(ref))
}

// ConcreteTypeByParsedType mirrors ConcreteTypeByName starting from an
// already-parsed TypeName instead of a raw string.
func (r *Registry) ConcreteTypeByParsedType(t TypeName) (MetaType, bool) {
	switch t.Kind {
	case KindNamed:
		return r.Types.Get(t.Name)
	default:
		return r.ConcreteTypeByParsedType(ParseTypeName(t.Inner))
	}
}

// Names returns the set of every named identifier in the schema: types,
// fields, arguments, enum values, and directive arguments. Used by the
// naming-rule validator collaborator, never by the registry itself.
func (r *Registry) Names() []string {
	seen := make(map[string]struct{})
	add := func(name string) { seen[name] = struct{}{} }

	for _, d := range r.Directives {
		add(d.Name)
		d.Args.Range(func(_ string, arg MetaInputValue) bool {
			add(arg.Name)
			return true
		})
	}

	r.Types.Range(func(_ string, t MetaType) bool {
		add(t.TypeName())
		switch v := t.(type) {
		case *MetaObject:
			addFieldNames(add, v.Fields)
		case *MetaInterface:
			addFieldNames(add, v.Fields)
		case *MetaEnum:
			v.Values.Range(func(_ string, ev MetaEnumValue) bool {
				add(ev.Name)
				return true
			})
		case *MetaInputObject:
			v.Fields.Range(func(_ string, f MetaInputValue) bool {
				add(f.Name)
				return true
			})
		}
		return true
	})

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	return out
}

func addFieldNames(add func(string), fields *OrderedMap[MetaField]) {
	fields.Range(func(_ string, f MetaField) bool {
		add(f.Name)
		f.Args.Range(func(_ string, arg MetaInputValue) bool {
			add(arg.Name)
			return true
		})
		return true
	})
}

// MustQueryRoot returns the query root's *MetaObject, panicking if the
// Registry has no query type or it is not an Object — a build-time
// programmer fault, not a serve-time condition.
func (r *Registry) MustQueryRoot() *MetaObject {
	t, ok := r.Types.Get(r.QueryType)
	if !ok {
		panic(fmt.Sprintf("graphql: query root type %q is not registered", r.QueryType))
	}
	obj, ok := t.(*MetaObject)
	if !ok {
		panic(fmt.Sprintf("graphql: query root type %q is not an Object", r.QueryType))
	}
	return obj
}
