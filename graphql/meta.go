// Package graphql is the schema registry and type-reflection core: the
// name-keyed catalog of meta descriptors (Scalar, Object, Interface, Union,
// Enum, InputObject) that the rest of a GraphQL server is built against.
//
// It answers structural questions at query-execution time (field lookup,
// subtype tests, possible-type enumeration), exposes federation metadata,
// and is the substrate the compose package's merged objects and connection
// edges register themselves into. It does not parse queries, execute
// resolvers, validate against an incoming query, or persist anything.
package graphql

import "context"

// Value is the wire-level value a scalar validator or resolver produces or
// consumes. The registry treats it opaquely; the executor collaborator
// gives it concrete shape.
type Value = interface{}

// Resolver computes the value of a field of an object. Field resolution is
// the executor's concern; the registry only stores the callback.
type Resolver func(ctx context.Context, source, args interface{}, selectionSet *SelectionSet) (interface{}, error)

// MetaInputValue describes one argument or input-object field.
type MetaInputValue struct {
	Name         string
	Description  string
	Type         string // type reference string, e.g. "[Int!]!"
	DefaultValue *string
	Deprecation  *string
	Validator    InputValueValidator
}

// MetaField describes one field of an Object or Interface.
type MetaField struct {
	Name         string
	Description  string
	Args         *OrderedMap[MetaInputValue]
	Type         string // type reference string
	Deprecation  *string
	CacheControl CacheControl
	Resolve      Resolver

	// Federation flags.
	External bool
	Requires string
	Provides string
}

// MetaEnumValue describes one member of an Enum.
type MetaEnumValue struct {
	Name        string
	Description string
	Deprecation *string
}

// MetaScalar is a leaf value validated by a predicate.
type MetaScalar struct {
	Name        string
	Description string
	// SpecifiedByURL is the @specifiedBy(url:) value; empty means unset.
	SpecifiedByURL string
	IsValid        func(Value) bool
}

// MetaObject is a concrete composite type.
type MetaObject struct {
	Name         string
	Description  string
	Fields       *OrderedMap[MetaField]
	CacheControl CacheControl
	Extends      bool
	// Keys holds federation key field-sets. nil means "not an entity
	// candidate"; an empty non-nil slice is never produced by AddKeys.
	Keys []string
}

// MetaInterface is an abstract composite type with a known possible-type set.
type MetaInterface struct {
	Name          string
	Description   string
	Fields        *OrderedMap[MetaField]
	PossibleTypes map[string]struct{}
	Extends       bool
	Keys          []string
}

// MetaUnion is an abstract type defined purely by its possible-type set.
type MetaUnion struct {
	Name          string
	Description   string
	PossibleTypes map[string]struct{}
}

// MetaEnum is a leaf type with a fixed, ordered set of named values.
type MetaEnum struct {
	Name        string
	Description string
	Values      *OrderedMap[MetaEnumValue]
}

// MetaInputObject is an input-only composite type.
type MetaInputObject struct {
	Name        string
	Description string
	Fields      *OrderedMap[MetaInputValue]
	// OneOf marks an input object as a oneOf input: exactly one non-null
	// field may be set per value.
	OneOf bool
}

// MetaDirective describes a directive definition.
type MetaDirective struct {
	Name        string
	Description string
	Locations   []string
	Args        *OrderedMap[MetaInputValue]
}

// MetaType is the closed family of named entries the Registry can hold.
// Every concrete *MetaObject, *MetaInterface, *MetaUnion, *MetaEnum,
// *MetaScalar, *MetaInputObject implements it; nothing else may.
type MetaType interface {
	// TypeName returns the entry's own name.
	TypeName() string
	isMetaType()
}

func (t *MetaScalar) TypeName() string      { return t.Name }
func (t *MetaObject) TypeName() string      { return t.Name }
func (t *MetaInterface) TypeName() string   { return t.Name }
func (t *MetaUnion) TypeName() string       { return t.Name }
func (t *MetaEnum) TypeName() string        { return t.Name }
func (t *MetaInputObject) TypeName() string { return t.Name }

func (*MetaScalar) isMetaType()      {}
func (*MetaObject) isMetaType()      {}
func (*MetaInterface) isMetaType()   {}
func (*MetaUnion) isMetaType()       {}
func (*MetaEnum) isMetaType()        {}
func (*MetaInputObject) isMetaType() {}

// Fields returns the field map of an Object or Interface, or nil for any
// other variant.
func Fields(t MetaType) *OrderedMap[MetaField] {
	switch v := t.(type) {
	case *MetaObject:
		return v.Fields
	case *MetaInterface:
		return v.Fields
	default:
		return nil
	}
}

// FieldByName looks up a single field by name on an Object or Interface.
func FieldByName(t MetaType, name string) (MetaField, bool) {
	fields := Fields(t)
	if fields == nil {
		var zero MetaField
		return zero, false
	}
	return fields.Get(name)
}
