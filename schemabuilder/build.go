package schemabuilder

import (
	"errors"
	"reflect"
	"strconv"

	"go.appointy.com/gqlcore/graphql"
)

// argParser converts a raw decoded value (as produced by a JSON-like
// transport: map[string]interface{}, []interface{}, string, float64, bool,
// nil) into a reflect.Value of a known Go type.
type argParser struct {
	FromJSON func(value interface{}, dest reflect.Value) error
	Type     reflect.Type
}

// schemaBuilder accumulates the reflection-based registrations made against
// a Schema (Object/InputObject/Enum/interface declarations) and lowers them
// into a graphql.Registry on Build.
type schemaBuilder struct {
	registry *graphql.Registry

	objects      map[reflect.Type]*Object
	inputObjects map[reflect.Type]*InputObject
	enumMappings map[reflect.Type]*EnumMapping
	interfaces   map[reflect.Type]*InterfaceObj

	// inputTypeCache breaks cycles among input object field types, keyed by
	// the Go reflect.Type of each input struct.
	inputTypeCache map[reflect.Type]*cachedInputType
	// outputTypeCache breaks cycles among output object/interface/union
	// field types, keyed by the Go reflect.Type of each output struct.
	outputTypeCache map[reflect.Type]string
}

func newSchemaBuilder() *schemaBuilder {
	return &schemaBuilder{
		registry:        graphql.NewRegistry(),
		objects:         make(map[reflect.Type]*Object),
		inputObjects:    make(map[reflect.Type]*InputObject),
		enumMappings:    make(map[reflect.Type]*EnumMapping),
		interfaces:      make(map[reflect.Type]*InterfaceObj),
		inputTypeCache:  make(map[reflect.Type]*cachedInputType),
		outputTypeCache: make(map[reflect.Type]string),
	}
}

// scalars maps a Go reflect.Type to the GraphQL scalar name it represents,
// populated by the five built-in scalar registrations below and by every
// RegisterScalar call.
var scalars = map[reflect.Type]string{}

// scalarArgParsers maps a Go reflect.Type to the argParser that decodes a
// raw value into it, populated alongside scalars.
var scalarArgParsers = map[reflect.Type]*argParser{}

func registerBuiltinScalar(value interface{}, name string, fromJSON func(interface{}, reflect.Value) error) {
	typ := reflect.TypeOf(value)
	scalars[typ] = name
	scalarArgParsers[typ] = &argParser{FromJSON: fromJSON, Type: typ}
}

func init() {
	registerBuiltinScalar(bool(false), "Boolean", func(value interface{}, dest reflect.Value) error {
		v, ok := value.(bool)
		if !ok {
			return errors.New("not a bool")
		}
		dest.SetBool(v)
		return nil
	})
	registerBuiltinScalar(string(""), "String", func(value interface{}, dest reflect.Value) error {
		v, ok := value.(string)
		if !ok {
			return errors.New("not a string")
		}
		dest.SetString(v)
		return nil
	})
	registerBuiltinScalar(float64(0), "Float", func(value interface{}, dest reflect.Value) error {
		switch v := value.(type) {
		case float64:
			dest.SetFloat(v)
		case int64:
			dest.SetFloat(float64(v))
		default:
			return errors.New("not a number")
		}
		return nil
	})
	registerBuiltinScalar(int32(0), "Int", func(value interface{}, dest reflect.Value) error {
		switch v := value.(type) {
		case float64:
			dest.SetInt(int64(v))
		case int64:
			dest.SetInt(v)
		default:
			return errors.New("not a number")
		}
		return nil
	})
	registerBuiltinScalar(ID{}, "ID", func(value interface{}, dest reflect.Value) error {
		switch v := value.(type) {
		case string:
			dest.Set(reflect.ValueOf(ID{Value: v}))
		case float64:
			dest.Set(reflect.ValueOf(ID{Value: strconv.FormatFloat(v, 'g', -1, 64)}))
		default:
			return errors.New("not an ID")
		}
		return nil
	})
}

func getScalarArgParser(typ reflect.Type) (*argParser, string, bool) {
	parser, ok := scalarArgParsers[typ]
	if !ok {
		return nil, "", false
	}
	return parser, scalars[typ], true
}

// registerEnum registers typ's MetaEnum (idempotent, shared by the input and
// output code paths) and returns its name.
func (sb *schemaBuilder) registerEnum(typ reflect.Type) string {
	mapping := sb.enumMappings[typ]
	name := typ.Name()
	sb.registry.CreateNamed(name, func(*graphql.Registry) graphql.MetaType {
		values := graphql.NewOrderedMap[graphql.MetaEnumValue]()
		for _, symbol := range mapping.Order {
			values.Set(symbol, graphql.MetaEnumValue{Name: symbol})
		}
		return &graphql.MetaEnum{Name: name, Description: mapping.Description, Values: values}
	})
	return name
}

// getEnumArgParser returns the parser for an enum-backed type, decoding its
// GraphQL symbolic name (a string) back into the Go constant it maps to.
func (sb *schemaBuilder) getEnumArgParser(typ reflect.Type) (*argParser, string, error) {
	mapping := sb.enumMappings[typ]
	name := sb.registerEnum(typ)

	parser := &argParser{
		FromJSON: func(value interface{}, dest reflect.Value) error {
			symbol, ok := value.(string)
			if !ok {
				return errors.New("enum value is not a string")
			}
			mapped, ok := mapping.Map[symbol]
			if !ok {
				return errors.New("unknown enum value " + symbol)
			}
			dest.Set(reflect.ValueOf(mapped))
			return nil
		},
		Type: typ,
	}
	return parser, name, nil
}
