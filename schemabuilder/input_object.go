package schemabuilder

import (
	"errors"
	"fmt"
	"reflect"

	"go.appointy.com/gqlcore/graphql"
)

// cachedInputType tracks an input struct type's registration in progress,
// keyed by its reflect.Type and inserted before its fields are walked so a
// self-referential input object discovers itself already known instead of
// recursing forever.
type cachedInputType struct {
	name   string
	order  []string
	fields map[string]argField
}

// argField associates one input-object field (or args-struct field) with
// the parser that fills it from a decoded JSON-ish value.
type argField struct {
	field             reflect.StructField
	parser            *argParser
	typeRef           string
	DeprecationReason string
	Description       string
}

// makeInputObjectParser constructs an argParser for the passed in args struct i.e. the input struct which contains all the objects to be given as input. For eg:
// obj.fieldFunc("name", func(ctx context.Context, args struct{
// 	A createObjectRequest
// }{}))
func (sb *schemaBuilder) makeInputObjectParser(typ reflect.Type) (*argParser, string, error) {
	if typ.Kind() != reflect.Struct {
		return nil, "", fmt.Errorf("expected struct but received type %s", typ.Name())
	}

	parser, name, _, err := sb.generateArgParser(typ)
	if err != nil {
		return nil, "", err
	}
	return parser, name, nil
}

// generateArgParser generates the parser for an args struct (or a
// registered input object's backing struct), registering a MetaInputObject
// for it along the way.
func (sb *schemaBuilder) generateArgParser(typ reflect.Type) (*argParser, string, map[string]argField, error) {
	if cached, ok := sb.inputTypeCache[typ]; ok {
		return sb.buildArgParser(typ, cached), cached.name, cached.fields, nil
	}

	name := typ.Name()
	oneOf := hasOneOfMarkerEmbedded(typ)
	cached := &cachedInputType{name: name, fields: make(map[string]argField)}
	sb.inputTypeCache[typ] = cached

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.Anonymous && field.Type == oneOfInputType {
			continue
		}
		if field.Anonymous {
			return nil, "", nil, fmt.Errorf("bad arg type %s: anonymous fields not supported", typ)
		}

		info, err := parseGraphQLFieldInfo(field)
		if err != nil {
			return nil, "", nil, fmt.Errorf("bad type %s: %s", typ, err.Error())
		}
		if info.Skipped {
			continue
		}
		if _, ok := cached.fields[info.Name]; ok {
			return nil, "", nil, fmt.Errorf("bad arg type %s: duplicate field %s", typ, info.Name)
		}

		parser, fieldTypeRef, err := sb.generateObjectParser(field.Type)
		if err != nil {
			return nil, "", nil, err
		}

		cached.fields[info.Name] = argField{
			field:             field,
			parser:            parser,
			typeRef:           fieldTypeRef,
			DeprecationReason: info.DeprecationReason,
			Description:       info.Description,
		}
		cached.order = append(cached.order, info.Name)
	}

	// An anonymous args struct (the literal "args struct{...}" parameter of
	// a FieldFunc) has no name and is never itself a GraphQL type: its
	// fields become the field's arguments directly. Only a named struct
	// reached through nesting is registered as its own input object.
	if name != "" {
		sb.registerInputObjectType(name, oneOf, cached)
	}

	return sb.buildArgParser(typ, cached), name, cached.fields, nil
}

// registerInputObjectType registers a MetaInputObject built from cached's
// fields into the Registry, in field declaration order.
func (sb *schemaBuilder) registerInputObjectType(name string, oneOf bool, cached *cachedInputType) {
	sb.registry.CreateNamed(name, func(r *graphql.Registry) graphql.MetaType {
		fields := graphql.NewOrderedMap[graphql.MetaInputValue]()
		for _, fieldName := range cached.order {
			f := cached.fields[fieldName]
			var deprecation *string
			if f.DeprecationReason != "" {
				d := f.DeprecationReason
				deprecation = &d
			}
			fields.Set(fieldName, graphql.MetaInputValue{
				Name:        fieldName,
				Description: f.Description,
				Type:        f.typeRef,
				Deprecation: deprecation,
			})
		}
		return &graphql.MetaInputObject{Name: name, Fields: fields, OneOf: oneOf}
	})
}

func (sb *schemaBuilder) buildArgParser(typ reflect.Type, cached *cachedInputType) *argParser {
	oneOf := hasOneOfMarkerEmbedded(typ)
	fields := cached.fields
	name := cached.name
	return &argParser{
		FromJSON: func(value interface{}, dest reflect.Value) error {
			asMap, ok := value.(map[string]interface{})
			if !ok {
				return errors.New("not an object")
			}

			if oneOf {
				if err := validateOneOfInput(name, asMap); err != nil {
					return err
				}
			}

			for fieldName, field := range fields {
				fieldValue := asMap[fieldName]
				fieldDest := dest.FieldByIndex(field.field.Index)
				if err := field.parser.FromJSON(fieldValue, fieldDest); err != nil {
					return fmt.Errorf("%s: %s", fieldName, err)
				}
			}

			for fieldName := range asMap {
				if _, ok := fields[fieldName]; !ok {
					return fmt.Errorf("unknown arg %s", fieldName)
				}
			}
			return nil
		},
		Type: typ,
	}
}

// generateObjectParser generates the parser for a single field's type,
// handling the pointer-means-nullable convention: a pointer field's type
// reference is the bare (nullable) name, a non-pointer field's is wrapped
// NonNull.
func (sb *schemaBuilder) generateObjectParser(typ reflect.Type) (*argParser, string, error) {
	if typ.Kind() == reflect.Ptr {
		parser, typeRef, err := sb.generateObjectParserInner(typ.Elem())
		if err != nil {
			return nil, "", err
		}
		return wrapPtrParser(typ, parser), typeRef, nil
	}

	parser, typeRef, err := sb.generateObjectParserInner(typ)
	if err != nil {
		return nil, "", err
	}
	return parser, typeRef + "!", nil
}

// generateObjectParserInner generates the parser without having to worry
// about the pointer/nullability wrapping; the returned type reference is
// always bare (no NonNull modifier).
func (sb *schemaBuilder) generateObjectParserInner(typ reflect.Type) (*argParser, string, error) {
	if sb.enumMappings[typ] != nil {
		return sb.getEnumArgParser(typ)
	}

	if isScalarType(typ) {
		return sb.getScalarFieldParser(typ)
	}

	if typ.Kind() == reflect.Slice {
		return sb.generateSliceParser(typ)
	}

	if obj, ok := sb.inputObjects[typ]; ok {
		return sb.generateRegisteredInputParser(typ, obj)
	}

	if typ.Kind() == reflect.Struct {
		parser, name, _, err := sb.generateArgParser(typ)
		if err != nil {
			return nil, "", err
		}
		return parser, name, nil
	}

	return nil, "", fmt.Errorf("%s not registered as input object", typ.Name())
}

// generateRegisteredInputParser builds the parser for a type registered via
// Schema.InputObject, whose fields were supplied through FieldFunc rather
// than discovered via struct tags.
func (sb *schemaBuilder) generateRegisteredInputParser(typ reflect.Type, obj *InputObject) (*argParser, string, error) {
	if cached, ok := sb.inputTypeCache[typ]; ok {
		return sb.buildRegisteredParser(typ, obj, cached), cached.name, nil
	}

	cached := &cachedInputType{name: obj.Name, fields: make(map[string]argField)}
	sb.inputTypeCache[typ] = cached

	for _, fieldName := range obj.FieldOrder {
		fn := obj.Fields[fieldName]
		funcTyp := reflect.TypeOf(fn.Fn)
		sourceTyp := funcTyp.In(1)

		parser, typeRef, err := sb.generateObjectParser(sourceTyp)
		if err != nil {
			return nil, "", err
		}

		cached.fields[fieldName] = argField{
			parser:            parser,
			typeRef:           typeRef,
			DeprecationReason: fn.DeprecationReason,
			Description:       fn.Description,
		}
		cached.order = append(cached.order, fieldName)
	}

	sb.registerInputObjectType(obj.Name, obj.oneOf, cached)

	return sb.buildRegisteredParser(typ, obj, cached), obj.Name, nil
}

func (sb *schemaBuilder) buildRegisteredParser(typ reflect.Type, obj *InputObject, cached *cachedInputType) *argParser {
	oneOf := obj.oneOf
	return &argParser{
		FromJSON: func(value interface{}, dest reflect.Value) error {
			asMap, ok := value.(map[string]interface{})
			if !ok {
				return errors.New("not an object")
			}

			if oneOf {
				if err := validateOneOfInput(obj.Name, asMap); err != nil {
					return err
				}
			}

			target := reflect.New(typ)
			for fieldName, field := range cached.fields {
				rawValue, exists := asMap[fieldName]
				if !exists {
					continue
				}
				fn := obj.Fields[fieldName]
				funcTyp := reflect.TypeOf(fn.Fn)
				sourceTyp := funcTyp.In(1)
				source := reflect.New(sourceTyp).Elem()

				if err := field.parser.FromJSON(rawValue, source); err != nil {
					return fmt.Errorf("%s: %s", fieldName, err)
				}

				out := reflect.ValueOf(fn.Fn).Call([]reflect.Value{target, source})
				if len(out) > 0 {
					if errVal := out[0].Interface(); errVal != nil {
						return errVal.(error)
					}
				}
			}

			dest.Set(target.Elem())
			return nil
		},
		Type: typ,
	}
}

func (sb *schemaBuilder) getScalarFieldParser(typ reflect.Type) (*argParser, string, error) {
	if parser, name, ok := getScalarArgParser(typ); ok {
		return parser, name, nil
	}
	return nil, "", fmt.Errorf("no parser registered for scalar type %s", typ)
}

// generateSliceParser generates the parser for a slice input by generating
// the parser for the underlying element type and using it to fill the
// values of the list.
func (sb *schemaBuilder) generateSliceParser(typ reflect.Type) (*argParser, string, error) {
	inner, elemTypeRef, err := sb.generateObjectParser(typ.Elem())
	if err != nil {
		return nil, "", err
	}

	return &argParser{
		FromJSON: func(value interface{}, dest reflect.Value) error {
			asSlice, ok := value.([]interface{})
			if !ok {
				return errors.New("not a list")
			}

			elemTyp := typ.Elem()
			sourceSlice := reflect.MakeSlice(typ, len(asSlice), len(asSlice))

			for i, elemValue := range asSlice {
				source := reflect.New(elemTyp).Elem()
				if err := inner.FromJSON(elemValue, source); err != nil {
					return err
				}
				sourceSlice.Index(i).Set(source)
			}

			dest.Set(sourceSlice)
			return nil
		},
		Type: typ,
	}, "[" + elemTypeRef + "]!", nil
}

// wrapPtrParser adapts a parser for typ.Elem() into one for *typ: nil/absent
// maps to a nil pointer, any other value is parsed into a freshly allocated
// typ.Elem() and its address stored.
func wrapPtrParser(typ reflect.Type, inner *argParser) *argParser {
	return &argParser{
		FromJSON: func(value interface{}, dest reflect.Value) error {
			if value == nil {
				dest.Set(reflect.Zero(typ))
				return nil
			}
			ptr := reflect.New(typ.Elem())
			if err := inner.FromJSON(value, ptr.Elem()); err != nil {
				return err
			}
			dest.Set(ptr)
			return nil
		},
		Type: typ,
	}
}

// hasOneOfMarkerEmbedded determines if a struct has an embedded
// schemabuilder.OneOfInput, marking it as a oneOf input object: exactly one
// field may be non-null per value.
func hasOneOfMarkerEmbedded(typ reflect.Type) bool {
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.Anonymous && field.Type == oneOfInputType {
			return true
		}
	}
	return false
}

// validateOneOfInput enforces the oneOf invariant: exactly one key present
// in asMap with a non-null value.
func validateOneOfInput(name string, asMap map[string]interface{}) error {
	set := 0
	for _, v := range asMap {
		if v != nil {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("input object %s is a oneOf input: exactly one field must be non-null, got %d", name, set)
	}
	return nil
}
