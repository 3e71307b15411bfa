package schemabuilder

import (
	"context"
	"fmt"
	"reflect"

	"go.appointy.com/gqlcore/graphql"
)

// fieldSignature describes how a FieldFunc's Go function maps onto a
// graphql.Resolver's (ctx, source, args, selectionSet) call shape.
type fieldSignature struct {
	useContext      bool
	useSource       bool
	useArgs         bool
	useSelectionSet bool

	argsType reflect.Type

	hasError        bool
	isSubscription  bool
	subscriptionOut reflect.Type
}

// parseFieldSignature classifies fn's parameters and return values against
// sourceType (nil for root Query/Mutation/Subscription fields, which never
// take a source argument).
func parseFieldSignature(sourceType reflect.Type, fn reflect.Type) (*fieldSignature, error) {
	sig := &fieldSignature{}
	idx := 0

	if idx < fn.NumIn() && fn.In(idx) == contextType {
		sig.useContext = true
		idx++
	}

	if sourceType != nil && idx < fn.NumIn() {
		in := fn.In(idx)
		if in == sourceType || in == reflect.PtrTo(sourceType) {
			sig.useSource = true
			idx++
		}
	}

	for idx < fn.NumIn() {
		in := fn.In(idx)
		if in == selectionSetType {
			sig.useSelectionSet = true
			idx++
			continue
		}
		if sig.useArgs {
			return nil, fmt.Errorf("field func takes more than one non-context, non-source, non-selection-set argument")
		}
		sig.useArgs = true
		sig.argsType = in
		idx++
	}

	switch fn.NumOut() {
	case 1:
	case 2:
		if fn.Out(1) != errType {
			return nil, fmt.Errorf("field func's second return value must be error")
		}
		sig.hasError = true
	default:
		return nil, fmt.Errorf("field func must return (value) or (value, error)")
	}

	out0 := fn.Out(0)
	if out0.Kind() == reflect.Func && out0.NumIn() == 0 && out0.NumOut() == 1 {
		sig.isSubscription = true
		sig.subscriptionOut = out0.Out(0)
	}

	return sig, nil
}

// buildField lowers one registered method into a graphql.MetaField and its
// backing Resolver.
func (sb *schemaBuilder) buildField(sourceType reflect.Type, m *method) (graphql.MetaField, error) {
	fnVal := reflect.ValueOf(m.Fn)
	fnTyp := fnVal.Type()

	sig, err := parseFieldSignature(sourceType, fnTyp)
	if err != nil {
		return graphql.MetaField{}, err
	}

	var args *graphql.OrderedMap[graphql.MetaInputValue]
	if sig.useArgs {
		if _, _, err := sb.generateArgParser(sig.argsType); err != nil {
			return graphql.MetaField{}, err
		}
		cached := sb.inputTypeCache[sig.argsType]
		args = graphql.NewOrderedMap[graphql.MetaInputValue]()
		for _, name := range cached.order {
			f := cached.fields[name]
			var deprecation *string
			if f.DeprecationReason != "" {
				d := f.DeprecationReason
				deprecation = &d
			}
			args.Set(name, graphql.MetaInputValue{
				Name: name, Description: f.Description, Type: f.typeRef, Deprecation: deprecation,
			})
		}
	}

	outType := fnTyp.Out(0)
	if sig.isSubscription {
		outType = sig.subscriptionOut
	}
	typeRef, err := sb.getOutputType(outType)
	if err != nil {
		return graphql.MetaField{}, err
	}

	resolver := sb.buildResolver(fnVal, sourceType, sig)

	return graphql.MetaField{
		Description: m.Description,
		Args:        args,
		Type:        typeRef,
		Resolve:     resolver,
	}, nil
}

// buildResolver closes over the reflected function and argument parser to
// produce a graphql.Resolver.
func (sb *schemaBuilder) buildResolver(fnVal reflect.Value, sourceType reflect.Type, sig *fieldSignature) graphql.Resolver {
	var argsParser *argParser
	if sig.useArgs {
		argsParser, _, _ = sb.generateArgParser(sig.argsType)
	}

	return func(ctx context.Context, source, rawArgs interface{}, selectionSet *graphql.SelectionSet) (interface{}, error) {
		in := make([]reflect.Value, 0, 4)

		if sig.useContext {
			in = append(in, reflect.ValueOf(ctx))
		}

		if sig.useSource {
			sv := reflect.ValueOf(source)
			wantPtr := fnVal.Type().In(len(in)) == reflect.PtrTo(sourceType)
			if wantPtr && sv.Kind() != reflect.Ptr {
				ptr := reflect.New(sourceType)
				ptr.Elem().Set(sv)
				sv = ptr
			} else if !wantPtr && sv.Kind() == reflect.Ptr {
				sv = sv.Elem()
			}
			in = append(in, sv)
		}

		if sig.useArgs {
			argsVal := reflect.New(sig.argsType).Elem()
			if argsParser != nil {
				raw := rawArgs
				if raw == nil {
					raw = map[string]interface{}{}
				}
				if err := argsParser.FromJSON(raw, argsVal); err != nil {
					return nil, fmt.Errorf("parsing arguments: %w", err)
				}
			}
			in = append(in, argsVal)
		}

		if sig.useSelectionSet {
			in = append(in, reflect.ValueOf(selectionSet))
		}

		out := fnVal.Call(in)

		if sig.hasError {
			if errVal := out[1].Interface(); errVal != nil {
				return nil, errVal.(error)
			}
		}

		result := out[0]
		if sig.isSubscription {
			produced := result.Call(nil)
			return produced[0].Interface(), nil
		}
		return result.Interface(), nil
	}
}

// buildFields lowers every FieldFunc registered on an Object/InterfaceObj
// into a MetaField map, in registration order.
func (sb *schemaBuilder) buildFields(sourceType reflect.Type, methods Methods, order []string) (*graphql.OrderedMap[graphql.MetaField], error) {
	fields := graphql.NewOrderedMap[graphql.MetaField]()
	for _, name := range order {
		m := methods[name]
		field, err := sb.buildField(sourceType, m)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}
		field.Name = name
		fields.Set(name, field)
	}
	return fields, nil
}

// registerObject lowers obj into a MetaObject, breaking self-reference
// cycles via outputTypeCache before walking its fields.
func (sb *schemaBuilder) registerObject(obj *Object) error {
	var typ reflect.Type
	if obj.Type != nil {
		typ = reflect.TypeOf(obj.Type)
	}

	if typ != nil {
		if _, ok := sb.outputTypeCache[typ]; ok {
			return nil
		}
		sb.outputTypeCache[typ] = obj.Name
	}

	fields, err := sb.buildFields(typ, obj.Methods, obj.fieldOrder)
	if err != nil {
		return err
	}

	sb.registry.CreateNamed(obj.Name, func(*graphql.Registry) graphql.MetaType {
		return &graphql.MetaObject{
			Name:        obj.Name,
			Description: obj.Description,
			Fields:      fields,
		}
	})

	for _, ifaceName := range obj.interfaces {
		sb.registry.AddImplements(obj.Name, ifaceName)
	}
	if obj.key != "" {
		sb.registry.AddKeys(obj.Name, obj.key)
	}

	return nil
}

// registerInterface lowers iface into a MetaInterface. Its PossibleTypes are
// filled in once all objects have been registered (see Schema.Build), since
// an interface's conformance set is discovered from its implementers, not
// declared by the interface itself.
func (sb *schemaBuilder) registerInterface(iface *InterfaceObj) error {
	typ := iface.Struct
	if _, ok := sb.outputTypeCache[typ]; ok {
		return nil
	}
	sb.outputTypeCache[typ] = iface.Name

	fields, err := sb.buildFields(typ, iface.Methods, iface.fieldOrder)
	if err != nil {
		return err
	}

	sb.registry.CreateNamed(iface.Name, func(*graphql.Registry) graphql.MetaType {
		return &graphql.MetaInterface{
			Name:          iface.Name,
			Description:   iface.Description,
			Fields:        fields,
			PossibleTypes: make(map[string]struct{}),
		}
	})
	return nil
}

// getOutputType resolves typ's type reference for use as a field's return
// type, applying the pointer-means-nullable convention: a pointer Go type's
// reference is bare, a non-pointer Go type's reference is wrapped NonNull.
func (sb *schemaBuilder) getOutputType(typ reflect.Type) (string, error) {
	if typ.Kind() == reflect.Ptr {
		return sb.getOutputTypeInner(typ.Elem())
	}
	inner, err := sb.getOutputTypeInner(typ)
	if err != nil {
		return "", err
	}
	return inner + "!", nil
}

// getOutputTypeInner resolves typ's bare (no NonNull modifier) type
// reference.
func (sb *schemaBuilder) getOutputTypeInner(typ reflect.Type) (string, error) {
	if sb.enumMappings[typ] != nil {
		return sb.registerEnum(typ), nil
	}

	if isScalarType(typ) {
		name := scalars[typ]
		parser := scalarArgParsers[typ]
		sb.registry.CreateNamed(name, func(*graphql.Registry) graphql.MetaType {
			return &graphql.MetaScalar{
				Name:           name,
				SpecifiedByURL: getScalarSpecifiedByURL(typ),
				IsValid: func(v graphql.Value) bool {
					return parser != nil && parser.FromJSON(v, reflect.New(typ).Elem()) == nil
				},
			}
		})
		return name, nil
	}

	if typ.Kind() == reflect.Slice {
		elemRef, err := sb.getOutputType(typ.Elem())
		if err != nil {
			return "", err
		}
		return "[" + elemRef + "]", nil
	}

	if typ.Kind() == reflect.Struct {
		if name, ok := sb.outputTypeCache[typ]; ok {
			return name, nil
		}
		if obj, ok := sb.objects[typ]; ok {
			if err := sb.registerObject(obj); err != nil {
				return "", err
			}
			return obj.Name, nil
		}
		if hasUnionMarkerEmbedded(typ) {
			return sb.registerUnion(typ)
		}
		return "", fmt.Errorf("%s is not registered as an object", typ.Name())
	}

	return "", fmt.Errorf("%s has no graphql output representation", typ.Name())
}

// hasUnionMarkerEmbedded determines if a struct has an embedded
// schemabuilder.Union, marking it as a one-hot union wrapper.
func hasUnionMarkerEmbedded(typ reflect.Type) bool {
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.Anonymous && field.Type == unionType {
			return true
		}
	}
	return false
}

// registerUnion lowers a one-hot union wrapper struct (an embedded Union
// marker plus one pointer field per possible member) into a MetaUnion.
func (sb *schemaBuilder) registerUnion(typ reflect.Type) (string, error) {
	name := typ.Name()
	sb.outputTypeCache[typ] = name

	possible := make(map[string]struct{})
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.Anonymous && field.Type == unionType {
			continue
		}
		if field.Type.Kind() != reflect.Ptr {
			return "", fmt.Errorf("union %s: member field %s must be a pointer", name, field.Name)
		}
		memberRef, err := sb.getOutputTypeInner(field.Type.Elem())
		if err != nil {
			return "", fmt.Errorf("union %s: %w", name, err)
		}
		possible[memberRef] = struct{}{}
	}

	sb.registry.CreateNamed(name, func(*graphql.Registry) graphql.MetaType {
		return &graphql.MetaUnion{Name: name, PossibleTypes: possible}
	})
	return name, nil
}
