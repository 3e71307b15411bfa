package graphql

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

const (
	anyScalarName      = "_Any"
	serviceTypeName     = "_Service"
	entityUnionName     = "_Entity"
	serviceFieldName    = "_service"
	entitiesFieldName   = "_entities"
)

// HasEntities reports whether any registered Object or Interface carries a
// non-empty Keys list.
func (r *Registry) HasEntities() bool {
	found := false
	r.Types.Range(func(_ string, t MetaType) bool {
		switch v := t.(type) {
		case *MetaObject:
			if len(v.Keys) > 0 {
				found = true
			}
		case *MetaInterface:
			if len(v.Keys) > 0 {
				found = true
			}
		}
		return !found
	})
	return found
}

func (r *Registry) entityTypeNames() []string {
	var names []string
	r.Types.Range(func(_ string, t MetaType) bool {
		switch v := t.(type) {
		case *MetaObject:
			if len(v.Keys) > 0 {
				names = append(names, v.Name)
			}
		case *MetaInterface:
			if len(v.Keys) > 0 {
				names = append(names, v.Name)
			}
		}
		return true
	})
	sort.Strings(names)
	return names
}

// CreateFederationTypes synthesizes the Apollo-style federation surface
//: the _Any scalar, the _Service object, the _Entity
// union over every entity's name, and the query root's _service/_entities
// fields, inserted in that order after any pre-existing fields. It is a
// no-op unless HasEntities() is true, and it only touches the query root if
// that root exists and is an Object.
func (r *Registry) CreateFederationTypes() {
	if !r.HasEntities() {
		return
	}

	r.createTypeByName(anyScalarName, func(*Registry) MetaType {
		return &MetaScalar{
			Name:        anyScalarName,
			Description: "A federation representation of an entity, keyed by its __typename and key fields.",
			IsValid:     func(Value) bool { return true },
		}
	})

	r.createTypeByName(serviceTypeName, func(*Registry) MetaType {
		fields := NewOrderedMap[MetaField]()
		fields.Set("sdl", MetaField{Name: "sdl", Type: "String", Args: NewOrderedMap[MetaInputValue]()})
		return &MetaObject{
			Name:   serviceTypeName,
			Fields: fields,
		}
	})

	entities := r.entityTypeNames()
	possible := make(map[string]struct{}, len(entities))
	for _, name := range entities {
		possible[name] = struct{}{}
	}
	r.Types.Set(entityUnionName, &MetaUnion{
		Name:          entityUnionName,
		PossibleTypes: possible,
	})

	t, ok := r.Types.Get(r.QueryType)
	if !ok {
		return
	}
	root, ok := t.(*MetaObject)
	if !ok {
		return
	}

	root.Fields.Set(serviceFieldName, MetaField{
		Name: serviceFieldName,
		Type: serviceTypeName + "!",
		Args: NewOrderedMap[MetaInputValue](),
	})

	entitiesArgs := NewOrderedMap[MetaInputValue]()
	entitiesArgs.Set("representations", MetaInputValue{
		Name: "representations",
		Type: "[" + anyScalarName + "!]!",
	})
	root.Fields.Set(entitiesFieldName, MetaField{
		Name: entitiesFieldName,
		Type: "[" + entityUnionName + "]!",
		Args: entitiesArgs,
	})
}

// KeyManifest is a YAML-loadable declaration of federation keys for types
// registered without an inline AddKeys call — e.g. keys owned by a
// separately versioned contract file rather than application code. The
// format is a flat map of GraphQL type name to its list of key field-sets:
//
//	User:
//	  - id
//	Product:
//	  - sku
//	  - upc
type KeyManifest map[string][]string

// LoadKeyManifest parses a YAML key manifest and applies every entry via
// AddKeys, in the manifest's own map order (Go map iteration order is
// unspecified, so callers that need determinism should sort beforehand;
// AddKeys itself is commutative per type).
func (r *Registry) LoadKeyManifest(data []byte) error {
	var manifest KeyManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return fmt.Errorf("graphql: parsing federation key manifest: %w", err)
	}
	for typeName, keys := range manifest {
		for _, key := range keys {
			r.AddKeys(typeName, key)
		}
	}
	return nil
}
