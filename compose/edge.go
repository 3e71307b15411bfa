package compose

import "go.appointy.com/gqlcore/graphql"

// EdgeExtension is implemented by a type contributing additional fields to
// an Edge alongside its required node/cursor pair — the Go counterpart of
// a connection edge's caller-supplied extension fields (e.g. per-edge
// metadata specific to one connection).
type EdgeExtension interface {
	Lifted
	// Fields returns the extension's own field descriptors.
	Fields(r *graphql.Registry) *graphql.OrderedMap[graphql.MetaField]
	// ResolveField resolves one of the extension's own fields by name.
	ResolveField(source interface{}, fieldName string) (value interface{}, ok bool)
}

// NoExtension is the EdgeExtension with no fields of its own, for an Edge
// that carries only node and cursor.
type NoExtension struct{}

func (NoExtension) TypeName() string                                              { return "" }
func (NoExtension) QualifiedTypeName() string                                     { return "" }
func (NoExtension) Describe(*graphql.Registry) string                             { return "" }
func (NoExtension) Fields(*graphql.Registry) *graphql.OrderedMap[graphql.MetaField] {
	return graphql.NewOrderedMap[graphql.MetaField]()
}
func (NoExtension) ResolveField(interface{}, string) (interface{}, bool) { return nil, false }

// Edge wraps a node value of type T with an opaque pagination cursor and,
// optionally, extension fields of type E — a connection edge. Its
// registered type name is the node's own name with an "Edge" suffix.
type Edge[T Lifted, E EdgeExtension] struct {
	Node       T
	Cursor     string
	Extensions E
}

// NewEdge builds an Edge around node and cursor, with no extension fields.
func NewEdge[T Lifted](node T, cursor string) Edge[T, NoExtension] {
	return Edge[T, NoExtension]{Node: node, Cursor: cursor}
}

// NewEdgeWithExtensions builds an Edge carrying additional fields beyond
// node/cursor.
func NewEdgeWithExtensions[T Lifted, E EdgeExtension](node T, cursor string, ext E) Edge[T, E] {
	return Edge[T, E]{Node: node, Cursor: cursor, Extensions: ext}
}

func (e Edge[T, E]) edgeName() string {
	var zero T
	return zero.TypeName() + "Edge"
}

func (e Edge[T, E]) TypeName() string          { return e.edgeName() }
func (e Edge[T, E]) QualifiedTypeName() string { return e.edgeName() + "!" }

// Describe registers the edge object type: a "node" field typed as T, a
// non-null "cursor" field typed as String, and any fields E contributes,
// in that order — matching the field order a connection edge presents.
func (e Edge[T, E]) Describe(r *graphql.Registry) string {
	name := e.edgeName()
	r.CreateNamed(name, func(r *graphql.Registry) graphql.MetaType {
		var node T
		var ext E
		nodeType := node.Describe(r)

		fields := graphql.NewOrderedMap[graphql.MetaField]()
		fields.Set("node", graphql.MetaField{
			Name:        "node",
			Description: "The item at the end of the edge.",
			Type:        nodeType,
			Args:        graphql.NewOrderedMap[graphql.MetaInputValue](),
		})
		fields.Set("cursor", graphql.MetaField{
			Name:        "cursor",
			Description: "A cursor for use in pagination.",
			Type:        "String!",
			Args:        graphql.NewOrderedMap[graphql.MetaInputValue](),
		})
		fields.Extend(ext.Fields(r))

		return &graphql.MetaObject{Name: name, Fields: fields}
	})
	return name + "!"
}

// ResolveField resolves "node" and "cursor" directly against the edge
// itself; any other field name is delegated to the extension value.
func (e Edge[T, E]) ResolveField(fieldName string) (interface{}, bool) {
	switch fieldName {
	case "node":
		return e.Node, true
	case "cursor":
		return e.Cursor, true
	default:
		return e.Extensions.ResolveField(e, fieldName)
	}
}
