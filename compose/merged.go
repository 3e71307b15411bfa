package compose

import "go.appointy.com/gqlcore/graphql"

// Mergeable is an object-like Lifted type that can contribute fields to a
// Merged composite and resolve a field by name against its own source
// value.
type Mergeable interface {
	Lifted
	// Fields returns this type's own field descriptors, keyed by name, to
	// be folded into the merged object's field set.
	Fields(r *graphql.Registry) *graphql.OrderedMap[graphql.MetaField]
	// ResolveField attempts to resolve fieldName against source, returning
	// ok=false if this type does not own that field so the caller can try
	// the next source in the chain.
	ResolveField(source interface{}, fieldName string) (value interface{}, ok bool)
}

// Tail terminates a Merged chain: it contributes no fields and resolves
// nothing, mirroring an empty tuple tail.
type Tail struct{}

func (Tail) TypeName() string                                              { return "" }
func (Tail) QualifiedTypeName() string                                     { return "" }
func (Tail) Describe(*graphql.Registry) string                             { return "" }
func (Tail) Fields(*graphql.Registry) *graphql.OrderedMap[graphql.MetaField] {
	return graphql.NewOrderedMap[graphql.MetaField]()
}
func (Tail) ResolveField(interface{}, string) (interface{}, bool) { return nil, false }

// Merged composes two object-like sources into a single GraphQL object
// type registered under Name, with A's fields taking precedence over
// B's on a name collision. Chain further sources by nesting:
// Merged[A, Merged[B, Merged[C, Tail]]]. Field resolution tries A first,
// then falls through to B only if A does not own that field — the same
// first-match-wins dispatch a merged-object codegen would generate.
type Merged[A, B Mergeable] struct {
	Name string
	A    A
	B    B
}

// NewMerged builds a Merged composite under the given registered type name.
func NewMerged[A, B Mergeable](name string, a A, b B) Merged[A, B] {
	return Merged[A, B]{Name: name, A: a, B: b}
}

func (m Merged[A, B]) TypeName() string          { return m.Name }
func (m Merged[A, B]) QualifiedTypeName() string { return m.Name + "!" }

// Describe registers the merged object type, folding A's field set and
// then B's (A's entries win on collision, both in order and in value) via
// the shared cycle-safe registration protocol.
func (m Merged[A, B]) Describe(r *graphql.Registry) string {
	name := m.Name
	build := func(r *graphql.Registry) graphql.MetaType {
		fields := graphql.NewOrderedMap[graphql.MetaField]()
		var a A
		var b B
		aFields := a.Fields(r)
		aFields.Range(func(fieldName string, f graphql.MetaField) bool {
			fields.Set(fieldName, f)
			return true
		})
		bFields := b.Fields(r)
		bFields.Range(func(fieldName string, f graphql.MetaField) bool {
			if fields.Has(fieldName) {
				return true
			}
			fields.Set(fieldName, f)
			return true
		})
		return &graphql.MetaObject{Name: name, Fields: fields}
	}
	r.CreateNamed(name, build)
	return name + "!"
}

// Fields returns the folded field set without registering it, for use by
// an outer Merged wrapping this one in a longer chain.
func (m Merged[A, B]) Fields(r *graphql.Registry) *graphql.OrderedMap[graphql.MetaField] {
	fields := graphql.NewOrderedMap[graphql.MetaField]()
	m.A.Fields(r).Range(func(name string, f graphql.MetaField) bool {
		fields.Set(name, f)
		return true
	})
	m.B.Fields(r).Range(func(name string, f graphql.MetaField) bool {
		if fields.Has(name) {
			return true
		}
		fields.Set(name, f)
		return true
	})
	return fields
}

// ResolveField tries A first; if A does not own fieldName, falls through to
// B. Neither source seeing the resolved value as a typed nesting of
// itself — both operate directly on the composite's own source value, so
// the caller is expected to pass the same source to both sides
// (mirroring a merged object's "each source is independently constructed
// from shared context" dispatch).
func (m Merged[A, B]) ResolveField(source interface{}, fieldName string) (interface{}, bool) {
	if value, ok := m.A.ResolveField(source, fieldName); ok {
		return value, true
	}
	return m.B.ResolveField(source, fieldName)
}
