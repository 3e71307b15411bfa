// Package compose provides generic wrapper types that lift an inner
// registrable type into a derived schema shape — nullable, list, ordered
// set, merged object, connection edge — without requiring the inner type
// to know about the wrapper.
package compose

import "go.appointy.com/gqlcore/graphql"

// Lifted is implemented by a type usable as the inner type parameter of any
// wrapper in this package. TypeName/QualifiedTypeName must be safe to call
// on the zero value, and Describe must be safe to call with a nil Registry
// reference only during the placeholder phase — in practice Describe
// always receives a live Registry by the time it is invoked.
type Lifted interface {
	graphql.Registrar
	// Describe builds and registers this type's own MetaType, returning the
	// type reference string a field of this type should use.
	Describe(r *graphql.Registry) string
}

// Option wraps an inner type to mark it nullable: present with a value, or
// absent. Like List and Set, Option registers no wrapper type of its own,
// and unlike them it adds no modifier to the type reference — GraphQL expresses
// nullability by the absence of the NonNull modifier, not by a distinct
// type, so Option[T]'s qualified type name is simply T's bare (nullable)
// reference.
type Option[T Lifted] struct {
	Value T
	Valid bool
}

// Some returns a populated Option.
func Some[T Lifted](value T) Option[T] {
	return Option[T]{Value: value, Valid: true}
}

// None returns an absent Option.
func None[T Lifted]() Option[T] {
	var zero Option[T]
	return zero
}

// TypeName reports the inner type's bare name, unchanged.
func (o Option[T]) TypeName() string {
	var zero T
	return zero.TypeName()
}

// QualifiedTypeName reports the inner type's nullable reference: Option
// never adds a NonNull modifier, regardless of what the inner type's own
// QualifiedTypeName would otherwise return.
func (o Option[T]) QualifiedTypeName() string {
	var zero T
	return zero.TypeName()
}

// Describe registers the inner type (if not already registered) and
// returns its nullable reference.
func (o Option[T]) Describe(r *graphql.Registry) string {
	var zero T
	zero.Describe(r)
	return zero.TypeName()
}

// Resolve returns the wrapped value, or nil if absent — the shape a
// Resolver should return for a field typed as Option[T].
func (o Option[T]) Resolve() interface{} {
	if !o.Valid {
		return nil
	}
	return o.Value
}

// ParseOption builds an Option from a raw decoded value: nil means absent,
// any other value is parsed by parseInner (typically the inner type's own
// parser) and wrapped as present.
func ParseOption[T Lifted](raw interface{}, parseInner func(interface{}) (T, error)) (Option[T], error) {
	if raw == nil {
		return None[T](), nil
	}
	value, err := parseInner(raw)
	if err != nil {
		return Option[T]{}, err
	}
	return Some(value), nil
}
