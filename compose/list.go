package compose

import "go.appointy.com/gqlcore/graphql"

// List wraps an inner type as a non-null GraphQL list whose elements use
// the inner type's own qualified (possibly non-null) reference — list
// nullability of the elements is decided by the inner type, not by List
// itself. Wrap T in Option first (List[Option[T]]) for a list of nullable
// elements.
type List[T Lifted] struct {
	Values []T
}

// NewList wraps a slice as a List.
func NewList[T Lifted](values []T) List[T] {
	return List[T]{Values: values}
}

// TypeName is the bracketed element reference, e.g. "[Int!]".
func (l List[T]) TypeName() string {
	var zero T
	return "[" + zero.QualifiedTypeName() + "]"
}

// QualifiedTypeName is the non-null list reference, e.g. "[Int!]!". Lists
// produced by this package are always non-null; wrap in Option[List[T]]
// for a nullable list.
func (l List[T]) QualifiedTypeName() string {
	return l.TypeName() + "!"
}

// Describe registers the element type and returns the list's own qualified
// (non-null) reference.
func (l List[T]) Describe(r *graphql.Registry) string {
	var zero T
	zero.Describe(r)
	return l.QualifiedTypeName()
}

// Resolve returns the element values in their stored order, the shape a
// Resolver should return for a field typed as List[T].
func (l List[T]) Resolve() interface{} {
	return l.Values
}

// ParseList builds a List from a raw decoded value. A bare (non-slice)
// value is wrapped as a single-element list, matching the permissive
// single-value-as-list coercion GraphQL input grants list types.
func ParseList[T Lifted](raw interface{}, parseInner func(interface{}) (T, error)) (List[T], error) {
	items, ok := raw.([]interface{})
	if !ok {
		value, err := parseInner(raw)
		if err != nil {
			return List[T]{}, err
		}
		return List[T]{Values: []T{value}}, nil
	}
	values := make([]T, 0, len(items))
	for _, item := range items {
		value, err := parseInner(item)
		if err != nil {
			return List[T]{}, err
		}
		values = append(values, value)
	}
	return List[T]{Values: values}, nil
}
