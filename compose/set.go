package compose

import (
	"sort"

	"go.appointy.com/gqlcore/graphql"
)

// Set wraps an inner type as a GraphQL list, same as List, but maintains
// its elements deduplicated and sorted by their own Less ordering rather
// than by insertion order — the Go counterpart of an ordered-set list
// type: the wire shape is identical to List, only the construction
// discipline differs.
type Set[T Lifted] struct {
	values []T
	less   func(a, b T) bool
	key    func(T) interface{}
}

// NewSet builds a Set from values, deduplicating by key and ordering by
// less. Both functions are supplied explicitly because Lifted does not
// itself require comparability or ordering — composition wrappers built
// from Option/List/Edge elements have no natural Go-level order.
func NewSet[T Lifted](values []T, key func(T) interface{}, less func(a, b T) bool) Set[T] {
	seen := make(map[interface{}]struct{}, len(values))
	deduped := make([]T, 0, len(values))
	for _, v := range values {
		k := key(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		deduped = append(deduped, v)
	}
	sort.Slice(deduped, func(i, j int) bool { return less(deduped[i], deduped[j]) })
	return Set[T]{values: deduped, less: less, key: key}
}

// TypeName is the bracketed element reference, identical to List[T]'s.
func (s Set[T]) TypeName() string {
	var zero T
	return "[" + zero.QualifiedTypeName() + "]"
}

// QualifiedTypeName is the non-null list reference.
func (s Set[T]) QualifiedTypeName() string {
	return s.TypeName() + "!"
}

// Describe registers the element type and returns the set's qualified
// (non-null) reference.
func (s Set[T]) Describe(r *graphql.Registry) string {
	var zero T
	zero.Describe(r)
	return s.QualifiedTypeName()
}

// Resolve returns the deduplicated, ordered elements, the shape a Resolver
// should return for a field typed as Set[T].
func (s Set[T]) Resolve() interface{} {
	return s.values
}

// Values returns the set's elements in canonical order.
func (s Set[T]) Values() []T {
	return s.values
}

// Insert returns a new Set with value inserted, replacing any existing
// element with the same key.
func (s Set[T]) Insert(value T) Set[T] {
	k := s.key(value)
	next := make([]T, 0, len(s.values)+1)
	replaced := false
	for _, v := range s.values {
		if s.key(v) == k {
			next = append(next, value)
			replaced = true
			continue
		}
		next = append(next, v)
	}
	if !replaced {
		next = append(next, value)
	}
	sort.Slice(next, func(i, j int) bool { return s.less(next[i], next[j]) })
	return Set[T]{values: next, less: s.less, key: s.key}
}
