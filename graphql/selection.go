package graphql

import "context"

// The executor and parser are external collaborators; the registry only
// needs to know the shape of a parsed selection well enough to hand it to a
// Resolver. Query parsing and execution are out of this core's scope.

// BatchResolver computes the value of a field for a slice of sources at
// once, for resolvers that prefer to batch their backend calls.
type BatchResolver func(ctx context.Context, sources []interface{}, args interface{}, selectionSet *SelectionSet) ([]interface{}, error)

// SelectionSet represents a parsed GraphQL selection: a list of field
// selections plus any fragment spreads.
type SelectionSet struct {
	Selections []*Selection
	Fragments  []*FragmentSpread
}

// Selection is one field selection within a SelectionSet.
type Selection struct {
	Name         string
	Alias        string
	Args         interface{}
	SelectionSet *SelectionSet
	Directives   []*Directive
}

// FragmentDefinition is a reusable named selection set.
type FragmentDefinition struct {
	Name         string
	On           string
	SelectionSet *SelectionSet
}

// FragmentSpread is a use of a FragmentDefinition at a particular location,
// with that location's own directives.
type FragmentSpread struct {
	Fragment   *FragmentDefinition
	Directives []*Directive
}

// Directive is a parsed directive usage, e.g. "@include(if: $cond)".
type Directive struct {
	Name string
	Args interface{}
}
