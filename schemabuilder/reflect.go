package schemabuilder

import (
	"context"
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"

	"go.appointy.com/gqlcore/graphql"
)

// graphQLFieldInfo contains basic struct field information related to GraphQL.
type graphQLFieldInfo struct {
	// Skipped indicates that this field should not be included in GraphQL.
	Skipped bool

	// Name is the GraphQL field name that should be exposed for this field.
	Name string

	// KeyField records the `key` tag option. Nothing in the builder reads
	// it: federation keys come only from Object.Key.
	KeyField bool

	// OptionalInputField records the `optional` tag option. Nothing in the
	// builder reads it: input field nullability follows the Go type alone.
	OptionalInputField bool

	// DeprecationReason if set marks the field deprecated, parsed from
	// a tag option like `graphql:"age,deprecated=Use birthdate"`.
	DeprecationReason string

	// Description is parsed from a tag option like
	// `graphql:"name,description=Fetch by ID"`.
	Description string
}

// parseGraphQLFieldInfo parses a struct field's graphql tag, falling back
// to its json tag when no graphql tag is present, and skips unexported
// fields.
func parseGraphQLFieldInfo(field reflect.StructField) (*graphQLFieldInfo, error) {
	if field.PkgPath != "" { // unexported
		return &graphQLFieldInfo{Skipped: true}, nil
	}

	tag := field.Tag.Get("graphql")
	if tag == "" {
		tag = field.Tag.Get("json")
	}
	tags := strings.Split(tag, ",")
	name := strings.TrimSpace(tags[0])
	if name == "-" {
		return &graphQLFieldInfo{Skipped: true}, nil
	}
	if name == "" {
		name = makeGraphql(field.Name)
	}

	var key, optional bool
	var depReason, description string
	for _, opt := range tags[1:] {
		opt = strings.TrimSpace(opt)
		switch {
		case strings.HasPrefix(opt, "deprecated="):
			depReason = strings.TrimPrefix(opt, "deprecated=")
		case strings.HasPrefix(opt, "description="):
			description = strings.TrimPrefix(opt, "description=")
		case opt == "key":
			key = true
		case opt == "optional":
			optional = true
		}
	}

	return &graphQLFieldInfo{
		Name:               name,
		KeyField:           key,
		OptionalInputField: optional,
		DeprecationReason:  depReason,
		Description:        description,
	}, nil
}

// makeGraphql converts a field name "MyField" into a graphQL field name "myField".
func makeGraphql(s string) string {
	return strcase.ToLowerCamel(s)
}

// Common Types that we will need to perform type assertions against.
var errType = reflect.TypeOf((*error)(nil)).Elem()
var contextType = reflect.TypeOf((*context.Context)(nil)).Elem()
var selectionSetType = reflect.TypeOf(&graphql.SelectionSet{})
