package users

import (
	"go.appointy.com/gqlcore/graphql"
	"go.appointy.com/gqlcore/introspection"
	"go.appointy.com/gqlcore/schemabuilder"
)

// BuildRegistry reflects the users example's full schema (scalars through
// subscriptions) into a graphql.Registry, with introspection wired onto the
// query root. Callers that need to serve it still have to bring their own
// executor and transport.
func BuildRegistry() (*graphql.Registry, error) {
	sb := schemabuilder.NewSchema()
	server := NewServer()

	RegisterSchema(sb, server)

	registry, err := sb.Build()
	if err != nil {
		return nil, err
	}

	if err := registerUsersConnection(registry, server); err != nil {
		return nil, err
	}

	if err := introspection.AddIntrospectionToRegistry(registry); err != nil {
		return nil, err
	}

	return registry, nil
}
