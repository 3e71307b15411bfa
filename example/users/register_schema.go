package users

import "go.appointy.com/gqlcore/schemabuilder"

// RegisterSchema registers scalars, enums, objects, and inputs before
// queries, mutations, and subscriptions, since the latter reference the
// former by name.
func RegisterSchema(sb *schemabuilder.Schema, s *Server) {
	RegisterScalars(sb)
	RegisterEnums(sb)
	RegisterObjects(sb)
	RegisterInputs(sb)

	RegisterQuery(sb, s)
	RegisterMutation(sb, s)
	RegisterSubscription(sb)
}