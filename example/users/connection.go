package users

import (
	"context"

	"go.appointy.com/gqlcore/compose"
	"go.appointy.com/gqlcore/graphql"
)

// userNode adapts *User into compose.Lifted so a User can be carried by
// compose.Edge/compose.List without a second reflection pass: the User
// object type is already registered by RegisterObjects, so Describe only
// needs to name that registration.
type userNode struct {
	user *User
}

func (userNode) TypeName() string                  { return "User" }
func (userNode) QualifiedTypeName() string         { return "User!" }
func (userNode) Describe(*graphql.Registry) string { return "User!" }

type userEdge = compose.Edge[userNode, compose.NoExtension]

func toUserEdges(all []*User) []userEdge {
	edges := make([]userEdge, 0, len(all))
	for _, u := range all {
		edges = append(edges, compose.NewEdge[userNode](userNode{user: u}, u.ID.Value))
	}
	return edges
}

// registerUsersConnection adds allUsersConnection to the query root: a
// compose.List of compose.Edge[User], demonstrating the connection-edge
// composition adapter end to end. It runs after sb.Build() because
// compose's Lifted protocol registers itself directly against the
// Registry rather than through schemabuilder's reflection front end.
func registerUsersConnection(r *graphql.Registry, s *Server) error {
	root := r.MustQueryRoot()

	list := compose.NewList(toUserEdges(s.users))
	typeRef := list.Describe(r)

	root.Fields.Set("allUsersConnection", graphql.MetaField{
		Name:        "allUsersConnection",
		Description: "All users as a list of connection edges.",
		Args:        graphql.NewOrderedMap[graphql.MetaInputValue](),
		Type:        typeRef,
		Resolve: func(ctx context.Context, source, args interface{}, sel *graphql.SelectionSet) (interface{}, error) {
			return compose.NewList(toUserEdges(s.users)).Resolve(), nil
		},
	})
	return nil
}
