package users

import (
	"context"
	"fmt"

	"go.appointy.com/gqlcore/schemabuilder"
)

// RegisterQuery registers every query field against the shared Query root.
func RegisterQuery(sb *schemabuilder.Schema, s *Server) {
	q := sb.Query()

	q.FieldFunc("me", func(ctx context.Context) *User {
		if len(s.users) > 0 {
			return s.users[0]
		}
		return nil
	})

	q.FieldFunc("user", func(ctx context.Context, args struct {
		ID schemabuilder.ID
	}) (*User, error) {
		for _, u := range s.users {
			if u.ID.Value == args.ID.Value {
				return u, nil
			}
		}
		return nil, fmt.Errorf("user not found")
	})

	q.FieldFunc("allUsers", func(ctx context.Context) []*User {
		return s.users
	})
}
