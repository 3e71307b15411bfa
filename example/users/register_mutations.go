package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.appointy.com/gqlcore/schemabuilder"
)

// RegisterCreateUserMutation registers createUser, which appends a new User
// seeded from CreateUserInput.
func RegisterCreateUserMutation(sb *schemabuilder.Schema, s *Server) {
	m := sb.Mutation()

	m.FieldFunc("createUser", func(ctx context.Context, args struct {
		Input CreateUserInput
	}) *User {
		newUser := &User{
			ID:              schemabuilder.ID{Value: uuid.New().String()},
			Name:            args.Input.Name,
			Email:           args.Input.Email,
			Age:             args.Input.Age,
			ReputationScore: args.Input.ReputationScore,
			IsActive:        args.Input.IsActive,
			Role:            args.Input.Role,
			CreatedAt:       time.Now(),
		}
		s.users = append(s.users, newUser)
		return newUser
	})
}

// RegisterContactByMutation registers contactBy, which looks a user up by
// exactly one of email or phone.
func RegisterContactByMutation(sb *schemabuilder.Schema, s *Server) {
	m := sb.Mutation()

	m.FieldFunc("contactBy", func(ctx context.Context, args struct {
		Input *ContactByInput
	}) (*User, error) {
		if args.Input == nil {
			return nil, errors.New("input required")
		}
		var matchEmail, matchPhone string
		if args.Input.Email != nil {
			matchEmail = *args.Input.Email
		}
		if args.Input.Phone != nil {
			matchPhone = *args.Input.Phone
		}
		for _, u := range s.users {
			if (matchEmail != "" && u.Email == matchEmail) || (matchPhone != "" && u.Email == matchPhone) {
				return u, nil
			}
		}
		return nil, fmt.Errorf("user not found by email=%s or phone=%s", matchEmail, matchPhone)
	})
}

// RegisterCreateUserByContactMutation registers createUserByContact, which
// either creates a user from UserInput or updates an existing one looked up
// via IdentifierInput.
func RegisterCreateUserByContactMutation(sb *schemabuilder.Schema, s *Server) {
	m := sb.Mutation()

	m.FieldFunc("createUserByContact", func(ctx context.Context, args struct {
		Input CreateUserByContactInput
	}) (*User, error) {
		id := args.Input.Identifier
		var existing *User
		for _, u := range s.users {
			if id.ID != nil && u.ID.Value == id.ID.Value {
				existing = u
				break
			}
			if id.Email != nil && u.Email == *id.Email {
				existing = u
				break
			}
		}
		if existing == nil && id.ID == nil && id.Email == nil {
			return nil, errors.New("identifier required")
		}

		in := args.Input.UserInput
		if existing != nil {
			existing.Name = in.Name
			existing.Email = in.Email
			existing.Age = in.Age
			existing.ReputationScore = in.ReputationScore
			existing.IsActive = in.IsActive
			existing.Role = in.Role
			return existing, nil
		}

		newUser := &User{
			ID:              schemabuilder.ID{Value: uuid.New().String()},
			Name:            in.Name,
			Email:           in.Email,
			Age:             in.Age,
			ReputationScore: in.ReputationScore,
			IsActive:        in.IsActive,
			Role:            in.Role,
			CreatedAt:       time.Now(),
		}
		s.users = append(s.users, newUser)
		return newUser, nil
	})
}

// RegisterMutation registers every mutation field against the shared
// Mutation root.
func RegisterMutation(sb *schemabuilder.Schema, s *Server) {
	RegisterCreateUserMutation(sb, s)
	RegisterContactByMutation(sb, s)
	RegisterCreateUserByContactMutation(sb, s)
}
