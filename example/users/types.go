package users

import (
	"time"

	"go.appointy.com/gqlcore/schemabuilder"
)

// User is the output payload representing a person in the system.
type User struct {
	ID              schemabuilder.ID `graphql:"id"`
	Name            string           `graphql:"name"`
	Email           string           `graphql:"email"`
	Age             int32            `graphql:"age"`
	ReputationScore float64          `graphql:"reputation"`
	IsActive        bool             `graphql:"isActive"`
	Role            Role             `graphql:"role"`
	CreatedAt       time.Time        `graphql:"createdAt"`
}

// Role is a user's access level.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
	RoleGuest  Role = "GUEST"
)

// CreateUserInput is the input for createUser.
type CreateUserInput struct {
	Name  string
	Email string
	Age   int32 `json:"age" graphql:",deprecated=Use birthdate instead"`

	ReputationScore float64
	IsActive        bool
	Role            Role
}

// ContactByInput identifies a user by exactly one of email or phone.
type ContactByInput struct {
	schemabuilder.OneOfInput

	Email *string
	Phone *string
}

// IdentifierInput identifies an existing user by exactly one of ID or email.
type IdentifierInput struct {
	schemabuilder.OneOfInput

	ID    *schemabuilder.ID
	Email *string
}

// UserInput carries the fields needed to create a user.
type UserInput struct {
	Name            string
	Email           string
	Age             int32
	ReputationScore float64
	IsActive        bool
	Role            Role
}

// CreateUserByContactInput creates a user identified by IdentifierInput,
// populated from UserInput.
type CreateUserByContactInput struct {
	Identifier IdentifierInput
	UserInput  UserInput
}

// Server is an in-memory user store backing the example's resolvers.
type Server struct {
	users []*User
}

// NewServer creates a Server seeded with one user.
func NewServer() *Server {
	return &Server{
		users: []*User{
			{
				ID:              schemabuilder.ID{Value: "u1"},
				Name:            "John Doe",
				Email:           "jdoe@example.com",
				Age:             30,
				ReputationScore: 9.5,
				IsActive:        true,
				Role:            RoleAdmin,
				CreatedAt:       time.Now(),
			},
		},
	}
}
