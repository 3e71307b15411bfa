package users

import (
	"time"

	"go.appointy.com/gqlcore/schemabuilder"
)

// RegisterObjects registers every output object type.
func RegisterObjects(sb *schemabuilder.Schema) {
	user := sb.Object("User", User{}, "User payload representing a person in the system.")
	user.Key("id")

	user.FieldFunc("id", func(u *User) schemabuilder.ID { return u.ID }, "Unique identifier for the user.")
	user.FieldFunc("name", func(u *User) string { return u.Name }, "Full name of the user.")
	user.FieldFunc("email", func(u *User) string { return u.Email }, "Email address.")
	user.FieldFunc("age", func(u *User) int32 { return u.Age }, "Age in years.")
	user.FieldFunc("reputation", func(u *User) float64 { return u.ReputationScore }, "Reputation score (0-10).")
	user.FieldFunc("isActive", func(u *User) bool { return u.IsActive }, "Whether the user is active.")
	user.FieldFunc("role", func(u *User) Role { return u.Role }, "User role (ADMIN/MEMBER/GUEST).")
	user.FieldFunc("createdAt", func(u *User) time.Time { return u.CreatedAt }, "Account creation timestamp.")
}