package users

import "go.appointy.com/gqlcore/schemabuilder"

// RegisterCreateUserInput registers the input for createUser, including a
// deprecated age field.
func RegisterCreateUserInput(sb *schemabuilder.Schema) {
	input := sb.InputObject("CreateUserInput", CreateUserInput{}, schemabuilder.WithDescription("Input for creating a new user (supports name, email, role etc; age field deprecated for legacy)."))

	input.FieldFunc("name", func(target *CreateUserInput, source string) { target.Name = source }, schemabuilder.FieldDesc("Name of the user."))
	input.FieldFunc("email", func(target *CreateUserInput, source string) { target.Email = source }, schemabuilder.FieldDesc("Email address."))
	input.FieldFunc("age", func(target *CreateUserInput, source int32) { target.Age = source }, schemabuilder.FieldDesc("Age in years (deprecated)."), schemabuilder.Deprecated("Use birthdate instead"))
	input.FieldFunc("reputation", func(target *CreateUserInput, source float64) { target.ReputationScore = source }, schemabuilder.FieldDesc("Reputation score."))
	input.FieldFunc("isActive", func(target *CreateUserInput, source bool) { target.IsActive = source }, schemabuilder.FieldDesc("Whether the user is active."))
	input.FieldFunc("role", func(target *CreateUserInput, source Role) { target.Role = source }, schemabuilder.FieldDesc("User role."))
}

// RegisterIdentifierInput registers the oneOf input used to look an existing
// user up by exactly one of ID or email.
func RegisterIdentifierInput(sb *schemabuilder.Schema) {
	identifierInput := sb.InputObject("IdentifierInput", IdentifierInput{}, schemabuilder.WithDescription("OneOf identifier: exactly one of ID or email."))
	identifierInput.MarkOneOf()
	identifierInput.FieldFunc("id", func(target *IdentifierInput, source *schemabuilder.ID) { target.ID = source }, schemabuilder.FieldDesc("User ID to identify an existing user."))
	identifierInput.FieldFunc("email", func(target *IdentifierInput, source *string) { target.Email = source }, schemabuilder.FieldDesc("Email address to identify an existing user."))
}

// RegisterUserInput registers the input carrying a user's editable fields.
func RegisterUserInput(sb *schemabuilder.Schema) {
	userInput := sb.InputObject("UserInput", UserInput{}, schemabuilder.WithDescription("User fields for creation (name, email etc)."))
	userInput.FieldFunc("name", func(target *UserInput, source string) { target.Name = source }, schemabuilder.FieldDesc("Name of the user."))
	userInput.FieldFunc("email", func(target *UserInput, source string) { target.Email = source }, schemabuilder.FieldDesc("Email address."))
	userInput.FieldFunc("age", func(target *UserInput, source int32) { target.Age = source }, schemabuilder.FieldDesc("Age in years."))
	userInput.FieldFunc("reputation", func(target *UserInput, source float64) { target.ReputationScore = source }, schemabuilder.FieldDesc("Reputation score."))
	userInput.FieldFunc("isActive", func(target *UserInput, source bool) { target.IsActive = source }, schemabuilder.FieldDesc("Whether the user is active."))
	userInput.FieldFunc("role", func(target *UserInput, source Role) { target.Role = source }, schemabuilder.FieldDesc("User role."))
}

// RegisterCreateUserByContactInput registers the composite input for
// createUserByContact: an identifier oneOf plus the user fields to apply.
func RegisterCreateUserByContactInput(sb *schemabuilder.Schema) {
	contactInput := sb.InputObject("CreateUserByContactInput", CreateUserByContactInput{}, schemabuilder.WithDescription("Create or update a user by identifier (oneOf id/email) and user fields."))
	contactInput.FieldFunc("identifier", func(target *CreateUserByContactInput, source IdentifierInput) { target.Identifier = source }, schemabuilder.FieldDesc("Identifier input payload."))
	contactInput.FieldFunc("userInput", func(target *CreateUserByContactInput, source UserInput) { target.UserInput = source }, schemabuilder.FieldDesc("User input payload."))
}

// RegisterInputs registers every input object type.
func RegisterInputs(sb *schemabuilder.Schema) {
	RegisterCreateUserInput(sb)
	RegisterIdentifierInput(sb)
	RegisterUserInput(sb)
	RegisterCreateUserByContactInput(sb)
}
