package users

import "go.appointy.com/gqlcore/schemabuilder"

// RegisterEnums registers every enum type.
func RegisterEnums(sb *schemabuilder.Schema) {
	sb.Enum(RoleMember, []schemabuilder.EnumValue{
		{Symbol: "ADMIN", Value: RoleAdmin},
		{Symbol: "MEMBER", Value: RoleMember},
		{Symbol: "GUEST", Value: RoleGuest},
	}, "Role for user access control (ADMIN full, MEMBER standard, GUEST limited).")
}
