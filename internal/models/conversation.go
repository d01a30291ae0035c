package models

// Role tags a conversation turn with its author.
type Role string

const (
	RoleStudent Role = "student"
	RoleMentor  Role = "mentor"
	RoleSystem  Role = "system"
)

// Turn is a single entry in the tutoring transcript. History order is
// significant: it is replayed verbatim to the model as conversational
// context.
type Turn struct {
	Role    Role
	Content string
}
