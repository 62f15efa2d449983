package entity

// Roles stored on the user document. Missing roles read as RoleUser.
const (
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)
