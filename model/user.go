package model

// User is keyed by email; Role is "" for a regular account and "admin"
// for an elevated one.
type User struct {
	Email string `bson:"email" json:"email"`
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Role  string `bson:"role,omitempty" json:"role,omitempty"`
}

const RoleAdmin = "admin"

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
