package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Roles stored on a user document. Role is absent for plain users created
// through social sign-in, so readers must default to RoleUser.
const (
	RoleUser   = "user"
	RoleVendor = "vendor"
	RoleAdmin  = "admin"
)

type User struct {
	ID    primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name  string             `json:"name" bson:"name"`
	Email string             `json:"email" bson:"email" binding:"required"`
	Role  string             `json:"role,omitempty" bson:"role,omitempty"`
}

// EffectiveRole returns the stored role, defaulting to "user".
func (u *User) EffectiveRole() string {
	if u == nil || u.Role == "" {
		return RoleUser
	}
	return u.Role
}
