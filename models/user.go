package models

import "time"

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleUser    = "user"
)

func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleManager || r == RoleUser
}

// User is an account that can sign in. Password holds the bcrypt hash and is
// never serialized to JSON.
type User struct {
	ID         string     `json:"id" bson:"_id"`
	Username   string     `json:"username" bson:"username"`
	Password   string     `json:"-" bson:"password"`
	Email      string     `json:"email,omitempty" bson:"email,omitempty"`
	FullName   string     `json:"fullName" bson:"full_name"`
	Role       string     `json:"role" bson:"role"`
	Department string     `json:"department,omitempty" bson:"department,omitempty"`
	IsActive   bool       `json:"isActive" bson:"is_active"`
	LastLogin  *time.Time `json:"lastLogin,omitempty" bson:"last_login,omitempty"`
	CreatedAt  time.Time  `json:"createdAt" bson:"created_at"`
	UpdatedAt  time.Time  `json:"updatedAt" bson:"updated_at"`
}
