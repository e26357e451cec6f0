package models

import (
	"time"

	"github.com/google/uuid"
)

// UserRole is the global role of a user
type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleVIP    UserRole = "vip"
	UserRolePlayer UserRole = "player"
)

// IsValid reports whether r is one of the known roles
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleVIP, UserRolePlayer:
		return true
	default:
		return false
	}
}

// User represents a user in the system
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    *string   `json:"first_name,omitempty"`
	LastName     *string   `json:"last_name,omitempty"`
	Bio          *string   `json:"bio,omitempty"`
	ProfileImage *string   `json:"profile_image,omitempty"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user holds the global admin role
func (u User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
