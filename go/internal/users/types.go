package users

import (
	"time"

	"github.com/mcdev12/tipster/go/internal/models"
)

// RegisterRequest represents the data needed to open an account
type RegisterRequest struct {
	Username  string  `json:"username" validate:"required,min=3,max=32"`
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=8,max=72"`
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=64"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=64"`
}

// LoginRequest represents an email/password credential pair
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *models.User `json:"user"`
}

// UpdateProfileRequest represents the editable profile fields. Nil or empty
// fields keep their current value.
type UpdateProfileRequest struct {
	FirstName    *string `json:"first_name,omitempty" validate:"omitempty,max=64"`
	LastName     *string `json:"last_name,omitempty" validate:"omitempty,max=64"`
	Bio          *string `json:"bio,omitempty" validate:"omitempty,max=500"`
	ProfileImage *string `json:"profile_image,omitempty" validate:"omitempty,url"`
}

// ChangePasswordRequest represents a password change by its owner
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
}

// SetRoleRequest represents an admin changing a user's global role
type SetRoleRequest struct {
	Role models.UserRole `json:"role" validate:"required,oneof=admin vip player"`
}

// CreateUserRequest is the repository input of a new account
type CreateUserRequest struct {
	Username     string
	Email        string
	PasswordHash string
	FirstName    *string
	LastName     *string
	Role         models.UserRole
}
