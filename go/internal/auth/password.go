package auth

import (
	"errors"
	"fmt"

	"github.com/mcdev12/tipster/go/internal/apperrors"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares password with hash. A mismatch matches
// apperrors.ErrUnauthorized.
func CheckPassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}
	return fmt.Errorf("failed to compare password: %w", err)
}
