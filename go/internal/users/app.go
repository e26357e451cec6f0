package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/apperrors"
	"github.com/mcdev12/tipster/go/internal/auth"
	"github.com/mcdev12/tipster/go/internal/models"
	"github.com/rs/zerolog/log"
)

// UsersRepository defines what the app layer needs from the repository
type UsersRepository interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req UpdateProfileRequest) (*models.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	UpdateRole(ctx context.Context, id uuid.UUID, role models.UserRole) (*models.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// TokenIssuer signs bearer tokens for authenticated users
type TokenIssuer interface {
	Issue(userID uuid.UUID) (string, time.Time, error)
}

// App handles users business logic
type App struct {
	repo   UsersRepository
	tokens TokenIssuer
}

// NewApp creates a new users App
func NewApp(repo UsersRepository, tokens TokenIssuer) *App {
	return &App{
		repo:   repo,
		tokens: tokens,
	}
}

// Register opens a player account and signs the caller in
func (a *App) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := a.validateRegisterRequest(req); err != nil {
		return nil, err
	}

	if err := a.ensureAvailable(ctx, req.Username, req.Email); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := a.repo.CreateUser(ctx, CreateUserRequest{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         models.UserRolePlayer,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info().Str("user_id", user.ID.String()).Str("username", user.Username).Msg("registered user")
	return a.signIn(user)
}

// Login verifies an email/password pair. Unknown emails and wrong passwords
// are indistinguishable to the caller.
func (a *App) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := a.repo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		return nil, err
	}

	log.Info().Str("user_id", user.ID.String()).Msg("user logged in")
	return a.signIn(user)
}

// GetUser retrieves a user by ID
func (a *App) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := a.repo.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// ListUsers lists every user
func (a *App) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := a.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdateProfile merges req into the stored profile
func (a *App) UpdateProfile(ctx context.Context, id uuid.UUID, req UpdateProfileRequest) (*models.User, error) {
	existing, err := a.repo.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	merged := UpdateProfileRequest{
		FirstName:    keep(existing.FirstName, req.FirstName),
		LastName:     keep(existing.LastName, req.LastName),
		Bio:          keep(existing.Bio, req.Bio),
		ProfileImage: keep(existing.ProfileImage, req.ProfileImage),
	}

	user, err := a.repo.UpdateProfile(ctx, id, merged)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	log.Info().Str("user_id", id.String()).Msg("updated profile")
	return user, nil
}

// ChangePassword replaces the password after verifying the current one
func (a *App) ChangePassword(ctx context.Context, id uuid.UUID, req ChangePasswordRequest) error {
	if req.NewPassword == req.CurrentPassword {
		return apperrors.NewValidationError("new_password", "must differ from the current password")
	}

	user, err := a.repo.GetUser(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if err := auth.CheckPassword(user.PasswordHash, req.CurrentPassword); err != nil {
		return err
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	if err := a.repo.UpdatePassword(ctx, id, hash); err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}

	log.Info().Str("user_id", id.String()).Msg("changed password")
	return nil
}

// SetRole changes the global role of a user. Admins cannot demote themselves.
func (a *App) SetRole(ctx context.Context, actor models.User, id uuid.UUID, role models.UserRole) (*models.User, error) {
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("role", "invalid role %q", role)
	}
	if actor.ID == id && role != models.UserRoleAdmin {
		return nil, apperrors.NewStateConflictError("admins cannot demote themselves")
	}

	user, err := a.repo.UpdateRole(ctx, id, role)
	if err != nil {
		return nil, fmt.Errorf("failed to set role: %w", err)
	}

	log.Info().Str("user_id", id.String()).Str("role", string(role)).Str("by", actor.ID.String()).Msg("changed user role")
	return user, nil
}

// DeleteUser deletes a user by ID
func (a *App) DeleteUser(ctx context.Context, actor models.User, id uuid.UUID) error {
	if actor.ID == id {
		return apperrors.NewStateConflictError("admins cannot delete their own account")
	}

	user, err := a.repo.GetUser(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	if err := a.repo.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	log.Info().Str("user_id", id.String()).Str("username", user.Username).Msg("deleted user")
	return nil
}

func (a *App) signIn(user *models.User) (*AuthResponse, error) {
	token, expiresAt, err := a.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &AuthResponse{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

func (a *App) ensureAvailable(ctx context.Context, username, email string) error {
	if _, err := a.repo.GetUserByUsername(ctx, username); err == nil {
		return apperrors.NewStateConflictError("username %s is taken", username)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check username: %w", err)
	}

	if _, err := a.repo.GetUserByEmail(ctx, email); err == nil {
		return apperrors.NewStateConflictError("email %s is already registered", email)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check email: %w", err)
	}
	return nil
}

// validateRegisterRequest validates register request
func (a *App) validateRegisterRequest(req RegisterRequest) error {
	if req.Username == "" {
		return apperrors.NewValidationError("username", "is required")
	}
	for _, r := range req.Username {
		if !isUsernameRune(r) {
			return apperrors.NewValidationError("username", "may only contain letters, digits, '_', '-' and '.'")
		}
	}
	if req.Email == "" {
		return apperrors.NewValidationError("email", "is required")
	}
	if len(req.Password) < 8 {
		return apperrors.NewValidationError("password", "must be at least 8 characters")
	}
	return nil
}

func isUsernameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '_', r == '-', r == '.':
		return true
	default:
		return false
	}
}

// keep returns next unless it is nil or blank, in which case current survives.
func keep(current, next *string) *string {
	if next == nil || strings.TrimSpace(*next) == "" {
		return current
	}
	return next
}
