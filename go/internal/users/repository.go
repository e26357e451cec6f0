package users

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/apperrors"
	"github.com/mcdev12/tipster/go/internal/db"
	"github.com/mcdev12/tipster/go/internal/models"
	"github.com/mcdev12/tipster/go/internal/sqlutil"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateUser(ctx context.Context, arg db.CreateUserParams) (db.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	GetUser(ctx context.Context, id uuid.UUID) (db.User, error)
	GetUserByEmail(ctx context.Context, email string) (db.User, error)
	GetUserByUsername(ctx context.Context, username string) (db.User, error)
	ListUsers(ctx context.Context) ([]db.User, error)
	UpdateUserPassword(ctx context.Context, arg db.UpdateUserPasswordParams) error
	UpdateUserProfile(ctx context.Context, arg db.UpdateUserProfileParams) (db.User, error)
	UpdateUserRole(ctx context.Context, arg db.UpdateUserRoleParams) (db.User, error)
}

// Repository implements user data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new users repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// CreateUser creates a new user
func (r *Repository) CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	user, err := r.queries.CreateUser(ctx, db.CreateUserParams{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: req.PasswordHash,
		FirstName:    sqlutil.ToText(req.FirstName),
		LastName:     sqlutil.ToText(req.LastName),
		Role:         db.UserRole(req.Role),
	})
	if err != nil {
		if sqlutil.IsUniqueViolation(err) {
			return nil, apperrors.NewStateConflictError("username or email already registered")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return r.dbUserToModel(user), nil
}

// GetUser retrieves a user by ID
func (r *Repository) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := r.queries.GetUser(ctx, id)
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperrors.NewNotFoundError("user", id)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.dbUserToModel(user), nil
}

// GetUserByEmail retrieves a user by email
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := r.queries.GetUserByEmail(ctx, email)
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperrors.NewNotFoundError("user", nil)
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return r.dbUserToModel(user), nil
}

// GetUserByUsername retrieves a user by username
func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := r.queries.GetUserByUsername(ctx, username)
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperrors.NewNotFoundError("user", nil)
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return r.dbUserToModel(user), nil
}

// ListUsers lists every user
func (r *Repository) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := r.queries.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return r.dbUsersToModels(users), nil
}

// UpdateProfile overwrites the profile columns of a user
func (r *Repository) UpdateProfile(ctx context.Context, id uuid.UUID, req UpdateProfileRequest) (*models.User, error) {
	user, err := r.queries.UpdateUserProfile(ctx, db.UpdateUserProfileParams{
		ID:           id,
		FirstName:    sqlutil.ToText(req.FirstName),
		LastName:     sqlutil.ToText(req.LastName),
		Bio:          sqlutil.ToText(req.Bio),
		ProfileImage: sqlutil.ToText(req.ProfileImage),
	})
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperrors.NewNotFoundError("user", id)
		}
		return nil, fmt.Errorf("failed to update user profile: %w", err)
	}

	return r.dbUserToModel(user), nil
}

// UpdatePassword stores a new password hash
func (r *Repository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	if err := r.queries.UpdateUserPassword(ctx, db.UpdateUserPasswordParams{
		ID:           id,
		PasswordHash: passwordHash,
	}); err != nil {
		return fmt.Errorf("failed to update user password: %w", err)
	}
	return nil
}

// UpdateRole changes the global role of a user
func (r *Repository) UpdateRole(ctx context.Context, id uuid.UUID, role models.UserRole) (*models.User, error) {
	user, err := r.queries.UpdateUserRole(ctx, db.UpdateUserRoleParams{
		ID:   id,
		Role: db.UserRole(role),
	})
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperrors.NewNotFoundError("user", id)
		}
		return nil, fmt.Errorf("failed to update user role: %w", err)
	}

	return r.dbUserToModel(user), nil
}

// DeleteUser deletes a user by ID
func (r *Repository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// dbUserToModel converts a database user to domain model
func (r *Repository) dbUserToModel(dbUser db.User) *models.User {
	return &models.User{
		ID:           dbUser.ID,
		Username:     dbUser.Username,
		Email:        dbUser.Email,
		PasswordHash: dbUser.PasswordHash,
		FirstName:    sqlutil.FromText(dbUser.FirstName),
		LastName:     sqlutil.FromText(dbUser.LastName),
		Bio:          sqlutil.FromText(dbUser.Bio),
		ProfileImage: sqlutil.FromText(dbUser.ProfileImage),
		Role:         models.UserRole(dbUser.Role),
		CreatedAt:    dbUser.CreatedAt,
		UpdatedAt:    dbUser.UpdatedAt,
	}
}

// dbUsersToModels converts multiple database users to domain models
func (r *Repository) dbUsersToModels(dbUsers []db.User) []models.User {
	users := make([]models.User, len(dbUsers))
	for i, dbUser := range dbUsers {
		users[i] = *r.dbUserToModel(dbUser)
	}
	return users
}
