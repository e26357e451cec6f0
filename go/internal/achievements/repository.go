package achievements

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/apperrors"
	"github.com/mcdev12/tipster/go/internal/db"
	"github.com/mcdev12/tipster/go/internal/models"
	"github.com/mcdev12/tipster/go/internal/sqlutil"
)

// Repository implements achievement data access operations
type Repository struct {
	queries *db.Queries
}

// NewRepository creates a new achievements repository
func NewRepository(queries *db.Queries) *Repository {
	return &Repository{
		queries: queries,
	}
}

// ListAchievements lists every achievement
func (r *Repository) ListAchievements(ctx context.Context) ([]models.Achievement, error) {
	rows, err := r.queries.ListAchievements(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}

	achievements := make([]models.Achievement, len(rows))
	for i, row := range rows {
		achievements[i] = row.ToModel()
	}
	return achievements, nil
}

// ListUserAchievements lists the achievements a user earned
func (r *Repository) ListUserAchievements(ctx context.Context, userID uuid.UUID) ([]models.UserAchievement, error) {
	rows, err := r.queries.ListUserAchievements(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user achievements: %w", err)
	}

	earned := make([]models.UserAchievement, len(rows))
	for i, row := range rows {
		earned[i] = models.UserAchievement{
			UserID:        row.UserID,
			AchievementID: row.Achievement.ID,
			Achievement:   row.Achievement.ToModel(),
			EarnedAt:      row.EarnedAt,
		}
	}
	return earned, nil
}

// CreateAchievement inserts a new achievement
func (r *Repository) CreateAchievement(ctx context.Context, req CreateAchievementRequest) (*models.Achievement, error) {
	row, err := r.queries.CreateAchievement(ctx, db.CreateAchievementParams{
		Name:        req.Name,
		Description: req.Description,
		Icon:        sqlutil.ToText(req.Icon),
		Criteria:    string(req.Criteria),
		Value:       int32(req.Value),
	})
	if err != nil {
		if sqlutil.IsUniqueViolation(err) {
			return nil, apperrors.NewStateConflictError("achievement %q already exists", req.Name)
		}
		return nil, fmt.Errorf("failed to create achievement: %w", err)
	}

	m := row.ToModel()
	return &m, nil
}
