// Package achievements tracks the badges users earn from their tipping record.
package achievements

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/apperrors"
	"github.com/mcdev12/tipster/go/internal/models"
	"github.com/rs/zerolog/log"
)

// CreateAchievementRequest represents the data needed to define an achievement
type CreateAchievementRequest struct {
	Name        string                     `json:"name" validate:"required,max=100"`
	Description string                     `json:"description" validate:"required,max=500"`
	Icon        *string                    `json:"icon,omitempty"`
	Criteria    models.AchievementCriteria `json:"criteria" validate:"required,oneof=total_points exact_scores correct_predictions tips_submitted"`
	Value       int                        `json:"value" validate:"min=1"`
}

// AchievementsRepository defines what the app layer needs from the repository
type AchievementsRepository interface {
	ListAchievements(ctx context.Context) ([]models.Achievement, error)
	ListUserAchievements(ctx context.Context, userID uuid.UUID) ([]models.UserAchievement, error)
	CreateAchievement(ctx context.Context, req CreateAchievementRequest) (*models.Achievement, error)
}

// App handles achievements business logic
type App struct {
	repo AchievementsRepository
}

// NewApp creates a new achievements App
func NewApp(repo AchievementsRepository) *App {
	return &App{repo: repo}
}

func (a *App) ListAchievements(ctx context.Context) ([]models.Achievement, error) {
	achievements, err := a.repo.ListAchievements(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}
	return achievements, nil
}

// ListEarned lists the achievements the user earned, newest first
func (a *App) ListEarned(ctx context.Context, user models.User) ([]models.UserAchievement, error) {
	earned, err := a.repo.ListUserAchievements(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list earned achievements: %w", err)
	}
	return earned, nil
}

// CreateAchievement defines a new achievement. Admins only.
func (a *App) CreateAchievement(ctx context.Context, user models.User, req CreateAchievementRequest) (*models.Achievement, error) {
	if !user.IsAdmin() {
		return nil, apperrors.NewForbiddenError("only admins can define achievements")
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, apperrors.NewValidationError("name", "is required")
	}
	switch req.Criteria {
	case models.CriteriaTotalPoints, models.CriteriaExactScores, models.CriteriaCorrectPredictions, models.CriteriaTipsSubmitted:
	default:
		return nil, apperrors.NewValidationError("criteria", "unknown criteria %q", req.Criteria)
	}
	if req.Value < 1 {
		return nil, apperrors.NewValidationError("value", "must be at least 1")
	}

	achievement, err := a.repo.CreateAchievement(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create achievement: %w", err)
	}

	log.Info().Str("achievement_id", achievement.ID.String()).Str("name", achievement.Name).Msg("created achievement")
	return achievement, nil
}
