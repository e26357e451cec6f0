package seasons

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/apperrors"
	"github.com/mcdev12/tipster/go/internal/authz"
	"github.com/mcdev12/tipster/go/internal/models"
	"github.com/rs/zerolog/log"
)

const (
	inviteCodeLength   = 6
	inviteCodeAttempts = 3
)

// SeasonsRepository defines what the app layer needs from the repository
type SeasonsRepository interface {
	CreateSeason(ctx context.Context, req NewSeason) (*models.Season, error)
	GetSeason(ctx context.Context, id uuid.UUID) (*models.Season, error)
	GetSeasonByInviteCode(ctx context.Context, code string) (*models.Season, error)
	ListActiveSeasons(ctx context.Context) ([]models.Season, error)
	UpdateSeason(ctx context.Context, season models.Season) (*models.Season, error)
	DeleteSeason(ctx context.Context, id uuid.UUID) error
	CountSeasonsByCreator(ctx context.Context, creatorID uuid.UUID) (int, error)
	GetParticipant(ctx context.Context, userID, seasonID uuid.UUID) (*models.UserSeason, error)
	AddParticipant(ctx context.Context, userID, seasonID uuid.UUID, role models.SeasonRole) (*models.UserSeason, error)
	ListLeagues(ctx context.Context, seasonID uuid.UUID) ([]models.League, error)
}

// Authorizer decides whether a user may manage a target
type Authorizer interface {
	Require(ctx context.Context, user models.User, target authz.Target) error
}

// App handles seasons business logic
type App struct {
	repo          SeasonsRepository
	authz         Authorizer
	quotas        authz.Quotas
	newInviteCode func() string
}

// NewApp creates a new seasons App
func NewApp(repo SeasonsRepository, authorizer Authorizer, quotas authz.Quotas) *App {
	return &App{
		repo:          repo,
		authz:         authorizer,
		quotas:        quotas,
		newInviteCode: generateInviteCode,
	}
}

// CreateSeason creates a season owned by user, who becomes its first admin
func (a *App) CreateSeason(ctx context.Context, user models.User, req CreateSeasonRequest) (*models.Season, error) {
	if req.Type == "" {
		req.Type = models.SeasonTypeCommunity
	}
	if err := a.validateCreateSeasonRequest(req); err != nil {
		return nil, err
	}
	if req.Type == models.SeasonTypeOfficial && !user.IsAdmin() {
		return nil, apperrors.NewForbiddenError("only admins can create official seasons")
	}

	created, err := a.repo.CountSeasonsByCreator(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count seasons: %w", err)
	}
	if err := a.quotas.CheckSeasonQuota(user.Role, created); err != nil {
		return nil, err
	}

	var season *models.Season
	for attempt := 0; attempt < inviteCodeAttempts; attempt++ {
		season, err = a.repo.CreateSeason(ctx, NewSeason{
			Name:        strings.TrimSpace(req.Name),
			Description: req.Description,
			Image:       req.Image,
			Type:        req.Type,
			InviteCode:  a.newInviteCode(),
			Rules:       req.Rules,
			CreatorID:   user.ID,
		})
		if !errors.Is(err, errInviteCodeTaken) {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create season: %w", err)
	}

	log.Info().
		Str("season_id", season.ID.String()).
		Str("creator_id", user.ID.String()).
		Str("type", string(season.Type)).
		Msg("created season")
	return season, nil
}

// GetSeason returns a season with its leagues
func (a *App) GetSeason(ctx context.Context, id uuid.UUID) (*SeasonDetail, error) {
	season, err := a.repo.GetSeason(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get season: %w", err)
	}
	leagues, err := a.repo.ListLeagues(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get season: %w", err)
	}
	if leagues == nil {
		leagues = []models.League{}
	}
	return &SeasonDetail{Season: *season, Leagues: leagues}, nil
}

// ListSeasons lists active seasons
func (a *App) ListSeasons(ctx context.Context) ([]models.Season, error) {
	seasons, err := a.repo.ListActiveSeasons(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list seasons: %w", err)
	}
	return seasons, nil
}

// UpdateSeason applies req to a season the user manages
func (a *App) UpdateSeason(ctx context.Context, user models.User, id uuid.UUID, req UpdateSeasonRequest) (*models.Season, error) {
	if err := a.authz.Require(ctx, user, authz.Season(id)); err != nil {
		return nil, err
	}

	season, err := a.repo.GetSeason(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get season: %w", err)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("name", "cannot be empty")
		}
		season.Name = name
	}
	if req.Description != nil {
		season.Description = req.Description
	}
	if req.Image != nil {
		season.Image = req.Image
	}
	if req.Rules != nil {
		season.Rules = req.Rules
	}
	if req.IsActive != nil {
		season.IsActive = *req.IsActive
	}

	updated, err := a.repo.UpdateSeason(ctx, *season)
	if err != nil {
		return nil, fmt.Errorf("failed to update season: %w", err)
	}

	log.Info().Str("season_id", id.String()).Str("by", user.ID.String()).Msg("updated season")
	return updated, nil
}

// DeleteSeason deletes a season the user manages
func (a *App) DeleteSeason(ctx context.Context, user models.User, id uuid.UUID) error {
	if err := a.authz.Require(ctx, user, authz.Season(id)); err != nil {
		return err
	}

	if err := a.repo.DeleteSeason(ctx, id); err != nil {
		return fmt.Errorf("failed to delete season: %w", err)
	}

	log.Info().Str("season_id", id.String()).Str("by", user.ID.String()).Msg("deleted season")
	return nil
}

// JoinSeason adds user to the season behind inviteCode as a player
func (a *App) JoinSeason(ctx context.Context, user models.User, inviteCode string) (*models.UserSeason, error) {
	code := strings.ToUpper(strings.TrimSpace(inviteCode))
	if len(code) != inviteCodeLength {
		return nil, apperrors.NewValidationError("invite_code", "must be %d characters", inviteCodeLength)
	}

	season, err := a.repo.GetSeasonByInviteCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to join season: %w", err)
	}
	if !season.IsActive {
		return nil, apperrors.NewStateConflictError("season %s is not active", season.Name)
	}

	_, err = a.repo.GetParticipant(ctx, user.ID, season.ID)
	switch {
	case err == nil:
		return nil, apperrors.NewStateConflictError("already a participant of season %s", season.Name)
	case !errors.Is(err, apperrors.ErrNotFound):
		return nil, fmt.Errorf("failed to join season: %w", err)
	}

	membership, err := a.repo.AddParticipant(ctx, user.ID, season.ID, models.SeasonRolePlayer)
	if err != nil {
		return nil, fmt.Errorf("failed to join season: %w", err)
	}

	log.Info().Str("season_id", season.ID.String()).Str("user_id", user.ID.String()).Msg("joined season")
	return membership, nil
}

// validateCreateSeasonRequest validates create season request
func (a *App) validateCreateSeasonRequest(req CreateSeasonRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return apperrors.NewValidationError("name", "is required")
	}
	switch req.Type {
	case models.SeasonTypeOfficial, models.SeasonTypeCommunity:
		return nil
	default:
		return apperrors.NewValidationError("type", "invalid season type %q", req.Type)
	}
}

// generateInviteCode derives a short upper-case code from a random UUID.
func generateInviteCode() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(hex[:inviteCodeLength])
}
