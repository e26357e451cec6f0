package leagues

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/tipster/go/internal/apperrors"
	"github.com/mcdev12/tipster/go/internal/auth"
	"github.com/mcdev12/tipster/go/internal/authz"
	"github.com/mcdev12/tipster/go/internal/models"
	"github.com/mcdev12/tipster/go/internal/scoring"
	"github.com/rs/zerolog/log"
)

// LeaguesRepository defines what the app layer needs from the repository
type LeaguesRepository interface {
	CreateLeague(ctx context.Context, req NewLeague) (*models.League, error)
	GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error)
	ListLeagues(ctx context.Context, seasonID *uuid.UUID) ([]models.League, error)
	UpdateLeague(ctx context.Context, league models.League) (*models.League, error)
	DeleteLeague(ctx context.Context, id uuid.UUID) error
	CountLeaguesByCreator(ctx context.Context, creatorID uuid.UUID) (int, error)
	AnyRoundStarted(ctx context.Context, leagueID uuid.UUID, now time.Time) (bool, error)
	LockScoring(ctx context.Context, id uuid.UUID) error
}

// Authorizer decides whether a user may manage a target
type Authorizer interface {
	Require(ctx context.Context, user models.User, target authz.Target) error
}

// LeaderboardInvalidator drops cached standings
type LeaderboardInvalidator interface {
	Invalidate(ctx context.Context, leagueID, seasonID uuid.UUID)
}

// App handles leagues business logic
type App struct {
	repo        LeaguesRepository
	authz       Authorizer
	quotas      authz.Quotas
	clock       clockwork.Clock
	leaderboard LeaderboardInvalidator
}

// NewApp creates a new leagues App
func NewApp(repo LeaguesRepository, authorizer Authorizer, quotas authz.Quotas, clock clockwork.Clock, leaderboard LeaderboardInvalidator) *App {
	return &App{
		repo:        repo,
		authz:       authorizer,
		quotas:      quotas,
		clock:       clock,
		leaderboard: leaderboard,
	}
}

// CreateLeague creates a league inside a season the user manages
func (a *App) CreateLeague(ctx context.Context, user models.User, req CreateLeagueRequest) (*models.League, error) {
	if req.Type == "" {
		req.Type = models.LeagueTypeCustom
	}
	if err := a.validateCreateLeagueRequest(req); err != nil {
		return nil, err
	}
	if req.Type == models.LeagueTypeOfficial && !user.IsAdmin() {
		return nil, apperrors.NewForbiddenError("only admins can create official leagues")
	}
	if err := a.authz.Require(ctx, user, authz.Season(req.SeasonID)); err != nil {
		return nil, err
	}

	created, err := a.repo.CountLeaguesByCreator(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count leagues: %w", err)
	}
	if err := a.quotas.CheckLeagueQuota(user.Role, created); err != nil {
		return nil, err
	}

	var passwordHash *string
	if req.Password != nil && *req.Password != "" {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		passwordHash = &hash
	}

	var system models.ScoringSystem
	if req.ScoringSystem != nil {
		system = *req.ScoringSystem
	}

	league, err := a.repo.CreateLeague(ctx, NewLeague{
		SeasonID:      req.SeasonID,
		Name:          strings.TrimSpace(req.Name),
		Description:   req.Description,
		Image:         req.Image,
		Type:          req.Type,
		PasswordHash:  passwordHash,
		CreatorID:     user.ID,
		ScoringSystem: system,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create league: %w", err)
	}

	log.Info().
		Str("league_id", league.ID.String()).
		Str("season_id", league.SeasonID.String()).
		Str("creator_id", user.ID.String()).
		Msg("created league")
	return league, nil
}

// GetLeague retrieves a league by ID
func (a *App) GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	league, err := a.repo.GetLeague(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get league: %w", err)
	}
	return league, nil
}

// ListLeagues lists leagues, optionally only those of one season
func (a *App) ListLeagues(ctx context.Context, seasonID *uuid.UUID) ([]models.League, error) {
	leagues, err := a.repo.ListLeagues(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leagues: %w", err)
	}
	return leagues, nil
}

// UpdateLeague applies req to a league the user manages. The scoring lock is
// latched first, so a request arriving after the first round started is judged
// against the locked league.
func (a *App) UpdateLeague(ctx context.Context, user models.User, id uuid.UUID, req UpdateLeagueRequest) (*models.League, error) {
	if err := a.authz.Require(ctx, user, authz.League(id)); err != nil {
		return nil, err
	}

	league, err := a.repo.GetLeague(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get league: %w", err)
	}
	if err := a.latchScoringLock(ctx, league); err != nil {
		return nil, err
	}

	if req.ScoringSystem != nil {
		if err := scoring.Validate(*req.ScoringSystem); err != nil {
			return nil, err
		}
		if scoring.Resolve(*req.ScoringSystem) != scoring.Resolve(league.ScoringSystem) {
			if league.ScoringLocked {
				return nil, apperrors.NewStateConflictError("scoring system of league %s is locked", league.Name)
			}
			league.ScoringSystem = *req.ScoringSystem
		}
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("name", "cannot be empty")
		}
		league.Name = name
	}
	if req.Description != nil {
		league.Description = req.Description
	}
	if req.Image != nil {
		league.Image = req.Image
	}
	if req.IsActive != nil {
		league.IsActive = *req.IsActive
	}
	if req.Password != nil {
		league.PasswordHash = nil
		if *req.Password != "" {
			hash, err := auth.HashPassword(*req.Password)
			if err != nil {
				return nil, err
			}
			league.PasswordHash = &hash
		}
	}

	updated, err := a.repo.UpdateLeague(ctx, *league)
	if err != nil {
		return nil, fmt.Errorf("failed to update league: %w", err)
	}

	log.Info().Str("league_id", id.String()).Str("by", user.ID.String()).Msg("updated league")
	return updated, nil
}

// DeleteLeague deletes a league the user manages. Its tips leave the season
// table, so the cached standings are dropped.
func (a *App) DeleteLeague(ctx context.Context, user models.User, id uuid.UUID) error {
	if err := a.authz.Require(ctx, user, authz.League(id)); err != nil {
		return err
	}

	league, err := a.repo.GetLeague(ctx, id)
	if err != nil {
		return err
	}
	if err := a.repo.DeleteLeague(ctx, id); err != nil {
		return fmt.Errorf("failed to delete league: %w", err)
	}
	a.leaderboard.Invalidate(ctx, league.ID, league.SeasonID)

	log.Info().Str("league_id", id.String()).Str("by", user.ID.String()).Msg("deleted league")
	return nil
}

// latchScoringLock persists the scoring lock once any round of the league has
// started. The lock is never cleared.
func (a *App) latchScoringLock(ctx context.Context, league *models.League) error {
	if league.ScoringLocked {
		return nil
	}

	started, err := a.repo.AnyRoundStarted(ctx, league.ID, a.clock.Now())
	if err != nil {
		return err
	}
	if !started {
		return nil
	}

	if err := a.repo.LockScoring(ctx, league.ID); err != nil {
		return err
	}
	league.ScoringLocked = true

	log.Info().Str("league_id", league.ID.String()).Msg("locked league scoring")
	return nil
}

// validateCreateLeagueRequest validates create league request
func (a *App) validateCreateLeagueRequest(req CreateLeagueRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return apperrors.NewValidationError("name", "is required")
	}
	if req.SeasonID == uuid.Nil {
		return apperrors.NewValidationError("season_id", "is required")
	}
	switch req.Type {
	case models.LeagueTypeOfficial, models.LeagueTypeCustom:
	default:
		return apperrors.NewValidationError("type", "invalid league type %q", req.Type)
	}
	if req.ScoringSystem != nil {
		return scoring.Validate(*req.ScoringSystem)
	}
	return nil
}
