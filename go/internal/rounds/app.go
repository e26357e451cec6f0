package rounds

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/tipster/go/internal/apperrors"
	"github.com/mcdev12/tipster/go/internal/authz"
	"github.com/mcdev12/tipster/go/internal/models"
	"github.com/rs/zerolog/log"
)

// RoundsRepository defines what the app layer needs from the repository
type RoundsRepository interface {
	CreateRound(ctx context.Context, req NewRound, now time.Time) (*models.Round, error)
	GetRound(ctx context.Context, id uuid.UUID) (*models.Round, error)
	ListRoundsByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Round, error)
	ListMatches(ctx context.Context, roundID uuid.UUID) ([]models.Match, error)
	UpdateRound(ctx context.Context, round models.Round) (*models.Round, error)
	DeleteRound(ctx context.Context, id uuid.UUID) error
}

// Authorizer decides whether a user may manage a target
type Authorizer interface {
	Require(ctx context.Context, user models.User, target authz.Target) error
}

// App handles rounds business logic
type App struct {
	repo  RoundsRepository
	authz Authorizer
	clock clockwork.Clock
}

// NewApp creates a new rounds App
func NewApp(repo RoundsRepository, authorizer Authorizer, clock clockwork.Clock) *App {
	return &App{
		repo:  repo,
		authz: authorizer,
		clock: clock,
	}
}

// CreateRound creates a round in a league the user manages
func (a *App) CreateRound(ctx context.Context, user models.User, req CreateRoundRequest) (*models.Round, error) {
	if err := a.validateCreateRoundRequest(req); err != nil {
		return nil, err
	}
	if err := a.authz.Require(ctx, user, authz.League(req.LeagueID)); err != nil {
		return nil, err
	}

	now := a.clock.Now()
	round, err := a.repo.CreateRound(ctx, NewRound{
		LeagueID:    req.LeagueID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create round: %w", err)
	}

	log.Info().
		Str("round_id", round.ID.String()).
		Str("league_id", round.LeagueID.String()).
		Bool("started", round.Started(now)).
		Msg("created round")
	return round, nil
}

// GetRound returns a round with its matches
func (a *App) GetRound(ctx context.Context, id uuid.UUID) (*RoundDetail, error) {
	round, err := a.repo.GetRound(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get round: %w", err)
	}
	matches, err := a.repo.ListMatches(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get round: %w", err)
	}
	if matches == nil {
		matches = []models.Match{}
	}
	return &RoundDetail{Round: *round, Matches: matches}, nil
}

// ListRounds lists the rounds of a league
func (a *App) ListRounds(ctx context.Context, leagueID uuid.UUID) ([]models.Round, error) {
	rounds, err := a.repo.ListRoundsByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rounds: %w", err)
	}
	return rounds, nil
}

// UpdateRound applies req to a round the user manages. The date ordering is
// checked against the stored value of any date the request leaves out.
func (a *App) UpdateRound(ctx context.Context, user models.User, id uuid.UUID, req UpdateRoundRequest) (*models.Round, error) {
	if err := a.authz.Require(ctx, user, authz.Round(id)); err != nil {
		return nil, err
	}

	round, err := a.repo.GetRound(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get round: %w", err)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("name", "cannot be empty")
		}
		round.Name = name
	}
	if req.Description != nil {
		round.Description = req.Description
	}
	if req.StartDate != nil {
		round.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		round.EndDate = *req.EndDate
	}
	if req.IsActive != nil {
		round.IsActive = *req.IsActive
	}
	if !round.EndDate.After(round.StartDate) {
		return nil, apperrors.NewValidationError("end_date", "must be after start_date")
	}

	updated, err := a.repo.UpdateRound(ctx, *round)
	if err != nil {
		return nil, fmt.Errorf("failed to update round: %w", err)
	}

	log.Info().Str("round_id", id.String()).Str("by", user.ID.String()).Msg("updated round")
	return updated, nil
}

// DeleteRound deletes a round the user manages. Rounds holding tips are kept.
func (a *App) DeleteRound(ctx context.Context, user models.User, id uuid.UUID) error {
	if err := a.authz.Require(ctx, user, authz.Round(id)); err != nil {
		return err
	}

	if err := a.repo.DeleteRound(ctx, id); err != nil {
		return err
	}

	log.Info().Str("round_id", id.String()).Str("by", user.ID.String()).Msg("deleted round")
	return nil
}

// validateCreateRoundRequest validates create round request
func (a *App) validateCreateRoundRequest(req CreateRoundRequest) error {
	if req.LeagueID == uuid.Nil {
		return apperrors.NewValidationError("league_id", "is required")
	}
	if strings.TrimSpace(req.Name) == "" {
		return apperrors.NewValidationError("name", "is required")
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return apperrors.NewValidationError("start_date", "start_date and end_date are required")
	}
	if !req.EndDate.After(req.StartDate) {
		return apperrors.NewValidationError("end_date", "must be after start_date")
	}
	return nil
}
