package leagues

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/apperrors"
	"github.com/mcdev12/tipster/go/internal/db"
	"github.com/mcdev12/tipster/go/internal/models"
	"github.com/mcdev12/tipster/go/internal/sqlutil"
)

// Repository implements league data access operations
type Repository struct {
	queries *db.Queries
}

// NewRepository creates a new leagues repository
func NewRepository(queries *db.Queries) *Repository {
	return &Repository{
		queries: queries,
	}
}

// CreateLeague inserts a new league
func (r *Repository) CreateLeague(ctx context.Context, req NewLeague) (*models.League, error) {
	system, err := db.EncodeScoringSystem(req.ScoringSystem)
	if err != nil {
		return nil, err
	}

	league, err := r.queries.CreateLeague(ctx, db.CreateLeagueParams{
		Name:          req.Name,
		Description:   sqlutil.ToText(req.Description),
		Image:         sqlutil.ToText(req.Image),
		Type:          db.LeagueType(req.Type),
		PasswordHash:  sqlutil.ToText(req.PasswordHash),
		SeasonID:      req.SeasonID,
		CreatorID:     req.CreatorID,
		ScoringSystem: system,
	})
	if err != nil {
		if sqlutil.IsForeignKeyViolation(err) {
			return nil, apperrors.NewNotFoundError("season", req.SeasonID)
		}
		return nil, fmt.Errorf("failed to create league: %w", err)
	}

	return toModel(league)
}

// GetLeague retrieves a league by ID
func (r *Repository) GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	league, err := r.queries.GetLeague(ctx, id)
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperrors.NewNotFoundError("league", id)
		}
		return nil, fmt.Errorf("failed to get league: %w", err)
	}

	return toModel(league)
}

// ListLeagues lists every league, or only those of seasonID when it is set
func (r *Repository) ListLeagues(ctx context.Context, seasonID *uuid.UUID) ([]models.League, error) {
	var (
		rows []db.League
		err  error
	)
	if seasonID != nil {
		rows, err = r.queries.ListLeaguesBySeason(ctx, *seasonID)
	} else {
		rows, err = r.queries.ListLeagues(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list leagues: %w", err)
	}

	leagues := make([]models.League, 0, len(rows))
	for _, row := range rows {
		league, err := row.ToModel()
		if err != nil {
			return nil, err
		}
		leagues = append(leagues, league)
	}
	return leagues, nil
}

// UpdateLeague overwrites the editable columns of a league. The scoring lock
// is not written here; see LockScoring.
func (r *Repository) UpdateLeague(ctx context.Context, league models.League) (*models.League, error) {
	system, err := db.EncodeScoringSystem(league.ScoringSystem)
	if err != nil {
		return nil, err
	}

	updated, err := r.queries.UpdateLeague(ctx, db.UpdateLeagueParams{
		ID:            league.ID,
		Name:          league.Name,
		Description:   sqlutil.ToText(league.Description),
		Image:         sqlutil.ToText(league.Image),
		Type:          db.LeagueType(league.Type),
		PasswordHash:  sqlutil.ToText(league.PasswordHash),
		IsActive:      league.IsActive,
		ScoringSystem: system,
	})
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperrors.NewNotFoundError("league", league.ID)
		}
		return nil, fmt.Errorf("failed to update league: %w", err)
	}

	return toModel(updated)
}

// DeleteLeague deletes a league and, by cascade, its rounds
func (r *Repository) DeleteLeague(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.DeleteLeague(ctx, id); err != nil {
		return fmt.Errorf("failed to delete league: %w", err)
	}
	return nil
}

// CountLeaguesByCreator counts the leagues a user created
func (r *Repository) CountLeaguesByCreator(ctx context.Context, creatorID uuid.UUID) (int, error) {
	n, err := r.queries.CountLeaguesByCreator(ctx, creatorID)
	if err != nil {
		return 0, fmt.Errorf("failed to count leagues: %w", err)
	}
	return int(n), nil
}

// AnyRoundStarted reports whether a round of the league started before now
func (r *Repository) AnyRoundStarted(ctx context.Context, leagueID uuid.UUID, now time.Time) (bool, error) {
	started, err := r.queries.AnyRoundStarted(ctx, db.AnyRoundStartedParams{
		LeagueID: leagueID,
		Now:      now,
	})
	if err != nil {
		return false, fmt.Errorf("failed to check league rounds: %w", err)
	}
	return started, nil
}

// LockScoring sets the one-way scoring lock of a league
func (r *Repository) LockScoring(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.LockLeagueScoring(ctx, id); err != nil {
		return fmt.Errorf("failed to lock league scoring: %w", err)
	}
	return nil
}

func toModel(league db.League) (*models.League, error) {
	m, err := league.ToModel()
	if err != nil {
		return nil, err
	}
	return &m, nil
}
