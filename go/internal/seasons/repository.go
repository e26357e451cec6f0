package seasons

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/apperrors"
	"github.com/mcdev12/tipster/go/internal/db"
	"github.com/mcdev12/tipster/go/internal/models"
	"github.com/mcdev12/tipster/go/internal/sqlutil"
)

const inviteCodeConstraint = "seasons_invite_code_key"

// errInviteCodeTaken is returned when a generated invite code collides
var errInviteCodeTaken = apperrors.NewStateConflictError("invite code already in use")

// Repository implements season data access operations
type Repository struct {
	pool    sqlutil.Beginner
	queries *db.Queries
}

// NewRepository creates a new seasons repository
func NewRepository(pool sqlutil.Beginner, queries *db.Queries) *Repository {
	return &Repository{
		pool:    pool,
		queries: queries,
	}
}

// CreateSeason inserts the season and its creator as a season admin in one transaction
func (r *Repository) CreateSeason(ctx context.Context, req NewSeason) (*models.Season, error) {
	var created db.Season
	err := sqlutil.Run(ctx, r.pool, r.queries.WithTx, func(q *db.Queries) error {
		season, err := q.CreateSeason(ctx, db.CreateSeasonParams{
			Name:        req.Name,
			Description: sqlutil.ToText(req.Description),
			Image:       sqlutil.ToText(req.Image),
			Type:        db.SeasonType(req.Type),
			InviteCode:  req.InviteCode,
			Rules:       sqlutil.ToText(req.Rules),
			CreatorID:   req.CreatorID,
		})
		if err != nil {
			return err
		}
		if _, err := q.AddSeasonParticipant(ctx, db.AddSeasonParticipantParams{
			UserID:   req.CreatorID,
			SeasonID: season.ID,
			Role:     db.SeasonRoleAdmin,
		}); err != nil {
			return err
		}
		created = season
		return nil
	})
	if err != nil {
		if sqlutil.IsUniqueViolation(err) && sqlutil.ConstraintName(err) == inviteCodeConstraint {
			return nil, errInviteCodeTaken
		}
		return nil, fmt.Errorf("failed to create season: %w", err)
	}

	season := created.ToModel()
	return &season, nil
}

// GetSeason retrieves a season by ID
func (r *Repository) GetSeason(ctx context.Context, id uuid.UUID) (*models.Season, error) {
	season, err := r.queries.GetSeason(ctx, id)
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperrors.NewNotFoundError("season", id)
		}
		return nil, fmt.Errorf("failed to get season: %w", err)
	}

	m := season.ToModel()
	return &m, nil
}

// GetSeasonByInviteCode retrieves a season by its invite code
func (r *Repository) GetSeasonByInviteCode(ctx context.Context, code string) (*models.Season, error) {
	season, err := r.queries.GetSeasonByInviteCode(ctx, code)
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperrors.NewNotFoundError("season", nil)
		}
		return nil, fmt.Errorf("failed to get season by invite code: %w", err)
	}

	m := season.ToModel()
	return &m, nil
}

// ListActiveSeasons lists seasons open for play
func (r *Repository) ListActiveSeasons(ctx context.Context) ([]models.Season, error) {
	rows, err := r.queries.ListActiveSeasons(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list seasons: %w", err)
	}

	seasons := make([]models.Season, len(rows))
	for i, row := range rows {
		seasons[i] = row.ToModel()
	}
	return seasons, nil
}

// UpdateSeason overwrites the editable columns of a season
func (r *Repository) UpdateSeason(ctx context.Context, season models.Season) (*models.Season, error) {
	updated, err := r.queries.UpdateSeason(ctx, db.UpdateSeasonParams{
		ID:          season.ID,
		Name:        season.Name,
		Description: sqlutil.ToText(season.Description),
		Image:       sqlutil.ToText(season.Image),
		IsActive:    season.IsActive,
		Rules:       sqlutil.ToText(season.Rules),
	})
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperrors.NewNotFoundError("season", season.ID)
		}
		return nil, fmt.Errorf("failed to update season: %w", err)
	}

	m := updated.ToModel()
	return &m, nil
}

// DeleteSeason deletes a season and, by cascade, its leagues
func (r *Repository) DeleteSeason(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.DeleteSeason(ctx, id); err != nil {
		return fmt.Errorf("failed to delete season: %w", err)
	}
	return nil
}

// CountSeasonsByCreator counts the seasons a user created
func (r *Repository) CountSeasonsByCreator(ctx context.Context, creatorID uuid.UUID) (int, error) {
	n, err := r.queries.CountSeasonsByCreator(ctx, creatorID)
	if err != nil {
		return 0, fmt.Errorf("failed to count seasons: %w", err)
	}
	return int(n), nil
}

// GetParticipant returns a user's membership, or a NotFoundError
func (r *Repository) GetParticipant(ctx context.Context, userID, seasonID uuid.UUID) (*models.UserSeason, error) {
	row, err := r.queries.GetSeasonParticipant(ctx, db.GetSeasonParticipantParams{
		UserID:   userID,
		SeasonID: seasonID,
	})
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperrors.NewNotFoundError("season participant", nil)
		}
		return nil, fmt.Errorf("failed to get season participant: %w", err)
	}

	m := row.ToModel()
	return &m, nil
}

// AddParticipant inserts a membership
func (r *Repository) AddParticipant(ctx context.Context, userID, seasonID uuid.UUID, role models.SeasonRole) (*models.UserSeason, error) {
	row, err := r.queries.AddSeasonParticipant(ctx, db.AddSeasonParticipantParams{
		UserID:   userID,
		SeasonID: seasonID,
		Role:     db.SeasonRole(role),
	})
	if err != nil {
		if sqlutil.IsUniqueViolation(err) {
			return nil, apperrors.NewStateConflictError("already a participant of this season")
		}
		return nil, fmt.Errorf("failed to add season participant: %w", err)
	}

	m := row.ToModel()
	return &m, nil
}

// ListLeagues lists the leagues of a season
func (r *Repository) ListLeagues(ctx context.Context, seasonID uuid.UUID) ([]models.League, error) {
	rows, err := r.queries.ListLeaguesBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leagues of season: %w", err)
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
