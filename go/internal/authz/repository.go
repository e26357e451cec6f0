package authz

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/apperrors"
	"github.com/mcdev12/tipster/go/internal/db"
	"github.com/mcdev12/tipster/go/internal/models"
	"github.com/mcdev12/tipster/go/internal/sqlutil"
)

// Repository loads the ownership chain from Postgres
type Repository struct {
	queries *db.Queries
}

// NewRepository creates a new authz repository
func NewRepository(queries *db.Queries) *Repository {
	return &Repository{queries: queries}
}

func (r *Repository) GetSeasonCreator(ctx context.Context, seasonID uuid.UUID) (uuid.UUID, error) {
	id, err := r.queries.GetSeasonCreator(ctx, seasonID)
	return lookup("season", seasonID, id, err)
}

func (r *Repository) GetLeagueSeasonID(ctx context.Context, leagueID uuid.UUID) (uuid.UUID, error) {
	id, err := r.queries.GetLeagueSeasonID(ctx, leagueID)
	return lookup("league", leagueID, id, err)
}

func (r *Repository) GetRoundLeagueID(ctx context.Context, roundID uuid.UUID) (uuid.UUID, error) {
	id, err := r.queries.GetRoundLeagueID(ctx, roundID)
	return lookup("round", roundID, id, err)
}

func (r *Repository) GetMatchRoundID(ctx context.Context, matchID uuid.UUID) (uuid.UUID, error) {
	id, err := r.queries.GetMatchRoundID(ctx, matchID)
	return lookup("match", matchID, id, err)
}

func (r *Repository) GetSeasonRole(ctx context.Context, userID, seasonID uuid.UUID) (models.SeasonRole, error) {
	participant, err := r.queries.GetSeasonParticipant(ctx, db.GetSeasonParticipantParams{
		UserID:   userID,
		SeasonID: seasonID,
	})
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get season participant: %w", err)
	}
	return models.SeasonRole(participant.Role), nil
}

func lookup(resource string, id, parent uuid.UUID, err error) (uuid.UUID, error) {
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return uuid.Nil, apperrors.NewNotFoundError(resource, id)
		}
		return uuid.Nil, fmt.Errorf("failed to get %s: %w", resource, err)
	}
	return parent, nil
}
