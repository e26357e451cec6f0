package gateway

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/apperrors"
	"github.com/mcdev12/tipster/go/internal/db"
	"github.com/mcdev12/tipster/go/internal/sqlutil"
)

// MembershipQuerier is the slice of db.Queries the membership check needs
type MembershipQuerier interface {
	GetUser(ctx context.Context, id uuid.UUID) (db.User, error)
	GetLeagueSeasonID(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	GetSeasonParticipant(ctx context.Context, arg db.GetSeasonParticipantParams) (db.UserSeason, error)
}

// Membership lets admins and participants of a league's season watch it
type Membership struct {
	queries MembershipQuerier
}

func NewMembership(queries MembershipQuerier) *Membership {
	return &Membership{queries: queries}
}

func (m *Membership) CanWatchLeague(ctx context.Context, userID, leagueID uuid.UUID) (bool, error) {
	user, err := m.queries.GetUser(ctx, userID)
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return false, fmt.Errorf("%w: unknown user", apperrors.ErrUnauthorized)
		}
		return false, fmt.Errorf("failed to get user: %w", err)
	}
	if user.Role == db.UserRoleAdmin {
		return true, nil
	}

	seasonID, err := m.queries.GetLeagueSeasonID(ctx, leagueID)
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return false, apperrors.NewNotFoundError("league", leagueID)
		}
		return false, fmt.Errorf("failed to get league season: %w", err)
	}

	if _, err := m.queries.GetSeasonParticipant(ctx, db.GetSeasonParticipantParams{
		UserID:   userID,
		SeasonID: seasonID,
	}); err != nil {
		if sqlutil.IsNoRows(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get season participant: %w", err)
	}
	return true, nil
}
