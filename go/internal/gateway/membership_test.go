package gateway

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/mcdev12/tipster/go/internal/apperrors"
	"github.com/mcdev12/tipster/go/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type FakeMembershipQuerier struct {
	GetUserFunc              func(ctx context.Context, id uuid.UUID) (db.User, error)
	GetLeagueSeasonIDFunc    func(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	GetSeasonParticipantFunc func(ctx context.Context, arg db.GetSeasonParticipantParams) (db.UserSeason, error)
}

func (f *FakeMembershipQuerier) GetUser(ctx context.Context, id uuid.UUID) (db.User, error) {
	return f.GetUserFunc(ctx, id)
}

func (f *FakeMembershipQuerier) GetLeagueSeasonID(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	return f.GetLeagueSeasonIDFunc(ctx, id)
}

func (f *FakeMembershipQuerier) GetSeasonParticipant(ctx context.Context, arg db.GetSeasonParticipantParams) (db.UserSeason, error) {
	return f.GetSeasonParticipantFunc(ctx, arg)
}

func TestMembership_CanWatchLeague(t *testing.T) {
	seasonID, leagueID := uuid.New(), uuid.New()
	admin, player, outsider := uuid.New(), uuid.New(), uuid.New()
	roles := map[uuid.UUID]db.UserRole{admin: db.UserRoleAdmin, player: db.UserRolePlayer, outsider: db.UserRolePlayer}

	q := &FakeMembershipQuerier{
		GetUserFunc: func(_ context.Context, id uuid.UUID) (db.User, error) {
			role, ok := roles[id]
			if !ok {
				return db.User{}, pgx.ErrNoRows
			}
			return db.User{ID: id, Role: role}, nil
		},
		GetLeagueSeasonIDFunc: func(_ context.Context, id uuid.UUID) (uuid.UUID, error) {
			if id != leagueID {
				return uuid.Nil, pgx.ErrNoRows
			}
			return seasonID, nil
		},
		GetSeasonParticipantFunc: func(_ context.Context, arg db.GetSeasonParticipantParams) (db.UserSeason, error) {
			if arg.UserID == player && arg.SeasonID == seasonID {
				return db.UserSeason{UserID: player, SeasonID: seasonID}, nil
			}
			return db.UserSeason{}, pgx.ErrNoRows
		},
	}
	m := NewMembership(q)
	ctx := context.Background()

	ok, err := m.CanWatchLeague(ctx, admin, uuid.New())
	require.NoError(t, err)
	assert.True(t, ok, "admins watch any league")

	ok, err = m.CanWatchLeague(ctx, player, leagueID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = m.CanWatchLeague(ctx, outsider, leagueID)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = m.CanWatchLeague(ctx, player, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = m.CanWatchLeague(ctx, uuid.New(), leagueID)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
