package leaderboard

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type FakeLeaderboardRepository struct {
	LeagueRowsFunc func(ctx context.Context, leagueID uuid.UUID) ([]Row, error)
	SeasonRowsFunc func(ctx context.Context, seasonID uuid.UUID) ([]Row, error)
}

func (f *FakeLeaderboardRepository) LeagueRows(ctx context.Context, leagueID uuid.UUID) ([]Row, error) {
	return f.LeagueRowsFunc(ctx, leagueID)
}

func (f *FakeLeaderboardRepository) SeasonRows(ctx context.Context, seasonID uuid.UUID) ([]Row, error) {
	return f.SeasonRowsFunc(ctx, seasonID)
}

type FakeCache struct {
	GetFunc    func(ctx context.Context, key string) ([]models.LeaderboardEntry, bool, error)
	SetFunc    func(ctx context.Context, key string, entries []models.LeaderboardEntry) error
	DeleteFunc func(ctx context.Context, keys ...string) error
}

func (f *FakeCache) Get(ctx context.Context, key string) ([]models.LeaderboardEntry, bool, error) {
	return f.GetFunc(ctx, key)
}

func (f *FakeCache) Set(ctx context.Context, key string, entries []models.LeaderboardEntry) error {
	return f.SetFunc(ctx, key, entries)
}

func (f *FakeCache) Delete(ctx context.Context, keys ...string) error {
	return f.DeleteFunc(ctx, keys...)
}

func countingRepo(calls *int) *FakeLeaderboardRepository {
	rows := []Row{
		{UserID: uuid.New(), Username: "ben", TotalPoints: 3, TipsCount: 2, CorrectPredictions: 1},
		{UserID: uuid.New(), Username: "ana", TotalPoints: 10, TipsCount: 1, CorrectPredictions: 1},
	}
	return &FakeLeaderboardRepository{
		LeagueRowsFunc: func(context.Context, uuid.UUID) ([]Row, error) {
			*calls++
			return rows, nil
		},
		SeasonRowsFunc: func(context.Context, uuid.UUID) ([]Row, error) {
			*calls++
			return rows, nil
		},
	}
}

func TestApp_ReadThroughCache(t *testing.T) {
	var dbCalls int
	cache := NewRedisCache(newMemoryRedis(), 0)
	app := NewApp(countingRepo(&dbCalls), cache)
	ctx := context.Background()
	leagueID := uuid.New()

	first, err := app.LeagueLeaderboard(ctx, leagueID)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "ana", first[0].Username)
	assert.Equal(t, 1, first[0].Rank)

	second, err := app.LeagueLeaderboard(ctx, leagueID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, dbCalls)

	seasonID := uuid.New()
	_, err = app.SeasonLeaderboard(ctx, seasonID)
	require.NoError(t, err)
	assert.Equal(t, 2, dbCalls)

	app.Invalidate(ctx, leagueID, seasonID)
	_, err = app.LeagueLeaderboard(ctx, leagueID)
	require.NoError(t, err)
	_, err = app.SeasonLeaderboard(ctx, seasonID)
	require.NoError(t, err)
	assert.Equal(t, 4, dbCalls)
}

func TestApp_CacheFailureFallsBackToDatabase(t *testing.T) {
	var dbCalls int
	down := errors.New("redis down")
	cache := &FakeCache{
		GetFunc:    func(context.Context, string) ([]models.LeaderboardEntry, bool, error) { return nil, false, down },
		SetFunc:    func(context.Context, string, []models.LeaderboardEntry) error { return down },
		DeleteFunc: func(context.Context, ...string) error { return down },
	}
	app := NewApp(countingRepo(&dbCalls), cache)

	entries, err := app.LeagueLeaderboard(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, 1, dbCalls)

	assert.NotPanics(t, func() { app.Invalidate(context.Background(), uuid.New(), uuid.New()) })
}

func TestApp_DatabaseErrorIsReturned(t *testing.T) {
	boom := errors.New("db gone")
	repo := &FakeLeaderboardRepository{
		SeasonRowsFunc: func(context.Context, uuid.UUID) ([]Row, error) { return nil, boom },
	}
	var stored bool
	cache := &FakeCache{
		GetFunc: func(context.Context, string) ([]models.LeaderboardEntry, bool, error) { return nil, false, nil },
		SetFunc: func(context.Context, string, []models.LeaderboardEntry) error {
			stored = true
			return nil
		},
	}
	app := NewApp(repo, cache)

	_, err := app.SeasonLeaderboard(context.Background(), uuid.New())
	assert.ErrorIs(t, err, boom)
	assert.False(t, stored)
}
