package leaderboard

import (
	"context"

	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/models"
	"github.com/rs/zerolog/log"
)

// LeaderboardRepository defines what the app layer needs from the repository
type LeaderboardRepository interface {
	LeagueRows(ctx context.Context, leagueID uuid.UUID) ([]Row, error)
	SeasonRows(ctx context.Context, seasonID uuid.UUID) ([]Row, error)
}

// Cache stores ranked tables by key
type Cache interface {
	Get(ctx context.Context, key string) ([]models.LeaderboardEntry, bool, error)
	Set(ctx context.Context, key string, entries []models.LeaderboardEntry) error
	Delete(ctx context.Context, keys ...string) error
}

// App serves ranked tables, read through the cache. Cache failures are
// logged and the table is computed from the database.
type App struct {
	repo  LeaderboardRepository
	cache Cache
}

// NewApp creates a new leaderboard App
func NewApp(repo LeaderboardRepository, cache Cache) *App {
	return &App{
		repo:  repo,
		cache: cache,
	}
}

// LeagueLeaderboard ranks the tipsters of a league
func (a *App) LeagueLeaderboard(ctx context.Context, leagueID uuid.UUID) ([]models.LeaderboardEntry, error) {
	return a.load(ctx, LeagueKey(leagueID), func() ([]Row, error) {
		return a.repo.LeagueRows(ctx, leagueID)
	})
}

// SeasonLeaderboard ranks the tipsters of every league of a season together
func (a *App) SeasonLeaderboard(ctx context.Context, seasonID uuid.UUID) ([]models.LeaderboardEntry, error) {
	return a.load(ctx, SeasonKey(seasonID), func() ([]Row, error) {
		return a.repo.SeasonRows(ctx, seasonID)
	})
}

// Invalidate drops the cached tables of a league and of its season
func (a *App) Invalidate(ctx context.Context, leagueID, seasonID uuid.UUID) {
	if err := a.cache.Delete(ctx, LeagueKey(leagueID), SeasonKey(seasonID)); err != nil {
		log.Warn().Err(err).
			Str("league_id", leagueID.String()).
			Str("season_id", seasonID.String()).
			Msg("leaderboard cache invalidation failed")
	}
}

func (a *App) load(ctx context.Context, key string, rows func() ([]Row, error)) ([]models.LeaderboardEntry, error) {
	cached, ok, err := a.cache.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("leaderboard cache read failed, using database")
	}
	if ok {
		return cached, nil
	}

	aggregated, err := rows()
	if err != nil {
		return nil, err
	}
	entries := Rank(aggregated)

	if err := a.cache.Set(ctx, key, entries); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("leaderboard cache write failed")
	}
	return entries, nil
}
