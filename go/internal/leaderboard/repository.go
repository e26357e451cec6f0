package leaderboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/db"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	LeagueLeaderboard(ctx context.Context, leagueID uuid.UUID) ([]db.LeagueLeaderboardRow, error)
	SeasonLeaderboard(ctx context.Context, seasonID uuid.UUID) ([]db.SeasonLeaderboardRow, error)
}

// Repository aggregates tip points per user in SQL
type Repository struct {
	queries Querier
}

// NewRepository creates a new leaderboard repository
func NewRepository(querier Querier) *Repository {
	return &Repository{queries: querier}
}

// LeagueRows aggregates the tips placed on matches of a league
func (r *Repository) LeagueRows(ctx context.Context, leagueID uuid.UUID) ([]Row, error) {
	rows, err := r.queries.LeagueLeaderboard(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate league leaderboard: %w", err)
	}

	out := make([]Row, len(rows))
	for i, row := range rows {
		out[i] = Row{
			UserID:             row.UserID,
			Username:           row.Username,
			TotalPoints:        int(row.TotalPoints),
			TipsCount:          int(row.TipsCount),
			CorrectPredictions: int(row.CorrectPredictions),
		}
	}
	return out, nil
}

// SeasonRows aggregates the tips placed across every league of a season
func (r *Repository) SeasonRows(ctx context.Context, seasonID uuid.UUID) ([]Row, error) {
	rows, err := r.queries.SeasonLeaderboard(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate season leaderboard: %w", err)
	}

	out := make([]Row, len(rows))
	for i, row := range rows {
		out[i] = Row{
			UserID:             row.UserID,
			Username:           row.Username,
			TotalPoints:        int(row.TotalPoints),
			TipsCount:          int(row.TipsCount),
			CorrectPredictions: int(row.CorrectPredictions),
		}
	}
	return out, nil
}
