package matches

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/apperrors"
	"github.com/mcdev12/tipster/go/internal/db"
	"github.com/mcdev12/tipster/go/internal/models"
	"github.com/mcdev12/tipster/go/internal/sqlutil"
)

// Repository implements match data access operations
type Repository struct {
	pool    sqlutil.Beginner
	queries *db.Queries
}

// NewRepository creates a new matches repository
func NewRepository(pool sqlutil.Beginner, queries *db.Queries) *Repository {
	return &Repository{
		pool:    pool,
		queries: queries,
	}
}

// CreateMatch inserts a scheduled match
func (r *Repository) CreateMatch(ctx context.Context, req NewMatch) (*models.Match, error) {
	match, err := r.queries.CreateMatch(ctx, db.CreateMatchParams{
		RoundID:    req.RoundID,
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		MatchTime:  req.MatchTime,
		TipType:    db.TipType(req.TipType),
	})
	if err != nil {
		if sqlutil.IsForeignKeyViolation(err) {
			return nil, apperrors.NewNotFoundError("round", req.RoundID)
		}
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	m := match.ToModel()
	return &m, nil
}

// GetMatch retrieves a match by ID
func (r *Repository) GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	match, err := r.queries.GetMatch(ctx, id)
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperrors.NewNotFoundError("match", id)
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	m := match.ToModel()
	return &m, nil
}

// ListMatchesByRound lists the matches of a round by kick-off
func (r *Repository) ListMatchesByRound(ctx context.Context, roundID uuid.UUID) ([]models.Match, error) {
	rows, err := r.queries.ListMatchesByRound(ctx, roundID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	matches := make([]models.Match, len(rows))
	for i, row := range rows {
		matches[i] = row.ToModel()
	}
	return matches, nil
}

// UpdateMatch overwrites the schedule columns of a match
func (r *Repository) UpdateMatch(ctx context.Context, match models.Match) (*models.Match, error) {
	updated, err := r.queries.UpdateMatch(ctx, db.UpdateMatchParams{
		ID:         match.ID,
		HomeTeamID: match.HomeTeamID,
		AwayTeamID: match.AwayTeamID,
		MatchTime:  match.MatchTime,
		TipType:    db.TipType(match.TipType),
	})
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperrors.NewNotFoundError("match", match.ID)
		}
		return nil, fmt.Errorf("failed to update match: %w", err)
	}

	m := updated.ToModel()
	return &m, nil
}

// DeleteMatch deletes a match and, by cascade, its tips
func (r *Repository) DeleteMatch(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.DeleteMatch(ctx, id); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}
	return nil
}

// GetMatchLeague resolves the league and season a match is played in
func (r *Repository) GetMatchLeague(ctx context.Context, id uuid.UUID) (uuid.UUID, uuid.UUID, error) {
	match, err := r.queries.GetMatch(ctx, id)
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return uuid.Nil, uuid.Nil, apperrors.NewNotFoundError("match", id)
		}
		return uuid.Nil, uuid.Nil, fmt.Errorf("failed to get match: %w", err)
	}
	leagueID, err := r.queries.GetRoundLeagueID(ctx, match.RoundID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("failed to get league of round: %w", err)
	}
	seasonID, err := r.queries.GetLeagueSeasonID(ctx, leagueID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("failed to get season of league: %w", err)
	}
	return leagueID, seasonID, nil
}

// CountTips counts the tips placed on a match
func (r *Repository) CountTips(ctx context.Context, matchID uuid.UUID) (int64, error) {
	n, err := r.queries.CountTipsForMatch(ctx, matchID)
	if err != nil {
		return 0, fmt.Errorf("failed to count tips for match: %w", err)
	}
	return n, nil
}

// GetTeam retrieves a team by ID
func (r *Repository) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	team, err := r.queries.GetTeam(ctx, id)
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperrors.NewNotFoundError("team", id)
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	m := team.ToModel()
	return &m, nil
}

// EvaluateMatch records a match result and rescoring it causes in one transaction
func (r *Repository) EvaluateMatch(ctx context.Context, id uuid.UUID, req EvaluateMatchRequest) (*Evaluation, error) {
	var result *Evaluation
	err := sqlutil.Run(ctx, r.pool, r.queries.WithTx, func(q *db.Queries) error {
		var err error
		result, err = evaluate(ctx, q, id, req)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate match: %w", err)
	}
	return result, nil
}
