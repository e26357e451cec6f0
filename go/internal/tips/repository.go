package tips

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/apperrors"
	"github.com/mcdev12/tipster/go/internal/db"
	"github.com/mcdev12/tipster/go/internal/models"
	"github.com/mcdev12/tipster/go/internal/sqlutil"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	GetMatch(ctx context.Context, id uuid.UUID) (db.Match, error)
	GetRound(ctx context.Context, id uuid.UUID) (db.Round, error)
	UpsertTip(ctx context.Context, arg db.UpsertTipParams) (db.Tip, error)
	GetTipForUserMatch(ctx context.Context, arg db.GetTipForUserMatchParams) (db.Tip, error)
	ListTipsByUser(ctx context.Context, userID uuid.UUID) ([]db.Tip, error)
	ListTipsByUserAndRound(ctx context.Context, arg db.ListTipsByUserAndRoundParams) ([]db.Tip, error)
	GetLeagueSeasonID(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
}

// Repository implements tip data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new tips repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// GetMatchWithRound loads a match together with the round whose end date
// closes tipping on it
func (r *Repository) GetMatchWithRound(ctx context.Context, matchID uuid.UUID) (*models.Match, *models.Round, error) {
	match, err := r.queries.GetMatch(ctx, matchID)
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, nil, apperrors.NewNotFoundError("match", matchID)
		}
		return nil, nil, fmt.Errorf("failed to get match: %w", err)
	}
	round, err := r.queries.GetRound(ctx, match.RoundID)
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, nil, apperrors.NewNotFoundError("round", match.RoundID)
		}
		return nil, nil, fmt.Errorf("failed to get round: %w", err)
	}

	m := match.ToModel()
	rd := round.ToModel()
	return &m, &rd, nil
}

// UpsertTip creates or replaces the tip of a user on a match. Points go back
// to 0 and the tip is marked submitted.
func (r *Repository) UpsertTip(ctx context.Context, in TipInput) (*models.Tip, error) {
	tip, err := r.queries.UpsertTip(ctx, db.UpsertTipParams{
		UserID:    in.UserID,
		MatchID:   in.MatchID,
		HomeScore: sqlutil.ToInt4(in.HomeScore),
		AwayScore: sqlutil.ToInt4(in.AwayScore),
		Winner:    db.ToNullTipWinner(in.Winner),
	})
	if err != nil {
		if sqlutil.IsForeignKeyViolation(err) {
			return nil, apperrors.NewNotFoundError("match", in.MatchID)
		}
		return nil, fmt.Errorf("failed to upsert tip: %w", err)
	}

	m := tip.ToModel()
	return &m, nil
}

// GetTip retrieves the tip of a user on a match
func (r *Repository) GetTip(ctx context.Context, userID, matchID uuid.UUID) (*models.Tip, error) {
	tip, err := r.queries.GetTipForUserMatch(ctx, db.GetTipForUserMatchParams{
		UserID:  userID,
		MatchID: matchID,
	})
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperrors.NewNotFoundError("tip", nil)
		}
		return nil, fmt.Errorf("failed to get tip: %w", err)
	}

	m := tip.ToModel()
	return &m, nil
}

// ListTips lists the tips of a user, restricted to one round when roundID is set
func (r *Repository) ListTips(ctx context.Context, userID uuid.UUID, roundID *uuid.UUID) ([]models.Tip, error) {
	var (
		rows []db.Tip
		err  error
	)
	if roundID != nil {
		rows, err = r.queries.ListTipsByUserAndRound(ctx, db.ListTipsByUserAndRoundParams{
			UserID:  userID,
			RoundID: *roundID,
		})
	} else {
		rows, err = r.queries.ListTipsByUser(ctx, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list tips: %w", err)
	}

	tips := make([]models.Tip, len(rows))
	for i, row := range rows {
		tips[i] = row.ToModel()
	}
	return tips, nil
}

// GetLeagueSeasonID returns the season a league belongs to
func (r *Repository) GetLeagueSeasonID(ctx context.Context, leagueID uuid.UUID) (uuid.UUID, error) {
	seasonID, err := r.queries.GetLeagueSeasonID(ctx, leagueID)
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return uuid.Nil, apperrors.NewNotFoundError("league", leagueID)
		}
		return uuid.Nil, fmt.Errorf("failed to get season of league: %w", err)
	}
	return seasonID, nil
}
