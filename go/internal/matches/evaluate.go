package matches

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/achievements"
	"github.com/mcdev12/tipster/go/internal/apperrors"
	"github.com/mcdev12/tipster/go/internal/db"
	"github.com/mcdev12/tipster/go/internal/models"
	"github.com/mcdev12/tipster/go/internal/notifications"
	"github.com/mcdev12/tipster/go/internal/outbox"
	"github.com/mcdev12/tipster/go/internal/scoring"
	"github.com/mcdev12/tipster/go/internal/sqlutil"
)

// EvaluationQueries is the part of a transaction-bound db.Queries that
// evaluating a match touches
type EvaluationQueries interface {
	GetMatchForUpdate(ctx context.Context, id uuid.UUID) (db.Match, error)
	SetMatchResult(ctx context.Context, arg db.SetMatchResultParams) (db.Match, error)
	GetRound(ctx context.Context, id uuid.UUID) (db.Round, error)
	GetLeague(ctx context.Context, id uuid.UUID) (db.League, error)
	GetTeam(ctx context.Context, id uuid.UUID) (db.Team, error)
	ListTipsByMatch(ctx context.Context, matchID uuid.UUID) ([]db.Tip, error)
	UpdateTipPoints(ctx context.Context, arg db.UpdateTipPointsParams) error
	ResetTipPointsForMatch(ctx context.Context, matchID uuid.UUID) error
	achievements.TxQueries
}

// evaluate records a result and everything that follows from it on q: the
// match row, the points of every tip, result notifications, achievements and
// a match.evaluated event. Without a final result every tip goes back to 0.
func evaluate(ctx context.Context, q EvaluationQueries, id uuid.UUID, req EvaluateMatchRequest) (*Evaluation, error) {
	if _, err := q.GetMatchForUpdate(ctx, id); err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperrors.NewNotFoundError("match", id)
		}
		return nil, fmt.Errorf("failed to lock match: %w", err)
	}

	row, err := q.SetMatchResult(ctx, db.SetMatchResultParams{
		ID:        id,
		HomeScore: sqlutil.ToInt4(req.HomeScore),
		AwayScore: sqlutil.ToInt4(req.AwayScore),
		Status:    db.MatchStatus(req.Status),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set match result: %w", err)
	}
	match := row.ToModel()

	round, err := q.GetRound(ctx, match.RoundID)
	if err != nil {
		return nil, fmt.Errorf("failed to get round of match: %w", err)
	}
	leagueRow, err := q.GetLeague(ctx, round.LeagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to get league of match: %w", err)
	}
	league, err := leagueRow.ToModel()
	if err != nil {
		return nil, err
	}

	result := &Evaluation{
		Match:    match,
		LeagueID: league.ID,
		SeasonID: league.SeasonID,
	}

	if !match.HasResult() {
		if err := q.ResetTipPointsForMatch(ctx, id); err != nil {
			return nil, fmt.Errorf("failed to reset tip points: %w", err)
		}
		return result, writeEvaluated(ctx, q, result)
	}

	tips, err := q.ListTipsByMatch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list tips of match: %w", err)
	}

	tipsters := make([]uuid.UUID, 0, len(tips))
	for _, tip := range tips {
		points := scoring.ScoreTip(match, tip.ToModel(), league.ScoringSystem)
		if err := q.UpdateTipPoints(ctx, db.UpdateTipPointsParams{
			ID:     tip.ID,
			Points: int32(points),
		}); err != nil {
			return nil, fmt.Errorf("failed to update tip points: %w", err)
		}
		tipsters = append(tipsters, tip.UserID)
	}
	result.TipsScored = len(tips)

	if len(tipsters) > 0 {
		message, err := resultMessage(ctx, q, match)
		if err != nil {
			return nil, err
		}
		link := "/matches/" + match.ID.String()
		if _, err := notifications.Enqueue(ctx, q, notifications.Batch{
			Type:     models.NotificationTypeResult,
			UserIDs:  tipsters,
			Message:  message,
			Link:     &link,
			LeagueID: league.ID,
		}); err != nil {
			return nil, err
		}

		awards, err := achievements.Grant(ctx, q, tipsters)
		if err != nil {
			return nil, err
		}
		result.Awards = len(awards)
	}

	return result, writeEvaluated(ctx, q, result)
}

func resultMessage(ctx context.Context, q EvaluationQueries, match models.Match) (string, error) {
	home, err := q.GetTeam(ctx, match.HomeTeamID)
	if err != nil {
		return "", fmt.Errorf("failed to get home team: %w", err)
	}
	away, err := q.GetTeam(ctx, match.AwayTeamID)
	if err != nil {
		return "", fmt.Errorf("failed to get away team: %w", err)
	}
	return fmt.Sprintf("Final: %s %d - %d %s. Your points are in.", home.Name, *match.HomeScore, *match.AwayScore, away.Name), nil
}

func writeEvaluated(ctx context.Context, q outbox.Inserter, e *Evaluation) error {
	_, err := outbox.Write(ctx, q, outbox.Event{
		AggregateID: e.Match.ID,
		Type:        outbox.EventMatchEvaluated,
		Payload: outbox.MatchEvaluatedPayload{
			MatchID:    e.Match.ID,
			RoundID:    e.Match.RoundID,
			LeagueID:   e.LeagueID,
			HomeScore:  e.Match.HomeScore,
			AwayScore:  e.Match.AwayScore,
			Status:     string(e.Match.Status),
			TipsScored: e.TipsScored,
		},
		Headers: outbox.LeagueHeaders(e.LeagueID),
	})
	return err
}
