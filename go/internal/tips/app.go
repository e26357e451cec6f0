// Package tips accepts predictions until the round deadline.
package tips

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/tipster/go/internal/apperrors"
	"github.com/mcdev12/tipster/go/internal/models"
	"github.com/mcdev12/tipster/go/internal/scoring"
	"github.com/rs/zerolog/log"
)

// TipsRepository defines what the app layer needs from the repository
type TipsRepository interface {
	GetMatchWithRound(ctx context.Context, matchID uuid.UUID) (*models.Match, *models.Round, error)
	UpsertTip(ctx context.Context, in TipInput) (*models.Tip, error)
	GetTip(ctx context.Context, userID, matchID uuid.UUID) (*models.Tip, error)
	ListTips(ctx context.Context, userID uuid.UUID, roundID *uuid.UUID) ([]models.Tip, error)
	GetLeagueSeasonID(ctx context.Context, leagueID uuid.UUID) (uuid.UUID, error)
}

// LeaderboardInvalidator drops cached standings
type LeaderboardInvalidator interface {
	Invalidate(ctx context.Context, leagueID, seasonID uuid.UUID)
}

// App handles tips business logic
type App struct {
	repo        TipsRepository
	clock       clockwork.Clock
	leaderboard LeaderboardInvalidator
}

// NewApp creates a new tips App
func NewApp(repo TipsRepository, clock clockwork.Clock, leaderboard LeaderboardInvalidator) *App {
	return &App{
		repo:        repo,
		clock:       clock,
		leaderboard: leaderboard,
	}
}

// SubmitTip records the caller's prediction for a match, replacing any earlier
// one. Writes after the round's end date fail with a DeadlinePassedError
// whatever the state of the match.
func (a *App) SubmitTip(ctx context.Context, user models.User, req SubmitTipRequest) (*models.Tip, error) {
	if req.MatchID == uuid.Nil {
		return nil, apperrors.NewValidationError("match_id", "is required")
	}

	match, round, err := a.repo.GetMatchWithRound(ctx, req.MatchID)
	if err != nil {
		return nil, err
	}
	if round.DeadlinePassed(a.clock.Now()) {
		return nil, apperrors.NewDeadlinePassedError(round.EndDate)
	}

	in, err := normalize(match.TipType, req)
	if err != nil {
		return nil, err
	}
	in.UserID = user.ID

	tip, err := a.repo.UpsertTip(ctx, in)
	if err != nil {
		return nil, err
	}
	a.invalidate(ctx, round.LeagueID)

	log.Info().
		Str("tip_id", tip.ID.String()).
		Str("match_id", match.ID.String()).
		Str("user_id", user.ID.String()).
		Msg("submitted tip")
	return tip, nil
}

// invalidate drops the standings whose tip counts the new tip changed. The
// tip is already stored, so a failed lookup is only logged.
func (a *App) invalidate(ctx context.Context, leagueID uuid.UUID) {
	seasonID, err := a.repo.GetLeagueSeasonID(ctx, leagueID)
	if err != nil {
		log.Warn().Err(err).Str("league_id", leagueID.String()).Msg("failed to resolve season for leaderboard invalidation")
		return
	}
	a.leaderboard.Invalidate(ctx, leagueID, seasonID)
}

// GetTip returns the caller's tip for a match
func (a *App) GetTip(ctx context.Context, user models.User, matchID uuid.UUID) (*models.Tip, error) {
	tip, err := a.repo.GetTip(ctx, user.ID, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tip: %w", err)
	}
	return tip, nil
}

// ListTips returns the caller's tips, optionally those of one round
func (a *App) ListTips(ctx context.Context, user models.User, roundID *uuid.UUID) ([]models.Tip, error) {
	tips, err := a.repo.ListTips(ctx, user.ID, roundID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tips: %w", err)
	}
	return tips, nil
}

// normalize checks req against the tip type of its match and keeps only the
// fields that type reads. Exact score tips get their winner from the scores.
func normalize(tipType models.TipType, req SubmitTipRequest) (TipInput, error) {
	in := TipInput{MatchID: req.MatchID}

	switch tipType {
	case models.TipTypeExactScore:
		if req.HomeScore == nil || req.AwayScore == nil {
			return TipInput{}, apperrors.NewValidationError("home_score", "home_score and away_score are required for exact score matches")
		}
		if *req.HomeScore < 0 || *req.AwayScore < 0 {
			return TipInput{}, apperrors.NewValidationError("home_score", "scores cannot be negative")
		}
		winner := scoring.WinnerFromScores(*req.HomeScore, *req.AwayScore)
		in.HomeScore = req.HomeScore
		in.AwayScore = req.AwayScore
		in.Winner = &winner
	case models.TipTypeWinner:
		if req.Winner == nil || !req.Winner.IsValid() {
			return TipInput{}, apperrors.NewValidationError("winner", "must be home, away or draw")
		}
		winner := *req.Winner
		in.Winner = &winner
	default:
		return TipInput{}, apperrors.NewStateConflictError("match has unknown tip type %q", tipType)
	}
	return in, nil
}
