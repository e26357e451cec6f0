package matches

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/apperrors"
	"github.com/mcdev12/tipster/go/internal/authz"
	"github.com/mcdev12/tipster/go/internal/models"
	"github.com/rs/zerolog/log"
)

// MatchesRepository defines what the app layer needs from the repository
type MatchesRepository interface {
	CreateMatch(ctx context.Context, req NewMatch) (*models.Match, error)
	GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error)
	ListMatchesByRound(ctx context.Context, roundID uuid.UUID) ([]models.Match, error)
	UpdateMatch(ctx context.Context, match models.Match) (*models.Match, error)
	DeleteMatch(ctx context.Context, id uuid.UUID) error
	GetMatchLeague(ctx context.Context, id uuid.UUID) (leagueID, seasonID uuid.UUID, err error)
	CountTips(ctx context.Context, matchID uuid.UUID) (int64, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
	EvaluateMatch(ctx context.Context, id uuid.UUID, req EvaluateMatchRequest) (*Evaluation, error)
}

// Authorizer decides whether a user may manage a target
type Authorizer interface {
	Require(ctx context.Context, user models.User, target authz.Target) error
}

// LeaderboardInvalidator drops cached standings that a scoring change made stale
type LeaderboardInvalidator interface {
	Invalidate(ctx context.Context, leagueID, seasonID uuid.UUID)
}

// App handles matches business logic
type App struct {
	repo        MatchesRepository
	authz       Authorizer
	leaderboard LeaderboardInvalidator
}

// NewApp creates a new matches App
func NewApp(repo MatchesRepository, authorizer Authorizer, leaderboard LeaderboardInvalidator) *App {
	return &App{
		repo:        repo,
		authz:       authorizer,
		leaderboard: leaderboard,
	}
}

// CreateMatch schedules a match in a round the user manages
func (a *App) CreateMatch(ctx context.Context, user models.User, req CreateMatchRequest) (*models.Match, error) {
	if req.TipType == "" {
		req.TipType = models.TipTypeExactScore
	}
	if err := a.validateCreateMatchRequest(req); err != nil {
		return nil, err
	}
	if err := a.authz.Require(ctx, user, authz.Round(req.RoundID)); err != nil {
		return nil, err
	}
	if err := a.requireTeams(ctx, req.HomeTeamID, req.AwayTeamID); err != nil {
		return nil, err
	}

	match, err := a.repo.CreateMatch(ctx, NewMatch{
		RoundID:    req.RoundID,
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		MatchTime:  req.MatchTime,
		TipType:    req.TipType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	log.Info().
		Str("match_id", match.ID.String()).
		Str("round_id", match.RoundID.String()).
		Str("tip_type", string(match.TipType)).
		Msg("created match")
	return match, nil
}

// GetMatch retrieves a match by ID
func (a *App) GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	match, err := a.repo.GetMatch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return match, nil
}

// ListMatches lists the matches of a round
func (a *App) ListMatches(ctx context.Context, roundID uuid.UUID) ([]models.Match, error) {
	matches, err := a.repo.ListMatchesByRound(ctx, roundID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return matches, nil
}

// UpdateMatch reschedules a match the user manages. The tip type is frozen
// once the match has tips.
func (a *App) UpdateMatch(ctx context.Context, user models.User, id uuid.UUID, req UpdateMatchRequest) (*models.Match, error) {
	if err := a.authz.Require(ctx, user, authz.Match(id)); err != nil {
		return nil, err
	}

	match, err := a.repo.GetMatch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	if req.HomeTeamID != nil {
		match.HomeTeamID = *req.HomeTeamID
	}
	if req.AwayTeamID != nil {
		match.AwayTeamID = *req.AwayTeamID
	}
	if req.MatchTime != nil {
		if req.MatchTime.IsZero() {
			return nil, apperrors.NewValidationError("match_time", "cannot be empty")
		}
		match.MatchTime = *req.MatchTime
	}
	if match.HomeTeamID == match.AwayTeamID {
		return nil, apperrors.NewValidationError("away_team_id", "must differ from home_team_id")
	}
	if req.HomeTeamID != nil || req.AwayTeamID != nil {
		if err := a.requireTeams(ctx, match.HomeTeamID, match.AwayTeamID); err != nil {
			return nil, err
		}
	}

	if req.TipType != nil && *req.TipType != match.TipType {
		if !req.TipType.IsValid() {
			return nil, apperrors.NewValidationError("tip_type", "must be exact_score or winner")
		}
		tips, err := a.repo.CountTips(ctx, id)
		if err != nil {
			return nil, err
		}
		if tips > 0 {
			return nil, apperrors.NewStateConflictError("tip type cannot change once the match has %d tips", tips)
		}
		match.TipType = *req.TipType
	}

	updated, err := a.repo.UpdateMatch(ctx, *match)
	if err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}

	log.Info().Str("match_id", id.String()).Str("by", user.ID.String()).Msg("updated match")
	return updated, nil
}

// DeleteMatch deletes a match the user manages. Its tips go with it, so the
// cached standings of the league and its season are dropped.
func (a *App) DeleteMatch(ctx context.Context, user models.User, id uuid.UUID) error {
	if err := a.authz.Require(ctx, user, authz.Match(id)); err != nil {
		return err
	}
	leagueID, seasonID, err := a.repo.GetMatchLeague(ctx, id)
	if err != nil {
		return err
	}
	if err := a.repo.DeleteMatch(ctx, id); err != nil {
		return err
	}
	a.leaderboard.Invalidate(ctx, leagueID, seasonID)

	log.Info().Str("match_id", id.String()).Str("by", user.ID.String()).Msg("deleted match")
	return nil
}

// EvaluateMatch records a result for a match the user manages and rescores
// its tips. Cached standings of the league and its season are dropped after
// the transaction commits.
func (a *App) EvaluateMatch(ctx context.Context, user models.User, id uuid.UUID, req EvaluateMatchRequest) (*Evaluation, error) {
	if err := validateEvaluateMatchRequest(req); err != nil {
		return nil, err
	}
	if err := a.authz.Require(ctx, user, authz.Match(id)); err != nil {
		return nil, err
	}

	result, err := a.repo.EvaluateMatch(ctx, id, req)
	if err != nil {
		return nil, err
	}

	a.leaderboard.Invalidate(ctx, result.LeagueID, result.SeasonID)

	log.Info().
		Str("match_id", id.String()).
		Str("status", string(result.Match.Status)).
		Int("tips_scored", result.TipsScored).
		Int("achievements_awarded", result.Awards).
		Str("by", user.ID.String()).
		Msg("evaluated match")
	return result, nil
}

func (a *App) requireTeams(ctx context.Context, ids ...uuid.UUID) error {
	for _, id := range ids {
		if _, err := a.repo.GetTeam(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// validateCreateMatchRequest validates create match request
func (a *App) validateCreateMatchRequest(req CreateMatchRequest) error {
	if req.RoundID == uuid.Nil {
		return apperrors.NewValidationError("round_id", "is required")
	}
	if req.HomeTeamID == uuid.Nil || req.AwayTeamID == uuid.Nil {
		return apperrors.NewValidationError("home_team_id", "home_team_id and away_team_id are required")
	}
	if req.HomeTeamID == req.AwayTeamID {
		return apperrors.NewValidationError("away_team_id", "must differ from home_team_id")
	}
	if req.MatchTime.IsZero() {
		return apperrors.NewValidationError("match_time", "is required")
	}
	if !req.TipType.IsValid() {
		return apperrors.NewValidationError("tip_type", "must be exact_score or winner")
	}
	return nil
}

func validateEvaluateMatchRequest(req EvaluateMatchRequest) error {
	if !req.Status.IsValid() {
		return apperrors.NewValidationError("status", "must be scheduled, in_progress, finished or canceled")
	}
	if (req.HomeScore == nil) != (req.AwayScore == nil) {
		return apperrors.NewValidationError("home_score", "home_score and away_score go together")
	}
	if req.HomeScore != nil && (*req.HomeScore < 0 || *req.AwayScore < 0) {
		return apperrors.NewValidationError("home_score", "scores cannot be negative")
	}
	return nil
}
