package matches

import (
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/models"
)

// CreateMatchRequest represents the data needed to create a new match
type CreateMatchRequest struct {
	RoundID    uuid.UUID      `json:"round_id" validate:"required"`
	HomeTeamID uuid.UUID      `json:"home_team_id" validate:"required"`
	AwayTeamID uuid.UUID      `json:"away_team_id" validate:"required"`
	MatchTime  time.Time      `json:"match_time" validate:"required"`
	TipType    models.TipType `json:"tip_type" validate:"omitempty,oneof=exact_score winner"`
}

// UpdateMatchRequest represents the data that can be updated for a match.
// Nil fields keep their current value.
type UpdateMatchRequest struct {
	HomeTeamID *uuid.UUID      `json:"home_team_id,omitempty"`
	AwayTeamID *uuid.UUID      `json:"away_team_id,omitempty"`
	MatchTime  *time.Time      `json:"match_time,omitempty"`
	TipType    *models.TipType `json:"tip_type,omitempty" validate:"omitempty,oneof=exact_score winner"`
}

// EvaluateMatchRequest carries a match result. Scores are given together or not at all.
type EvaluateMatchRequest struct {
	HomeScore *int               `json:"home_score,omitempty" validate:"omitempty,min=0"`
	AwayScore *int               `json:"away_score,omitempty" validate:"omitempty,min=0"`
	Status    models.MatchStatus `json:"status" validate:"required,oneof=scheduled in_progress finished canceled"`
}

// Evaluation summarizes one evaluate call
type Evaluation struct {
	Match      models.Match `json:"match"`
	LeagueID   uuid.UUID    `json:"league_id"`
	SeasonID   uuid.UUID    `json:"season_id"`
	TipsScored int          `json:"tips_scored"`
	Awards     int          `json:"achievements_awarded"`
}

// NewMatch is the repository input of a match insert
type NewMatch struct {
	RoundID    uuid.UUID
	HomeTeamID uuid.UUID
	AwayTeamID uuid.UUID
	MatchTime  time.Time
	TipType    models.TipType
}
