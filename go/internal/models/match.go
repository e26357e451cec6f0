package models

import (
	"time"

	"github.com/google/uuid"
)

type MatchStatus string

const (
	MatchStatusScheduled  MatchStatus = "scheduled"
	MatchStatusInProgress MatchStatus = "in_progress"
	MatchStatusFinished   MatchStatus = "finished"
	MatchStatusCanceled   MatchStatus = "canceled"
)

// IsValid reports whether s is a known status
func (s MatchStatus) IsValid() bool {
	switch s {
	case MatchStatusScheduled, MatchStatusInProgress, MatchStatusFinished, MatchStatusCanceled:
		return true
	default:
		return false
	}
}

// TipType decides which prediction a match accepts
type TipType string

const (
	TipTypeExactScore TipType = "exact_score"
	TipTypeWinner     TipType = "winner"
)

// IsValid reports whether t is a known tip type
func (t TipType) IsValid() bool {
	switch t {
	case TipTypeExactScore, TipTypeWinner:
		return true
	default:
		return false
	}
}

// Match is a single fixture inside a round
type Match struct {
	ID         uuid.UUID   `json:"id"`
	RoundID    uuid.UUID   `json:"round_id"`
	HomeTeamID uuid.UUID   `json:"home_team_id"`
	AwayTeamID uuid.UUID   `json:"away_team_id"`
	MatchTime  time.Time   `json:"match_time"`
	HomeScore  *int        `json:"home_score,omitempty"`
	AwayScore  *int        `json:"away_score,omitempty"`
	Status     MatchStatus `json:"status"`
	TipType    TipType     `json:"tip_type"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// HasResult reports whether the match is finished with both scores recorded
func (m Match) HasResult() bool {
	return m.Status == MatchStatusFinished && m.HomeScore != nil && m.AwayScore != nil
}
