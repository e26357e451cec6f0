package models

import (
	"time"

	"github.com/google/uuid"
)

// LeagueType represents the type of league
type LeagueType string

const (
	LeagueTypeOfficial LeagueType = "official"
	LeagueTypeCustom   LeagueType = "custom"
)

// ScoringSystem holds the point weights of a league. A nil field means the
// default weight for that key applies.
type ScoringSystem struct {
	ExactScore     *int `json:"exact_score,omitempty"`
	CorrectGoals   *int `json:"correct_goals,omitempty"`
	CorrectWinner  *int `json:"correct_winner,omitempty"`
	GoalDifference *int `json:"goal_difference,omitempty"`
}

// IsEmpty reports whether no weight is set
func (s ScoringSystem) IsEmpty() bool {
	return s.ExactScore == nil && s.CorrectGoals == nil && s.CorrectWinner == nil && s.GoalDifference == nil
}

// League represents a tipping league inside a season
type League struct {
	ID            uuid.UUID     `json:"id"`
	Name          string        `json:"name"`
	Description   *string       `json:"description,omitempty"`
	Image         *string       `json:"image,omitempty"`
	Type          LeagueType    `json:"type"`
	PasswordHash  *string       `json:"-"`
	SeasonID      uuid.UUID     `json:"season_id"`
	CreatorID     uuid.UUID     `json:"creator_id"`
	IsActive      bool          `json:"is_active"`
	ScoringSystem ScoringSystem `json:"scoring_system"`
	ScoringLocked bool          `json:"scoring_locked"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// PasswordProtected reports whether joining the league requires a password
func (l League) PasswordProtected() bool {
	return l.PasswordHash != nil
}
