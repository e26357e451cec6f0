package models

import (
	"time"

	"github.com/google/uuid"
)

// Winner is the predicted or actual outcome of a match
type Winner string

const (
	WinnerHome Winner = "home"
	WinnerAway Winner = "away"
	WinnerDraw Winner = "draw"
)

// IsValid reports whether w is a known outcome
func (w Winner) IsValid() bool {
	switch w {
	case WinnerHome, WinnerAway, WinnerDraw:
		return true
	default:
		return false
	}
}

// Tip is a user's prediction for one match
type Tip struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	MatchID   uuid.UUID `json:"match_id"`
	HomeScore *int      `json:"home_score,omitempty"`
	AwayScore *int      `json:"away_score,omitempty"`
	Winner    *Winner   `json:"winner,omitempty"`
	Points    int       `json:"points"`
	Submitted bool      `json:"submitted"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
