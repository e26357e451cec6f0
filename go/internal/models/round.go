package models

import (
	"time"

	"github.com/google/uuid"
)

// Round is a block of matches sharing one tipping window. EndDate is the tipping deadline.
type Round struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	LeagueID    uuid.UUID `json:"league_id"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DeadlinePassed reports whether tipping is closed at now
func (r Round) DeadlinePassed(now time.Time) bool {
	return now.After(r.EndDate)
}

// Started reports whether the round's start date lies before now
func (r Round) Started(now time.Time) bool {
	return r.StartDate.Before(now)
}
