package rounds

import (
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/models"
)

// CreateRoundRequest represents the data needed to create a new round
type CreateRoundRequest struct {
	LeagueID    uuid.UUID `json:"league_id" validate:"required"`
	Name        string    `json:"name" validate:"required,max=100"`
	Description *string   `json:"description,omitempty" validate:"omitempty,max=1000"`
	StartDate   time.Time `json:"start_date" validate:"required"`
	EndDate     time.Time `json:"end_date" validate:"required"`
}

// UpdateRoundRequest represents the data that can be updated for a round.
// Nil fields keep their current value.
type UpdateRoundRequest struct {
	Name        *string    `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=1000"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	IsActive    *bool      `json:"is_active,omitempty"`
}

// RoundDetail is a round together with its matches
type RoundDetail struct {
	models.Round
	Matches []models.Match `json:"matches"`
}

// NewRound is the repository input of a round insert
type NewRound struct {
	LeagueID    uuid.UUID
	Name        string
	Description *string
	StartDate   time.Time
	EndDate     time.Time
}
