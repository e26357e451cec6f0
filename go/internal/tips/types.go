package tips

import (
	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/models"
)

// SubmitTipRequest is a prediction for one match. Exact score matches read
// the scores, winner matches read Winner.
type SubmitTipRequest struct {
	MatchID   uuid.UUID      `json:"match_id" validate:"required"`
	HomeScore *int           `json:"home_score,omitempty" validate:"omitempty,min=0"`
	AwayScore *int           `json:"away_score,omitempty" validate:"omitempty,min=0"`
	Winner    *models.Winner `json:"winner,omitempty" validate:"omitempty,oneof=home away draw"`
}

// TipInput is a normalized tip ready to be stored
type TipInput struct {
	UserID    uuid.UUID
	MatchID   uuid.UUID
	HomeScore *int
	AwayScore *int
	Winner    *models.Winner
}
