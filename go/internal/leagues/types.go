package leagues

import (
	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/models"
)

// CreateLeagueRequest represents the data needed to create a new league
type CreateLeagueRequest struct {
	SeasonID      uuid.UUID             `json:"season_id" validate:"required"`
	Name          string                `json:"name" validate:"required,max=100"`
	Description   *string               `json:"description,omitempty" validate:"omitempty,max=1000"`
	Image         *string               `json:"image,omitempty" validate:"omitempty,url"`
	Type          models.LeagueType     `json:"type" validate:"omitempty,oneof=official custom"`
	Password      *string               `json:"password,omitempty" validate:"omitempty,min=4,max=72"`
	ScoringSystem *models.ScoringSystem `json:"scoring_system,omitempty"`
}

// UpdateLeagueRequest represents the data that can be updated for a league.
// Nil fields keep their current value; an empty password removes protection.
type UpdateLeagueRequest struct {
	Name          *string               `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description   *string               `json:"description,omitempty" validate:"omitempty,max=1000"`
	Image         *string               `json:"image,omitempty" validate:"omitempty,url"`
	Password      *string               `json:"password,omitempty" validate:"omitempty,max=72"`
	IsActive      *bool                 `json:"is_active,omitempty"`
	ScoringSystem *models.ScoringSystem `json:"scoring_system,omitempty"`
}

// NewLeague is the repository input of a league insert
type NewLeague struct {
	SeasonID      uuid.UUID
	Name          string
	Description   *string
	Image         *string
	Type          models.LeagueType
	PasswordHash  *string
	CreatorID     uuid.UUID
	ScoringSystem models.ScoringSystem
}
