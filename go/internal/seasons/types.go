package seasons

import (
	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/models"
)

// CreateSeasonRequest represents the data needed to create a new season
type CreateSeasonRequest struct {
	Name        string            `json:"name" validate:"required,max=100"`
	Description *string           `json:"description,omitempty" validate:"omitempty,max=1000"`
	Image       *string           `json:"image,omitempty" validate:"omitempty,url"`
	Type        models.SeasonType `json:"type" validate:"omitempty,oneof=official community"`
	Rules       *string           `json:"rules,omitempty" validate:"omitempty,max=5000"`
}

// UpdateSeasonRequest represents the data that can be updated for a season.
// Nil fields keep their current value.
type UpdateSeasonRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	Image       *string `json:"image,omitempty" validate:"omitempty,url"`
	Rules       *string `json:"rules,omitempty" validate:"omitempty,max=5000"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// JoinSeasonRequest carries the invite code shared by a season's creator
type JoinSeasonRequest struct {
	InviteCode string `json:"invite_code" validate:"required,len=6,alphanum"`
}

// SeasonDetail is a season together with its leagues
type SeasonDetail struct {
	models.Season
	Leagues []models.League `json:"leagues"`
}

// NewSeason is the repository input of a season insert
type NewSeason struct {
	Name        string
	Description *string
	Image       *string
	Type        models.SeasonType
	InviteCode  string
	Rules       *string
	CreatorID   uuid.UUID
}
