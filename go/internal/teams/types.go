package teams

import "github.com/mcdev12/tipster/go/internal/models"

// CreateTeamRequest represents the data needed to create a new team
type CreateTeamRequest struct {
	Name string          `json:"name" validate:"required,max=100"`
	Logo *string         `json:"logo,omitempty"`
	Type models.TeamType `json:"type" validate:"omitempty,oneof=official community"`
}

// UpdateTeamRequest represents the data that can be updated for a team
type UpdateTeamRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Logo *string `json:"logo,omitempty"`
}
