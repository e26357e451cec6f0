package models

import (
	"time"

	"github.com/google/uuid"
)

type TeamType string

const (
	TeamTypeOfficial  TeamType = "official"
	TeamTypeCommunity TeamType = "community"
)

// Team represents a team that can play in matches
type Team struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Logo      *string    `json:"logo,omitempty"`
	Type      TeamType   `json:"type"`
	CreatorID *uuid.UUID `json:"creator_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
