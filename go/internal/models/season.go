package models

import (
	"time"

	"github.com/google/uuid"
)

type SeasonType string

const (
	SeasonTypeOfficial  SeasonType = "official"
	SeasonTypeCommunity SeasonType = "community"
)

// SeasonRole is the role a participant holds inside one season
type SeasonRole string

const (
	SeasonRolePlayer SeasonRole = "player"
	SeasonRoleAdmin  SeasonRole = "admin"
)

// Season groups leagues and the users taking part in them
type Season struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	Image       *string    `json:"image,omitempty"`
	Type        SeasonType `json:"type"`
	InviteCode  string     `json:"invite_code"`
	IsActive    bool       `json:"is_active"`
	Rules       *string    `json:"rules,omitempty"`
	CreatorID   uuid.UUID  `json:"creator_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// UserSeason is a user's membership in a season
type UserSeason struct {
	UserID   uuid.UUID  `json:"user_id"`
	SeasonID uuid.UUID  `json:"season_id"`
	Role     SeasonRole `json:"role"`
	JoinedAt time.Time  `json:"joined_at"`
}
