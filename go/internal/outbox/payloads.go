package outbox

import (
	"time"

	"github.com/google/uuid"
)

// Event payloads shared by the api writers and the gateway

// RoundCreatedPayload is the payload of a round.created event
type RoundCreatedPayload struct {
	RoundID   uuid.UUID `json:"round_id"`
	LeagueID  uuid.UUID `json:"league_id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// MatchEvaluatedPayload is the payload of a match.evaluated event
type MatchEvaluatedPayload struct {
	MatchID    uuid.UUID `json:"match_id"`
	RoundID    uuid.UUID `json:"round_id"`
	LeagueID   uuid.UUID `json:"league_id"`
	HomeScore  *int      `json:"home_score,omitempty"`
	AwayScore  *int      `json:"away_score,omitempty"`
	Status     string    `json:"status"`
	TipsScored int       `json:"tips_scored"`
}

// NotificationsCreatedPayload is the payload of a notifications.created event
type NotificationsCreatedPayload struct {
	Type    string      `json:"type"`
	UserIDs []uuid.UUID `json:"user_ids"`
	Link    *string     `json:"link,omitempty"`
}

// AchievementAwardedPayload is the payload of an achievement.awarded event
type AchievementAwardedPayload struct {
	UserID        uuid.UUID `json:"user_id"`
	AchievementID uuid.UUID `json:"achievement_id"`
	Name          string    `json:"name"`
}
