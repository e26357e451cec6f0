// Package gateway pushes relayed league events to websocket clients.
package gateway

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// LeagueEvent is the frame written to websocket clients
type LeagueEvent struct {
	ID        string          `json:"id"`
	LeagueID  string          `json:"league_id,omitempty"`
	Type      string          `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// BroadcastMessage is a frame and its audience. A nil LeagueID targets the
// listed users in every league they are watching.
type BroadcastMessage struct {
	LeagueID uuid.UUID
	Event    *LeagueEvent
	UserIDs  []uuid.UUID // Optional: if set, only these users receive it
}

func (m BroadcastMessage) wants(userID uuid.UUID) bool {
	if len(m.UserIDs) == 0 {
		return true
	}
	for _, id := range m.UserIDs {
		if id == userID {
			return true
		}
	}
	return false
}
