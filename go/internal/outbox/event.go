// Package outbox records domain events in the same transaction as the write
// that caused them. A relay process publishes the rows afterwards.
package outbox

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/db"
)

// Event types. The relay publishes each on subject <prefix>.<type>.
const (
	EventRoundCreated         = "round.created"
	EventMatchEvaluated       = "match.evaluated"
	EventNotificationsCreated = "notifications.created"
	EventAchievementAwarded   = "achievement.awarded"
)

// Header keys carried next to the payload
const (
	HeaderLeagueID = "League-ID"
	HeaderSeasonID = "Season-ID"
)

// Inserter is the slice of db.Queries the writer needs. Pass the
// transaction-bound queries so the event commits with the change.
type Inserter interface {
	InsertOutboxEvent(ctx context.Context, arg db.InsertOutboxEventParams) error
}

// Event is one outbox row before insertion
type Event struct {
	AggregateID uuid.UUID
	Type        string
	Payload     any
	Headers     map[string]string
}

// Write inserts ev and returns the generated event id
func Write(ctx context.Context, q Inserter, ev Event) (uuid.UUID, error) {
	if ev.Type == "" {
		return uuid.Nil, fmt.Errorf("outbox event type cannot be empty")
	}

	payload, err := json.Marshal(ev.Payload)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal %s payload: %w", ev.Type, err)
	}

	var headers []byte
	if len(ev.Headers) > 0 {
		if headers, err = json.Marshal(ev.Headers); err != nil {
			return uuid.Nil, fmt.Errorf("failed to marshal %s headers: %w", ev.Type, err)
		}
	}

	id := uuid.New()
	if err := q.InsertOutboxEvent(ctx, db.InsertOutboxEventParams{
		ID:          id,
		AggregateID: ev.AggregateID,
		EventType:   ev.Type,
		Payload:     payload,
		Headers:     headers,
	}); err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert %s outbox event: %w", ev.Type, err)
	}
	return id, nil
}

// LeagueHeaders tags an event with the league it belongs to
func LeagueHeaders(leagueID uuid.UUID) map[string]string {
	return map[string]string{HeaderLeagueID: leagueID.String()}
}
