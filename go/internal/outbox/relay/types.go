// Package relay moves committed outbox rows to JetStream. It reacts to
// pg_notify on the outbox channel and sweeps unsent rows on an interval.
package relay

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event is an outbox row on its way to the broker
type Event struct {
	ID          uuid.UUID         `json:"id"`
	AggregateID uuid.UUID         `json:"aggregate_id"`
	EventType   string            `json:"event_type"`
	Payload     json.RawMessage   `json:"payload"`
	Headers     map[string]string `json:"headers,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// Publisher delivers one event to the broker
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}
