package relay

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	cfg := DefaultJetStreamConfig()
	leagueID := uuid.New()
	ev := Event{
		ID:          uuid.New(),
		AggregateID: uuid.New(),
		EventType:   "match.evaluated",
		Payload:     json.RawMessage(`{"homeScore":2}`),
		Headers:     map[string]string{"League-ID": leagueID.String()},
		CreatedAt:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	msg, err := NewMessage(cfg, ev)
	require.NoError(t, err)

	assert.Equal(t, "tipster.events.match.evaluated", msg.Subject)
	assert.Equal(t, leagueID.String(), msg.Header.Get("League-ID"))
	assert.Equal(t, ev.ID.String(), msg.Header.Get("Event-ID"))
	assert.Equal(t, "match.evaluated", msg.Header.Get("Event-Type"))

	var env Envelope
	require.NoError(t, json.Unmarshal(msg.Data, &env))
	assert.Equal(t, ev.ID.String(), env.EventID)
	assert.Equal(t, ev.AggregateID.String(), env.AggregateID)
	assert.JSONEq(t, `{"homeScore":2}`, string(env.Payload))
	assert.True(t, ev.CreatedAt.Equal(env.Timestamp))
}
