package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/mcdev12/tipster/go/internal/apperrors"
	"github.com/mcdev12/tipster/go/internal/outbox"
	"github.com/mcdev12/tipster/go/internal/outbox/relay"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type FakeTokenVerifier struct {
	VerifyFunc func(token string) (uuid.UUID, error)
}

func (f *FakeTokenVerifier) Verify(token string) (uuid.UUID, error) {
	return f.VerifyFunc(token)
}

type FakeMembershipChecker struct {
	CanWatchLeagueFunc func(ctx context.Context, userID, leagueID uuid.UUID) (bool, error)
}

func (f *FakeMembershipChecker) CanWatchLeague(ctx context.Context, userID, leagueID uuid.UUID) (bool, error) {
	return f.CanWatchLeagueFunc(ctx, userID, leagueID)
}

type recordingBroadcaster struct {
	messages []BroadcastMessage
}

func (b *recordingBroadcaster) Broadcast(message BroadcastMessage) {
	b.messages = append(b.messages, message)
}

// tokens maps each token to the user it stands for
func tokens(users map[string]uuid.UUID) *FakeTokenVerifier {
	return &FakeTokenVerifier{VerifyFunc: func(token string) (uuid.UUID, error) {
		if id, ok := users[token]; ok {
			return id, nil
		}
		return uuid.Nil, apperrors.ErrUnauthorized
	}}
}

func members(allowed map[uuid.UUID]uuid.UUID) *FakeMembershipChecker {
	return &FakeMembershipChecker{CanWatchLeagueFunc: func(_ context.Context, userID, leagueID uuid.UUID) (bool, error) {
		return allowed[userID] == leagueID, nil
	}}
}

func envelope(t *testing.T, eventType string, payload any) []byte {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	data, err := json.Marshal(relay.Envelope{
		EventID:   uuid.NewString(),
		EventType: eventType,
		Timestamp: time.Now().UTC(),
		Payload:   raw,
	})
	require.NoError(t, err)
	return data
}

func TestEventConsumer_ProcessMessage(t *testing.T) {
	leagueID := uuid.New()
	winner := uuid.New()

	tests := []struct {
		name       string
		eventType  string
		header     nats.Header
		payload    any
		wantLeague uuid.UUID
		wantUsers  []uuid.UUID
		wantQueued bool
	}{
		{
			name:       "league event",
			eventType:  outbox.EventMatchEvaluated,
			header:     nats.Header{outbox.HeaderLeagueID: []string{leagueID.String()}},
			payload:    outbox.MatchEvaluatedPayload{LeagueID: leagueID, Status: "finished"},
			wantLeague: leagueID,
			wantQueued: true,
		},
		{
			name:       "notifications go to their recipients",
			eventType:  outbox.EventNotificationsCreated,
			header:     nats.Header{outbox.HeaderLeagueID: []string{leagueID.String()}},
			payload:    outbox.NotificationsCreatedPayload{Type: "result", UserIDs: []uuid.UUID{winner}},
			wantLeague: leagueID,
			wantUsers:  []uuid.UUID{winner},
			wantQueued: true,
		},
		{
			name:       "achievement without league",
			eventType:  outbox.EventAchievementAwarded,
			header:     nats.Header{},
			payload:    outbox.AchievementAwardedPayload{UserID: winner, Name: "Sharpshooter"},
			wantUsers:  []uuid.UUID{winner},
			wantQueued: true,
		},
		{
			name:      "no audience",
			eventType: outbox.EventRoundCreated,
			header:    nats.Header{},
			payload:   outbox.RoundCreatedPayload{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &recordingBroadcaster{}
			ec := &EventConsumer{broadcaster: b}

			err := ec.processMessage("tipster.events."+tt.eventType, tt.header, envelope(t, tt.eventType, tt.payload))
			require.NoError(t, err)

			if !tt.wantQueued {
				assert.Empty(t, b.messages)
				return
			}
			require.Len(t, b.messages, 1)
			msg := b.messages[0]
			assert.Equal(t, tt.wantLeague, msg.LeagueID)
			assert.Equal(t, tt.wantUsers, msg.UserIDs)
			assert.Equal(t, tt.eventType, msg.Event.Type)
		})
	}
}

func TestEventConsumer_ProcessMessageRejectsGarbage(t *testing.T) {
	ec := &EventConsumer{broadcaster: &recordingBroadcaster{}}

	assert.Error(t, ec.processMessage("tipster.events.x", nats.Header{}, []byte("{")))
	bad := nats.Header{outbox.HeaderLeagueID: []string{"nope"}}
	assert.Error(t, ec.processMessage("tipster.events.x", bad, envelope(t, "x", struct{}{})))
}

func newGateway(t *testing.T, users map[string]uuid.UUID, allowed map[uuid.UUID]uuid.UUID) (*ConnectionManager, *httptest.Server) {
	t.Helper()
	cm := NewConnectionManager(DefaultConnectionConfig())
	ctx, cancel := context.WithCancel(context.Background())
	go cm.Start(ctx)

	r := chi.NewRouter()
	NewWebSocketHandler(cm, tokens(users), members(allowed)).RegisterRoutes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(func() {
		cancel()
		srv.Close()
	})
	return cm, srv
}

func dial(t *testing.T, srv *httptest.Server, leagueID uuid.UUID, token string) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/leagues/" + leagueID.String() + "?token=" + token
	return websocket.DefaultDialer.Dial(url, nil)
}

func waitForConnections(t *testing.T, cm *ConnectionManager, n int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return cm.Stats().TotalConnections == n
	}, time.Second, 10*time.Millisecond)
}

func readEvent(t *testing.T, conn *websocket.Conn) LeagueEvent {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	var ev LeagueEvent
	require.NoError(t, conn.ReadJSON(&ev))
	return ev
}

func TestGateway_BroadcastToLeague(t *testing.T) {
	league, other := uuid.New(), uuid.New()
	alice, bob, carol := uuid.New(), uuid.New(), uuid.New()
	cm, srv := newGateway(t,
		map[string]uuid.UUID{"a": alice, "b": bob, "c": carol},
		map[uuid.UUID]uuid.UUID{alice: league, bob: league, carol: other},
	)

	connA, _, err := dial(t, srv, league, "a")
	require.NoError(t, err)
	defer connA.Close()
	connB, _, err := dial(t, srv, league, "b")
	require.NoError(t, err)
	defer connB.Close()
	connC, _, err := dial(t, srv, other, "c")
	require.NoError(t, err)
	defer connC.Close()
	waitForConnections(t, cm, 3)

	cm.Broadcast(BroadcastMessage{LeagueID: league, Event: &LeagueEvent{ID: "1", Type: outbox.EventMatchEvaluated}})
	assert.Equal(t, "1", readEvent(t, connA).ID)
	assert.Equal(t, "1", readEvent(t, connB).ID)

	// personal events reach only their recipient, whichever league they watch
	cm.Broadcast(BroadcastMessage{UserIDs: []uuid.UUID{carol}, Event: &LeagueEvent{ID: "2", Type: outbox.EventAchievementAwarded}})
	assert.Equal(t, "2", readEvent(t, connC).ID)

	stats := cm.Stats()
	assert.Equal(t, 2, stats.ActiveLeagues)
	assert.Equal(t, 2, stats.LeagueConnections[league.String()])

	connA.Close()
	waitForConnections(t, cm, 2)
}

func TestGateway_Rejections(t *testing.T) {
	league := uuid.New()
	alice, mallory := uuid.New(), uuid.New()
	_, srv := newGateway(t,
		map[string]uuid.UUID{"a": alice, "m": mallory},
		map[uuid.UUID]uuid.UUID{alice: league},
	)

	tests := []struct {
		name  string
		token string
		want  int
	}{
		{name: "missing token", token: "", want: http.StatusUnauthorized},
		{name: "bad token", token: "zzz", want: http.StatusUnauthorized},
		{name: "not a participant", token: "m", want: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, resp, err := dial(t, srv, league, tt.token)
			require.True(t, errors.Is(err, websocket.ErrBadHandshake))
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
