package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/apperrors"
	"github.com/mcdev12/tipster/go/internal/httpapi"
	"github.com/rs/zerolog/log"
)

// TokenVerifier resolves a bearer token to a user id
type TokenVerifier interface {
	Verify(token string) (uuid.UUID, error)
}

// MembershipChecker reports whether a user may watch a league
type MembershipChecker interface {
	CanWatchLeague(ctx context.Context, userID, leagueID uuid.UUID) (bool, error)
}

type WebSocketHandler struct {
	connectionManager *ConnectionManager
	tokens            TokenVerifier
	members           MembershipChecker
}

func NewWebSocketHandler(cm *ConnectionManager, tokens TokenVerifier, members MembershipChecker) *WebSocketHandler {
	return &WebSocketHandler{
		connectionManager: cm,
		tokens:            tokens,
		members:           members,
	}
}

// HandleLeagueConnection upgrades a client watching one league. Browsers
// cannot set headers on websocket requests, so the token travels in the query.
func (h *WebSocketHandler) HandleLeagueConnection(w http.ResponseWriter, r *http.Request) {
	leagueID, err := httpapi.URLParamUUID(r, "leagueID")
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}

	token := r.URL.Query().Get("token")
	if token == "" {
		httpapi.Error(w, r, fmt.Errorf("%w: token is required", apperrors.ErrUnauthorized))
		return
	}
	userID, err := h.tokens.Verify(token)
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}

	ok, err := h.members.CanWatchLeague(r.Context(), userID, leagueID)
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	if !ok {
		httpapi.Error(w, r, apperrors.NewForbiddenError("not a participant of this league's season"))
		return
	}

	// the upgrader has already answered the client on failure
	if err := h.connectionManager.UpgradeConnection(w, r, userID, leagueID); err != nil {
		log.Error().
			Err(err).
			Str("league_id", leagueID.String()).
			Str("user_id", userID.String()).
			Msg("failed to upgrade websocket connection")
	}
}

func (h *WebSocketHandler) HandleConnectionStats(w http.ResponseWriter, r *http.Request) {
	httpapi.OK(w, h.connectionManager.Stats())
}

func (h *WebSocketHandler) RegisterRoutes(r chi.Router) {
	r.Get("/ws/leagues/{leagueID}", h.HandleLeagueConnection)
	r.Get("/ws/stats", h.HandleConnectionStats)
}
