package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/apperrors"
	"github.com/mcdev12/tipster/go/internal/httpapi"
	"github.com/mcdev12/tipster/go/internal/models"
	"github.com/rs/zerolog"
)

// UserLoader defines what the middleware needs to resolve a token subject
type UserLoader interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Middleware authenticates bearer tokens
type Middleware struct {
	tokens *TokenProvider
	users  UserLoader
}

func NewMiddleware(tokens *TokenProvider, users UserLoader) *Middleware {
	return &Middleware{
		tokens: tokens,
		users:  users,
	}
}

// Authenticate rejects requests without a valid bearer token. The user is
// reloaded on every request so role changes apply immediately.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			httpapi.Error(w, r, fmt.Errorf("%w: missing bearer token", apperrors.ErrUnauthorized))
			return
		}
		userID, err := m.tokens.Verify(token)
		if err != nil {
			httpapi.Error(w, r, err)
			return
		}
		user, err := m.users.GetUser(r.Context(), userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				err = fmt.Errorf("%w: unknown user", apperrors.ErrUnauthorized)
			}
			httpapi.Error(w, r, err)
			return
		}

		ctx := WithUser(r.Context(), *user)
		logger := zerolog.Ctx(ctx).With().Str("user_id", user.ID.String()).Logger()
		next.ServeHTTP(w, r.WithContext(logger.WithContext(ctx)))
	})
}

// RequireAdmin must run after Authenticate.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := CurrentUser(r.Context())
		if err != nil {
			httpapi.Error(w, r, err)
			return
		}
		if !user.IsAdmin() {
			httpapi.Error(w, r, apperrors.NewForbiddenError("admin role required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}
