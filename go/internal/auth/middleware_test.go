package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/tipster/go/internal/apperrors"
	"github.com/mcdev12/tipster/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type FakeUserLoader struct {
	GetUserFunc func(ctx context.Context, id uuid.UUID) (*models.User, error)
}

func (f *FakeUserLoader) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return f.GetUserFunc(ctx, id)
}

func TestMiddleware_Authenticate(t *testing.T) {
	clock := clockwork.NewFakeClock()
	tokens := NewTokenProvider("secret", time.Hour, clock)
	known := models.User{ID: uuid.New(), Username: "alice", Role: models.UserRolePlayer}

	loader := &FakeUserLoader{
		GetUserFunc: func(_ context.Context, id uuid.UUID) (*models.User, error) {
			if id == known.ID {
				u := known
				return &u, nil
			}
			return nil, apperrors.NewNotFoundError("user", id)
		},
	}
	mw := NewMiddleware(tokens, loader)

	var seen models.User
	handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = UserFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	valid, _, err := tokens.Issue(known.ID)
	require.NoError(t, err)
	orphan, _, err := tokens.Issue(uuid.New())
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "valid", header: "Bearer " + valid, want: http.StatusNoContent},
		{name: "lower case scheme", header: "bearer " + valid, want: http.StatusNoContent},
		{name: "missing", header: "", want: http.StatusUnauthorized},
		{name: "basic", header: "Basic Zm9vOmJhcg==", want: http.StatusUnauthorized},
		{name: "garbage", header: "Bearer xyz", want: http.StatusUnauthorized},
		{name: "deleted user", header: "Bearer " + orphan, want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = models.User{}
			req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusNoContent {
				assert.Equal(t, known.ID, seen.ID)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	handler := RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name string
		ctx  func(context.Context) context.Context
		want int
	}{
		{name: "anonymous", ctx: func(ctx context.Context) context.Context { return ctx }, want: http.StatusUnauthorized},
		{name: "player", ctx: func(ctx context.Context) context.Context {
			return WithUser(ctx, models.User{ID: uuid.New(), Role: models.UserRolePlayer})
		}, want: http.StatusForbidden},
		{name: "admin", ctx: func(ctx context.Context) context.Context {
			return WithUser(ctx, models.User{ID: uuid.New(), Role: models.UserRoleAdmin})
		}, want: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
			req = req.WithContext(tt.ctx(req.Context()))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestIPRateLimiter(t *testing.T) {
	clock := clockwork.NewFakeClock()
	limiter := NewIPRateLimiter(1, 2, clock)

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.2"))

	clock.Advance(time.Second)
	assert.True(t, limiter.Allow("10.0.0.1"))

	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
