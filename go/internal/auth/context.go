package auth

import (
	"context"

	"github.com/mcdev12/tipster/go/internal/apperrors"
	"github.com/mcdev12/tipster/go/internal/models"
)

type userKey struct{}

// WithUser returns a copy of ctx carrying the authenticated user.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// UserFromContext returns the authenticated user, if any.
func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userKey{}).(models.User)
	return user, ok
}

// CurrentUser is UserFromContext for handlers behind Authenticate; a missing
// user is reported as ErrUnauthorized.
func CurrentUser(ctx context.Context) (models.User, error) {
	user, ok := UserFromContext(ctx)
	if !ok {
		return models.User{}, apperrors.ErrUnauthorized
	}
	return user, nil
}
