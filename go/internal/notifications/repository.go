package notifications

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/apperrors"
	"github.com/mcdev12/tipster/go/internal/db"
	"github.com/mcdev12/tipster/go/internal/models"
	"github.com/mcdev12/tipster/go/internal/sqlutil"
)

// Repository implements notification data access operations
type Repository struct {
	queries *db.Queries
}

// NewRepository creates a new notifications repository
func NewRepository(queries *db.Queries) *Repository {
	return &Repository{
		queries: queries,
	}
}

// ListNotifications returns the latest notifications of a user
func (r *Repository) ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]models.Notification, error) {
	var (
		rows []db.Notification
		err  error
	)
	if unreadOnly {
		rows, err = r.queries.ListUnreadNotificationsByUser(ctx, userID)
	} else {
		rows, err = r.queries.ListNotificationsByUser(ctx, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	notifications := make([]models.Notification, len(rows))
	for i, row := range rows {
		notifications[i] = row.ToModel()
	}
	return notifications, nil
}

// MarkRead marks one notification of userID as read
func (r *Repository) MarkRead(ctx context.Context, id, userID uuid.UUID) (*models.Notification, error) {
	row, err := r.queries.MarkNotificationRead(ctx, db.MarkNotificationReadParams{
		ID:     id,
		UserID: userID,
	})
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperrors.NewNotFoundError("notification", id)
		}
		return nil, fmt.Errorf("failed to mark notification read: %w", err)
	}

	m := row.ToModel()
	return &m, nil
}

// MarkAllRead marks every unread notification of userID as read
func (r *Repository) MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error) {
	n, err := r.queries.MarkAllNotificationsRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return int(n), nil
}
