package notifications

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/models"
	"github.com/rs/zerolog/log"
)

// NotificationsRepository defines what the app layer needs from the repository
type NotificationsRepository interface {
	ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]models.Notification, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) (*models.Notification, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error)
}

// App handles a user's inbox
type App struct {
	repo NotificationsRepository
}

// NewApp creates a new notifications App
func NewApp(repo NotificationsRepository) *App {
	return &App{
		repo: repo,
	}
}

// ListNotifications lists the caller's notifications, newest first
func (a *App) ListNotifications(ctx context.Context, user models.User, unreadOnly bool) ([]models.Notification, error) {
	notifications, err := a.repo.ListNotifications(ctx, user.ID, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead marks one of the caller's notifications as read. A notification
// owned by someone else is reported as not found.
func (a *App) MarkRead(ctx context.Context, user models.User, id uuid.UUID) (*models.Notification, error) {
	notification, err := a.repo.MarkRead(ctx, id, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark notification read: %w", err)
	}
	return notification, nil
}

// MarkAllRead clears the caller's unread notifications
func (a *App) MarkAllRead(ctx context.Context, user models.User) (int, error) {
	n, err := a.repo.MarkAllRead(ctx, user.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}

	log.Debug().Str("user_id", user.ID.String()).Int("count", n).Msg("marked notifications read")
	return n, nil
}
