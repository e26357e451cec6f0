package notifications

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/auth"
	"github.com/mcdev12/tipster/go/internal/httpapi"
	"github.com/mcdev12/tipster/go/internal/models"
)

// NotificationsApp defines what the service layer needs from the notifications application
type NotificationsApp interface {
	ListNotifications(ctx context.Context, user models.User, unreadOnly bool) ([]models.Notification, error)
	MarkRead(ctx context.Context, user models.User, id uuid.UUID) (*models.Notification, error)
	MarkAllRead(ctx context.Context, user models.User) (int, error)
}

// Service exposes the caller's notifications over REST
type Service struct {
	app NotificationsApp
}

// NewService creates a new notifications service
func NewService(app NotificationsApp) *Service {
	return &Service{app: app}
}

// RegisterRoutes mounts /notifications on an authenticated router
func (s *Service) RegisterRoutes(r chi.Router) {
	r.Route("/notifications", func(r chi.Router) {
		r.Get("/", s.ListNotifications)
		r.Put("/read-all", s.MarkAllRead)
		r.Put("/{id}/read", s.MarkRead)
	})
}

// ListNotifications lists the caller's notifications; ?unread=true keeps unread ones only
func (s *Service) ListNotifications(w http.ResponseWriter, r *http.Request) {
	user, err := auth.CurrentUser(r.Context())
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}

	unreadOnly := r.URL.Query().Get("unread") == "true"
	notifications, err := s.app.ListNotifications(r.Context(), user, unreadOnly)
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.OK(w, notifications)
}

// MarkRead marks one notification read
func (s *Service) MarkRead(w http.ResponseWriter, r *http.Request) {
	user, err := auth.CurrentUser(r.Context())
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	id, err := httpapi.URLParamUUID(r, "id")
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}

	notification, err := s.app.MarkRead(r.Context(), user, id)
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.OK(w, notification)
}

// MarkAllRead marks every notification of the caller read
func (s *Service) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	user, err := auth.CurrentUser(r.Context())
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}

	n, err := s.app.MarkAllRead(r.Context(), user)
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.Message(w, fmt.Sprintf("%d notifications marked read", n))
}
