package tips

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/auth"
	"github.com/mcdev12/tipster/go/internal/httpapi"
	"github.com/mcdev12/tipster/go/internal/models"
)

// TipsApp defines what the service layer needs from the tips application
type TipsApp interface {
	SubmitTip(ctx context.Context, user models.User, req SubmitTipRequest) (*models.Tip, error)
	GetTip(ctx context.Context, user models.User, matchID uuid.UUID) (*models.Tip, error)
	ListTips(ctx context.Context, user models.User, roundID *uuid.UUID) ([]models.Tip, error)
}

// Service exposes tips over REST
type Service struct {
	app TipsApp
}

// NewService creates a new tips service
func NewService(app TipsApp) *Service {
	return &Service{app: app}
}

// RegisterRoutes mounts /tips on an authenticated router
func (s *Service) RegisterRoutes(r chi.Router) {
	r.Route("/tips", func(r chi.Router) {
		r.Post("/", s.SubmitTip)
		r.Get("/match/{matchId}", s.GetTip)
		r.Get("/user", s.ListTips)
	})
}

// SubmitTip creates or replaces the caller's tip on a match
func (s *Service) SubmitTip(w http.ResponseWriter, r *http.Request) {
	user, err := auth.CurrentUser(r.Context())
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	var req SubmitTipRequest
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.Error(w, r, err)
		return
	}

	tip, err := s.app.SubmitTip(r.Context(), user, req)
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.OK(w, tip)
}

// GetTip returns the caller's tip on a match
func (s *Service) GetTip(w http.ResponseWriter, r *http.Request) {
	user, err := auth.CurrentUser(r.Context())
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	matchID, err := httpapi.URLParamUUID(r, "matchId")
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}

	tip, err := s.app.GetTip(r.Context(), user, matchID)
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.OK(w, tip)
}

// ListTips lists the caller's tips, filtered by ?roundId when given
func (s *Service) ListTips(w http.ResponseWriter, r *http.Request) {
	user, err := auth.CurrentUser(r.Context())
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	roundID, err := httpapi.QueryUUID(r, "roundId")
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}

	tips, err := s.app.ListTips(r.Context(), user, roundID)
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.OK(w, tips)
}
