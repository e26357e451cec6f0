package achievements

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mcdev12/tipster/go/internal/auth"
	"github.com/mcdev12/tipster/go/internal/httpapi"
	"github.com/mcdev12/tipster/go/internal/models"
)

// AchievementsApp defines what the service layer needs from the achievements application
type AchievementsApp interface {
	ListAchievements(ctx context.Context) ([]models.Achievement, error)
	ListEarned(ctx context.Context, user models.User) ([]models.UserAchievement, error)
	CreateAchievement(ctx context.Context, user models.User, req CreateAchievementRequest) (*models.Achievement, error)
}

// Service exposes achievements over REST
type Service struct {
	app AchievementsApp
}

// NewService creates a new achievements service
func NewService(app AchievementsApp) *Service {
	return &Service{app: app}
}

// RegisterRoutes mounts /achievements on an authenticated router
func (s *Service) RegisterRoutes(r chi.Router) {
	r.Route("/achievements", func(r chi.Router) {
		r.Get("/", s.ListAchievements)
		r.Get("/me", s.ListEarned)
		r.With(auth.RequireAdmin).Post("/", s.CreateAchievement)
	})
}

func (s *Service) ListAchievements(w http.ResponseWriter, r *http.Request) {
	achievements, err := s.app.ListAchievements(r.Context())
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.OK(w, achievements)
}

// ListEarned lists the caller's achievements
func (s *Service) ListEarned(w http.ResponseWriter, r *http.Request) {
	user, err := auth.CurrentUser(r.Context())
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}

	earned, err := s.app.ListEarned(r.Context(), user)
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.OK(w, earned)
}

func (s *Service) CreateAchievement(w http.ResponseWriter, r *http.Request) {
	user, err := auth.CurrentUser(r.Context())
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	var req CreateAchievementRequest
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.Error(w, r, err)
		return
	}

	achievement, err := s.app.CreateAchievement(r.Context(), user, req)
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.Created(w, achievement)
}
