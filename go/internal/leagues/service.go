package leagues

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/auth"
	"github.com/mcdev12/tipster/go/internal/httpapi"
	"github.com/mcdev12/tipster/go/internal/models"
)

// LeaguesApp defines what the service layer needs from the leagues application
type LeaguesApp interface {
	CreateLeague(ctx context.Context, user models.User, req CreateLeagueRequest) (*models.League, error)
	GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error)
	ListLeagues(ctx context.Context, seasonID *uuid.UUID) ([]models.League, error)
	UpdateLeague(ctx context.Context, user models.User, id uuid.UUID, req UpdateLeagueRequest) (*models.League, error)
	DeleteLeague(ctx context.Context, user models.User, id uuid.UUID) error
}

// LeaderboardReader serves league standings
type LeaderboardReader interface {
	LeagueLeaderboard(ctx context.Context, leagueID uuid.UUID) ([]models.LeaderboardEntry, error)
}

// Service exposes leagues over REST
type Service struct {
	app         LeaguesApp
	leaderboard LeaderboardReader
}

// NewService creates a new leagues service
func NewService(app LeaguesApp, leaderboard LeaderboardReader) *Service {
	return &Service{
		app:         app,
		leaderboard: leaderboard,
	}
}

// RegisterRoutes mounts /leagues on an authenticated router
func (s *Service) RegisterRoutes(r chi.Router) {
	r.Route("/leagues", func(r chi.Router) {
		r.Get("/", s.ListLeagues)
		r.Post("/", s.CreateLeague)
		r.Get("/{id}", s.GetLeague)
		r.Get("/{id}/leaderboard", s.GetLeaderboard)
		r.Put("/{id}", s.UpdateLeague)
		r.Delete("/{id}", s.DeleteLeague)
	})
}

// ListLeagues lists leagues, filtered by the seasonId query parameter when present
func (s *Service) ListLeagues(w http.ResponseWriter, r *http.Request) {
	seasonID, err := httpapi.QueryUUID(r, "seasonId")
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}

	leagues, err := s.app.ListLeagues(r.Context(), seasonID)
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.OK(w, leagues)
}

// CreateLeague creates a league in a season the caller manages
func (s *Service) CreateLeague(w http.ResponseWriter, r *http.Request) {
	user, err := auth.CurrentUser(r.Context())
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	var req CreateLeagueRequest
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.Error(w, r, err)
		return
	}

	league, err := s.app.CreateLeague(r.Context(), user, req)
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.Created(w, league)
}

// GetLeague returns one league
func (s *Service) GetLeague(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLParamUUID(r, "id")
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}

	league, err := s.app.GetLeague(r.Context(), id)
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.OK(w, league)
}

// GetLeaderboard ranks the tipsters of a league
func (s *Service) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLParamUUID(r, "id")
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	if _, err := s.app.GetLeague(r.Context(), id); err != nil {
		httpapi.Error(w, r, err)
		return
	}

	entries, err := s.leaderboard.LeagueLeaderboard(r.Context(), id)
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.OK(w, entries)
}

// UpdateLeague edits a league the caller manages
func (s *Service) UpdateLeague(w http.ResponseWriter, r *http.Request) {
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
	var req UpdateLeagueRequest
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.Error(w, r, err)
		return
	}

	league, err := s.app.UpdateLeague(r.Context(), user, id, req)
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.OK(w, league)
}

// DeleteLeague deletes a league the caller manages
func (s *Service) DeleteLeague(w http.ResponseWriter, r *http.Request) {
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

	if err := s.app.DeleteLeague(r.Context(), user, id); err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.Message(w, "league deleted")
}
