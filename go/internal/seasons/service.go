package seasons

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/auth"
	"github.com/mcdev12/tipster/go/internal/httpapi"
	"github.com/mcdev12/tipster/go/internal/models"
)

// SeasonsApp defines what the service layer needs from the seasons application
type SeasonsApp interface {
	CreateSeason(ctx context.Context, user models.User, req CreateSeasonRequest) (*models.Season, error)
	GetSeason(ctx context.Context, id uuid.UUID) (*SeasonDetail, error)
	ListSeasons(ctx context.Context) ([]models.Season, error)
	UpdateSeason(ctx context.Context, user models.User, id uuid.UUID, req UpdateSeasonRequest) (*models.Season, error)
	DeleteSeason(ctx context.Context, user models.User, id uuid.UUID) error
	JoinSeason(ctx context.Context, user models.User, inviteCode string) (*models.UserSeason, error)
}

// LeaderboardReader serves season standings
type LeaderboardReader interface {
	SeasonLeaderboard(ctx context.Context, seasonID uuid.UUID) ([]models.LeaderboardEntry, error)
}

// Service exposes seasons over REST
type Service struct {
	app         SeasonsApp
	leaderboard LeaderboardReader
}

// NewService creates a new seasons service
func NewService(app SeasonsApp, leaderboard LeaderboardReader) *Service {
	return &Service{
		app:         app,
		leaderboard: leaderboard,
	}
}

// RegisterRoutes mounts /seasons on an authenticated router
func (s *Service) RegisterRoutes(r chi.Router) {
	r.Route("/seasons", func(r chi.Router) {
		r.Get("/", s.ListSeasons)
		r.Post("/", s.CreateSeason)
		r.Post("/join", s.JoinSeason)
		r.Get("/{id}", s.GetSeason)
		r.Get("/{id}/leaderboard", s.GetLeaderboard)
		r.Put("/{id}", s.UpdateSeason)
		r.Delete("/{id}", s.DeleteSeason)
	})
}

// ListSeasons lists active seasons
func (s *Service) ListSeasons(w http.ResponseWriter, r *http.Request) {
	seasons, err := s.app.ListSeasons(r.Context())
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.OK(w, seasons)
}

// CreateSeason creates a season owned by the caller
func (s *Service) CreateSeason(w http.ResponseWriter, r *http.Request) {
	user, err := auth.CurrentUser(r.Context())
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	var req CreateSeasonRequest
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.Error(w, r, err)
		return
	}

	season, err := s.app.CreateSeason(r.Context(), user, req)
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.Created(w, season)
}

// JoinSeason joins the caller to a season by invite code
func (s *Service) JoinSeason(w http.ResponseWriter, r *http.Request) {
	user, err := auth.CurrentUser(r.Context())
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	var req JoinSeasonRequest
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.Error(w, r, err)
		return
	}

	membership, err := s.app.JoinSeason(r.Context(), user, req.InviteCode)
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.Created(w, membership)
}

// GetSeason returns a season with its leagues
func (s *Service) GetSeason(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLParamUUID(r, "id")
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}

	season, err := s.app.GetSeason(r.Context(), id)
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.OK(w, season)
}

// GetLeaderboard ranks all tipsters of the season
func (s *Service) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLParamUUID(r, "id")
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	if _, err := s.app.GetSeason(r.Context(), id); err != nil {
		httpapi.Error(w, r, err)
		return
	}

	entries, err := s.leaderboard.SeasonLeaderboard(r.Context(), id)
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.OK(w, entries)
}

// UpdateSeason edits a season the caller manages
func (s *Service) UpdateSeason(w http.ResponseWriter, r *http.Request) {
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
	var req UpdateSeasonRequest
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.Error(w, r, err)
		return
	}

	season, err := s.app.UpdateSeason(r.Context(), user, id, req)
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.OK(w, season)
}

// DeleteSeason deletes a season the caller manages
func (s *Service) DeleteSeason(w http.ResponseWriter, r *http.Request) {
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

	if err := s.app.DeleteSeason(r.Context(), user, id); err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.Message(w, "season deleted")
}
