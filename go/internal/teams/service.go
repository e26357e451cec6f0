package teams

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/auth"
	"github.com/mcdev12/tipster/go/internal/httpapi"
	"github.com/mcdev12/tipster/go/internal/models"
)

// TeamsApp defines what the service layer needs from the teams application
type TeamsApp interface {
	CreateTeam(ctx context.Context, user models.User, req CreateTeamRequest) (*models.Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
	ListTeams(ctx context.Context, teamType *models.TeamType) ([]models.Team, error)
	UpdateTeam(ctx context.Context, user models.User, id uuid.UUID, req UpdateTeamRequest) (*models.Team, error)
	DeleteTeam(ctx context.Context, user models.User, id uuid.UUID) error
}

// Service exposes teams over REST
type Service struct {
	app TeamsApp
}

// NewService creates a new teams service
func NewService(app TeamsApp) *Service {
	return &Service{
		app: app,
	}
}

// RegisterRoutes mounts /teams on an authenticated router
func (s *Service) RegisterRoutes(r chi.Router) {
	r.Route("/teams", func(r chi.Router) {
		r.Get("/", s.ListTeams)
		r.Post("/", s.CreateTeam)
		r.Get("/{id}", s.GetTeam)
		r.Put("/{id}", s.UpdateTeam)
		r.Delete("/{id}", s.DeleteTeam)
	})
}

// ListTeams lists teams, filtered by ?type when given
func (s *Service) ListTeams(w http.ResponseWriter, r *http.Request) {
	var teamType *models.TeamType
	if v := r.URL.Query().Get("type"); v != "" {
		t := models.TeamType(v)
		teamType = &t
	}

	teams, err := s.app.ListTeams(r.Context(), teamType)
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.OK(w, teams)
}

// CreateTeam creates a team
func (s *Service) CreateTeam(w http.ResponseWriter, r *http.Request) {
	user, err := auth.CurrentUser(r.Context())
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	var req CreateTeamRequest
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.Error(w, r, err)
		return
	}

	team, err := s.app.CreateTeam(r.Context(), user, req)
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.Created(w, team)
}

// GetTeam returns a team
func (s *Service) GetTeam(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLParamUUID(r, "id")
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}

	team, err := s.app.GetTeam(r.Context(), id)
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.OK(w, team)
}

// UpdateTeam edits a team the caller manages
func (s *Service) UpdateTeam(w http.ResponseWriter, r *http.Request) {
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
	var req UpdateTeamRequest
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.Error(w, r, err)
		return
	}

	team, err := s.app.UpdateTeam(r.Context(), user, id, req)
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.OK(w, team)
}

// DeleteTeam deletes a team the caller manages
func (s *Service) DeleteTeam(w http.ResponseWriter, r *http.Request) {
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

	if err := s.app.DeleteTeam(r.Context(), user, id); err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.Message(w, "team deleted")
}
