package rounds

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/apperrors"
	"github.com/mcdev12/tipster/go/internal/auth"
	"github.com/mcdev12/tipster/go/internal/httpapi"
	"github.com/mcdev12/tipster/go/internal/models"
)

// RoundsApp defines what the service layer needs from the rounds application
type RoundsApp interface {
	CreateRound(ctx context.Context, user models.User, req CreateRoundRequest) (*models.Round, error)
	GetRound(ctx context.Context, id uuid.UUID) (*RoundDetail, error)
	ListRounds(ctx context.Context, leagueID uuid.UUID) ([]models.Round, error)
	UpdateRound(ctx context.Context, user models.User, id uuid.UUID, req UpdateRoundRequest) (*models.Round, error)
	DeleteRound(ctx context.Context, user models.User, id uuid.UUID) error
}

// Service exposes rounds over REST
type Service struct {
	app RoundsApp
}

// NewService creates a new rounds service
func NewService(app RoundsApp) *Service {
	return &Service{app: app}
}

// RegisterRoutes mounts /rounds on an authenticated router
func (s *Service) RegisterRoutes(r chi.Router) {
	r.Route("/rounds", func(r chi.Router) {
		r.Get("/", s.ListRounds)
		r.Post("/", s.CreateRound)
		r.Get("/{id}", s.GetRound)
		r.Put("/{id}", s.UpdateRound)
		r.Delete("/{id}", s.DeleteRound)
	})
}

// ListRounds lists the rounds of the league given by ?leagueId
func (s *Service) ListRounds(w http.ResponseWriter, r *http.Request) {
	leagueID, err := httpapi.QueryUUID(r, "leagueId")
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	if leagueID == nil {
		httpapi.Error(w, r, apperrors.NewValidationError("leagueId", "is required"))
		return
	}

	rounds, err := s.app.ListRounds(r.Context(), *leagueID)
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.OK(w, rounds)
}

// CreateRound creates a round in a league the caller manages
func (s *Service) CreateRound(w http.ResponseWriter, r *http.Request) {
	user, err := auth.CurrentUser(r.Context())
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	var req CreateRoundRequest
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.Error(w, r, err)
		return
	}

	round, err := s.app.CreateRound(r.Context(), user, req)
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.Created(w, round)
}

// GetRound returns a round with its matches
func (s *Service) GetRound(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLParamUUID(r, "id")
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}

	round, err := s.app.GetRound(r.Context(), id)
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.OK(w, round)
}

// UpdateRound edits a round the caller manages
func (s *Service) UpdateRound(w http.ResponseWriter, r *http.Request) {
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
	var req UpdateRoundRequest
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.Error(w, r, err)
		return
	}

	round, err := s.app.UpdateRound(r.Context(), user, id, req)
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.OK(w, round)
}

// DeleteRound deletes a round the caller manages
func (s *Service) DeleteRound(w http.ResponseWriter, r *http.Request) {
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

	if err := s.app.DeleteRound(r.Context(), user, id); err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.Message(w, "round deleted")
}
