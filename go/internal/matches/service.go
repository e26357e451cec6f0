package matches

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

// MatchesApp defines what the service layer needs from the matches application
type MatchesApp interface {
	CreateMatch(ctx context.Context, user models.User, req CreateMatchRequest) (*models.Match, error)
	GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error)
	ListMatches(ctx context.Context, roundID uuid.UUID) ([]models.Match, error)
	UpdateMatch(ctx context.Context, user models.User, id uuid.UUID, req UpdateMatchRequest) (*models.Match, error)
	DeleteMatch(ctx context.Context, user models.User, id uuid.UUID) error
	EvaluateMatch(ctx context.Context, user models.User, id uuid.UUID, req EvaluateMatchRequest) (*Evaluation, error)
}

// Service exposes matches over REST
type Service struct {
	app MatchesApp
}

// NewService creates a new matches service
func NewService(app MatchesApp) *Service {
	return &Service{app: app}
}

// RegisterRoutes mounts /matches on an authenticated router
func (s *Service) RegisterRoutes(r chi.Router) {
	r.Route("/matches", func(r chi.Router) {
		r.Get("/", s.ListMatches)
		r.Post("/", s.CreateMatch)
		r.Get("/{id}", s.GetMatch)
		r.Put("/{id}", s.UpdateMatch)
		r.Delete("/{id}", s.DeleteMatch)
		r.Post("/{id}/evaluate", s.EvaluateMatch)
	})
}

// ListMatches lists the matches of the round given by ?roundId
func (s *Service) ListMatches(w http.ResponseWriter, r *http.Request) {
	roundID, err := httpapi.QueryUUID(r, "roundId")
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	if roundID == nil {
		httpapi.Error(w, r, apperrors.NewValidationError("roundId", "is required"))
		return
	}

	matches, err := s.app.ListMatches(r.Context(), *roundID)
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.OK(w, matches)
}

// CreateMatch schedules a match in a round the caller manages
func (s *Service) CreateMatch(w http.ResponseWriter, r *http.Request) {
	user, err := auth.CurrentUser(r.Context())
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	var req CreateMatchRequest
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.Error(w, r, err)
		return
	}

	match, err := s.app.CreateMatch(r.Context(), user, req)
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.Created(w, match)
}

// GetMatch returns a match
func (s *Service) GetMatch(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLParamUUID(r, "id")
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}

	match, err := s.app.GetMatch(r.Context(), id)
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.OK(w, match)
}

// UpdateMatch edits a match the caller manages
func (s *Service) UpdateMatch(w http.ResponseWriter, r *http.Request) {
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
	var req UpdateMatchRequest
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.Error(w, r, err)
		return
	}

	match, err := s.app.UpdateMatch(r.Context(), user, id, req)
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.OK(w, match)
}

// DeleteMatch deletes a match the caller manages
func (s *Service) DeleteMatch(w http.ResponseWriter, r *http.Request) {
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

	if err := s.app.DeleteMatch(r.Context(), user, id); err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.Message(w, "match deleted")
}

// EvaluateMatch records the result of a match the caller manages
func (s *Service) EvaluateMatch(w http.ResponseWriter, r *http.Request) {
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
	var req EvaluateMatchRequest
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.Error(w, r, err)
		return
	}

	result, err := s.app.EvaluateMatch(r.Context(), user, id, req)
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.OK(w, result)
}
