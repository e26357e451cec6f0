package users

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/auth"
	"github.com/mcdev12/tipster/go/internal/httpapi"
	"github.com/mcdev12/tipster/go/internal/models"
)

// UsersApp defines what the service layer needs from the users application
type UsersApp interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req UpdateProfileRequest) (*models.User, error)
	ChangePassword(ctx context.Context, id uuid.UUID, req ChangePasswordRequest) error
	SetRole(ctx context.Context, actor models.User, id uuid.UUID, role models.UserRole) (*models.User, error)
	DeleteUser(ctx context.Context, actor models.User, id uuid.UUID) error
}

// Service exposes auth and user administration over REST
type Service struct {
	app UsersApp
}

// NewService creates a new users service
func NewService(app UsersApp) *Service {
	return &Service{
		app: app,
	}
}

// RegisterRoutes mounts /auth and /users. authenticate guards everything but
// register and login, which go through rateLimit instead.
func (s *Service) RegisterRoutes(r chi.Router, authenticate, rateLimit func(http.Handler) http.Handler) {
	r.Route("/auth", func(r chi.Router) {
		r.With(rateLimit).Post("/register", s.Register)
		r.With(rateLimit).Post("/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Get("/profile", s.GetProfile)
			r.Put("/profile", s.UpdateProfile)
			r.Put("/change-password", s.ChangePassword)
		})
	})
	r.Route("/users", func(r chi.Router) {
		r.Use(authenticate, auth.RequireAdmin)
		r.Get("/", s.ListUsers)
		r.Get("/{id}", s.GetUser)
		r.Put("/{id}/role", s.SetRole)
		r.Delete("/{id}", s.DeleteUser)
	})
}

// Register creates a player account
func (s *Service) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.Error(w, r, err)
		return
	}

	resp, err := s.app.Register(r.Context(), req)
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.Created(w, resp)
}

// Login exchanges credentials for a token
func (s *Service) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.Error(w, r, err)
		return
	}

	resp, err := s.app.Login(r.Context(), req)
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.OK(w, resp)
}

// GetProfile returns the caller
func (s *Service) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := auth.CurrentUser(r.Context())
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.OK(w, user)
}

// UpdateProfile edits the caller's profile
func (s *Service) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, err := auth.CurrentUser(r.Context())
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	var req UpdateProfileRequest
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.Error(w, r, err)
		return
	}

	updated, err := s.app.UpdateProfile(r.Context(), user.ID, req)
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.OK(w, updated)
}

// ChangePassword changes the caller's password
func (s *Service) ChangePassword(w http.ResponseWriter, r *http.Request) {
	user, err := auth.CurrentUser(r.Context())
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	var req ChangePasswordRequest
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.Error(w, r, err)
		return
	}

	if err := s.app.ChangePassword(r.Context(), user.ID, req); err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.Message(w, "password changed")
}

// ListUsers lists all users
func (s *Service) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.app.ListUsers(r.Context())
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.OK(w, users)
}

// GetUser retrieves a user by ID
func (s *Service) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLParamUUID(r, "id")
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}

	user, err := s.app.GetUser(r.Context(), id)
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.OK(w, user)
}

// SetRole changes a user's global role
func (s *Service) SetRole(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.CurrentUser(r.Context())
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	id, err := httpapi.URLParamUUID(r, "id")
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	var req SetRoleRequest
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.Error(w, r, err)
		return
	}

	user, err := s.app.SetRole(r.Context(), actor, id, req.Role)
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.OK(w, user)
}

// DeleteUser deletes a user by ID
func (s *Service) DeleteUser(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.CurrentUser(r.Context())
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}
	id, err := httpapi.URLParamUUID(r, "id")
	if err != nil {
		httpapi.Error(w, r, err)
		return
	}

	if err := s.app.DeleteUser(r.Context(), actor, id); err != nil {
		httpapi.Error(w, r, err)
		return
	}
	httpapi.Message(w, "user deleted")
}
