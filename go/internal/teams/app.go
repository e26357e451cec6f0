package teams

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/apperrors"
	"github.com/mcdev12/tipster/go/internal/authz"
	"github.com/mcdev12/tipster/go/internal/models"
	"github.com/rs/zerolog/log"
)

// TeamsRepository defines what the app layer needs from the repository
type TeamsRepository interface {
	CreateTeam(ctx context.Context, team models.Team) (*models.Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
	ListTeams(ctx context.Context, teamType *models.TeamType) ([]models.Team, error)
	UpdateTeam(ctx context.Context, team models.Team) (*models.Team, error)
	DeleteTeam(ctx context.Context, id uuid.UUID) error
}

// App handles teams business logic
type App struct {
	repo TeamsRepository
}

// NewApp creates a new teams App
func NewApp(repo TeamsRepository) *App {
	return &App{
		repo: repo,
	}
}

// CreateTeam creates a team. Community teams remember their creator; official
// teams are admin-only and have none.
func (a *App) CreateTeam(ctx context.Context, user models.User, req CreateTeamRequest) (*models.Team, error) {
	if req.Type == "" {
		req.Type = models.TeamTypeCommunity
	}
	if err := a.validateCreateTeamRequest(req); err != nil {
		return nil, err
	}
	if req.Type == models.TeamTypeOfficial && !user.IsAdmin() {
		return nil, apperrors.NewForbiddenError("only admins can create official teams")
	}

	team := models.Team{
		Name: strings.TrimSpace(req.Name),
		Logo: req.Logo,
		Type: req.Type,
	}
	if team.Type == models.TeamTypeCommunity {
		creator := user.ID
		team.CreatorID = &creator
	}

	created, err := a.repo.CreateTeam(ctx, team)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("team_id", created.ID.String()).
		Str("name", created.Name).
		Str("type", string(created.Type)).
		Msg("created team")
	return created, nil
}

// GetTeam retrieves a team by ID
func (a *App) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	team, err := a.repo.GetTeam(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// ListTeams lists teams, optionally of a single type
func (a *App) ListTeams(ctx context.Context, teamType *models.TeamType) ([]models.Team, error) {
	if teamType != nil && *teamType != models.TeamTypeOfficial && *teamType != models.TeamTypeCommunity {
		return nil, apperrors.NewValidationError("type", "must be official or community")
	}
	teams, err := a.repo.ListTeams(ctx, teamType)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

// UpdateTeam renames a team or changes its logo
func (a *App) UpdateTeam(ctx context.Context, user models.User, id uuid.UUID, req UpdateTeamRequest) (*models.Team, error) {
	team, err := a.managedTeam(ctx, user, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("name", "cannot be empty")
		}
		team.Name = name
	}
	if req.Logo != nil {
		team.Logo = req.Logo
	}

	updated, err := a.repo.UpdateTeam(ctx, *team)
	if err != nil {
		return nil, err
	}

	log.Info().Str("team_id", id.String()).Str("by", user.ID.String()).Msg("updated team")
	return updated, nil
}

// DeleteTeam deletes a team by ID
func (a *App) DeleteTeam(ctx context.Context, user models.User, id uuid.UUID) error {
	team, err := a.managedTeam(ctx, user, id)
	if err != nil {
		return err
	}

	if err := a.repo.DeleteTeam(ctx, id); err != nil {
		return err
	}

	log.Info().Str("team_id", id.String()).Str("name", team.Name).Str("by", user.ID.String()).Msg("deleted team")
	return nil
}

func (a *App) managedTeam(ctx context.Context, user models.User, id uuid.UUID) (*models.Team, error) {
	team, err := a.repo.GetTeam(ctx, id)
	if err != nil {
		return nil, err
	}
	if d := authz.CanManageTeam(user, *team); !d.Allowed {
		return nil, apperrors.NewForbiddenError("not allowed to manage team %s", id)
	}
	return team, nil
}

// validateCreateTeamRequest validates create team request
func (a *App) validateCreateTeamRequest(req CreateTeamRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return apperrors.NewValidationError("name", "is required")
	}
	if req.Type != models.TeamTypeOfficial && req.Type != models.TeamTypeCommunity {
		return apperrors.NewValidationError("type", "must be official or community")
	}
	return nil
}
