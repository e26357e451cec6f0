package teams

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/apperrors"
	"github.com/mcdev12/tipster/go/internal/db"
	"github.com/mcdev12/tipster/go/internal/models"
	"github.com/mcdev12/tipster/go/internal/sqlutil"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateTeam(ctx context.Context, arg db.CreateTeamParams) (db.Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (db.Team, error)
	GetTeamByName(ctx context.Context, name string) (db.Team, error)
	ListTeams(ctx context.Context) ([]db.Team, error)
	ListTeamsByType(ctx context.Context, type_ db.TeamType) ([]db.Team, error)
	UpdateTeam(ctx context.Context, arg db.UpdateTeamParams) (db.Team, error)
	DeleteTeam(ctx context.Context, id uuid.UUID) error
}

// Repository implements team data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new teams repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// CreateTeam inserts a team. A taken name is a state conflict.
func (r *Repository) CreateTeam(ctx context.Context, team models.Team) (*models.Team, error) {
	dbTeam, err := r.queries.CreateTeam(ctx, db.CreateTeamParams{
		Name:      team.Name,
		Logo:      sqlutil.ToText(team.Logo),
		Type:      db.TeamType(team.Type),
		CreatorID: sqlutil.ToNullUUID(team.CreatorID),
	})
	if err != nil {
		if sqlutil.IsUniqueViolation(err) {
			return nil, apperrors.NewStateConflictError("team %q already exists", team.Name)
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	m := dbTeam.ToModel()
	return &m, nil
}

// GetTeam retrieves a team by ID
func (r *Repository) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	dbTeam, err := r.queries.GetTeam(ctx, id)
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperrors.NewNotFoundError("team", id)
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	m := dbTeam.ToModel()
	return &m, nil
}

// GetTeamByName retrieves a team by its unique name
func (r *Repository) GetTeamByName(ctx context.Context, name string) (*models.Team, error) {
	dbTeam, err := r.queries.GetTeamByName(ctx, name)
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperrors.NewNotFoundError("team", nil)
		}
		return nil, fmt.Errorf("failed to get team by name: %w", err)
	}

	m := dbTeam.ToModel()
	return &m, nil
}

// ListTeams lists all teams, or the teams of one type when teamType is set
func (r *Repository) ListTeams(ctx context.Context, teamType *models.TeamType) ([]models.Team, error) {
	var (
		dbTeams []db.Team
		err     error
	)
	if teamType != nil {
		dbTeams, err = r.queries.ListTeamsByType(ctx, db.TeamType(*teamType))
	} else {
		dbTeams, err = r.queries.ListTeams(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	teams := make([]models.Team, len(dbTeams))
	for i, dbTeam := range dbTeams {
		teams[i] = dbTeam.ToModel()
	}
	return teams, nil
}

// UpdateTeam overwrites the name and logo of a team
func (r *Repository) UpdateTeam(ctx context.Context, team models.Team) (*models.Team, error) {
	dbTeam, err := r.queries.UpdateTeam(ctx, db.UpdateTeamParams{
		ID:   team.ID,
		Name: team.Name,
		Logo: sqlutil.ToText(team.Logo),
	})
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperrors.NewNotFoundError("team", team.ID)
		}
		if sqlutil.IsUniqueViolation(err) {
			return nil, apperrors.NewStateConflictError("team %q already exists", team.Name)
		}
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	m := dbTeam.ToModel()
	return &m, nil
}

// DeleteTeam deletes a team. A team still scheduled in a match cannot go.
func (r *Repository) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.DeleteTeam(ctx, id); err != nil {
		if sqlutil.IsForeignKeyViolation(err) {
			return apperrors.NewStateConflictError("team %s is scheduled in matches", id)
		}
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}
