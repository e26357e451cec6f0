package teams

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/apperrors"
	"github.com/mcdev12/tipster/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type FakeTeamsRepository struct {
	CreateTeamFunc func(ctx context.Context, team models.Team) (*models.Team, error)
	GetTeamFunc    func(ctx context.Context, id uuid.UUID) (*models.Team, error)
	ListTeamsFunc  func(ctx context.Context, teamType *models.TeamType) ([]models.Team, error)
	UpdateTeamFunc func(ctx context.Context, team models.Team) (*models.Team, error)
	DeleteTeamFunc func(ctx context.Context, id uuid.UUID) error
}

func (f *FakeTeamsRepository) CreateTeam(ctx context.Context, team models.Team) (*models.Team, error) {
	return f.CreateTeamFunc(ctx, team)
}

func (f *FakeTeamsRepository) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	return f.GetTeamFunc(ctx, id)
}

func (f *FakeTeamsRepository) ListTeams(ctx context.Context, teamType *models.TeamType) ([]models.Team, error) {
	return f.ListTeamsFunc(ctx, teamType)
}

func (f *FakeTeamsRepository) UpdateTeam(ctx context.Context, team models.Team) (*models.Team, error) {
	return f.UpdateTeamFunc(ctx, team)
}

func (f *FakeTeamsRepository) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	return f.DeleteTeamFunc(ctx, id)
}

func echoCreate() func(context.Context, models.Team) (*models.Team, error) {
	return func(_ context.Context, team models.Team) (*models.Team, error) {
		team.ID = uuid.New()
		return &team, nil
	}
}

func TestApp_CreateTeam(t *testing.T) {
	admin := models.User{ID: uuid.New(), Role: models.UserRoleAdmin}
	player := models.User{ID: uuid.New(), Role: models.UserRolePlayer}

	tests := []struct {
		name        string
		user        models.User
		req         CreateTeamRequest
		wantErr     error
		wantType    models.TeamType
		wantCreator bool
	}{
		{
			name:        "community by default",
			user:        player,
			req:         CreateTeamRequest{Name: "  Sunday Strikers "},
			wantType:    models.TeamTypeCommunity,
			wantCreator: true,
		},
		{
			name:     "official by admin",
			user:     admin,
			req:      CreateTeamRequest{Name: "Rovers", Type: models.TeamTypeOfficial},
			wantType: models.TeamTypeOfficial,
		},
		{
			name:    "official by player",
			user:    player,
			req:     CreateTeamRequest{Name: "Rovers", Type: models.TeamTypeOfficial},
			wantErr: apperrors.ErrForbidden,
		},
		{
			name:    "blank name",
			user:    player,
			req:     CreateTeamRequest{Name: "   "},
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "unknown type",
			user:    admin,
			req:     CreateTeamRequest{Name: "Rovers", Type: "national"},
			wantErr: apperrors.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := NewApp(&FakeTeamsRepository{CreateTeamFunc: echoCreate()})

			team, err := app.CreateTeam(context.Background(), tt.user, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, team.Type)
			assert.Equal(t, strings.TrimSpace(tt.req.Name), team.Name)
			if tt.wantCreator {
				require.NotNil(t, team.CreatorID)
				assert.Equal(t, tt.user.ID, *team.CreatorID)
			} else {
				assert.Nil(t, team.CreatorID)
			}
		})
	}
}

func TestApp_TeamManagementRule(t *testing.T) {
	creator := uuid.New()
	admin := models.User{ID: uuid.New(), Role: models.UserRoleAdmin}
	owner := models.User{ID: creator, Role: models.UserRolePlayer}
	stranger := models.User{ID: uuid.New(), Role: models.UserRoleVIP}

	official := models.Team{ID: uuid.New(), Name: "Rovers", Type: models.TeamTypeOfficial}
	community := models.Team{ID: uuid.New(), Name: "Strikers", Type: models.TeamTypeCommunity, CreatorID: &creator}
	orphan := models.Team{ID: uuid.New(), Name: "Orphans", Type: models.TeamTypeCommunity}

	tests := []struct {
		name    string
		user    models.User
		team    models.Team
		wantErr error
	}{
		{name: "admin edits official", user: admin, team: official},
		{name: "player edits official", user: owner, team: official, wantErr: apperrors.ErrForbidden},
		{name: "creator edits community", user: owner, team: community},
		{name: "stranger edits community", user: stranger, team: community, wantErr: apperrors.ErrForbidden},
		{name: "admin edits orphan", user: admin, team: orphan},
		{name: "player edits orphan", user: owner, team: orphan, wantErr: apperrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var deleted uuid.UUID
			repo := &FakeTeamsRepository{
				GetTeamFunc: func(context.Context, uuid.UUID) (*models.Team, error) {
					team := tt.team
					return &team, nil
				},
				UpdateTeamFunc: func(_ context.Context, team models.Team) (*models.Team, error) {
					return &team, nil
				},
				DeleteTeamFunc: func(_ context.Context, id uuid.UUID) error {
					deleted = id
					return nil
				},
			}
			app := NewApp(repo)
			name := "Renamed"

			updated, err := app.UpdateTeam(context.Background(), tt.user, tt.team.ID, UpdateTeamRequest{Name: &name})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Renamed", updated.Name)
			}

			err = app.DeleteTeam(context.Background(), tt.user, tt.team.ID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, uuid.Nil, deleted)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.team.ID, deleted)
			}
		})
	}
}

func TestApp_ListTeamsRejectsUnknownType(t *testing.T) {
	app := NewApp(&FakeTeamsRepository{})
	bogus := models.TeamType("national")

	_, err := app.ListTeams(context.Background(), &bogus)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
