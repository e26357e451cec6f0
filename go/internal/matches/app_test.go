package matches

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/apperrors"
	"github.com/mcdev12/tipster/go/internal/authz"
	"github.com/mcdev12/tipster/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type FakeMatchesRepository struct {
	CreateMatchFunc        func(ctx context.Context, req NewMatch) (*models.Match, error)
	GetMatchFunc           func(ctx context.Context, id uuid.UUID) (*models.Match, error)
	ListMatchesByRoundFunc func(ctx context.Context, roundID uuid.UUID) ([]models.Match, error)
	UpdateMatchFunc        func(ctx context.Context, match models.Match) (*models.Match, error)
	DeleteMatchFunc        func(ctx context.Context, id uuid.UUID) error
	GetMatchLeagueFunc     func(ctx context.Context, id uuid.UUID) (uuid.UUID, uuid.UUID, error)
	CountTipsFunc          func(ctx context.Context, matchID uuid.UUID) (int64, error)
	GetTeamFunc            func(ctx context.Context, id uuid.UUID) (*models.Team, error)
	EvaluateMatchFunc      func(ctx context.Context, id uuid.UUID, req EvaluateMatchRequest) (*Evaluation, error)
}

func (f *FakeMatchesRepository) CreateMatch(ctx context.Context, req NewMatch) (*models.Match, error) {
	return f.CreateMatchFunc(ctx, req)
}

func (f *FakeMatchesRepository) GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	return f.GetMatchFunc(ctx, id)
}

func (f *FakeMatchesRepository) ListMatchesByRound(ctx context.Context, roundID uuid.UUID) ([]models.Match, error) {
	return f.ListMatchesByRoundFunc(ctx, roundID)
}

func (f *FakeMatchesRepository) UpdateMatch(ctx context.Context, match models.Match) (*models.Match, error) {
	return f.UpdateMatchFunc(ctx, match)
}

func (f *FakeMatchesRepository) DeleteMatch(ctx context.Context, id uuid.UUID) error {
	return f.DeleteMatchFunc(ctx, id)
}

func (f *FakeMatchesRepository) GetMatchLeague(ctx context.Context, id uuid.UUID) (uuid.UUID, uuid.UUID, error) {
	return f.GetMatchLeagueFunc(ctx, id)
}

func (f *FakeMatchesRepository) CountTips(ctx context.Context, matchID uuid.UUID) (int64, error) {
	return f.CountTipsFunc(ctx, matchID)
}

func (f *FakeMatchesRepository) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	return f.GetTeamFunc(ctx, id)
}

func (f *FakeMatchesRepository) EvaluateMatch(ctx context.Context, id uuid.UUID, req EvaluateMatchRequest) (*Evaluation, error) {
	return f.EvaluateMatchFunc(ctx, id, req)
}

type FakeAuthorizer struct {
	RequireFunc func(ctx context.Context, user models.User, target authz.Target) error
}

func (f *FakeAuthorizer) Require(ctx context.Context, user models.User, target authz.Target) error {
	return f.RequireFunc(ctx, user, target)
}

func allowAll() *FakeAuthorizer {
	return &FakeAuthorizer{RequireFunc: func(context.Context, models.User, authz.Target) error { return nil }}
}

type FakeInvalidator struct {
	calls [][2]uuid.UUID
}

func (f *FakeInvalidator) Invalidate(_ context.Context, leagueID, seasonID uuid.UUID) {
	f.calls = append(f.calls, [2]uuid.UUID{leagueID, seasonID})
}

func knownTeams() func(context.Context, uuid.UUID) (*models.Team, error) {
	return func(_ context.Context, id uuid.UUID) (*models.Team, error) {
		return &models.Team{ID: id, Name: "Team"}, nil
	}
}

func TestApp_CreateMatch(t *testing.T) {
	roundID := uuid.New()
	home := uuid.New()
	away := uuid.New()
	kickoff := time.Date(2026, 8, 1, 18, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		req      CreateMatchRequest
		getTeam  func(context.Context, uuid.UUID) (*models.Team, error)
		wantErr  error
		wantType models.TipType
	}{
		{
			name:     "defaults to exact score",
			req:      CreateMatchRequest{RoundID: roundID, HomeTeamID: home, AwayTeamID: away, MatchTime: kickoff},
			getTeam:  knownTeams(),
			wantType: models.TipTypeExactScore,
		},
		{
			name:     "winner tip type",
			req:      CreateMatchRequest{RoundID: roundID, HomeTeamID: home, AwayTeamID: away, MatchTime: kickoff, TipType: models.TipTypeWinner},
			getTeam:  knownTeams(),
			wantType: models.TipTypeWinner,
		},
		{
			name:    "same team twice",
			req:     CreateMatchRequest{RoundID: roundID, HomeTeamID: home, AwayTeamID: home, MatchTime: kickoff},
			getTeam: knownTeams(),
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "unknown tip type",
			req:     CreateMatchRequest{RoundID: roundID, HomeTeamID: home, AwayTeamID: away, MatchTime: kickoff, TipType: "over_under"},
			getTeam: knownTeams(),
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "missing kick-off",
			req:     CreateMatchRequest{RoundID: roundID, HomeTeamID: home, AwayTeamID: away},
			getTeam: knownTeams(),
			wantErr: apperrors.ErrValidation,
		},
		{
			name: "unknown away team",
			req:  CreateMatchRequest{RoundID: roundID, HomeTeamID: home, AwayTeamID: away, MatchTime: kickoff},
			getTeam: func(_ context.Context, id uuid.UUID) (*models.Team, error) {
				if id == away {
					return nil, apperrors.NewNotFoundError("team", id)
				}
				return &models.Team{ID: id}, nil
			},
			wantErr: apperrors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &FakeMatchesRepository{
				GetTeamFunc: tt.getTeam,
				CreateMatchFunc: func(_ context.Context, req NewMatch) (*models.Match, error) {
					return &models.Match{
						ID:         uuid.New(),
						RoundID:    req.RoundID,
						HomeTeamID: req.HomeTeamID,
						AwayTeamID: req.AwayTeamID,
						MatchTime:  req.MatchTime,
						TipType:    req.TipType,
						Status:     models.MatchStatusScheduled,
					}, nil
				},
			}
			app := NewApp(repo, allowAll(), &FakeInvalidator{})

			match, err := app.CreateMatch(context.Background(), models.User{ID: uuid.New()}, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, match.TipType)
			assert.Equal(t, models.MatchStatusScheduled, match.Status)
		})
	}
}

func TestApp_CreateMatchRequiresRoundManager(t *testing.T) {
	roundID := uuid.New()
	var checked authz.Target
	authorizer := &FakeAuthorizer{RequireFunc: func(_ context.Context, _ models.User, target authz.Target) error {
		checked = target
		return apperrors.NewForbiddenError("not your league")
	}}
	app := NewApp(&FakeMatchesRepository{}, authorizer, &FakeInvalidator{})

	_, err := app.CreateMatch(context.Background(), models.User{ID: uuid.New()}, CreateMatchRequest{
		RoundID:    roundID,
		HomeTeamID: uuid.New(),
		AwayTeamID: uuid.New(),
		MatchTime:  time.Now(),
	})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	assert.Equal(t, authz.Round(roundID), checked)
}

func TestApp_UpdateMatchTipTypeFrozen(t *testing.T) {
	winner := models.TipTypeWinner
	exact := models.TipTypeExactScore

	tests := []struct {
		name     string
		tips     int64
		req      UpdateMatchRequest
		wantErr  error
		wantType models.TipType
	}{
		{name: "change without tips", tips: 0, req: UpdateMatchRequest{TipType: &winner}, wantType: models.TipTypeWinner},
		{name: "change with tips", tips: 2, req: UpdateMatchRequest{TipType: &winner}, wantErr: apperrors.ErrStateConflict},
		{name: "same type with tips", tips: 2, req: UpdateMatchRequest{TipType: &exact}, wantType: models.TipTypeExactScore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := uuid.New()
			repo := &FakeMatchesRepository{
				GetMatchFunc: func(context.Context, uuid.UUID) (*models.Match, error) {
					return &models.Match{ID: id, HomeTeamID: uuid.New(), AwayTeamID: uuid.New(), TipType: models.TipTypeExactScore}, nil
				},
				CountTipsFunc: func(context.Context, uuid.UUID) (int64, error) { return tt.tips, nil },
				UpdateMatchFunc: func(_ context.Context, m models.Match) (*models.Match, error) {
					return &m, nil
				},
			}
			app := NewApp(repo, allowAll(), &FakeInvalidator{})

			match, err := app.UpdateMatch(context.Background(), models.User{ID: uuid.New()}, id, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, match.TipType)
		})
	}
}

func TestApp_UpdateMatchTeams(t *testing.T) {
	id := uuid.New()
	home := uuid.New()
	away := uuid.New()
	repo := &FakeMatchesRepository{
		GetMatchFunc: func(context.Context, uuid.UUID) (*models.Match, error) {
			return &models.Match{ID: id, HomeTeamID: home, AwayTeamID: away, TipType: models.TipTypeExactScore}, nil
		},
		GetTeamFunc: knownTeams(),
		UpdateMatchFunc: func(_ context.Context, m models.Match) (*models.Match, error) {
			return &m, nil
		},
	}
	app := NewApp(repo, allowAll(), &FakeInvalidator{})

	_, err := app.UpdateMatch(context.Background(), models.User{ID: uuid.New()}, id, UpdateMatchRequest{AwayTeamID: &home})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	swapped, err := app.UpdateMatch(context.Background(), models.User{ID: uuid.New()}, id, UpdateMatchRequest{HomeTeamID: &away, AwayTeamID: &home})
	require.NoError(t, err)
	assert.Equal(t, away, swapped.HomeTeamID)
	assert.Equal(t, home, swapped.AwayTeamID)
}

func TestApp_EvaluateMatch(t *testing.T) {
	id := uuid.New()
	leagueID := uuid.New()
	seasonID := uuid.New()
	var got EvaluateMatchRequest
	repo := &FakeMatchesRepository{
		EvaluateMatchFunc: func(_ context.Context, matchID uuid.UUID, req EvaluateMatchRequest) (*Evaluation, error) {
			got = req
			return &Evaluation{
				Match:      models.Match{ID: matchID, Status: req.Status, HomeScore: req.HomeScore, AwayScore: req.AwayScore},
				LeagueID:   leagueID,
				SeasonID:   seasonID,
				TipsScored: 4,
			}, nil
		},
	}
	invalidator := &FakeInvalidator{}
	app := NewApp(repo, allowAll(), invalidator)

	req := EvaluateMatchRequest{HomeScore: intPtr(3), AwayScore: intPtr(0), Status: models.MatchStatusFinished}
	result, err := app.EvaluateMatch(context.Background(), models.User{ID: uuid.New()}, id, req)
	require.NoError(t, err)

	assert.Equal(t, req, got)
	assert.Equal(t, 4, result.TipsScored)
	assert.Equal(t, [][2]uuid.UUID{{leagueID, seasonID}}, invalidator.calls)
}

func TestApp_EvaluateMatchRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		req  EvaluateMatchRequest
	}{
		{name: "unknown status", req: EvaluateMatchRequest{Status: "postponed"}},
		{name: "one score only", req: EvaluateMatchRequest{HomeScore: intPtr(1), Status: models.MatchStatusFinished}},
		{name: "negative score", req: EvaluateMatchRequest{HomeScore: intPtr(-1), AwayScore: intPtr(0), Status: models.MatchStatusFinished}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invalidator := &FakeInvalidator{}
			app := NewApp(&FakeMatchesRepository{}, allowAll(), invalidator)

			_, err := app.EvaluateMatch(context.Background(), models.User{ID: uuid.New()}, uuid.New(), tt.req)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Empty(t, invalidator.calls)
		})
	}
}

func TestApp_EvaluateMatchFailureKeepsCache(t *testing.T) {
	repo := &FakeMatchesRepository{
		EvaluateMatchFunc: func(context.Context, uuid.UUID, EvaluateMatchRequest) (*Evaluation, error) {
			return nil, apperrors.NewNotFoundError("match", nil)
		},
	}
	invalidator := &FakeInvalidator{}
	app := NewApp(repo, allowAll(), invalidator)

	_, err := app.EvaluateMatch(context.Background(), models.User{ID: uuid.New()}, uuid.New(), EvaluateMatchRequest{Status: models.MatchStatusFinished})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Empty(t, invalidator.calls)
}

func TestApp_DeleteMatchDropsCachedStandings(t *testing.T) {
	id := uuid.New()
	leagueID := uuid.New()
	seasonID := uuid.New()
	var deleted []uuid.UUID
	repo := &FakeMatchesRepository{
		GetMatchLeagueFunc: func(context.Context, uuid.UUID) (uuid.UUID, uuid.UUID, error) {
			return leagueID, seasonID, nil
		},
		DeleteMatchFunc: func(_ context.Context, matchID uuid.UUID) error {
			deleted = append(deleted, matchID)
			return nil
		},
	}
	invalidator := &FakeInvalidator{}
	app := NewApp(repo, allowAll(), invalidator)

	require.NoError(t, app.DeleteMatch(context.Background(), models.User{ID: uuid.New()}, id))
	assert.Equal(t, []uuid.UUID{id}, deleted)
	assert.Equal(t, [][2]uuid.UUID{{leagueID, seasonID}}, invalidator.calls)
}

func TestApp_DeleteMatchFailureKeepsCache(t *testing.T) {
	repo := &FakeMatchesRepository{
		GetMatchLeagueFunc: func(context.Context, uuid.UUID) (uuid.UUID, uuid.UUID, error) {
			return uuid.New(), uuid.New(), nil
		},
		DeleteMatchFunc: func(context.Context, uuid.UUID) error {
			return errors.New("connection reset")
		},
	}
	invalidator := &FakeInvalidator{}
	app := NewApp(repo, allowAll(), invalidator)

	assert.Error(t, app.DeleteMatch(context.Background(), models.User{ID: uuid.New()}, uuid.New()))
	assert.Empty(t, invalidator.calls)
}
