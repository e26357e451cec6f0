package leagues

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/tipster/go/internal/apperrors"
	"github.com/mcdev12/tipster/go/internal/auth"
	"github.com/mcdev12/tipster/go/internal/authz"
	"github.com/mcdev12/tipster/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type FakeLeaguesRepository struct {
	CreateLeagueFunc          func(ctx context.Context, req NewLeague) (*models.League, error)
	GetLeagueFunc             func(ctx context.Context, id uuid.UUID) (*models.League, error)
	ListLeaguesFunc           func(ctx context.Context, seasonID *uuid.UUID) ([]models.League, error)
	UpdateLeagueFunc          func(ctx context.Context, league models.League) (*models.League, error)
	DeleteLeagueFunc          func(ctx context.Context, id uuid.UUID) error
	CountLeaguesByCreatorFunc func(ctx context.Context, creatorID uuid.UUID) (int, error)
	AnyRoundStartedFunc       func(ctx context.Context, leagueID uuid.UUID, now time.Time) (bool, error)
	LockScoringFunc           func(ctx context.Context, id uuid.UUID) error
}

func (f *FakeLeaguesRepository) CreateLeague(ctx context.Context, req NewLeague) (*models.League, error) {
	return f.CreateLeagueFunc(ctx, req)
}

func (f *FakeLeaguesRepository) GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	return f.GetLeagueFunc(ctx, id)
}

func (f *FakeLeaguesRepository) ListLeagues(ctx context.Context, seasonID *uuid.UUID) ([]models.League, error) {
	return f.ListLeaguesFunc(ctx, seasonID)
}

func (f *FakeLeaguesRepository) UpdateLeague(ctx context.Context, league models.League) (*models.League, error) {
	return f.UpdateLeagueFunc(ctx, league)
}

func (f *FakeLeaguesRepository) DeleteLeague(ctx context.Context, id uuid.UUID) error {
	return f.DeleteLeagueFunc(ctx, id)
}

func (f *FakeLeaguesRepository) CountLeaguesByCreator(ctx context.Context, creatorID uuid.UUID) (int, error) {
	return f.CountLeaguesByCreatorFunc(ctx, creatorID)
}

func (f *FakeLeaguesRepository) AnyRoundStarted(ctx context.Context, leagueID uuid.UUID, now time.Time) (bool, error) {
	return f.AnyRoundStartedFunc(ctx, leagueID, now)
}

func (f *FakeLeaguesRepository) LockScoring(ctx context.Context, id uuid.UUID) error {
	return f.LockScoringFunc(ctx, id)
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

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

var now = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func TestApp_CreateLeague(t *testing.T) {
	seasonID := uuid.New()
	player := models.User{ID: uuid.New(), Role: models.UserRolePlayer}
	admin := models.User{ID: uuid.New(), Role: models.UserRoleAdmin}

	tests := []struct {
		name     string
		user     models.User
		existing int
		denied   error
		req      CreateLeagueRequest
		wantType models.LeagueType
		wantErr  error
	}{
		{
			name:     "defaults to custom",
			user:     player,
			req:      CreateLeagueRequest{SeasonID: seasonID, Name: "Friday Club"},
			wantType: models.LeagueTypeCustom,
		},
		{
			name:     "admin official",
			user:     admin,
			existing: 100,
			req:      CreateLeagueRequest{SeasonID: seasonID, Name: "Official", Type: models.LeagueTypeOfficial},
			wantType: models.LeagueTypeOfficial,
		},
		{
			name:    "player official",
			user:    player,
			req:     CreateLeagueRequest{SeasonID: seasonID, Name: "Official", Type: models.LeagueTypeOfficial},
			wantErr: apperrors.ErrForbidden,
		},
		{
			name:    "season not manageable",
			user:    player,
			denied:  apperrors.NewForbiddenError("not a season admin"),
			req:     CreateLeagueRequest{SeasonID: seasonID, Name: "Club"},
			wantErr: apperrors.ErrForbidden,
		},
		{
			name:    "season missing",
			user:    player,
			denied:  apperrors.NewNotFoundError("season", seasonID),
			req:     CreateLeagueRequest{SeasonID: seasonID, Name: "Club"},
			wantErr: apperrors.ErrNotFound,
		},
		{
			name:     "quota reached",
			user:     player,
			existing: 5,
			req:      CreateLeagueRequest{SeasonID: seasonID, Name: "Sixth"},
			wantErr:  apperrors.ErrStateConflict,
		},
		{
			name:    "negative weight",
			user:    player,
			req:     CreateLeagueRequest{SeasonID: seasonID, Name: "Club", ScoringSystem: &models.ScoringSystem{CorrectGoals: intPtr(-1)}},
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "missing season",
			user:    player,
			req:     CreateLeagueRequest{Name: "Club"},
			wantErr: apperrors.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var inserted *NewLeague
			repo := &FakeLeaguesRepository{
				CountLeaguesByCreatorFunc: func(context.Context, uuid.UUID) (int, error) { return tt.existing, nil },
				CreateLeagueFunc: func(_ context.Context, req NewLeague) (*models.League, error) {
					inserted = &req
					return &models.League{ID: uuid.New(), Name: req.Name, Type: req.Type, SeasonID: req.SeasonID, CreatorID: req.CreatorID}, nil
				},
			}
			authorizer := &FakeAuthorizer{RequireFunc: func(_ context.Context, _ models.User, target authz.Target) error {
				assert.Equal(t, authz.Season(seasonID), target)
				return tt.denied
			}}
			app := NewApp(repo, authorizer, authz.DefaultQuotas(), clockwork.NewFakeClockAt(now), &FakeInvalidator{})

			league, err := app.CreateLeague(context.Background(), tt.user, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, inserted)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, league.Type)
			assert.Equal(t, tt.user.ID, inserted.CreatorID)
			assert.True(t, inserted.ScoringSystem.IsEmpty())
		})
	}
}

func TestApp_CreateLeagueHashesPassword(t *testing.T) {
	var inserted NewLeague
	repo := &FakeLeaguesRepository{
		CountLeaguesByCreatorFunc: func(context.Context, uuid.UUID) (int, error) { return 0, nil },
		CreateLeagueFunc: func(_ context.Context, req NewLeague) (*models.League, error) {
			inserted = req
			return &models.League{ID: uuid.New(), PasswordHash: req.PasswordHash}, nil
		},
	}
	app := NewApp(repo, allowAll(), authz.DefaultQuotas(), clockwork.NewFakeClockAt(now), &FakeInvalidator{})

	league, err := app.CreateLeague(context.Background(), models.User{ID: uuid.New(), Role: models.UserRolePlayer}, CreateLeagueRequest{
		SeasonID: uuid.New(),
		Name:     "Secret",
		Password: strPtr("letmein"),
	})
	require.NoError(t, err)
	require.NotNil(t, inserted.PasswordHash)
	assert.NotEqual(t, "letmein", *inserted.PasswordHash)
	assert.NoError(t, auth.CheckPassword(*inserted.PasswordHash, "letmein"))
	assert.True(t, league.PasswordProtected())
}

// lockRepo serves one league and records lock and update calls.
type lockRepo struct {
	*FakeLeaguesRepository
	league    models.League
	started   bool
	lockCalls int
	saved     *models.League
	askedAt   time.Time
}

func newLockRepo(league models.League, started bool) *lockRepo {
	r := &lockRepo{league: league, started: started}
	r.FakeLeaguesRepository = &FakeLeaguesRepository{
		GetLeagueFunc: func(context.Context, uuid.UUID) (*models.League, error) {
			l := r.league
			return &l, nil
		},
		AnyRoundStartedFunc: func(_ context.Context, _ uuid.UUID, at time.Time) (bool, error) {
			r.askedAt = at
			return r.started, nil
		},
		LockScoringFunc: func(context.Context, uuid.UUID) error {
			r.lockCalls++
			r.league.ScoringLocked = true
			return nil
		},
		UpdateLeagueFunc: func(_ context.Context, l models.League) (*models.League, error) {
			r.saved = &l
			return &l, nil
		},
	}
	return r
}

func TestApp_UpdateLeagueScoringLock(t *testing.T) {
	creator := models.User{ID: uuid.New(), Role: models.UserRolePlayer}
	current := models.ScoringSystem{ExactScore: intPtr(5)}

	tests := []struct {
		name          string
		locked        bool
		started       bool
		req           UpdateLeagueRequest
		wantErr       error
		wantLockCalls int
		wantSystem    models.ScoringSystem
	}{
		{
			name:       "unlocked league accepts new weights",
			req:        UpdateLeagueRequest{ScoringSystem: &models.ScoringSystem{ExactScore: intPtr(7)}},
			wantSystem: models.ScoringSystem{ExactScore: intPtr(7)},
		},
		{
			name:    "locked league rejects new weights",
			locked:  true,
			req:     UpdateLeagueRequest{ScoringSystem: &models.ScoringSystem{ExactScore: intPtr(7)}},
			wantErr: apperrors.ErrStateConflict,
		},
		{
			name:          "started round latches the lock before judging",
			started:       true,
			req:           UpdateLeagueRequest{ScoringSystem: &models.ScoringSystem{CorrectWinner: intPtr(4)}},
			wantErr:       apperrors.ErrStateConflict,
			wantLockCalls: 1,
		},
		{
			name:          "started round still allows other fields",
			started:       true,
			req:           UpdateLeagueRequest{Name: strPtr("Renamed")},
			wantLockCalls: 1,
			wantSystem:    current,
		},
		{
			name:       "locked league accepts an equivalent system",
			locked:     true,
			req:        UpdateLeagueRequest{ScoringSystem: &models.ScoringSystem{ExactScore: intPtr(5), CorrectGoals: intPtr(1)}},
			wantSystem: current,
		},
		{
			name:    "negative weight",
			req:     UpdateLeagueRequest{ScoringSystem: &models.ScoringSystem{GoalDifference: intPtr(-2)}},
			wantErr: apperrors.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			league := models.League{ID: uuid.New(), Name: "Club", CreatorID: creator.ID, ScoringSystem: current, ScoringLocked: tt.locked}
			repo := newLockRepo(league, tt.started)
			app := NewApp(repo, allowAll(), authz.DefaultQuotas(), clockwork.NewFakeClockAt(now), &FakeInvalidator{})

			updated, err := app.UpdateLeague(context.Background(), creator, league.ID, tt.req)
			assert.Equal(t, tt.wantLockCalls, repo.lockCalls)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, repo.saved)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSystem, updated.ScoringSystem)
		})
	}
}

func TestApp_UpdateLeagueUsesClock(t *testing.T) {
	clock := clockwork.NewFakeClockAt(now)
	repo := newLockRepo(models.League{ID: uuid.New(), Name: "Club"}, false)
	app := NewApp(repo, allowAll(), authz.DefaultQuotas(), clock, &FakeInvalidator{})

	clock.Advance(90 * time.Minute)
	_, err := app.UpdateLeague(context.Background(), models.User{ID: uuid.New()}, repo.league.ID, UpdateLeagueRequest{})
	require.NoError(t, err)
	assert.Equal(t, now.Add(90*time.Minute), repo.askedAt)
}

func TestApp_UpdateLeagueLockedSkipsRoundCheck(t *testing.T) {
	repo := newLockRepo(models.League{ID: uuid.New(), Name: "Club", ScoringLocked: true}, true)
	repo.AnyRoundStartedFunc = func(context.Context, uuid.UUID, time.Time) (bool, error) {
		t.Fatal("round check on an already locked league")
		return false, nil
	}
	app := NewApp(repo, allowAll(), authz.DefaultQuotas(), clockwork.NewFakeClockAt(now), &FakeInvalidator{})

	_, err := app.UpdateLeague(context.Background(), models.User{ID: uuid.New()}, repo.league.ID, UpdateLeagueRequest{Name: strPtr("Still")})
	require.NoError(t, err)
	assert.Zero(t, repo.lockCalls)
}

func TestApp_UpdateLeaguePassword(t *testing.T) {
	hash := "$2a$10$existing"
	repo := newLockRepo(models.League{ID: uuid.New(), Name: "Club", PasswordHash: &hash}, false)
	app := NewApp(repo, allowAll(), authz.DefaultQuotas(), clockwork.NewFakeClockAt(now), &FakeInvalidator{})

	updated, err := app.UpdateLeague(context.Background(), models.User{ID: uuid.New()}, repo.league.ID, UpdateLeagueRequest{Password: strPtr("")})
	require.NoError(t, err)
	assert.False(t, updated.PasswordProtected())

	updated, err = app.UpdateLeague(context.Background(), models.User{ID: uuid.New()}, repo.league.ID, UpdateLeagueRequest{Password: strPtr("new-secret")})
	require.NoError(t, err)
	require.True(t, updated.PasswordProtected())
	assert.NoError(t, auth.CheckPassword(*updated.PasswordHash, "new-secret"))
}

func TestApp_UpdateLeagueDenied(t *testing.T) {
	repo := newLockRepo(models.League{ID: uuid.New(), Name: "Club"}, false)
	denied := &FakeAuthorizer{RequireFunc: func(_ context.Context, _ models.User, target authz.Target) error {
		assert.Equal(t, authz.KindLeague, target.Kind)
		return apperrors.NewForbiddenError("not a season admin")
	}}
	app := NewApp(repo, denied, authz.DefaultQuotas(), clockwork.NewFakeClockAt(now), &FakeInvalidator{})

	_, err := app.UpdateLeague(context.Background(), models.User{ID: uuid.New()}, repo.league.ID, UpdateLeagueRequest{Name: strPtr("X")})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	assert.Nil(t, repo.saved)
}

func TestApp_DeleteLeague(t *testing.T) {
	league := &models.League{ID: uuid.New(), SeasonID: uuid.New()}
	var deleted uuid.UUID
	repo := &FakeLeaguesRepository{
		GetLeagueFunc: func(context.Context, uuid.UUID) (*models.League, error) {
			return league, nil
		},
		DeleteLeagueFunc: func(_ context.Context, got uuid.UUID) error {
			deleted = got
			return nil
		},
	}
	invalidator := &FakeInvalidator{}
	app := NewApp(repo, allowAll(), authz.DefaultQuotas(), clockwork.NewFakeClockAt(now), invalidator)

	require.NoError(t, app.DeleteLeague(context.Background(), models.User{ID: uuid.New()}, league.ID))
	assert.Equal(t, league.ID, deleted)
	assert.Equal(t, [][2]uuid.UUID{{league.ID, league.SeasonID}}, invalidator.calls)
}

func TestApp_DeleteLeagueUnknown(t *testing.T) {
	repo := &FakeLeaguesRepository{
		GetLeagueFunc: func(_ context.Context, id uuid.UUID) (*models.League, error) {
			return nil, apperrors.NewNotFoundError("league", id)
		},
	}
	invalidator := &FakeInvalidator{}
	app := NewApp(repo, allowAll(), authz.DefaultQuotas(), clockwork.NewFakeClockAt(now), invalidator)

	err := app.DeleteLeague(context.Background(), models.User{ID: uuid.New()}, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Empty(t, invalidator.calls)
}
