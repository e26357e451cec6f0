package tips

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/tipster/go/internal/apperrors"
	"github.com/mcdev12/tipster/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type FakeTipsRepository struct {
	GetMatchWithRoundFunc func(ctx context.Context, matchID uuid.UUID) (*models.Match, *models.Round, error)
	UpsertTipFunc         func(ctx context.Context, in TipInput) (*models.Tip, error)
	GetTipFunc            func(ctx context.Context, userID, matchID uuid.UUID) (*models.Tip, error)
	ListTipsFunc          func(ctx context.Context, userID uuid.UUID, roundID *uuid.UUID) ([]models.Tip, error)
	GetLeagueSeasonIDFunc func(ctx context.Context, leagueID uuid.UUID) (uuid.UUID, error)
}

func (f *FakeTipsRepository) GetMatchWithRound(ctx context.Context, matchID uuid.UUID) (*models.Match, *models.Round, error) {
	return f.GetMatchWithRoundFunc(ctx, matchID)
}

func (f *FakeTipsRepository) UpsertTip(ctx context.Context, in TipInput) (*models.Tip, error) {
	return f.UpsertTipFunc(ctx, in)
}

func (f *FakeTipsRepository) GetTip(ctx context.Context, userID, matchID uuid.UUID) (*models.Tip, error) {
	return f.GetTipFunc(ctx, userID, matchID)
}

func (f *FakeTipsRepository) ListTips(ctx context.Context, userID uuid.UUID, roundID *uuid.UUID) ([]models.Tip, error) {
	return f.ListTipsFunc(ctx, userID, roundID)
}

func (f *FakeTipsRepository) GetLeagueSeasonID(ctx context.Context, leagueID uuid.UUID) (uuid.UUID, error) {
	return f.GetLeagueSeasonIDFunc(ctx, leagueID)
}

type FakeInvalidator struct {
	calls [][2]uuid.UUID
}

func (f *FakeInvalidator) Invalidate(_ context.Context, leagueID, seasonID uuid.UUID) {
	f.calls = append(f.calls, [2]uuid.UUID{leagueID, seasonID})
}

var now = time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

func winnerPtr(w models.Winner) *models.Winner { return &w }

// tipStore serves one match and records what gets upserted
type tipStore struct {
	FakeTipsRepository
	match    models.Match
	round    models.Round
	seasonID uuid.UUID
	upserts  []TipInput
}

func newTipStore(tipType models.TipType, endDate time.Time) *tipStore {
	s := &tipStore{
		seasonID: uuid.New(),
		round:    models.Round{ID: uuid.New(), LeagueID: uuid.New(), StartDate: endDate.Add(-72 * time.Hour), EndDate: endDate},
	}
	s.match = models.Match{ID: uuid.New(), RoundID: s.round.ID, TipType: tipType, Status: models.MatchStatusScheduled}
	s.GetMatchWithRoundFunc = func(_ context.Context, matchID uuid.UUID) (*models.Match, *models.Round, error) {
		if matchID != s.match.ID {
			return nil, nil, apperrors.NewNotFoundError("match", matchID)
		}
		m, r := s.match, s.round
		return &m, &r, nil
	}
	s.UpsertTipFunc = func(_ context.Context, in TipInput) (*models.Tip, error) {
		s.upserts = append(s.upserts, in)
		return &models.Tip{
			ID:        uuid.New(),
			UserID:    in.UserID,
			MatchID:   in.MatchID,
			HomeScore: in.HomeScore,
			AwayScore: in.AwayScore,
			Winner:    in.Winner,
			Submitted: true,
		}, nil
	}
	s.GetLeagueSeasonIDFunc = func(context.Context, uuid.UUID) (uuid.UUID, error) {
		return s.seasonID, nil
	}
	return s
}

func TestApp_SubmitTip(t *testing.T) {
	user := models.User{ID: uuid.New(), Role: models.UserRolePlayer}

	tests := []struct {
		name       string
		tipType    models.TipType
		req        func(matchID uuid.UUID) SubmitTipRequest
		wantErr    error
		wantWinner models.Winner
		wantScores bool
	}{
		{
			name:    "exact score derives winner",
			tipType: models.TipTypeExactScore,
			req: func(id uuid.UUID) SubmitTipRequest {
				return SubmitTipRequest{MatchID: id, HomeScore: intPtr(2), AwayScore: intPtr(1)}
			},
			wantWinner: models.WinnerHome,
			wantScores: true,
		},
		{
			name:    "exact score overwrites client winner",
			tipType: models.TipTypeExactScore,
			req: func(id uuid.UUID) SubmitTipRequest {
				return SubmitTipRequest{MatchID: id, HomeScore: intPtr(1), AwayScore: intPtr(1), Winner: winnerPtr(models.WinnerAway)}
			},
			wantWinner: models.WinnerDraw,
			wantScores: true,
		},
		{
			name:    "exact score missing away",
			tipType: models.TipTypeExactScore,
			req: func(id uuid.UUID) SubmitTipRequest {
				return SubmitTipRequest{MatchID: id, HomeScore: intPtr(1)}
			},
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "negative score",
			tipType: models.TipTypeExactScore,
			req: func(id uuid.UUID) SubmitTipRequest {
				return SubmitTipRequest{MatchID: id, HomeScore: intPtr(-1), AwayScore: intPtr(0)}
			},
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "winner drops scores",
			tipType: models.TipTypeWinner,
			req: func(id uuid.UUID) SubmitTipRequest {
				return SubmitTipRequest{MatchID: id, HomeScore: intPtr(4), AwayScore: intPtr(0), Winner: winnerPtr(models.WinnerAway)}
			},
			wantWinner: models.WinnerAway,
		},
		{
			name:    "winner missing",
			tipType: models.TipTypeWinner,
			req: func(id uuid.UUID) SubmitTipRequest {
				return SubmitTipRequest{MatchID: id}
			},
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "winner invalid",
			tipType: models.TipTypeWinner,
			req: func(id uuid.UUID) SubmitTipRequest {
				return SubmitTipRequest{MatchID: id, Winner: winnerPtr("nobody")}
			},
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "unknown match",
			tipType: models.TipTypeWinner,
			req: func(uuid.UUID) SubmitTipRequest {
				return SubmitTipRequest{MatchID: uuid.New(), Winner: winnerPtr(models.WinnerHome)}
			},
			wantErr: apperrors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTipStore(tt.tipType, now.Add(24*time.Hour))
			app := NewApp(store, clockwork.NewFakeClockAt(now), &FakeInvalidator{})

			tip, err := app.SubmitTip(context.Background(), user, tt.req(store.match.ID))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, store.upserts)
				return
			}
			require.NoError(t, err)
			require.Len(t, store.upserts, 1)

			in := store.upserts[0]
			assert.Equal(t, user.ID, in.UserID)
			require.NotNil(t, in.Winner)
			assert.Equal(t, tt.wantWinner, *in.Winner)
			if tt.wantScores {
				assert.NotNil(t, in.HomeScore)
				assert.NotNil(t, in.AwayScore)
			} else {
				assert.Nil(t, in.HomeScore)
				assert.Nil(t, in.AwayScore)
			}
			assert.Zero(t, tip.Points)
			assert.True(t, tip.Submitted)
		})
	}
}

func TestApp_SubmitTipAfterDeadline(t *testing.T) {
	yesterday := now.Add(-24 * time.Hour)

	for _, status := range []models.MatchStatus{models.MatchStatusScheduled, models.MatchStatusFinished} {
		t.Run(string(status), func(t *testing.T) {
			store := newTipStore(models.TipTypeExactScore, yesterday)
			store.match.Status = status
			app := NewApp(store, clockwork.NewFakeClockAt(now), &FakeInvalidator{})

			_, err := app.SubmitTip(context.Background(), models.User{ID: uuid.New()}, SubmitTipRequest{
				MatchID:   store.match.ID,
				HomeScore: intPtr(1),
				AwayScore: intPtr(0),
			})

			var deadlineErr *apperrors.DeadlinePassedError
			require.ErrorAs(t, err, &deadlineErr)
			assert.Equal(t, yesterday, deadlineErr.Deadline)
			assert.Empty(t, store.upserts)
		})
	}
}

func TestApp_SubmitTipDeadlineIsInclusive(t *testing.T) {
	store := newTipStore(models.TipTypeWinner, now.Add(time.Minute))
	clock := clockwork.NewFakeClockAt(now)
	app := NewApp(store, clock, &FakeInvalidator{})
	req := SubmitTipRequest{MatchID: store.match.ID, Winner: winnerPtr(models.WinnerHome)}

	_, err := app.SubmitTip(context.Background(), models.User{ID: uuid.New()}, req)
	require.NoError(t, err)

	// exactly at the end date tipping is still open
	clock.Advance(time.Minute)
	_, err = app.SubmitTip(context.Background(), models.User{ID: uuid.New()}, req)
	require.NoError(t, err)

	clock.Advance(time.Second)
	_, err = app.SubmitTip(context.Background(), models.User{ID: uuid.New()}, req)
	assert.ErrorIs(t, err, apperrors.ErrDeadlinePassed)
	assert.Len(t, store.upserts, 2)
}

func TestApp_ListTipsPassesRoundFilter(t *testing.T) {
	user := models.User{ID: uuid.New()}
	roundID := uuid.New()
	var gotRound *uuid.UUID
	repo := &FakeTipsRepository{
		ListTipsFunc: func(_ context.Context, userID uuid.UUID, roundID *uuid.UUID) ([]models.Tip, error) {
			assert.Equal(t, user.ID, userID)
			gotRound = roundID
			return []models.Tip{{UserID: userID}}, nil
		},
	}
	app := NewApp(repo, clockwork.NewFakeClockAt(now), &FakeInvalidator{})

	tips, err := app.ListTips(context.Background(), user, &roundID)
	require.NoError(t, err)
	assert.Len(t, tips, 1)
	require.NotNil(t, gotRound)
	assert.Equal(t, roundID, *gotRound)
}

func TestApp_SubmitTipDropsCachedStandings(t *testing.T) {
	store := newTipStore(models.TipTypeWinner, now.Add(time.Hour))
	invalidator := &FakeInvalidator{}
	app := NewApp(store, clockwork.NewFakeClockAt(now), invalidator)

	_, err := app.SubmitTip(context.Background(), models.User{ID: uuid.New()}, SubmitTipRequest{
		MatchID: store.match.ID,
		Winner:  winnerPtr(models.WinnerAway),
	})
	require.NoError(t, err)
	assert.Equal(t, [][2]uuid.UUID{{store.round.LeagueID, store.seasonID}}, invalidator.calls)

	// a late tip changes nothing
	late := newTipStore(models.TipTypeWinner, now.Add(-time.Hour))
	app = NewApp(late, clockwork.NewFakeClockAt(now), invalidator)
	_, err = app.SubmitTip(context.Background(), models.User{ID: uuid.New()}, SubmitTipRequest{
		MatchID: late.match.ID,
		Winner:  winnerPtr(models.WinnerAway),
	})
	assert.ErrorIs(t, err, apperrors.ErrDeadlinePassed)
	assert.Len(t, invalidator.calls, 1)
}

func TestApp_SubmitTipKeepsTipWhenSeasonLookupFails(t *testing.T) {
	store := newTipStore(models.TipTypeWinner, now.Add(time.Hour))
	store.GetLeagueSeasonIDFunc = func(_ context.Context, leagueID uuid.UUID) (uuid.UUID, error) {
		return uuid.Nil, apperrors.NewNotFoundError("league", leagueID)
	}
	invalidator := &FakeInvalidator{}
	app := NewApp(store, clockwork.NewFakeClockAt(now), invalidator)

	tip, err := app.SubmitTip(context.Background(), models.User{ID: uuid.New()}, SubmitTipRequest{
		MatchID: store.match.ID,
		Winner:  winnerPtr(models.WinnerHome),
	})
	require.NoError(t, err)
	assert.True(t, tip.Submitted)
	assert.Empty(t, invalidator.calls)
}
