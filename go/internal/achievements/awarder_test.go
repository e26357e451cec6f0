package achievements

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/db"
	"github.com/mcdev12/tipster/go/internal/models"
	"github.com/mcdev12/tipster/go/internal/outbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type FakeTxQueries struct {
	UserTipStatsFunc             func(ctx context.Context, userID uuid.UUID) (db.UserTipStatsRow, error)
	ListUnearnedAchievementsFunc func(ctx context.Context, userID uuid.UUID) ([]db.Achievement, error)
	AwardAchievementFunc         func(ctx context.Context, arg db.AwardAchievementParams) (int64, error)
	CreateNotificationFunc       func(ctx context.Context, arg db.CreateNotificationParams) (db.Notification, error)
	InsertOutboxEventFunc        func(ctx context.Context, arg db.InsertOutboxEventParams) error
}

func (f *FakeTxQueries) UserTipStats(ctx context.Context, userID uuid.UUID) (db.UserTipStatsRow, error) {
	return f.UserTipStatsFunc(ctx, userID)
}

func (f *FakeTxQueries) ListUnearnedAchievements(ctx context.Context, userID uuid.UUID) ([]db.Achievement, error) {
	return f.ListUnearnedAchievementsFunc(ctx, userID)
}

func (f *FakeTxQueries) AwardAchievement(ctx context.Context, arg db.AwardAchievementParams) (int64, error) {
	return f.AwardAchievementFunc(ctx, arg)
}

func (f *FakeTxQueries) CreateNotification(ctx context.Context, arg db.CreateNotificationParams) (db.Notification, error) {
	return f.CreateNotificationFunc(ctx, arg)
}

func (f *FakeTxQueries) InsertOutboxEvent(ctx context.Context, arg db.InsertOutboxEventParams) error {
	return f.InsertOutboxEventFunc(ctx, arg)
}

func TestStats_Reached(t *testing.T) {
	stats := Stats{TotalPoints: 12, TipsCount: 50, CorrectPredictions: 7, ExactScores: 1}

	tests := []struct {
		criteria models.AchievementCriteria
		value    int
		want     bool
	}{
		{models.CriteriaTotalPoints, 10, true},
		{models.CriteriaTotalPoints, 100, false},
		{models.CriteriaTipsSubmitted, 50, true},
		{models.CriteriaCorrectPredictions, 8, false},
		{models.CriteriaExactScores, 1, true},
		{models.CriteriaExactScores, 10, false},
		{"streak", 1, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.criteria), func(t *testing.T) {
			got := stats.Reached(models.Achievement{Criteria: tt.criteria, Value: tt.value})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGrant(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	firstTip := db.Achievement{ID: uuid.New(), Name: "First Tip", Criteria: "tips_submitted", Value: 1}
	century := db.Achievement{ID: uuid.New(), Name: "Century", Criteria: "total_points", Value: 100}
	sharpshooter := db.Achievement{ID: uuid.New(), Name: "Sharpshooter", Criteria: "exact_scores", Value: 1}

	stats := map[uuid.UUID]db.UserTipStatsRow{
		alice: {TotalPoints: 10, TipsCount: 1, CorrectPredictions: 1, ExactScores: 1},
		bob:   {TotalPoints: 0, TipsCount: 1},
	}
	var awarded []db.AwardAchievementParams
	var notified []db.CreateNotificationParams
	var events []string

	q := &FakeTxQueries{
		UserTipStatsFunc: func(_ context.Context, userID uuid.UUID) (db.UserTipStatsRow, error) {
			return stats[userID], nil
		},
		ListUnearnedAchievementsFunc: func(_ context.Context, userID uuid.UUID) ([]db.Achievement, error) {
			return []db.Achievement{firstTip, century, sharpshooter}, nil
		},
		AwardAchievementFunc: func(_ context.Context, arg db.AwardAchievementParams) (int64, error) {
			// bob already got First Tip from a concurrent evaluation
			if arg.UserID == bob && arg.AchievementID == firstTip.ID {
				return 0, nil
			}
			awarded = append(awarded, arg)
			return 1, nil
		},
		CreateNotificationFunc: func(_ context.Context, arg db.CreateNotificationParams) (db.Notification, error) {
			notified = append(notified, arg)
			return db.Notification{ID: uuid.New()}, nil
		},
		InsertOutboxEventFunc: func(_ context.Context, arg db.InsertOutboxEventParams) error {
			events = append(events, arg.EventType)
			return nil
		},
	}

	awards, err := Grant(context.Background(), q, []uuid.UUID{alice, bob})
	require.NoError(t, err)

	require.Len(t, awards, 2)
	assert.Equal(t, alice, awards[0].UserID)
	assert.Equal(t, "First Tip", awards[0].Achievement.Name)
	assert.Equal(t, "Sharpshooter", awards[1].Achievement.Name)
	assert.Len(t, awarded, 2)

	require.Len(t, notified, 2)
	assert.Equal(t, db.NotificationTypeAchievement, notified[0].Type)
	assert.Equal(t, "Achievement unlocked: First Tip", notified[0].Message)
	assert.Equal(t, []string{
		outbox.EventNotificationsCreated, outbox.EventAchievementAwarded,
		outbox.EventNotificationsCreated, outbox.EventAchievementAwarded,
	}, events)
}

func TestGrant_PropagatesErrors(t *testing.T) {
	boom := errors.New("stats unavailable")
	q := &FakeTxQueries{
		UserTipStatsFunc: func(context.Context, uuid.UUID) (db.UserTipStatsRow, error) {
			return db.UserTipStatsRow{}, boom
		},
	}

	_, err := Grant(context.Background(), q, []uuid.UUID{uuid.New()})
	assert.ErrorIs(t, err, boom)
}
