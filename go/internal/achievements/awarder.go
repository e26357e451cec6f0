package achievements

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/db"
	"github.com/mcdev12/tipster/go/internal/models"
	"github.com/mcdev12/tipster/go/internal/notifications"
	"github.com/mcdev12/tipster/go/internal/outbox"
)

// TxQueries is what Award needs from a transaction-bound db.Queries
type TxQueries interface {
	UserTipStats(ctx context.Context, userID uuid.UUID) (db.UserTipStatsRow, error)
	ListUnearnedAchievements(ctx context.Context, userID uuid.UUID) ([]db.Achievement, error)
	AwardAchievement(ctx context.Context, arg db.AwardAchievementParams) (int64, error)
	notifications.TxQueries
}

// Stats are the lifetime tipping figures of one user
type Stats struct {
	TotalPoints        int
	TipsCount          int
	CorrectPredictions int
	ExactScores        int
}

// Reached reports whether s meets the threshold of a. Unknown criteria are never reached.
func (s Stats) Reached(a models.Achievement) bool {
	var have int
	switch a.Criteria {
	case models.CriteriaTotalPoints:
		have = s.TotalPoints
	case models.CriteriaExactScores:
		have = s.ExactScores
	case models.CriteriaCorrectPredictions:
		have = s.CorrectPredictions
	case models.CriteriaTipsSubmitted:
		have = s.TipsCount
	default:
		return false
	}
	return have >= a.Value
}

// Award is one achievement granted to one user
type Award struct {
	UserID      uuid.UUID
	Achievement models.Achievement
}

// Grant awards every achievement each user newly qualifies for, on q. Each
// grant is announced with an achievement notification and outbox event.
func Grant(ctx context.Context, q TxQueries, userIDs []uuid.UUID) ([]Award, error) {
	var awards []Award
	for _, userID := range userIDs {
		row, err := q.UserTipStats(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to get tip stats: %w", err)
		}
		stats := Stats{
			TotalPoints:        int(row.TotalPoints),
			TipsCount:          int(row.TipsCount),
			CorrectPredictions: int(row.CorrectPredictions),
			ExactScores:        int(row.ExactScores),
		}

		unearned, err := q.ListUnearnedAchievements(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to list unearned achievements: %w", err)
		}

		for _, candidate := range unearned {
			achievement := candidate.ToModel()
			if !stats.Reached(achievement) {
				continue
			}

			inserted, err := q.AwardAchievement(ctx, db.AwardAchievementParams{
				UserID:        userID,
				AchievementID: achievement.ID,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to award achievement: %w", err)
			}
			if inserted == 0 {
				continue
			}

			if err := announce(ctx, q, userID, achievement); err != nil {
				return nil, err
			}
			awards = append(awards, Award{UserID: userID, Achievement: achievement})
		}
	}
	return awards, nil
}

func announce(ctx context.Context, q TxQueries, userID uuid.UUID, achievement models.Achievement) error {
	link := "/achievements/me"
	if _, err := notifications.Enqueue(ctx, q, notifications.Batch{
		Type:    models.NotificationTypeAchievement,
		UserIDs: []uuid.UUID{userID},
		Message: fmt.Sprintf("Achievement unlocked: %s", achievement.Name),
		Link:    &link,
	}); err != nil {
		return err
	}

	_, err := outbox.Write(ctx, q, outbox.Event{
		AggregateID: userID,
		Type:        outbox.EventAchievementAwarded,
		Payload: outbox.AchievementAwardedPayload{
			UserID:        userID,
			AchievementID: achievement.ID,
			Name:          achievement.Name,
		},
	})
	return err
}
