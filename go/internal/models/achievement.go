package models

import (
	"time"

	"github.com/google/uuid"
)

// AchievementCriteria names the statistic an achievement is measured against
type AchievementCriteria string

const (
	CriteriaTotalPoints        AchievementCriteria = "total_points"
	CriteriaExactScores        AchievementCriteria = "exact_scores"
	CriteriaCorrectPredictions AchievementCriteria = "correct_predictions"
	CriteriaTipsSubmitted      AchievementCriteria = "tips_submitted"
)

type Achievement struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Icon        *string             `json:"icon,omitempty"`
	Criteria    AchievementCriteria `json:"criteria"`
	Value       int                 `json:"value"`
	CreatedAt   time.Time           `json:"created_at"`
}

type UserAchievement struct {
	UserID        uuid.UUID   `json:"user_id"`
	AchievementID uuid.UUID   `json:"achievement_id"`
	Achievement   Achievement `json:"achievement"`
	EarnedAt      time.Time   `json:"earned_at"`
}
