package models

import "github.com/google/uuid"

// LeaderboardEntry is one ranked row of a league or season table
type LeaderboardEntry struct {
	Rank               int       `json:"rank"`
	UserID             uuid.UUID `json:"user_id"`
	Username           string    `json:"username"`
	TotalPoints        int       `json:"total_points"`
	TipsCount          int       `json:"tips_count"`
	CorrectPredictions int       `json:"correct_predictions"`
	Accuracy           int       `json:"accuracy"`
}
