// Package leaderboard ranks tipsters of a league or a season and caches the
// tables in Redis.
package leaderboard

import (
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/models"
)

// Row is the aggregate of one user's tips before ranking
type Row struct {
	UserID             uuid.UUID
	Username           string
	TotalPoints        int
	TipsCount          int
	CorrectPredictions int
}

// Rank orders rows by total points, then correct predictions, then username,
// and numbers them from 1. Accuracy is the rounded percentage of tips that
// scored, 0 without tips.
func Rank(rows []Row) []models.LeaderboardEntry {
	sorted := make([]Row, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.TotalPoints != b.TotalPoints {
			return a.TotalPoints > b.TotalPoints
		}
		if a.CorrectPredictions != b.CorrectPredictions {
			return a.CorrectPredictions > b.CorrectPredictions
		}
		return a.Username < b.Username
	})

	entries := make([]models.LeaderboardEntry, len(sorted))
	for i, row := range sorted {
		entries[i] = models.LeaderboardEntry{
			Rank:               i + 1,
			UserID:             row.UserID,
			Username:           row.Username,
			TotalPoints:        row.TotalPoints,
			TipsCount:          row.TipsCount,
			CorrectPredictions: row.CorrectPredictions,
			Accuracy:           accuracy(row.CorrectPredictions, row.TipsCount),
		}
	}
	return entries
}

func accuracy(correct, tips int) int {
	if tips == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(tips) * 100))
}
