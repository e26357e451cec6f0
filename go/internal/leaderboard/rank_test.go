package leaderboard

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRank(t *testing.T) {
	ana := uuid.New()
	ben := uuid.New()
	cleo := uuid.New()
	dev := uuid.New()

	rows := []Row{
		{UserID: dev, Username: "dev", TotalPoints: 0, TipsCount: 0},
		{UserID: cleo, Username: "cleo", TotalPoints: 18, TipsCount: 6, CorrectPredictions: 4},
		{UserID: ben, Username: "ben", TotalPoints: 18, TipsCount: 3, CorrectPredictions: 2},
		{UserID: ana, Username: "ana", TotalPoints: 18, TipsCount: 3, CorrectPredictions: 2},
	}

	want := []models.LeaderboardEntry{
		{Rank: 1, UserID: cleo, Username: "cleo", TotalPoints: 18, TipsCount: 6, CorrectPredictions: 4, Accuracy: 67},
		{Rank: 2, UserID: ana, Username: "ana", TotalPoints: 18, TipsCount: 3, CorrectPredictions: 2, Accuracy: 67},
		{Rank: 3, UserID: ben, Username: "ben", TotalPoints: 18, TipsCount: 3, CorrectPredictions: 2, Accuracy: 67},
		{Rank: 4, UserID: dev, Username: "dev", TotalPoints: 0, TipsCount: 0, Accuracy: 0},
	}

	got := Rank(rows)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Rank() mismatch (-want +got):\n%s", diff)
	}

	// input order is left alone
	assert.Equal(t, dev, rows[0].UserID)
}

func TestRank_Empty(t *testing.T) {
	got := Rank(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAccuracy(t *testing.T) {
	tests := []struct {
		correct, tips, want int
	}{
		{0, 0, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},
		{5, 5, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, accuracy(tt.correct, tt.tips), "%d/%d", tt.correct, tt.tips)
	}
}
