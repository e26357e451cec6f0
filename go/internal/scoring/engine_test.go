package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/tipster/go/internal/apperrors"
	"github.com/mcdev12/tipster/go/internal/models"
)

func intPtr(v int) *int { return &v }

func winnerPtr(w models.Winner) *models.Winner { return &w }

func finished(tipType models.TipType, home, away int) models.Match {
	return models.Match{
		HomeScore: intPtr(home),
		AwayScore: intPtr(away),
		Status:    models.MatchStatusFinished,
		TipType:   tipType,
	}
}

func exactTip(home, away int) models.Tip {
	w := WinnerFromScores(home, away)
	return models.Tip{HomeScore: intPtr(home), AwayScore: intPtr(away), Winner: &w}
}

func TestWinnerFromScores(t *testing.T) {
	assert.Equal(t, models.WinnerHome, WinnerFromScores(2, 1))
	assert.Equal(t, models.WinnerAway, WinnerFromScores(0, 3))
	assert.Equal(t, models.WinnerDraw, WinnerFromScores(0, 0))
	assert.Equal(t, models.WinnerDraw, WinnerFromScores(4, 4))
}

func TestScoreTip_ExactScore(t *testing.T) {
	match := finished(models.TipTypeExactScore, 2, 1)

	tests := []struct {
		name string
		tip  models.Tip
		want int
	}{
		{name: "exact hit", tip: exactTip(2, 1), want: 10},
		{name: "correct winner and goal difference", tip: exactTip(1, 0), want: 5},
		{name: "correct home goals only", tip: exactTip(2, 2), want: 1},
		{name: "correct away goals and winner", tip: exactTip(3, 1), want: 1 + 3},
		{name: "both legs wrong, winner right", tip: exactTip(4, 0), want: 3},
		{name: "everything wrong", tip: exactTip(0, 2), want: 0},
		{name: "missing away score", tip: models.Tip{HomeScore: intPtr(2)}, want: 0},
		{name: "empty tip", tip: models.Tip{}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreTip(match, tt.tip, models.ScoringSystem{}))
		})
	}
}

func TestScoreTip_ExactHitIsExclusive(t *testing.T) {
	// an exact hit would also satisfy every partial component
	system := models.ScoringSystem{
		ExactScore:     intPtr(4),
		CorrectGoals:   intPtr(5),
		CorrectWinner:  intPtr(6),
		GoalDifference: intPtr(7),
	}
	match := finished(models.TipTypeExactScore, 1, 1)

	assert.Equal(t, 4, ScoreTip(match, exactTip(1, 1), system))
}

func TestScoreTip_PartialCreditIsAdditive(t *testing.T) {
	system := models.ScoringSystem{
		ExactScore:     intPtr(100),
		CorrectGoals:   intPtr(1),
		CorrectWinner:  intPtr(10),
		GoalDifference: intPtr(1000),
	}
	match := finished(models.TipTypeExactScore, 3, 1)

	// home leg right, winner right, difference wrong
	assert.Equal(t, 1+10, ScoreTip(match, exactTip(3, 0), system))
	// winner right, difference right, legs wrong
	assert.Equal(t, 10+1000, ScoreTip(match, exactTip(2, 0), system))
	// away leg right only
	assert.Equal(t, 1, ScoreTip(match, exactTip(0, 1), system))

	maxPartial := 2*1 + 10 + 1000
	for home := 0; home <= 6; home++ {
		for away := 0; away <= 6; away++ {
			if home == 3 && away == 1 {
				continue
			}
			got := ScoreTip(match, exactTip(home, away), system)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, maxPartial)
		}
	}
}

func TestScoreTip_Winner(t *testing.T) {
	match := finished(models.TipTypeWinner, 3, 3)

	assert.Equal(t, 3, ScoreTip(match, models.Tip{Winner: winnerPtr(models.WinnerDraw)}, models.ScoringSystem{}))
	assert.Equal(t, 0, ScoreTip(match, models.Tip{Winner: winnerPtr(models.WinnerHome)}, models.ScoringSystem{}))
	assert.Equal(t, 0, ScoreTip(match, models.Tip{}, models.ScoringSystem{}))

	// scores on a winner tip are ignored
	tip := models.Tip{HomeScore: intPtr(3), AwayScore: intPtr(3), Winner: winnerPtr(models.WinnerAway)}
	assert.Equal(t, 0, ScoreTip(match, tip, models.ScoringSystem{}))
}

func TestScoreTip_NoResult(t *testing.T) {
	match := models.Match{TipType: models.TipTypeExactScore, HomeScore: intPtr(1)}
	assert.Equal(t, 0, ScoreTip(match, exactTip(1, 0), models.ScoringSystem{}))

	unknown := finished(models.TipType("penalties"), 1, 0)
	assert.Equal(t, 0, ScoreTip(unknown, exactTip(1, 0), models.ScoringSystem{}))
}

func TestScoreTip_Idempotent(t *testing.T) {
	match := finished(models.TipTypeExactScore, 2, 0)
	tip := exactTip(1, 0)
	system := models.ScoringSystem{CorrectWinner: intPtr(4)}

	first := ScoreTip(match, tip, system)
	second := ScoreTip(match, tip, system)
	assert.Equal(t, first, second)
	// away leg and winner
	assert.Equal(t, 1+4, first)
}

func TestResolve(t *testing.T) {
	t.Run("empty system equals defaults", func(t *testing.T) {
		assert.Equal(t, DefaultWeights, Resolve(models.ScoringSystem{}))

		explicit := models.ScoringSystem{
			ExactScore:     intPtr(10),
			CorrectGoals:   intPtr(1),
			CorrectWinner:  intPtr(3),
			GoalDifference: intPtr(2),
		}
		match := finished(models.TipTypeExactScore, 2, 1)
		for _, tip := range []models.Tip{exactTip(2, 1), exactTip(1, 0), exactTip(2, 2), exactTip(0, 0)} {
			assert.Equal(t, ScoreTip(match, tip, explicit), ScoreTip(match, tip, models.ScoringSystem{}))
		}
	})

	t.Run("partial override keeps other defaults", func(t *testing.T) {
		got := Resolve(models.ScoringSystem{ExactScore: intPtr(25), GoalDifference: intPtr(0)})
		assert.Equal(t, Weights{ExactScore: 25, CorrectGoals: 1, CorrectWinner: 3, GoalDifference: 0}, got)
	})
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(models.ScoringSystem{}))
	require.NoError(t, Validate(models.ScoringSystem{ExactScore: intPtr(0)}))

	err := Validate(models.ScoringSystem{CorrectWinner: intPtr(-1)})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "correct_winner")
}
