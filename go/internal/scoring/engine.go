// Package scoring computes the points a tip earns once its match has a result.
package scoring

import (
	"github.com/mcdev12/tipster/go/internal/apperrors"
	"github.com/mcdev12/tipster/go/internal/models"
)

// Weights is a scoring system with every weight resolved
type Weights struct {
	ExactScore     int `json:"exact_score"`
	CorrectGoals   int `json:"correct_goals"`
	CorrectWinner  int `json:"correct_winner"`
	GoalDifference int `json:"goal_difference"`
}

// DefaultWeights applies to every key a league leaves unset
var DefaultWeights = Weights{
	ExactScore:     10,
	CorrectGoals:   1,
	CorrectWinner:  3,
	GoalDifference: 2,
}

// Resolve fills each unset key of s from DefaultWeights, key by key.
func Resolve(s models.ScoringSystem) Weights {
	w := DefaultWeights
	if s.ExactScore != nil {
		w.ExactScore = *s.ExactScore
	}
	if s.CorrectGoals != nil {
		w.CorrectGoals = *s.CorrectGoals
	}
	if s.CorrectWinner != nil {
		w.CorrectWinner = *s.CorrectWinner
	}
	if s.GoalDifference != nil {
		w.GoalDifference = *s.GoalDifference
	}
	return w
}

// Validate rejects negative weights
func Validate(s models.ScoringSystem) error {
	fields := []struct {
		name  string
		value *int
	}{
		{"scoring_system.exact_score", s.ExactScore},
		{"scoring_system.correct_goals", s.CorrectGoals},
		{"scoring_system.correct_winner", s.CorrectWinner},
		{"scoring_system.goal_difference", s.GoalDifference},
	}
	for _, f := range fields {
		if f.value != nil && *f.value < 0 {
			return apperrors.NewValidationError(f.name, "must not be negative")
		}
	}
	return nil
}

// WinnerFromScores derives the outcome of a scoreline. Equal scores are a draw.
func WinnerFromScores(home, away int) models.Winner {
	switch {
	case home > away:
		return models.WinnerHome
	case home < away:
		return models.WinnerAway
	default:
		return models.WinnerDraw
	}
}

// ScoreTip returns the points tip earns against the result of match.
// A match without both scores, or a tip without the fields its tip type
// needs, scores 0.
func ScoreTip(match models.Match, tip models.Tip, system models.ScoringSystem) int {
	if match.HomeScore == nil || match.AwayScore == nil {
		return 0
	}
	w := Resolve(system)

	var points int
	switch match.TipType {
	case models.TipTypeExactScore:
		points = scoreExact(*match.HomeScore, *match.AwayScore, tip, w)
	case models.TipTypeWinner:
		points = scoreWinner(*match.HomeScore, *match.AwayScore, tip, w)
	default:
		return 0
	}
	if points < 0 {
		return 0
	}
	return points
}

func scoreExact(home, away int, tip models.Tip, w Weights) int {
	if tip.HomeScore == nil || tip.AwayScore == nil {
		return 0
	}
	tipHome, tipAway := *tip.HomeScore, *tip.AwayScore

	// an exact hit is exclusive of the partial credit below
	if tipHome == home && tipAway == away {
		return w.ExactScore
	}

	points := 0
	if tipHome == home {
		points += w.CorrectGoals
	}
	if tipAway == away {
		points += w.CorrectGoals
	}
	if WinnerFromScores(tipHome, tipAway) == WinnerFromScores(home, away) {
		points += w.CorrectWinner
	}
	if home-away == tipHome-tipAway {
		points += w.GoalDifference
	}
	return points
}

func scoreWinner(home, away int, tip models.Tip, w Weights) int {
	if tip.Winner == nil {
		return 0
	}
	if *tip.Winner == WinnerFromScores(home, away) {
		return w.CorrectWinner
	}
	return 0
}
