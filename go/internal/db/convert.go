package db

import (
	"encoding/json"
	"fmt"

	"github.com/mcdev12/tipster/go/internal/models"
	"github.com/mcdev12/tipster/go/internal/sqlutil"
)

// Conversions from row structs to domain models. Kept outside the generated
// files so regeneration does not drop them.

func (s Season) ToModel() models.Season {
	return models.Season{
		ID:          s.ID,
		Name:        s.Name,
		Description: sqlutil.FromText(s.Description),
		Image:       sqlutil.FromText(s.Image),
		Type:        models.SeasonType(s.Type),
		InviteCode:  s.InviteCode,
		IsActive:    s.IsActive,
		Rules:       sqlutil.FromText(s.Rules),
		CreatorID:   s.CreatorID,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (u UserSeason) ToModel() models.UserSeason {
	return models.UserSeason{
		UserID:   u.UserID,
		SeasonID: u.SeasonID,
		Role:     models.SeasonRole(u.Role),
		JoinedAt: u.JoinedAt,
	}
}

// ToModel decodes the stored scoring system; a malformed document is an error.
func (l League) ToModel() (models.League, error) {
	var system models.ScoringSystem
	if len(l.ScoringSystem) > 0 {
		if err := json.Unmarshal(l.ScoringSystem, &system); err != nil {
			return models.League{}, fmt.Errorf("failed to decode scoring system of league %s: %w", l.ID, err)
		}
	}
	return models.League{
		ID:            l.ID,
		Name:          l.Name,
		Description:   sqlutil.FromText(l.Description),
		Image:         sqlutil.FromText(l.Image),
		Type:          models.LeagueType(l.Type),
		PasswordHash:  sqlutil.FromText(l.PasswordHash),
		SeasonID:      l.SeasonID,
		CreatorID:     l.CreatorID,
		IsActive:      l.IsActive,
		ScoringSystem: system,
		ScoringLocked: l.ScoringLocked,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}, nil
}

// EncodeScoringSystem is the inverse of the decoding done by League.ToModel.
func EncodeScoringSystem(system models.ScoringSystem) ([]byte, error) {
	raw, err := json.Marshal(system)
	if err != nil {
		return nil, fmt.Errorf("failed to encode scoring system: %w", err)
	}
	return raw, nil
}

func (r Round) ToModel() models.Round {
	return models.Round{
		ID:          r.ID,
		Name:        r.Name,
		Description: sqlutil.FromText(r.Description),
		LeagueID:    r.LeagueID,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (m Match) ToModel() models.Match {
	return models.Match{
		ID:         m.ID,
		RoundID:    m.RoundID,
		HomeTeamID: m.HomeTeamID,
		AwayTeamID: m.AwayTeamID,
		MatchTime:  m.MatchTime,
		HomeScore:  sqlutil.FromInt4(m.HomeScore),
		AwayScore:  sqlutil.FromInt4(m.AwayScore),
		Status:     models.MatchStatus(m.Status),
		TipType:    models.TipType(m.TipType),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func (t Tip) ToModel() models.Tip {
	var winner *models.Winner
	if t.Winner.Valid {
		w := models.Winner(t.Winner.TipWinner)
		winner = &w
	}
	return models.Tip{
		ID:        t.ID,
		UserID:    t.UserID,
		MatchID:   t.MatchID,
		HomeScore: sqlutil.FromInt4(t.HomeScore),
		AwayScore: sqlutil.FromInt4(t.AwayScore),
		Winner:    winner,
		Points:    int(t.Points),
		Submitted: t.Submitted,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// ToNullTipWinner converts an optional winner to its column value.
func ToNullTipWinner(w *models.Winner) NullTipWinner {
	if w == nil {
		return NullTipWinner{}
	}
	return NullTipWinner{TipWinner: TipWinner(*w), Valid: true}
}

func (t Team) ToModel() models.Team {
	return models.Team{
		ID:        t.ID,
		Name:      t.Name,
		Logo:      sqlutil.FromText(t.Logo),
		Type:      models.TeamType(t.Type),
		CreatorID: sqlutil.FromNullUUID(t.CreatorID),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (n Notification) ToModel() models.Notification {
	return models.Notification{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      models.NotificationType(n.Type),
		Message:   n.Message,
		Link:      sqlutil.FromText(n.Link),
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

func (a Achievement) ToModel() models.Achievement {
	return models.Achievement{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Icon:        sqlutil.FromText(a.Icon),
		Criteria:    models.AchievementCriteria(a.Criteria),
		Value:       int(a.Value),
		CreatedAt:   a.CreatedAt,
	}
}
