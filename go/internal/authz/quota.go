package authz

import (
	"github.com/mcdev12/tipster/go/internal/apperrors"
	"github.com/mcdev12/tipster/go/internal/models"
)

// Limits caps how many seasons and leagues one user may create
type Limits struct {
	Seasons int `yaml:"seasons"`
	Leagues int `yaml:"leagues"`
}

// Quotas holds the creation ceilings of the bounded roles. Admins are unbounded.
type Quotas struct {
	Player Limits `yaml:"player"`
	VIP    Limits `yaml:"vip"`
}

func DefaultQuotas() Quotas {
	return Quotas{
		Player: Limits{Seasons: 1, Leagues: 5},
		VIP:    Limits{Seasons: 2, Leagues: 10},
	}
}

// limitsFor returns the ceilings of role; unbounded is true for admins.
func (q Quotas) limitsFor(role models.UserRole) (limits Limits, unbounded bool) {
	switch role {
	case models.UserRoleAdmin:
		return Limits{}, true
	case models.UserRoleVIP:
		return q.VIP, false
	case models.UserRolePlayer:
		return q.Player, false
	default:
		return Limits{}, false
	}
}

// CheckSeasonQuota fails with a StateConflictError when a user of role who already
// created `created` seasons may not create another.
func (q Quotas) CheckSeasonQuota(role models.UserRole, created int) error {
	limits, unbounded := q.limitsFor(role)
	if unbounded || created < limits.Seasons {
		return nil
	}
	return apperrors.NewStateConflictError("season limit reached: role %s may create at most %d seasons", role, limits.Seasons)
}

// CheckLeagueQuota is CheckSeasonQuota for leagues.
func (q Quotas) CheckLeagueQuota(role models.UserRole, created int) error {
	limits, unbounded := q.limitsFor(role)
	if unbounded || created < limits.Leagues {
		return nil
	}
	return apperrors.NewStateConflictError("league limit reached: role %s may create at most %d leagues", role, limits.Leagues)
}
