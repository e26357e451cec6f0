package authz

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/apperrors"
	"github.com/mcdev12/tipster/go/internal/models"
)

// ChainLoader defines what the resolver needs to walk a target up to its season.
// Lookups of missing rows return an error matching apperrors.ErrNotFound.
type ChainLoader interface {
	GetSeasonCreator(ctx context.Context, seasonID uuid.UUID) (uuid.UUID, error)
	GetLeagueSeasonID(ctx context.Context, leagueID uuid.UUID) (uuid.UUID, error)
	GetRoundLeagueID(ctx context.Context, roundID uuid.UUID) (uuid.UUID, error)
	GetMatchRoundID(ctx context.Context, matchID uuid.UUID) (uuid.UUID, error)
	// GetSeasonRole returns the user's role in the season, or "" for non-participants.
	GetSeasonRole(ctx context.Context, userID, seasonID uuid.UUID) (models.SeasonRole, error)
}

// Resolver answers "may this user manage that entity"
type Resolver struct {
	loader ChainLoader
}

func NewResolver(loader ChainLoader) *Resolver {
	return &Resolver{loader: loader}
}

// CanManage walks target to its season and applies the season rule. A broken
// link anywhere on the chain yields ReasonNotFound.
func (r *Resolver) CanManage(ctx context.Context, user models.User, target Target) (Decision, error) {
	seasonID, err := r.seasonOf(ctx, target)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return notFound(), nil
		}
		return Decision{}, err
	}

	creatorID, err := r.loader.GetSeasonCreator(ctx, seasonID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return notFound(), nil
		}
		return Decision{}, fmt.Errorf("failed to load season %s: %w", seasonID, err)
	}

	if decision, decided := decideByRole(user.Role); decided {
		return decision, nil
	}
	if creatorID == user.ID {
		return allow(), nil
	}

	role, err := r.loader.GetSeasonRole(ctx, user.ID, seasonID)
	if err != nil {
		return Decision{}, fmt.Errorf("failed to load season membership: %w", err)
	}
	return decideBySeasonRole(role), nil
}

// Require is CanManage folded into a single error: nil when allowed,
// a NotFoundError or ForbiddenError otherwise.
func (r *Resolver) Require(ctx context.Context, user models.User, target Target) error {
	decision, err := r.CanManage(ctx, user, target)
	if err != nil {
		return err
	}
	return decision.Err(target)
}

func (r *Resolver) CanManageSeason(ctx context.Context, user models.User, seasonID uuid.UUID) (Decision, error) {
	return r.CanManage(ctx, user, Season(seasonID))
}

func (r *Resolver) CanManageLeague(ctx context.Context, user models.User, leagueID uuid.UUID) (Decision, error) {
	return r.CanManage(ctx, user, League(leagueID))
}

func (r *Resolver) CanManageRound(ctx context.Context, user models.User, roundID uuid.UUID) (Decision, error) {
	return r.CanManage(ctx, user, Round(roundID))
}

func (r *Resolver) CanManageMatch(ctx context.Context, user models.User, matchID uuid.UUID) (Decision, error) {
	return r.CanManage(ctx, user, Match(matchID))
}

// seasonOf follows match -> round -> league -> season
func (r *Resolver) seasonOf(ctx context.Context, target Target) (uuid.UUID, error) {
	kind, id := target.Kind, target.ID
	for kind != KindSeason {
		var err error
		switch kind {
		case KindMatch:
			id, err = r.loader.GetMatchRoundID(ctx, id)
			kind = KindRound
		case KindRound:
			id, err = r.loader.GetRoundLeagueID(ctx, id)
			kind = KindLeague
		case KindLeague:
			id, err = r.loader.GetLeagueSeasonID(ctx, id)
			kind = KindSeason
		default:
			return uuid.Nil, fmt.Errorf("unknown target kind %q", kind)
		}
		if err != nil {
			return uuid.Nil, err
		}
	}
	return id, nil
}

// decideByRole settles the check for roles that never depend on ownership.
func decideByRole(role models.UserRole) (Decision, bool) {
	switch role {
	case models.UserRoleAdmin:
		return allow(), true
	case models.UserRoleVIP, models.UserRolePlayer:
		return Decision{}, false
	default:
		return forbid(), true
	}
}

func decideBySeasonRole(role models.SeasonRole) Decision {
	switch role {
	case models.SeasonRoleAdmin:
		return allow()
	case models.SeasonRolePlayer:
		return forbid()
	default:
		return forbid()
	}
}

// CanManageTeam applies the team rule: official teams belong to admins,
// community teams to their creator and admins.
func CanManageTeam(user models.User, team models.Team) Decision {
	switch team.Type {
	case models.TeamTypeOfficial:
		if user.IsAdmin() {
			return allow()
		}
		return forbid()
	case models.TeamTypeCommunity:
		if user.IsAdmin() {
			return allow()
		}
		if team.CreatorID != nil && *team.CreatorID == user.ID {
			return allow()
		}
		return forbid()
	default:
		return forbid()
	}
}
