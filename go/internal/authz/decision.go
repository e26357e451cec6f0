// Package authz decides whether a user may manage seasons, leagues, rounds,
// matches and teams, and whether a user may create more seasons or leagues.
package authz

import (
	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/apperrors"
)

// Reason explains a Decision
type Reason string

const (
	ReasonOK        Reason = "ok"
	ReasonNotFound  Reason = "not_found"
	ReasonForbidden Reason = "forbidden"
)

// Decision is the outcome of an authorization check
type Decision struct {
	Allowed bool   `json:"allowed"`
	Reason  Reason `json:"reason"`
}

func allow() Decision { return Decision{Allowed: true, Reason: ReasonOK} }
func forbid() Decision { return Decision{Allowed: false, Reason: ReasonForbidden} }
func notFound() Decision { return Decision{Allowed: false, Reason: ReasonNotFound} }

// Err converts a denial into the matching typed error. It returns nil when the
// decision allows the action.
func (d Decision) Err(target Target) error {
	switch d.Reason {
	case ReasonOK:
		return nil
	case ReasonNotFound:
		return apperrors.NewNotFoundError(string(target.Kind), target.ID)
	default:
		return apperrors.NewForbiddenError("not allowed to manage %s %s", target.Kind, target.ID)
	}
}

// TargetKind names the entity an authorization check is about
type TargetKind string

const (
	KindSeason TargetKind = "season"
	KindLeague TargetKind = "league"
	KindRound  TargetKind = "round"
	KindMatch  TargetKind = "match"
)

// Target identifies the entity being managed
type Target struct {
	Kind TargetKind
	ID   uuid.UUID
}

func Season(id uuid.UUID) Target { return Target{Kind: KindSeason, ID: id} }
func League(id uuid.UUID) Target { return Target{Kind: KindLeague, ID: id} }
func Round(id uuid.UUID) Target { return Target{Kind: KindRound, ID: id} }
func Match(id uuid.UUID) Target { return Target{Kind: KindMatch, ID: id} }
