package rounds

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/apperrors"
	"github.com/mcdev12/tipster/go/internal/db"
	"github.com/mcdev12/tipster/go/internal/models"
	"github.com/mcdev12/tipster/go/internal/notifications"
	"github.com/mcdev12/tipster/go/internal/outbox"
	"github.com/mcdev12/tipster/go/internal/sqlutil"
	"github.com/rs/zerolog/log"
)

// Repository implements round data access operations
type Repository struct {
	pool    sqlutil.Beginner
	queries *db.Queries
}

// NewRepository creates a new rounds repository
func NewRepository(pool sqlutil.Beginner, queries *db.Queries) *Repository {
	return &Repository{
		pool:    pool,
		queries: queries,
	}
}

// CreateRound inserts a round and, in the same transaction, latches the
// league's scoring lock when the round already started at now, notifies every
// participant of the owning season and records a round.created event.
func (r *Repository) CreateRound(ctx context.Context, req NewRound, now time.Time) (*models.Round, error) {
	var created db.Round
	err := sqlutil.Run(ctx, r.pool, r.queries.WithTx, func(q *db.Queries) error {
		round, err := q.CreateRound(ctx, db.CreateRoundParams{
			Name:        req.Name,
			Description: sqlutil.ToText(req.Description),
			LeagueID:    req.LeagueID,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
		})
		if err != nil {
			return err
		}

		if round.StartDate.Before(now) {
			if err := q.LockLeagueScoring(ctx, round.LeagueID); err != nil {
				return fmt.Errorf("failed to lock league scoring: %w", err)
			}
		}

		seasonID, err := q.GetLeagueSeasonID(ctx, round.LeagueID)
		if err != nil {
			return fmt.Errorf("failed to get league season: %w", err)
		}
		participants, err := q.ListSeasonParticipantIDs(ctx, seasonID)
		if err != nil {
			return fmt.Errorf("failed to list season participants: %w", err)
		}

		link := "/rounds/" + round.ID.String()
		sent, err := notifications.Enqueue(ctx, q, notifications.Batch{
			Type:     models.NotificationTypeNewRound,
			UserIDs:  participants,
			Message:  fmt.Sprintf("Round %s is open for tips until %s", round.Name, round.EndDate.UTC().Format(time.RFC1123)),
			Link:     &link,
			LeagueID: round.LeagueID,
		})
		if err != nil {
			return err
		}

		if _, err := outbox.Write(ctx, q, outbox.Event{
			AggregateID: round.ID,
			Type:        outbox.EventRoundCreated,
			Payload: outbox.RoundCreatedPayload{
				RoundID:   round.ID,
				LeagueID:  round.LeagueID,
				Name:      round.Name,
				StartDate: round.StartDate,
				EndDate:   round.EndDate,
			},
			Headers: outbox.LeagueHeaders(round.LeagueID),
		}); err != nil {
			return err
		}

		log.Debug().Str("round_id", round.ID.String()).Int("notified", sent).Msg("enqueued new round notifications")
		created = round
		return nil
	})
	if err != nil {
		if sqlutil.IsForeignKeyViolation(err) {
			return nil, apperrors.NewNotFoundError("league", req.LeagueID)
		}
		return nil, fmt.Errorf("failed to create round: %w", err)
	}

	m := created.ToModel()
	return &m, nil
}

// GetRound retrieves a round by ID
func (r *Repository) GetRound(ctx context.Context, id uuid.UUID) (*models.Round, error) {
	round, err := r.queries.GetRound(ctx, id)
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperrors.NewNotFoundError("round", id)
		}
		return nil, fmt.Errorf("failed to get round: %w", err)
	}

	m := round.ToModel()
	return &m, nil
}

// ListRoundsByLeague lists the rounds of a league by start date
func (r *Repository) ListRoundsByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Round, error) {
	rows, err := r.queries.ListRoundsByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rounds: %w", err)
	}

	rounds := make([]models.Round, len(rows))
	for i, row := range rows {
		rounds[i] = row.ToModel()
	}
	return rounds, nil
}

// ListMatches lists the matches of a round
func (r *Repository) ListMatches(ctx context.Context, roundID uuid.UUID) ([]models.Match, error) {
	rows, err := r.queries.ListMatchesByRound(ctx, roundID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches of round: %w", err)
	}

	matches := make([]models.Match, len(rows))
	for i, row := range rows {
		matches[i] = row.ToModel()
	}
	return matches, nil
}

// UpdateRound overwrites the editable columns of a round
func (r *Repository) UpdateRound(ctx context.Context, round models.Round) (*models.Round, error) {
	updated, err := r.queries.UpdateRound(ctx, db.UpdateRoundParams{
		ID:          round.ID,
		Name:        round.Name,
		Description: sqlutil.ToText(round.Description),
		StartDate:   round.StartDate,
		EndDate:     round.EndDate,
		IsActive:    round.IsActive,
	})
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperrors.NewNotFoundError("round", round.ID)
		}
		return nil, fmt.Errorf("failed to update round: %w", err)
	}

	m := updated.ToModel()
	return &m, nil
}

// DeleteRound deletes a round that has no tips under any of its matches. The
// count and the delete share a transaction.
func (r *Repository) DeleteRound(ctx context.Context, id uuid.UUID) error {
	err := sqlutil.Run(ctx, r.pool, r.queries.WithTx, func(q *db.Queries) error {
		tips, err := q.CountTipsInRound(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to count tips in round: %w", err)
		}
		if tips > 0 {
			return apperrors.NewStateConflictError("round has %d tips and cannot be deleted", tips)
		}
		return q.DeleteRound(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("failed to delete round: %w", err)
	}
	return nil
}
