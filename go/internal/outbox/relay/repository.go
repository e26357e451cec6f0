package relay

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/apperrors"
	"github.com/mcdev12/tipster/go/internal/outbox/relay/relaydb"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	FetchOutboxByID(ctx context.Context, id uuid.UUID) (relaydb.OutboxEvent, error)
	FetchUnsentOutbox(ctx context.Context, limit int32) ([]relaydb.OutboxEvent, error)
	MarkOutboxSent(ctx context.Context, id uuid.UUID) error
	CountUnsentOutbox(ctx context.Context) (int64, error)
}

// Repository reads and acknowledges outbox rows
type Repository struct {
	queries Querier
}

func NewRepository(queries Querier) *Repository {
	return &Repository{
		queries: queries,
	}
}

// FetchUnsent returns up to limit unsent rows, oldest first
func (r *Repository) FetchUnsent(ctx context.Context, limit int32) ([]Event, error) {
	rows, err := r.queries.FetchUnsentOutbox(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unsent outbox events: %w", err)
	}

	events := make([]Event, 0, len(rows))
	for _, row := range rows {
		ev, err := toEvent(row)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

// FetchByID returns an unsent row. A row that is missing or already sent is
// reported as not found.
func (r *Repository) FetchByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	row, err := r.queries.FetchOutboxByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("outbox event", id)
		}
		return nil, fmt.Errorf("failed to fetch outbox event by ID: %w", err)
	}

	ev, err := toEvent(row)
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// MarkSent stamps sent_at on a row
func (r *Repository) MarkSent(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.MarkOutboxSent(ctx, id); err != nil {
		return fmt.Errorf("failed to mark outbox event as sent: %w", err)
	}
	return nil
}

// CountUnsent counts rows still waiting for the broker
func (r *Repository) CountUnsent(ctx context.Context) (int, error) {
	n, err := r.queries.CountUnsentOutbox(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count unsent outbox events: %w", err)
	}
	return int(n), nil
}

func toEvent(row relaydb.OutboxEvent) (Event, error) {
	ev := Event{
		ID:          row.ID,
		AggregateID: row.AggregateID,
		EventType:   row.EventType,
		Payload:     row.Payload,
		CreatedAt:   row.CreatedAt,
	}
	if row.Headers.Valid {
		if err := json.Unmarshal(row.Headers.RawMessage, &ev.Headers); err != nil {
			return Event{}, fmt.Errorf("failed to decode headers of outbox event %s: %w", row.ID, err)
		}
	}
	return ev, nil
}
