package notifications

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/tipster/go/internal/db"
	"github.com/mcdev12/tipster/go/internal/models"
	"github.com/mcdev12/tipster/go/internal/outbox"
	"github.com/mcdev12/tipster/go/internal/sqlutil"
)

// TxQueries is what Enqueue needs from a transaction-bound db.Queries
type TxQueries interface {
	CreateNotification(ctx context.Context, arg db.CreateNotificationParams) (db.Notification, error)
	outbox.Inserter
}

// Batch is one message fanned out to many users
type Batch struct {
	Type     models.NotificationType
	UserIDs  []uuid.UUID
	Message  string
	Link     *string
	LeagueID uuid.UUID
}

// Enqueue stores one notification per recipient and a single
// notifications.created outbox event, all on q. Callers run it inside the
// transaction of the change being announced. It returns the number of rows written.
func Enqueue(ctx context.Context, q TxQueries, b Batch) (int, error) {
	if len(b.UserIDs) == 0 {
		return 0, nil
	}

	for _, userID := range b.UserIDs {
		if _, err := q.CreateNotification(ctx, db.CreateNotificationParams{
			UserID:  userID,
			Type:    db.NotificationType(b.Type),
			Message: b.Message,
			Link:    sqlutil.ToText(b.Link),
		}); err != nil {
			return 0, fmt.Errorf("failed to create %s notification: %w", b.Type, err)
		}
	}

	var headers map[string]string
	if b.LeagueID != uuid.Nil {
		headers = outbox.LeagueHeaders(b.LeagueID)
	}
	if _, err := outbox.Write(ctx, q, outbox.Event{
		AggregateID: b.LeagueID,
		Type:        outbox.EventNotificationsCreated,
		Payload: outbox.NotificationsCreatedPayload{
			Type:    string(b.Type),
			UserIDs: b.UserIDs,
			Link:    b.Link,
		},
		Headers: headers,
	}); err != nil {
		return 0, err
	}

	return len(b.UserIDs), nil
}
