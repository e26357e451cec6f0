package sqlutil

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Beginner opens a transaction. *pgxpool.Pool and pgx.Tx both satisfy it.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Run executes fn inside a pgx.Tx.
// If fn returns an error the tx rolls back, else it commits.
func Run[T any](
	ctx context.Context,
	db Beginner,
	newQueries func(pgx.Tx) *T,
	fn func(q *T) error,
) error {
	tx, err := db.Begin(ctx) // BEGIN
	if err != nil {
		return err
	}
	q := newQueries(tx) // bind sqlc Queries to this tx
	if err := fn(q); err != nil {
		_ = tx.Rollback(ctx) // ROLLBACK
		return err
	}
	return tx.Commit(ctx) // COMMIT
}
