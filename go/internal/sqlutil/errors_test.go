package sqlutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPgErrorClassification(t *testing.T) {
	unique := fmt.Errorf("failed to create team: %w", &pgconn.PgError{Code: "23505", ConstraintName: "teams_name_key"})
	fk := &pgconn.PgError{Code: "23503"}

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsForeignKeyViolation(unique))
	assert.Equal(t, "teams_name_key", ConstraintName(unique))

	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
	assert.Equal(t, "", ConstraintName(errors.New("boom")))

	assert.True(t, IsNoRows(fmt.Errorf("failed to get round: %w", pgx.ErrNoRows)))
	assert.False(t, IsNoRows(unique))
}
