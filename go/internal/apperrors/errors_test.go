package apperrors

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTypedErrorsMatchSentinels(t *testing.T) {
	id := uuid.New()
	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "validation",
			err:      NewValidationError("home_score", "is required for %s tips", "exact_score"),
			sentinel: ErrValidation,
			message:  "home_score: is required for exact_score tips",
		},
		{
			name:     "not found",
			err:      NewNotFoundError("round", id),
			sentinel: ErrNotFound,
			message:  "round " + id.String() + " not found",
		},
		{
			name:     "forbidden",
			err:      NewForbiddenError("cannot manage league"),
			sentinel: ErrForbidden,
			message:  "cannot manage league",
		},
		{
			name:     "deadline",
			err:      NewDeadlinePassedError(time.Date(2026, 1, 2, 15, 0, 0, 0, time.UTC)),
			sentinel: ErrDeadlinePassed,
			message:  "tipping closed at 2026-01-02T15:00:00Z",
		},
		{
			name:     "state conflict",
			err:      NewStateConflictError("scoring system is locked"),
			sentinel: ErrStateConflict,
			message:  "scoring system is locked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("failed to do thing: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.sentinel)
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	err := NewNotFoundError("season", nil)
	assert.False(t, errors.Is(err, ErrForbidden))
	assert.False(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "season not found", err.Error())

	var nf *NotFoundError
	assert.True(t, errors.As(err, &nf))
	assert.Equal(t, "season", nf.Resource)
}
