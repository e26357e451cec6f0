package apperrors

import (
	"errors"
	"fmt"
	"time"
)

// Sentinels matched by the typed errors below through errors.Is.
var (
	ErrValidation     = errors.New("validation failed")
	ErrNotFound       = errors.New("not found")
	ErrForbidden      = errors.New("forbidden")
	ErrDeadlinePassed = errors.New("deadline passed")
	ErrStateConflict  = errors.New("state conflict")
	ErrUnauthorized   = errors.New("unauthorized")
)

// ValidationError reports malformed or missing input
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NotFoundError reports a referenced entity that does not exist
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ForbiddenError reports an authorization denial on an existing entity
type ForbiddenError struct {
	Reason string
}

func (e *ForbiddenError) Error() string { return e.Reason }

func (e *ForbiddenError) Is(target error) bool { return target == ErrForbidden }

// DeadlinePassedError reports a tip write after the round deadline
type DeadlinePassedError struct {
	Deadline time.Time
}

func (e *DeadlinePassedError) Error() string {
	return fmt.Sprintf("tipping closed at %s", e.Deadline.UTC().Format(time.RFC3339))
}

func (e *DeadlinePassedError) Is(target error) bool { return target == ErrDeadlinePassed }

// StateConflictError reports an operation the current state does not allow
type StateConflictError struct {
	Reason string
}

func (e *StateConflictError) Error() string { return e.Reason }

func (e *StateConflictError) Is(target error) bool { return target == ErrStateConflict }

func NewValidationError(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func NewNotFoundError(resource string, id fmt.Stringer) error {
	e := &NotFoundError{Resource: resource}
	if id != nil {
		e.ID = id.String()
	}
	return e
}

func NewForbiddenError(format string, args ...any) error {
	return &ForbiddenError{Reason: fmt.Sprintf(format, args...)}
}

func NewDeadlinePassedError(deadline time.Time) error {
	return &DeadlinePassedError{Deadline: deadline}
}

func NewStateConflictError(format string, args ...any) error {
	return &StateConflictError{Reason: fmt.Sprintf(format, args...)}
}
