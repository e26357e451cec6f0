package sqlutil

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Helper functions for converting between Go types and pgtype values

// ToText converts a Go string pointer to pgtype.Text
func ToText(val *string) pgtype.Text {
	if val == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *val, Valid: true}
}

// FromText converts pgtype.Text to Go string pointer
func FromText(val pgtype.Text) *string {
	if !val.Valid {
		return nil
	}
	s := val.String
	return &s
}

// FromTextDefault converts pgtype.Text to Go string with default
func FromTextDefault(val pgtype.Text, defaultVal string) string {
	if !val.Valid {
		return defaultVal
	}
	return val.String
}

// ToInt4 converts a Go int pointer to pgtype.Int4
func ToInt4(val *int) pgtype.Int4 {
	if val == nil {
		return pgtype.Int4{Valid: false}
	}
	return pgtype.Int4{Int32: int32(*val), Valid: true}
}

// FromInt4 converts pgtype.Int4 to Go int pointer
func FromInt4(val pgtype.Int4) *int {
	if !val.Valid {
		return nil
	}
	i := int(val.Int32)
	return &i
}

// ToNullUUID converts a Go UUID pointer to uuid.NullUUID
func ToNullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{Valid: false}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

// FromNullUUID converts uuid.NullUUID to Go UUID pointer
func FromNullUUID(val uuid.NullUUID) *uuid.UUID {
	if !val.Valid {
		return nil
	}
	id := val.UUID
	return &id
}
