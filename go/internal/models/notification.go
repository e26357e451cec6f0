package models

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationTypeNewRound    NotificationType = "new_round"
	NotificationTypeDeadline    NotificationType = "deadline"
	NotificationTypeResult      NotificationType = "result"
	NotificationTypeAchievement NotificationType = "achievement"
	NotificationTypeAdmin       NotificationType = "admin"
)

// Notification is an in-app message addressed to one user
type Notification struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"user_id"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	Link      *string          `json:"link,omitempty"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}
