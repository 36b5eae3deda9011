package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a per-user alert.
type Notification struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Type         NotificationType
	Title        string
	Body         string
	Data         map[string]any
	Read         bool
	VoiceURL     *string
	SnoozedUntil *time.Time
	CreatedAt    time.Time
}

// PushSubscription is a browser Web Push endpoint registered by a user.
type PushSubscription struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Endpoint  string
	P256dh    string
	Auth      string
	CreatedAt time.Time
}
