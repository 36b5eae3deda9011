// Package notification stores per-user alerts and fans them out to live
// connections and Web Push subscriptions.
package notification

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	notificationrepo "github.com/heartmarshall/freshkeep-backend/internal/adapter/postgres/notification"
	"github.com/heartmarshall/freshkeep-backend/internal/adapter/push"
	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

// notificationRepo defines the persistence needed by notification service.
type notificationRepo interface {
	Create(ctx context.Context, n domain.Notification) (*domain.Notification, error)
	List(ctx context.Context, f notificationrepo.ListFilter) ([]domain.Notification, error)
	UnreadCount(ctx context.Context, userID uuid.UUID, now time.Time) (int, error)
	MarkRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	Snooze(ctx context.Context, userID uuid.UUID, id uuid.UUID, until time.Time) error
	Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
	UpsertSubscription(ctx context.Context, s domain.PushSubscription) (*domain.PushSubscription, error)
	DeleteSubscription(ctx context.Context, userID uuid.UUID, endpoint string) error
	DeleteSubscriptionByID(ctx context.Context, id uuid.UUID) error
	ListSubscriptions(ctx context.Context, userID uuid.UUID) ([]domain.PushSubscription, error)
}

// publisher streams notifications to a user's open websocket connections.
type publisher interface {
	Publish(userID uuid.UUID, n domain.Notification)
}

// pushSender delivers Web Push messages.
type pushSender interface {
	Enabled() bool
	VAPIDPublicKey() string
	Send(ctx context.Context, sub domain.PushSubscription, payload push.Payload) error
}

// voiceMaker renders alert text to a hosted audio file.
type voiceMaker interface {
	Voice(ctx context.Context, text string) (*string, error)
}

// Service manages notifications.
type Service struct {
	log   *slog.Logger
	repo  notificationRepo
	hub   publisher
	push  pushSender
	voice voiceMaker
	now   func() time.Time
}

// NewService creates a new notification service instance.
func NewService(
	logger *slog.Logger,
	repo notificationRepo,
	hub publisher,
	push pushSender,
	voice voiceMaker,
) *Service {
	return &Service{
		log:   logger.With("service", "notification"),
		repo:  repo,
		hub:   hub,
		push:  push,
		voice: voice,
		now:   time.Now,
	}
}
