package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	notificationrepo "github.com/heartmarshall/freshkeep-backend/internal/adapter/postgres/notification"
	"github.com/heartmarshall/freshkeep-backend/internal/domain"
	"github.com/heartmarshall/freshkeep-backend/pkg/ctxutil"
)

// ListResult is a page of notifications plus the unread badge count.
type ListResult struct {
	Notifications []domain.Notification
	UnreadCount   int
}

// List returns the newest visible notifications of the authenticated user.
func (s *Service) List(ctx context.Context, in ListInput) (*ListResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	in.normalize()

	now := s.now().UTC()
	items, err := s.repo.List(ctx, notificationrepo.ListFilter{
		UserID:     userID,
		UnreadOnly: in.UnreadOnly,
		Now:        now,
		Limit:      in.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("notification.List: %w", err)
	}

	unread, err := s.repo.UnreadCount(ctx, userID, now)
	if err != nil {
		return nil, fmt.Errorf("notification.List: %w", err)
	}

	return &ListResult{Notifications: items, UnreadCount: unread}, nil
}

// Dismiss marks the given notifications read and returns how many changed.
func (s *Service) Dismiss(ctx context.Context, in DismissInput) (int64, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return 0, err
	}

	n, err := s.repo.MarkRead(ctx, userID, in.IDs)
	if err != nil {
		return 0, fmt.Errorf("notification.Dismiss: %w", err)
	}
	return n, nil
}

// DismissAll marks every notification of the user read.
func (s *Service) DismissAll(ctx context.Context) (int64, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	n, err := s.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("notification.DismissAll: %w", err)
	}
	return n, nil
}

// Snooze hides a notification for 1 to 24 hours and returns when it reappears.
func (s *Service) Snooze(ctx context.Context, in SnoozeInput) (*time.Time, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	until := s.now().UTC().Add(time.Duration(in.Hours) * time.Hour)
	if err := s.repo.Snooze(ctx, userID, in.ID, until); err != nil {
		return nil, fmt.Errorf("notification.Snooze: %w", err)
	}
	return &until, nil
}

// Delete removes one of the user's notifications.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("notification.Delete: %w", err)
	}
	return nil
}
