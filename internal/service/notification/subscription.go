package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/freshkeep-backend/internal/domain"
	"github.com/heartmarshall/freshkeep-backend/pkg/ctxutil"
)

// Subscribe registers a push endpoint for the authenticated user.
// Re-subscribing the same endpoint refreshes its keys.
func (s *Service) Subscribe(ctx context.Context, in SubscribeInput) (*domain.PushSubscription, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	sub, err := s.repo.UpsertSubscription(ctx, domain.PushSubscription{
		UserID:   userID,
		Endpoint: strings.TrimSpace(in.Endpoint),
		P256dh:   strings.TrimSpace(in.P256dh),
		Auth:     strings.TrimSpace(in.Auth),
	})
	if err != nil {
		return nil, fmt.Errorf("notification.Subscribe: %w", err)
	}

	s.log.InfoContext(ctx, "push subscription registered",
		slog.String("user_id", userID.String()),
		slog.String("subscription_id", sub.ID.String()))
	return sub, nil
}

// Unsubscribe removes a push endpoint of the authenticated user.
func (s *Service) Unsubscribe(ctx context.Context, endpoint string) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if strings.TrimSpace(endpoint) == "" {
		return domain.NewValidationError("endpoint", "required")
	}

	if err := s.repo.DeleteSubscription(ctx, userID, strings.TrimSpace(endpoint)); err != nil {
		return fmt.Errorf("notification.Unsubscribe: %w", err)
	}
	return nil
}

// VAPIDPublicKey returns the key browsers subscribe with.
// Returns domain.ErrUnavailable when push is not configured.
func (s *Service) VAPIDPublicKey() (string, error) {
	if s.push == nil || !s.push.Enabled() {
		return "", domain.ErrUnavailable
	}
	return s.push.VAPIDPublicKey(), nil
}
