package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/freshkeep-backend/internal/adapter/push"
	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

// Deliver persists n and fans it out. When voiceText is set and voice is available,
// the stored notification carries a voice_url. Live and push delivery are best-effort.
func (s *Service) Deliver(ctx context.Context, n domain.Notification, voiceText string) (*domain.Notification, error) {
	if !n.Type.IsValid() {
		return nil, domain.NewValidationError("type", "unknown notification type")
	}

	if voiceText != "" && s.voice != nil {
		url, err := s.voice.Voice(ctx, voiceText)
		if err != nil {
			s.log.WarnContext(ctx, "voice generation failed",
				slog.String("user_id", n.UserID.String()),
				slog.String("error", err.Error()))
		} else {
			n.VoiceURL = url
		}
	}

	created, err := s.repo.Create(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("notification.Deliver: %w", err)
	}

	if s.hub != nil {
		s.hub.Publish(created.UserID, *created)
	}
	s.sendPush(ctx, created)

	return created, nil
}

// sendPush sends n to every subscription of its user. Subscriptions the push
// service reports as gone are deleted.
func (s *Service) sendPush(ctx context.Context, n *domain.Notification) {
	if s.push == nil || !s.push.Enabled() {
		return
	}

	subs, err := s.repo.ListSubscriptions(ctx, n.UserID)
	if err != nil {
		s.log.WarnContext(ctx, "list push subscriptions failed",
			slog.String("user_id", n.UserID.String()),
			slog.String("error", err.Error()))
		return
	}

	payload := push.Payload{
		Title: n.Title,
		Body:  n.Body,
		Type:  n.Type.String(),
		Data:  pushData(n),
	}

	for _, sub := range subs {
		err := s.push.Send(ctx, sub, payload)
		switch {
		case err == nil:
		case errors.Is(err, push.ErrExpired):
			if err := s.repo.DeleteSubscriptionByID(ctx, sub.ID); err != nil {
				s.log.WarnContext(ctx, "delete expired subscription failed",
					slog.String("subscription_id", sub.ID.String()),
					slog.String("error", err.Error()))
			}
		default:
			s.log.WarnContext(ctx, "push delivery failed",
				slog.String("subscription_id", sub.ID.String()),
				slog.String("error", err.Error()))
		}
	}
}

func pushData(n *domain.Notification) map[string]any {
	data := make(map[string]any, len(n.Data)+2)
	for k, v := range n.Data {
		data[k] = v
	}
	data["notification_id"] = n.ID.String()
	if n.VoiceURL != nil {
		data["voice_url"] = *n.VoiceURL
	}
	return data
}

// SendExpiryAlert sends the morning summary of items expiring soon. today is the
// user's local date and only shapes the spoken text.
// Returns nil without sending when items is empty.
func (s *Service) SendExpiryAlert(ctx context.Context, userID uuid.UUID, items []domain.Item, today time.Time, withVoice bool) (*domain.Notification, error) {
	n, ok := domain.NewExpiryAlert(userID, items)
	if !ok {
		return nil, nil
	}

	voiceText := ""
	if withVoice {
		voiceText = domain.ExpiryVoiceText(items, today)
	}

	out, err := s.Deliver(ctx, n, voiceText)
	if err != nil {
		return nil, fmt.Errorf("notification.SendExpiryAlert: %w", err)
	}
	return out, nil
}

// SendEveningReminder sends the "Last chance!" reminder for items expiring today.
func (s *Service) SendEveningReminder(ctx context.Context, userID uuid.UUID, items []domain.Item) (*domain.Notification, error) {
	n, ok := domain.NewEveningReminder(userID, items)
	if !ok {
		return nil, nil
	}

	out, err := s.Deliver(ctx, n, "")
	if err != nil {
		return nil, fmt.Errorf("notification.SendEveningReminder: %w", err)
	}
	return out, nil
}
