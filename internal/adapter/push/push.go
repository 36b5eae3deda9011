// Package push delivers Web Push notifications signed with VAPID keys.
package push

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	webpush "github.com/SherClockHolmes/webpush-go"

	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

// ErrExpired is returned when a push subscription is no longer valid (404 or 410).
var ErrExpired = errors.New("push subscription expired")

// ttlSeconds is how long the push service keeps an undelivered message.
const ttlSeconds = 86400

// Payload is the JSON sent to the service worker.
type Payload struct {
	Title string         `json:"title"`
	Body  string         `json:"body"`
	Type  string         `json:"type"`
	Data  map[string]any `json:"data,omitempty"`
}

// Sender sends push messages.
type Sender struct {
	publicKey  string
	privateKey string
	subscriber string
	httpClient *http.Client
}

// NewSender creates a Sender with VAPID keys.
func NewSender(publicKey, privateKey, subscriber string) *Sender {
	return &Sender{
		publicKey:  publicKey,
		privateKey: privateKey,
		subscriber: subscriber,
		httpClient: http.DefaultClient,
	}
}

// Enabled reports whether VAPID keys are configured.
func (s *Sender) Enabled() bool {
	return s.publicKey != "" && s.privateKey != ""
}

// VAPIDPublicKey returns the key browsers need to subscribe.
func (s *Sender) VAPIDPublicKey() string {
	return s.publicKey
}

// Send pushes payload to one subscription.
func (s *Sender) Send(ctx context.Context, sub domain.PushSubscription, payload Payload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	resp, err := webpush.SendNotificationWithContext(ctx, data, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}, &webpush.Options{
		HTTPClient:      s.httpClient,
		VAPIDPublicKey:  s.publicKey,
		VAPIDPrivateKey: s.privateKey,
		Subscriber:      s.subscriber,
		TTL:             ttlSeconds,
	})
	if err != nil {
		return fmt.Errorf("send push: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusGone || resp.StatusCode == http.StatusNotFound {
		return ErrExpired
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("push service returned %d", resp.StatusCode)
	}
	return nil
}
