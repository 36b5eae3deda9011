package notification

import (
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
	minSnoozeHours   = 1
	maxSnoozeHours   = 24
)

// ListInput holds parameters for listing notifications.
type ListInput struct {
	UnreadOnly bool
	Limit      int
}

func (i *ListInput) normalize() {
	if i.Limit <= 0 {
		i.Limit = defaultListLimit
	}
	i.Limit = min(i.Limit, maxListLimit)
}

// DismissInput marks notifications read.
type DismissInput struct {
	IDs []uuid.UUID
}

func (i DismissInput) Validate() error {
	if len(i.IDs) == 0 {
		return domain.NewValidationError("notification_ids", "required")
	}
	if len(i.IDs) > maxListLimit {
		return domain.NewValidationError("notification_ids", "too many ids")
	}
	return nil
}

// SnoozeInput hides a notification for a number of hours.
type SnoozeInput struct {
	ID    uuid.UUID
	Hours int
}

func (i SnoozeInput) Validate() error {
	if i.Hours < minSnoozeHours || i.Hours > maxSnoozeHours {
		return domain.NewValidationError("hours", "must be between 1 and 24")
	}
	return nil
}

// SubscribeInput registers a browser push endpoint.
type SubscribeInput struct {
	Endpoint string
	P256dh   string
	Auth     string
}

func (i SubscribeInput) Validate() error {
	var errs []domain.FieldError

	u, err := url.Parse(strings.TrimSpace(i.Endpoint))
	if i.Endpoint == "" || err != nil || u.Scheme != "https" || u.Host == "" {
		errs = append(errs, domain.FieldError{Field: "endpoint", Message: "must be an https URL"})
	}
	if strings.TrimSpace(i.P256dh) == "" {
		errs = append(errs, domain.FieldError{Field: "keys.p256dh", Message: "required"})
	}
	if strings.TrimSpace(i.Auth) == "" {
		errs = append(errs, domain.FieldError{Field: "keys.auth", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
