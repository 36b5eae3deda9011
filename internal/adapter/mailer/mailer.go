// Package mailer delivers account emails. The default implementation only logs them.
package mailer

import (
	"context"
	"log/slog"
)

// Log writes reset links to the application log instead of sending email.
type Log struct {
	log     *slog.Logger
	baseURL string
}

// NewLog creates a logging mailer. baseURL is the client app URL reset links point to.
func NewLog(logger *slog.Logger, baseURL string) *Log {
	return &Log{log: logger.With("adapter", "mailer"), baseURL: baseURL}
}

// SendPasswordReset records the reset link for the user.
func (m *Log) SendPasswordReset(ctx context.Context, email, token string) error {
	m.log.InfoContext(ctx, "password reset requested",
		slog.String("email", email),
		slog.String("link", m.baseURL+"/reset-password?token="+token),
	)
	return nil
}
