package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/freshkeep-backend/internal/auth"
	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

// ForgotPassword issues a reset token and hands it to the mailer.
// Unknown emails succeed silently so the endpoint does not reveal which accounts exist.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if errs := validateEmail(nil, email); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("auth.ForgotPassword get user: %w", err)
	}

	raw, hash, err := auth.GenerateOpaqueToken()
	if err != nil {
		return fmt.Errorf("auth.ForgotPassword: %w", err)
	}

	if err := s.tokens.CreateReset(ctx, user.ID, hash, time.Now().Add(s.cfg.ResetTokenTTL)); err != nil {
		return fmt.Errorf("auth.ForgotPassword store token: %w", err)
	}

	if err := s.mailer.SendPasswordReset(ctx, user.Email, raw); err != nil {
		s.log.ErrorContext(ctx, "send password reset failed",
			slog.String("user_id", user.ID.String()),
			slog.String("error", err.Error()))
	}
	return nil
}

// ResetPassword sets a new password using a reset token and signs the user out everywhere.
// Unknown, used or expired tokens return a validation error on "token".
func (s *Service) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	reset, err := s.tokens.GetResetByHash(ctx, auth.HashToken(input.Token))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("token", "invalid or expired")
		}
		return fmt.Errorf("auth.ResetPassword get token: %w", err)
	}
	if !reset.IsUsable(time.Now()) {
		return domain.NewValidationError("token", "invalid or expired")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), s.cfg.PasswordHashCost)
	if err != nil {
		return fmt.Errorf("auth.ResetPassword hash password: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.tokens.MarkResetUsed(txCtx, reset.ID); err != nil {
			return fmt.Errorf("mark reset used: %w", err)
		}
		if err := s.users.UpdatePassword(txCtx, reset.UserID, string(hash)); err != nil {
			return fmt.Errorf("update password: %w", err)
		}
		if err := s.tokens.RevokeAllByUser(txCtx, reset.UserID); err != nil {
			return fmt.Errorf("revoke sessions: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("token", "invalid or expired")
		}
		return fmt.Errorf("auth.ResetPassword: %w", err)
	}

	s.log.InfoContext(ctx, "password reset", slog.String("user_id", reset.UserID.String()))
	return nil
}
