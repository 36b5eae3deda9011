package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/freshkeep-backend/internal/auth"
	"github.com/heartmarshall/freshkeep-backend/internal/domain"
	"github.com/heartmarshall/freshkeep-backend/pkg/ctxutil"
)

// Logout revokes the given refresh token. Without a token every session of the
// authenticated user is revoked. Returns ErrUnauthorized if no userID is found in context.
func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if refreshToken == "" {
		if err := s.tokens.RevokeAllByUser(ctx, userID); err != nil {
			return fmt.Errorf("auth.Logout: %w", err)
		}
		s.log.InfoContext(ctx, "user logged out everywhere", slog.String("user_id", userID.String()))
		return nil
	}

	token, err := s.tokens.GetByHash(ctx, auth.HashToken(refreshToken))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Already revoked or expired: nothing left to do.
			return nil
		}
		return fmt.Errorf("auth.Logout get token: %w", err)
	}
	if token.UserID != userID {
		return domain.ErrForbidden
	}

	if err := s.tokens.RevokeByID(ctx, token.ID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out", slog.String("user_id", userID.String()))
	return nil
}

// ValidateToken validates an access token and returns the user ID.
// Returns ErrUnauthorized if the token is invalid or expired.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	userID, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}

// CleanupExpiredTokens removes expired and revoked refresh tokens.
// Returns the number of tokens deleted. This is a maintenance operation.
func (s *Service) CleanupExpiredTokens(ctx context.Context) (int, error) {
	count, err := s.tokens.DeleteExpired(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "token cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("auth.CleanupExpiredTokens: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up expired tokens", slog.Int("count", count))
	}

	return count, nil
}
