package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

// Signup creates a new user with email + password authentication.
// Returns ErrAlreadyExists if the email is already taken.
func (s *Service) Signup(ctx context.Context, input SignupInput) (*AuthResult, error) {
	input.Email = normalizeEmail(input.Email)
	input.Name = strings.TrimSpace(input.Name)
	if input.Timezone == "" {
		input.Timezone = "UTC"
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Signup hash password: %w", err)
	}

	// Email uniqueness is enforced by the users_email_key constraint.
	var created *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := time.Now()
		user, err := s.users.Create(txCtx, domain.User{
			ID:           uuid.New(),
			Email:        input.Email,
			PasswordHash: string(hash),
			Name:         input.Name,
			Timezone:     input.Timezone,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		if _, err := s.users.UpsertSettings(txCtx, domain.DefaultUserSettings(user.ID)); err != nil {
			return fmt.Errorf("create settings: %w", err)
		}

		created = user
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Signup: email already registered: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Signup: %w", err)
	}

	result, err := s.issueTokens(ctx, created)
	if err != nil {
		return nil, fmt.Errorf("auth.Signup issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user signed up", slog.String("user_id", created.ID.String()))
	return result, nil
}
