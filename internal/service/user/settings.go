package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/freshkeep-backend/internal/domain"
	"github.com/heartmarshall/freshkeep-backend/pkg/ctxutil"
)

// Settings is a user's preferences together with the profile timezone they are edited alongside.
type Settings struct {
	domain.UserSettings
	Timezone string
}

// GetSettings returns the authenticated user's settings.
// Users without a stored row get the defaults.
func (s *Service) GetSettings(ctx context.Context) (*Settings, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetSettings: %w", err)
	}

	settings, err := s.settings(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("user.GetSettings: %w", err)
	}

	return &Settings{UserSettings: *settings, Timezone: user.Timezone}, nil
}

// UpdateSettings applies a partial update to the authenticated user's settings.
func (s *Service) UpdateSettings(ctx context.Context, input UpdateSettingsInput) (*Settings, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var out Settings
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		user, err := s.users.GetByID(txCtx, userID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		current, err := s.settings(txCtx, user)
		if err != nil {
			return fmt.Errorf("get current settings: %w", err)
		}

		updated, err := s.users.UpsertSettings(txCtx, applySettingsChanges(*current, input))
		if err != nil {
			return fmt.Errorf("update settings: %w", err)
		}

		if input.Timezone != nil && *input.Timezone != user.Timezone {
			user, err = s.users.UpdateProfile(txCtx, userID, nil, input.Timezone)
			if err != nil {
				return fmt.Errorf("update timezone: %w", err)
			}
		}

		out = Settings{UserSettings: *updated, Timezone: user.Timezone}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("user.UpdateSettings: %w", err)
	}

	s.log.InfoContext(ctx, "settings updated", slog.String("user_id", userID.String()))
	return &out, nil
}

func (s *Service) settings(ctx context.Context, user *domain.User) (*domain.UserSettings, error) {
	settings, err := s.users.GetSettings(ctx, user.ID)
	if errors.Is(err, domain.ErrNotFound) {
		def := domain.DefaultUserSettings(user.ID)
		return &def, nil
	}
	return settings, err
}

// applySettingsChanges merges the input changes into current settings.
func applySettingsChanges(current domain.UserSettings, input UpdateSettingsInput) domain.UserSettings {
	result := current

	if input.Notifications != nil {
		result.Notifications = *input.Notifications
	}
	if input.Food != nil {
		result.Food = *input.Food
	}
	if input.Expiration != nil {
		result.Expiration = *input.Expiration
		if result.Expiration.CustomShelfLife == nil {
			result.Expiration.CustomShelfLife = map[domain.Category]int{}
		}
	}
	if input.Language != nil {
		result.Language = *input.Language
	}

	return result
}
