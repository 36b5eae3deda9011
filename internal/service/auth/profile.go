package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/freshkeep-backend/internal/domain"
	"github.com/heartmarshall/freshkeep-backend/pkg/ctxutil"
)

// Me returns the authenticated user.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("auth.Me: %w", err)
	}
	return user, nil
}

// UpdateMe changes the authenticated user's name or timezone.
func (s *Service) UpdateMe(ctx context.Context, input UpdateMeInput) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		input.Name = &name
	}

	user, err := s.users.UpdateProfile(ctx, userID, input.Name, input.Timezone)
	if err != nil {
		return nil, fmt.Errorf("auth.UpdateMe: %w", err)
	}
	return user, nil
}
