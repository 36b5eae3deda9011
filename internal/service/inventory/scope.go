package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/freshkeep-backend/internal/domain"
	"github.com/heartmarshall/freshkeep-backend/pkg/ctxutil"
)

// actor is the authenticated user resolved for one request.
type actor struct {
	user  *domain.User
	scope domain.Scope
	today time.Time
}

// resolve loads the authenticated user and the inventory scope they see:
// their family's when they belong to one, otherwise their own.
func (s *Service) resolve(ctx context.Context) (*actor, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &actor{
		user:  user,
		scope: domain.Scope{UserID: user.ID, FamilyID: user.FamilyID},
		today: domain.LocalDate(s.now(), user.Location()),
	}, nil
}

// resolveEditor is resolve plus a check that family viewers cannot change shared items.
func (s *Service) resolveEditor(ctx context.Context) (*actor, error) {
	a, err := s.resolve(ctx)
	if err != nil {
		return nil, err
	}
	if a.scope.FamilyID == nil {
		return a, nil
	}

	m, err := s.members.GetMember(ctx, *a.scope.FamilyID, a.user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrForbidden
		}
		return nil, fmt.Errorf("get membership: %w", err)
	}
	if !m.CanEdit() {
		return nil, fmt.Errorf("viewers cannot change the family inventory: %w", domain.ErrForbidden)
	}
	return a, nil
}

// load returns an item visible in the actor's scope. Deleted items and items of
// other scopes are reported as not found.
func (s *Service) load(ctx context.Context, a *actor, id uuid.UUID) (*domain.Item, error) {
	it, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if it.Status == domain.ItemStatusDeleted || !a.scope.Contains(it) {
		return nil, fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}
	return it, nil
}

// settings returns the user's settings, defaults when none are stored.
func (s *Service) settings(ctx context.Context, userID uuid.UUID) (domain.UserSettings, error) {
	st, err := s.users.GetSettings(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.DefaultUserSettings(userID), nil
	}
	if err != nil {
		return domain.UserSettings{}, fmt.Errorf("get settings: %w", err)
	}
	return *st, nil
}
