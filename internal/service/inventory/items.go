package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

// ItemView is an item with freshness computed for the owner's local today.
type ItemView struct {
	domain.Item
	Freshness       domain.Freshness
	DaysUntilExpiry *int
}

func view(it domain.Item, today time.Time) ItemView {
	return ItemView{
		Item:            it,
		Freshness:       it.Freshness(today),
		DaysUntilExpiry: it.DaysUntilExpiry(today),
	}
}

func views(items []domain.Item, today time.Time) []ItemView {
	out := make([]ItemView, len(items))
	for i := range items {
		out[i] = view(items[i], today)
	}
	return out
}

// ListResult is a page of items plus scope-wide freshness counts.
type ListResult struct {
	Items         []ItemView
	Total         int
	ExpiringCount int
	ExpiredCount  int
}

// List returns a filtered page of the scope's items.
func (s *Service) List(ctx context.Context, in ListInput) (*ListResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	a, err := s.resolve(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory.List: %w", err)
	}

	items, total, err := s.items.List(ctx, domain.ItemFilter{
		Scope:    a.scope,
		Status:   in.Status,
		Category: in.Category,
		Storage:  in.Storage,
		Search:   in.Search,
		Limit:    in.Limit,
		Offset:   in.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("inventory.List: %w", err)
	}

	st, err := s.settings(ctx, a.user.ID)
	if err != nil {
		return nil, fmt.Errorf("inventory.List: %w", err)
	}
	counts, err := s.items.Counts(ctx, a.scope, a.today, st.Notifications.ExpiryThresholdDays)
	if err != nil {
		return nil, fmt.Errorf("inventory.List: %w", err)
	}

	return &ListResult{
		Items:         views(items, a.today),
		Total:         total,
		ExpiringCount: counts.Expiring,
		ExpiredCount:  counts.Expired,
	}, nil
}

// Get returns one item from the scope.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*ItemView, error) {
	a, err := s.resolve(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory.Get: %w", err)
	}

	it, err := s.load(ctx, a, id)
	if err != nil {
		return nil, fmt.Errorf("inventory.Get: %w", err)
	}

	v := view(*it, a.today)
	return &v, nil
}

// Create adds an item. Without an explicit expiration date one is derived from
// the category, storage and the user's expiration settings.
func (s *Service) Create(ctx context.Context, in CreateInput) (*ItemView, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	a, err := s.resolveEditor(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory.Create: %w", err)
	}

	st, err := s.settings(ctx, a.user.ID)
	if err != nil {
		return nil, fmt.Errorf("inventory.Create: %w", err)
	}

	created, err := s.items.Create(ctx, s.newItem(a, st, in))
	if err != nil {
		return nil, fmt.Errorf("inventory.Create: %w", err)
	}

	s.log.InfoContext(ctx, "item created",
		slog.String("user_id", a.user.ID.String()),
		slog.String("item_id", created.ID.String()),
		slog.String("category", created.Category.String()))

	v := view(*created, a.today)
	return &v, nil
}

// newItem builds an active item for the actor's scope from validated input.
func (s *Service) newItem(a *actor, st domain.UserSettings, in CreateInput) domain.Item {
	purchase := a.today
	if in.PurchaseDate != nil {
		purchase = domain.DateOf(*in.PurchaseDate)
	}

	var exp time.Time
	if in.ExpirationDate != nil {
		exp = domain.DateOf(*in.ExpirationDate)
	} else {
		exp = domain.CalculateExpiration(in.Category, purchase, in.Storage, st.Expiration.Rule())
	}

	return domain.Item{
		UserID:         a.user.ID,
		FamilyID:       a.scope.FamilyID,
		Name:           in.Name,
		Quantity:       in.Quantity,
		Unit:           in.Unit,
		Category:       in.Category,
		Storage:        in.Storage,
		PurchaseDate:   purchase,
		ExpirationDate: &exp,
		Status:         domain.ItemStatusActive,
		Notes:          in.Notes,
		PhotoURL:       in.PhotoURL,
		Barcode:        in.Barcode,
	}
}

// Update changes an active item. Moving an item into the freezer without an
// explicit date extends its expiration when the user enabled auto-extension.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*ItemView, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	a, err := s.resolveEditor(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory.Update: %w", err)
	}

	it, err := s.load(ctx, a, id)
	if err != nil {
		return nil, fmt.Errorf("inventory.Update: %w", err)
	}
	if it.Status != domain.ItemStatusActive {
		return nil, fmt.Errorf("inventory.Update: item is %s: %w", it.Status, domain.ErrConflict)
	}

	toFreezer := in.Storage != nil && *in.Storage == domain.StorageFreezer && it.Storage != domain.StorageFreezer
	applyUpdate(it, in)

	if toFreezer && in.ExpirationDate == nil {
		st, err := s.settings(ctx, a.user.ID)
		if err != nil {
			return nil, fmt.Errorf("inventory.Update: %w", err)
		}
		if st.Expiration.AutoExtendFreezer {
			exp := domain.CalculateExpiration(it.Category, it.PurchaseDate, domain.StorageFreezer, st.Expiration.Rule())
			it.ExpirationDate = &exp
		}
	}

	updated, err := s.items.Update(ctx, *it)
	if err != nil {
		return nil, fmt.Errorf("inventory.Update: %w", err)
	}

	v := view(*updated, a.today)
	return &v, nil
}

func applyUpdate(it *domain.Item, in UpdateInput) {
	if in.Name != nil {
		it.Name = *in.Name
	}
	if in.Quantity != nil {
		it.Quantity = *in.Quantity
	}
	if in.Unit != nil {
		it.Unit = *in.Unit
	}
	if in.Category != nil {
		it.Category = *in.Category
	}
	if in.Storage != nil {
		it.Storage = *in.Storage
	}
	if in.ExpirationDate != nil {
		exp := domain.DateOf(*in.ExpirationDate)
		it.ExpirationDate = &exp
	}
	if in.Notes != nil {
		it.Notes = in.Notes
	}
	if in.PhotoURL != nil {
		it.PhotoURL = in.PhotoURL
	}
}

// Delete soft-deletes an item. Items that were already consumed or wasted can be deleted too.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	a, err := s.resolveEditor(ctx)
	if err != nil {
		return fmt.Errorf("inventory.Delete: %w", err)
	}

	it, err := s.load(ctx, a, id)
	if err != nil {
		return fmt.Errorf("inventory.Delete: %w", err)
	}

	from := []domain.ItemStatus{
		domain.ItemStatusActive, domain.ItemStatusConsumed, domain.ItemStatusWasted, domain.ItemStatusExpired,
	}
	if _, err := s.items.Transition(ctx, it.ID, from, domain.ItemStatusDeleted, it.Quantity); err != nil {
		return fmt.Errorf("inventory.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "item deleted",
		slog.String("user_id", a.user.ID.String()),
		slog.String("item_id", it.ID.String()))
	return nil
}
