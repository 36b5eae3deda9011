package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

// Expiring returns active items expiring within days (default 3), soonest first.
func (s *Service) Expiring(ctx context.Context, days int) ([]ItemView, error) {
	if days == 0 {
		days = defaultExpiringDays
	}
	if days < 0 || days > maxExpiringDays {
		return nil, domain.NewValidationError("days", "must be between 1 and 90")
	}

	a, err := s.resolve(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory.Expiring: %w", err)
	}

	items, err := s.items.ListExpiring(ctx, a.scope, a.today, days)
	if err != nil {
		return nil, fmt.Errorf("inventory.Expiring: %w", err)
	}
	return views(items, a.today), nil
}

// Expired returns items past their date that were neither eaten nor thrown away.
func (s *Service) Expired(ctx context.Context) ([]ItemView, error) {
	a, err := s.resolve(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory.Expired: %w", err)
	}

	items, err := s.items.ListExpired(ctx, a.scope, a.today)
	if err != nil {
		return nil, fmt.Errorf("inventory.Expired: %w", err)
	}
	return views(items, a.today), nil
}

// Stats breaks down the scope's active inventory.
func (s *Service) Stats(ctx context.Context) (*domain.InventoryStats, error) {
	a, err := s.resolve(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory.Stats: %w", err)
	}

	items, err := s.items.ListActive(ctx, a.scope, 0)
	if err != nil {
		return nil, fmt.Errorf("inventory.Stats: %w", err)
	}

	st, err := s.settings(ctx, a.user.ID)
	if err != nil {
		return nil, fmt.Errorf("inventory.Stats: %w", err)
	}

	stats := Summarize(items, a.today, st.Notifications.ExpiryThresholdDays)
	return &stats, nil
}

// Summarize computes inventory statistics for active items as of today.
func Summarize(items []domain.Item, today time.Time, threshold int) domain.InventoryStats {
	stats := domain.InventoryStats{
		TotalItems: len(items),
		ByCategory: map[domain.Category]int{},
		ByStorage:  map[domain.Storage]int{},
		ByFreshness: map[domain.Freshness]int{
			domain.FreshnessFresh:        0,
			domain.FreshnessWarning:      0,
			domain.FreshnessExpiresToday: 0,
			domain.FreshnessExpired:      0,
		},
	}

	var value float64
	for i := range items {
		it := &items[i]
		stats.ByCategory[it.Category]++
		stats.ByStorage[it.Storage]++
		stats.ByFreshness[it.Freshness(today)]++
		value += it.EstimatedValue()

		switch {
		case domain.IsExpiringWithin(it.ExpirationDate, today, threshold):
			stats.ExpiringCount++
		case it.Freshness(today) == domain.FreshnessExpired:
			stats.ExpiredCount++
		}
	}
	stats.EstimatedValue = domain.RoundTo(value, 2)
	return stats
}
