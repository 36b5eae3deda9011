package inventory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

// Consume records eating part or all of an active item. A partial amount keeps
// the item active with the remaining quantity. The log row, the item change and
// the analytics rollup commit together; repeated calls count again.
func (s *Service) Consume(ctx context.Context, id uuid.UUID, in ConsumeInput) (*ItemView, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	a, err := s.resolveEditor(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory.Consume: %w", err)
	}

	it, err := s.load(ctx, a, id)
	if err != nil {
		return nil, fmt.Errorf("inventory.Consume: %w", err)
	}
	if it.Status != domain.ItemStatusActive {
		return nil, fmt.Errorf("inventory.Consume: item is %s: %w", it.Status, domain.ErrConflict)
	}

	consumed := it.Quantity
	if in.Quantity != nil && *in.Quantity < it.Quantity {
		consumed = *in.Quantity
	}

	now := s.now().UTC()
	var (
		updated  *domain.Item
		unlocked []domain.Achievement
	)
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var txErr error
		updated, txErr = s.items.Deduct(ctx, it.ID, consumed)
		if txErr != nil {
			return staleTransition(txErr)
		}

		if _, txErr = s.logs.CreateConsumption(ctx, domain.ConsumptionLog{
			ItemID:           it.ID,
			UserID:           a.user.ID,
			QuantityConsumed: consumed,
			ConsumedAt:       now,
			Notes:            in.Notes,
		}); txErr != nil {
			return fmt.Errorf("log consumption: %w", txErr)
		}

		unlocked, txErr = s.analytics.RecordConsumption(ctx, a.user, it, consumed, now)
		return txErr
	})
	if err != nil {
		return nil, fmt.Errorf("inventory.Consume: %w", err)
	}

	s.analytics.NotifyUnlocked(ctx, a.user.ID, unlocked)
	s.log.InfoContext(ctx, "item consumed",
		slog.String("user_id", a.user.ID.String()),
		slog.String("item_id", it.ID.String()),
		slog.Float64("quantity", consumed),
		slog.String("status", updated.Status.String()))

	v := view(*updated, a.today)
	return &v, nil
}

// Waste marks an active or expired item as thrown away, logging its estimated
// value and environmental impact for the current quantity.
func (s *Service) Waste(ctx context.Context, id uuid.UUID, in WasteInput) (*ItemView, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	a, err := s.resolveEditor(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory.Waste: %w", err)
	}

	it, err := s.load(ctx, a, id)
	if err != nil {
		return nil, fmt.Errorf("inventory.Waste: %w", err)
	}
	if !it.CanWaste() {
		return nil, fmt.Errorf("inventory.Waste: item is %s: %w", it.Status, domain.ErrConflict)
	}

	impact := domain.EstimateImpact(it.Category, it.Quantity, it.Unit)
	wl := domain.WasteLog{
		ItemID:            it.ID,
		UserID:            a.user.ID,
		Quantity:          it.Quantity,
		WastedAt:          s.now().UTC(),
		Reason:            in.Reason,
		FeedbackText:      in.FeedbackText,
		PhotoURL:          in.PhotoURL,
		EstimatedValue:    it.EstimatedValue(),
		CO2ImpactKg:       impact.CO2Kg,
		WaterImpactLiters: impact.WaterLiters,
	}

	var (
		updated  *domain.Item
		unlocked []domain.Achievement
	)
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var txErr error
		from := []domain.ItemStatus{domain.ItemStatusActive, domain.ItemStatusExpired}
		updated, txErr = s.items.Transition(ctx, it.ID, from, domain.ItemStatusWasted, it.Quantity)
		if txErr != nil {
			return staleTransition(txErr)
		}

		if _, txErr = s.logs.CreateWaste(ctx, wl); txErr != nil {
			return fmt.Errorf("log waste: %w", txErr)
		}

		unlocked, txErr = s.analytics.RecordWaste(ctx, a.user, wl)
		return txErr
	})
	if err != nil {
		return nil, fmt.Errorf("inventory.Waste: %w", err)
	}

	s.analytics.NotifyUnlocked(ctx, a.user.ID, unlocked)
	s.log.InfoContext(ctx, "item wasted",
		slog.String("user_id", a.user.ID.String()),
		slog.String("item_id", it.ID.String()),
		slog.String("reason", in.Reason.String()),
		slog.Float64("value", wl.EstimatedValue))

	v := view(*updated, a.today)
	return &v, nil
}

// staleTransition reports a concurrent status change as a conflict.
func staleTransition(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("item status changed: %w", domain.ErrConflict)
	}
	return fmt.Errorf("transition item: %w", err)
}
