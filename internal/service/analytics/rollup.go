package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/freshkeep-backend/internal/domain"
	"github.com/heartmarshall/freshkeep-backend/pkg/ctxutil"
)

// RecordConsumption adds a consumption event to the user's daily rollup and
// returns achievements it unlocked. Eating an item before it expires counts as a save;
// eating expired food changes no counters.
// Call it inside the transaction that writes the log row, then pass the result to NotifyUnlocked after commit.
func (s *Service) RecordConsumption(ctx context.Context, user *domain.User, item *domain.Item, quantity float64, at time.Time) ([]domain.Achievement, error) {
	date := domain.LocalDate(at, user.Location())
	if item.ExpirationDate != nil && domain.DateOf(*item.ExpirationDate).Before(date) {
		return nil, nil
	}

	impact := domain.EstimateImpact(item.Category, quantity, item.Unit)
	delta := domain.AnalyticsDaily{
		UserID:           user.ID,
		Date:             date,
		ItemsSaved:       1,
		MoneySaved:       domain.EstimateValue(item.Category, quantity, item.Unit),
		CO2PreventedKg:   impact.CO2Kg,
		WaterSavedLiters: impact.WaterLiters,
	}
	if err := s.analytics.AddDaily(ctx, delta); err != nil {
		return nil, fmt.Errorf("analytics.RecordConsumption: %w", err)
	}
	s.metrics.RollupEvent("consume")

	unlocked, err := s.evaluate(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("analytics.RecordConsumption: %w", err)
	}
	return unlocked, nil
}

// RecordWaste adds a waste event to the user's daily rollup and returns achievements it unlocked.
func (s *Service) RecordWaste(ctx context.Context, user *domain.User, wl domain.WasteLog) ([]domain.Achievement, error) {
	delta := domain.AnalyticsDaily{
		UserID:           user.ID,
		Date:             domain.LocalDate(wl.WastedAt, user.Location()),
		WasteCount:       1,
		WasteCost:        wl.EstimatedValue,
		WasteCO2Kg:       wl.CO2ImpactKg,
		WasteWaterLiters: wl.WaterImpactLiters,
	}
	if err := s.analytics.AddDaily(ctx, delta); err != nil {
		return nil, fmt.Errorf("analytics.RecordWaste: %w", err)
	}
	s.metrics.RollupEvent("waste")

	unlocked, err := s.evaluate(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("analytics.RecordWaste: %w", err)
	}
	return unlocked, nil
}

// RecordRecipeCooked counts a cooked recipe for the authenticated user.
func (s *Service) RecordRecipeCooked(ctx context.Context) error {
	user, err := s.currentUser(ctx)
	if err != nil {
		return fmt.Errorf("analytics.RecordRecipeCooked: %w", err)
	}

	delta := domain.AnalyticsDaily{
		UserID:       user.ID,
		Date:         domain.LocalDate(s.now(), user.Location()),
		RecipesTried: 1,
	}
	if err := s.analytics.AddDaily(ctx, delta); err != nil {
		return fmt.Errorf("analytics.RecordRecipeCooked: %w", err)
	}
	s.metrics.RollupEvent("recipe")

	unlocked, err := s.evaluate(ctx, user)
	if err != nil {
		return fmt.Errorf("analytics.RecordRecipeCooked: %w", err)
	}
	s.NotifyUnlocked(ctx, user.ID, unlocked)
	return nil
}

// NotifyUnlocked sends one notification per unlocked achievement.
// Delivery failures are logged and do not fail the caller.
func (s *Service) NotifyUnlocked(ctx context.Context, userID uuid.UUID, unlocked []domain.Achievement) {
	for _, a := range unlocked {
		if _, err := s.notifier.Deliver(ctx, domain.NewAchievementNotification(userID, a), ""); err != nil {
			s.log.WarnContext(ctx, "achievement notification failed",
				slog.String("user_id", userID.String()),
				slog.String("achievement_id", a.ID),
				slog.String("error", err.Error()))
		}
	}
}

// evaluate compares lifetime totals with the catalog and unlocks every reached achievement.
// Already unlocked ones are skipped by the storage layer.
func (s *Service) evaluate(ctx context.Context, user *domain.User) ([]domain.Achievement, error) {
	in, err := s.progressInput(ctx, user)
	if err != nil {
		return nil, err
	}

	var unlocked []domain.Achievement
	for _, a := range domain.AchievementCatalog {
		if !a.Reached(in) {
			continue
		}
		_, created, err := s.analytics.UnlockAchievement(ctx, user.ID, a.ID)
		if err != nil {
			return nil, fmt.Errorf("unlock %s: %w", a.ID, err)
		}
		if created {
			unlocked = append(unlocked, a)
			s.metrics.AchievementUnlocked(a.ID)
			s.log.InfoContext(ctx, "achievement unlocked",
				slog.String("user_id", user.ID.String()),
				slog.String("achievement_id", a.ID))
		}
	}
	return unlocked, nil
}

func (s *Service) progressInput(ctx context.Context, user *domain.User) (domain.ProgressInput, error) {
	days, err := s.analytics.ListDaily(ctx, user.ID, nil)
	if err != nil {
		return domain.ProgressInput{}, fmt.Errorf("list daily: %w", err)
	}
	return domain.ProgressInput{
		Summary:  domain.Summarize(days),
		InFamily: user.FamilyID != nil,
	}, nil
}

func (s *Service) currentUser(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
