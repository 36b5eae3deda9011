// Package analytics keeps the per-user daily rollup and evaluates achievements.
package analytics

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

// analyticsRepo defines the rollup storage needed by analytics service.
type analyticsRepo interface {
	AddDaily(ctx context.Context, delta domain.AnalyticsDaily) error
	ListDaily(ctx context.Context, userID uuid.UUID, from *time.Time) ([]domain.AnalyticsDaily, error)
	UnlockAchievement(ctx context.Context, userID uuid.UUID, achievementID string) (*domain.UserAchievement, bool, error)
	ListAchievements(ctx context.Context, userID uuid.UUID) ([]domain.UserAchievement, error)
}

// userRepo defines the user lookups needed by analytics service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListAll(ctx context.Context) ([]domain.User, error)
}

// logRepo provides per-category breakdowns of consumption and waste events.
type logRepo interface {
	WasteByCategory(ctx context.Context, userID uuid.UUID, from time.Time) (domain.CategoryBreakdown, error)
	SavingsByCategory(ctx context.Context, userID uuid.UUID, from time.Time) (domain.CategoryBreakdown, error)
}

// itemRepo provides the expiring items insights warn about.
type itemRepo interface {
	ListExpiring(ctx context.Context, scope domain.Scope, today time.Time, days int) ([]domain.Item, error)
}

// notifier delivers notifications to a user.
type notifier interface {
	Deliver(ctx context.Context, n domain.Notification, voiceText string) (*domain.Notification, error)
}

// recorder counts rollup activity.
type recorder interface {
	RollupEvent(kind string)
	AchievementUnlocked(id string)
}

// Service implements the analytics rollup and reporting.
type Service struct {
	log       *slog.Logger
	analytics analyticsRepo
	users     userRepo
	logs      logRepo
	items     itemRepo
	notifier  notifier
	metrics   recorder
	now       func() time.Time
}

// NewService creates a new analytics service instance.
func NewService(
	logger *slog.Logger,
	analytics analyticsRepo,
	users userRepo,
	logs logRepo,
	items itemRepo,
	notifier notifier,
	metrics recorder,
) *Service {
	return &Service{
		log:       logger.With("service", "analytics"),
		analytics: analytics,
		users:     users,
		logs:      logs,
		items:     items,
		notifier:  notifier,
		metrics:   metrics,
		now:       time.Now,
	}
}
