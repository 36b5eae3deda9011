package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, name *string, timezone *string) (*domain.User, error)
	GetSettings(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
	UpsertSettings(ctx context.Context, s domain.UserSettings) (*domain.UserSettings, error)
}

// itemRepo reads a user's items for export.
type itemRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID, from *time.Time, to *time.Time) ([]domain.Item, error)
}

// logRepo reads consumption and waste history for export.
type logRepo interface {
	ListConsumption(ctx context.Context, userID uuid.UUID, from *time.Time, to *time.Time) ([]domain.ConsumptionLog, error)
	ListWaste(ctx context.Context, userID uuid.UUID, from *time.Time, to *time.Time) ([]domain.WasteLog, error)
}

// analyticsRepo reads daily aggregates for export.
type analyticsRepo interface {
	ListDaily(ctx context.Context, userID uuid.UUID, from *time.Time) ([]domain.AnalyticsDaily, error)
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements settings and data export operations.
type Service struct {
	log       *slog.Logger
	users     userRepo
	items     itemRepo
	logs      logRepo
	analytics analyticsRepo
	tx        txManager
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	items itemRepo,
	logs logRepo,
	analytics analyticsRepo,
	tx txManager,
) *Service {
	return &Service{
		log:       logger.With("service", "user"),
		users:     users,
		items:     items,
		logs:      logs,
		analytics: analytics,
		tx:        tx,
	}
}
