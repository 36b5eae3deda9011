// Package inventory manages grocery items, their consumption and waste, and
// product lookups by barcode or receipt photo.
package inventory

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

// itemRepo defines the item persistence needed by inventory service.
type itemRepo interface {
	Create(ctx context.Context, it domain.Item) (*domain.Item, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	Update(ctx context.Context, it domain.Item) (*domain.Item, error)
	Transition(ctx context.Context, id uuid.UUID, from []domain.ItemStatus, to domain.ItemStatus, quantity float64) (*domain.Item, error)
	Deduct(ctx context.Context, id uuid.UUID, amount float64) (*domain.Item, error)
	List(ctx context.Context, f domain.ItemFilter) ([]domain.Item, int, error)
	ListActive(ctx context.Context, scope domain.Scope, limit int) ([]domain.Item, error)
	ListExpiring(ctx context.Context, scope domain.Scope, today time.Time, days int) ([]domain.Item, error)
	ListExpired(ctx context.Context, scope domain.Scope, today time.Time) ([]domain.Item, error)
	Counts(ctx context.Context, scope domain.Scope, today time.Time, threshold int) (domain.ItemCounts, error)
}

// logRepo records consumption and waste events.
type logRepo interface {
	CreateConsumption(ctx context.Context, l domain.ConsumptionLog) (*domain.ConsumptionLog, error)
	CreateWaste(ctx context.Context, l domain.WasteLog) (*domain.WasteLog, error)
}

// userRepo provides the acting user and their settings.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetSettings(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
}

// memberRepo resolves family roles for shared inventories.
type memberRepo interface {
	GetMember(ctx context.Context, familyID uuid.UUID, userID uuid.UUID) (*domain.FamilyMember, error)
}

// rollup updates daily analytics. Record calls run inside the inventory transaction.
type rollup interface {
	RecordConsumption(ctx context.Context, user *domain.User, item *domain.Item, quantity float64, at time.Time) ([]domain.Achievement, error)
	RecordWaste(ctx context.Context, user *domain.User, wl domain.WasteLog) ([]domain.Achievement, error)
	NotifyUnlocked(ctx context.Context, userID uuid.UUID, unlocked []domain.Achievement)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ProductLookup resolves a barcode. A nil product with a nil error means unknown.
type ProductLookup interface {
	Name() string
	Lookup(ctx context.Context, upc string) (*domain.Product, error)
}

// productCache stores barcode results.
type productCache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
}

// textReader extracts text from a receipt photo.
type textReader interface {
	Configured() bool
	ExtractText(ctx context.Context, image []byte) (string, error)
}

// Lookups is the barcode resolution chain. Local is consulted first and never
// counts as an upstream failure.
type Lookups struct {
	Local    ProductLookup
	Remote   []ProductLookup
	Cache    productCache
	CacheTTL time.Duration
}

// Service implements inventory operations.
type Service struct {
	log       *slog.Logger
	items     itemRepo
	logs      logRepo
	users     userRepo
	members   memberRepo
	analytics rollup
	tx        txManager
	lookups   Lookups
	ocr       textReader
	now       func() time.Time
}

// NewService creates a new inventory service instance.
func NewService(
	logger *slog.Logger,
	items itemRepo,
	logs logRepo,
	users userRepo,
	members memberRepo,
	analytics rollup,
	tx txManager,
	lookups Lookups,
	ocr textReader,
) *Service {
	return &Service{
		log:       logger.With("service", "inventory"),
		items:     items,
		logs:      logs,
		users:     users,
		members:   members,
		analytics: analytics,
		tx:        tx,
		lookups:   lookups,
		ocr:       ocr,
		now:       time.Now,
	}
}
