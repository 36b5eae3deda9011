// Package recipe suggests recipes that use up what is in the inventory.
package recipe

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/freshkeep-backend/internal/domain"
	"github.com/heartmarshall/freshkeep-backend/internal/provider"
)

// userRepo resolves the authenticated user.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// itemRepo reads the scope's inventory.
type itemRepo interface {
	ListExpiring(ctx context.Context, scope domain.Scope, today time.Time, days int) ([]domain.Item, error)
	ListActive(ctx context.Context, scope domain.Scope, limit int) ([]domain.Item, error)
}

// recipeProvider is a remote recipe search API.
type recipeProvider interface {
	Configured() bool
	FindByIngredients(ctx context.Context, ingredients []string, number int) ([]provider.RecipeMatch, error)
	Information(ctx context.Context, id int) (*domain.RecipeDetail, error)
}

// cookedRecorder counts cooked recipes toward achievements.
type cookedRecorder interface {
	RecordRecipeCooked(ctx context.Context) error
}

// detailCache keeps remote recipe details between requests.
type detailCache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
}

// Service implements recipe recommendations.
type Service struct {
	log       *slog.Logger
	users     userRepo
	items     itemRepo
	remote    recipeProvider
	analytics cookedRecorder
	cache     detailCache
	now       func() time.Time
}

// NewService creates a new recipe service instance. cache may be nil.
func NewService(
	logger *slog.Logger,
	users userRepo,
	items itemRepo,
	remote recipeProvider,
	analytics cookedRecorder,
	cache detailCache,
) *Service {
	return &Service{
		log:       logger.With("service", "recipe"),
		users:     users,
		items:     items,
		remote:    remote,
		analytics: analytics,
		cache:     cache,
		now:       time.Now,
	}
}
