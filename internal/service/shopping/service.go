// Package shopping manages the per-scope shopping list and its hand-off to the inventory.
package shopping

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/freshkeep-backend/internal/domain"
	"github.com/heartmarshall/freshkeep-backend/internal/service/inventory"
)

// shoppingRepo defines the list persistence needed by shopping service.
type shoppingRepo interface {
	GetOrCreateList(ctx context.Context, scope domain.Scope) (*domain.ShoppingList, error)
	ListItems(ctx context.Context, listID uuid.UUID) ([]domain.ShoppingItem, error)
	GetItem(ctx context.Context, listID, id uuid.UUID) (*domain.ShoppingItem, error)
	AddItem(ctx context.Context, it domain.ShoppingItem) (*domain.ShoppingItem, error)
	UpdateItem(ctx context.Context, it domain.ShoppingItem) (*domain.ShoppingItem, error)
	DeleteItem(ctx context.Context, listID, id uuid.UUID) error
	DeleteChecked(ctx context.Context, listID uuid.UUID, ids []uuid.UUID) (int64, error)
}

// userRepo resolves the authenticated user.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// stockReader lists what is still in the pantry.
type stockReader interface {
	ListActive(ctx context.Context, scope domain.Scope, limit int) ([]domain.Item, error)
}

// importer turns bought lines into inventory items.
type importer interface {
	CreateMany(ctx context.Context, in []inventory.CreateInput) ([]inventory.ItemView, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements shopping list operations.
type Service struct {
	log       *slog.Logger
	lists     shoppingRepo
	users     userRepo
	stock     stockReader
	inventory importer
	tx        txManager
}

// NewService creates a new shopping service instance.
func NewService(
	logger *slog.Logger,
	lists shoppingRepo,
	users userRepo,
	stock stockReader,
	inventory importer,
	tx txManager,
) *Service {
	return &Service{
		log:       logger.With("service", "shopping"),
		lists:     lists,
		users:     users,
		stock:     stock,
		inventory: inventory,
		tx:        tx,
	}
}
