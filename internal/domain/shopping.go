package domain

import (
	"time"

	"github.com/google/uuid"
)

// ShoppingList belongs to a family when FamilyID is set, otherwise to its creating user.
type ShoppingList struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	FamilyID  *uuid.UUID
	Name      string
	Items     []ShoppingItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CheckedCount returns how many items are ticked off.
func (l *ShoppingList) CheckedCount() int {
	n := 0
	for _, it := range l.Items {
		if it.Checked {
			n++
		}
	}
	return n
}

// ShoppingItem is one line on a shopping list.
type ShoppingItem struct {
	ID            uuid.UUID
	ListID        uuid.UUID
	Name          string
	Quantity      float64
	Unit          string
	Category      *Category
	Checked       bool
	AddedBy       uuid.UUID
	AddedByName   *string
	Notes         *string
	AutoGenerated bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// lowStockThresholds is the quantity at or below which an item is considered running out.
var lowStockThresholds = map[string]float64{
	"piece": 1,
	"kg":    0.5,
	"liter": 0.5,
	"dozen": 0.5,
}

// IsLowStock reports whether an item's remaining quantity warrants restocking.
// Units without a threshold are never low.
func IsLowStock(qty float64, unit string) bool {
	limit, ok := lowStockThresholds[unit]
	return ok && qty <= limit
}
