package domain

import (
	"time"

	"github.com/google/uuid"
)

// Item is a tracked grocery unit. It always belongs to one user and may be shared with a family.
type Item struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	FamilyID       *uuid.UUID
	Name           string
	Quantity       float64
	Unit           string
	Category       Category
	Storage        Storage
	PurchaseDate   time.Time
	ExpirationDate *time.Time
	Status         ItemStatus
	Notes          *string
	PhotoURL       *string
	Barcode        *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Freshness reports the item's freshness bucket as of today.
func (i *Item) Freshness(today time.Time) Freshness {
	return FreshnessOf(i.ExpirationDate, today)
}

// DaysUntilExpiry returns days left as of today, nil for undated items.
func (i *Item) DaysUntilExpiry(today time.Time) *int {
	return DaysUntil(i.ExpirationDate, today)
}

// EstimatedValue prices the item's current quantity.
func (i *Item) EstimatedValue() float64 {
	return EstimateValue(i.Category, i.Quantity, i.Unit)
}

// CanWaste reports whether the item may still be marked as wasted.
func (i *Item) CanWaste() bool {
	return i.Status == ItemStatusActive || i.Status == ItemStatusExpired
}

// Scope selects whose inventory is visible: a family's when FamilyID is set, otherwise the user's.
type Scope struct {
	UserID   uuid.UUID
	FamilyID *uuid.UUID
}

// Contains reports whether item is visible in the scope.
func (s Scope) Contains(item *Item) bool {
	if s.FamilyID != nil {
		return item.FamilyID != nil && *item.FamilyID == *s.FamilyID
	}
	return item.UserID == s.UserID && item.FamilyID == nil
}

// ItemFilter narrows an inventory listing.
type ItemFilter struct {
	Scope    Scope
	Status   *ItemStatus
	Category *Category
	Storage  *Storage
	Search   *string
	Limit    int
	Offset   int
}

// ItemCounts summarises freshness over a scope's active items.
type ItemCounts struct {
	Expiring int
	Expired  int
}

// InventoryStats is a breakdown of a scope's active inventory.
type InventoryStats struct {
	TotalItems     int
	ByCategory     map[Category]int
	ByStorage      map[Storage]int
	ByFreshness    map[Freshness]int
	EstimatedValue float64
	ExpiringCount  int
	ExpiredCount   int
}

// ConsumptionLog records an eaten or used quantity of an item.
type ConsumptionLog struct {
	ID               uuid.UUID
	ItemID           uuid.UUID
	UserID           uuid.UUID
	QuantityConsumed float64
	ConsumedAt       time.Time
	Notes            *string
}

// WasteLog records a thrown-away item and its estimated cost.
type WasteLog struct {
	ID                uuid.UUID
	ItemID            uuid.UUID
	UserID            uuid.UUID
	Quantity          float64
	WastedAt          time.Time
	Reason            WasteReason
	FeedbackText      *string
	PhotoURL          *string
	EstimatedValue    float64
	CO2ImpactKg       float64
	WaterImpactLiters float64
}
