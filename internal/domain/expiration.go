package domain

import (
	"strings"
	"time"
)

// shelfLifeDays is the default fridge shelf life per category.
var shelfLifeDays = map[Category]int{
	CategoryDairy:      7,
	CategoryMeat:       3,
	CategoryPoultry:    2,
	CategoryFish:       2,
	CategoryVegetables: 5,
	CategoryFruits:     5,
	CategoryBread:      5,
	CategoryEggs:       21,
	CategoryFrozen:     90,
	CategoryCanned:     365,
	CategoryCondiments: 180,
	CategoryBeverages:  30,
	CategorySnacks:     60,
	CategoryGrains:     180,
	CategoryOther:      14,
}

// Categories that keep their full shelf life outside the fridge.
var pantryStable = map[Category]bool{
	CategoryCanned:     true,
	CategoryGrains:     true,
	CategorySnacks:     true,
	CategoryCondiments: true,
}

var modeMultiplier = map[ExpirationMode]float64{
	ExpirationModeConservative: 0.7,
	ExpirationModeStandard:     1.0,
	ExpirationModeOptimistic:   1.3,
}

// WarningThresholdDays is the largest number of days left that still counts as "warning".
const WarningThresholdDays = 1

// ShelfLife returns the default shelf life in days for a category, falling back to "other".
func ShelfLife(c Category) int {
	if d, ok := shelfLifeDays[Category(strings.ToLower(string(c)))]; ok {
		return d
	}
	return shelfLifeDays[CategoryOther]
}

// ExpirationRule carries the per-user knobs that shape CalculateExpiration.
type ExpirationRule struct {
	Mode            ExpirationMode
	CustomShelfLife map[Category]int
}

// CalculateExpiration derives an expiration date from the purchase date.
// A custom shelf life replaces the category default before storage and mode adjustments.
func CalculateExpiration(category Category, purchase time.Time, storage Storage, rule ExpirationRule) time.Time {
	base := ShelfLife(category)
	if custom, ok := rule.CustomShelfLife[category]; ok && custom > 0 {
		base = custom
	}

	switch storage {
	case StorageFreezer:
		base = max(base*10, 90)
	case StoragePantry:
		if !pantryStable[category] {
			base = max(base/2, 1)
		}
	}

	multiplier, ok := modeMultiplier[rule.Mode]
	if !ok {
		multiplier = 1.0
	}
	days := int(float64(base) * multiplier)

	return DateOf(purchase).AddDate(0, 0, days)
}

// DaysUntil returns the number of calendar days from today to exp.
// Negative when exp is in the past. Returns nil when exp is nil.
func DaysUntil(exp *time.Time, today time.Time) *int {
	if exp == nil {
		return nil
	}
	d := int(DateOf(*exp).Sub(DateOf(today)).Hours() / 24)
	return &d
}

// FreshnessOf buckets an expiration date relative to today. Items without a date are fresh.
func FreshnessOf(exp *time.Time, today time.Time) Freshness {
	days := DaysUntil(exp, today)
	switch {
	case days == nil:
		return FreshnessFresh
	case *days < 0:
		return FreshnessExpired
	case *days == 0:
		return FreshnessExpiresToday
	case *days <= WarningThresholdDays:
		return FreshnessWarning
	}
	return FreshnessFresh
}

// IsExpiringWithin reports whether exp falls in [today, today+days].
func IsExpiringWithin(exp *time.Time, today time.Time, days int) bool {
	d := DaysUntil(exp, today)
	return d != nil && *d >= 0 && *d <= days
}
