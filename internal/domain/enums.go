package domain

// Category is the food category of an inventory item.
type Category string

const (
	CategoryDairy      Category = "dairy"
	CategoryMeat       Category = "meat"
	CategoryPoultry    Category = "poultry"
	CategoryFish       Category = "fish"
	CategoryVegetables Category = "vegetables"
	CategoryFruits     Category = "fruits"
	CategoryBread      Category = "bread"
	CategoryEggs       Category = "eggs"
	CategoryFrozen     Category = "frozen"
	CategoryCanned     Category = "canned"
	CategoryCondiments Category = "condiments"
	CategoryBeverages  Category = "beverages"
	CategorySnacks     Category = "snacks"
	CategoryGrains     Category = "grains"
	CategoryOther      Category = "other"
)

// Categories lists every category in catalog order.
var Categories = []Category{
	CategoryDairy, CategoryMeat, CategoryPoultry, CategoryFish, CategoryVegetables,
	CategoryFruits, CategoryBread, CategoryEggs, CategoryFrozen, CategoryCanned,
	CategoryCondiments, CategoryBeverages, CategorySnacks, CategoryGrains, CategoryOther,
}

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	_, ok := shelfLifeDays[c]
	return ok
}

// Storage is where an item is kept.
type Storage string

const (
	StorageFridge  Storage = "fridge"
	StorageFreezer Storage = "freezer"
	StoragePantry  Storage = "pantry"
)

func (s Storage) String() string { return string(s) }

func (s Storage) IsValid() bool {
	switch s {
	case StorageFridge, StorageFreezer, StoragePantry:
		return true
	}
	return false
}

// ItemStatus is the lifecycle state of an item. Transitions only move away from active.
type ItemStatus string

const (
	ItemStatusActive   ItemStatus = "active"
	ItemStatusConsumed ItemStatus = "consumed"
	ItemStatusWasted   ItemStatus = "wasted"
	ItemStatusExpired  ItemStatus = "expired"
	ItemStatusDeleted  ItemStatus = "deleted"
)

func (s ItemStatus) String() string { return string(s) }

func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemStatusActive, ItemStatusConsumed, ItemStatusWasted, ItemStatusExpired, ItemStatusDeleted:
		return true
	}
	return false
}

// Freshness buckets an item by days left until its expiration date.
type Freshness string

const (
	FreshnessFresh        Freshness = "fresh"
	FreshnessWarning      Freshness = "warning"
	FreshnessExpiresToday Freshness = "expires_today"
	FreshnessExpired      Freshness = "expired"
)

func (f Freshness) String() string { return string(f) }

// WasteReason explains why an item was thrown away.
type WasteReason string

const (
	WasteReasonForgot       WasteReason = "forgot"
	WasteReasonSpoiled      WasteReason = "spoiled"
	WasteReasonTastedBad    WasteReason = "tasted_bad"
	WasteReasonTooMuch      WasteReason = "too_much"
	WasteReasonChangedPlans WasteReason = "changed_plans"
	WasteReasonOther        WasteReason = "other"
)

func (r WasteReason) String() string { return string(r) }

func (r WasteReason) IsValid() bool {
	switch r {
	case WasteReasonForgot, WasteReasonSpoiled, WasteReasonTastedBad,
		WasteReasonTooMuch, WasteReasonChangedPlans, WasteReasonOther:
		return true
	}
	return false
}

// FamilyRole is a member's permission level inside a family.
type FamilyRole string

const (
	FamilyRoleAdmin  FamilyRole = "admin"
	FamilyRoleEditor FamilyRole = "editor"
	FamilyRoleViewer FamilyRole = "viewer"
)

func (r FamilyRole) String() string { return string(r) }

func (r FamilyRole) IsValid() bool {
	switch r {
	case FamilyRoleAdmin, FamilyRoleEditor, FamilyRoleViewer:
		return true
	}
	return false
}

// ExpirationMode scales the default shelf life.
type ExpirationMode string

const (
	ExpirationModeConservative ExpirationMode = "conservative"
	ExpirationModeStandard     ExpirationMode = "standard"
	ExpirationModeOptimistic   ExpirationMode = "optimistic"
)

func (m ExpirationMode) String() string { return string(m) }

func (m ExpirationMode) IsValid() bool {
	switch m {
	case ExpirationModeConservative, ExpirationModeStandard, ExpirationModeOptimistic:
		return true
	}
	return false
}

// NotificationType classifies a notification.
type NotificationType string

const (
	NotificationTypeExpiryAlert      NotificationType = "expiry_alert"
	NotificationTypeReminder         NotificationType = "reminder"
	NotificationTypeAchievement      NotificationType = "achievement"
	NotificationTypeRecipeSuggestion NotificationType = "recipe_suggestion"
	NotificationTypeFamily           NotificationType = "family"
	NotificationTypeSystem           NotificationType = "system"
)

func (t NotificationType) String() string { return string(t) }

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeExpiryAlert, NotificationTypeReminder, NotificationTypeAchievement,
		NotificationTypeRecipeSuggestion, NotificationTypeFamily, NotificationTypeSystem:
		return true
	}
	return false
}

// AnalyticsPeriod selects a reporting window.
type AnalyticsPeriod string

const (
	PeriodWeek  AnalyticsPeriod = "week"
	PeriodMonth AnalyticsPeriod = "month"
	PeriodYear  AnalyticsPeriod = "year"
	PeriodAll   AnalyticsPeriod = "all"
)

func (p AnalyticsPeriod) String() string { return string(p) }

func (p AnalyticsPeriod) IsValid() bool {
	switch p {
	case PeriodWeek, PeriodMonth, PeriodYear, PeriodAll:
		return true
	}
	return false
}

// Days returns how far back the period reaches.
func (p AnalyticsPeriod) Days() int {
	switch p {
	case PeriodWeek:
		return 7
	case PeriodMonth:
		return 30
	case PeriodYear:
		return 365
	}
	return 3650
}
