package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         string
	Timezone     string
	FamilyID     *uuid.UUID
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Location returns the user's timezone, UTC when unset or unknown.
func (u *User) Location() *time.Location {
	return ParseTimezone(u.Timezone)
}

// NotificationSettings controls when and how alerts are delivered.
// Alert times use the user's local "HH:MM".
type NotificationSettings struct {
	Enabled             bool    `json:"enabled"`
	MorningAlertTime    string  `json:"morning_alert_time"`
	EveningReminder     bool    `json:"evening_reminder"`
	EveningReminderTime string  `json:"evening_reminder_time"`
	VoiceAlerts         bool    `json:"voice_alerts"`
	QuietHoursStart     *string `json:"quiet_hours_start,omitempty"`
	QuietHoursEnd       *string `json:"quiet_hours_end,omitempty"`
	ExpiryThresholdDays int     `json:"expiry_threshold_days"`
}

// InQuietHours reports whether local falls inside the quiet window. The window
// may wrap past midnight; an unset or malformed window is never quiet.
func (n NotificationSettings) InQuietHours(local time.Time) bool {
	if n.QuietHoursStart == nil || n.QuietHoursEnd == nil {
		return false
	}
	start, ok1 := ClockMinutes(*n.QuietHoursStart)
	end, ok2 := ClockMinutes(*n.QuietHoursEnd)
	if !ok1 || !ok2 || start == end {
		return false
	}

	m := local.Hour()*60 + local.Minute()
	if start < end {
		return m >= start && m < end
	}
	return m >= start || m < end
}

// FoodPreferences holds dietary preferences used by recipe suggestions.
type FoodPreferences struct {
	DietaryRestrictions []string `json:"dietary_restrictions"`
	Allergies           []string `json:"allergies"`
	DislikedIngredients []string `json:"disliked_ingredients"`
	PreferredCuisines   []string `json:"preferred_cuisines"`
	DefaultUnitSystem   string   `json:"default_unit_system"`
}

// ExpirationSettings tunes automatic expiration dates.
type ExpirationSettings struct {
	Mode              ExpirationMode   `json:"mode"`
	CustomShelfLife   map[Category]int `json:"custom_shelf_life"`
	AutoExtendFreezer bool             `json:"auto_extend_freezer"`
}

// Rule returns the inputs CalculateExpiration needs.
func (s ExpirationSettings) Rule() ExpirationRule {
	return ExpirationRule{Mode: s.Mode, CustomShelfLife: s.CustomShelfLife}
}

// UserSettings holds per-user preferences.
type UserSettings struct {
	UserID        uuid.UUID
	Notifications NotificationSettings
	Food          FoodPreferences
	Expiration    ExpirationSettings
	Language      string
	UpdatedAt     time.Time
}

// DefaultUserSettings returns UserSettings with sensible defaults.
func DefaultUserSettings(userID uuid.UUID) UserSettings {
	return UserSettings{
		UserID: userID,
		Notifications: NotificationSettings{
			Enabled:             true,
			MorningAlertTime:    "07:00",
			EveningReminder:     true,
			EveningReminderTime: "19:00",
			ExpiryThresholdDays: 3,
		},
		Food: FoodPreferences{
			DietaryRestrictions: []string{},
			Allergies:           []string{},
			DislikedIngredients: []string{},
			PreferredCuisines:   []string{},
			DefaultUnitSystem:   "metric",
		},
		Expiration: ExpirationSettings{
			Mode:              ExpirationModeStandard,
			CustomShelfLife:   map[Category]int{},
			AutoExtendFreezer: true,
		},
		Language: "en",
	}
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}

// PasswordReset is a single-use password reset token, stored hashed.
type PasswordReset struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}

// IsUsable reports whether the reset token can still be redeemed at now.
func (p *PasswordReset) IsUsable(now time.Time) bool {
	return p.UsedAt == nil && now.Before(p.ExpiresAt)
}
