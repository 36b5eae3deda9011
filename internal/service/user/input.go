package user

import (
	"time"

	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

const (
	maxThresholdDays = 14
	maxShelfLifeDays = 3650
)

// UpdateSettingsInput holds parameters for settings update operation.
// All fields are optional (nil = don't change). Sub-objects replace the stored ones whole.
type UpdateSettingsInput struct {
	Notifications *domain.NotificationSettings
	Food          *domain.FoodPreferences
	Expiration    *domain.ExpirationSettings
	Timezone      *string
	Language      *string
}

// Validate validates the update settings input.
func (i UpdateSettingsInput) Validate() error {
	var errs []domain.FieldError

	if n := i.Notifications; n != nil {
		errs = validateClock(errs, "notifications.morning_alert_time", &n.MorningAlertTime)
		errs = validateClock(errs, "notifications.evening_reminder_time", &n.EveningReminderTime)
		errs = validateClock(errs, "notifications.quiet_hours_start", n.QuietHoursStart)
		errs = validateClock(errs, "notifications.quiet_hours_end", n.QuietHoursEnd)
		if n.ExpiryThresholdDays < 1 || n.ExpiryThresholdDays > maxThresholdDays {
			errs = append(errs, domain.FieldError{Field: "notifications.expiry_threshold_days", Message: "must be between 1 and 14"})
		}
	}

	if f := i.Food; f != nil {
		if f.DefaultUnitSystem != "metric" && f.DefaultUnitSystem != "imperial" {
			errs = append(errs, domain.FieldError{Field: "food.default_unit_system", Message: "must be metric or imperial"})
		}
	}

	if e := i.Expiration; e != nil {
		if !e.Mode.IsValid() {
			errs = append(errs, domain.FieldError{Field: "expiration.mode", Message: "invalid mode"})
		}
		for c, days := range e.CustomShelfLife {
			if !c.IsValid() {
				errs = append(errs, domain.FieldError{Field: "expiration.custom_shelf_life", Message: "unknown category " + c.String()})
				continue
			}
			if days < 1 || days > maxShelfLifeDays {
				errs = append(errs, domain.FieldError{Field: "expiration.custom_shelf_life." + c.String(), Message: "must be between 1 and 3650"})
			}
		}
	}

	if i.Timezone != nil {
		if *i.Timezone == "" {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: "cannot be empty"})
		} else if len(*i.Timezone) > 64 {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: "too long"})
		} else if _, err := time.LoadLocation(*i.Timezone); err != nil {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: "invalid IANA timezone"})
		}
	}

	if i.Language != nil && (len(*i.Language) < 2 || len(*i.Language) > 10) {
		errs = append(errs, domain.FieldError{Field: "language", Message: "must be a language code"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ExportFormat selects the export encoding.
type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportCSV  ExportFormat = "csv"
)

// ExportInput holds parameters for a data export. The date range is optional.
type ExportInput struct {
	Format ExportFormat
	From   *time.Time
	To     *time.Time
}

// Validate validates the export input.
func (i ExportInput) Validate() error {
	var errs []domain.FieldError

	if i.Format != ExportJSON && i.Format != ExportCSV {
		errs = append(errs, domain.FieldError{Field: "format", Message: "must be json or csv"})
	}
	if i.From != nil && i.To != nil && i.To.Before(*i.From) {
		errs = append(errs, domain.FieldError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateClock(errs []domain.FieldError, field string, v *string) []domain.FieldError {
	if v == nil {
		return errs
	}
	if _, err := time.Parse("15:04", *v); err != nil {
		return append(errs, domain.FieldError{Field: field, Message: "must be HH:MM"})
	}
	return errs
}
