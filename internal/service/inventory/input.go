package inventory

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

const (
	defaultListLimit    = 50
	maxListLimit        = 100
	defaultExpiringDays = 3
	maxExpiringDays     = 90
	maxNameLength       = 200
	maxNotesLength      = 1000
	maxReceiptItems     = 100
	defaultUnit         = "piece"
)

// ListInput holds parameters for listing inventory items.
type ListInput struct {
	Status   *domain.ItemStatus
	Category *domain.Category
	Storage  *domain.Storage
	Search   *string
	Limit    int
	Offset   int
}

func (i *ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}
	if i.Category != nil && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "invalid category"})
	}
	if i.Storage != nil && !i.Storage.IsValid() {
		errs = append(errs, domain.FieldError{Field: "storage", Message: "invalid storage"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be positive"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}

	if i.Limit == 0 {
		i.Limit = defaultListLimit
	}
	i.Limit = min(i.Limit, maxListLimit)
	if i.Status == nil {
		active := domain.ItemStatusActive
		i.Status = &active
	}
	if i.Search != nil && strings.TrimSpace(*i.Search) == "" {
		i.Search = nil
	}
	return nil
}

// CreateInput holds parameters for adding an item.
type CreateInput struct {
	Name           string
	Quantity       float64
	Unit           string
	Category       domain.Category
	Storage        domain.Storage
	PurchaseDate   *time.Time
	ExpirationDate *time.Time
	Notes          *string
	PhotoURL       *string
	Barcode        *string
}

func (i *CreateInput) Validate() error {
	i.Name = strings.TrimSpace(i.Name)
	if i.Quantity == 0 {
		i.Quantity = 1
	}
	if i.Unit == "" {
		i.Unit = defaultUnit
	}
	if i.Category == "" {
		i.Category = domain.CategoryOther
	}
	if i.Storage == "" {
		i.Storage = domain.StorageFridge
	}

	var errs []domain.FieldError
	errs = validateName(errs, "name", i.Name)
	if i.Quantity < 0 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be positive"})
	}
	if len(i.Unit) > 20 {
		errs = append(errs, domain.FieldError{Field: "unit", Message: "too long"})
	}
	if !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "invalid category"})
	}
	if !i.Storage.IsValid() {
		errs = append(errs, domain.FieldError{Field: "storage", Message: "invalid storage"})
	}
	if i.PurchaseDate != nil && i.ExpirationDate != nil && i.ExpirationDate.Before(*i.PurchaseDate) {
		errs = append(errs, domain.FieldError{Field: "expiration_date", Message: "must not be before purchase date"})
	}
	errs = validateNotes(errs, "notes", i.Notes)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds a partial item update. Nil fields are left unchanged.
type UpdateInput struct {
	Name           *string
	Quantity       *float64
	Unit           *string
	Category       *domain.Category
	Storage        *domain.Storage
	ExpirationDate *time.Time
	Notes          *string
	PhotoURL       *string
}

func (i *UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		i.Name = &name
		errs = validateName(errs, "name", name)
	}
	if i.Quantity != nil && *i.Quantity <= 0 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be positive"})
	}
	if i.Unit != nil && (*i.Unit == "" || len(*i.Unit) > 20) {
		errs = append(errs, domain.FieldError{Field: "unit", Message: "must be 1-20 characters"})
	}
	if i.Category != nil && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "invalid category"})
	}
	if i.Storage != nil && !i.Storage.IsValid() {
		errs = append(errs, domain.FieldError{Field: "storage", Message: "invalid storage"})
	}
	errs = validateNotes(errs, "notes", i.Notes)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ConsumeInput records eating some or all of an item. A nil Quantity consumes everything.
type ConsumeInput struct {
	Quantity *float64
	Notes    *string
}

func (i ConsumeInput) Validate() error {
	var errs []domain.FieldError
	if i.Quantity != nil && *i.Quantity <= 0 {
		errs = append(errs, domain.FieldError{Field: "quantity_consumed", Message: "must be positive"})
	}
	errs = validateNotes(errs, "notes", i.Notes)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// WasteInput records throwing an item away.
type WasteInput struct {
	Reason       domain.WasteReason
	FeedbackText *string
	PhotoURL     *string
}

func (i *WasteInput) Validate() error {
	if i.Reason == "" {
		i.Reason = domain.WasteReasonForgot
	}

	var errs []domain.FieldError
	if !i.Reason.IsValid() {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "invalid reason"})
	}
	errs = validateNotes(errs, "feedback_text", i.FeedbackText)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ConfirmReceiptInput holds the receipt lines the user accepted.
type ConfirmReceiptInput struct {
	Items []CreateInput
}

func (i *ConfirmReceiptInput) Validate() error {
	if len(i.Items) == 0 {
		return domain.NewValidationError("items", "at least one item is required")
	}
	if len(i.Items) > maxReceiptItems {
		return domain.NewValidationError("items", "too many items")
	}

	var errs []domain.FieldError
	for idx := range i.Items {
		if err := i.Items[idx].Validate(); err != nil {
			var ve *domain.ValidationError
			if errors.As(err, &ve) {
				for _, fe := range ve.Errors {
					fe.Field = fmt.Sprintf("items[%d].", idx) + fe.Field
					errs = append(errs, fe)
				}
			}
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateName(errs []domain.FieldError, field, name string) []domain.FieldError {
	if name == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if len([]rune(name)) > maxNameLength {
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}

func validateNotes(errs []domain.FieldError, field string, v *string) []domain.FieldError {
	if v != nil && len([]rune(*v)) > maxNotesLength {
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}
