package shopping

import (
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

const (
	maxNameLength  = 200
	maxNotesLength = 500
	maxUnitLength  = 20
	maxImportItems = 100
	defaultUnit    = "piece"
)

// AddInput holds a new shopping list line.
type AddInput struct {
	Name     string
	Quantity float64
	Unit     string
	Category *domain.Category
	Notes    *string
}

func (i *AddInput) Validate() error {
	i.Name = strings.TrimSpace(i.Name)
	if i.Quantity == 0 {
		i.Quantity = 1
	}
	if i.Unit == "" {
		i.Unit = defaultUnit
	}

	var errs []domain.FieldError
	errs = validateName(errs, i.Name)
	if i.Quantity < 0 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be positive"})
	}
	if len(i.Unit) > maxUnitLength {
		errs = append(errs, domain.FieldError{Field: "unit", Message: "too long"})
	}
	if i.Category != nil && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "invalid category"})
	}
	if i.Notes != nil && len([]rune(*i.Notes)) > maxNotesLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput is a partial line update. Nil fields are left unchanged.
type UpdateInput struct {
	Name     *string
	Quantity *float64
	Unit     *string
	Category *domain.Category
	Checked  *bool
	Notes    *string
}

func (i *UpdateInput) Validate() error {
	var errs []domain.FieldError
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		i.Name = &name
		errs = validateName(errs, name)
	}
	if i.Quantity != nil && *i.Quantity <= 0 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be positive"})
	}
	if i.Unit != nil && (*i.Unit == "" || len(*i.Unit) > maxUnitLength) {
		errs = append(errs, domain.FieldError{Field: "unit", Message: "must be 1-20 characters"})
	}
	if i.Category != nil && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "invalid category"})
	}
	if i.Notes != nil && len([]rune(*i.Notes)) > maxNotesLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ImportInput selects list lines to move into the inventory. An empty ItemIDs
// imports every checked line.
type ImportInput struct {
	ItemIDs      []uuid.UUID
	ClearChecked bool
}

func (i ImportInput) Validate() error {
	if len(i.ItemIDs) > maxImportItems {
		return domain.NewValidationError("item_ids", "too many items")
	}
	return nil
}

func validateName(errs []domain.FieldError, name string) []domain.FieldError {
	if name == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len([]rune(name)) > maxNameLength {
		return append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	return errs
}
