package family

import (
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

const (
	minNameLength = 2
	maxNameLength = 100
)

// CreateInput holds parameters for creating a family.
type CreateInput struct {
	Name string
}

func (i *CreateInput) Validate() error {
	i.Name = strings.TrimSpace(i.Name)
	n := len([]rune(i.Name))
	if n < minNameLength || n > maxNameLength {
		return domain.NewValidationError("name", "must be 2-100 characters")
	}
	return nil
}

// JoinInput holds an invite code.
type JoinInput struct {
	InviteCode string
}

func (i *JoinInput) Validate() error {
	i.InviteCode = strings.ToUpper(strings.TrimSpace(i.InviteCode))
	if len(i.InviteCode) != domain.InviteCodeLength {
		return domain.NewValidationError("invite_code", "must be 6 characters")
	}
	for _, r := range i.InviteCode {
		if !strings.ContainsRune(domain.InviteCodeAlphabet, r) {
			return domain.NewValidationError("invite_code", "must be letters and digits")
		}
	}
	return nil
}

// UpdateRoleInput changes one member's role.
type UpdateRoleInput struct {
	UserID uuid.UUID
	Role   domain.FamilyRole
}

func (i UpdateRoleInput) Validate() error {
	var errs []domain.FieldError
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be admin, editor or viewer"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
