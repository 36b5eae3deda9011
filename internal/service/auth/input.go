package auth

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/freshkeep-backend/internal/domain"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt ignores anything longer
	maxEmailLen    = 254
	maxNameLen     = 100
)

// SignupInput holds parameters for account creation.
type SignupInput struct {
	Email    string
	Password string
	Name     string
	Timezone string
}

// Validate validates the signup input.
func (i SignupInput) Validate() error {
	var errs []domain.FieldError

	errs = validateEmail(errs, i.Email)
	errs = validatePassword(errs, "password", i.Password)

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if utf8.RuneCountInString(i.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if i.Timezone != "" {
		if _, err := time.LoadLocation(i.Timezone); err != nil {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: "unknown timezone"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for email + password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "required"})
	} else if len(i.RefreshToken) > 512 {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateMeInput holds profile changes. Nil fields are left untouched.
type UpdateMeInput struct {
	Name     *string
	Timezone *string
}

// Validate validates the profile update.
func (i UpdateMeInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
		} else if utf8.RuneCountInString(name) > maxNameLen {
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
		}
	}
	if i.Timezone != nil {
		if _, err := time.LoadLocation(*i.Timezone); err != nil || *i.Timezone == "" {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: "unknown timezone"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ResetPasswordInput redeems a reset token for a new password.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// Validate validates the reset input.
func (i ResetPasswordInput) Validate() error {
	var errs []domain.FieldError

	if i.Token == "" {
		errs = append(errs, domain.FieldError{Field: "token", Message: "required"})
	} else if len(i.Token) > 512 {
		errs = append(errs, domain.FieldError{Field: "token", Message: "too long"})
	}
	errs = validatePassword(errs, "new_password", i.NewPassword)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateEmail(errs []domain.FieldError, email string) []domain.FieldError {
	switch {
	case email == "":
		return append(errs, domain.FieldError{Field: "email", Message: "required"})
	case len(email) > maxEmailLen:
		return append(errs, domain.FieldError{Field: "email", Message: "too long"})
	case !strings.Contains(email, "@") || strings.HasPrefix(email, "@") || strings.HasSuffix(email, "@"):
		return append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}
	return errs
}

func validatePassword(errs []domain.FieldError, field, password string) []domain.FieldError {
	switch {
	case password == "":
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	case len(password) < minPasswordLen:
		return append(errs, domain.FieldError{Field: field, Message: "must be at least 8 characters"})
	case len(password) > maxPasswordLen:
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
